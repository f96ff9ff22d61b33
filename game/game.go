// Package game runs the platformer one tick at a time. It owns the donburi
// world, applies level transitions between ticks and exposes what the
// presentation layer needs to draw a frame.
package game

import (
	"fmt"

	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Input is the pressed state of every logical action for one tick.
type Input [cfg.ActionCount]bool

type Game struct {
	world   donburi.World
	levels  []leveldata.Level
	systems []systems.System
	events  *Events

	hud          HUD
	hudDirty     bool
	hudListeners []func(HUD)
}

// New validates the levels and starts a run on the first one.
func New(levels []leveldata.Level) (*Game, error) {
	if err := leveldata.ValidateAll(levels); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		world:  donburi.NewWorld(),
		levels: levels,
		systems: []systems.System{
			systems.UpdatePause,
			systems.WithGameplayChecks(systems.UpdatePlayer),
			systems.WithGameplayChecks(systems.UpdateEnemies),
			systems.WithGameplayChecks(systems.UpdateCoins),
			systems.WithGameplayChecks(systems.UpdateGoal),
		},
	}
	g.events = &Events{world: g.world}
	g.subscribeHUD()

	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// subscribeHUD marks the HUD stale on every lifecycle event. Subscribing here
// also creates the event queues before the first tick runs.
func (g *Game) subscribeHUD() {
	g.events.OnPlayerDamaged(func(systems.PlayerDamaged) { g.hudDirty = true })
	g.events.OnEnemyDefeated(func(systems.EnemyDefeated) { g.hudDirty = true })
	g.events.OnCoinCollected(func(systems.CoinCollected) { g.hudDirty = true })
	g.events.OnLevelCompleted(func(systems.LevelCompleted) { g.hudDirty = true })
	g.events.OnGameOver(func(systems.GameOver) { g.hudDirty = true })
	g.events.OnVictory(func(systems.Victory) { g.hudDirty = true })
}

// Restart begins a new run from the first level with a clean session.
func (g *Game) Restart() error {
	systems.ResetSession(g.world)
	if err := systems.LoadLevel(g.world, g.levels, 0); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	g.hudDirty = true
	g.publishHUD()
	return nil
}

// Update advances the world by one tick.
func (g *Game) Update(input Input) error {
	systems.StoreInput(g.world, input)
	for _, system := range g.systems {
		system(g.world)
	}

	session := systems.GetOrCreateSession(g.world)
	if session.LevelCleared && session.Status == cfg.StatusRunning {
		if err := systems.AdvanceLevel(g.world); err != nil {
			return fmt.Errorf("advance level: %w", err)
		}
		g.hudDirty = true
	}

	events.ProcessAllEvents(g.world)
	g.publishHUD()
	return nil
}

func (g *Game) publishHUD() {
	if !g.hudDirty {
		return
	}
	g.hudDirty = false
	g.hud = g.HUD()
	for _, fn := range g.hudListeners {
		fn(g.hud)
	}
}

// OnHUDChanged registers fn to receive the HUD after any tick that damaged,
// collected, defeated or changed level, and once on registration.
func (g *Game) OnHUDChanged(fn func(HUD)) {
	g.hudListeners = append(g.hudListeners, fn)
	fn(g.hud)
}

func (g *Game) World() donburi.World {
	return g.world
}

// Events exposes lifecycle subscriptions. Handlers run at the end of the tick
// that published the event.
func (g *Game) Events() *Events {
	return g.events
}

func (g *Game) Status() cfg.GameStatus {
	return systems.GetOrCreateSession(g.world).Status
}

func (g *Game) Paused() bool {
	return systems.IsPaused(g.world)
}

// Level returns the 1-based number of the level being played.
func (g *Game) Level() int {
	return systems.GetOrCreateSession(g.world).Level
}

// LevelName returns the name of the level being played.
func (g *Game) LevelName() string {
	entry, ok := components.Level.First(g.world)
	if !ok {
		return ""
	}
	return components.Level.Get(entry).CurrentLevel.Name
}
