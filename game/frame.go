package game

import (
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/systems"
	"github.com/automoto/pixelquest/tags"
	"github.com/yohamta/donburi"
)

// HUD is the player-facing summary of the run.
type HUD struct {
	Score     int
	Coins     int
	Level     int
	Health    int
	MaxHealth int
	Stamina   float64 // Percent of max stamina, 0-100
}

type PlayerView struct {
	Rect       gamemath.Rect
	Direction  float64
	State      cfg.StateID
	OnGround   bool
	OnWall     bool
	Invincible bool
}

type EnemyView struct {
	Rect   gamemath.Rect
	Type   cfg.EnemyType
	Active bool
}

type CoinView struct {
	Rect      gamemath.Rect
	Collected bool
	Phase     float32
}

type GoalView struct {
	Rect    gamemath.Rect
	Phase   float32
	Reached bool
}

// Frame is a read-only copy of everything drawn in one frame.
type Frame struct {
	Platforms     []gamemath.Rect
	Player        *PlayerView // nil before the first level is loaded
	Enemies       []EnemyView
	PlayerBullets []gamemath.Rect
	EnemyBullets  []gamemath.Rect
	Coins         []CoinView
	Goal          *GoalView
	Paused        bool
	Status        cfg.GameStatus
	HUD           HUD
}

// Snapshot copies the current world state for rendering.
func (g *Game) Snapshot() Frame {
	w := g.world
	frame := Frame{
		Paused: systems.IsPaused(w),
		Status: g.Status(),
		HUD:    g.HUD(),
	}

	if entry, ok := components.Level.First(w); ok {
		platforms := components.Level.Get(entry).Platforms
		frame.Platforms = make([]gamemath.Rect, len(platforms))
		copy(frame.Platforms, platforms)
	}

	if entry, ok := tags.Player.First(w); ok {
		player := components.Player.Get(entry)
		contact := components.Physics.Get(entry)
		frame.Player = &PlayerView{
			Rect:       components.Body.Get(entry).Rect(),
			Direction:  player.Direction,
			State:      components.State.Get(entry).CurrentState,
			OnGround:   contact.OnGround,
			OnWall:     contact.OnWall,
			Invincible: player.Invincible(),
		}
		frame.PlayerBullets = bulletRects(frame.PlayerBullets, components.Weapon.Get(entry).Bullets)
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		frame.Enemies = append(frame.Enemies, EnemyView{
			Rect:   components.Body.Get(e).Rect(),
			Type:   enemy.Type,
			Active: enemy.Active,
		})
		frame.EnemyBullets = bulletRects(frame.EnemyBullets, components.Weapon.Get(e).Bullets)
	})

	tags.Coin.Each(w, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		frame.Coins = append(frame.Coins, CoinView{
			Rect:      components.Body.Get(e).Rect(),
			Collected: coin.Collected,
			Phase:     coin.Phase,
		})
	})

	if entry, ok := tags.Goal.First(w); ok {
		goal := components.Goal.Get(entry)
		frame.Goal = &GoalView{
			Rect:    components.Body.Get(entry).Rect(),
			Phase:   goal.Phase,
			Reached: goal.Reached,
		}
	}

	return frame
}

func bulletRects(dst []gamemath.Rect, bullets []components.Bullet) []gamemath.Rect {
	for i := range bullets {
		dst = append(dst, bullets[i].Rect())
	}
	return dst
}

// HUD reads the current score, level and player vitals.
func (g *Game) HUD() HUD {
	session := systems.GetOrCreateSession(g.world)
	hud := HUD{
		Score: session.Score,
		Coins: session.Coins,
		Level: session.Level,
	}

	if entry, ok := tags.Player.First(g.world); ok {
		health := components.Health.Get(entry)
		hud.Health = health.Current
		hud.MaxHealth = health.Max

		player := components.Player.Get(entry)
		if player.MaxStamina > 0 {
			hud.Stamina = player.Stamina / player.MaxStamina * 100
		}
	}
	return hud
}
