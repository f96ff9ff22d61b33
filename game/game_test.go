package game

import (
	"testing"

	"github.com/automoto/pixelquest/assets"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/systems"
	"github.com/automoto/pixelquest/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func level(name string, enemies ...leveldata.EnemySpawn) leveldata.Level {
	return leveldata.Level{
		Name:      name,
		Platforms: []gamemath.Rect{{X: 0, Y: 550, W: 800, H: 50}},
		Enemies:   enemies,
		Coins:     []math.Vec2{{X: 400, Y: 500}},
		Goal:      &math.Vec2{X: 700, Y: 470},
	}
}

func newGame(t *testing.T, levels ...leveldata.Level) *Game {
	t.Helper()
	t.Cleanup(cfg.Reset)
	g, err := New(levels)
	require.NoError(t, err)
	return g
}

func movePlayer(t *testing.T, g *Game, x, y float64) {
	t.Helper()
	entry, ok := tags.Player.First(g.World())
	require.True(t, ok)
	body := components.Body.Get(entry)
	body.X, body.Y = x, y
}

func TestNewRejectsInvalidLevels(t *testing.T) {
	broken := level("broken")
	broken.Goal = nil

	_, err := New([]leveldata.Level{level("ok"), broken})
	assert.ErrorIs(t, err, leveldata.ErrNoGoal)

	_, err = New(nil)
	assert.ErrorIs(t, err, leveldata.ErrNoLevels)
}

func TestNewWithShippedLevels(t *testing.T) {
	levels, err := assets.LoadLevels()
	require.NoError(t, err)

	g := newGame(t, levels...)
	frame := g.Snapshot()

	assert.Equal(t, cfg.StatusRunning, frame.Status)
	assert.Len(t, frame.Platforms, len(levels[0].Platforms))
	assert.Len(t, frame.Enemies, len(levels[0].Enemies))
	assert.Len(t, frame.Coins, len(levels[0].Coins))
	require.NotNil(t, frame.Player)
	require.NotNil(t, frame.Goal)
	assert.Equal(t, HUD{Level: 1, Health: 5, MaxHealth: 5, Stamina: 100}, frame.HUD)
}

func TestUpdateAdvancesWorld(t *testing.T) {
	g := newGame(t, level("one"))

	for i := 0; i < 60; i++ {
		require.NoError(t, g.Update(Input{}))
	}

	frame := g.Snapshot()
	require.NotNil(t, frame.Player)
	assert.True(t, frame.Player.OnGround)
	assert.Equal(t, 518.0, frame.Player.Rect.Y)
	assert.NotZero(t, frame.Coins[0].Phase)
	assert.NotZero(t, frame.Goal.Phase)
}

func TestPausedGameDoesNotMove(t *testing.T) {
	g := newGame(t, level("one"))

	var pause Input
	pause[cfg.ActionPause] = true
	require.NoError(t, g.Update(pause))
	require.True(t, g.Paused())

	before := g.Snapshot().Player.Rect
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update(Input{}))
	}
	frame := g.Snapshot()
	assert.True(t, frame.Paused)
	assert.Equal(t, before, frame.Player.Rect)
}

func TestGoalLoadsNextLevel(t *testing.T) {
	g := newGame(t, level("one"), level("two"))

	var huds []HUD
	g.OnHUDChanged(func(h HUD) { huds = append(huds, h) })
	var completed []systems.LevelCompleted
	g.Events().OnLevelCompleted(func(ev systems.LevelCompleted) { completed = append(completed, ev) })

	movePlayer(t, g, 710, 480)
	require.NoError(t, g.Update(Input{}))

	assert.Equal(t, 2, g.Level())
	assert.Equal(t, "two", g.LevelName())
	assert.Equal(t, cfg.StatusRunning, g.Status())
	require.Len(t, completed, 1)
	assert.Equal(t, 1, completed[0].Level)

	require.Len(t, huds, 2)
	assert.Equal(t, 1, huds[0].Level)
	assert.Equal(t, 2, huds[1].Level)
	assert.Equal(t, cfg.Score.LevelComplete, huds[1].Score)
}

func TestLastGoalIsVictory(t *testing.T) {
	g := newGame(t, level("only"))

	victories := 0
	g.Events().OnVictory(func(systems.Victory) { victories++ })

	movePlayer(t, g, 710, 480)
	require.NoError(t, g.Update(Input{}))
	require.NoError(t, g.Update(Input{}))

	assert.Equal(t, cfg.StatusVictory, g.Status())
	assert.Equal(t, 1, victories)
	assert.Equal(t, 1, g.Level())
}

func TestGameOverAndRestart(t *testing.T) {
	g := newGame(t, level("one"))

	gameOvers := 0
	g.Events().OnGameOver(func(systems.GameOver) { gameOvers++ })

	entry, ok := tags.Player.First(g.World())
	require.True(t, ok)
	components.Health.Get(entry).Current = 1
	systems.DamagePlayer(g.World(), entry, 1)
	require.NoError(t, g.Update(Input{}))

	assert.Equal(t, cfg.StatusGameOver, g.Status())
	assert.Equal(t, 1, gameOvers)
	assert.Zero(t, g.HUD().Health)

	// Terminal status freezes the world
	before := g.Snapshot().Player.Rect
	require.NoError(t, g.Update(Input{}))
	assert.Equal(t, before, g.Snapshot().Player.Rect)

	require.NoError(t, g.Restart())
	assert.Equal(t, cfg.StatusRunning, g.Status())
	assert.Equal(t, HUD{Level: 1, Health: 5, MaxHealth: 5, Stamina: 100}, g.HUD())
}

func TestHUDReportsStaminaPercent(t *testing.T) {
	g := newGame(t, level("one"))

	entry, ok := tags.Player.First(g.World())
	require.True(t, ok)
	components.Player.Get(entry).Stamina = 25

	assert.Equal(t, 25.0, g.HUD().Stamina)
}

func TestSnapshotCopiesBullets(t *testing.T) {
	g := newGame(t, level("one", leveldata.EnemySpawn{X: 200, Y: 522, Type: cfg.EnemyShooter}))

	var fire Input
	fire[cfg.ActionFire] = true
	require.NoError(t, g.Update(fire))

	frame := g.Snapshot()
	assert.Len(t, frame.PlayerBullets, 1)
	assert.Len(t, frame.EnemyBullets, 1)
	require.Len(t, frame.Enemies, 1)
	assert.Equal(t, cfg.EnemyShooter, frame.Enemies[0].Type)
	assert.True(t, frame.Enemies[0].Active)
}
