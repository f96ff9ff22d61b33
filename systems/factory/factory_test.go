package factory

import (
	"testing"

	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestCreateLevelAtIndex(t *testing.T) {
	levels := []leveldata.Level{{
		Name: "one",
		Platforms: []gamemath.Rect{
			{X: 0, Y: 550, W: 800, H: 50},
			{X: 200, Y: 400, W: 100, H: 20},
		},
		Enemies: []leveldata.EnemySpawn{
			{X: 300, Y: 522, Type: cfg.EnemyWalker},
			{X: 500, Y: 522, Type: cfg.EnemyShooter},
		},
		Coins:       []math.Vec2{{X: 100, Y: 100}},
		Goal:        &math.Vec2{X: 700, Y: 470},
		PlayerSpawn: &math.Vec2{X: 80, Y: 200},
	}}
	w := donburi.NewWorld()

	levelEntry := CreateLevelAtIndex(w, levels, 0)

	level := components.Level.Get(levelEntry)
	assert.Equal(t, 0, level.LevelIndex)
	assert.Equal(t, math.Vec2{X: 80, Y: 200}, level.Spawn)
	require.Len(t, level.Platforms, 2)

	// The running copy must not alias the template
	level.Platforms[0].X = 99
	assert.Zero(t, levels[0].Platforms[0].X)

	player, ok := tags.Player.First(w)
	require.True(t, ok)
	body := components.Body.Get(player)
	assert.Equal(t, 80.0, body.X)
	assert.Equal(t, 200.0, body.Y)

	enemies := 0
	tags.Enemy.Each(w, func(*donburi.Entry) { enemies++ })
	assert.Equal(t, 2, enemies)

	_, ok = tags.Coin.First(w)
	assert.True(t, ok)
	_, ok = tags.Goal.First(w)
	assert.True(t, ok)

	spaceEntry, ok := components.Space.First(w)
	require.True(t, ok)
	assert.Len(t, components.Space.Get(spaceEntry).Objects(), 2)
}

func TestCreatePlayerDefaults(t *testing.T) {
	w := donburi.NewWorld()

	e := CreatePlayer(w, 10, 20)

	player := components.Player.Get(e)
	assert.Equal(t, cfg.DirectionRight, player.Direction)
	assert.Equal(t, cfg.Player.MaxStamina, player.Stamina)
	assert.False(t, player.Invincible())

	state := components.State.Get(e)
	assert.Equal(t, cfg.Normal, state.CurrentState)
	assert.Equal(t, cfg.StateNone, state.PreviousState)

	health := components.Health.Get(e)
	assert.Equal(t, cfg.Player.Health, health.Current)
	assert.Equal(t, cfg.Player.Health, health.Max)
}

func TestCreateEnemyPerType(t *testing.T) {
	tests := []struct {
		enemyType  cfg.EnemyType
		wantVX     float64
		wantHealth int
	}{
		{cfg.EnemyWalker, cfg.Enemy.Walker.Speed, 1},
		{cfg.EnemyJumper, cfg.Enemy.Jumper.Speed, 1},
		{cfg.EnemyShooter, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.enemyType.String(), func(t *testing.T) {
			w := donburi.NewWorld()

			e := CreateEnemy(w, 300, 522, tt.enemyType)

			enemy := components.Enemy.Get(e)
			assert.True(t, enemy.Active)
			assert.Equal(t, 300.0, enemy.StartX)
			assert.Equal(t, tt.enemyType, enemy.Type)
			assert.Equal(t, tt.wantVX, components.Body.Get(e).VX)
			assert.Equal(t, tt.wantHealth, components.Health.Get(e).Current)
		})
	}
}

func TestCreateEnemyCopiesTypeConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)
	w := donburi.NewWorld()
	e := CreateEnemy(w, 300, 522, cfg.EnemyShooter)

	cfg.Enemy.Shooter.ShootInterval = 1

	assert.Equal(t, 90, components.Enemy.Get(e).TypeConfig.ShootInterval)
}
