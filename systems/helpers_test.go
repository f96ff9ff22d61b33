package systems

import (
	"testing"

	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var floor = gamemath.Rect{X: 0, Y: 550, W: 800, H: 50}

// testLevel returns a level with a full-width floor and a goal out of the
// player's way.
func testLevel(enemies ...leveldata.EnemySpawn) leveldata.Level {
	return leveldata.Level{
		Name:      "test",
		Platforms: []gamemath.Rect{floor},
		Enemies:   enemies,
		Goal:      &math.Vec2{X: 700, Y: 470},
	}
}

func newTestWorld(t *testing.T, levels ...leveldata.Level) donburi.World {
	t.Helper()
	t.Cleanup(cfg.Reset)

	if len(levels) == 0 {
		levels = []leveldata.Level{testLevel()}
	}
	w := donburi.NewWorld()
	require.NoError(t, LoadLevel(w, levels, 0))
	return w
}

func playerEntry(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.Player.First(w)
	require.True(t, ok, "player not spawned")
	return e
}

func enemyEntries(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func press(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	return pressed
}

// stepPlayer stores input and runs the player system n times.
func stepPlayer(w donburi.World, n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		StoreInput(w, press(actions...))
		UpdatePlayer(w)
	}
}

// settlePlayer lets the player fall onto the floor.
func settlePlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	stepPlayer(w, 120)
	e := playerEntry(t, w)
	require.True(t, components.Physics.Get(e).OnGround)
	return e
}
