// Package leveldata describes level templates and parses them from TMX files.
// It has no dependencies on ebitengine or resolv, pure data only.
package leveldata

import (
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Level is an immutable template. Spawning copies it into the world.
type Level struct {
	Name      string
	Platforms []gamemath.Rect // Iteration order is significant to collision resolution
	Enemies   []EnemySpawn
	Coins     []math.Vec2
	Goal      *math.Vec2

	// PlayerSpawn is nil when the level relies on the configured spawn point.
	PlayerSpawn *math.Vec2
}

// EnemySpawn is the top-left position and kind of an enemy.
type EnemySpawn struct {
	X, Y float64
	Type cfg.EnemyType
}

// Spawn returns the player start position for the level.
func (l *Level) Spawn() math.Vec2 {
	if l.PlayerSpawn != nil {
		return *l.PlayerSpawn
	}
	return math.Vec2{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}
}
