package factory

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of the given type. Unknown types fall back to
// a walker; level validation rejects them before this point.
func CreateEnemy(w donburi.World, x, y float64, enemyType cfg.EnemyType) *donburi.Entry {
	typeConfig, ok := cfg.Enemy.Type(enemyType)
	if !ok {
		enemyType = cfg.EnemyWalker
		typeConfig = &cfg.Enemy.Walker
	}
	// Cache a copy so tuning reloads only affect newly spawned enemies
	typeCopy := *typeConfig

	enemy := archetypes.Enemy.Spawn(w)

	// Patrollers start moving right; stationary types have no speed
	speed := 0.0
	if typeCopy.PatrolDistance > 0 {
		speed = typeCopy.Speed
	}
	components.Body.SetValue(enemy, components.BodyData{
		X:  x,
		Y:  y,
		VX: speed,
		W:  cfg.Enemy.Width,
		H:  cfg.Enemy.Height,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:           enemyType,
		TypeConfig:     &typeCopy,
		Active:         true,
		StartX:         x,
		PatrolDistance: typeCopy.PatrolDistance,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: typeCopy.Health,
		Max:     typeCopy.Health,
	})

	return enemy
}
