package factory

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevelAtIndex spawns every entity described by levels[levelIndex].
// The caller is responsible for removing the previous level's entities and
// for passing a validated, in-range index.
func CreateLevelAtIndex(w donburi.World, levels []leveldata.Level, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	current := &levels[levelIndex]

	// Copy so the running level never aliases the template
	platforms := make([]gamemath.Rect, len(current.Platforms))
	copy(platforms, current.Platforms)

	levelData := &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
		Platforms:    platforms,
		Spawn:        current.Spawn(),
	}
	components.Level.Set(level, levelData)

	CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.C.CellSize, cfg.C.CellSize, platforms)

	CreatePlayer(w, levelData.Spawn.X, levelData.Spawn.Y)
	for _, e := range current.Enemies {
		CreateEnemy(w, e.X, e.Y, e.Type)
	}
	for _, c := range current.Coins {
		CreateCoin(w, c.X, c.Y)
	}
	if current.Goal != nil {
		CreateGoal(w, current.Goal.X, current.Goal.Y)
	}

	return level
}
