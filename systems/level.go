package systems

import (
	"fmt"

	"github.com/automoto/pixelquest/components"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/automoto/pixelquest/systems/factory"
	"github.com/automoto/pixelquest/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LoadLevel replaces every level entity with the contents of levels[index].
// Session score and coins are kept; the player is recreated from scratch.
func LoadLevel(w donburi.World, levels []leveldata.Level, index int) error {
	if index < 0 || index >= len(levels) {
		return fmt.Errorf("level index %d out of range [0, %d)", index, len(levels))
	}

	clearLevel(w)
	factory.CreateLevelAtIndex(w, levels, index)

	session := GetOrCreateSession(w)
	session.Level = index + 1
	session.MaxLevel = len(levels)
	session.LevelCleared = false

	settleBodies(w)
	return nil
}

// AdvanceLevel loads the level after the current one.
func AdvanceLevel(w donburi.World) error {
	level := getLevel(w)
	if level == nil {
		return fmt.Errorf("advance level: no level loaded")
	}
	return LoadLevel(w, level.Levels, level.LevelIndex+1)
}

func clearLevel(w donburi.World) {
	var toRemove []donburi.Entity
	tags.LevelEntity.Each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e.Entity())
	})
	for _, e := range toRemove {
		w.Remove(e)
	}
}

// settleBodies pushes freshly spawned bodies out of any platform they were
// placed inside.
func settleBodies(w donburi.World) {
	space := getSpace(w)
	platforms := getPlatforms(w)

	settle := func(e *donburi.Entry) {
		SettleBody(space, components.Body.Get(e), components.Physics.Get(e), platforms)
	}
	tags.Player.Each(w, settle)
	tags.Enemy.Each(w, settle)
}

func getLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func getPlatforms(w donburi.World) []gamemath.Rect {
	if level := getLevel(w); level != nil {
		return level.Platforms
	}
	return nil
}

func getSpace(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
