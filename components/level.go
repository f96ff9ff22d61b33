package components

import (
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []leveldata.Level

	// Platforms is the read-only collision list of the current level.
	Platforms []gamemath.Rect
	Spawn     math.Vec2
}

var Level = donburi.NewComponentType[LevelData]()

// Space is the broadphase grid holding one resolv object per platform.
var Space = donburi.NewComponentType[resolv.Space]()
