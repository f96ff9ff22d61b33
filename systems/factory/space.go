package factory

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the broadphase grid and registers one solid object per
// platform. Each object's Data is the platform's index in the level list.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int, platforms []gamemath.Rect) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	for i, p := range platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvSolid)
		obj.Data = i
		spaceData.Add(obj)
	}
	components.Space.Set(space, spaceData)
	return space
}
