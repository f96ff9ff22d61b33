package components

import (
	"github.com/automoto/pixelquest/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is a moving axis-aligned box. Position is the top-left corner.
type BodyData struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

var Body = donburi.NewComponentType[BodyData]()
