package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type GoalData struct {
	Reached bool
	Phase   float32 // Glow animation phase in radians
	Tween   *gween.Tween
}

var Goal = donburi.NewComponentType[GoalData]()
