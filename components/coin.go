package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CoinData struct {
	Collected bool
	Phase     float32 // Bob animation phase in radians
	Tween     *gween.Tween
}

var Coin = donburi.NewComponentType[CoinData]()
