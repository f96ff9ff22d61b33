package factory

import (
	"math"

	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// phaseTween sweeps a phase from 0 to 2*pi, advancing step radians per frame.
func phaseTween(step float64) *gween.Tween {
	if step <= 0 {
		return nil
	}
	frames := 2 * math.Pi / step
	return gween.New(0, float32(2*math.Pi), float32(frames), ease.Linear)
}

func CreateCoin(w donburi.World, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w)
	components.Body.SetValue(coin, components.BodyData{
		X: x,
		Y: y,
		W: cfg.Pickup.CoinWidth,
		H: cfg.Pickup.CoinHeight,
	})
	components.Coin.SetValue(coin, components.CoinData{
		Tween: phaseTween(cfg.Pickup.CoinAnimStep),
	})
	return coin
}

func CreateGoal(w donburi.World, x, y float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(w)
	components.Body.SetValue(goal, components.BodyData{
		X: x,
		Y: y,
		W: cfg.Pickup.GoalWidth,
		H: cfg.Pickup.GoalHeight,
	})
	components.Goal.SetValue(goal, components.GoalData{
		Tween: phaseTween(cfg.Pickup.GoalAnimStep),
	})
	return goal
}
