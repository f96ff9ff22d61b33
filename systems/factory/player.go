package factory

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		X: x,
		Y: y,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	})
	components.Player.SetValue(player, components.PlayerData{
		Direction:  cfg.DirectionRight,
		Stamina:    cfg.Player.MaxStamina,
		MaxStamina: cfg.Player.MaxStamina,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Normal,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Weapon.SetValue(player, components.WeaponData{
		Bullets: make([]components.Bullet, 0, cfg.Player.MaxBullets),
	})

	return player
}
