package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    float64 // Facing, cfg.DirectionLeft or cfg.DirectionRight
	InvulnFrames int     // Invulnerability frames timer
	Stamina      float64
	MaxStamina   float64
}

// Invincible reports whether incoming damage is ignored.
func (p *PlayerData) Invincible() bool {
	return p.InvulnFrames > 0
}

var Player = donburi.NewComponentType[PlayerData]()
