package components

import (
	"github.com/automoto/pixelquest/gamemath"
	"github.com/yohamta/donburi"
)

// Bullet is a horizontally travelling projectile owned by a shooter.
type Bullet struct {
	X, Y     float64
	VX       float64
	W, H     float64
	Lifetime int // Frames left before the bullet expires
}

func (b *Bullet) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

type WeaponData struct {
	Bullets  []Bullet
	Cooldown int
}

var Weapon = donburi.NewComponentType[WeaponData]()
