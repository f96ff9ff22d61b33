package systems

import (
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
)

func applyGravity(body *components.BodyData) {
	body.VY = gamemath.ApplyGravity(body.VY, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
}

func applyFriction(body *components.BodyData) {
	body.VX = gamemath.DecayFriction(body.VX, cfg.Physics.Friction, cfg.Physics.FrictionSnap)
}

// clampToWorld keeps body inside the horizontal extent of the world.
func clampToWorld(body *components.BodyData) {
	width := float64(cfg.C.Width)
	if body.X < 0 {
		body.X = 0
		body.VX = 0
	}
	if body.X+body.W > width {
		body.X = width - body.W
		body.VX = 0
	}
}

// updateBullets moves each bullet, ages it, and drops expired or off-world
// bullets. The slice is filtered in place.
func updateBullets(bullets []components.Bullet) []components.Bullet {
	width := float64(cfg.C.Width)
	kept := bullets[:0]
	for _, b := range bullets {
		b.X += b.VX
		b.Lifetime--
		if b.Lifetime > 0 && b.X >= 0 && b.X < width {
			kept = append(kept, b)
		}
	}
	return kept
}

func newBullet(x, y, direction float64, bc cfg.BulletConfig) components.Bullet {
	return components.Bullet{
		X:        x,
		Y:        y,
		VX:       direction * bc.Speed,
		W:        bc.Width,
		H:        bc.Height,
		Lifetime: bc.Lifetime,
	}
}
