package gamemath

// ApplyGravity adds gravity to a vertical speed and caps the fall speed.
// Upward speeds are never clamped.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// DecayFriction scales speed toward zero and snaps it once it drops below snap.
func DecayFriction(speedX, factor, snap float64) float64 {
	speedX *= factor
	if speedX < snap && speedX > -snap {
		return 0
	}
	return speedX
}
