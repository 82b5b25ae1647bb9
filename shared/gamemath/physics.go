package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// DampIdle slows horizontal speed while no direction is held. The speed is
// scaled by factor*dt and snapped to zero once it was already below snap.
func DampIdle(speedX, factor, dt, snap float64) float64 {
	abs := math.Abs(speedX)
	if abs == 0 {
		return 0
	}
	if abs < snap {
		return 0
	}
	return speedX * factor * dt
}
