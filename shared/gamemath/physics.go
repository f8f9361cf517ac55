// Package gamemath holds the pure movement math shared by every body in the
// simulation. It has no dependencies on ebitengine or donburi.
package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

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

// Approach moves speed toward target by at most step, never past it.
func Approach(speed, target, step float64) float64 {
	if speed < target {
		speed += step
		if speed > target {
			return target
		}
		return speed
	}
	if speed > target {
		speed -= step
		if speed < target {
			return target
		}
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
