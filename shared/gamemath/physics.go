// Package gamemath holds small numeric helpers shared by movement code.
package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return math.Max(-max, math.Min(max, speed))
}

// Clamp limits v to [lo, hi]. When the range is inverted, the midpoint wins,
// which keeps a camera centered on levels smaller than the screen.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
