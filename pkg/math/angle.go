package math

import "math"

// TwoPi is a full revolution in radians.
const TwoPi = 2 * math.Pi

// Epsilon is the threshold below which a sine, cosine or tangent is treated
// as zero when stepping along grid lines.
const Epsilon = 1e-9

// NormalizeAngle maps any angle to [0, 2π).
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative value can round back up to exactly 2π.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// ClampedTan returns tan(angle) with its magnitude held inside
// [Epsilon, 1/Epsilon], keeping the sign, so callers may divide by it.
func ClampedTan(angle float64) float64 {
	t := math.Tan(angle)
	switch {
	case math.IsNaN(t):
		return 1 / Epsilon
	case t >= 0 && t < Epsilon:
		return Epsilon
	case t < 0 && t > -Epsilon:
		return -Epsilon
	case t > 1/Epsilon:
		return 1 / Epsilon
	case t < -1/Epsilon:
		return -1 / Epsilon
	}
	return t
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
