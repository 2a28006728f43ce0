package gamemath

import "math"

// TiltAngle returns the absolute deviation of rotation from upright,
// normalized into [0, π]. Rotation is reduced modulo 2π and values above π
// are reflected.
func TiltAngle(rotation float64) float64 {
	a := math.Mod(math.Abs(rotation), 2*math.Pi)
	if a > math.Pi {
		a = 2*math.Pi - a
	}
	return a
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
