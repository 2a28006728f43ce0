package gamemath

import "math"

// ApplyDrag scales a velocity component by the air friction retained over
// the given number of reference frames. drag is the fraction lost per frame.
func ApplyDrag(speed, drag, frames float64) float64 {
	if drag <= 0 {
		return speed
	}
	return speed * math.Pow(1-drag, frames)
}

// ClampFloat constrains a value to the range [min, max]
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
