package gamemath

// SurfaceY returns the height of the segment a-b at x, with x clamped to the
// segment's horizontal extent. A vertical segment reports its upper end.
func SurfaceY(a, b Vector, x float64) float64 {
	if a.X > b.X {
		a, b = b, a
	}
	w := b.X - a.X
	if w == 0 {
		if a.Y < b.Y {
			return a.Y
		}
		return b.Y
	}
	t := ClampFloat(x-a.X, 0, w) / w
	return a.Y + (b.Y-a.Y)*t
}
