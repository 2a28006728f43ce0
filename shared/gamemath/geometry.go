package gamemath

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share any area or touch.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.Right() && o.X <= r.Right() && r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// RotatedRect returns the four corners of a w x h box centered on center
// and rotated by angle, in clockwise order starting top-left.
func RotatedRect(center Vector, w, h, angle float64) [4]Vector {
	hw, hh := w/2, h/2
	local := [4]Vector{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vector
	for i, p := range local {
		out[i] = center.Add(p.Rotate(angle))
	}
	return out
}

// BoundsOf returns the axis-aligned bounds of the points.
func BoundsOf(pts []Vector) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// InConvex reports whether p lies inside the convex polygon (any winding),
// edges included.
func InConvex(p Vector, poly []Vector) bool {
	if len(poly) < 3 {
		return false
	}
	var sign float64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// BelowSegment reports whether any of pts sits on or below the segment a-b
// within the segment's horizontal extent, or whether a segment end lies
// inside the convex hull. Y grows downward so "below" means larger Y.
func BelowSegment(pts []Vector, a, b Vector) bool {
	lo, hi := math.Min(a.X, b.X), math.Max(a.X, b.X)
	for _, p := range pts {
		if p.X < lo || p.X > hi {
			continue
		}
		if p.Y >= SurfaceY(a, b, p.X) {
			return true
		}
	}
	return InConvex(a, pts) || InConvex(b, pts)
}
