// Package terrain generates the jagged ground profile and embeds flat
// landing pads in it.
package terrain

import (
	"sort"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
)

// Pad is a landing pad registered at generation time. Position is the
// center of the pad's top surface.
type Pad struct {
	Slot     int
	Position gamemath.Vector
	Width    float64
	Kind     config.PadKind
}

// Rect returns the pad's body at rest: the top edge sits on the surface.
func (p Pad) Rect(thickness float64) gamemath.Rect {
	return gamemath.Rect{
		X: p.Position.X - p.Width/2,
		Y: p.Position.Y,
		W: p.Width,
		H: thickness,
	}
}

// Profile is a closed ground polygon. It is immutable once generated.
type Profile struct {
	width, height float64
	points        []gamemath.Vector
	pads          []Pad
	padSegments   map[int]int // pad slot -> index of its first boundary point
}

// Width returns the world width the profile spans.
func (p *Profile) Width() float64 { return p.width }

// Height returns the world height; the closing points sit at this y.
func (p *Profile) Height() float64 { return p.height }

// Points returns a copy of the polygon, bottom-left first.
func (p *Profile) Points() []gamemath.Vector {
	return append([]gamemath.Vector(nil), p.points...)
}

// Pads returns a copy of the registered pads sorted by slot.
func (p *Profile) Pads() []Pad {
	return append([]Pad(nil), p.pads...)
}

// Segment is one edge of the ground surface.
type Segment struct {
	A, B gamemath.Vector
}

// Segments returns the surface edges, excluding the two edges that close
// the polygon along the world bottom.
func (p *Profile) Segments() []Segment {
	if len(p.points) < 4 {
		return nil
	}
	// points[0] is bottom-left and the last point is bottom-right.
	surface := p.points[1 : len(p.points)-1]
	segs := make([]Segment, 0, len(surface)-1)
	for i := 0; i+1 < len(surface); i++ {
		segs = append(segs, Segment{A: surface[i], B: surface[i+1]})
	}
	return segs
}

// PadBoundary returns the two surface points of the column holding the pad
// in the given slot.
func (p *Profile) PadBoundary(slot int) (gamemath.Vector, gamemath.Vector, bool) {
	i, ok := p.padSegments[slot]
	if !ok {
		return gamemath.Vector{}, gamemath.Vector{}, false
	}
	return p.points[i], p.points[i+1], true
}

// SurfaceY returns the ground height under x. x outside the world is
// clamped to the nearest edge.
func (p *Profile) SurfaceY(x float64) float64 {
	segs := p.Segments()
	if len(segs) == 0 {
		return p.height
	}
	x = gamemath.ClampFloat(x, 0, p.width)
	i := sort.Search(len(segs), func(i int) bool { return segs[i].B.X >= x })
	if i == len(segs) {
		i = len(segs) - 1
	}
	return gamemath.SurfaceY(segs[i].A, segs[i].B, x)
}

// Baseline returns the nominal ground level of the profile.
func Baseline(worldHeight, margin float64) float64 {
	return worldHeight - margin
}
