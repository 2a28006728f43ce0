package systems

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/tags"
	"github.com/yohamta/donburi"
)

// ContactFunc receives the vehicle and the entity it touches.
type ContactFunc func(vehicle, other *donburi.Entry)

// DetectContacts reports everything the lander currently touches: pads
// first, then terrain segments, then world edges. The resolv space narrows
// the candidates; the exact test runs against the rotated hull.
func DetectContacts(w donburi.World, q *Queries, fn ContactFunc) {
	v, ok := q.Vehicle.First(w)
	if !ok {
		return
	}
	body := components.Vehicle.Get(v)
	obj := components.Object.Get(v)
	hull := body.Corners()
	bounds := body.Bounds()

	var pads, ground []*donburi.Entry
	if check := obj.Check(0, 0, tags.ResolvPad, tags.ResolvTerrain); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvPad) {
			e := components.EntryOf(o)
			if e == nil || !e.HasComponent(components.Pad) {
				continue
			}
			r := gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
			if r.Overlaps(bounds) {
				pads = append(pads, e)
			}
		}
		for _, o := range check.ObjectsByTags(tags.ResolvTerrain) {
			e := components.EntryOf(o)
			if e == nil || !e.HasComponent(components.Segment) {
				continue
			}
			seg := components.Segment.Get(e)
			if gamemath.BelowSegment(hull[:], seg.A, seg.B) {
				ground = append(ground, e)
			}
		}
	}

	for _, e := range pads {
		fn(v, e)
	}
	for _, e := range ground {
		fn(v, e)
	}

	// World edges are not in the space; test them against their rects.
	q.Bounds.Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		r := gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
		if r.Overlaps(bounds) && !touchesOnly(r, bounds) {
			fn(v, e)
		}
	})
}

// touchesOnly reports whether a and b share an edge but no area.
func touchesOnly(a, b gamemath.Rect) bool {
	return a.Right() == b.X || b.Right() == a.X || a.Bottom() == b.Y || b.Bottom() == a.Y
}
