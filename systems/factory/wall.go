package factory

import (
	"math"

	"github.com/automoto/lunar-lander/archetypes"
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/tags"
	"github.com/automoto/lunar-lander/terrain"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateTerrain registers the ground profile and one body per surface edge.
// Edge bodies use rectangular bounds for detection; the surface height is
// calculated from the segment in the contact system.
func CreateTerrain(w donburi.World, space *resolv.Space, prof *terrain.Profile, thickness float64) *donburi.Entry {
	entry := archetypes.Terrain.Spawn(w)
	components.Terrain.SetValue(entry, components.TerrainData{Profile: prof})

	for i, seg := range prof.Segments() {
		CreateTerrainSegment(w, space, i, seg, thickness)
	}
	return entry
}

// CreateTerrainSegment creates the body of one surface edge.
func CreateTerrainSegment(w donburi.World, space *resolv.Space, index int, seg terrain.Segment, thickness float64) *donburi.Entry {
	entry := archetypes.TerrainSegment.Spawn(w)

	x := math.Min(seg.A.X, seg.B.X)
	y := math.Min(seg.A.Y, seg.B.Y)
	width := math.Max(math.Abs(seg.B.X-seg.A.X), 1)
	height := math.Max(math.Abs(seg.B.Y-seg.A.Y), thickness)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvTerrain)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Segment.SetValue(entry, components.SegmentData{Segment: seg, Index: index})

	space.Add(obj)
	return entry
}

// CreateBounds creates the four world edge walls just outside the world.
// They are not added to the space; the contact system tests them against
// the world rectangle directly.
func CreateBounds(w donburi.World, width, height, thickness float64) []*donburi.Entry {
	rects := [][4]float64{
		{-thickness, -thickness, thickness, height + 2*thickness}, // left
		{width, -thickness, thickness, height + 2*thickness},      // right
		{0, -thickness, width, thickness},                         // top
		{0, height, width, thickness},                             // bottom
	}

	walls := make([]*donburi.Entry, 0, len(rects))
	for _, r := range rects {
		entry := archetypes.Bounds.Spawn(w)
		obj := resolv.NewObject(r[0], r[1], r[2], r[3], tags.ResolvBounds)
		obj.SetShape(resolv.NewRectangle(0, 0, r[2], r[3]))
		obj.Data = entry
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
		walls = append(walls, entry)
	}
	return walls
}
