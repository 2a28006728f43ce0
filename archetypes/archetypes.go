package archetypes

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/tags"
	"github.com/yohamta/donburi"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.Object,
	)
	Pad = newArchetype(
		tags.Pad,
		components.Pad,
		components.Object,
	)
	TerrainSegment = newArchetype(
		tags.Terrain,
		components.Segment,
		components.Object,
	)
	Bounds = newArchetype(
		tags.Bounds,
		components.Object,
	)
	Terrain = newArchetype(
		components.Terrain,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
