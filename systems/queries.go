package systems

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Queries are the lookups the flight systems run against one world. The
// query helpers on component types share a package-level cache keyed by
// world, so every session builds its own set instead.
type Queries struct {
	Vehicle *donburi.Query
	Pads    *donburi.Query
	Bounds  *donburi.Query
}

func NewQueries() *Queries {
	return &Queries{
		Vehicle: donburi.NewQuery(filter.Contains(tags.Vehicle, components.Vehicle)),
		Pads:    donburi.NewQuery(filter.Contains(components.Pad, components.Object)),
		Bounds:  donburi.NewQuery(filter.Contains(tags.Bounds, components.Object)),
	}
}
