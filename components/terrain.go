package components

import (
	"github.com/automoto/lunar-lander/terrain"
	"github.com/yohamta/donburi"
)

// TerrainData is the singleton ground profile of a flight.
type TerrainData struct {
	Profile *terrain.Profile
}

var Terrain = donburi.NewComponentType[TerrainData]()

// SegmentData is one edge of the ground surface.
type SegmentData struct {
	terrain.Segment
	Index int
}

var Segment = donburi.NewComponentType[SegmentData]()
