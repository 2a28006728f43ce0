package tags

import "github.com/yohamta/donburi"

var (
	Vehicle = donburi.NewTag().SetName("Vehicle")
	Pad     = donburi.NewTag().SetName("Pad")
	Terrain = donburi.NewTag().SetName("Terrain")
	Bounds  = donburi.NewTag().SetName("Bounds")
)

// Resolv tags for contact detection
const (
	ResolvVehicle = "vehicle"
	ResolvPad     = "pad"
	ResolvTerrain = "terrain"
	ResolvBounds  = "bounds"
)
