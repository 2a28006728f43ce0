package factory

import (
	"github.com/automoto/lunar-lander/archetypes"
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/tags"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateVehicle creates the lander. Its resolv object tracks the axis-aligned
// bounds of the rotated hull and is used for broadphase only.
func CreateVehicle(w donburi.World, space *resolv.Space, body vehicle.Body) *donburi.Entry {
	entry := archetypes.Vehicle.Spawn(w)

	r := body.Bounds()
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvVehicle)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Vehicle.SetValue(entry, body)

	space.Add(obj)
	return entry
}
