package systems

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/yohamta/donburi"
)

// UpdateVehicle integrates the lander for dt seconds and syncs its
// broadphase body to the bounds of the rotated hull.
func UpdateVehicle(w donburi.World, q *Queries, in vehicle.Intent, p vehicle.Params, dt float64) {
	e, ok := q.Vehicle.First(w)
	if !ok {
		return
	}
	body := components.Vehicle.Get(e)
	vehicle.Integrate(body, in, p, dt)
	SyncVehicleObject(e)
}

// SyncVehicleObject copies the hull bounds onto the vehicle's resolv object.
func SyncVehicleObject(e *donburi.Entry) {
	body := components.Vehicle.Get(e)
	obj := components.Object.Get(e)

	r := body.Bounds()
	obj.X, obj.Y = r.X, r.Y
	obj.W, obj.H = r.W, r.H
	obj.Update()
}
