package components

import (
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/yohamta/donburi"
)

// Vehicle holds the lander's body. Only the integrator and the landing
// evaluator mutate it.
var Vehicle = donburi.NewComponentType[vehicle.Body]()
