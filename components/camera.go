package components

import (
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the world point at the center of the screen.
type CameraData struct {
	Position gamemath.Vector
}

var Camera = donburi.NewComponentType[CameraData]()
