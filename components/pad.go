package components

import (
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/terrain"
	"github.com/yohamta/donburi"
)

// PadData is a landing pad as generated plus its motion this tick.
type PadData struct {
	terrain.Pad
	Offset gamemath.Vector // displacement from the generated position
	Alpha  float64         // display alpha, presentation only
}

// Surface returns the pad's current surface center.
func (p *PadData) Surface() gamemath.Vector {
	return p.Pad.Position.Add(p.Offset)
}

var Pad = donburi.NewComponentType[PadData]()
