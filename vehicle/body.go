// Package vehicle holds the lander's physical state and the integrator that
// advances it.
package vehicle

import (
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
)

// Status is the lander's flight status. Landed and Crashed are absorbing.
type Status int

const (
	Flying Status = iota
	Landed
	Crashed
)

func (s Status) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}

// Intent is the pilot's control input for one tick.
type Intent struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}

// Body is the lander's mutable physical state. Position is the hull center.
type Body struct {
	Position        gamemath.Vector
	Velocity        gamemath.Vector // units per reference frame
	Rotation        float64         // radians, never normalized
	AngularVelocity float64         // radians per reference frame
	Fuel            float64
	MaxFuel         float64
	Mass            float64
	Width, Height   float64
	Status          Status

	Thrusting bool // thrust was applied during the last step
}

// NewBody returns a full-tank lander at rest at spawn.
func NewBody(spawn gamemath.Vector, vc config.VehicleConfig, mass float64) Body {
	return Body{
		Position: spawn,
		Fuel:     vc.MaxFuel,
		MaxFuel:  vc.MaxFuel,
		Mass:     mass,
		Width:    vc.Width,
		Height:   vc.Height,
		Status:   Flying,
	}
}

// Corners returns the rotated hull.
func (b *Body) Corners() [4]gamemath.Vector {
	return gamemath.RotatedRect(b.Position, b.Width, b.Height, b.Rotation)
}

// Bounds returns the axis-aligned bounds of the rotated hull.
func (b *Body) Bounds() gamemath.Rect {
	c := b.Corners()
	return gamemath.BoundsOf(c[:])
}

// FuelFraction returns remaining fuel in [0, 1].
func (b *Body) FuelFraction() float64 {
	if b.MaxFuel <= 0 {
		return 0
	}
	return gamemath.ClampFloat(b.Fuel/b.MaxFuel, 0, 1)
}

// Freeze marks the body Landed or Crashed. A landed body keeps the velocity
// and rotation it touched down with.
func (b *Body) Freeze(s Status) {
	b.Status = s
	b.Thrusting = false
}
