package vehicle

import (
	"math"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
)

// Params are the integrator constants. Rates are per reference frame.
type Params struct {
	ReferenceHz    float64
	Gravity        float64
	ThrustForce    float64
	RotationSpeed  float64
	Drag           float64
	AngularDamping float64
	FuelDrainRate  float64
}

// ParamsFrom extracts the integrator constants from a physics config.
func ParamsFrom(p config.PhysicsConfig) Params {
	return Params{
		ReferenceHz:    p.ReferenceHz,
		Gravity:        p.Gravity,
		ThrustForce:    p.ThrustForce,
		RotationSpeed:  p.RotationSpeed,
		Drag:           p.Drag,
		AngularDamping: p.AngularDamping,
		FuelDrainRate:  p.FuelDrainRate,
	}
}

// Integrate advances b by dt seconds. It does nothing unless b is Flying.
// dt must be finite and non-negative; the caller checks.
func Integrate(b *Body, in Intent, p Params, dt float64) {
	if b.Status != Flying {
		return
	}
	frames := dt * p.ReferenceHz

	// --- Thrust ---
	b.Thrusting = false
	if in.Thrust && b.Fuel > 0 && b.Mass > 0 {
		accel := gamemath.FromAngle(b.Rotation - math.Pi/2).Scale(p.ThrustForce / b.Mass)
		b.Velocity = b.Velocity.Add(accel.Scale(frames))
		b.Fuel = math.Max(0, b.Fuel-p.FuelDrainRate*frames)
		b.Thrusting = true
	}

	// --- Gravity ---
	b.Velocity.Y += p.Gravity * frames

	// --- Air friction ---
	b.Velocity.X = gamemath.ApplyDrag(b.Velocity.X, p.Drag, frames)
	b.Velocity.Y = gamemath.ApplyDrag(b.Velocity.Y, p.Drag, frames)

	// --- Rotation input ---
	switch {
	case in.RotateLeft && !in.RotateRight:
		b.AngularVelocity = -p.RotationSpeed
	case in.RotateRight && !in.RotateLeft:
		b.AngularVelocity = p.RotationSpeed
	default:
		b.AngularVelocity = gamemath.ApplyDrag(b.AngularVelocity, p.AngularDamping, frames)
	}

	b.Position = b.Position.Add(b.Velocity.Scale(frames))
	b.Rotation += b.AngularVelocity * frames
}
