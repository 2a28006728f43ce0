package flight

import (
	"math"

	"github.com/automoto/lunar-lander/vehicle"
)

// Telemetry is the per-tick readout for the HUD.
type Telemetry struct {
	Fuel            float64
	VerticalSpeed   float64 // signed, positive is descending
	HorizontalSpeed float64 // absolute
	Rotation        float64 // radians, as stored
	Altitude        float64 // hull bottom to ground below the hull center
	Elapsed         float64
}

func (s *Session) telemetry(b *vehicle.Body) Telemetry {
	bottom := b.Bounds().Bottom()
	return Telemetry{
		Fuel:            b.Fuel,
		VerticalSpeed:   b.Velocity.Y,
		HorizontalSpeed: math.Abs(b.Velocity.X),
		Rotation:        b.Rotation,
		Altitude:        math.Max(0, s.profile.SurfaceY(b.Position.X)-bottom),
		Elapsed:         s.elapsed,
	}
}
