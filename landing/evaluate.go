package landing

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/vehicle"
)

// ErrNotFlying is returned when a landing is evaluated for a lander that
// has already landed or crashed.
var ErrNotFlying = errors.New("vehicle is not flying")

const (
	ReasonSafe    = "Safe Landing!"
	ReasonTerrain = "Hit terrain!"
)

// Outcome is the result of a flight. The measured values are those at the
// moment of contact.
type Outcome struct {
	Success bool
	Reason  string
	PadKind *config.PadKind

	VerticalSpeed   float64
	HorizontalSpeed float64
	TiltAngle       float64 // radians
}

// Pad returns the pad kind landed on, if any.
func (o Outcome) Pad() (config.PadKind, bool) {
	if o.PadKind == nil {
		return 0, false
	}
	return *o.PadKind, true
}

// Evaluate decides the outcome of a contact and moves the lander into its
// terminal status. Every limit must be strictly undercut for a safe landing.
func Evaluate(b *vehicle.Body, c Contact, t config.Thresholds) (Outcome, error) {
	if b.Status != vehicle.Flying {
		return Outcome{}, fmt.Errorf("%w: status %s", ErrNotFlying, b.Status)
	}

	out := Outcome{
		VerticalSpeed:   b.Velocity.Y,
		HorizontalSpeed: math.Abs(b.Velocity.X),
		TiltAngle:       gamemath.TiltAngle(b.Rotation),
	}

	if !c.IsPad() {
		out.Reason = ReasonTerrain
		b.Freeze(vehicle.Crashed)
		return out, nil
	}

	safeV := out.VerticalSpeed < t.MaxVerticalSpeed
	safeH := out.HorizontalSpeed < t.MaxHorizontalSpeed
	safeA := out.TiltAngle < t.MaxTiltAngle
	if !safeV || !safeH || !safeA {
		out.Reason = UnsafeReason(out.VerticalSpeed, out.HorizontalSpeed, out.TiltAngle)
		b.Freeze(vehicle.Crashed)
		return out, nil
	}

	kind := c.Pad
	out.Success = true
	out.Reason = ReasonSafe
	out.PadKind = &kind
	b.Freeze(vehicle.Landed)
	return out, nil
}

// UnsafeReason formats the crash message for a touchdown outside limits.
func UnsafeReason(v, h, tilt float64) string {
	return fmt.Sprintf("Too fast or steep! V:%.1f H:%.1f A:%.1f°", v, h, gamemath.Degrees(tilt))
}
