package core

import (
	"math"

	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/flight"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/vehicle"
)

// Pilot decides the control input for the next tick.
type Pilot interface {
	Intent(s *flight.Session) vehicle.Intent
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func(s *flight.Session) vehicle.Intent

func (f PilotFunc) Intent(s *flight.Session) vehicle.Intent { return f(s) }

// Idle never touches the controls.
var Idle = PilotFunc(func(*flight.Session) vehicle.Intent { return vehicle.Intent{} })

// Autopilot steers toward a pad, keeps the hull near upright and fires the
// engine whenever the descent rate exceeds a target that shrinks near the
// ground. It holds no state, so one value can fly many sessions at once.
type Autopilot struct {
	CruiseDescent float64 // target descent rate far above ground
	FinalDescent  float64 // target descent rate below FinalAltitude
	FinalAltitude float64
	MaxLean       float64 // radians
	TiltTolerance float64 // radians
	ApproachSpeed float64 // max horizontal speed while closing in on the pad
	Target        *config.PadKind
}

// NewAutopilot returns an autopilot tuned for the default thresholds.
// In precision mode it heads for the target pad.
func NewAutopilot(cfg config.Config) Autopilot {
	a := Autopilot{
		CruiseDescent: 2.5,
		FinalDescent:  1.0,
		FinalAltitude: 120,
		MaxLean:       0.35,
		TiltTolerance: 0.04,
		ApproachSpeed: 1.5,
	}
	if cfg.Mode.Mode == config.ModePrecision {
		target := cfg.Mode.TargetPad
		a.Target = &target
	}
	return a
}

// Intent implements Pilot.
func (a Autopilot) Intent(s *flight.Session) vehicle.Intent {
	b := s.Vehicle()
	if b.Status != vehicle.Flying {
		return vehicle.Intent{}
	}

	var in vehicle.Intent
	altitude := s.Profile().SurfaceY(b.Position.X) - b.Bounds().Bottom()

	lean := 0.0
	if pad, ok := a.pickPad(s, b.Position.X); ok {
		dx := pad.Surface().X - b.Position.X
		wantVX := gamemath.ClampFloat(dx/60, -a.ApproachSpeed, a.ApproachSpeed)
		lean = gamemath.ClampFloat((wantVX-b.Velocity.X)*0.5, -a.MaxLean, a.MaxLean)
	}
	if altitude < a.FinalAltitude/2 {
		lean = 0
	}

	tilt := math.Remainder(b.Rotation, 2*math.Pi)
	switch {
	case tilt < lean-a.TiltTolerance:
		in.RotateRight = true
	case tilt > lean+a.TiltTolerance:
		in.RotateLeft = true
	}

	target := a.CruiseDescent
	if altitude < a.FinalAltitude {
		target = a.FinalDescent
	}
	if b.Velocity.Y > target && math.Abs(tilt) < math.Pi/2 {
		in.Thrust = true
	}
	return in
}

func (a Autopilot) pickPad(s *flight.Session, x float64) (components.PadData, bool) {
	var best components.PadData
	found := false
	for _, p := range s.Pads() {
		if a.Target != nil && p.Kind != *a.Target {
			continue
		}
		if !found || math.Abs(p.Surface().X-x) < math.Abs(best.Surface().X-x) {
			best, found = p, true
		}
	}
	return best, found
}
