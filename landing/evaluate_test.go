package landing

import (
	"math"
	"testing"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flyingBody(vx, vy, rot float64) *vehicle.Body {
	return &vehicle.Body{
		Velocity: gamemath.Vec(vx, vy),
		Rotation: rot,
		Fuel:     50,
		MaxFuel:  100,
		Mass:     1,
		Width:    30,
		Height:   40,
		Status:   vehicle.Flying,
	}
}

func padContact(kind config.PadKind) Contact {
	return Contact{Kind: ContactPad, Pad: kind}
}

func TestEvaluateSafeLanding(t *testing.T) {
	b := flyingBody(0.5, 1.0, 0.1)

	out, err := Evaluate(b, padContact(config.PadEasy), config.DefaultThresholds())
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "Safe Landing!", out.Reason)
	require.NotNil(t, out.PadKind)
	assert.Equal(t, config.PadEasy, *out.PadKind)
	assert.Equal(t, "easy", out.PadKind.String())
	assert.Equal(t, vehicle.Landed, b.Status)

	// Landed bodies keep their touchdown state and stop integrating.
	before := *b
	vehicle.Integrate(b, vehicle.Intent{Thrust: true}, vehicle.ParamsFrom(config.Default().Physics), 1.0/60)
	assert.Equal(t, before, *b)
}

func TestEvaluateTooFast(t *testing.T) {
	b := flyingBody(0, 5.0, 0)

	out, err := Evaluate(b, padContact(config.PadEasy), config.DefaultThresholds())
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Nil(t, out.PadKind)
	assert.Contains(t, out.Reason, "Too fast or steep!")
	assert.Contains(t, out.Reason, "V:5.0")
	assert.Equal(t, "Too fast or steep! V:5.0 H:0.0 A:0.0°", out.Reason)
	assert.Equal(t, vehicle.Crashed, b.Status)
}

func TestEvaluateTerrain(t *testing.T) {
	b := flyingBody(0, 0.1, 0)

	out, err := Evaluate(b, Contact{Kind: ContactTerrain}, config.DefaultThresholds())
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Equal(t, "Hit terrain!", out.Reason)
	assert.Nil(t, out.PadKind)
	assert.Equal(t, vehicle.Crashed, b.Status)
}

func TestEvaluateThresholdsAreStrict(t *testing.T) {
	th := config.DefaultThresholds()

	tests := []struct {
		name    string
		vx, vy  float64
		rot     float64
		success bool
	}{
		{"vertical at limit", 0, th.MaxVerticalSpeed, 0, false},
		{"vertical below limit", 0, 3.99, 0, true},
		{"horizontal at limit", th.MaxHorizontalSpeed, 1, 0, false},
		{"horizontal left at limit", -th.MaxHorizontalSpeed, 1, 0, false},
		{"horizontal left below limit", -1.99, 1, 0, true},
		{"tilt at limit", 0, 1, th.MaxTiltAngle, false},
		{"tilt just below limit", 0, 1, th.MaxTiltAngle - 1e-9, true},
		{"tilt negative below limit", 0, 1, -0.4, true},
		{"ascending", 0, -3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := flyingBody(tt.vx, tt.vy, tt.rot)
			out, err := Evaluate(b, padContact(config.PadMedium), th)
			require.NoError(t, err)
			assert.Equal(t, tt.success, out.Success, out.Reason)
		})
	}
}

func TestEvaluateTiltNormalization(t *testing.T) {
	th := config.DefaultThresholds()

	// A full turn plus a small lean is upright enough.
	b := flyingBody(0, 1, 2*math.Pi+0.2)
	out, err := Evaluate(b, padContact(config.PadHard), th)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.InDelta(t, 0.2, out.TiltAngle, 1e-9)

	// Upside down is never safe.
	b = flyingBody(0, 1, math.Pi)
	out, err = Evaluate(b, padContact(config.PadHard), th)
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.InDelta(t, math.Pi, out.TiltAngle, 1e-9)
}

func TestEvaluateReportsMeasuredValues(t *testing.T) {
	b := flyingBody(-1.5, 2.5, -0.25)

	out, err := Evaluate(b, padContact(config.PadPower), config.DefaultThresholds())
	require.NoError(t, err)

	assert.InDelta(t, 2.5, out.VerticalSpeed, 1e-9)
	assert.InDelta(t, 1.5, out.HorizontalSpeed, 1e-9)
	assert.InDelta(t, 0.25, out.TiltAngle, 1e-9)
	kind, ok := out.Pad()
	require.True(t, ok)
	assert.Equal(t, config.PadPower, kind)
}

func TestEvaluateStrictThresholds(t *testing.T) {
	b := flyingBody(0, 3.0, 0)

	out, err := Evaluate(b, padContact(config.PadEasy), config.StrictThresholds())
	require.NoError(t, err)
	assert.False(t, out.Success)
}

func TestEvaluateRequiresFlying(t *testing.T) {
	for _, status := range []vehicle.Status{vehicle.Landed, vehicle.Crashed} {
		b := flyingBody(0, 1, 0)
		b.Status = status

		_, err := Evaluate(b, padContact(config.PadEasy), config.DefaultThresholds())
		require.ErrorIs(t, err, ErrNotFlying)
		assert.Equal(t, status, b.Status)
	}
}

func TestUnsafeReasonFormat(t *testing.T) {
	assert.Equal(t, "Too fast or steep! V:4.2 H:2.5 A:28.6°", UnsafeReason(4.2, 2.5, 0.5))
}
