package flight

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/landing"
	"github.com/automoto/lunar-lander/terrain"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap/zaptest"
)

const frame = 1.0 / 60.0

func testConfig() config.Config {
	cfg := config.Default()
	cfg.World.Seed = "test"
	return cfg
}

// hoverConfig puts a single easy pad on perfectly flat ground right under
// the spawn point, with the hull two units above it.
func hoverConfig(kind config.PadKind) config.Config {
	cfg := testConfig()
	cfg.World.Jitter = 0
	cfg.World.PadJitter = 0
	cfg.Pads = []config.PadSpec{{Slot: 10, Width: 100, Kind: kind}}
	ground := terrain.Baseline(cfg.World.Height, cfg.World.GroundMargin)
	cfg.Vehicle.SpawnY = ground - cfg.Vehicle.Height/2 - 2
	return cfg
}

func firstPad(t *testing.T, s *Session) *donburi.Entry {
	t.Helper()
	e, ok := components.Pad.First(s.World())
	require.True(t, ok)
	return e
}

func firstSegment(t *testing.T, s *Session) *donburi.Entry {
	t.Helper()
	e, ok := components.Segment.First(s.World())
	require.True(t, ok)
	return e
}

func flyUntilOver(t *testing.T, s *Session, in vehicle.Intent, maxTicks int) int {
	t.Helper()
	for i := 1; i <= maxTicks; i++ {
		require.NoError(t, s.Tick(frame, in))
		if s.State().Terminal() {
			return i
		}
	}
	t.Fatalf("flight still %s after %d ticks", s.State(), maxTicks)
	return 0
}

func TestNewSession(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, StateFlying, s.State())
	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Zero(t, s.Elapsed())

	b := s.Vehicle()
	assert.Equal(t, vehicle.Flying, b.Status)
	assert.InDelta(t, cfg.World.Width/2, b.Position.X, 1e-9)
	assert.InDelta(t, cfg.Vehicle.SpawnY, b.Position.Y, 1e-9)
	assert.Equal(t, cfg.Vehicle.MaxFuel, b.Fuel)
	assert.Len(t, s.Pads(), len(cfg.Pads))
	assert.NotNil(t, s.Profile())

	_, ok := s.Outcome()
	assert.False(t, ok)
}

func TestNewSessionConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"zero mass", func(c *config.Config) { c.Vehicle.Mass = 0 }, config.ErrInvalidConfig},
		{"bad thresholds", func(c *config.Config) { c.Landing.MaxTiltAngle = 0 }, config.ErrInvalidConfig},
		{"NaN gravity", func(c *config.Config) { c.Physics.Gravity = math.NaN() }, config.ErrInvalidConfig},
		{"infinite thrust", func(c *config.Config) { c.Physics.ThrustForce = math.Inf(1) }, config.ErrInvalidConfig},
		{"NaN world width", func(c *config.Config) { c.World.Width = math.NaN() }, terrain.ErrInvalidTerrainConfig},
		{"timed without limit", func(c *config.Config) {
			c.Mode.Mode = config.ModeTimed
			c.Mode.TimeLimit = 0
		}, config.ErrInvalidConfig},
		{"one segment", func(c *config.Config) {
			c.World.Segments = 1
			c.Pads = nil
		}, terrain.ErrInvalidTerrainConfig},
		{"duplicate slot", func(c *config.Config) {
			c.Pads = append(c.Pads, config.PadSpec{Slot: 5, Width: 40, Kind: config.PadHard})
		}, terrain.ErrDuplicatePadSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			s, err := New(cfg)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, s)
		})
	}
}

func TestTickRejectsInvalidDelta(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -frame} {
		require.ErrorIs(t, s.Tick(dt, vehicle.Intent{}), ErrInvalidDelta)
	}
	assert.Equal(t, StateFlying, s.State())
	assert.Zero(t, s.Elapsed())
}

func TestTickClampsLongFrames(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Tick(10, vehicle.Intent{}))
	assert.InDelta(t, cfg.Physics.MaxFrameDelta, s.Elapsed(), 1e-9)
}

func TestTickZeroDelta(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)
	before := s.Vehicle()

	require.NoError(t, s.Tick(0, vehicle.Intent{Thrust: true}))
	assert.Equal(t, before.Position, s.Vehicle().Position)
	assert.Equal(t, StateFlying, s.State())
}

func TestThrustWithoutFuel(t *testing.T) {
	cfg := testConfig()
	cfg.Vehicle.MaxFuel = 0
	s, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Tick(frame, vehicle.Intent{Thrust: true}))

	b := s.Vehicle()
	want := cfg.Physics.Gravity * (1 - cfg.Physics.Drag)
	assert.InDelta(t, want, b.Velocity.Y, 1e-9)
	assert.Zero(t, b.Fuel)
	assert.False(t, b.Thrusting)
}

func TestReportedPadContactWins(t *testing.T) {
	var outcomes []landing.Outcome
	s, err := New(testConfig(),
		WithContactDetector(false),
		WithOutcome(func(o landing.Outcome) { outcomes = append(outcomes, o) }),
	)
	require.NoError(t, err)

	pad := firstPad(t, s)
	s.ReportContact(s.Lander(), firstSegment(t, s))
	s.ReportContact(pad, s.Lander())
	require.NoError(t, s.Tick(frame, vehicle.Intent{}))

	require.Len(t, outcomes, 1)
	out := outcomes[0]
	assert.True(t, out.Success)
	assert.Equal(t, landing.ReasonSafe, out.Reason)
	kind, ok := out.Pad()
	require.True(t, ok)
	assert.Equal(t, components.Pad.Get(pad).Kind, kind)
	assert.Equal(t, StateLanded, s.State())
	assert.Equal(t, vehicle.Landed, s.Vehicle().Status)

	// Later contacts are ignored and the outcome never changes.
	s.ReportContact(s.Lander(), firstSegment(t, s))
	require.ErrorIs(t, s.Tick(frame, vehicle.Intent{}), ErrSessionOver)
	assert.Len(t, outcomes, 1)
	got, ok := s.Outcome()
	require.True(t, ok)
	assert.Equal(t, out, got)
}

func TestReportedTerrainContact(t *testing.T) {
	s, err := New(testConfig(), WithContactDetector(false))
	require.NoError(t, err)

	s.ReportContact(s.Lander(), firstSegment(t, s))
	require.NoError(t, s.Tick(frame, vehicle.Intent{}))

	out, ok := s.Outcome()
	require.True(t, ok)
	assert.False(t, out.Success)
	assert.Equal(t, landing.ReasonTerrain, out.Reason)
	assert.Equal(t, StateCrashed, s.State())
}

func TestReportContactIgnoresOtherPairs(t *testing.T) {
	s, err := New(testConfig(), WithContactDetector(false))
	require.NoError(t, err)

	s.ReportContact(firstPad(t, s), firstSegment(t, s))
	s.ReportContact(s.Lander(), s.Lander())
	s.ReportContact(nil, nil)
	require.NoError(t, s.Tick(frame, vehicle.Intent{}))

	assert.Equal(t, StateFlying, s.State())
}

func TestFreeFallCrashes(t *testing.T) {
	var ticks int
	s, err := New(testConfig(), WithTelemetry(func(Telemetry) { ticks++ }))
	require.NoError(t, err)

	n := flyUntilOver(t, s, vehicle.Intent{}, 60*30)

	out, ok := s.Outcome()
	require.True(t, ok)
	assert.False(t, out.Success)
	assert.Equal(t, StateCrashed, s.State())
	assert.Equal(t, vehicle.Crashed, s.Vehicle().Status)
	assert.Equal(t, n, ticks)
}

func TestGentleTouchdownLands(t *testing.T) {
	var last Telemetry
	s, err := New(hoverConfig(config.PadEasy), WithTelemetry(func(tm Telemetry) { last = tm }))
	require.NoError(t, err)

	flyUntilOver(t, s, vehicle.Intent{}, 120)

	out, ok := s.Outcome()
	require.True(t, ok)
	assert.True(t, out.Success, out.Reason)
	kind, ok := out.Pad()
	require.True(t, ok)
	assert.Equal(t, config.PadEasy, kind)
	assert.Equal(t, StateLanded, s.State())
	assert.Less(t, out.VerticalSpeed, 1.0)
	assert.InDelta(t, 0, last.Altitude, 1.0)
}

func TestPrecisionMode(t *testing.T) {
	t.Run("wrong pad", func(t *testing.T) {
		cfg := hoverConfig(config.PadEasy)
		cfg.Mode.Mode = config.ModePrecision
		cfg.Mode.TargetPad = config.PadHard
		s, err := New(cfg)
		require.NoError(t, err)

		flyUntilOver(t, s, vehicle.Intent{}, 120)

		out, _ := s.Outcome()
		assert.False(t, out.Success)
		assert.Equal(t, "Wrong pad! Target was hard", out.Reason)
		assert.Equal(t, StateLanded, s.State())
	})
	t.Run("target pad", func(t *testing.T) {
		cfg := hoverConfig(config.PadMedium)
		cfg.Mode.Mode = config.ModePrecision
		cfg.Mode.TargetPad = config.PadMedium
		s, err := New(cfg)
		require.NoError(t, err)

		flyUntilOver(t, s, vehicle.Intent{}, 120)

		out, _ := s.Outcome()
		assert.True(t, out.Success)
		assert.Equal(t, landing.ReasonSafe, out.Reason)
	})
}

func TestTimedModeExpires(t *testing.T) {
	cfg := testConfig()
	cfg.Mode.Mode = config.ModeTimed
	cfg.Mode.TimeLimit = 0.5
	var outcomes int
	s, err := New(cfg, WithOutcome(func(landing.Outcome) { outcomes++ }))
	require.NoError(t, err)

	flyUntilOver(t, s, vehicle.Intent{}, 60)

	out, ok := s.Outcome()
	require.True(t, ok)
	assert.False(t, out.Success)
	assert.Equal(t, ReasonOutOfTime, out.Reason)
	assert.Equal(t, StateExpired, s.State())
	assert.Equal(t, vehicle.Flying, s.Vehicle().Status)
	assert.Greater(t, s.Elapsed(), 0.5)
	assert.Equal(t, 1, outcomes)
	require.ErrorIs(t, s.Tick(frame, vehicle.Intent{}), ErrSessionOver)
}

func TestPayloadModeAddsMass(t *testing.T) {
	cfg := testConfig()
	cfg.Mode.Mode = config.ModePayload
	cfg.Mode.PayloadMassFactor = 2
	s, err := New(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 2*cfg.Vehicle.Mass, s.Vehicle().Mass, 1e-9)
}

func TestHardPadMovesWithTime(t *testing.T) {
	s, err := New(testConfig(), WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.25, vehicle.Intent{}))

	for _, p := range s.Pads() {
		if p.Kind == config.PadHard {
			assert.Greater(t, p.Offset.X, 0.0)
			assert.Greater(t, p.Surface().X, p.Pad.Position.X)
		} else {
			assert.Zero(t, p.Offset.X)
		}
	}
}

func TestTelemetryTracksFuel(t *testing.T) {
	var got []Telemetry
	cfg := testConfig()
	s, err := New(cfg, WithTelemetry(func(tm Telemetry) { got = append(got, tm) }))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Tick(frame, vehicle.Intent{Thrust: true}))
	}

	require.Len(t, got, 10)
	last := got[len(got)-1]
	assert.InDelta(t, cfg.Vehicle.MaxFuel-10*cfg.Physics.FuelDrainRate, last.Fuel, 1e-6)
	assert.InDelta(t, 10*frame, last.Elapsed, 1e-9)
	assert.Greater(t, last.Altitude, 0.0)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i].Fuel, got[i-1].Fuel)
	}
}
