// Package flight runs one lander descent: it owns the world, advances it
// tick by tick and decides the outcome exactly once.
package flight

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/landing"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/systems"
	"github.com/automoto/lunar-lander/systems/factory"
	"github.com/automoto/lunar-lander/terrain"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const (
	ReasonOutOfTime = "Out of time!"
	reasonWrongPad  = "Wrong pad! Target was "
)

// Session is a single flight. It is not safe for concurrent use; separate
// sessions share nothing.
type Session struct {
	id  uuid.UUID
	cfg config.Config
	log *zap.Logger
	rng *rand.Rand

	onTelemetry func(Telemetry)
	onOutcome   func(landing.Outcome)
	detect      bool

	state   State
	world   donburi.World
	queries *systems.Queries
	space   *resolv.Space
	profile *terrain.Profile
	lander  *donburi.Entry
	params  vehicle.Params
	elapsed float64

	pending    []*donburi.Entry
	outcome    landing.Outcome
	hasOutcome bool
}

// New validates cfg, generates the terrain and builds the world. The
// returned session is Flying. Configuration errors wrap
// config.ErrInvalidConfig or terrain.ErrInvalidTerrainConfig.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	s := &Session{
		id:     uuid.New(),
		cfg:    cfg,
		log:    zap.NewNop(),
		detect: true,
		state:  StateInitializing,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(
		zap.String("session_id", s.id.String()),
		zap.Stringer("mode", cfg.Mode.Mode),
	)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flight config: %w", err)
	}
	if s.rng == nil {
		s.rng = terrain.NewRand(cfg.World.Seed)
	}

	prof, err := terrain.Generate(terrain.ParamsFrom(cfg), s.rng)
	if err != nil {
		return nil, fmt.Errorf("flight terrain: %w", err)
	}
	s.build(prof)

	s.state = StateFlying
	s.log.Info("flight started",
		zap.Int("points", len(prof.Points())),
		zap.Int("pads", len(prof.Pads())),
		zap.Float64("mass", cfg.EffectiveMass()),
	)
	return s, nil
}

// worldMu serializes world creation; donburi hands out world ids from a
// package-level counter.
var worldMu sync.Mutex

func newWorld() donburi.World {
	worldMu.Lock()
	defer worldMu.Unlock()
	return donburi.NewWorld()
}

func (s *Session) build(prof *terrain.Profile) {
	cfg := s.cfg
	s.profile = prof
	s.params = vehicle.ParamsFrom(cfg.Physics)
	s.world = newWorld()
	s.queries = systems.NewQueries()
	s.space = factory.CreateSpace(cfg.World.Width, cfg.World.Height, cfg.PadMotion.SpaceCellSize)

	factory.CreateTerrain(s.world, s.space, prof, cfg.PadMotion.TerrainThickness)
	for _, pad := range prof.Pads() {
		factory.CreatePad(s.world, s.space, pad, cfg.PadMotion.PadHitboxHeight)
	}
	factory.CreateBounds(s.world, cfg.World.Width, cfg.World.Height, cfg.PadMotion.BoundsThickness)

	spawn := gamemath.Vec(cfg.World.Width/2, cfg.Vehicle.SpawnY)
	s.lander = factory.CreateVehicle(s.world, s.space, vehicle.NewBody(spawn, cfg.Vehicle, cfg.EffectiveMass()))
}

// Tick advances the flight by dt seconds under the given intent. Contacts
// reported since the previous tick are resolved first. Long ticks are
// clamped and split into sub-steps.
func (s *Session) Tick(dt float64, in vehicle.Intent) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	if s.state != StateFlying {
		return fmt.Errorf("%w: %s", ErrSessionOver, s.state)
	}

	if !s.resolve() {
		dt = math.Min(dt, s.cfg.Physics.MaxFrameDelta)
		steps := int(math.Ceil(dt/s.cfg.Physics.MaxStep - 1e-9))
		if steps < 1 {
			steps = 1
		}
		step := dt / float64(steps)
		for i := 0; i < steps && s.state == StateFlying; i++ {
			s.step(step, in)
		}
	}

	if s.onTelemetry != nil {
		s.onTelemetry(s.telemetry(components.Vehicle.Get(s.lander)))
	}
	return nil
}

func (s *Session) step(dt float64, in vehicle.Intent) {
	s.elapsed += dt
	systems.UpdatePads(s.world, s.queries, s.elapsed, s.cfg.PadMotion)
	systems.UpdateVehicle(s.world, s.queries, in, s.params, dt)

	if s.detect {
		systems.DetectContacts(s.world, s.queries, func(_, other *donburi.Entry) {
			s.pending = append(s.pending, other)
		})
	}
	if s.resolve() {
		return
	}

	if s.cfg.Mode.Mode == config.ModeTimed && s.elapsed > s.cfg.Mode.TimeLimit {
		body := components.Vehicle.Get(s.lander)
		s.finish(landing.Outcome{
			Reason:          ReasonOutOfTime,
			VerticalSpeed:   body.Velocity.Y,
			HorizontalSpeed: math.Abs(body.Velocity.X),
			TiltAngle:       gamemath.TiltAngle(body.Rotation),
		}, StateExpired)
	}
}

// ReportContact queues a collision between two entities. Pairs that do not
// involve the lander are ignored, as is everything after the flight ends.
func (s *Session) ReportContact(a, b *donburi.Entry) {
	if s.state != StateFlying || s.lander == nil {
		return
	}
	switch {
	case s.isLander(a) && !s.isLander(b):
		s.pending = append(s.pending, b)
	case s.isLander(b) && !s.isLander(a):
		s.pending = append(s.pending, a)
	}
}

func (s *Session) isLander(e *donburi.Entry) bool {
	return e != nil && e.Entity() == s.lander.Entity()
}

// resolve evaluates the queued contacts, if any. The first pad contact wins;
// without one the first terrain contact does. Reports whether the flight
// ended.
func (s *Session) resolve() bool {
	if len(s.pending) == 0 {
		return false
	}
	queued := s.pending
	s.pending = nil
	if s.state != StateFlying {
		return false
	}

	chosen := landing.Classify(queued[0])
	for _, e := range queued {
		c := landing.Classify(e)
		s.log.Debug("contact", zap.Stringer("kind", c.Kind))
		if c.IsPad() {
			chosen = c
			break
		}
	}

	body := components.Vehicle.Get(s.lander)
	out, err := landing.Evaluate(body, chosen, s.cfg.Landing)
	if err != nil {
		// The body and the session disagree about the flight state.
		s.log.Error("evaluate landing", zap.Error(err))
		return false
	}
	out = s.applyMode(out)

	state := StateCrashed
	if body.Status == vehicle.Landed {
		state = StateLanded
	}
	s.finish(out, state)
	return true
}

// applyMode turns a safe landing on the wrong pad into a failure in
// precision mode.
func (s *Session) applyMode(out landing.Outcome) landing.Outcome {
	if s.cfg.Mode.Mode != config.ModePrecision || !out.Success {
		return out
	}
	if kind, ok := out.Pad(); ok && kind != s.cfg.Mode.TargetPad {
		out.Success = false
		out.Reason = reasonWrongPad + s.cfg.Mode.TargetPad.String()
	}
	return out
}

func (s *Session) finish(out landing.Outcome, state State) {
	if s.hasOutcome {
		return
	}
	s.outcome = out
	s.hasOutcome = true
	s.state = state

	fields := []zap.Field{
		zap.Stringer("state", state),
		zap.Bool("success", out.Success),
		zap.String("reason", out.Reason),
		zap.Float64("elapsed", s.elapsed),
	}
	if kind, ok := out.Pad(); ok {
		fields = append(fields, zap.Stringer("pad", kind))
	}
	s.log.Info("flight ended", fields...)

	if s.onOutcome != nil {
		s.onOutcome(out)
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config { return s.cfg }

// Elapsed returns simulated seconds since the flight started.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Profile returns the generated terrain.
func (s *Session) Profile() *terrain.Profile { return s.profile }

// World returns the session's entity world for presentation queries.
func (s *Session) World() donburi.World { return s.world }

// Space returns the collision space.
func (s *Session) Space() *resolv.Space { return s.space }

// Lander returns the lander's entry.
func (s *Session) Lander() *donburi.Entry { return s.lander }

// Vehicle returns a copy of the lander state.
func (s *Session) Vehicle() vehicle.Body {
	return *components.Vehicle.Get(s.lander)
}

// Pads returns the pads with their current offsets.
func (s *Session) Pads() []components.PadData {
	var pads []components.PadData
	s.queries.Pads.Each(s.world, func(e *donburi.Entry) {
		pads = append(pads, *components.Pad.Get(e))
	})
	return pads
}

// Outcome returns the flight result once the flight has ended.
func (s *Session) Outcome() (landing.Outcome, bool) {
	return s.outcome, s.hasOutcome
}
