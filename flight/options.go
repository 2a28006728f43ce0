package flight

import (
	"math/rand/v2"

	"github.com/automoto/lunar-lander/landing"
	"go.uber.org/zap"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the terrain random source. The default derives one from
// the configured seed phrase.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithTelemetry registers a callback invoked once per tick while flying
// and on the tick that ends the flight.
func WithTelemetry(fn func(Telemetry)) Option {
	return func(s *Session) {
		s.onTelemetry = fn
	}
}

// WithOutcome registers a callback invoked exactly once when the flight ends.
func WithOutcome(fn func(landing.Outcome)) Option {
	return func(s *Session) {
		s.onOutcome = fn
	}
}

// WithContactDetector toggles the built-in contact detector. Hosts that
// run their own collision pass disable it and call ReportContact.
func WithContactDetector(enabled bool) Option {
	return func(s *Session) {
		s.detect = enabled
	}
}
