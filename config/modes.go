package config

import (
	"fmt"
	"strings"

	"github.com/automoto/lunar-lander/shared/gamemath"
)

// GameModeID represents the flight rules in effect for a session
type GameModeID int

const (
	ModeFree      GameModeID = iota // Land on any pad
	ModePrecision                   // Land on the target pad kind
	ModeTimed                       // Land before the time limit
	ModePayload                     // Heavier lander
)

// GameModes lists every mode in menu order.
var GameModes = []GameModeID{ModeFree, ModePrecision, ModeTimed, ModePayload}

var gameModeNames = map[GameModeID]string{
	ModeFree:      "free",
	ModePrecision: "precision",
	ModeTimed:     "timed",
	ModePayload:   "payload",
}

var gameModeTitles = map[GameModeID]string{
	ModeFree:      "Free Descent Mode",
	ModePrecision: "Precision Landing",
	ModeTimed:     "Timed Mode",
	ModePayload:   "Payload Mode",
}

func (m GameModeID) String() string {
	if name, ok := gameModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GameModeID(%d)", int(m))
}

// Title returns the menu label of the mode.
func (m GameModeID) Title() string {
	return gameModeTitles[m]
}

// ParseGameMode parses a mode name, case-insensitively.
func ParseGameMode(s string) (GameModeID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range gameModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown game mode %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m GameModeID) MarshalText() ([]byte, error) {
	if _, ok := gameModeNames[m]; !ok {
		return nil, fmt.Errorf("%w: unknown game mode %d", ErrInvalidConfig, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *GameModeID) UnmarshalText(text []byte) error {
	mode, err := ParseGameMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Validate checks the parameters of the selected mode.
func (mc ModeConfig) Validate() error {
	if !gamemath.Finite(mc.TimeLimit, mc.PayloadMassFactor) {
		return fmt.Errorf("%w: mode values must be finite", ErrInvalidConfig)
	}
	if _, ok := gameModeNames[mc.Mode]; !ok {
		return fmt.Errorf("%w: unknown game mode %d", ErrInvalidConfig, int(mc.Mode))
	}
	switch mc.Mode {
	case ModePrecision:
		if _, ok := padKindNames[mc.TargetPad]; !ok {
			return fmt.Errorf("%w: unknown target pad %d", ErrInvalidConfig, int(mc.TargetPad))
		}
	case ModeTimed:
		if mc.TimeLimit <= 0 {
			return fmt.Errorf("%w: time limit must be positive", ErrInvalidConfig)
		}
	case ModePayload:
		if mc.PayloadMassFactor <= 0 {
			return fmt.Errorf("%w: payload mass factor must be positive", ErrInvalidConfig)
		}
	}
	return nil
}

// WithMode returns a copy of c running the given mode.
func (c Config) WithMode(mode GameModeID) Config {
	c.Mode.Mode = mode
	c.Pads = append([]PadSpec(nil), c.Pads...)
	return c
}

// EffectiveMass returns the vehicle mass after mode adjustments.
func (c Config) EffectiveMass() float64 {
	if c.Mode.Mode == ModePayload {
		return c.Vehicle.Mass * c.Mode.PayloadMassFactor
	}
	return c.Vehicle.Mass
}
