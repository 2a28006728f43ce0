package config

import (
	"fmt"
	"strings"
)

// PadKind classifies a landing pad. It governs pad motion and the
// difficulty label shown to the player.
type PadKind int

const (
	PadEasy PadKind = iota
	PadMedium
	PadHard
	PadPower
)

var padKindNames = map[PadKind]string{
	PadEasy:   "easy",
	PadMedium: "medium",
	PadHard:   "hard",
	PadPower:  "power",
}

// PadKinds lists every pad kind in difficulty order.
var PadKinds = []PadKind{PadEasy, PadMedium, PadHard, PadPower}

func (k PadKind) String() string {
	if name, ok := padKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PadKind(%d)", int(k))
}

// Label returns the name used for pad bodies, e.g. "pad_easy".
func (k PadKind) Label() string {
	return "pad_" + k.String()
}

// ParsePadKind parses a pad kind name, case-insensitively.
func ParsePadKind(s string) (PadKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range padKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown pad kind %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k PadKind) MarshalText() ([]byte, error) {
	if _, ok := padKindNames[k]; !ok {
		return nil, fmt.Errorf("%w: unknown pad kind %d", ErrInvalidConfig, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PadKind) UnmarshalText(text []byte) error {
	kind, err := ParsePadKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
