// Package padmotion computes where a pad is and how it pulses at a given
// time. Everything here is a pure function of pad kind and elapsed time so
// physics and presentation can query it independently.
package padmotion

import (
	"math"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// Period returns the time for a Hard pad to swing out and back.
func Period(m config.PadMotion) float64 {
	return 2 * m.HalfPeriod
}

// OffsetAt returns the displacement of a pad of the given kind from its
// generated position. Only Hard pads move: they swing Amplitude units to the
// right and back with sine easing on each leg.
func OffsetAt(kind config.PadKind, elapsed float64, m config.PadMotion) gamemath.Vector {
	if kind != config.PadHard || m.HalfPeriod <= 0 {
		return gamemath.Vector{}
	}
	return gamemath.Vec(yoyo(elapsed, m.HalfPeriod, 0, m.Amplitude), 0)
}

// PulseAt returns the display alpha of a pad. Power pads pulse between 1
// and PulseMinAlpha; other kinds are always opaque. Pulsing has no effect
// on the pad body.
func PulseAt(kind config.PadKind, elapsed float64, m config.PadMotion) float64 {
	if kind != config.PadPower || m.PulseHalfPeriod <= 0 {
		return 1
	}
	return yoyo(elapsed, m.PulseHalfPeriod, 1, m.PulseMinAlpha-1)
}

// PositionAt returns a pad's current surface center.
func PositionAt(base gamemath.Vector, kind config.PadKind, elapsed float64, m config.PadMotion) gamemath.Vector {
	return base.Add(OffsetAt(kind, elapsed, m))
}

// yoyo eases from begin to begin+change over half, then back over the next
// half, repeating forever.
func yoyo(elapsed, half, begin, change float64) float64 {
	if elapsed <= 0 {
		return begin
	}
	phase := math.Mod(elapsed, 2*half)
	t := phase
	if phase > half {
		t = 2*half - phase
	}
	return float64(ease.InOutSine(float32(t), float32(begin), float32(change), float32(half)))
}
