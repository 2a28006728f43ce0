package terrain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidTerrainConfig is returned when no terrain can be built from
	// the parameters.
	ErrInvalidTerrainConfig = errors.New("invalid terrain config")

	// ErrDuplicatePadSlot is returned when two pads request the same column.
	// It wraps ErrInvalidTerrainConfig.
	ErrDuplicatePadSlot = fmt.Errorf("%w: duplicate pad slot", ErrInvalidTerrainConfig)
)

// Params describes the terrain to generate.
type Params struct {
	WorldWidth   float64
	WorldHeight  float64
	Segments     int
	GroundMargin float64
	Jitter       float64
	PadJitter    float64
	Pads         []config.PadSpec
}

// ParamsFrom builds generation parameters from a session config.
func ParamsFrom(c config.Config) Params {
	return Params{
		WorldWidth:   c.World.Width,
		WorldHeight:  c.World.Height,
		Segments:     c.World.Segments,
		GroundMargin: c.World.GroundMargin,
		Jitter:       c.World.Jitter,
		PadJitter:    c.World.PadJitter,
		Pads:         c.Pads,
	}
}

// Validate checks the parameters without generating anything.
func (p Params) Validate() error {
	if !gamemath.Finite(p.WorldWidth, p.WorldHeight, p.GroundMargin, p.Jitter, p.PadJitter) {
		return fmt.Errorf("%w: world values must be finite", ErrInvalidTerrainConfig)
	}
	if p.WorldWidth <= 0 || p.WorldHeight <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidTerrainConfig, p.WorldWidth, p.WorldHeight)
	}
	if p.Segments < 2 {
		return fmt.Errorf("%w: %d segments, need at least 2", ErrInvalidTerrainConfig, p.Segments)
	}
	if p.Jitter < 0 || p.PadJitter < 0 {
		return fmt.Errorf("%w: negative jitter", ErrInvalidTerrainConfig)
	}
	if len(p.Pads) > p.Segments {
		return fmt.Errorf("%w: %d pads do not fit in %d segments", ErrInvalidTerrainConfig, len(p.Pads), p.Segments)
	}

	seen := make(map[int]int, len(p.Pads))
	for i, pad := range p.Pads {
		if pad.Slot < 0 || pad.Slot >= p.Segments {
			return fmt.Errorf("%w: pad %d slot %d outside [0, %d)", ErrInvalidTerrainConfig, i, pad.Slot, p.Segments)
		}
		if pad.Width <= 0 || !gamemath.Finite(pad.Width) {
			return fmt.Errorf("%w: pad %d width %v", ErrInvalidTerrainConfig, i, pad.Width)
		}
		if first, dup := seen[pad.Slot]; dup {
			return fmt.Errorf("%w: pads %d and %d both request slot %d", ErrDuplicatePadSlot, first, i, pad.Slot)
		}
		seen[pad.Slot] = i
	}
	return nil
}

// NewRand returns a random source for generation. A non-empty seed phrase
// always yields the same sequence.
func NewRand(seed string) *rand.Rand {
	if seed == "" {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>17|1))
	}
	h := xxhash.Sum64String(seed)
	return rand.New(rand.NewPCG(h, xxhash.Sum64String(seed+"/terrain")))
}

// Generate builds a profile. Each column gets a height jittered around the
// baseline; pad columns get one flat height shared by both boundary points.
func Generate(p Params, rng *rand.Rand) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand("")
	}

	bySlot := make(map[int]config.PadSpec, len(p.Pads))
	for _, pad := range p.Pads {
		bySlot[pad.Slot] = pad
	}

	baseline := Baseline(p.WorldHeight, p.GroundMargin)
	colW := p.WorldWidth / float64(p.Segments)

	prof := &Profile{
		width:       p.WorldWidth,
		height:      p.WorldHeight,
		points:      make([]gamemath.Vector, 0, p.Segments+len(p.Pads)+3),
		pads:        make([]Pad, 0, len(p.Pads)),
		padSegments: make(map[int]int, len(p.Pads)),
	}
	prof.points = append(prof.points,
		gamemath.Vec(0, p.WorldHeight), // bottom left
		gamemath.Vec(0, baseline),      // start of terrain
	)

	for i := 0; i < p.Segments; i++ {
		left := float64(i) * colW
		right := float64(i+1) * colW
		if i == p.Segments-1 {
			right = p.WorldWidth
		}

		spec, isPad := bySlot[i]
		if !isPad {
			prof.points = append(prof.points, gamemath.Vec(right, baseline+jitter(rng, p.Jitter)))
			continue
		}

		y := baseline + jitter(rng, p.PadJitter)
		prof.padSegments[i] = len(prof.points)
		prof.points = append(prof.points, gamemath.Vec(left, y), gamemath.Vec(right, y))
		prof.pads = append(prof.pads, Pad{
			Slot:     i,
			Position: gamemath.Vec(left+colW/2, y),
			Width:    spec.Width,
			Kind:     spec.Kind,
		})
	}

	prof.points = append(prof.points, gamemath.Vec(p.WorldWidth, p.WorldHeight)) // bottom right

	sort.Slice(prof.pads, func(i, j int) bool { return prof.pads[i].Slot < prof.pads[j].Slot })
	return prof, nil
}

// jitter returns a value in [-amount, amount).
func jitter(rng *rand.Rand, amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return rng.Float64()*2*amount - amount
}
