package terrain

import (
	"math"
	"testing"

	"github.com/automoto/lunar-lander/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() Params {
	return ParamsFrom(config.Default())
}

func TestGenerate_FlatPadInvariant(t *testing.T) {
	p := defaultParams()
	for i := 0; i < 200; i++ {
		prof, err := Generate(p, nil)
		require.NoError(t, err)
		require.Len(t, prof.Pads(), len(p.Pads))

		for _, pad := range prof.Pads() {
			a, b, ok := prof.PadBoundary(pad.Slot)
			require.True(t, ok, "slot %d has no boundary", pad.Slot)
			assert.Equal(t, a.Y, b.Y, "pad in slot %d is not flat", pad.Slot)
			assert.Equal(t, a.Y, pad.Position.Y)
			assert.InDelta(t, (a.X+b.X)/2, pad.Position.X, 1e-9)
		}
	}
}

func TestGenerate_ProfileShape(t *testing.T) {
	p := defaultParams()
	prof, err := Generate(p, NewRand("shape"))
	require.NoError(t, err)

	pts := prof.Points()
	// start, baseline anchor, one point per plain column, two per pad column, end
	assert.Len(t, pts, 2+p.Segments+len(p.Pads)+1)

	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, p.WorldHeight, pts[0].Y)
	last := pts[len(pts)-1]
	assert.Equal(t, p.WorldWidth, last.X)
	assert.Equal(t, p.WorldHeight, last.Y)

	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].X, pts[i-1].X, "x decreases at point %d", i)
	}

	baseline := Baseline(p.WorldHeight, p.GroundMargin)
	for _, pt := range pts[1 : len(pts)-1] {
		assert.InDelta(t, baseline, pt.Y, p.Jitter)
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	p := defaultParams()
	a, err := Generate(p, NewRand("apollo"))
	require.NoError(t, err)
	b, err := Generate(p, NewRand("apollo"))
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, a.Pads(), b.Pads())
}

func TestGenerate_PadsSortedBySlot(t *testing.T) {
	prof, err := Generate(defaultParams(), NewRand("sorted"))
	require.NoError(t, err)

	pads := prof.Pads()
	for i := 1; i < len(pads); i++ {
		assert.Less(t, pads[i-1].Slot, pads[i].Slot)
	}
	assert.Equal(t, config.PadEasy, pads[0].Kind)
	assert.Equal(t, config.PadPower, pads[1].Kind)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
		dup    bool
	}{
		{name: "zero segments", mutate: func(p *Params) { p.Segments = 0; p.Pads = nil }},
		{name: "one segment", mutate: func(p *Params) { p.Segments = 1; p.Pads = nil }},
		{name: "zero width", mutate: func(p *Params) { p.WorldWidth = 0 }},
		{name: "negative height", mutate: func(p *Params) { p.WorldHeight = -1 }},
		{name: "slot out of range", mutate: func(p *Params) { p.Pads = []config.PadSpec{{Slot: 20, Width: 10}} }},
		{name: "negative slot", mutate: func(p *Params) { p.Pads = []config.PadSpec{{Slot: -1, Width: 10}} }},
		{name: "NaN width", mutate: func(p *Params) { p.WorldWidth = math.NaN() }},
		{name: "infinite jitter", mutate: func(p *Params) { p.Jitter = math.Inf(1) }},
		{name: "NaN pad width", mutate: func(p *Params) { p.Pads = []config.PadSpec{{Slot: 3, Width: math.NaN()}} }},
		{name: "zero pad width", mutate: func(p *Params) { p.Pads = []config.PadSpec{{Slot: 3, Width: 0}} }},
		{name: "more pads than segments", mutate: func(p *Params) {
			p.Segments = 2
			p.Pads = []config.PadSpec{{Slot: 0, Width: 1}, {Slot: 1, Width: 1}, {Slot: 1, Width: 1}}
		}},
		{
			name: "duplicate slot",
			mutate: func(p *Params) {
				p.Pads = []config.PadSpec{{Slot: 4, Width: 50, Kind: config.PadEasy}, {Slot: 4, Width: 20, Kind: config.PadHard}}
			},
			dup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			prof, err := Generate(p, nil)
			require.Error(t, err)
			assert.Nil(t, prof)
			assert.ErrorIs(t, err, ErrInvalidTerrainConfig)
			if tt.dup {
				assert.ErrorIs(t, err, ErrDuplicatePadSlot)
			}
		})
	}
}

func TestGenerate_TwoSegmentsIsEnough(t *testing.T) {
	p := defaultParams()
	p.Segments = 2
	p.Pads = []config.PadSpec{{Slot: 1, Width: 30, Kind: config.PadMedium}}

	prof, err := Generate(p, NewRand("tiny"))
	require.NoError(t, err)
	require.Len(t, prof.Pads(), 1)
	assert.Len(t, prof.Segments(), 3)
}

func TestProfile_SurfaceY(t *testing.T) {
	p := defaultParams()
	p.Jitter = 0
	p.PadJitter = 0
	prof, err := Generate(p, NewRand("flat"))
	require.NoError(t, err)

	baseline := Baseline(p.WorldHeight, p.GroundMargin)
	for _, x := range []float64{-50, 0, 17, p.WorldWidth / 2, p.WorldWidth, p.WorldWidth + 50} {
		assert.Equal(t, baseline, prof.SurfaceY(x), "x=%v", x)
	}
}

func TestProfile_AccessorsReturnCopies(t *testing.T) {
	prof, err := Generate(defaultParams(), NewRand("copy"))
	require.NoError(t, err)

	pts := prof.Points()
	pts[1].Y = -1
	assert.NotEqual(t, -1.0, prof.Points()[1].Y)

	pads := prof.Pads()
	pads[0].Width = 0
	assert.NotZero(t, prof.Pads()[0].Width)
}
