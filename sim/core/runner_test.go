package core

import (
	"context"
	"testing"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/flight"
	"github.com/automoto/lunar-lander/landing"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simConfig(seed string) config.Config {
	cfg := config.Default()
	cfg.World.Seed = seed
	return cfg
}

func TestRunIdleCrashes(t *testing.T) {
	res, err := Run(context.Background(), simConfig("idle"), Idle, Options{})
	require.NoError(t, err)

	assert.True(t, res.Finished)
	assert.False(t, res.Outcome.Success)
	assert.Equal(t, flight.StateCrashed, res.State)
	assert.Positive(t, res.Ticks)
	assert.InDelta(t, float64(res.Ticks)/DefaultTickRate, res.Elapsed, 1e-6)
	assert.Equal(t, "idle", res.Seed)
	assert.NotEqual(t, uuid.Nil, res.SessionID)
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	res, err := Run(context.Background(), simConfig("short"), Idle, Options{MaxTicks: 5})
	require.NoError(t, err)

	assert.False(t, res.Finished)
	assert.Equal(t, 5, res.Ticks)
	assert.Equal(t, flight.StateFlying, res.State)
}

func TestRunRealTime(t *testing.T) {
	res, err := Run(context.Background(), simConfig("paced"), Idle, Options{TickRate: 1000, MaxTicks: 3, RealTime: true})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Ticks)
}

func TestRunConfigError(t *testing.T) {
	cfg := simConfig("bad")
	cfg.Vehicle.Mass = 0

	_, err := Run(context.Background(), cfg, Idle, Options{})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, simConfig("cancelled"), Idle, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	seeds := Seeds("batch", 8)

	results, err := RunBatch(context.Background(), config.Default(), seeds, 3, Idle, Options{}, metrics)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	ids := make(map[uuid.UUID]bool)
	for i, r := range results {
		assert.Equal(t, seeds[i], r.Seed)
		assert.True(t, r.Finished)
		ids[r.SessionID] = true
	}
	assert.Len(t, ids, len(seeds))

	assert.Equal(t, float64(len(seeds)), testutil.ToFloat64(metrics.SessionsTotal.WithLabelValues("failure")))
	assert.Equal(t, 0, testutil.CollectAndCount(metrics.LandingsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.FlightSeconds))
}

func TestRunBatchParallelMatchesSerial(t *testing.T) {
	cfg := config.Default()
	seeds := Seeds("parallel", 16)
	pilot := NewAutopilot(cfg)
	opts := Options{MaxTicks: 200}

	serial, err := RunBatch(context.Background(), cfg, seeds, 1, pilot, opts, nil)
	require.NoError(t, err)
	parallel, err := RunBatch(context.Background(), cfg, seeds, 8, pilot, opts, nil)
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].State, parallel[i].State, seeds[i])
		assert.Equal(t, serial[i].Outcome, parallel[i].Outcome, seeds[i])
		assert.Equal(t, serial[i].Ticks, parallel[i].Ticks, seeds[i])
		assert.Equal(t, serial[i].FuelLeft, parallel[i].FuelLeft, seeds[i])
	}
}

func TestRunBatchFails(t *testing.T) {
	cfg := config.Default()
	cfg.World.Segments = 1

	_, err := RunBatch(context.Background(), cfg, Seeds("broken", 4), 2, Idle, Options{}, nil)
	require.Error(t, err)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []string{"x-0", "x-1", "x-2"}, Seeds("x", 3))
	assert.Empty(t, Seeds("x", 0))
}

func TestSummarize(t *testing.T) {
	easy := config.PadEasy
	results := []Result{
		{Finished: true, Outcome: landing.Outcome{Success: true, PadKind: &easy}},
		{Finished: true, Outcome: landing.Outcome{Success: true, PadKind: &easy}},
		{Finished: true, Outcome: landing.Outcome{Reason: landing.ReasonTerrain}},
		{Finished: false},
	}

	sum := Summarize(results)
	assert.Equal(t, 4, sum.Runs)
	assert.Equal(t, 2, sum.Landed)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 1, sum.Unfinished)
	assert.Equal(t, 2, sum.ByPad[config.PadEasy])
}

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hard := config.PadHard

	m.Observe(Result{Finished: true, Outcome: landing.Outcome{Success: true, PadKind: &hard}, Elapsed: 12, FuelLeft: 40})
	m.Observe(Result{Finished: true, Elapsed: 3})
	m.Observe(Result{Finished: false})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("unfinished")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LandingsTotal.WithLabelValues("hard")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Observe(Result{}) })
}
