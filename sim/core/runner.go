// Package core flies lander sessions without a window: one at a time or in
// concurrent batches, under a scripted pilot.
package core

import (
	"context"
	"fmt"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/flight"
	"github.com/automoto/lunar-lander/landing"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTickRate = 60
	DefaultMaxTicks = 60 * 60 * 5
)

// Options control how sessions are flown.
type Options struct {
	TickRate int  // ticks per simulated second
	MaxTicks int  // give up on a session after this many ticks
	RealTime bool // pace ticks on the wall clock
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = DefaultTickRate
	}
	if o.MaxTicks <= 0 {
		o.MaxTicks = DefaultMaxTicks
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Result summarizes one flown session.
type Result struct {
	SessionID uuid.UUID
	Seed      string
	State     flight.State
	Outcome   landing.Outcome
	Finished  bool // false when MaxTicks ran out first
	Ticks     int
	Elapsed   float64
	FuelLeft  float64
}

// Run flies one session until it ends or MaxTicks is reached.
func Run(ctx context.Context, cfg config.Config, pilot Pilot, opts Options) (Result, error) {
	opts = opts.withDefaults()

	s, err := flight.New(cfg, flight.WithLogger(opts.Logger))
	if err != nil {
		return Result{}, err
	}

	res := Result{SessionID: s.ID(), Seed: cfg.World.Seed}
	dt := 1 / float64(opts.TickRate)

	tick := func() (bool, error) {
		if s.State().Terminal() || res.Ticks >= opts.MaxTicks {
			return true, nil
		}
		if err := s.Tick(dt, pilot.Intent(s)); err != nil {
			return true, fmt.Errorf("tick %d: %w", res.Ticks, err)
		}
		res.Ticks++
		return s.State().Terminal(), nil
	}

	if opts.RealTime {
		err = NewGameLoop(opts.TickRate, opts.Logger).Run(ctx, tick)
	} else {
		err = runFlat(ctx, tick)
	}
	if err != nil {
		return res, err
	}

	res.State = s.State()
	res.Outcome, res.Finished = s.Outcome()
	res.Elapsed = s.Elapsed()
	res.FuelLeft = s.Vehicle().Fuel
	return res, nil
}

func runFlat(ctx context.Context, tick func() (bool, error)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := tick()
		if err != nil || done {
			return err
		}
	}
}

// RunBatch flies one session per seed, at most parallelism at a time
// (unlimited when parallelism <= 0). Results keep the order of seeds. The
// first failing session cancels the rest.
func RunBatch(ctx context.Context, cfg config.Config, seeds []string, parallelism int, pilot Pilot, opts Options, metrics *Metrics) ([]Result, error) {
	results := make([]Result, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, seed := range seeds {
		g.Go(func() error {
			c := cfg
			c.Pads = append([]config.PadSpec(nil), cfg.Pads...)
			c.World.Seed = seed

			res, err := Run(ctx, c, pilot, opts)
			if err != nil {
				return fmt.Errorf("seed %q: %w", seed, err)
			}
			results[i] = res
			metrics.Observe(res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Seeds derives n seed phrases from a base phrase.
func Seeds(base string, n int) []string {
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("%s-%d", base, i)
	}
	return seeds
}

// Summary counts results by how they ended.
type Summary struct {
	Runs       int
	Landed     int
	Failed     int
	Unfinished int
	ByPad      map[config.PadKind]int
}

// Summarize aggregates a batch.
func Summarize(results []Result) Summary {
	sum := Summary{Runs: len(results), ByPad: make(map[config.PadKind]int)}
	for _, r := range results {
		switch {
		case !r.Finished:
			sum.Unfinished++
		case r.Outcome.Success:
			sum.Landed++
			if kind, ok := r.Outcome.Pad(); ok {
				sum.ByPad[kind]++
			}
		default:
			sum.Failed++
		}
	}
	return sum
}
