package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// GameLoop paces ticks on a wall-clock ticker.
type GameLoop struct {
	tickRate int
	log      *zap.Logger
}

func NewGameLoop(tickRate int, log *zap.Logger) *GameLoop {
	return &GameLoop{
		tickRate: tickRate,
		log:      log,
	}
}

// Run calls tick once per period until tick reports done, tick fails or
// ctx is cancelled.
func (g *GameLoop) Run(ctx context.Context, tick func() (bool, error)) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Debug("game loop started", zap.Int("tick_rate", g.tickRate))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := tick()
			if err != nil || done {
				return err
			}
		}
	}
}
