package closeness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner analyzes many years concurrently.
type Runner struct {
	Source  Source
	Options Options
	// Workers bounds concurrent analyses; ≤ 0 means one per year.
	Workers int
	Logger  *zap.Logger
}

// NewRunner returns a Runner with DefaultOptions and a no-op logger.
func NewRunner(src Source) *Runner {
	return &Runner{Source: src, Options: DefaultOptions(), Logger: zap.NewNop()}
}

// Run reads and analyzes every year, returning outcomes in the order of years.
// The first failure cancels the remaining work and is returned.
func (r *Runner) Run(ctx context.Context, years []int) ([]Outcome, error) {
	if r.Source == nil {
		return nil, fmt.Errorf("closeness: runner has no source")
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	out := make([]Outcome, len(years))
	g, gctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, year := range years {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			y, err := r.Source.ReadYear(gctx, year)
			if err != nil {
				return fmt.Errorf("read %d: %w", year, err)
			}
			log.Debug("year loaded", zap.Int("year", year), zap.Int("states", len(y.States)))

			o, err := Analyze(y, r.Options)
			if err != nil {
				return err
			}
			log.Info("year solved",
				zap.Int("year", year),
				zap.String("status", o.Status.String()),
				zap.Int("needed_ev", o.NeededEV),
				zap.Int("states", len(o.Flips)),
				zap.Int64("votes", o.VotesFlipped),
				zap.Duration("elapsed", time.Since(start)),
			)
			out[i] = o

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
