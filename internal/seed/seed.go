// Package seed fills a persistent metrics store with sparse random daily values.
package seed

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

type Writer interface {
	Write(ctx context.Context, metricID string, points []domain.DataPoint) error
}

type Options struct {
	Start    time.Time
	End      time.Time
	Density  float64 // share of days that get a value, in [0, 1]
	MaxValue int64
	Seed     uint64
	Workers  int
	// BatchDays splits each metric's range into writes of at most this many days.
	BatchDays int
}

type Result struct {
	Metrics int
	Points  int64
}

// Run writes random points for every metric in ids. With a non-zero Seed the
// generated values depend only on (Seed, metric, day).
func Run(ctx context.Context, w Writer, ids []string, opts Options, logger *slog.Logger) (Result, error) {
	days, err := timeseries.Days(opts.Start, opts.End)
	if err != nil {
		return Result{}, err
	}

	batchDays := opts.BatchDays
	if batchDays <= 0 {
		batchDays = days
	}
	numBatches := (days + batchDays - 1) / batchDays

	logger.Info("seeding metrics",
		slog.Int("metrics", len(ids)),
		slog.Int("days", days),
		slog.Int("batches", numBatches*len(ids)),
		slog.Float64("density", opts.Density))

	var written atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))

	first := timeseries.Day(opts.Start)
	for _, id := range ids {
		for b := range numBatches {
			offset := b * batchDays
			count := min(batchDays, days-offset)

			g.Go(func() error {
				points := generate(id, first.AddDate(0, 0, offset), count, opts)
				if err := w.Write(gctx, id, points); err != nil {
					return fmt.Errorf("failed to write %s at day %d: %w", id, offset, err)
				}
				written.Add(int64(len(points)))
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Metrics: len(ids), Points: written.Load()}
	logger.Info("seeding complete", slog.Int64("points", res.Points))
	return res, nil
}

func generate(metricID string, from time.Time, days int, opts Options) []domain.DataPoint {
	points := make([]domain.DataPoint, 0, int(float64(days)*opts.Density)+1)
	for i := range days {
		d := from.AddDate(0, 0, i)
		rng := dayRNG(opts.Seed, metricID, d)
		if rng.Float64() >= opts.Density {
			continue
		}
		points = append(points, domain.DataPoint{
			Date:  d,
			Value: rng.Int64N(max(0, opts.MaxValue) + 1),
		})
	}
	return points
}

func dayRNG(seed uint64, metricID string, d time.Time) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	h := fnv.New64a()
	h.Write([]byte(metricID))
	return rand.New(rand.NewPCG(seed^h.Sum64(), uint64(d.Unix())))
}
