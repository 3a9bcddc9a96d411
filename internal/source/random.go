package source

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

// Random emulates a sparse metrics store: for each fetch it keeps a random subset
// of the days in range and gives each a value in [0, maxValue], in no particular
// order.
type Random struct {
	metrics  MetricSet
	seed     uint64
	maxValue int64
}

// NewRandom returns a random source. A zero seed draws fresh values on every fetch;
// any other seed makes the result a function of (seed, metric, range).
func NewRandom(metrics MetricSet, seed uint64, maxValue int64) *Random {
	return &Random{
		metrics:  metrics,
		seed:     seed,
		maxValue: max(0, maxValue),
	}
}

func (r *Random) Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error) {
	if !r.metrics.Has(metricID) {
		return nil, &domain.UnknownMetricError{MetricID: metricID}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := timeseries.Days(start, end)
	if err != nil {
		return nil, err
	}

	rng := r.rng(metricID, start, end)
	first := timeseries.Day(start)
	offsets := rng.Perm(n)[:rng.IntN(n+1)]

	points := make([]domain.DataPoint, 0, len(offsets))
	for _, offset := range offsets {
		points = append(points, domain.DataPoint{
			Date:  first.AddDate(0, 0, offset),
			Value: rng.Int64N(r.maxValue + 1),
		})
	}
	return points, nil
}

func (r *Random) rng(metricID string, start, end time.Time) *rand.Rand {
	if r.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	h := fnv.New64a()
	h.Write([]byte(metricID))
	h.Write([]byte(timeseries.Day(start).Format(timeseries.DateLayout)))
	h.Write([]byte(timeseries.Day(end).Format(timeseries.DateLayout)))
	return rand.New(rand.NewPCG(r.seed, h.Sum64()))
}
