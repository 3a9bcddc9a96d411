package source

import (
	"context"
	"time"

	"trafficapi/internal/cache"
	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

type PointsCache interface {
	Get(key string) ([]domain.DataPoint, bool)
	Set(key string, points []domain.DataPoint)
	Stats() (hits, misses uint64, ratio float64)
}

// Cached serves repeated fetches of the same metric and range from a cache.
// Failed fetches are not cached.
type Cached struct {
	next  Source
	cache PointsCache
}

func NewCached(next Source, c PointsCache) *Cached {
	return &Cached{next: next, cache: c}
}

func (c *Cached) Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error) {
	key := cache.Key(metricID, timeseries.Day(start), timeseries.Day(end))
	if points, ok := c.cache.Get(key); ok {
		return points, nil
	}

	points, err := c.next.Fetch(ctx, metricID, start, end)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, points)
	return points, nil
}

func (c *Cached) Stats() (hits, misses uint64, ratio float64) {
	return c.cache.Stats()
}
