package cache

import (
	"slices"
	"time"

	"github.com/dgraph-io/ristretto"

	"trafficapi/internal/domain"
)

// pointCost approximates the in-memory size of one domain.DataPoint.
const pointCost = 32

// PointsCache holds raw fetch results keyed by metric and range. Stored and returned
// slices are copies, so callers may modify what they get back.
type PointsCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*PointsCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/pointCost*10)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &PointsCache{cache: cache, ttl: ttl}, nil
}

func Key(metricID string, start, end time.Time) string {
	return metricID + "|" + start.Format(time.DateOnly) + "|" + end.Format(time.DateOnly)
}

func (c *PointsCache) Get(key string) ([]domain.DataPoint, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return slices.Clone(val.([]domain.DataPoint)), true
}

func (c *PointsCache) Set(key string, points []domain.DataPoint) {
	cost := int64(len(key) + len(points)*pointCost)
	if c.ttl > 0 {
		c.cache.SetWithTTL(key, slices.Clone(points), cost, c.ttl)
		return
	}
	c.cache.Set(key, slices.Clone(points), cost)
}

// Wait blocks until buffered writes are applied.
func (c *PointsCache) Wait() {
	c.cache.Wait()
}

func (c *PointsCache) Close() {
	c.cache.Close()
}

func (c *PointsCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
