package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficapi/internal/catalog"
	"trafficapi/internal/domain"
	"trafficapi/internal/repository"
	"trafficapi/internal/seed"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type memWriter struct {
	mu     sync.Mutex
	points map[string][]domain.DataPoint
	err    error
}

func (w *memWriter) Write(_ context.Context, metricID string, points []domain.DataPoint) error {
	if w.err != nil {
		return w.err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.points == nil {
		w.points = make(map[string][]domain.DataPoint)
	}
	w.points[metricID] = append(w.points[metricID], points...)
	return nil
}

func opts() seed.Options {
	return seed.Options{
		Start:     time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2015, 3, 31, 0, 0, 0, 0, time.UTC),
		Density:   0.5,
		MaxValue:  100,
		Seed:      7,
		Workers:   4,
		BatchDays: 30,
	}
}

func TestRun_WritesPointsInRange(t *testing.T) {
	w := &memWriter{}
	o := opts()

	res, err := seed.Run(context.Background(), w, []string{"visits", "page_views"}, o, discard)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Metrics)
	var total int64
	for _, points := range w.points {
		seen := make(map[time.Time]bool)
		for _, p := range points {
			assert.False(t, p.Date.Before(o.Start) || p.Date.After(o.End))
			assert.False(t, seen[p.Date], "duplicate day %s", p.Date)
			seen[p.Date] = true
			assert.GreaterOrEqual(t, p.Value, int64(0))
			assert.LessOrEqual(t, p.Value, o.MaxValue)
		}
		total += int64(len(points))
	}
	assert.Equal(t, res.Points, total)
	assert.Positive(t, total)
	assert.Less(t, total, int64(2*90))
}

func TestRun_Deterministic(t *testing.T) {
	a, b := &memWriter{}, &memWriter{}

	_, err := seed.Run(context.Background(), a, []string{"visits"}, opts(), discard)
	require.NoError(t, err)
	_, err = seed.Run(context.Background(), b, []string{"visits"}, opts(), discard)
	require.NoError(t, err)

	assert.ElementsMatch(t, a.points["visits"], b.points["visits"])
}

func TestRun_DensityBounds(t *testing.T) {
	o := opts()

	o.Density = 0
	empty := &memWriter{}
	res, err := seed.Run(context.Background(), empty, []string{"visits"}, o, discard)
	require.NoError(t, err)
	assert.Zero(t, res.Points)

	o.Density = 1
	full := &memWriter{}
	res, err = seed.Run(context.Background(), full, []string{"visits"}, o, discard)
	require.NoError(t, err)
	assert.Equal(t, int64(90), res.Points)
}

func TestRun_InvalidRange(t *testing.T) {
	o := opts()
	o.Start, o.End = o.End, o.Start

	_, err := seed.Run(context.Background(), &memWriter{}, []string{"visits"}, o, discard)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRun_WriteError(t *testing.T) {
	expectedErr := errors.New("disk full")

	_, err := seed.Run(context.Background(), &memWriter{err: expectedErr}, []string{"visits"}, opts(), discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}

func TestRun_IntoBadger(t *testing.T) {
	cat := catalog.New(map[string]string{"visits": "Visitors"})
	store, err := repository.OpenBadger("", cat)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	o := opts()
	o.Density = 1

	_, err = seed.Run(context.Background(), store, []string{"visits"}, o, discard)
	require.NoError(t, err)

	points, err := store.Fetch(context.Background(), "visits", o.Start, o.End)
	require.NoError(t, err)
	assert.Len(t, points, 90)
}
