package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficapi/internal/catalog"
	"trafficapi/internal/domain"
	"trafficapi/internal/repository"
	"trafficapi/internal/timeseries"
)

type store interface {
	Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error)
	Write(ctx context.Context, metricID string, points []domain.DataPoint) error
	Close() error
}

var testCatalog = catalog.New(map[string]string{
	"page_views": "Page Views",
	"visits":     "Visitors",
})

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(timeseries.DateLayout, s)
	require.NoError(t, err)
	return d
}

func openStores(t *testing.T) map[string]store {
	t.Helper()
	ctx := context.Background()

	sqliteRepo, err := repository.OpenSQLite(ctx, ":memory:", testCatalog)
	require.NoError(t, err)

	badgerRepo, err := repository.OpenBadger("", testCatalog)
	require.NoError(t, err)

	stores := map[string]store{
		"sqlite": sqliteRepo,
		"badger": badgerRepo,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStores_WriteThenFetchRange(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Write(ctx, "page_views", []domain.DataPoint{
				{Date: day(t, "2014-12-31"), Value: 9},
				{Date: day(t, "2015-01-01"), Value: 1},
				{Date: day(t, "2015-01-03"), Value: 3},
				{Date: day(t, "2015-01-04"), Value: 4},
			}))
			require.NoError(t, s.Write(ctx, "visits", []domain.DataPoint{
				{Date: day(t, "2015-01-02"), Value: 50},
			}))

			points, err := s.Fetch(ctx, "page_views", day(t, "2015-01-01"), day(t, "2015-01-03"))
			require.NoError(t, err)
			assert.ElementsMatch(t, []domain.DataPoint{
				{Date: day(t, "2015-01-01"), Value: 1},
				{Date: day(t, "2015-01-03"), Value: 3},
			}, points)
		})
	}
}

func TestStores_WriteUpserts(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Write(ctx, "visits", []domain.DataPoint{{Date: day(t, "2015-01-01"), Value: 1}}))
			require.NoError(t, s.Write(ctx, "visits", []domain.DataPoint{{Date: day(t, "2015-01-01"), Value: 2}}))

			points, err := s.Fetch(ctx, "visits", day(t, "2015-01-01"), day(t, "2015-01-01"))
			require.NoError(t, err)
			assert.Equal(t, []domain.DataPoint{{Date: day(t, "2015-01-01"), Value: 2}}, points)
		})
	}
}

func TestStores_EmptyRange(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			points, err := s.Fetch(context.Background(), "visits", day(t, "2015-01-01"), day(t, "2015-01-31"))
			require.NoError(t, err)
			assert.Empty(t, points)
		})
	}
}

func TestStores_UnknownMetric(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Fetch(ctx, "bogus", day(t, "2015-01-01"), day(t, "2015-01-02"))
			assert.ErrorIs(t, err, domain.ErrUnknownMetric)

			err = s.Write(ctx, "bogus", []domain.DataPoint{{Date: day(t, "2015-01-01"), Value: 1}})
			assert.ErrorIs(t, err, domain.ErrUnknownMetric)
		})
	}
}

func TestStores_NormalizesTimeOfDay(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Write(ctx, "visits", []domain.DataPoint{
				{Date: time.Date(2015, 1, 2, 15, 30, 0, 0, time.UTC), Value: 8},
			}))

			points, err := s.Fetch(ctx, "visits", time.Date(2015, 1, 2, 23, 0, 0, 0, time.UTC), day(t, "2015-01-02"))
			require.NoError(t, err)
			assert.Equal(t, []domain.DataPoint{{Date: day(t, "2015-01-02"), Value: 8}}, points)
		})
	}
}
