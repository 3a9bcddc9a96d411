package timeseries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(timeseries.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestGenerateIndex_InclusiveRange(t *testing.T) {
	index, err := timeseries.GenerateIndex(date(t, "2015-01-01"), date(t, "2015-01-03"))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		date(t, "2015-01-01"),
		date(t, "2015-01-02"),
		date(t, "2015-01-03"),
	}, index)
}

func TestGenerateIndex_SingleDay(t *testing.T) {
	index, err := timeseries.GenerateIndex(date(t, "2015-01-01"), date(t, "2015-01-01"))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(t, "2015-01-01")}, index)
}

func TestGenerateIndex_ReversedRange(t *testing.T) {
	index, err := timeseries.GenerateIndex(date(t, "2015-01-02"), date(t, "2015-01-01"))
	require.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Nil(t, index)
}

func TestGenerateIndex_Properties(t *testing.T) {
	starts := []string{"1969-12-25", "2015-01-01", "2016-02-27", "2024-12-30", "2026-03-28"}
	spans := []int{0, 1, 2, 6, 30, 366, 1000}

	for _, s := range starts {
		for _, span := range spans {
			start := date(t, s)
			end := start.AddDate(0, 0, span)

			index, err := timeseries.GenerateIndex(start, end)
			require.NoError(t, err)

			require.Len(t, index, span+1, "start=%s span=%d", s, span)
			assert.Equal(t, start, index[0])
			assert.Equal(t, end, index[len(index)-1])
			for i := 1; i < len(index); i++ {
				assert.Equal(t, 24*time.Hour, index[i].Sub(index[i-1]), "start=%s i=%d", s, i)
			}
		}
	}
}

func TestGenerateIndex_NormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	start := time.Date(2015, 1, 1, 23, 30, 0, 0, loc)
	end := time.Date(2015, 1, 2, 0, 15, 0, 0, time.UTC)

	index, err := timeseries.GenerateIndex(start, end)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(t, "2015-01-01"), date(t, "2015-01-02")}, index)
	for _, d := range index {
		assert.Equal(t, time.UTC, d.Location())
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2015-01-01", "2015-01-01", 1},
		{"one week", "2015-01-01", "2015-01-07", 7},
		{"across leap day", "2016-02-28", "2016-03-01", 3},
		{"across year", "2014-12-31", "2015-01-01", 2},
		{"full year", "2015-01-01", "2015-12-31", 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeseries.Days(date(t, tt.start), date(t, tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
