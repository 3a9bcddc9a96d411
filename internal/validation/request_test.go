package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficapi/internal/config"
	"trafficapi/internal/domain"
	"trafficapi/internal/validation"
)

var fixedNow = time.Date(2015, 1, 10, 22, 30, 0, 0, time.UTC)

func newValidator() *validation.RequestValidator {
	return validation.NewRequestValidator(&config.RequestConfig{
		MaxRangeDays:    31,
		DefaultSpanDays: 7,
		MaxMetrics:      3,
	}, func() time.Time { return fixedNow })
}

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{"explicit range", "2015-01-01", "2015-01-02", utcDay(2015, 1, 1), utcDay(2015, 1, 2), nil},
		{"single day", "2015-01-01", "2015-01-01", utcDay(2015, 1, 1), utcDay(2015, 1, 1), nil},
		{"both defaults", "", "", utcDay(2015, 1, 10), utcDay(2015, 1, 17), nil},
		{"default end", "2015-01-09", "", utcDay(2015, 1, 9), utcDay(2015, 1, 17), nil},
		{"default start", "", "2015-01-12", utcDay(2015, 1, 10), utcDay(2015, 1, 12), nil},
		{"surrounding whitespace", " 2015-01-01 ", "2015-01-02", utcDay(2015, 1, 1), utcDay(2015, 1, 2), nil},
		{"max range", "2015-01-01", "2015-01-31", utcDay(2015, 1, 1), utcDay(2015, 1, 31), nil},

		{"malformed start", "01/01/2015", "2015-01-02", time.Time{}, time.Time{}, validation.ErrInvalidDateFormat},
		{"malformed end", "2015-01-01", "tomorrow", time.Time{}, time.Time{}, validation.ErrInvalidDateFormat},
		{"impossible date", "2015-02-30", "2015-03-01", time.Time{}, time.Time{}, validation.ErrInvalidDateFormat},
		{"start after end", "2015-01-03", "2015-01-01", time.Time{}, time.Time{}, validation.ErrStartAfterEnd},
		{"default start after explicit end", "", "2015-01-01", time.Time{}, time.Time{}, validation.ErrStartAfterEnd},
		{"range too large", "2015-01-01", "2015-02-01", time.Time{}, time.Time{}, validation.ErrRangeTooLarge},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := v.ParseRange(tt.startDate, tt.endDate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestParseRange_NoMaximum(t *testing.T) {
	v := validation.NewRequestValidator(&config.RequestConfig{DefaultSpanDays: 7}, time.Now)

	start, end, err := v.ParseRange("2000-01-01", "2015-01-01")
	require.NoError(t, err)
	assert.Equal(t, utcDay(2000, 1, 1), start)
	assert.Equal(t, utcDay(2015, 1, 1), end)
}

func TestParseMetrics(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []string
		wantErr error
	}{
		{"none", nil, []string{}, nil},
		{"repeated params", []string{"visits", "page_views"}, []string{"visits", "page_views"}, nil},
		{"comma separated", []string{"visits,page_views"}, []string{"visits", "page_views"}, nil},
		{"blank entries dropped", []string{"", " ", "visits,,"}, []string{"visits"}, nil},
		{"duplicates dropped", []string{"visits", " visits ", "visits,page_views"}, []string{"visits", "page_views"}, nil},
		{"too many", []string{"a,b,c,d"}, nil, validation.ErrTooManyMetrics},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ParseMetrics(tt.values)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
