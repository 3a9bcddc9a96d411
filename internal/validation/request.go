package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"trafficapi/internal/config"
	"trafficapi/internal/timeseries"
)

type RequestValidator struct {
	maxRangeDays    int
	defaultSpanDays int
	maxMetrics      int
	now             func() time.Time
}

func NewRequestValidator(cfg *config.RequestConfig, now func() time.Time) *RequestValidator {
	return &RequestValidator{
		maxRangeDays:    cfg.MaxRangeDays,
		defaultSpanDays: cfg.DefaultSpanDays,
		maxMetrics:      cfg.MaxMetrics,
		now:             now,
	}
}

// ParseRange parses YYYY-MM-DD query values. An empty start defaults to today and
// an empty end to today plus the default span, both in UTC.
func (v *RequestValidator) ParseRange(startDate, endDate string) (time.Time, time.Time, error) {
	today := timeseries.Day(v.now().UTC())

	start, err := parseDate(startDate, today)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endDate, today.AddDate(0, 0, v.defaultSpanDays))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrStartAfterEnd
	}

	days, err := timeseries.Days(start, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if v.maxRangeDays > 0 && days > v.maxRangeDays {
		return time.Time{}, time.Time{}, ErrRangeTooLarge
	}

	return start, end, nil
}

func parseDate(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.Parse(timeseries.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return d, nil
}

// ParseMetrics flattens repeated and comma separated metric values, dropping blank
// entries and repeats.
func (v *RequestValidator) ParseMetrics(values []string) ([]string, error) {
	ids := lo.FlatMap(values, func(value string, _ int) []string {
		return strings.Split(value, ",")
	})
	ids = lo.Uniq(lo.Compact(lo.Map(ids, func(id string, _ int) string {
		return strings.TrimSpace(id)
	})))

	if v.maxMetrics > 0 && len(ids) > v.maxMetrics {
		return nil, ErrTooManyMetrics
	}
	return ids, nil
}
