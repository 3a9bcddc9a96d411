// Package timeseries turns sparse daily data points into dense, day-aligned series.
//
// Calendar days are represented as time.Time values at midnight UTC. All functions
// normalize their date arguments with Day, so callers may pass any instant within
// the intended day.
package timeseries

import (
	"fmt"
	"time"

	"trafficapi/internal/domain"
)

const (
	DateLayout   = "2006-01-02"
	secondsInDay = 24 * 60 * 60
)

// Day returns midnight UTC of the calendar day t falls on in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayNumber is the number of days since the Unix epoch. Midnight UTC is always an
// exact multiple of a day, so the division is exact for dates before 1970 as well.
func dayNumber(t time.Time) int64 {
	return Day(t).Unix() / secondsInDay
}

// Days returns the inclusive number of days in [start, end].
func Days(start, end time.Time) (int, error) {
	delta := dayNumber(end) - dayNumber(start)
	if delta < 0 {
		return 0, fmt.Errorf("%w: start %s is after end %s",
			domain.ErrInvalidRange, Day(start).Format(DateLayout), Day(end).Format(DateLayout))
	}
	return int(delta) + 1, nil
}

// GenerateIndex returns every calendar day from start to end inclusive, ascending.
func GenerateIndex(start, end time.Time) ([]time.Time, error) {
	n, err := Days(start, end)
	if err != nil {
		return nil, err
	}

	first := Day(start)
	index := make([]time.Time, n)
	for i := range n {
		index[i] = first.AddDate(0, 0, i)
	}
	return index, nil
}
