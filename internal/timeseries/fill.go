package timeseries

import (
	"time"

	"trafficapi/internal/domain"
)

// FillGaps produces one value per day in [start, end], taking the value of the
// point recorded for that day and 0 where none exists.
//
// When several points share a day the last one in points wins. Points outside the
// range are dropped, so the result length depends only on the range.
func FillGaps(points []domain.DataPoint, start, end time.Time) ([]int64, error) {
	n, err := Days(start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int64]int64, len(points))
	for _, p := range points {
		byDay[dayNumber(p.Date)] = p.Value
	}

	first := dayNumber(start)
	dense := make([]int64, n)
	for i := range dense {
		dense[i] = byDay[first+int64(i)]
	}
	return dense, nil
}
