package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"trafficapi/internal/domain"
	"trafficapi/internal/metrics"
)

type Source interface {
	Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error)
}

type SeriesTransformer interface {
	ToSeries(metricID string, data []int64) (domain.MetricSeries, error)
}

type FetchRecorder interface {
	RecordFetch(m metrics.FetchMetric)
}
