package handler

//go:generate go tool mockery

import (
	"context"
	"time"

	"trafficapi/internal/domain"
)

type MetricsService interface {
	BuildResponse(ctx context.Context, metricIDs []string, start, end time.Time) (*domain.APIResponse, error)
}

type RequestValidator interface {
	ParseRange(startDate, endDate string) (time.Time, time.Time, error)
	ParseMetrics(values []string) ([]string, error)
}

type MetricCatalog interface {
	List() []domain.MetricInfo
}
