// Package repository persists raw daily metric values.
//
// Every store keeps at most one value per (metric, day). Write upserts, so seeding the
// same day twice keeps the last value.
package repository

import (
	"trafficapi/internal/domain"
)

// MetricSet reports whether a metric id is recognized.
type MetricSet interface {
	Has(metricID string) bool
}

func checkMetric(metrics MetricSet, metricID string) error {
	if !metrics.Has(metricID) {
		return &domain.UnknownMetricError{MetricID: metricID}
	}
	return nil
}
