package domain

import "errors"

var (
	ErrInvalidRange     = errors.New("invalid date range")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrDeadlineExceeded = errors.New("deadline exceeded")
)

// UnknownMetricError carries the offending identifier and matches ErrUnknownMetric.
type UnknownMetricError struct {
	MetricID string
}

func (e *UnknownMetricError) Error() string {
	return "unknown metric: " + e.MetricID
}

func (e *UnknownMetricError) Is(target error) bool {
	return target == ErrUnknownMetric
}
