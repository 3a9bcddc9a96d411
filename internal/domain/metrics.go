package domain

import "time"

// DataPoint is a single raw daily value as stored by a metrics source.
// Date is a calendar day at midnight UTC.
type DataPoint struct {
	Date  time.Time
	Value int64
}

type MetricSeries struct {
	Name  string  `json:"name"`
	Total int64   `json:"total"`
	Data  []int64 `json:"data"`
}

type APIResponse struct {
	Index  []time.Time             `json:"index"`
	Series map[string]MetricSeries `json:"series"`
}

type MetricInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MetricsListResponse struct {
	Metrics []MetricInfo `json:"metrics"`
}
