package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	RequestID  string
	Error      string
}

// FetchMetric describes one metrics-source fetch made while serving a request.
type FetchMetric struct {
	Time       time.Time
	MetricID   string
	RangeDays  int
	Points     int
	DurationMs float64
	Error      string
}

func (m HTTPMetric) row() []any {
	return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.RequestID, m.Error}
}

func (m FetchMetric) row() []any {
	return []any{m.Time, m.MetricID, m.RangeDays, m.Points, m.DurationMs, m.Error}
}

var (
	httpColumns  = []string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "request_id", "error"}
	fetchColumns = []string{"time", "metric_id", "range_days", "points", "duration_ms", "error"}
)

const Schema = `
CREATE TABLE IF NOT EXISTS http_requests (
	time        TIMESTAMPTZ      NOT NULL,
	method      TEXT             NOT NULL,
	path        TEXT             NOT NULL,
	status_code INTEGER          NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip   TEXT             NOT NULL,
	request_id  TEXT             NOT NULL,
	error       TEXT             NOT NULL
);
CREATE TABLE IF NOT EXISTS source_fetches (
	time        TIMESTAMPTZ      NOT NULL,
	metric_id   TEXT             NOT NULL,
	range_days  INTEGER          NOT NULL,
	points      INTEGER          NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	error       TEXT             NOT NULL
)`
