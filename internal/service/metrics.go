package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"trafficapi/internal/config"
	"trafficapi/internal/domain"
	"trafficapi/internal/metrics"
	"trafficapi/internal/timeseries"
)

type MetricsService struct {
	source      Source
	transformer SeriesTransformer
	recorder    FetchRecorder
	timeout     time.Duration
	concurrency int
}

func NewMetricsService(
	source Source,
	transformer SeriesTransformer,
	recorder FetchRecorder,
	cfg *config.RequestConfig,
) *MetricsService {
	return &MetricsService{
		source:      source,
		transformer: transformer,
		recorder:    recorder,
		timeout:     cfg.Timeout,
		concurrency: cfg.FetchConcurrency,
	}
}

// BuildResponse assembles a dense series for every requested metric over
// [start, end]. Blank ids are skipped and repeated ids are fetched once.
//
// Fetches run concurrently. The first failure cancels the remaining fetches and
// BuildResponse returns only that error; a partial response is never returned.
func (s *MetricsService) BuildResponse(
	ctx context.Context,
	metricIDs []string,
	start, end time.Time,
) (*domain.APIResponse, error) {
	index, err := timeseries.GenerateIndex(start, end)
	if err != nil {
		return nil, err
	}

	ids := SanitizeMetricIDs(metricIDs)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	results := make([]domain.MetricSeries, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			series, err := s.buildSeries(gctx, id, start, end, len(index))
			if err != nil {
				return err
			}
			results[i] = series
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", domain.ErrDeadlineExceeded, err)
		}
		return nil, err
	}

	series := make(map[string]domain.MetricSeries, len(ids))
	for i, id := range ids {
		series[id] = results[i]
	}

	return &domain.APIResponse{
		Index:  index,
		Series: series,
	}, nil
}

func (s *MetricsService) buildSeries(
	ctx context.Context,
	metricID string,
	start, end time.Time,
	days int,
) (domain.MetricSeries, error) {
	if err := ctx.Err(); err != nil {
		return domain.MetricSeries{}, err
	}

	began := time.Now()
	points, err := s.source.Fetch(ctx, metricID, start, end)
	s.recordFetch(metricID, began, days, len(points), err)
	if err != nil {
		return domain.MetricSeries{}, fmt.Errorf("failed to fetch metric %q: %w", metricID, err)
	}

	dense, err := timeseries.FillGaps(points, start, end)
	if err != nil {
		return domain.MetricSeries{}, err
	}

	return s.transformer.ToSeries(metricID, dense)
}

func (s *MetricsService) recordFetch(metricID string, began time.Time, days, points int, err error) {
	var errStr string
	if err != nil {
		errStr = err.Error()
	}
	s.recorder.RecordFetch(metrics.FetchMetric{
		Time:       began,
		MetricID:   metricID,
		RangeDays:  days,
		Points:     points,
		DurationMs: float64(time.Since(began).Microseconds()) / 1000.0,
		Error:      errStr,
	})
}

// SanitizeMetricIDs trims ids, drops blank ones and removes repeats, keeping the
// order of first appearance.
func SanitizeMetricIDs(ids []string) []string {
	trimmed := lo.Map(ids, func(id string, _ int) string {
		return strings.TrimSpace(id)
	})
	return lo.Uniq(lo.Compact(trimmed))
}
