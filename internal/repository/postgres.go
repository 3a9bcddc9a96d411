package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS daily_metrics (
	metric_id TEXT   NOT NULL,
	day       DATE   NOT NULL,
	value     BIGINT NOT NULL,
	PRIMARY KEY (metric_id, day)
)`

type PostgresRepository struct {
	pool    *pgxpool.Pool
	metrics MetricSet
}

func NewPostgres(pool *pgxpool.Pool, metrics MetricSet) *PostgresRepository {
	return &PostgresRepository{pool: pool, metrics: metrics}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create daily_metrics table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error) {
	if err := checkMetric(r.metrics, metricID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT day, value FROM daily_metrics WHERE metric_id = $1 AND day BETWEEN $2 AND $3`,
		metricID, timeseries.Day(start), timeseries.Day(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}

	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DataPoint, error) {
		var p domain.DataPoint
		err := row.Scan(&p.Date, &p.Value)
		p.Date = timeseries.Day(p.Date)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily metrics: %w", err)
	}
	return points, nil
}

func (r *PostgresRepository) Write(ctx context.Context, metricID string, points []domain.DataPoint) error {
	if err := checkMetric(r.metrics, metricID); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range points {
		batch.Queue(
			`INSERT INTO daily_metrics (metric_id, day, value) VALUES ($1, $2, $3)
			ON CONFLICT (metric_id, day) DO UPDATE SET value = EXCLUDED.value`,
			metricID, timeseries.Day(p.Date), p.Value,
		)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to write daily metrics: %w", err)
	}
	return nil
}

// Close is a no-op: the pool is shared with the telemetry recorder and closed by its owner.
func (r *PostgresRepository) Close() error {
	return nil
}
