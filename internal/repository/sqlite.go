package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS daily_metrics (
	metric_id TEXT    NOT NULL,
	day       TEXT    NOT NULL,
	value     INTEGER NOT NULL,
	PRIMARY KEY (metric_id, day)
)`

type SQLiteRepository struct {
	db      *sql.DB
	metrics MetricSet
}

// OpenSQLite opens (creating if needed) the database at path. Days are stored as
// YYYY-MM-DD text so range queries compare lexically.
func OpenSQLite(ctx context.Context, path string, metrics MetricSet) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create daily_metrics table: %w", err)
	}

	return &SQLiteRepository{db: db, metrics: metrics}, nil
}

func (r *SQLiteRepository) Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error) {
	if err := checkMetric(r.metrics, metricID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT day, value FROM daily_metrics WHERE metric_id = ? AND day BETWEEN ? AND ?`,
		metricID,
		timeseries.Day(start).Format(timeseries.DateLayout),
		timeseries.Day(end).Format(timeseries.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}
	defer rows.Close()

	var points []domain.DataPoint
	for rows.Next() {
		var (
			day   string
			value int64
		)
		if err := rows.Scan(&day, &value); err != nil {
			return nil, fmt.Errorf("failed to scan daily metrics: %w", err)
		}
		date, err := time.Parse(timeseries.DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("malformed day %q in daily_metrics: %w", day, err)
		}
		points = append(points, domain.DataPoint{Date: date, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily metrics: %w", err)
	}
	return points, nil
}

func (r *SQLiteRepository) Write(ctx context.Context, metricID string, points []domain.DataPoint) error {
	if err := checkMetric(r.metrics, metricID); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO daily_metrics (metric_id, day, value) VALUES (?, ?, ?)
		ON CONFLICT (metric_id, day) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		day := timeseries.Day(p.Date).Format(timeseries.DateLayout)
		if _, err := stmt.ExecContext(ctx, metricID, day, p.Value); err != nil {
			return fmt.Errorf("failed to write daily metric: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit daily metrics: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
