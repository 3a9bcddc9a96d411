package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"trafficapi/internal/config"
)

// Copier bulk-loads rows into a table. *pgxpool.Pool satisfies it.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create metrics tables: %w", err)
	}
	return nil
}

// Recorder buffers telemetry in memory and writes it to Postgres in batches.
// Record methods never block: when a buffer is full the metric is dropped.
type Recorder struct {
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *stream[HTTPMetric]
	fetch        *stream[FetchMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(copier Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		logger:     logger,
		cfg:        cfg,
		http:       newStream[HTTPMetric](copier, "http_requests", httpColumns, cfg, logger),
		fetch:      newStream[FetchMetric](copier, "source_fetches", fetchColumns, cfg, logger),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	r.http.push(m)
}

func (r *Recorder) RecordFetch(m FetchMetric) {
	if !r.cfg.Enabled {
		return
	}
	r.fetch.push(m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		r.http.run(ctx, interval, r.shutdownCh)
	}()
	go func() {
		defer r.wg.Done()
		r.fetch.run(ctx, interval, r.shutdownCh)
	}()

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close flushes whatever is buffered and stops the flush loops.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type row interface {
	row() []any
}

type stream[T row] struct {
	copier    Copier
	table     string
	columns   []string
	threshold int
	logger    *slog.Logger
	ch        chan T
}

func newStream[T row](copier Copier, table string, columns []string, cfg *config.MetricsConfig, logger *slog.Logger) *stream[T] {
	return &stream[T]{
		copier:    copier,
		table:     table,
		columns:   columns,
		threshold: max(1, cfg.FlushThreshold),
		logger:    logger,
		ch:        make(chan T, cfg.BufferSize),
	}
}

func (s *stream[T]) push(m T) {
	select {
	case s.ch <- m:
	default:
		s.logger.Warn("metrics buffer full, dropping metric", slog.String("table", s.table))
	}
}

func (s *stream[T]) run(ctx context.Context, interval time.Duration, shutdown <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, s.threshold)

	for {
		select {
		case <-ctx.Done():
			s.drainAndFlush(batch)
			return
		case <-shutdown:
			s.drainAndFlush(batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= s.threshold {
				s.write(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.write(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *stream[T]) drainAndFlush(batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				s.write(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (s *stream[T]) write(ctx context.Context, batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = m.row()
	}

	_, err := s.copier.CopyFrom(ctx, pgx.Identifier{s.table}, s.columns, pgx.CopyFromRows(rows))
	if err != nil {
		s.logger.Error("failed to write metrics batch",
			slog.String("table", s.table),
			slog.String("error", err.Error()))
	}
}
