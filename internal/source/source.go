// Package source selects and assembles the store metrics are fetched from.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"trafficapi/internal/cache"
	"trafficapi/internal/config"
	"trafficapi/internal/domain"
	"trafficapi/internal/repository"
)

const (
	DriverRandom   = "random"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverBadger   = "badger"
)

var (
	ErrUnsupportedDriver = errors.New("unsupported source driver")
	ErrNotWritable       = errors.New("source driver does not persist data")
)

type MetricSet interface {
	Has(metricID string) bool
}

type Source interface {
	Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error)
}

// Store is a persistent source that can be seeded.
type Store interface {
	Source
	Write(ctx context.Context, metricID string, points []domain.DataPoint) error
	Close() error
}

// NeedsPostgres reports whether the configured driver reads from Postgres.
func NeedsPostgres(cfg *config.SourceConfig) bool {
	return cfg.Driver == DriverPostgres
}

// OpenStore opens the persistent store named by cfg.Source.Driver. pool is only
// used by the postgres driver.
func OpenStore(ctx context.Context, cfg *config.Config, metrics MetricSet, pool *pgxpool.Pool) (Store, error) {
	switch cfg.Source.Driver {
	case DriverPostgres:
		if pool == nil {
			return nil, fmt.Errorf("%w: postgres driver requires a connection pool", ErrUnsupportedDriver)
		}
		repo := repository.NewPostgres(pool, metrics)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case DriverSQLite:
		return repository.OpenSQLite(ctx, cfg.SQLite.Path, metrics)
	case DriverBadger:
		return repository.OpenBadger(cfg.Badger.Dir, metrics)
	case DriverRandom:
		return nil, ErrNotWritable
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Source.Driver)
	}
}

// Open returns the source the API reads from, wrapped with a cache when enabled.
// The returned cleanup releases everything Open acquired.
func Open(ctx context.Context, cfg *config.Config, metrics MetricSet, pool *pgxpool.Pool) (Source, func(), error) {
	var (
		src     Source
		cleanup = func() {}
	)

	if cfg.Source.Driver == DriverRandom {
		src = NewRandom(metrics, cfg.Source.RandomSeed, cfg.Source.RandomMaxValue)
	} else {
		store, err := OpenStore(ctx, cfg, metrics, pool)
		if err != nil {
			return nil, nil, err
		}
		src = store
		cleanup = func() { store.Close() }
	}

	if !cfg.Cache.Enabled {
		return src, cleanup, nil
	}

	pointsCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create cache: %w", err)
	}
	storeCleanup := cleanup
	cleanup = func() {
		pointsCache.Close()
		storeCleanup()
	}
	return NewCached(src, pointsCache), cleanup, nil
}
