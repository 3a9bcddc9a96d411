package repository

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"trafficapi/internal/domain"
	"trafficapi/internal/timeseries"
)

const badgerKeyPrefix = "metric/"

type BadgerRepository struct {
	db      *badger.DB
	metrics MetricSet
}

// OpenBadger opens the store in dir, or an in-memory store when dir is empty.
func OpenBadger(dir string, metrics MetricSet) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	return &BadgerRepository{db: db, metrics: metrics}, nil
}

// metricPrefix is "metric/<id>/"; keys append the ISO day so they sort by date.
func metricPrefix(metricID string) []byte {
	return []byte(badgerKeyPrefix + metricID + "/")
}

func badgerKey(metricID string, day time.Time) []byte {
	return append(metricPrefix(metricID), timeseries.Day(day).Format(timeseries.DateLayout)...)
}

func (r *BadgerRepository) Fetch(ctx context.Context, metricID string, start, end time.Time) ([]domain.DataPoint, error) {
	if err := checkMetric(r.metrics, metricID); err != nil {
		return nil, err
	}

	prefix := metricPrefix(metricID)
	last := badgerKey(metricID, end)

	var points []domain.DataPoint
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(badgerKey(metricID, start)); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			key := item.Key()
			if bytes.Compare(key, last) > 0 {
				break
			}

			date, err := time.Parse(timeseries.DateLayout, string(key[len(prefix):]))
			if err != nil {
				return fmt.Errorf("malformed key %q: %w", key, err)
			}

			var value int64
			if err := item.Value(func(v []byte) error {
				if len(v) != 8 {
					return fmt.Errorf("malformed value for key %q", key)
				}
				value = int64(binary.BigEndian.Uint64(v))
				return nil
			}); err != nil {
				return err
			}

			points = append(points, domain.DataPoint{Date: date, Value: value})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read daily metrics: %w", err)
	}
	return points, nil
}

func (r *BadgerRepository) Write(ctx context.Context, metricID string, points []domain.DataPoint) error {
	if err := checkMetric(r.metrics, metricID); err != nil {
		return err
	}

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	for _, p := range points {
		if err := ctx.Err(); err != nil {
			return err
		}
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(p.Value))
		if err := wb.Set(badgerKey(metricID, p.Date), value); err != nil {
			return fmt.Errorf("failed to write daily metric: %w", err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to flush daily metrics: %w", err)
	}
	return nil
}

func (r *BadgerRepository) Close() error {
	return r.db.Close()
}
