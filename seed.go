package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"trafficapi/internal/catalog"
	"trafficapi/internal/config"
	"trafficapi/internal/seed"
	"trafficapi/internal/source"
	"trafficapi/internal/timeseries"
)

func newSeedCommand(logger *slog.Logger) *cobra.Command {
	var (
		startDate string
		endDate   string
		density   float64
		rngSeed   uint64
		workers   int
		batchDays int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the configured store with sparse random daily values",
		Long: "Writes random values for every catalog metric into the store selected by " +
			"SOURCE_DRIVER (postgres, sqlite or badger). Existing values for the same day are overwritten.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			start, err := time.Parse(timeseries.DateLayout, startDate)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			end, err := time.Parse(timeseries.DateLayout, endDate)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var pool *pgxpool.Pool
			if source.NeedsPostgres(&cfg.Source) {
				pool, err = openPool(ctx, &cfg.Database)
				if err != nil {
					return err
				}
				defer pool.Close()
			}

			metricCatalog := catalog.New(cfg.Catalog.Names)
			store, err := source.OpenStore(ctx, cfg, metricCatalog, pool)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", cfg.Source.Driver, err)
			}
			defer store.Close()

			_, err = seed.Run(ctx, store, metricCatalog.IDs(), seed.Options{
				Start:     start,
				End:       end,
				Density:   density,
				MaxValue:  cfg.Source.RandomMaxValue,
				Seed:      rngSeed,
				Workers:   workers,
				BatchDays: batchDays,
			}, logger)
			return err
		},
	}

	today := timeseries.Day(time.Now().UTC())
	cmd.Flags().StringVar(&startDate, "start", today.AddDate(-1, 0, 0).Format(timeseries.DateLayout), "first day to seed (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", today.Format(timeseries.DateLayout), "last day to seed (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&density, "density", 0.6, "share of days that get a value")
	cmd.Flags().Uint64Var(&rngSeed, "seed", 0, "random seed, 0 for a random run")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU()*2, "concurrent writers")
	cmd.Flags().IntVar(&batchDays, "batch-days", 90, "days per write")

	return cmd
}
