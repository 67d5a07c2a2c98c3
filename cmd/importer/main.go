// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Command importer runs the batch import pipeline over a data.json
// extraction file.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (plus --dry-run flag).
//  3. Open the error log (truncating the previous run's).
//  4. Connect to PostgreSQL and run migrations — or build the in-memory
//     store when dry-running.
//  5. Load the dataset and run the pipeline.
//
// The process exits non-zero only on fatal errors (bad dataset, failed
// bootstrap); per-entry failures are counted and logged instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/daleelbalady/daleel/internal/core/provider"
	"github.com/daleelbalady/daleel/internal/core/review"
	"github.com/daleelbalady/daleel/internal/core/service"
	"github.com/daleelbalady/daleel/internal/core/shop"
	"github.com/daleelbalady/daleel/internal/core/tag"
	"github.com/daleelbalady/daleel/internal/core/taxonomy"
	"github.com/daleelbalady/daleel/internal/core/user"
	"github.com/daleelbalady/daleel/internal/importer"
	"github.com/daleelbalady/daleel/internal/platform/config"
	"github.com/daleelbalady/daleel/internal/platform/constants"
	"github.com/daleelbalady/daleel/internal/platform/memory"
	"github.com/daleelbalady/daleel/internal/platform/migration"
	pgstore "github.com/daleelbalady/daleel/internal/platform/postgres"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Daleel] importer_initializing")

	if err := run(log); err != nil {
		log.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run owns every resource the pipeline opens. It returns instead of exiting
// so the deferred closes release the pool and the error log on every
// outcome, fatal ones included.
func run(log *slog.Logger) error {
	// ── 2. Configuration ──────────────────────────────────────────────────
	dryRunFlag := flag.Bool("dry-run", false, "run the pipeline in-memory without touching the database")
	datasetFlag := flag.String("dataset", "", "path to the extraction file (overrides DATASET_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	dryRun := cfg.DryRun || *dryRunFlag
	datasetPath := cfg.DatasetPath
	if *datasetFlag != "" {
		datasetPath = *datasetFlag
	}

	log.Info("configuration_loaded",
		slog.String("dataset", datasetPath),
		slog.Bool("dry_run", dryRun),
	)

	// ── 3. Error Log ──────────────────────────────────────────────────────
	// Dry runs keep failures on the console only.
	errorLog := importer.NewConsoleErrorLog(log)
	if !dryRun {
		errorLog, err = importer.OpenErrorLog(cfg.ErrorLogPath, log)
		if err != nil {
			return fmt.Errorf("open error log: %w", err)
		}
		log.Info("error_log_opened", slog.String("path", cfg.ErrorLogPath))
	}
	defer func() {
		if cerr := errorLog.Close(); cerr != nil {
			log.Error("error log close failed", slog.Any("error", cerr))
		}
	}()

	// ── 4. Stores ─────────────────────────────────────────────────────────
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	var stores importer.Stores

	if dryRun {
		log.Info("dry_run_using_in_memory_store")
		stores = memoryStores(memory.NewStore())
	} else {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		stores = importer.Stores{
			Users:     user.NewPostgresRepository(pool),
			Taxonomy:  taxonomy.NewPostgresRepository(pool),
			Shops:     shop.NewPostgresRepository(pool),
			Services:  service.NewPostgresRepository(pool),
			Tags:      tag.NewPostgresRepository(pool),
			Reviews:   review.NewPostgresRepository(pool),
			Providers: provider.NewPostgresRepository(pool),
		}
	}

	// ── 5. Run ────────────────────────────────────────────────────────────
	dataset, err := importer.LoadDataset(datasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	stats, err := importer.New(stores, errorLog, log).Run(context.Background(), dataset)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	if stats.Errors > 0 {
		log.Warn("import_finished_with_errors",
			slog.Int("errors", stats.Errors),
			slog.String("error_log", cfg.ErrorLogPath),
		)
	}
	return nil
}

func memoryStores(store *memory.Store) importer.Stores {
	return importer.Stores{
		Users:     store.Users(),
		Taxonomy:  store.Taxonomy(),
		Shops:     store.Shops(),
		Services:  store.Services(),
		Tags:      store.Tags(),
		Reviews:   store.Reviews(),
		Providers: store.Providers(),
	}
}
