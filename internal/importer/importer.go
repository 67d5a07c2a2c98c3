// Copyright (c) 2026 Daleel Balady. All rights reserved.

/*
Package importer implements the idempotent batch import pipeline that
seeds the directory from an extraction file (data.json).

# Pipeline

A run bootstraps the taxonomy first, then processes entries one at a time
in a strict order: user, business paperwork, shop, tags, service, reviews.
Every entity is resolved find-first-then-create, so re-running the same
dataset converges to zero new rows. A failing entry is logged, counted
and skipped; it never stops the batch.
*/
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daleelbalady/daleel/internal/core/provider"
	"github.com/daleelbalady/daleel/internal/core/review"
	"github.com/daleelbalady/daleel/internal/core/service"
	"github.com/daleelbalady/daleel/internal/core/shop"
	"github.com/daleelbalady/daleel/internal/core/tag"
	"github.com/daleelbalady/daleel/internal/core/taxonomy"
	"github.com/daleelbalady/daleel/internal/core/user"
)

// Stores bundles every repository the pipeline writes through. Both the
// Postgres and the in-memory implementations satisfy it.
type Stores struct {
	Users     user.Repository
	Taxonomy  taxonomy.Repository
	Shops     shop.Repository
	Services  service.Repository
	Tags      tag.Repository
	Reviews   review.Repository
	Providers provider.Repository
}

// Importer drives one batch import run.
type Importer struct {
	stores Stores
	stats  *Stats
	errors *ErrorLog
	logger *slog.Logger
}

func New(stores Stores, errors *ErrorLog, logger *slog.Logger) *Importer {
	return &Importer{
		stores: stores,
		stats:  &Stats{},
		errors: errors,
		logger: logger,
	}
}

// Run executes the full pipeline over the dataset and returns the final
// counters. Only taxonomy bootstrap failures are fatal; entry failures
// are isolated.
func (imp *Importer) Run(ctx context.Context, dataset *Dataset) (*Stats, error) {
	imp.logger.Info("starting_import", slog.Int("entries", len(dataset.Entries)))

	if err := imp.bootstrapTaxonomy(ctx, dataset.Categories); err != nil {
		imp.errors.Record("Critical error during taxonomy bootstrap", err)
		return imp.stats, fmt.Errorf("bootstrap taxonomy: %w", err)
	}

	for i := range dataset.Entries {
		entry := &dataset.Entries[i]

		imp.logger.Info("processing_entry",
			slog.Int("index", i+1),
			slog.Int("total", len(dataset.Entries)),
			slog.String("name", entry.User.Name),
		)

		if err := imp.processEntry(ctx, entry); err != nil {
			imp.errors.Record(fmt.Sprintf("Error processing entry %d (%s)", i+1, entry.User.Name), err)
			imp.stats.Errors++
			continue
		}
	}

	imp.stats.Report(imp.logger)
	return imp.stats, nil
}
