// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import "log/slog"

// Stats accumulates per-entity outcome counters across one import run.
type Stats struct {
	UsersCreated         int
	UsersSkipped         int
	ShopsCreated         int
	ShopsSkipped         int
	ServicesCreated      int
	ServicesSkipped      int
	ReviewsCreated       int
	SubscriptionsCreated int
	ApplicationsCreated  int
	Errors               int
}

// Report writes the final snapshot through the structured logger.
func (stats *Stats) Report(logger *slog.Logger) {
	logger.Info("import_completed",
		slog.Int("users_created", stats.UsersCreated),
		slog.Int("users_skipped", stats.UsersSkipped),
		slog.Int("shops_created", stats.ShopsCreated),
		slog.Int("shops_skipped", stats.ShopsSkipped),
		slog.Int("services_created", stats.ServicesCreated),
		slog.Int("services_skipped", stats.ServicesSkipped),
		slog.Int("reviews_created", stats.ReviewsCreated),
		slog.Int("subscriptions_created", stats.SubscriptionsCreated),
		slog.Int("applications_created", stats.ApplicationsCreated),
		slog.Int("errors", stats.Errors),
	)

	if stats.Errors == 0 {
		logger.Info("all_entries_processed")
	} else {
		logger.Warn("completed_with_errors", slog.Int("errors", stats.Errors))
	}
}
