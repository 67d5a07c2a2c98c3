// Copyright (c) 2026 Daleel Balady. All rights reserved.

package provider

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daleelbalady/daleel/internal/platform/database/schema"
	"github.com/daleelbalady/daleel/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetSubscriptionByProvider(context context.Context, providerID string) (*Subscription, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CoreProviderSubscription.ID, schema.CoreProviderSubscription.ProviderID,
		schema.CoreProviderSubscription.PlanType, schema.CoreProviderSubscription.PricePerYear,
		schema.CoreProviderSubscription.CanTakeBookings, schema.CoreProviderSubscription.CanListProducts,
		schema.CoreProviderSubscription.SearchPriority, schema.CoreProviderSubscription.HasPriorityBadge,
		schema.CoreProviderSubscription.HasPromotionalVideo, schema.CoreProviderSubscription.TotalDiscount,
		schema.CoreProviderSubscription.IsActive, schema.CoreProviderSubscription.AutoRenew,
		schema.CoreProviderSubscription.CreatedAt,
		schema.CoreProviderSubscription.Table, schema.CoreProviderSubscription.ProviderID,
	)

	s := &Subscription{}
	err := repository.db.QueryRow(context, query, providerID).Scan(
		&s.ID, &s.ProviderID, &s.PlanType, &s.PricePerYear, &s.CanTakeBookings, &s.CanListProducts,
		&s.SearchPriority, &s.HasPriorityBadge, &s.HasPromotionalVideo, &s.TotalDiscount,
		&s.IsActive, &s.AutoRenew, &s.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_subscription_by_provider")
	}
	return s, nil
}

func (repository *PostgresRepository) CreateSubscription(context context.Context, subscription *Subscription) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`,
		schema.CoreProviderSubscription.Table,
		schema.CoreProviderSubscription.ID, schema.CoreProviderSubscription.ProviderID,
		schema.CoreProviderSubscription.PlanType, schema.CoreProviderSubscription.PricePerYear,
		schema.CoreProviderSubscription.CanTakeBookings, schema.CoreProviderSubscription.CanListProducts,
		schema.CoreProviderSubscription.SearchPriority, schema.CoreProviderSubscription.HasPriorityBadge,
		schema.CoreProviderSubscription.HasPromotionalVideo, schema.CoreProviderSubscription.TotalDiscount,
		schema.CoreProviderSubscription.IsActive, schema.CoreProviderSubscription.AutoRenew,
		schema.CoreProviderSubscription.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		subscription.ID, subscription.ProviderID, subscription.PlanType, subscription.PricePerYear,
		subscription.CanTakeBookings, subscription.CanListProducts, subscription.SearchPriority,
		subscription.HasPriorityBadge, subscription.HasPromotionalVideo, subscription.TotalDiscount,
		subscription.IsActive, subscription.AutoRenew,
	).Scan(&subscription.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_subscription")
	}
	return nil
}

func (repository *PostgresRepository) GetApplicationByApplicantAndName(context context.Context, applicantID, businessName string) (*Application, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s ASC
		LIMIT 1
	`,
		schema.CoreBusinessApplication.ID, schema.CoreBusinessApplication.ApplicantID,
		schema.CoreBusinessApplication.BusinessName, schema.CoreBusinessApplication.BusinessEmail,
		schema.CoreBusinessApplication.BusinessPhone, schema.CoreBusinessApplication.Description,
		schema.CoreBusinessApplication.BusinessAddress, schema.CoreBusinessApplication.BusinessCity,
		schema.CoreBusinessApplication.BusinessType, schema.CoreBusinessApplication.Status,
		schema.CoreBusinessApplication.ApprovedAt, schema.CoreBusinessApplication.ReviewedBy,
		schema.CoreBusinessApplication.StatusNotes, schema.CoreBusinessApplication.CreatedAt,
		schema.CoreBusinessApplication.Table,
		schema.CoreBusinessApplication.ApplicantID, schema.CoreBusinessApplication.BusinessName,
		schema.CoreBusinessApplication.CreatedAt,
	)

	a := &Application{}
	err := repository.db.QueryRow(context, query, applicantID, businessName).Scan(
		&a.ID, &a.ApplicantID, &a.BusinessName, &a.BusinessEmail, &a.BusinessPhone,
		&a.Description, &a.BusinessAddress, &a.BusinessCity, &a.BusinessType,
		&a.Status, &a.ApprovedAt, &a.ReviewedBy, &a.StatusNotes, &a.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_application_by_applicant_and_name")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateApplication(context context.Context, application *Application) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s
	`,
		schema.CoreBusinessApplication.Table,
		schema.CoreBusinessApplication.ID, schema.CoreBusinessApplication.ApplicantID,
		schema.CoreBusinessApplication.BusinessName, schema.CoreBusinessApplication.BusinessEmail,
		schema.CoreBusinessApplication.BusinessPhone, schema.CoreBusinessApplication.Description,
		schema.CoreBusinessApplication.BusinessAddress, schema.CoreBusinessApplication.BusinessCity,
		schema.CoreBusinessApplication.BusinessType, schema.CoreBusinessApplication.Status,
		schema.CoreBusinessApplication.ApprovedAt, schema.CoreBusinessApplication.ReviewedBy,
		schema.CoreBusinessApplication.StatusNotes,
		schema.CoreBusinessApplication.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		application.ID, application.ApplicantID, application.BusinessName, application.BusinessEmail,
		application.BusinessPhone, application.Description, application.BusinessAddress,
		application.BusinessCity, application.BusinessType, application.Status,
		application.ApprovedAt, application.ReviewedBy, application.StatusNotes,
	).Scan(&application.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_application")
	}
	return nil
}
