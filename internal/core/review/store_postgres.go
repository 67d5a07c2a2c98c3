// Copyright (c) 2026 Daleel Balady. All rights reserved.

package review

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

func reviewSelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreReview.ID, schema.CoreReview.AuthorID, schema.CoreReview.Rating,
		schema.CoreReview.Comment, schema.CoreReview.ServiceID, schema.CoreReview.ShopID,
		schema.CoreReview.IsVerified, schema.CoreReview.CreatedAt,
		schema.CoreReview.Table,
	)
}

func (repository *PostgresRepository) GetByCommentAndService(context context.Context, comment, serviceID string) (*Review, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1`,
		reviewSelect(), schema.CoreReview.Comment, schema.CoreReview.ServiceID, schema.CoreReview.CreatedAt)

	r := &Review{}
	err := repository.db.QueryRow(context, query, comment, serviceID).Scan(
		&r.ID, &r.AuthorID, &r.Rating, &r.Comment, &r.ServiceID, &r.ShopID, &r.IsVerified, &r.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_review_by_comment_and_service")
	}
	return r, nil
}

func (repository *PostgresRepository) ListByService(context context.Context, serviceID string) ([]*Review, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 ORDER BY %s DESC`,
		reviewSelect(), schema.CoreReview.ServiceID, schema.CoreReview.CreatedAt)

	rows, err := repository.db.Query(context, query, serviceID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews_by_service")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		r := &Review{}
		err := rows.Scan(&r.ID, &r.AuthorID, &r.Rating, &r.Comment, &r.ServiceID, &r.ShopID, &r.IsVerified, &r.CreatedAt)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func (repository *PostgresRepository) Create(context context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.CoreReview.Table,
		schema.CoreReview.ID, schema.CoreReview.AuthorID, schema.CoreReview.Rating,
		schema.CoreReview.Comment, schema.CoreReview.ServiceID, schema.CoreReview.ShopID,
		schema.CoreReview.IsVerified,
		schema.CoreReview.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		review.ID, review.AuthorID, review.Rating, review.Comment,
		review.ServiceID, review.ShopID, review.IsVerified,
	).Scan(&review.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_review")
	}
	return nil
}
