// Copyright (c) 2026 Daleel Balady. All rights reserved.

package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daleelbalady/daleel/internal/platform/database/schema"
	"github.com/daleelbalady/daleel/internal/platform/dberr"
	"github.com/daleelbalady/daleel/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func serviceSelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreService.ID, schema.CoreService.EmbeddingText, schema.CoreService.Phone,
		schema.CoreService.City, schema.CoreService.Price, schema.CoreService.ShopID,
		schema.CoreService.OwnerUserID, schema.CoreService.TranslationID,
		schema.CoreService.CategoryID, schema.CoreService.SubCategoryID, schema.CoreService.DesignID,
		schema.CoreService.CreatedAt, schema.CoreService.UpdatedAt,
		schema.CoreService.Table,
	)
}

func (repository *PostgresRepository) scanServiceRow(row interface{ Scan(...any) error }) (*Service, error) {
	s := &Service{}
	err := row.Scan(&s.ID, &s.EmbeddingText, &s.Phone, &s.City, &s.Price, &s.ShopID,
		&s.OwnerUserID, &s.TranslationID, &s.CategoryID, &s.SubCategoryID, &s.DesignID,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) GetByShopAndEmbedding(context context.Context, shopID, embeddingText string) (*Service, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1`,
		serviceSelect(), schema.CoreService.ShopID, schema.CoreService.EmbeddingText, schema.CoreService.CreatedAt)

	service, err := repository.scanServiceRow(repository.db.QueryRow(context, query, shopID, embeddingText))
	if err != nil {
		return nil, dberr.Wrap(err, "get_service_by_shop_and_embedding")
	}
	return service, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Service, error) {
	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
		       t.%s, t.%s, t.%s, t.%s, t.%s
		FROM %s s
		JOIN %s t ON s.%s = t.%s
		WHERE s.%s = $1
	`,
		schema.CoreService.ID, schema.CoreService.EmbeddingText, schema.CoreService.Phone,
		schema.CoreService.City, schema.CoreService.Price, schema.CoreService.ShopID,
		schema.CoreService.OwnerUserID, schema.CoreService.TranslationID,
		schema.CoreService.CategoryID, schema.CoreService.SubCategoryID, schema.CoreService.DesignID,
		schema.CoreService.CreatedAt, schema.CoreService.UpdatedAt,
		schema.CoreServiceTranslation.ID, schema.CoreServiceTranslation.NameEN,
		schema.CoreServiceTranslation.NameAR, schema.CoreServiceTranslation.DescriptionEN,
		schema.CoreServiceTranslation.DescriptionAR,
		schema.CoreService.Table, schema.CoreServiceTranslation.Table,
		schema.CoreService.TranslationID, schema.CoreServiceTranslation.ID,
		schema.CoreService.ID,
	)

	s := &Service{}
	translation := &Translation{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.EmbeddingText, &s.Phone, &s.City, &s.Price, &s.ShopID,
		&s.OwnerUserID, &s.TranslationID, &s.CategoryID, &s.SubCategoryID, &s.DesignID,
		&s.CreatedAt, &s.UpdatedAt,
		&translation.ID, &translation.NameEN, &translation.NameAR,
		&translation.DescriptionEN, &translation.DescriptionAR,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_service_by_id")
	}

	s.Translation = translation
	return s, nil
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params, city, categoryID string) ([]*Service, int, error) {
	where := ""
	args := []any{}

	if city != "" {
		args = append(args, city)
		where = fmt.Sprintf(`WHERE %s = $%d`, schema.CoreService.City, len(args))
	}
	if categoryID != "" {
		args = append(args, categoryID)
		clause := fmt.Sprintf(`%s = $%d`, schema.CoreService.CategoryID, len(args))
		if where == "" {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.CoreService.Table, where)

	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_services")
	}

	query := fmt.Sprintf(`%s %s ORDER BY %s ASC LIMIT $%d OFFSET $%d`,
		serviceSelect(), where, schema.CoreService.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_services")
	}
	defer rows.Close()

	services := make([]*Service, 0)
	for rows.Next() {
		service, err := repository.scanServiceRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_service")
		}
		services = append(services, service)
	}
	return services, total, nil
}

func (repository *PostgresRepository) CreateTranslation(context context.Context, translation *Translation) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.CoreServiceTranslation.Table,
		schema.CoreServiceTranslation.ID, schema.CoreServiceTranslation.NameEN,
		schema.CoreServiceTranslation.NameAR, schema.CoreServiceTranslation.DescriptionEN,
		schema.CoreServiceTranslation.DescriptionAR,
	)

	_, err := repository.db.Exec(context, query,
		translation.ID, translation.NameEN, translation.NameAR,
		translation.DescriptionEN, translation.DescriptionAR,
	)
	if err != nil {
		return dberr.Wrap(err, "create_service_translation")
	}
	return nil
}

// Create inserts the service row and its tag links in one transaction.
func (repository *PostgresRepository) Create(context context.Context, service *Service) error {
	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_create_service")
	}
	defer tx.Rollback(context)

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s, %s
	`,
		schema.CoreService.Table,
		schema.CoreService.ID, schema.CoreService.EmbeddingText, schema.CoreService.Phone,
		schema.CoreService.City, schema.CoreService.Price, schema.CoreService.ShopID,
		schema.CoreService.OwnerUserID, schema.CoreService.TranslationID,
		schema.CoreService.CategoryID, schema.CoreService.SubCategoryID, schema.CoreService.DesignID,
		schema.CoreService.CreatedAt, schema.CoreService.UpdatedAt,
	)

	err = tx.QueryRow(context, insertQuery,
		service.ID, service.EmbeddingText, service.Phone, service.City, service.Price,
		service.ShopID, service.OwnerUserID, service.TranslationID,
		service.CategoryID, service.SubCategoryID, service.DesignID,
	).Scan(&service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_service")
	}

	linkQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.CoreServiceTag.Table, schema.CoreServiceTag.ServiceID, schema.CoreServiceTag.TagID)

	for _, tagID := range service.TagIDs {
		if _, err := tx.Exec(context, linkQuery, service.ID, tagID); err != nil {
			return dberr.Wrap(err, "link_service_tag")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_service")
	}
	return nil
}
