// Copyright (c) 2026 Daleel Balady. All rights reserved.

package shop

import (
	"context"
	"fmt"

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

func shopSelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreShop.ID, schema.CoreShop.Name, schema.CoreShop.Slug, schema.CoreShop.Phone,
		schema.CoreShop.Email, schema.CoreShop.City, schema.CoreShop.Description,
		schema.CoreShop.AddressID, schema.CoreShop.OwnerID, schema.CoreShop.DesignID,
		schema.CoreShop.CreatedAt, schema.CoreShop.UpdatedAt,
		schema.CoreShop.Table,
	)
}

func (repository *PostgresRepository) scanShopRow(row interface{ Scan(...any) error }) (*Shop, error) {
	s := &Shop{}
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Phone, &s.Email, &s.City, &s.Description,
		&s.AddressID, &s.OwnerID, &s.DesignID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) GetByNameAndOwner(context context.Context, name, ownerID string) (*Shop, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1`,
		shopSelect(), schema.CoreShop.Name, schema.CoreShop.OwnerID, schema.CoreShop.CreatedAt)

	shop, err := repository.scanShopRow(repository.db.QueryRow(context, query, name, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_shop_by_name_and_owner")
	}
	return shop, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Shop, error) {
	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
		       t.%s, t.%s, t.%s
		FROM %s s
		JOIN %s t ON s.%s = t.%s
		WHERE s.%s = $1
	`,
		schema.CoreShop.ID, schema.CoreShop.Name, schema.CoreShop.Slug, schema.CoreShop.Phone,
		schema.CoreShop.Email, schema.CoreShop.City, schema.CoreShop.Description,
		schema.CoreShop.AddressID, schema.CoreShop.OwnerID, schema.CoreShop.DesignID,
		schema.CoreShop.CreatedAt, schema.CoreShop.UpdatedAt,
		schema.CoreShopTranslation.ID, schema.CoreShopTranslation.TextEN, schema.CoreShopTranslation.TextAR,
		schema.CoreShop.Table, schema.CoreShopTranslation.Table,
		schema.CoreShop.AddressID, schema.CoreShopTranslation.ID,
		schema.CoreShop.Slug,
	)

	s := &Shop{}
	address := &Translation{}

	err := repository.db.QueryRow(context, query, slug).Scan(
		&s.ID, &s.Name, &s.Slug, &s.Phone, &s.Email, &s.City, &s.Description,
		&s.AddressID, &s.OwnerID, &s.DesignID, &s.CreatedAt, &s.UpdatedAt,
		&address.ID, &address.TextEN, &address.TextAR,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_shop_by_slug")
	}

	s.Address = address
	return s, nil
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params, city string) ([]*Shop, int, error) {
	where := ""
	args := []any{}
	if city != "" {
		where = fmt.Sprintf(`WHERE %s = $1`, schema.CoreShop.City)
		args = append(args, city)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.CoreShop.Table, where)

	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_shops")
	}

	query := fmt.Sprintf(`%s %s ORDER BY %s ASC LIMIT $%d OFFSET $%d`,
		shopSelect(), where, schema.CoreShop.Name, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_shops")
	}
	defer rows.Close()

	shops := make([]*Shop, 0)
	for rows.Next() {
		shop, err := repository.scanShopRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_shop")
		}
		shops = append(shops, shop)
	}
	return shops, total, nil
}

func (repository *PostgresRepository) SlugTaken(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreShop.Table, schema.CoreShop.Slug)

	taken := false
	if err := repository.db.QueryRow(context, query, slug).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "shop_slug_taken")
	}
	return taken, nil
}

func (repository *PostgresRepository) CreateTranslation(context context.Context, translation *Translation) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.CoreShopTranslation.Table,
		schema.CoreShopTranslation.ID, schema.CoreShopTranslation.TextEN, schema.CoreShopTranslation.TextAR,
	)

	if _, err := repository.db.Exec(context, query, translation.ID, translation.TextEN, translation.TextAR); err != nil {
		return dberr.Wrap(err, "create_shop_translation")
	}
	return nil
}

func (repository *PostgresRepository) Create(context context.Context, shop *Shop) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s
	`,
		schema.CoreShop.Table,
		schema.CoreShop.ID, schema.CoreShop.Name, schema.CoreShop.Slug, schema.CoreShop.Phone,
		schema.CoreShop.Email, schema.CoreShop.City, schema.CoreShop.Description,
		schema.CoreShop.AddressID, schema.CoreShop.OwnerID, schema.CoreShop.DesignID,
		schema.CoreShop.CreatedAt, schema.CoreShop.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		shop.ID, shop.Name, shop.Slug, shop.Phone, shop.Email, shop.City, shop.Description,
		shop.AddressID, shop.OwnerID, shop.DesignID,
	).Scan(&shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_shop")
	}
	return nil
}
