// Copyright (c) 2026 Daleel Balady. All rights reserved.

package tag

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

func (repository *PostgresRepository) GetByName(context context.Context, name string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.CreatedAt,
		schema.CoreTag.Table, schema.CoreTag.Name, schema.CoreTag.CreatedAt,
	)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_name")
	}
	return t, nil
}

func (repository *PostgresRepository) ListByService(context context.Context, serviceID string) ([]Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s
		FROM %s t
		JOIN %s st ON st.%s = t.%s
		WHERE st.%s = $1
		ORDER BY t.%s ASC
	`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.CreatedAt,
		schema.CoreTag.Table, schema.CoreServiceTag.Table,
		schema.CoreServiceTag.TagID, schema.CoreTag.ID,
		schema.CoreServiceTag.ServiceID, schema.CoreTag.Name,
	)

	rows, err := repository.db.Query(context, query, serviceID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags_by_service")
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		t := Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (repository *PostgresRepository) Create(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.CoreTag.Table, schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, tag.ID, tag.Name).Scan(&tag.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_tag")
	}
	return nil
}
