// Copyright (c) 2026 Daleel Balady. All rights reserved.

package user

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

func (repository *PostgresRepository) GetByName(context context.Context, name string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT 1
	`,
		schema.CoreUser.ID, schema.CoreUser.Name, schema.CoreUser.Email, schema.CoreUser.Phone,
		schema.CoreUser.Role, schema.CoreUser.IsVerified, schema.CoreUser.VerifiedAt,
		schema.CoreUser.CreatedAt, schema.CoreUser.UpdatedAt,
		schema.CoreUser.Table, schema.CoreUser.Name, schema.CoreUser.CreatedAt,
	)

	u := &User{}
	err := repository.db.QueryRow(context, query, name).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.IsVerified, &u.VerifiedAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_name")
	}
	return u, nil
}

func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s
	`,
		schema.CoreUser.Table,
		schema.CoreUser.ID, schema.CoreUser.Name, schema.CoreUser.Email, schema.CoreUser.Phone,
		schema.CoreUser.Role, schema.CoreUser.IsVerified, schema.CoreUser.VerifiedAt,
		schema.CoreUser.CreatedAt, schema.CoreUser.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Name, user.Email, user.Phone, user.Role, user.IsVerified, user.VerifiedAt,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_user")
	}
	return nil
}
