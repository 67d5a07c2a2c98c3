// Copyright (c) 2026 Daleel Balady. All rights reserved.

package taxonomy

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

// # Categories

func categorySelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreCategory.ID, schema.CoreCategory.Name, schema.CoreCategory.Slug,
		schema.CoreCategory.Description, schema.CoreCategory.DesignID,
		schema.CoreCategory.CreatedAt, schema.CoreCategory.UpdatedAt,
		schema.CoreCategory.Table,
	)
}

func (repository *PostgresRepository) scanCategoryRow(row interface{ Scan(...any) error }) (*Category, error) {
	c := &Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.DesignID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) GetCategoryByIDOrName(context context.Context, id, name string) (*Category, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 OR %s = $2 ORDER BY %s ASC LIMIT 1`,
		categorySelect(), schema.CoreCategory.ID, schema.CoreCategory.Name, schema.CoreCategory.CreatedAt)

	category, err := repository.scanCategoryRow(repository.db.QueryRow(context, query, id, name))
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_id_or_name")
	}
	return category, nil
}

func (repository *PostgresRepository) GetCategoryByID(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, categorySelect(), schema.CoreCategory.ID)

	category, err := repository.scanCategoryRow(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_id")
	}
	return category, nil
}

func (repository *PostgresRepository) GetCategoryByName(context context.Context, name string) (*Category, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		categorySelect(), schema.CoreCategory.Name, schema.CoreCategory.CreatedAt)

	category, err := repository.scanCategoryRow(repository.db.QueryRow(context, query, name))
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_name")
	}
	return category, nil
}

func (repository *PostgresRepository) GetFirstCategory(context context.Context) (*Category, error) {
	query := fmt.Sprintf(`%s ORDER BY %s ASC LIMIT 1`, categorySelect(), schema.CoreCategory.CreatedAt)

	category, err := repository.scanCategoryRow(repository.db.QueryRow(context, query))
	if err != nil {
		return nil, dberr.Wrap(err, "get_first_category")
	}
	return category, nil
}

func (repository *PostgresRepository) ListCategories(context context.Context, params pagination.Params) ([]*Category, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CoreCategory.Table)

	total := 0
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_categories")
	}

	query := fmt.Sprintf(`%s ORDER BY %s ASC LIMIT $1 OFFSET $2`, categorySelect(), schema.CoreCategory.Name)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category, err := repository.scanCategoryRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}
	return categories, total, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.CoreCategory.Table,
		schema.CoreCategory.ID, schema.CoreCategory.Name, schema.CoreCategory.Slug,
		schema.CoreCategory.Description, schema.CoreCategory.DesignID,
		schema.CoreCategory.CreatedAt, schema.CoreCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		category.ID, category.Name, category.Slug, category.Description, category.DesignID,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}
	return nil
}

func (repository *PostgresRepository) SetCategoryDesign(context context.Context, categoryID, designID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.CoreCategory.Table, schema.CoreCategory.DesignID, schema.CoreCategory.UpdatedAt, schema.CoreCategory.ID)

	if _, err := repository.db.Exec(context, query, designID, categoryID); err != nil {
		return dberr.Wrap(err, "set_category_design")
	}
	return nil
}

// # SubCategories

func subCategorySelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreSubCategory.ID, schema.CoreSubCategory.Name, schema.CoreSubCategory.Slug,
		schema.CoreSubCategory.CategoryID, schema.CoreSubCategory.CreatedAt, schema.CoreSubCategory.UpdatedAt,
		schema.CoreSubCategory.Table,
	)
}

func (repository *PostgresRepository) scanSubCategoryRow(row interface{ Scan(...any) error }) (*SubCategory, error) {
	s := &SubCategory{}
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetSubCategory matches a subcategory by id, by (name, category) pair, or by
// any of the given slug candidates, whichever hits first.
func (repository *PostgresRepository) GetSubCategory(context context.Context, id, name, categoryID string, slugs []string) (*SubCategory, error) {
	query := fmt.Sprintf(`%s
		WHERE %s = $1
		   OR (%s = $2 AND %s = $3)
		   OR %s = ANY($4)
		ORDER BY %s ASC
		LIMIT 1
	`,
		subCategorySelect(),
		schema.CoreSubCategory.ID,
		schema.CoreSubCategory.Name, schema.CoreSubCategory.CategoryID,
		schema.CoreSubCategory.Slug,
		schema.CoreSubCategory.CreatedAt,
	)

	subCategory, err := repository.scanSubCategoryRow(repository.db.QueryRow(context, query, id, name, categoryID, slugs))
	if err != nil {
		return nil, dberr.Wrap(err, "get_subcategory")
	}
	return subCategory, nil
}

func (repository *PostgresRepository) GetSubCategoryByID(context context.Context, id string) (*SubCategory, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, subCategorySelect(), schema.CoreSubCategory.ID)

	subCategory, err := repository.scanSubCategoryRow(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_subcategory_by_id")
	}
	return subCategory, nil
}

func (repository *PostgresRepository) ListSubCategories(context context.Context, categoryID string) ([]SubCategory, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 ORDER BY %s ASC`,
		subCategorySelect(), schema.CoreSubCategory.CategoryID, schema.CoreSubCategory.CreatedAt)

	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_subcategories")
	}
	defer rows.Close()

	subCategories := make([]SubCategory, 0)
	for rows.Next() {
		subCategory, err := repository.scanSubCategoryRow(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_subcategory")
		}
		subCategories = append(subCategories, *subCategory)
	}
	return subCategories, nil
}

func (repository *PostgresRepository) CreateSubCategory(context context.Context, subCategory *SubCategory) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.CoreSubCategory.Table,
		schema.CoreSubCategory.ID, schema.CoreSubCategory.Name, schema.CoreSubCategory.Slug,
		schema.CoreSubCategory.CategoryID,
		schema.CoreSubCategory.CreatedAt, schema.CoreSubCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		subCategory.ID, subCategory.Name, subCategory.Slug, subCategory.CategoryID,
	).Scan(&subCategory.CreatedAt, &subCategory.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_subcategory")
	}
	return nil
}

// # Designs

func designSelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreDesign.ID, schema.CoreDesign.Name, schema.CoreDesign.Description,
		schema.CoreDesign.Slug, schema.CoreDesign.CategoryID,
		schema.CoreDesign.CreatedAt, schema.CoreDesign.UpdatedAt,
		schema.CoreDesign.Table,
	)
}

func (repository *PostgresRepository) scanDesignRow(row interface{ Scan(...any) error }) (*Design, error) {
	d := &Design{}
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Slug, &d.CategoryID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (repository *PostgresRepository) GetDesignBySlug(context context.Context, slug string) (*Design, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		designSelect(), schema.CoreDesign.Slug, schema.CoreDesign.CreatedAt)

	design, err := repository.scanDesignRow(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_design_by_slug")
	}
	return design, nil
}

func (repository *PostgresRepository) GetFirstDesign(context context.Context) (*Design, error) {
	query := fmt.Sprintf(`%s ORDER BY %s ASC LIMIT 1`, designSelect(), schema.CoreDesign.CreatedAt)

	design, err := repository.scanDesignRow(repository.db.QueryRow(context, query))
	if err != nil {
		return nil, dberr.Wrap(err, "get_first_design")
	}
	return design, nil
}

func (repository *PostgresRepository) CreateDesign(context context.Context, design *Design) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.CoreDesign.Table,
		schema.CoreDesign.ID, schema.CoreDesign.Name, schema.CoreDesign.Description,
		schema.CoreDesign.Slug, schema.CoreDesign.CategoryID,
		schema.CoreDesign.CreatedAt, schema.CoreDesign.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		design.ID, design.Name, design.Description, design.Slug, design.CategoryID,
	).Scan(&design.CreatedAt, &design.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_design")
	}
	return nil
}

func (repository *PostgresRepository) SetDesignCategory(context context.Context, designID, categoryID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.CoreDesign.Table, schema.CoreDesign.CategoryID, schema.CoreDesign.UpdatedAt, schema.CoreDesign.ID)

	if _, err := repository.db.Exec(context, query, categoryID, designID); err != nil {
		return dberr.Wrap(err, "set_design_category")
	}
	return nil
}
