// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/coursedesk/internal/platform/database/schema"
	"github.com/taibuivan/coursedesk/internal/platform/dberr"
)

// categoryRepository implements [Repository] using pgx.
type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed category store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &categoryRepository{pool: pool}
}

// ListAll returns all categories sorted by name.
func (repository *categoryRepository) ListAll(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CoreCategory.ID, schema.CoreCategory.Name,
		schema.CoreCategory.Table, schema.CoreCategory.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Category", "list categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, dberr.Wrap(err, "Category", "scan category")
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Category", "iterate categories")
	}

	return categories, nil
}
