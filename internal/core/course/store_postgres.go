// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/coursedesk/internal/platform/apperr"
	"github.com/taibuivan/coursedesk/internal/platform/database/schema"
	"github.com/taibuivan/coursedesk/internal/platform/dberr"
)

// # PostgreSQL Repository

// courseRepository implements [Repository] using pgx.
type courseRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed course store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &courseRepository{pool: pool}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(row scanner, extra ...any) (*Course, error) {
	var course Course
	targets := []any{
		&course.ID,
		&course.OwnerID,
		&course.Title,
		&course.Description,
		&course.ImageURL,
		&course.Price,
		&course.CategoryID,
		&course.IsPublished,
		&course.CreatedAt,
		&course.UpdatedAt,
	}
	if err := row.Scan(append(targets, extra...)...); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a draft course.
func (repository *courseRepository) Create(context context.Context, course *Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, FALSE)
		RETURNING %s, %s
	`,
		schema.CoreCourse.Table,
		schema.CoreCourse.ID, schema.CoreCourse.OwnerID, schema.CoreCourse.Title, schema.CoreCourse.IsPublished,
		schema.CoreCourse.CreatedAt, schema.CoreCourse.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, course.ID, course.OwnerID, course.Title).
		Scan(&course.CreatedAt, &course.UpdatedAt)

	return dberr.Wrap(err, "Course", "create course")
}

// FindByID loads a single course.
func (repository *courseRepository) FindByID(context context.Context, id string) (*Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Select("", schema.CoreCourse.Columns()...),
		schema.CoreCourse.Table,
		schema.CoreCourse.ID,
	)

	course, err := scanCourse(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Course", "find course")
	}

	return course, nil
}

/*
ListByOwner returns a page of the owner's courses.

Description: The total is computed with a window function so the page and
the count come back in a single round-trip.
*/
func (repository *courseRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Course, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.Select("", schema.CoreCourse.Columns()...),
		schema.CoreCourse.Table,
		schema.CoreCourse.OwnerID,
		schema.CoreCourse.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Course", "list courses")
	}
	defer rows.Close()

	var total int
	courses := make([]*Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Course", "scan course")
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Course", "iterate courses")
	}

	return courses, total, nil
}

// Update overwrites the editable attributes of a course.
func (repository *courseRepository) Update(context context.Context, course *Course) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $6
		RETURNING %s
	`,
		schema.CoreCourse.Table,
		schema.CoreCourse.Title, schema.CoreCourse.Description, schema.CoreCourse.ImageURL,
		schema.CoreCourse.Price, schema.CoreCourse.CategoryID, schema.CoreCourse.UpdatedAt,
		schema.CoreCourse.ID,
		schema.CoreCourse.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		course.Title,
		course.Description,
		course.ImageURL,
		course.Price,
		course.CategoryID,
		course.ID,
	).Scan(&course.UpdatedAt)

	return dberr.Wrap(err, "Course", "update course")
}

// SetPublished flips the publication flag.
func (repository *courseRepository) SetPublished(context context.Context, id string, published bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.CoreCourse.Table, schema.CoreCourse.IsPublished, schema.CoreCourse.UpdatedAt, schema.CoreCourse.ID)

	result, err := repository.pool.Exec(context, query, published, id)
	if err != nil {
		return dberr.Wrap(err, "Course", "set course publication")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}

	return nil
}

// Delete removes a course permanently.
func (repository *courseRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreCourse.Table, schema.CoreCourse.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Course", "delete course")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}

	return nil
}
