// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/coursedesk/internal/platform/apperr"
	"github.com/taibuivan/coursedesk/internal/platform/database/schema"
	"github.com/taibuivan/coursedesk/internal/platform/dberr"
	"github.com/taibuivan/coursedesk/internal/platform/postgres"
)

// # PostgreSQL Repository

// chapterRepository implements [Repository] using pgx.
type chapterRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed chapter store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &chapterRepository{pool: pool}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChapter(row scanner) (*Chapter, error) {
	var chapter Chapter
	err := row.Scan(
		&chapter.ID,
		&chapter.CourseID,
		&chapter.Title,
		&chapter.Description,
		&chapter.VideoURL,
		&chapter.Position,
		&chapter.IsPublished,
		&chapter.IsFree,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

/*
Create appends a chapter at the tail of its course.

Description: The parent course row is locked for the duration of the
transaction so concurrent creates cannot compute the same next position.
*/
func (repository *chapterRepository) Create(context context.Context, chapter *Chapter) error {
	err := postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {

		// Serialize appends on the parent course
		lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
			schema.CoreCourse.ID, schema.CoreCourse.Table, schema.CoreCourse.ID)

		var courseID string
		if err := tx.QueryRow(context, lockQuery, chapter.CourseID).Scan(&courseID); err != nil {
			return dberr.Wrap(err, "Course", "lock course for chapter append")
		}

		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
			VALUES (
				$1, $2, $3, $4, $5,
				COALESCE((SELECT MAX(%s) + 1 FROM %s WHERE %s = $2), 0),
				$6, $7
			)
			RETURNING %s, %s, %s
		`,
			schema.CoreChapter.Table,
			schema.CoreChapter.ID, schema.CoreChapter.CourseID, schema.CoreChapter.Title,
			schema.CoreChapter.Description, schema.CoreChapter.VideoURL, schema.CoreChapter.Position,
			schema.CoreChapter.IsPublished, schema.CoreChapter.IsFree,
			schema.CoreChapter.Position, schema.CoreChapter.Table, schema.CoreChapter.CourseID,
			schema.CoreChapter.Position, schema.CoreChapter.CreatedAt, schema.CoreChapter.UpdatedAt,
		)

		err := tx.QueryRow(context, query,
			chapter.ID,
			chapter.CourseID,
			chapter.Title,
			chapter.Description,
			chapter.VideoURL,
			chapter.IsPublished,
			chapter.IsFree,
		).Scan(&chapter.Position, &chapter.CreatedAt, &chapter.UpdatedAt)

		return dberr.Wrap(err, "Chapter", "create chapter")
	})

	return dberr.Wrap(err, "Chapter", "commit chapter append")
}

// ListByCourse returns the chapters of a course in position order.
func (repository *chapterRepository) ListByCourse(context context.Context, courseID string) ([]*Chapter, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Select("", schema.CoreChapter.Columns()...),
		schema.CoreChapter.Table,
		schema.CoreChapter.CourseID,
		schema.CoreChapter.Position,
	)

	rows, err := repository.pool.Query(context, query, courseID)
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter", "list chapters")
	}
	defer rows.Close()

	chapters := make([]*Chapter, 0)
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Chapter", "scan chapter")
		}
		chapters = append(chapters, chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Chapter", "iterate chapters")
	}

	return chapters, nil
}

// FindByID loads a single chapter scoped to its course.
func (repository *chapterRepository) FindByID(context context.Context, courseID, id string) (*Chapter, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Select("", schema.CoreChapter.Columns()...),
		schema.CoreChapter.Table,
		schema.CoreChapter.ID,
		schema.CoreChapter.CourseID,
	)

	chapter, err := scanChapter(repository.pool.QueryRow(context, query, id, courseID))
	if err != nil {
		return nil, dberr.Wrap(err, "Chapter", "find chapter")
	}

	return chapter, nil
}

// Update overwrites the editable content of a chapter.
func (repository *chapterRepository) Update(context context.Context, chapter *Chapter) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $5 AND %s = $6
		RETURNING %s
	`,
		schema.CoreChapter.Table,
		schema.CoreChapter.Title, schema.CoreChapter.Description, schema.CoreChapter.VideoURL,
		schema.CoreChapter.IsFree, schema.CoreChapter.UpdatedAt,
		schema.CoreChapter.ID, schema.CoreChapter.CourseID,
		schema.CoreChapter.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		chapter.Title,
		chapter.Description,
		chapter.VideoURL,
		chapter.IsFree,
		chapter.ID,
		chapter.CourseID,
	).Scan(&chapter.UpdatedAt)

	return dberr.Wrap(err, "Chapter", "update chapter")
}

// SetPublished flips the publication flag.
func (repository *chapterRepository) SetPublished(context context.Context, courseID, id string, published bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2 AND %s = $3`,
		schema.CoreChapter.Table,
		schema.CoreChapter.IsPublished, schema.CoreChapter.UpdatedAt,
		schema.CoreChapter.ID, schema.CoreChapter.CourseID,
	)

	result, err := repository.pool.Exec(context, query, published, id, courseID)
	if err != nil {
		return dberr.Wrap(err, "Chapter", "set chapter publication")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Chapter")
	}

	return nil
}

/*
Delete removes a chapter permanently.

Description: Later chapters move up by one inside the same transaction so
the course keeps positions 0..n-1.
*/
func (repository *chapterRepository) Delete(context context.Context, courseID, id string) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 RETURNING %s`,
		schema.CoreChapter.Table, schema.CoreChapter.ID, schema.CoreChapter.CourseID,
		schema.CoreChapter.Position)

	shiftQuery := fmt.Sprintf(`UPDATE %s SET %s = %s - 1, %s = NOW() WHERE %s = $1 AND %s > $2`,
		schema.CoreChapter.Table,
		schema.CoreChapter.Position, schema.CoreChapter.Position, schema.CoreChapter.UpdatedAt,
		schema.CoreChapter.CourseID, schema.CoreChapter.Position)

	err := postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		var position int
		if err := tx.QueryRow(context, deleteQuery, id, courseID).Scan(&position); err != nil {
			return dberr.Wrap(err, "Chapter", "delete chapter")
		}

		if _, err := tx.Exec(context, shiftQuery, courseID, position); err != nil {
			return dberr.Wrap(err, "Chapter", "close position gap")
		}

		return nil
	})

	return dberr.Wrap(err, "Chapter", "commit chapter delete")
}

/*
Reorder applies a full set of new positions inside one transaction.

Description: The (course, position) unique constraint is deferred, so
swapping positions between chapters never trips it mid-transaction. All
updates are sent as a single pgx batch.
*/
func (repository *chapterRepository) Reorder(context context.Context, courseID string, list []Position) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2 AND %s = $3`,
		schema.CoreChapter.Table,
		schema.CoreChapter.Position, schema.CoreChapter.UpdatedAt,
		schema.CoreChapter.ID, schema.CoreChapter.CourseID,
	)

	err := postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, item := range list {
			batch.Queue(query, item.Position, item.ID, courseID)
		}

		results := tx.SendBatch(context, batch)
		for range list {
			tag, err := results.Exec()
			if err != nil {
				_ = results.Close()
				return dberr.Wrap(err, "Chapter", "reorder chapters")
			}
			if tag.RowsAffected() == 0 {
				_ = results.Close()
				return apperr.NotFound("Chapter")
			}
		}

		return dberr.Wrap(results.Close(), "Chapter", "close reorder batch")
	})

	// The position constraint is deferred, so collisions surface at commit.
	return dberr.Wrap(err, "Chapter", "commit reorder")
}

// HasPublished reports whether the course has any published chapter.
func (repository *chapterRepository) HasPublished(context context.Context, courseID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = TRUE)`,
		schema.CoreChapter.Table, schema.CoreChapter.CourseID, schema.CoreChapter.IsPublished)

	var exists bool
	if err := repository.pool.QueryRow(context, query, courseID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Chapter", "check published chapters")
	}

	return exists, nil
}
