// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"context"

	"github.com/taibuivan/coursedesk/internal/core/chapter"
)

// # Course Data Access

// Repository defines the data access contract for courses.
type Repository interface {

	// Create inserts a new draft course. Timestamps are set by the store.
	Create(context context.Context, course *Course) error

	/*
		FindByID returns a course without its chapters.

		Returns:
		  - error: apperr.NotFound when absent
	*/
	FindByID(context context.Context, id string) (*Course, error)

	/*
		ListByOwner returns a page of the owner's courses, newest first.

		Returns:
		  - []*Course: The page
		  - int: Total courses owned
	*/
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Course, int, error)

	// Update persists title, description, image URL, price and category.
	Update(context context.Context, course *Course) error

	// SetPublished flips the publication flag.
	SetPublished(context context.Context, id string, published bool) error

	// Delete removes the course and, by cascade, its chapters.
	Delete(context context.Context, id string) error
}

// ChapterReader is the slice of the chapter store the course service reads.
type ChapterReader interface {
	ListByCourse(context context.Context, courseID string) ([]*chapter.Chapter, error)
	HasPublished(context context.Context, courseID string) (bool, error)
}
