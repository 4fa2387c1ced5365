// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import "context"

// # Chapter Data Access

// Repository defines the data access contract for chapters.
type Repository interface {

	/*
		Create appends a chapter to its course. The store assigns Position
		(last position + 1, or 0 for the first chapter) and the timestamps.

		Returns:
		  - error: apperr.NotFound when the course does not exist
	*/
	Create(context context.Context, chapter *Chapter) error

	// ListByCourse returns all chapters of a course ordered by position.
	ListByCourse(context context.Context, courseID string) ([]*Chapter, error)

	// FindByID returns a chapter scoped to its course.
	FindByID(context context.Context, courseID, id string) (*Chapter, error)

	// Update persists title, description, video URL and the free flag.
	Update(context context.Context, chapter *Chapter) error

	// SetPublished flips the publication flag of a chapter.
	SetPublished(context context.Context, courseID, id string, published bool) error

	// Delete removes a chapter and moves later chapters up by one.
	Delete(context context.Context, courseID, id string) error

	/*
		Reorder assigns every listed chapter its new position in a single
		transaction. Either all positions are applied or none.

		Returns:
		  - error: apperr.NotFound if any id does not belong to the course
	*/
	Reorder(context context.Context, courseID string, list []Position) error

	// HasPublished reports whether any chapter of the course is published.
	HasPublished(context context.Context, courseID string) (bool, error)
}

// CourseGate is the slice of the course domain the chapter service needs.
type CourseGate interface {
	// EnsureOwner fails with apperr.NotFound unless userID owns courseID.
	EnsureOwner(context context.Context, courseID, userID string) error

	// MarkUnpublished takes the course offline.
	MarkUnpublished(context context.Context, courseID string) error
}
