// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dashboard implements the course editing widgets of the teacher dashboard.

Three controllers drive the course page:

  - [CourseActions] publishes, unpublishes and deletes a course.
  - [ChapterEditor] creates chapters, reorders them and derives the list notices.
  - [CategorySelector] edits the category of a course.

Each controller issues a single request through an [API] per operation and
reports the outcome through a [Notifier]. Instead of refetching page state
itself, a controller tells its [Host] that a mutation succeeded and leaves the
reload to it. A controller holds at most one request in flight; a second
call made while busy returns [ErrBusy] without contacting the server.
*/
package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/coursedesk/internal/core/category"
	"github.com/taibuivan/coursedesk/internal/core/chapter"
	"github.com/taibuivan/coursedesk/internal/core/course"
)

// # States

// ActionState is the state of an action controller.
type ActionState int

const (
	ActionIdle ActionState = iota
	ActionBusy
)

// FormState is the state of an inline form.
type FormState int

const (
	// FormIdle shows the read-only view.
	FormIdle FormState = iota
	// FormEditing shows the form and accepts a submit.
	FormEditing
	// FormSubmitting waits for the server.
	FormSubmitting
)

// # Errors

var (
	// ErrBusy is returned when a request of the same controller is still in flight.
	ErrBusy = errors.New("dashboard: operation already in progress")

	// ErrDisabled is returned when the caller or the current state forbids the action.
	ErrDisabled = errors.New("dashboard: action disabled")

	// ErrInvalidInput is returned when local validation blocks a submit.
	ErrInvalidInput = errors.New("dashboard: invalid input")

	// ErrDeclined is returned when the user does not confirm a destructive action.
	ErrDeclined = errors.New("dashboard: action not confirmed")
)

// # Collaborators

// API is the subset of the course API the widgets call.
type API interface {
	PublishCourse(ctx context.Context, courseID string) error
	UnpublishCourse(ctx context.Context, courseID string) error
	DeleteCourse(ctx context.Context, courseID string) error
	UpdateCourseCategory(ctx context.Context, courseID, categoryID string) (*course.Course, error)
	CreateChapter(ctx context.Context, courseID, title string) (*chapter.Chapter, error)
	ReorderChapters(ctx context.Context, courseID string, list []chapter.Position) error
	ListCategories(ctx context.Context) ([]*category.Category, error)
}

// Notifier shows transient messages to the author.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Host is the page embedding the widgets.
type Host interface {
	// MutationSucceeded asks the host to reload server state.
	MutationSucceeded(mutation Mutation)

	// Navigate moves the author to another dashboard page.
	Navigate(path string)
}

// Celebrator plays the publish celebration.
type Celebrator interface {
	Celebrate()
}

// Confirmer asks the author to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Deps bundles the collaborators shared by every controller.
//
// Celebrator is optional. A nil Confirmer declines every deletion.
type Deps struct {
	API        API
	Notifier   Notifier
	Host       Host
	Celebrator Celebrator
	Confirmer  Confirmer
	Logger     *slog.Logger
}

func (deps Deps) logger() *slog.Logger {
	if deps.Logger == nil {
		return slog.Default()
	}
	return deps.Logger
}

// # Mutation Events

// MutationKind names what changed on the server.
type MutationKind string

const (
	MutationCoursePublished   MutationKind = "course:published"
	MutationCourseUnpublished MutationKind = "course:unpublished"
	MutationCourseDeleted     MutationKind = "course:deleted"
	MutationCourseUpdated     MutationKind = "course:updated"
	MutationChapterCreated    MutationKind = "chapter:created"
	MutationChaptersReordered MutationKind = "chapters:reordered"
)

// Mutation is the event a controller emits after a successful request.
type Mutation struct {
	Kind      MutationKind
	CourseID  string
	ChapterID string
}

// # Messages

// Notification texts shown to the author.
const (
	MsgCoursePublished      = "Course published"
	MsgCourseUnpublished    = "Course unpublished"
	MsgCourseDeleted        = "Course deleted"
	MsgCourseUpdated        = "Course updated"
	MsgChapterCreated       = "Chapter created"
	MsgChaptersReordered    = "Chapters reordered"
	MsgGenericFailure       = "Something went wrong"
	MsgPublishedChapterNeed = "You need to publish at least one chapter before publishing the course"
	MsgPublishFailedPrefix  = "Unable to publish course: "
	MsgDeletePrompt         = "This action cannot be undone."
	MsgNoChapters           = "No chapters yet"
	MsgNoCategory           = "No category"
)
