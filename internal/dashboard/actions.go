// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/coursedesk/internal/core/chapter"
	"github.com/taibuivan/coursedesk/internal/core/course"
	"github.com/taibuivan/coursedesk/internal/platform/constants"
	"github.com/taibuivan/coursedesk/pkg/pointer"
	"github.com/taibuivan/coursedesk/pkg/slice"
)

// PublishState is the publication state reached by a successful toggle.
type PublishState int

const (
	Unpublished PublishState = iota
	Published
)

// CourseActions publishes, unpublishes and deletes one course.
type CourseActions struct {
	courseID string
	deps     Deps

	mu    sync.Mutex
	state ActionState
}

// NewCourseActions builds the action controller of a course.
func NewCourseActions(courseID string, deps Deps) *CourseActions {
	return &CourseActions{courseID: courseID, deps: deps}
}

// State reports whether a request is in flight.
func (actions *CourseActions) State() ActionState {
	actions.mu.Lock()
	defer actions.mu.Unlock()
	return actions.state
}

func (actions *CourseActions) acquire() error {
	actions.mu.Lock()
	defer actions.mu.Unlock()
	if actions.state == ActionBusy {
		return ErrBusy
	}
	actions.state = ActionBusy
	return nil
}

func (actions *CourseActions) release() {
	actions.mu.Lock()
	actions.state = ActionIdle
	actions.mu.Unlock()
}

/*
TogglePublish flips the publication state of the course.

Description: A published course is unpublished, any other course is
published. disabled is set by the page while required fields are
still empty. Neither a disabled nor a busy controller issues a request.

Returns:
  - PublishState: The state reached on success
  - error: ErrDisabled, ErrBusy or the API error
*/
func (actions *CourseActions) TogglePublish(ctx context.Context, currentlyPublished, disabled bool) (PublishState, error) {
	if disabled {
		return stateOf(currentlyPublished), ErrDisabled
	}
	if err := actions.acquire(); err != nil {
		return stateOf(currentlyPublished), err
	}
	defer actions.release()

	logger := actions.deps.logger().With(slog.String("course_id", actions.courseID))

	if currentlyPublished {
		if err := actions.deps.API.UnpublishCourse(ctx, actions.courseID); err != nil {
			logger.Warn("course_unpublish_failed", slog.Any("error", err))
			actions.deps.Notifier.Error(PublishFailureMessage(err))
			return Published, err
		}

		actions.deps.Notifier.Success(MsgCourseUnpublished)
		actions.deps.Host.MutationSucceeded(Mutation{Kind: MutationCourseUnpublished, CourseID: actions.courseID})
		return Unpublished, nil
	}

	if err := actions.deps.API.PublishCourse(ctx, actions.courseID); err != nil {
		logger.Warn("course_publish_failed", slog.Any("error", err))
		actions.deps.Notifier.Error(PublishFailureMessage(err))
		return Unpublished, err
	}

	actions.deps.Notifier.Success(MsgCoursePublished)
	if actions.deps.Celebrator != nil {
		actions.deps.Celebrator.Celebrate()
	}
	actions.deps.Host.MutationSucceeded(Mutation{Kind: MutationCoursePublished, CourseID: actions.courseID})
	return Published, nil
}

/*
Delete removes the course after the author confirms.

Description: On success the host is sent back to the course list. Every
failure is reported with the generic message.
*/
func (actions *CourseActions) Delete(ctx context.Context) error {
	if actions.State() == ActionBusy {
		return ErrBusy
	}
	if actions.deps.Confirmer == nil || !actions.deps.Confirmer.Confirm(ctx, MsgDeletePrompt) {
		return ErrDeclined
	}
	if err := actions.acquire(); err != nil {
		return err
	}
	defer actions.release()

	if err := actions.deps.API.DeleteCourse(ctx, actions.courseID); err != nil {
		actions.deps.logger().Warn("course_delete_failed",
			slog.String("course_id", actions.courseID),
			slog.Any("error", err),
		)
		actions.deps.Notifier.Error(MsgGenericFailure)
		return err
	}

	actions.deps.Notifier.Success(MsgCourseDeleted)
	actions.deps.Host.MutationSucceeded(Mutation{Kind: MutationCourseDeleted, CourseID: actions.courseID})
	actions.deps.Host.Navigate(constants.TeacherCoursesPath)
	return nil
}

func stateOf(published bool) PublishState {
	if published {
		return Published
	}
	return Unpublished
}

// PublishDisabled reports whether the page should disable the publish toggle.
// It mirrors the server prerequisites: required fields and a published chapter.
func PublishDisabled(loaded *course.Course) bool {
	if loaded == nil {
		return true
	}
	complete := strings.TrimSpace(loaded.Title) != "" &&
		!pointer.Blank(loaded.Description) &&
		!pointer.Blank(loaded.ImageURL) &&
		!pointer.Blank(loaded.CategoryID) &&
		slice.Any(loaded.Chapters, func(item *chapter.Chapter) bool { return item.IsPublished })
	return !complete
}
