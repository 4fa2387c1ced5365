// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/coursedesk/internal/platform/apperr"
	"github.com/taibuivan/coursedesk/internal/platform/validate"
	"github.com/taibuivan/coursedesk/pkg/pagination"
	"github.com/taibuivan/coursedesk/pkg/pointer"
	"github.com/taibuivan/coursedesk/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for courses.
type Service struct {
	courseRepo Repository
	chapters   ChapterReader
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(courseRepo Repository, chapters ChapterReader, logger *slog.Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		chapters:   chapters,
		logger:     logger,
	}
}

// # Course Operations

// CreateCourse starts a new draft course owned by userID.
func (service *Service) CreateCourse(context context.Context, userID, title string) (*Course, error) {
	title = strings.TrimSpace(title)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, MaxTitleLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	course := &Course{
		ID:      uuid.New(),
		OwnerID: userID,
		Title:   title,
	}

	if err := service.courseRepo.Create(context, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_created",
		slog.String("course_id", course.ID),
		slog.String("owner_id", userID),
	)

	return course, nil
}

// GetCourse returns an owned course together with its ordered chapters.
func (service *Service) GetCourse(context context.Context, userID, id string) (*Course, error) {
	course, err := service.owned(context, id, userID)
	if err != nil {
		return nil, err
	}

	chapters, err := service.chapters.ListByCourse(context, id)
	if err != nil {
		return nil, err
	}
	course.Chapters = chapters

	return course, nil
}

// ListCourses returns a page of the caller's courses.
func (service *Service) ListCourses(context context.Context, userID string, params pagination.Params) ([]*Course, int, error) {
	return service.courseRepo.ListByOwner(context, userID, params.Limit, params.Offset())
}

/*
UpdateCourse applies a partial update.

Description: Absent fields are left untouched. Blank description, image
URL or category clear the stored value. A published course cannot drop
one of its required fields.

Returns:
  - *Course: The updated course (chapters not loaded)
  - error: Validation, ownership or persistence errors
*/
func (service *Service) UpdateCourse(context context.Context, userID, id string, patch Patch) (*Course, error) {
	course, err := service.owned(context, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		course.Description = pointer.NilIfBlank(patch.Description)
	}
	if patch.ImageURL != nil {
		course.ImageURL = pointer.NilIfBlank(patch.ImageURL)
	}
	if patch.Price != nil {
		course.Price = patch.Price
	}
	if patch.CategoryID != nil {
		course.CategoryID = pointer.NilIfBlank(patch.CategoryID)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, course.Title).MaxLen(FieldTitle, course.Title, MaxTitleLength)
	validator.URL(FieldImageURL, pointer.Val(course.ImageURL))
	validator.Custom(FieldPrice, course.Price != nil && *course.Price < 0, "Price cannot be negative")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if course.IsPublished && missingRequired(course) {
		return nil, apperr.PublishRejected(MissingFieldsMessage)
	}

	if err := service.courseRepo.Update(context, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_updated",
		slog.String("course_id", id),
		slog.String("owner_id", userID),
	)

	return course, nil
}

/*
PublishCourse makes a course visible to learners.

Description: Required fields are checked before chapters, so an empty
draft reports missing fields rather than missing chapters.

Returns:
  - error: apperr.PublishRejected carrying the reason shown to the author
*/
func (service *Service) PublishCourse(context context.Context, userID, id string) (*Course, error) {
	course, err := service.owned(context, id, userID)
	if err != nil {
		return nil, err
	}

	if missingRequired(course) {
		return nil, apperr.PublishRejected(MissingFieldsMessage)
	}

	hasPublished, err := service.chapters.HasPublished(context, id)
	if err != nil {
		return nil, err
	}
	if !hasPublished {
		return nil, apperr.PublishRejected(NoPublishedChapterMessage)
	}

	if err := service.courseRepo.SetPublished(context, id, true); err != nil {
		return nil, err
	}
	course.IsPublished = true

	service.logger.Info("course_published",
		slog.String("course_id", id),
		slog.String("owner_id", userID),
	)

	return course, nil
}

// UnpublishCourse takes a course offline. Unpublishing a draft is a no-op success.
func (service *Service) UnpublishCourse(context context.Context, userID, id string) (*Course, error) {
	course, err := service.owned(context, id, userID)
	if err != nil {
		return nil, err
	}

	if err := service.courseRepo.SetPublished(context, id, false); err != nil {
		return nil, err
	}
	course.IsPublished = false

	service.logger.Info("course_unpublished",
		slog.String("course_id", id),
		slog.String("owner_id", userID),
	)

	return course, nil
}

// DeleteCourse removes a course and all of its chapters.
func (service *Service) DeleteCourse(context context.Context, userID, id string) error {
	if _, err := service.owned(context, id, userID); err != nil {
		return err
	}

	if err := service.courseRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("course_deleted",
		slog.String("course_id", id),
		slog.String("owner_id", userID),
	)

	return nil
}

// # Chapter Collaboration

// EnsureOwner implements chapter.CourseGate.
func (service *Service) EnsureOwner(context context.Context, courseID, userID string) error {
	_, err := service.owned(context, courseID, userID)
	return err
}

// MarkUnpublished implements chapter.CourseGate.
func (service *Service) MarkUnpublished(context context.Context, courseID string) error {
	course, err := service.courseRepo.FindByID(context, courseID)
	if err != nil {
		return err
	}
	if !course.IsPublished {
		return nil
	}

	if err := service.courseRepo.SetPublished(context, courseID, false); err != nil {
		return err
	}

	service.logger.Info("course_unpublished",
		slog.String("course_id", courseID),
		slog.String("reason", "no_published_chapter"),
	)

	return nil
}

// # Helpers

// owned loads a course and hides it from anyone but its owner.
func (service *Service) owned(context context.Context, id, userID string) (*Course, error) {
	course, err := service.courseRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if course.OwnerID != userID {
		return nil, apperr.NotFound("Course")
	}
	return course, nil
}

func missingRequired(course *Course) bool {
	return strings.TrimSpace(course.Title) == "" ||
		pointer.Blank(course.Description) ||
		pointer.Blank(course.ImageURL) ||
		pointer.Blank(course.CategoryID)
}
