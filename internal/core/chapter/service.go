// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/coursedesk/internal/platform/apperr"
	"github.com/taibuivan/coursedesk/internal/platform/validate"
	"github.com/taibuivan/coursedesk/pkg/pointer"
	"github.com/taibuivan/coursedesk/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for chapters.
type Service struct {
	chapterRepo Repository
	courses     CourseGate
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required collaborators.
func NewService(chapterRepo Repository, courses CourseGate, logger *slog.Logger) *Service {
	return &Service{
		chapterRepo: chapterRepo,
		courses:     courses,
		logger:      logger,
	}
}

// # Chapter Operations

// ListChapters returns the chapters of an owned course in position order.
func (service *Service) ListChapters(context context.Context, userID, courseID string) ([]*Chapter, error) {
	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return nil, err
	}
	return service.chapterRepo.ListByCourse(context, courseID)
}

// GetChapter returns one chapter of an owned course.
func (service *Service) GetChapter(context context.Context, userID, courseID, id string) (*Chapter, error) {
	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return nil, err
	}
	return service.chapterRepo.FindByID(context, courseID, id)
}

/*
CreateChapter appends a new unpublished chapter to the end of a course.

Parameters:
  - context: context.Context
  - userID: string (Requesting author)
  - courseID: string (Parent course)
  - title: string (Trimmed, non-empty)

Returns:
  - *Chapter: The stored chapter carrying its assigned position
  - error: Validation, ownership or persistence errors
*/
func (service *Service) CreateChapter(context context.Context, userID, courseID, title string) (*Chapter, error) {
	title = strings.TrimSpace(title)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, MaxTitleLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return nil, err
	}

	chapter := &Chapter{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    title,
	}

	if err := service.chapterRepo.Create(context, chapter); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_created",
		slog.String("chapter_id", chapter.ID),
		slog.String("course_id", courseID),
		slog.Int("position", chapter.Position),
	)

	return chapter, nil
}

/*
UpdateChapter applies a partial update to a chapter.

Description: Absent fields are left untouched. A blank description or
video URL clears the stored value. A published chapter cannot lose its
title or description.
*/
func (service *Service) UpdateChapter(context context.Context, userID, courseID, id string, patch Patch) (*Chapter, error) {
	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return nil, err
	}

	chapter, err := service.chapterRepo.FindByID(context, courseID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		chapter.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		chapter.Description = pointer.NilIfBlank(patch.Description)
	}
	if patch.VideoURL != nil {
		chapter.VideoURL = pointer.NilIfBlank(patch.VideoURL)
	}
	if patch.IsFree != nil {
		chapter.IsFree = *patch.IsFree
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, chapter.Title).MaxLen(FieldTitle, chapter.Title, MaxTitleLength)
	validator.URL(FieldVideoURL, pointer.Val(chapter.VideoURL))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if chapter.IsPublished && !complete(chapter) {
		return nil, apperr.PublishRejected(MissingFieldsMessage)
	}

	if err := service.chapterRepo.Update(context, chapter); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_updated",
		slog.String("chapter_id", chapter.ID),
		slog.String("course_id", courseID),
	)

	return chapter, nil
}

// PublishChapter makes a complete chapter visible to learners.
func (service *Service) PublishChapter(context context.Context, userID, courseID, id string) (*Chapter, error) {
	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return nil, err
	}

	chapter, err := service.chapterRepo.FindByID(context, courseID, id)
	if err != nil {
		return nil, err
	}

	if !complete(chapter) {
		return nil, apperr.PublishRejected(MissingFieldsMessage)
	}

	if err := service.chapterRepo.SetPublished(context, courseID, id, true); err != nil {
		return nil, err
	}
	chapter.IsPublished = true

	service.logger.Info("chapter_published",
		slog.String("chapter_id", id),
		slog.String("course_id", courseID),
	)

	return chapter, nil
}

// UnpublishChapter hides a chapter. The course goes offline with its last published chapter.
func (service *Service) UnpublishChapter(context context.Context, userID, courseID, id string) (*Chapter, error) {
	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return nil, err
	}

	chapter, err := service.chapterRepo.FindByID(context, courseID, id)
	if err != nil {
		return nil, err
	}

	if err := service.chapterRepo.SetPublished(context, courseID, id, false); err != nil {
		return nil, err
	}
	chapter.IsPublished = false

	if err := service.syncCourse(context, courseID); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_unpublished",
		slog.String("chapter_id", id),
		slog.String("course_id", courseID),
	)

	return chapter, nil
}

// DeleteChapter removes a chapter. The course goes offline with its last published chapter.
func (service *Service) DeleteChapter(context context.Context, userID, courseID, id string) error {
	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return err
	}

	if err := service.chapterRepo.Delete(context, courseID, id); err != nil {
		return err
	}

	if err := service.syncCourse(context, courseID); err != nil {
		return err
	}

	service.logger.Info("chapter_deleted",
		slog.String("chapter_id", id),
		slog.String("course_id", courseID),
	)

	return nil
}

/*
ReorderChapters persists a new chapter ordering.

Description: The list must name every chapter of the course exactly once
and assign the positions 0..n-1. The store applies it atomically.
*/
func (service *Service) ReorderChapters(context context.Context, userID, courseID string, list []Position) error {
	validator := &validate.Validator{}
	validator.Custom(FieldList, len(list) == 0, "At least one chapter is required")

	seenIDs := make(map[string]struct{}, len(list))
	seenPositions := make(map[int]struct{}, len(list))
	for _, item := range list {
		if _, dup := seenIDs[item.ID]; dup || item.ID == "" {
			validator.Custom(FieldList, true, "Chapter ids must be present and unique")
			break
		}
		if _, dup := seenPositions[item.Position]; dup || item.Position < 0 {
			validator.Custom(FieldList, true, "Positions must be unique and non-negative")
			break
		}
		seenIDs[item.ID] = struct{}{}
		seenPositions[item.Position] = struct{}{}
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.courses.EnsureOwner(context, courseID, userID); err != nil {
		return err
	}

	existing, err := service.chapterRepo.ListByCourse(context, courseID)
	if err != nil {
		return err
	}
	if err := coversCourse(existing, list); err != nil {
		return err
	}

	if err := service.chapterRepo.Reorder(context, courseID, list); err != nil {
		return err
	}

	service.logger.Info("chapters_reordered",
		slog.String("course_id", courseID),
		slog.Int("count", len(list)),
	)

	return nil
}

// # Helpers

// syncCourse unpublishes the course once no published chapter remains.
func (service *Service) syncCourse(context context.Context, courseID string) error {
	hasPublished, err := service.chapterRepo.HasPublished(context, courseID)
	if err != nil {
		return err
	}
	if hasPublished {
		return nil
	}
	return service.courses.MarkUnpublished(context, courseID)
}

// coversCourse checks that list is a complete, contiguous ordering of existing.
// Positions are already known to be unique and non-negative.
func coversCourse(existing []*Chapter, list []Position) error {
	known := make(map[string]struct{}, len(existing))
	for _, chapter := range existing {
		known[chapter.ID] = struct{}{}
	}

	for _, item := range list {
		if _, ok := known[item.ID]; !ok {
			return apperr.NotFound("Chapter")
		}
	}

	validator := &validate.Validator{}
	validator.Custom(FieldList, len(list) != len(existing), "Every chapter of the course must be listed")
	for _, item := range list {
		if item.Position >= len(list) {
			validator.Custom(FieldList, true, fmt.Sprintf("Positions must run from 0 to %d", len(list)-1))
			break
		}
	}

	return validator.Err()
}

func complete(chapter *Chapter) bool {
	return strings.TrimSpace(chapter.Title) != "" && !pointer.Blank(chapter.Description)
}
