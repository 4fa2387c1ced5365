// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/coursedesk/internal/core/chapter"
	"github.com/taibuivan/coursedesk/internal/platform/constants"
	"github.com/taibuivan/coursedesk/pkg/slice"
)

// Notice is the advisory shown under the chapter list.
type Notice int

const (
	NoticeNone Notice = iota
	// NoticeEmpty replaces the list when the course has no chapters.
	NoticeEmpty
	// NoticePublishRequired warns that no chapter is published yet.
	NoticePublishRequired
)

// Message returns the text of the notice.
func (notice Notice) Message() string {
	switch notice {
	case NoticeEmpty:
		return MsgNoChapters
	case NoticePublishRequired:
		return MsgPublishedChapterNeed
	default:
		return ""
	}
}

// ChapterView is the read side of the chapter list.
type ChapterView struct {
	Items    []*chapter.Chapter
	Notice   Notice
	Creating bool
	Updating bool
}

// ChapterEditor drives the chapter list of one course.
type ChapterEditor struct {
	courseID string
	deps     Deps

	mu       sync.Mutex
	chapters []*chapter.Chapter
	form     FormState
	reorder  ActionState
}

// NewChapterEditor builds the editor from the chapters already fetched by the page.
func NewChapterEditor(courseID string, chapters []*chapter.Chapter, deps Deps) *ChapterEditor {
	editor := &ChapterEditor{courseID: courseID, deps: deps}
	editor.Refresh(chapters)
	return editor
}

// Refresh replaces the local chapters with freshly fetched server state.
func (editor *ChapterEditor) Refresh(chapters []*chapter.Chapter) {
	editor.mu.Lock()
	defer editor.mu.Unlock()
	editor.chapters = append([]*chapter.Chapter(nil), chapters...)
}

// View derives what the list shows. The empty placeholder and the publish advisory never appear together.
func (editor *ChapterEditor) View() ChapterView {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	view := ChapterView{
		Items:    append([]*chapter.Chapter(nil), editor.chapters...),
		Creating: editor.form != FormIdle,
		Updating: editor.reorder == ActionBusy,
	}

	switch {
	case len(editor.chapters) == 0:
		view.Notice = NoticeEmpty
	case !slice.Any(editor.chapters, func(item *chapter.Chapter) bool { return item.IsPublished }):
		view.Notice = NoticePublishRequired
	}

	return view
}

// FormState reports the state of the creation panel.
func (editor *ChapterEditor) FormState() FormState {
	editor.mu.Lock()
	defer editor.mu.Unlock()
	return editor.form
}

// ReorderState reports whether a reorder is in flight.
func (editor *ChapterEditor) ReorderState() ActionState {
	editor.mu.Lock()
	defer editor.mu.Unlock()
	return editor.reorder
}

// ToggleCreating opens or collapses the creation panel.
func (editor *ChapterEditor) ToggleCreating() error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	switch editor.form {
	case FormSubmitting:
		return ErrBusy
	case FormEditing:
		editor.form = FormIdle
	default:
		editor.form = FormEditing
	}
	return nil
}

/*
CreateChapter submits a new chapter title.

Description: Only available while the creation panel is open. A blank
title is rejected locally. The panel collapses on success and stays open
on failure so the author can retry.
*/
func (editor *ChapterEditor) CreateChapter(ctx context.Context, title string) (*chapter.Chapter, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	editor.mu.Lock()
	switch editor.form {
	case FormIdle:
		editor.mu.Unlock()
		return nil, ErrDisabled
	case FormSubmitting:
		editor.mu.Unlock()
		return nil, ErrBusy
	}
	editor.form = FormSubmitting
	editor.mu.Unlock()

	created, err := editor.deps.API.CreateChapter(ctx, editor.courseID, title)

	editor.mu.Lock()
	if err != nil {
		editor.form = FormEditing
	} else {
		editor.form = FormIdle
		if created != nil {
			editor.chapters = append(editor.chapters, created)
		}
	}
	editor.mu.Unlock()

	if err != nil {
		editor.deps.logger().Warn("chapter_create_failed",
			slog.String("course_id", editor.courseID),
			slog.Any("error", err),
		)
		editor.deps.Notifier.Error(MsgGenericFailure)
		return nil, err
	}

	mutation := Mutation{Kind: MutationChapterCreated, CourseID: editor.courseID}
	if created != nil {
		mutation.ChapterID = created.ID
	}

	editor.deps.Notifier.Success(MsgChapterCreated)
	editor.deps.Host.MutationSucceeded(mutation)
	return created, nil
}

// ReorderPayload converts an ordering of chapter ids into zero-based positions.
func ReorderPayload(orderedIDs []string) []chapter.Position {
	return slice.MapIndex(orderedIDs, func(index int, id string) chapter.Position {
		return chapter.Position{ID: id, Position: index}
	})
}

/*
Reorder persists the ordering produced by a drag and drop.

Description: orderedIDs must list every chapter of the course exactly
once. The whole ordering is sent in one request.
*/
func (editor *ChapterEditor) Reorder(ctx context.Context, orderedIDs []string) error {
	editor.mu.Lock()
	if err := editor.validOrdering(orderedIDs); err != nil {
		editor.mu.Unlock()
		return err
	}
	if editor.reorder == ActionBusy {
		editor.mu.Unlock()
		return ErrBusy
	}
	editor.reorder = ActionBusy
	editor.mu.Unlock()

	payload := ReorderPayload(orderedIDs)
	err := editor.deps.API.ReorderChapters(ctx, editor.courseID, payload)

	editor.mu.Lock()
	editor.reorder = ActionIdle
	if err == nil {
		editor.applyOrdering(payload)
	}
	editor.mu.Unlock()

	if err != nil {
		editor.deps.logger().Warn("chapters_reorder_failed",
			slog.String("course_id", editor.courseID),
			slog.Any("error", err),
		)
		editor.deps.Notifier.Error(MsgGenericFailure)
		return err
	}

	editor.deps.Notifier.Success(MsgChaptersReordered)
	editor.deps.Host.MutationSucceeded(Mutation{Kind: MutationChaptersReordered, CourseID: editor.courseID})
	return nil
}

// BeginEdit opens the editor page of a chapter.
func (editor *ChapterEditor) BeginEdit(chapterID string) error {
	editor.mu.Lock()
	known := slice.Any(editor.chapters, func(item *chapter.Chapter) bool { return item.ID == chapterID })
	editor.mu.Unlock()

	if !known {
		return ErrInvalidInput
	}

	editor.deps.Host.Navigate(ChapterPath(editor.courseID, chapterID))
	return nil
}

// ChapterPath is the dashboard page of a chapter.
func ChapterPath(courseID, chapterID string) string {
	return fmt.Sprintf("%s/%s/chapters/%s", constants.TeacherCoursesPath, courseID, chapterID)
}

// validOrdering must be called with mu held.
func (editor *ChapterEditor) validOrdering(orderedIDs []string) error {
	if len(orderedIDs) == 0 || len(orderedIDs) != len(editor.chapters) {
		return ErrInvalidInput
	}

	known := make(map[string]bool, len(editor.chapters))
	for _, item := range editor.chapters {
		known[item.ID] = true
	}

	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] || seen[id] {
			return ErrInvalidInput
		}
		seen[id] = true
	}
	return nil
}

// applyOrdering must be called with mu held.
func (editor *ChapterEditor) applyOrdering(payload []chapter.Position) {
	byID := make(map[string]*chapter.Chapter, len(editor.chapters))
	for _, item := range editor.chapters {
		byID[item.ID] = item
	}

	ordered := make([]*chapter.Chapter, 0, len(payload))
	for _, position := range payload {
		clone := *byID[position.ID]
		clone.Position = position.Position
		ordered = append(ordered, &clone)
	}
	editor.chapters = ordered
}
