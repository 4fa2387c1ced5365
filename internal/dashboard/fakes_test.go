// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/coursedesk/internal/core/category"
	"github.com/taibuivan/coursedesk/internal/core/chapter"
	"github.com/taibuivan/coursedesk/internal/core/course"
)

// # Test Doubles

// call records one API invocation.
type call struct {
	Method   string
	CourseID string
	Arg      string
	List     []chapter.Position
}

// fakeAPI records calls and answers with err. When gate is set every call
// blocks until it is closed, so tests can observe the busy state.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []call
	err     error
	gate    chan struct{}
	entered chan struct{}
}

func (api *fakeAPI) record(c call) error {
	api.mu.Lock()
	api.calls = append(api.calls, c)
	gate, entered := api.gate, api.entered
	api.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return api.err
}

func (api *fakeAPI) Calls() []call {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]call(nil), api.calls...)
}

func (api *fakeAPI) PublishCourse(_ context.Context, courseID string) error {
	return api.record(call{Method: "publish", CourseID: courseID})
}

func (api *fakeAPI) UnpublishCourse(_ context.Context, courseID string) error {
	return api.record(call{Method: "unpublish", CourseID: courseID})
}

func (api *fakeAPI) DeleteCourse(_ context.Context, courseID string) error {
	return api.record(call{Method: "delete", CourseID: courseID})
}

func (api *fakeAPI) UpdateCourseCategory(_ context.Context, courseID, categoryID string) (*course.Course, error) {
	if err := api.record(call{Method: "update_category", CourseID: courseID, Arg: categoryID}); err != nil {
		return nil, err
	}
	return &course.Course{ID: courseID, CategoryID: &categoryID}, nil
}

func (api *fakeAPI) CreateChapter(_ context.Context, courseID, title string) (*chapter.Chapter, error) {
	if err := api.record(call{Method: "create_chapter", CourseID: courseID, Arg: title}); err != nil {
		return nil, err
	}
	return &chapter.Chapter{ID: "new-chapter", CourseID: courseID, Title: title}, nil
}

func (api *fakeAPI) ReorderChapters(_ context.Context, courseID string, list []chapter.Position) error {
	return api.record(call{Method: "reorder", CourseID: courseID, List: list})
}

func (api *fakeAPI) ListCategories(context.Context) ([]*category.Category, error) {
	if err := api.record(call{Method: "list_categories"}); err != nil {
		return nil, err
	}
	return []*category.Category{{ID: "c1", Name: "Music"}, {ID: "c2", Name: "Photography"}}, nil
}

// recorder implements Notifier, Host, Celebrator and Confirmer.
type recorder struct {
	mu         sync.Mutex
	successes  []string
	errors     []string
	mutations  []Mutation
	paths      []string
	celebrated int
	confirm    bool
	prompts    []string
}

func (r *recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

func (r *recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

func (r *recorder) MutationSucceeded(mutation Mutation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, mutation)
}

func (r *recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) Celebrate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.celebrated++
}

func (r *recorder) Confirm(_ context.Context, prompt string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, prompt)
	return r.confirm
}

func newDeps(api *fakeAPI, rec *recorder) Deps {
	return Deps{
		API:        api,
		Notifier:   rec,
		Host:       rec,
		Celebrator: rec,
		Confirmer:  rec,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func serverError(body string) error {
	return &ResponseError{StatusCode: 400, Body: body}
}
