// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/coursedesk/internal/core/category"
	"github.com/taibuivan/coursedesk/internal/core/course"
	"github.com/taibuivan/coursedesk/pkg/slice"
)

// Option is an entry of the category combobox.
type Option struct {
	Label string
	Value string
}

// CategoryOptions converts the category list into combobox options.
func CategoryOptions(categories []*category.Category) []Option {
	return slice.Map(categories, func(item *category.Category) Option {
		return Option{Label: item.Name, Value: item.ID}
	})
}

// LoadCategoryOptions fetches the category list through the API.
func LoadCategoryOptions(ctx context.Context, api API) ([]Option, error) {
	categories, err := api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryOptions(categories), nil
}

// CategoryDisplay is the read-only rendering of the selector.
type CategoryDisplay struct {
	Label string
	// Placeholder is set when the course has no category at all.
	Placeholder bool
}

// CategorySelector edits the category of one course.
type CategorySelector struct {
	courseID string
	options  []Option
	deps     Deps

	mu         sync.Mutex
	categoryID string
	state      FormState
}

// NewCategorySelector builds the selector from the course's current category and the option set.
func NewCategorySelector(courseID, categoryID string, options []Option, deps Deps) *CategorySelector {
	return &CategorySelector{
		courseID:   courseID,
		categoryID: categoryID,
		options:    append([]Option(nil), options...),
		deps:       deps,
	}
}

// State reports the form state.
func (selector *CategorySelector) State() FormState {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	return selector.state
}

// Display returns the label of the current category, or the placeholder.
func (selector *CategorySelector) Display() CategoryDisplay {
	selector.mu.Lock()
	defer selector.mu.Unlock()

	display := CategoryDisplay{Label: MsgNoCategory, Placeholder: selector.categoryID == ""}
	if option, ok := selector.lookup(selector.categoryID); ok {
		display.Label = option.Label
	}
	return display
}

// ToggleEdit enters or leaves edit mode.
func (selector *CategorySelector) ToggleEdit() error {
	selector.mu.Lock()
	defer selector.mu.Unlock()

	switch selector.state {
	case FormSubmitting:
		return ErrBusy
	case FormEditing:
		selector.state = FormIdle
	default:
		selector.state = FormEditing
	}
	return nil
}

/*
Submit saves the chosen category.

Description: Only available in edit mode. categoryID must be one of the
options. A failure keeps the selector in edit mode for a retry.

Returns:
  - *course.Course: The updated course as returned by the API
  - error: ErrDisabled, ErrBusy, ErrInvalidInput or the API error
*/
func (selector *CategorySelector) Submit(ctx context.Context, categoryID string) (*course.Course, error) {
	categoryID = strings.TrimSpace(categoryID)

	selector.mu.Lock()
	switch selector.state {
	case FormIdle:
		selector.mu.Unlock()
		return nil, ErrDisabled
	case FormSubmitting:
		selector.mu.Unlock()
		return nil, ErrBusy
	}
	if _, ok := selector.lookup(categoryID); !ok {
		selector.mu.Unlock()
		return nil, ErrInvalidInput
	}
	selector.state = FormSubmitting
	selector.mu.Unlock()

	updated, err := selector.deps.API.UpdateCourseCategory(ctx, selector.courseID, categoryID)

	selector.mu.Lock()
	if err != nil {
		selector.state = FormEditing
	} else {
		selector.state = FormIdle
		selector.categoryID = categoryID
	}
	selector.mu.Unlock()

	if err != nil {
		selector.deps.logger().Warn("course_category_update_failed",
			slog.String("course_id", selector.courseID),
			slog.Any("error", err),
		)
		selector.deps.Notifier.Error(MsgGenericFailure)
		return nil, err
	}

	selector.deps.Notifier.Success(MsgCourseUpdated)
	selector.deps.Host.MutationSucceeded(Mutation{Kind: MutationCourseUpdated, CourseID: selector.courseID})
	return updated, nil
}

// lookup must be called with mu held.
func (selector *CategorySelector) lookup(value string) (Option, bool) {
	if value == "" {
		return Option{}, false
	}
	for _, option := range selector.options {
		if option.Value == value {
			return option, true
		}
	}
	return Option{}, false
}
