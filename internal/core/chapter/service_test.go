// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/coursedesk/internal/platform/apperr"
	"github.com/taibuivan/coursedesk/pkg/pointer"
)

// # Test Doubles

// memoryRepository is an in-memory [Repository].
type memoryRepository struct {
	mu       sync.Mutex
	chapters map[string]*Chapter
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{chapters: make(map[string]*Chapter)}
}

func (repository *memoryRepository) Create(_ context.Context, chapter *Chapter) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapter.Position = 0
	for _, existing := range repository.chapters {
		if existing.CourseID == chapter.CourseID && existing.Position >= chapter.Position {
			chapter.Position = existing.Position + 1
		}
	}
	chapter.CreatedAt = time.Now()
	chapter.UpdatedAt = chapter.CreatedAt

	stored := *chapter
	repository.chapters[chapter.ID] = &stored
	return nil
}

func (repository *memoryRepository) ListByCourse(_ context.Context, courseID string) ([]*Chapter, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapters := make([]*Chapter, 0)
	for _, chapter := range repository.chapters {
		if chapter.CourseID == courseID {
			clone := *chapter
			chapters = append(chapters, &clone)
		}
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].Position < chapters[j].Position })
	return chapters, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, courseID, id string) (*Chapter, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapter, ok := repository.chapters[id]
	if !ok || chapter.CourseID != courseID {
		return nil, apperr.NotFound("Chapter")
	}
	clone := *chapter
	return &clone, nil
}

func (repository *memoryRepository) Update(_ context.Context, chapter *Chapter) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *chapter
	repository.chapters[chapter.ID] = &stored
	return nil
}

func (repository *memoryRepository) SetPublished(_ context.Context, courseID, id string, published bool) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapter, ok := repository.chapters[id]
	if !ok || chapter.CourseID != courseID {
		return apperr.NotFound("Chapter")
	}
	chapter.IsPublished = published
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, courseID, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapter, ok := repository.chapters[id]
	if !ok || chapter.CourseID != courseID {
		return apperr.NotFound("Chapter")
	}
	delete(repository.chapters, id)
	for _, other := range repository.chapters {
		if other.CourseID == courseID && other.Position > chapter.Position {
			other.Position--
		}
	}
	return nil
}

func (repository *memoryRepository) Reorder(_ context.Context, courseID string, list []Position) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, item := range list {
		chapter, ok := repository.chapters[item.ID]
		if !ok || chapter.CourseID != courseID {
			return apperr.NotFound("Chapter")
		}
	}
	for _, item := range list {
		repository.chapters[item.ID].Position = item.Position
	}
	return nil
}

func (repository *memoryRepository) HasPublished(_ context.Context, courseID string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, chapter := range repository.chapters {
		if chapter.CourseID == courseID && chapter.IsPublished {
			return true, nil
		}
	}
	return false, nil
}

// fakeGate grants ownership of a fixed set of courses and records unpublish calls.
type fakeGate struct {
	owners      map[string]string
	unpublished []string
}

func (gate *fakeGate) EnsureOwner(_ context.Context, courseID, userID string) error {
	if gate.owners[courseID] != userID {
		return apperr.NotFound("Course")
	}
	return nil
}

func (gate *fakeGate) MarkUnpublished(_ context.Context, courseID string) error {
	gate.unpublished = append(gate.unpublished, courseID)
	return nil
}

const (
	testOwner  = "teacher-1"
	testCourse = "course-1"
)

func newTestService() (*Service, *memoryRepository, *fakeGate) {
	repo := newMemoryRepository()
	gate := &fakeGate{owners: map[string]string{testCourse: testOwner}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, gate, logger), repo, gate
}

// # Tests

/*
TestCreateChapter_AppendsPositions verifies new chapters land at the end of the course.
*/
func TestCreateChapter_AppendsPositions(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	first, err := service.CreateChapter(ctx, testOwner, testCourse, "  Intro  ")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "Intro", first.Title)
	assert.False(t, first.IsPublished)

	second, err := service.CreateChapter(ctx, testOwner, testCourse, "Setup")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	chapters, err := service.ListChapters(ctx, testOwner, testCourse)
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, first.ID, chapters[0].ID)
	assert.Equal(t, second.ID, chapters[1].ID)
}

/*
TestCreateChapter_Rejections covers blank titles and foreign courses.
*/
func TestCreateChapter_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		title  string
		code   string
	}{
		{"blank_title", testOwner, "   ", "VALIDATION_ERROR"},
		{"foreign_course", "teacher-2", "Intro", "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := newTestService()

			_, err := service.CreateChapter(context.Background(), tt.userID, testCourse, tt.title)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, tt.code))
			assert.Empty(t, repo.chapters)
		})
	}
}

/*
TestReorderChapters_Validation checks the list rules before anything is stored.
*/
func TestReorderChapters_Validation(t *testing.T) {
	tests := []struct {
		name string
		list []Position
	}{
		{"empty_list", nil},
		{"duplicate_id", []Position{{ID: "a", Position: 0}, {ID: "a", Position: 1}}},
		{"duplicate_position", []Position{{ID: "a", Position: 0}, {ID: "b", Position: 0}}},
		{"negative_position", []Position{{ID: "a", Position: -1}}},
		{"missing_id", []Position{{ID: "", Position: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService()

			err := service.ReorderChapters(context.Background(), testOwner, testCourse, tt.list)
			assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
		})
	}
}

/*
TestReorderChapters_AppliesPositions verifies a swap is persisted.
*/
func TestReorderChapters_AppliesPositions(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	first, _ := service.CreateChapter(ctx, testOwner, testCourse, "One")
	second, _ := service.CreateChapter(ctx, testOwner, testCourse, "Two")

	err := service.ReorderChapters(ctx, testOwner, testCourse, []Position{
		{ID: second.ID, Position: 0},
		{ID: first.ID, Position: 1},
	})
	require.NoError(t, err)

	chapters, err := service.ListChapters(ctx, testOwner, testCourse)
	require.NoError(t, err)
	assert.Equal(t, second.ID, chapters[0].ID)
	assert.Equal(t, first.ID, chapters[1].ID)
}

/*
TestReorderChapters_ForeignChapter rejects ids from another course.
*/
func TestReorderChapters_ForeignChapter(t *testing.T) {
	service, repo, _ := newTestService()
	repo.chapters["own"] = &Chapter{ID: "own", CourseID: testCourse}
	repo.chapters["other"] = &Chapter{ID: "other", CourseID: "course-2"}

	err := service.ReorderChapters(context.Background(), testOwner, testCourse, []Position{{ID: "other", Position: 0}})
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

/*
TestReorderChapters_RequiresFullOrdering rejects lists that would leave gaps or collide.
*/
func TestReorderChapters_RequiresFullOrdering(t *testing.T) {
	tests := []struct {
		name string
		list func(a, b, c string) []Position
	}{
		{"partial_list_far_position", func(a, _, _ string) []Position {
			return []Position{{ID: a, Position: 7}}
		}},
		{"partial_list_colliding_position", func(a, _, _ string) []Position {
			return []Position{{ID: a, Position: 1}}
		}},
		{"non_contiguous_positions", func(a, b, c string) []Position {
			return []Position{{ID: a, Position: 0}, {ID: b, Position: 2}, {ID: c, Position: 3}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService()
			ctx := context.Background()

			a, _ := service.CreateChapter(ctx, testOwner, testCourse, "A")
			b, _ := service.CreateChapter(ctx, testOwner, testCourse, "B")
			c, _ := service.CreateChapter(ctx, testOwner, testCourse, "C")

			err := service.ReorderChapters(ctx, testOwner, testCourse, tt.list(a.ID, b.ID, c.ID))
			assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

			chapters, err := service.ListChapters(ctx, testOwner, testCourse)
			require.NoError(t, err)
			for i, chapter := range chapters {
				assert.Equal(t, i, chapter.Position)
			}
			assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{chapters[0].ID, chapters[1].ID, chapters[2].ID})
		})
	}
}

/*
TestDeleteChapter_ClosesPositionGap keeps positions contiguous after a removal.
*/
func TestDeleteChapter_ClosesPositionGap(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	a, _ := service.CreateChapter(ctx, testOwner, testCourse, "A")
	b, _ := service.CreateChapter(ctx, testOwner, testCourse, "B")
	c, _ := service.CreateChapter(ctx, testOwner, testCourse, "C")

	require.NoError(t, service.DeleteChapter(ctx, testOwner, testCourse, b.ID))

	chapters, err := service.ListChapters(ctx, testOwner, testCourse)
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, a.ID, chapters[0].ID)
	assert.Equal(t, 0, chapters[0].Position)
	assert.Equal(t, c.ID, chapters[1].ID)
	assert.Equal(t, 1, chapters[1].Position)

	next, err := service.CreateChapter(ctx, testOwner, testCourse, "D")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Position)
}

/*
TestPublishChapter_RequiresContent ensures incomplete chapters stay offline.
*/
func TestPublishChapter_RequiresContent(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	chapter, err := service.CreateChapter(ctx, testOwner, testCourse, "Intro")
	require.NoError(t, err)

	_, err = service.PublishChapter(ctx, testOwner, testCourse, chapter.ID)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "PUBLISH_REJECTED"))
	assert.Equal(t, MissingFieldsMessage, err.Error())

	_, err = service.UpdateChapter(ctx, testOwner, testCourse, chapter.ID, Patch{Description: pointer.To("What we cover")})
	require.NoError(t, err)

	published, err := service.PublishChapter(ctx, testOwner, testCourse, chapter.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
}

/*
TestUpdateChapter_PublishedStaysComplete blocks clearing the description of a live chapter.
*/
func TestUpdateChapter_PublishedStaysComplete(t *testing.T) {
	service, repo, _ := newTestService()
	repo.chapters["ch"] = &Chapter{ID: "ch", CourseID: testCourse, Title: "Intro", Description: pointer.To("Body"), IsPublished: true}

	_, err := service.UpdateChapter(context.Background(), testOwner, testCourse, "ch", Patch{Description: pointer.To(" ")})
	assert.True(t, apperr.HasCode(err, "PUBLISH_REJECTED"))
	assert.Equal(t, "Body", pointer.Val(repo.chapters["ch"].Description))
}

/*
TestUnpublishChapter_LastPublishedTakesCourseOffline covers the course sync path.
*/
func TestUnpublishChapter_LastPublishedTakesCourseOffline(t *testing.T) {
	tests := []struct {
		name           string
		otherPublished bool
		wantSync       bool
	}{
		{"last_published_chapter", false, true},
		{"another_published_chapter_remains", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, gate := newTestService()
			repo.chapters["a"] = &Chapter{ID: "a", CourseID: testCourse, Title: "A", Position: 0, IsPublished: true}
			repo.chapters["b"] = &Chapter{ID: "b", CourseID: testCourse, Title: "B", Position: 1, IsPublished: tt.otherPublished}

			_, err := service.UnpublishChapter(context.Background(), testOwner, testCourse, "a")
			require.NoError(t, err)

			if tt.wantSync {
				assert.Equal(t, []string{testCourse}, gate.unpublished)
			} else {
				assert.Empty(t, gate.unpublished)
			}
		})
	}
}

/*
TestDeleteChapter_LastPublishedTakesCourseOffline mirrors the unpublish path for deletions.
*/
func TestDeleteChapter_LastPublishedTakesCourseOffline(t *testing.T) {
	service, repo, gate := newTestService()
	repo.chapters["a"] = &Chapter{ID: "a", CourseID: testCourse, Title: "A", IsPublished: true}

	require.NoError(t, service.DeleteChapter(context.Background(), testOwner, testCourse, "a"))
	assert.Empty(t, repo.chapters)
	assert.Equal(t, []string{testCourse}, gate.unpublished)
}
