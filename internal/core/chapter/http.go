// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/coursedesk/internal/platform/constants"
	requestutil "github.com/taibuivan/coursedesk/internal/platform/request"
	"github.com/taibuivan/coursedesk/internal/platform/respond"
)

// URL parameter names shared with the course router.
const (
	ParamCourseID  = "courseID"
	ParamChapterID = "chapterID"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the chapter router, mounted at /courses/{courseID}/chapters.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.ListChapters)
	router.Post("/", handler.CreateChapter)
	router.Put("/reorder", handler.ReorderChapters)

	router.Route("/{chapterID}", func(chapter chi.Router) {
		chapter.Get("/", handler.GetChapter)
		chapter.Patch("/", handler.UpdateChapter)
		chapter.Delete("/", handler.DeleteChapter)
		chapter.Patch("/publish", handler.PublishChapter)
		chapter.Patch("/unpublish", handler.UnpublishChapter)
	})

	return router
}

// # Chapter Retrieval

/*
GET /api/courses/{courseID}/chapters.

Description: Returns every chapter of the course in position order.

Response:
  - 200: []Chapter
  - 404: Course not found
*/
func (handler *Handler) ListChapters(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapters, err := handler.service.ListChapters(request.Context(), userID, requestutil.Param(request, ParamCourseID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapters)
}

/*
GET /api/courses/{courseID}/chapters/{chapterID}.

Response:
  - 200: Chapter
  - 404: Course or chapter not found
*/
func (handler *Handler) GetChapter(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.GetChapter(request.Context(), userID,
		requestutil.Param(request, ParamCourseID),
		requestutil.Param(request, ParamChapterID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

// # Chapter Mutations

// createChapterRequest is the inbound body of a chapter creation.
type createChapterRequest struct {
	Title string `json:"title"`
}

/*
POST /api/courses/{courseID}/chapters.

Description: Appends a new unpublished chapter to the course.

Request:
  - body: {"title": string}

Response:
  - 201: Chapter (with its assigned position)
  - 400: Invalid JSON or empty title
  - 404: Course not found
*/
func (handler *Handler) CreateChapter(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createChapterRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.CreateChapter(request.Context(), userID, requestutil.Param(request, ParamCourseID), input.Title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, chapter)
}

/*
PATCH /api/courses/{courseID}/chapters/{chapterID}.

Request:
  - body: Patch (title, description, videoUrl, isFree; all optional)

Response:
  - 200: Chapter
  - 400: Validation failed or published chapter left incomplete
*/
func (handler *Handler) UpdateChapter(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.UpdateChapter(request.Context(), userID,
		requestutil.Param(request, ParamCourseID),
		requestutil.Param(request, ParamChapterID),
		patch,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

// DeleteChapter handles DELETE /api/courses/{courseID}/chapters/{chapterID}.
func (handler *Handler) DeleteChapter(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteChapter(request.Context(), userID,
		requestutil.Param(request, ParamCourseID),
		requestutil.Param(request, ParamChapterID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// PublishChapter handles PATCH /api/courses/{courseID}/chapters/{chapterID}/publish.
func (handler *Handler) PublishChapter(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.PublishChapter(request.Context(), userID,
		requestutil.Param(request, ParamCourseID),
		requestutil.Param(request, ParamChapterID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

// UnpublishChapter handles PATCH /api/courses/{courseID}/chapters/{chapterID}/unpublish.
func (handler *Handler) UnpublishChapter(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.UnpublishChapter(request.Context(), userID,
		requestutil.Param(request, ParamCourseID),
		requestutil.Param(request, ParamChapterID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

// reorderRequest mirrors the drag-and-drop payload of the editor.
type reorderRequest struct {
	List []Position `json:"list"`
}

/*
PUT /api/courses/{courseID}/chapters/reorder.

Description: Applies a complete new ordering in one transaction.

Request:
  - body: {"list": [{"id": string, "position": int}]}

Response:
  - 200: {"message": "Chapters reordered"}
  - 400: Duplicate ids or positions, negative positions
  - 404: Course not found or an id outside the course
*/
func (handler *Handler) ReorderChapters(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input reorderRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ReorderChapters(request.Context(), userID, requestutil.Param(request, ParamCourseID), input.List); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldMessage: "Chapters reordered"})
}
