// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/coursedesk/internal/core/chapter"
	requestutil "github.com/taibuivan/coursedesk/internal/platform/request"
	"github.com/taibuivan/coursedesk/internal/platform/respond"
	"github.com/taibuivan/coursedesk/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for course management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new course [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the course router. chapterRoutes, when set, is mounted at /{courseID}/chapters.
func (handler *Handler) Routes(chapterRoutes http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.ListCourses)
	router.Post("/", handler.CreateCourse)

	router.Get("/{courseID}", handler.GetCourse)
	router.Patch("/{courseID}", handler.UpdateCourse)
	router.Delete("/{courseID}", handler.DeleteCourse)
	router.Patch("/{courseID}/publish", handler.PublishCourse)
	router.Patch("/{courseID}/unpublish", handler.UnpublishCourse)

	if chapterRoutes != nil {
		router.Mount("/{courseID}/chapters", chapterRoutes)
	}

	return router
}

func courseID(request *http.Request) string {
	return requestutil.Param(request, chapter.ParamCourseID)
}

// # Course Retrieval

/*
GET /api/courses.

Description: Returns a page of the caller's courses, newest first.

Request:
  - page: int
  - limit: int

Response:
  - 200: []Course with pagination meta
*/
func (handler *Handler) ListCourses(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	courses, total, err := handler.service.ListCourses(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, courses, pagination.NewMeta(params, total))
}

/*
GET /api/courses/{courseID}.

Response:
  - 200: Course with chapters ordered by position
  - 404: Course not found or owned by someone else
*/
func (handler *Handler) GetCourse(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.GetCourse(request.Context(), userID, courseID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, course)
}

// # Course Mutations

type createCourseRequest struct {
	Title string `json:"title"`
}

/*
POST /api/courses.

Request:
  - body: {"title": string}

Response:
  - 201: Course (draft)
  - 400: Invalid JSON or empty title
*/
func (handler *Handler) CreateCourse(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createCourseRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.CreateCourse(request.Context(), userID, input.Title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, course)
}

/*
PATCH /api/courses/{courseID}.

Description: Partial update. The category selector sends {"categoryId": string}.

Request:
  - body: Patch (title, description, imageUrl, price, categoryId; all optional)

Response:
  - 200: Course
  - 400: Validation failed or unknown category
  - 404: Course not found
*/
func (handler *Handler) UpdateCourse(writer http.ResponseWriter, request *http.Request) {
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

	course, err := handler.service.UpdateCourse(request.Context(), userID, courseID(request), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, course)
}

// DeleteCourse handles DELETE /api/courses/{courseID}.
func (handler *Handler) DeleteCourse(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCourse(request.Context(), userID, courseID(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
PATCH /api/courses/{courseID}/publish.

Response:
  - 200: Course
  - 400: "Missing required fields" or "At least one published chapter is required"
  - 404: Course not found
*/
func (handler *Handler) PublishCourse(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.PublishCourse(request.Context(), userID, courseID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, course)
}

// UnpublishCourse handles PATCH /api/courses/{courseID}/unpublish.
func (handler *Handler) UnpublishCourse(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.UnpublishCourse(request.Context(), userID, courseID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, course)
}
