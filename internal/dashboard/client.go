// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/taibuivan/coursedesk/internal/core/category"
	"github.com/taibuivan/coursedesk/internal/core/chapter"
	"github.com/taibuivan/coursedesk/internal/core/course"
	"github.com/taibuivan/coursedesk/internal/platform/config"
	"github.com/taibuivan/coursedesk/internal/platform/constants"
)

// # Response Errors

// ResponseError is a non-2xx reply of the course API.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("dashboard: api responded %d: %s", e.StatusCode, e.Text())
}

/*
Text returns the error text carried by the body.

Description: JSON envelopes yield their "error" member. Any other body is
returned trimmed. An empty string means the reply had no usable body.
*/
func (e *ResponseError) Text() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return ""
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}

	return body
}

// # HTTP Client

// Client calls the course API over HTTP.
type Client struct {
	http *resty.Client
}

// envelope mirrors the {"data": ...} success body of the API.
type envelope[T any] struct {
	Data T `json:"data"`
}

// NewClient builds an API client from the dashboard settings.
func NewClient(cfg *config.DashboardConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetHeader(constants.HeaderAccept, "application/json")

	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	if cfg.AccessToken != "" {
		httpClient.SetAuthToken(cfg.AccessToken)
	}

	return &Client{http: httpClient}
}

func (client *Client) request(ctx context.Context, courseID string) *resty.Request {
	request := client.http.R().SetContext(ctx)
	if courseID != "" {
		request.SetPathParam("courseId", courseID)
	}
	return request
}

// check turns transport failures and non-2xx replies into errors.
func check(op string, response *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", op, err)
	}
	if response.IsError() {
		return &ResponseError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return nil
}

// GetCourse calls GET /courses/{courseId}. The reply carries the ordered chapters.
func (client *Client) GetCourse(ctx context.Context, courseID string) (*course.Course, error) {
	var result envelope[*course.Course]
	response, err := client.request(ctx, courseID).
		SetResult(&result).
		Get("/courses/{courseId}")
	if err := check("get course", response, err); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// PublishCourse calls PATCH /courses/{courseId}/publish.
func (client *Client) PublishCourse(ctx context.Context, courseID string) error {
	response, err := client.request(ctx, courseID).Patch("/courses/{courseId}/publish")
	return check("publish course", response, err)
}

// UnpublishCourse calls PATCH /courses/{courseId}/unpublish.
func (client *Client) UnpublishCourse(ctx context.Context, courseID string) error {
	response, err := client.request(ctx, courseID).Patch("/courses/{courseId}/unpublish")
	return check("unpublish course", response, err)
}

// DeleteCourse calls DELETE /courses/{courseId}.
func (client *Client) DeleteCourse(ctx context.Context, courseID string) error {
	response, err := client.request(ctx, courseID).Delete("/courses/{courseId}")
	return check("delete course", response, err)
}

// UpdateCourseCategory calls PATCH /courses/{courseId} with {categoryId}.
func (client *Client) UpdateCourseCategory(ctx context.Context, courseID, categoryID string) (*course.Course, error) {
	var result envelope[*course.Course]
	response, err := client.request(ctx, courseID).
		SetBody(map[string]string{"categoryId": categoryID}).
		SetResult(&result).
		Patch("/courses/{courseId}")
	if err := check("update course", response, err); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateChapter calls POST /courses/{courseId}/chapters with {title}.
func (client *Client) CreateChapter(ctx context.Context, courseID, title string) (*chapter.Chapter, error) {
	var result envelope[*chapter.Chapter]
	response, err := client.request(ctx, courseID).
		SetBody(map[string]string{"title": title}).
		SetResult(&result).
		Post("/courses/{courseId}/chapters")
	if err := check("create chapter", response, err); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ReorderChapters calls PUT /courses/{courseId}/chapters/reorder with {list}.
func (client *Client) ReorderChapters(ctx context.Context, courseID string, list []chapter.Position) error {
	response, err := client.request(ctx, courseID).
		SetBody(map[string][]chapter.Position{"list": list}).
		Put("/courses/{courseId}/chapters/reorder")
	return check("reorder chapters", response, err)
}

// ListCategories calls GET /categories.
func (client *Client) ListCategories(ctx context.Context) ([]*category.Category, error) {
	var result envelope[[]*category.Category]
	response, err := client.request(ctx, "").
		SetResult(&result).
		Get("/categories")
	if err := check("list categories", response, err); err != nil {
		return nil, err
	}
	return result.Data, nil
}

var _ API = (*Client)(nil)
