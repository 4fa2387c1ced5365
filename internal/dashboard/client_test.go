// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/coursedesk/internal/core/chapter"
	"github.com/taibuivan/coursedesk/internal/platform/config"
)

// captured is the last request seen by the test server.
type captured struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

func newTestServer(t *testing.T, status int, reply string) (*httptest.Server, *captured) {
	t.Helper()
	seen := &captured{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		*seen = captured{
			Method: request.Method,
			Path:   request.URL.Path,
			Auth:   request.Header.Get("Authorization"),
			Body:   string(body),
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, reply)
	}))
	t.Cleanup(server.Close)

	return server, seen
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(&config.DashboardConfig{
		APIURL:      server.URL + "/api/",
		Timeout:     5 * time.Second,
		AccessToken: "token-123",
	})
}

/*
TestClient_Routes checks method, path and body of every call.
*/
func TestClient_Routes(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		invoke     func(client *Client) error
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name:  "get_course",
			reply: `{"data":{"id":"c1","chapters":[{"id":"a","position":0}]}}`,
			invoke: func(c *Client) error {
				loaded, err := c.GetCourse(context.Background(), "c1")
				if err == nil && (loaded == nil || len(loaded.Chapters) != 1) {
					return errors.New("course not decoded")
				}
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/courses/c1",
		},
		{
			name:       "publish",
			invoke:     func(c *Client) error { return c.PublishCourse(context.Background(), "c1") },
			wantMethod: http.MethodPatch,
			wantPath:   "/api/courses/c1/publish",
		},
		{
			name:       "unpublish",
			invoke:     func(c *Client) error { return c.UnpublishCourse(context.Background(), "c1") },
			wantMethod: http.MethodPatch,
			wantPath:   "/api/courses/c1/unpublish",
		},
		{
			name:       "delete",
			invoke:     func(c *Client) error { return c.DeleteCourse(context.Background(), "c1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/courses/c1",
		},
		{
			name:  "update_category",
			reply: `{"data":{"id":"c1","categoryId":"cat"}}`,
			invoke: func(c *Client) error {
				course, err := c.UpdateCourseCategory(context.Background(), "c1", "cat")
				if err == nil && (course == nil || *course.CategoryID != "cat") {
					return errors.New("course not decoded")
				}
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/api/courses/c1",
			wantBody:   `{"categoryId":"cat"}`,
		},
		{
			name:  "create_chapter",
			reply: `{"data":{"id":"ch1","title":"Intro","position":3}}`,
			invoke: func(c *Client) error {
				created, err := c.CreateChapter(context.Background(), "c1", "Intro")
				if err == nil && (created == nil || created.Position != 3) {
					return errors.New("chapter not decoded")
				}
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/courses/c1/chapters",
			wantBody:   `{"title":"Intro"}`,
		},
		{
			name: "reorder",
			invoke: func(c *Client) error {
				return c.ReorderChapters(context.Background(), "c1", []chapter.Position{{ID: "b", Position: 0}, {ID: "a", Position: 1}})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/courses/c1/chapters/reorder",
			wantBody:   `{"list":[{"id":"b","position":0},{"id":"a","position":1}]}`,
		},
		{
			name:  "list_categories",
			reply: `{"data":[{"id":"x","name":"Music"}]}`,
			invoke: func(c *Client) error {
				categories, err := c.ListCategories(context.Background())
				if err == nil && len(categories) != 1 {
					return errors.New("categories not decoded")
				}
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/categories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := tt.reply
			if reply == "" {
				reply = `{"data":null}`
			}
			server, seen := newTestServer(t, http.StatusOK, reply)

			require.NoError(t, tt.invoke(newTestClient(server)))

			assert.Equal(t, tt.wantMethod, seen.Method)
			assert.Equal(t, tt.wantPath, seen.Path)
			assert.Equal(t, "Bearer token-123", seen.Auth)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, seen.Body)
			}
		})
	}
}

/*
TestClient_ErrorReply surfaces non-2xx replies as ResponseError.
*/
func TestClient_ErrorReply(t *testing.T) {
	body, err := json.Marshal(map[string]string{"error": "Missing required fields", "code": "PUBLISH_REJECTED"})
	require.NoError(t, err)
	server, _ := newTestServer(t, http.StatusBadRequest, string(body))

	err = newTestClient(server).PublishCourse(context.Background(), "c1")

	var responseErr *ResponseError
	require.ErrorAs(t, err, &responseErr)
	assert.Equal(t, http.StatusBadRequest, responseErr.StatusCode)
	assert.Equal(t, "Missing required fields", responseErr.Text())
	assert.Equal(t, "Missing required fields", PublishFailureMessage(err))
}

/*
TestClient_TransportError carries no response body.
*/
func TestClient_TransportError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, "")
	client := newTestClient(server)
	server.Close()

	err := client.PublishCourse(context.Background(), "c1")
	require.Error(t, err)

	var responseErr *ResponseError
	assert.False(t, errors.As(err, &responseErr))
	assert.Equal(t, MsgGenericFailure, PublishFailureMessage(err))
}

/*
TestResponseError_Text prefers the envelope error member.
*/
func TestResponseError_Text(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"error":"Course not found","code":"NOT_FOUND"}`, "Course not found"},
		{"plain failure\n", "plain failure"},
		{`[1,2]`, `[1,2]`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, (&ResponseError{StatusCode: 500, Body: tt.body}).Text())
	}
}
