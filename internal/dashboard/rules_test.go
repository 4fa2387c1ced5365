// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestPublishFailureMessage walks the classification rules top-down.
*/
func TestPublishFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "published_chapter_envelope",
			err:  serverError(`{"error":"At least one published chapter is required","code":"PUBLISH_REJECTED"}`),
			want: MsgPublishedChapterNeed,
		},
		{
			name: "published_chapter_plain_text",
			err:  serverError("course has no published chapter"),
			want: MsgPublishedChapterNeed,
		},
		{
			name: "published_chapter_wins_over_missing_fields",
			err:  serverError("Missing required fields and no published chapter"),
			want: MsgPublishedChapterNeed,
		},
		{
			name: "missing_fields_verbatim",
			err:  serverError(`{"error":"Missing required fields","code":"PUBLISH_REJECTED"}`),
			want: "Missing required fields",
		},
		{
			name: "missing_fields_plain_text_verbatim",
			err:  serverError("Missing required fields: imageUrl"),
			want: "Missing required fields: imageUrl",
		},
		{
			name: "unrecognised_text_appended",
			err:  serverError("Internal Error"),
			want: "Unable to publish course: Internal Error",
		},
		{
			name: "envelope_without_error_member_uses_raw_body",
			err:  serverError(`{"code":"X"}`),
			want: `Unable to publish course: {"code":"X"}`,
		},
		{
			name: "empty_body",
			err:  serverError("  "),
			want: MsgGenericFailure,
		},
		{
			name: "transport_error",
			err:  errors.New("dial tcp: connection refused"),
			want: MsgGenericFailure,
		},
		{
			name: "wrapped_response_error",
			err:  fmt.Errorf("publish: %w", serverError("Missing required fields")),
			want: "Missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublishFailureMessage(tt.err))
		})
	}
}
