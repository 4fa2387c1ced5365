// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"errors"
	"strings"
)

// rule maps a server error text onto a message. Rules are evaluated in order.
type rule struct {
	matches func(text string) bool
	message func(text string) string
}

// publishRules classify publish and unpublish failures.
//
// TODO: classify on the PUBLISH_REJECTED code once the rejection reason is
// carried as a code of its own rather than as message text.
var publishRules = []rule{
	{
		matches: func(text string) bool { return strings.Contains(text, "published chapter") },
		message: func(string) string { return MsgPublishedChapterNeed },
	},
	{
		matches: func(text string) bool { return strings.Contains(text, "Missing required fields") },
		message: func(text string) string { return text },
	},
	{
		matches: func(string) bool { return true },
		message: func(text string) string { return MsgPublishFailedPrefix + text },
	},
}

// errorText extracts the server text of err. ok is false when err carries no response body.
func errorText(err error) (text string, ok bool) {
	var responseErr *ResponseError
	if !errors.As(err, &responseErr) {
		return "", false
	}
	text = responseErr.Text()
	return text, text != ""
}

// PublishFailureMessage returns the message shown when publishing or unpublishing fails.
func PublishFailureMessage(err error) string {
	text, ok := errorText(err)
	if !ok {
		return MsgGenericFailure
	}
	for _, rule := range publishRules {
		if rule.matches(text) {
			return rule.message(text)
		}
	}
	return MsgGenericFailure
}
