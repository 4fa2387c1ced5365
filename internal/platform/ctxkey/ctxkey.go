// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the keys under which request-scoped values are stored.
// Only ctxutil reads and writes them.
package ctxkey

type key string

const (
	// KeyRequestID carries the X-Request-ID echoed back to the dashboard.
	KeyRequestID key = "coursedesk.request_id"

	// KeyClaims carries the verified token claims of the calling author.
	KeyClaims key = "coursedesk.claims"

	// KeyLogger carries the request logger tagged with method, path and request id.
	KeyLogger key = "coursedesk.logger"
)
