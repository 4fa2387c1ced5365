// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Course fields such as description, image URL and category are nullable in
storage and optional in PATCH bodies, so they travel as pointers.
*/
package pointer

import "strings"

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer, returning the zero value if nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Blank reports whether p is nil or points at a string of only whitespace.
func Blank(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}

// NilIfBlank collapses blank strings to nil so they are stored as NULL.
func NilIfBlank(p *string) *string {
	if Blank(p) {
		return nil
	}
	return p
}
