// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package category serves the fixed reference list of course categories.
package category

import "context"

// Category is an entry of the course categorisation list.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository reads the category reference table.
type Repository interface {
	// ListAll returns every category ordered by name.
	ListAll(context context.Context) ([]*Category, error)
}

// Cache is the read-through cache in front of [Repository].
type Cache interface {
	Get(context context.Context, key string, target any) error
	Set(context context.Context, key string, value any) error
}
