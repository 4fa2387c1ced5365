// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package course implements the course aggregate of the authoring dashboard.

A course is owned by the teacher who created it. It starts as a draft and
can only be published once its title, description, cover image and category
are filled in and at least one of its chapters is published.

# Publication Rules

  - Required fields are checked first and reported as "Missing required fields".
  - The published chapter check follows.
  - A course loses its published state when its last published chapter goes offline.
*/
package course

import (
	"time"

	"github.com/taibuivan/coursedesk/internal/core/chapter"
)

// # Core Entities

// Course is the top-level unit of teaching content.
type Course struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
	CategoryID  *string  `json:"categoryId"`
	IsPublished bool     `json:"isPublished"`

	// Chapters is only populated on single-course reads, ordered by position.
	Chapters []*chapter.Chapter `json:"chapters,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Patch carries the optional fields of a course update.
type Patch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
	CategoryID  *string  `json:"categoryId"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImageURL    = "imageUrl"
	FieldPrice       = "price"
	FieldCategoryID  = "categoryId"
)

// MaxTitleLength bounds course titles.
const MaxTitleLength = 200

// Publication rejection messages. The dashboard classifies on these texts.
const (
	MissingFieldsMessage      = "Missing required fields"
	NoPublishedChapterMessage = "At least one published chapter is required"
)
