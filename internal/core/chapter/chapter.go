// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chapter manages the ordered sub-units of a course.

Chapters are created at the end of the course, reordered in bulk from a
drag-and-drop ordering, and carry their own publication flag. A course can
only be published while at least one of its chapters is published.
*/
package chapter

import "time"

// # Core Entities

// Chapter is an ordered sub-unit of a course.
type Chapter struct {
	ID          string  `json:"id"`
	CourseID    string  `json:"courseId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`

	// Position defines display and playback order. Zero-based, unique within a course.
	Position    int  `json:"position"`
	IsPublished bool `json:"isPublished"`
	IsFree      bool `json:"isFree"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Position is one entry of a bulk reorder request.
type Position struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// Patch carries the optional fields of a chapter update.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	IsFree      *bool   `json:"isFree"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldVideoURL    = "videoUrl"
	FieldList        = "list"
)

// MaxTitleLength bounds chapter titles.
const MaxTitleLength = 200

// MissingFieldsMessage is returned when a chapter is published without its required content.
const MissingFieldsMessage = "Missing required fields"
