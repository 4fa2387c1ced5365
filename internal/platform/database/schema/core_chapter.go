package schema

// CoreChapterTable represents the 'core.chapter' table
type CoreChapterTable struct {
	Table       string
	ID          string
	CourseID    string
	Title       string
	Description string
	VideoURL    string
	Position    string
	IsPublished string
	IsFree      string
	CreatedAt   string
	UpdatedAt   string
}

// CoreChapter is the schema definition for core.chapter
var CoreChapter = CoreChapterTable{
	Table:       "core.chapter",
	ID:          "id",
	CourseID:    "courseid",
	Title:       "title",
	Description: "description",
	VideoURL:    "videourl",
	Position:    "position",
	IsPublished: "ispublished",
	IsFree:      "isfree",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreChapterTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.Title, t.Description, t.VideoURL, t.Position,
		t.IsPublished, t.IsFree, t.CreatedAt, t.UpdatedAt,
	}
}
