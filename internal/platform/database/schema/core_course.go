package schema

// CoreCourseTable represents the 'core.course' table
type CoreCourseTable struct {
	Table       string
	ID          string
	OwnerID     string
	Title       string
	Description string
	ImageURL    string
	Price       string
	CategoryID  string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// CoreCourse is the schema definition for core.course
var CoreCourse = CoreCourseTable{
	Table:       "core.course",
	ID:          "id",
	OwnerID:     "ownerid",
	Title:       "title",
	Description: "description",
	ImageURL:    "imageurl",
	Price:       "price",
	CategoryID:  "categoryid",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreCourseTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Title, t.Description, t.ImageURL, t.Price,
		t.CategoryID, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
