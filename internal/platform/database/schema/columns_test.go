package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	assert.Equal(t, "id, name", Select("", CoreCategory.ID, CoreCategory.Name))
	assert.Equal(t, "c.id, c.title", Select("c", CoreCourse.ID, CoreCourse.Title))
	assert.Len(t, CoreChapter.Columns(), 10)
}
