package catalog

import (
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *model.Catalog {
	return &model.Catalog{
		Faculty:  []model.Faculty{{ID: 7, Name: "Dr. Smith"}, {ID: 8, Name: "Dr. Jones"}},
		Sections: []model.Section{{ID: 1, Name: "S1"}, {ID: 2, Name: "S2"}},
	}
}

func TestCacheReady(t *testing.T) {
	c := NewCache()
	assert.False(t, c.Ready())
	assert.Empty(t, c.SectionIDs())

	c.Replace(nil)
	assert.False(t, c.Ready())

	c.Replace(testCatalog())
	assert.True(t, c.Ready())
	assert.False(t, c.LoadedAt().IsZero())
}

func TestCacheReplaceIsWholesale(t *testing.T) {
	c := NewCache()
	c.Replace(testCatalog())
	require.Equal(t, []int64{1, 2}, c.SectionIDs())

	c.Replace(&model.Catalog{Sections: []model.Section{{ID: 3, Name: "S3"}}})
	assert.Equal(t, []int64{3}, c.SectionIDs())
	assert.Empty(t, c.FacultyName(7))
}

func TestCacheNames(t *testing.T) {
	c := NewCache()
	c.Replace(testCatalog())

	assert.Equal(t, "Dr. Jones", c.FacultyName(8))
	assert.Equal(t, "S2", c.SectionName(2))
	assert.Equal(t, []string{"Dr. Smith"}, c.FacultyNames([]int64{7, 99}))
	assert.Equal(t, []string{"S2", "S1"}, c.SectionNames([]int64{2, 1, 42}))
}
