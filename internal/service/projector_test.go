package service

import (
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(subject, day, start string, sections model.SectionRef) model.TimetableEntry {
	return model.TimetableEntry{
		SubjectName: subject,
		Faculty:     model.FacultyRef{Name: "Dr. Smith"},
		Sections:    sections,
		Room:        model.RoomRef{Label: "101"},
		Timeslot:    model.Timeslot{Day: day, StartTime: start, EndTime: start},
	}
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		day  string
		want int
	}{
		{"Monday", 0},
		{"tuesday", 1},
		{"WEDNESDAY", 2},
		{"Thursday", 3},
		{"Friday", 4},
		{"Saturday", 5},
		{"Sunday", 6},
		{"", 7},
		{"Funday", 7},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			assert.Equal(t, tt.want, DayIndex(tt.day))
		})
	}
}

func TestSectionsPresent(t *testing.T) {
	p := NewProjector([]model.TimetableEntry{
		entry("Algebra", "Monday", "09:00", model.SingleSection("B1")),
		entry("Physics", "Monday", "10:00", model.GroupSections("A1", "B1")),
		entry("Orphan", "Friday", "10:00", model.SectionRef{}),
	})

	assert.Equal(t, []string{"A1", "B1"}, p.SectionsPresent())
	assert.True(t, p.HasSection("A1"))
	assert.False(t, p.HasSection("C1"))
	assert.Equal(t, 3, p.Len())
}

func TestSectionsPresentEmpty(t *testing.T) {
	p := NewProjector(nil)
	assert.NotNil(t, p.SectionsPresent())
	assert.Empty(t, p.SectionsPresent())
}

func TestForSectionOrdersByDayThenTime(t *testing.T) {
	p := NewProjector([]model.TimetableEntry{
		entry("Chemistry", "Tuesday", "09:00", model.SingleSection("A1")),
		entry("Algebra", "Monday", "11:00", model.SingleSection("A1")),
		entry("Physics", "Monday", "09:00", model.SingleSection("A1")),
	})

	got := p.ForSection("A1")
	require.Len(t, got, 3)
	assert.Equal(t, "Physics", got[0].SubjectName)
	assert.Equal(t, "Algebra", got[1].SubjectName)
	assert.Equal(t, "Chemistry", got[2].SubjectName)
}

func TestForSectionIncludesGroupedEntries(t *testing.T) {
	p := NewProjector([]model.TimetableEntry{
		entry("Lecture", "Monday", "09:00", model.GroupSections("A1", "A2")),
		entry("Lab", "Monday", "11:00", model.SingleSection("A2")),
	})

	a1 := p.ForSection("A1")
	require.Len(t, a1, 1)
	assert.Equal(t, "Lecture", a1[0].SubjectName)
	assert.Len(t, p.ForSection("A2"), 2)
}

func TestForSectionStableAndUnknownDayLast(t *testing.T) {
	p := NewProjector([]model.TimetableEntry{
		entry("Mystery", "", "08:00", model.SingleSection("A1")),
		entry("First", "Friday", "09:00", model.SingleSection("A1")),
		entry("Second", "friday", "09:00", model.SingleSection("A1")),
	})

	got := p.ForSection("A1")
	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].SubjectName)
	assert.Equal(t, "Second", got[1].SubjectName)
	assert.Equal(t, "Mystery", got[2].SubjectName)
}

func TestForSectionUnknownSection(t *testing.T) {
	p := NewProjector([]model.TimetableEntry{
		entry("Algebra", "Monday", "09:00", model.SingleSection("A1")),
	})

	got := p.ForSection("Z9")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestForSectionDoesNotMutateInput(t *testing.T) {
	entries := []model.TimetableEntry{
		entry("Late", "Friday", "09:00", model.SingleSection("A1")),
		entry("Early", "Monday", "09:00", model.SingleSection("A1")),
	}
	p := NewProjector(entries)

	_ = p.ForSection("A1")
	_ = p.ForSection("A1")
	assert.Equal(t, "Late", entries[0].SubjectName)
}

func TestSearchSections(t *testing.T) {
	p := NewProjector([]model.TimetableEntry{
		entry("A", "Monday", "09:00", model.GroupSections("CS-101", "CS-102", "MATH-1")),
	})

	assert.Equal(t, []string{"CS-101", "CS-102"}, p.SearchSections("cs"))
	assert.Equal(t, []string{"MATH-1"}, p.SearchSections(" math "))
	assert.Len(t, p.SearchSections(""), 3)
	assert.Empty(t, p.SearchSections("bio"))
}
