package common

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSectionWeekImage(t *testing.T) {
	entries := []model.TimetableEntry{
		{
			SubjectName: "Алгебра",
			Faculty:     model.FacultyRef{Name: "Dr. Smith"},
			Room:        model.RoomRef{Label: "101"},
			Timeslot:    model.Timeslot{Day: "Monday", StartTime: "09:00:00", EndTime: "10:30:00"},
		},
		{
			SubjectName: "Physics",
			Timeslot:    model.Timeslot{Day: "", StartTime: "09:00", EndTime: "10:00"},
		},
	}

	data, err := GenerateSectionWeekImage("A1", entries)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestGenerateSectionWeekImageEmpty(t *testing.T) {
	data, err := GenerateSectionWeekImage("A1", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPlaceEntries(t *testing.T) {
	placed := placeEntries([]model.TimetableEntry{
		{Timeslot: model.Timeslot{Day: "Tuesday", StartTime: "13:30", EndTime: "15:00"}},
		{Timeslot: model.Timeslot{Day: "Someday", StartTime: "13:30", EndTime: "15:00"}},
		{Timeslot: model.Timeslot{Day: "Friday", StartTime: "later", EndTime: "15:00"}},
		{Timeslot: model.Timeslot{Day: "Friday", StartTime: "10:00", EndTime: ""}},
	})

	require.Len(t, placed, 2)
	assert.Equal(t, 1, placed[0].day)
	assert.InDelta(t, 13.5, placed[0].start, 0.001)
	assert.InDelta(t, 15.0, placed[0].end, 0.001)
	assert.InDelta(t, 11.0, placed[1].end, 0.001, "missing end defaults to one hour")
}

func TestCalculateHourRange(t *testing.T) {
	empty := calculateHourRange(nil)
	assert.Equal(t, defaultMinHour-hourPaddingTop, empty.start)

	r := calculateHourRange([]placedEntry{{start: 9, end: 10.5}, {start: 14, end: 16}})
	assert.Equal(t, 8, r.start)
	assert.Equal(t, 17, r.end)
	assert.Equal(t, 9, r.total)
}

func TestSubjectColorStable(t *testing.T) {
	assert.Equal(t, subjectColor("Algebra"), subjectColor("Algebra"))
}
