package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetableEntryUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TimetableEntry
	}{
		{
			name: "single section",
			raw: `{"subjectName":"Algebra","faculty":{"id":7,"name":"Dr. Smith"},"section":{"id":1,"name":"S1"},
				"room":{"roomNumber":"101"},"timeslot":{"day":"Monday","startTime":"09:00:00","endTime":"10:00:00"}}`,
			want: TimetableEntry{
				SubjectName: "Algebra",
				Faculty:     FacultyRef{Name: "Dr. Smith"},
				Sections:    SingleSection("S1"),
				Room:        RoomRef{Label: "101"},
				Timeslot:    Timeslot{Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00"},
			},
		},
		{
			name: "group booking wins over section",
			raw: `{"subjectName":"Physics","section":{"name":"S1"},"sections":[{"name":"S1"},{"name":"S2"}],
				"room":{"name":"LT-1"},"timeslot":{"day":"Tuesday","start_time":"11:00","end_time":"13:00"}}`,
			want: TimetableEntry{
				SubjectName: "Physics",
				Sections:    GroupSections("S1", "S2"),
				Room:        RoomRef{Label: "LT-1"},
				Timeslot:    Timeslot{Day: "Tuesday", StartTime: "11:00", EndTime: "13:00"},
			},
		},
		{
			name: "empty group falls back to section",
			raw:  `{"subjectName":"Chem","section":{"name":"S3"},"sections":[]}`,
			want: TimetableEntry{SubjectName: "Chem", Sections: SingleSection("S3")},
		},
		{
			name: "no section at all",
			raw:  `{"subjectName":"Orphan","section":null,"sections":null,"timeslot":null}`,
			want: TimetableEntry{SubjectName: "Orphan"},
		},
		{
			name: "time as array",
			raw:  `{"subjectName":"Bio","timeslot":{"day":"Friday","startTime":[9,30],"endTime":[10,30,0]}}`,
			want: TimetableEntry{
				SubjectName: "Bio",
				Timeslot:    Timeslot{Day: "Friday", StartTime: "09:30", EndTime: "10:30:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TimetableEntry
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerationResultUnmarshal(t *testing.T) {
	raw := `{"timetable":[{"subjectName":"A","section":{"name":"S1"}}],
		"skippedSlots":[{"subject":"B","sectionId":4,"reason":"No eligible faculties"}]}`

	var res GenerationResult
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	require.Len(t, res.Timetable, 1)
	require.Len(t, res.SkippedSlots, 1)
	assert.Equal(t, "B", res.SkippedSlots[0].Subject)
	require.NotNil(t, res.SkippedSlots[0].SectionID)
	assert.Equal(t, int64(4), *res.SkippedSlots[0].SectionID)
}

func TestInvalidTimeValue(t *testing.T) {
	var e TimetableEntry
	err := json.Unmarshal([]byte(`{"timeslot":{"startTime":[1]}}`), &e)
	assert.Error(t, err)
}

func TestSectionScope(t *testing.T) {
	scope, err := ParseSectionScope("EXCLUDE")
	require.NoError(t, err)
	assert.True(t, scope.NeedsSelection())
	assert.False(t, ScopeAll.NeedsSelection())

	_, err = ParseSectionScope("SOME")
	assert.Error(t, err)
}
