package service

import (
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRequestsAlgebraExample(t *testing.T) {
	expanded := ExpandRequests([]model.SubjectRequest{algebra(1, 2)})

	require.Len(t, expanded, 6)
	for i, req := range expanded {
		assert.Equal(t, "Algebra", req.SubjectName)
		assert.Equal(t, []int64{7}, req.FacultyIDs)
		assert.Equal(t, 2, req.Duration)
		assert.Equal(t, 3, req.Frequency)
		require.NotNil(t, req.SectionID)

		wantSection := int64(1)
		if i >= 3 {
			wantSection = 2
		}
		assert.Equal(t, wantSection, *req.SectionID)
	}
}

func TestExpandRequestsLength(t *testing.T) {
	tests := []struct {
		name     string
		sections []int64
		lectures int
		want     int
	}{
		{name: "one section", sections: []int64{1}, lectures: 4, want: 4},
		{name: "three sections", sections: []int64{1, 2, 3}, lectures: 2, want: 6},
		{name: "no sections", sections: nil, lectures: 5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := algebra(tt.sections...)
			subject.LecturesPerWeek = tt.lectures
			assert.Len(t, ExpandRequests([]model.SubjectRequest{subject}), tt.want)
		})
	}
}

func TestExpandRequestsUnresolvedSentinel(t *testing.T) {
	subject := algebra()
	subject.SectionScope = model.ScopeExclude

	expanded := ExpandRequests([]model.SubjectRequest{subject})
	require.Len(t, expanded, 1)
	assert.Nil(t, expanded[0].SectionID)
	assert.Equal(t, 2, expanded[0].Duration)
	assert.Equal(t, 3, expanded[0].Frequency)
}

func TestExpandRequestsOrdering(t *testing.T) {
	physics := model.SubjectRequest{Name: "Physics", FacultyIDs: []int64{8}, SlotDuration: 1, LecturesPerWeek: 1, ResolvedSections: []int64{3}}
	first := algebra(2, 1)
	first.LecturesPerWeek = 2

	expanded := ExpandRequests([]model.SubjectRequest{first, physics})

	var got []string
	for _, req := range expanded {
		got = append(got, req.SubjectName+":"+string(rune('0'+*req.SectionID)))
	}
	assert.Equal(t, []string{"Algebra:2", "Algebra:2", "Algebra:1", "Algebra:1", "Physics:3"}, got)
}

func TestExpandRequestsEmptyQueue(t *testing.T) {
	assert.Empty(t, ExpandRequests(nil))
}
