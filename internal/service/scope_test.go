package service

import (
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSections = []model.Section{
	{ID: 1, Name: "S1"},
	{ID: 2, Name: "S2"},
	{ID: 3, Name: "S3"},
}

func TestResolveSections(t *testing.T) {
	tests := []struct {
		name     string
		scope    model.SectionScope
		selected []int64
		sections []model.Section
		want     []int64
		wantErr  bool
	}{
		{name: "all ignores selection", scope: model.ScopeAll, selected: []int64{2}, sections: testSections, want: []int64{1, 2, 3}},
		{name: "all on empty catalog", scope: model.ScopeAll, sections: nil, want: []int64{}},
		{name: "all dedupes catalog", scope: model.ScopeAll, sections: append(testSections, model.Section{ID: 1, Name: "S1"}), want: []int64{1, 2, 3}},
		{name: "specific", scope: model.ScopeSpecific, selected: []int64{3, 1, 3}, sections: testSections, want: []int64{3, 1}},
		{name: "specific requires selection", scope: model.ScopeSpecific, sections: testSections, wantErr: true},
		{name: "exclude", scope: model.ScopeExclude, selected: []int64{2}, sections: testSections, want: []int64{1, 3}},
		{name: "exclude everything is empty not error", scope: model.ScopeExclude, selected: []int64{1, 2, 3}, sections: testSections, want: []int64{}},
		{name: "exclude requires selection", scope: model.ScopeExclude, sections: testSections, wantErr: true},
		{name: "unknown scope", scope: "NONE", sections: testSections, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSections(tt.scope, tt.selected, tt.sections)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAllFollowsCatalogChanges(t *testing.T) {
	first, err := ResolveSections(model.ScopeAll, nil, testSections[:2])
	require.NoError(t, err)
	second, err := ResolveSections(model.ScopeAll, nil, testSections)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, first)
	assert.Equal(t, []int64{1, 2, 3}, second)
}
