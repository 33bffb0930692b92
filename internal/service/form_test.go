package service

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *model.Catalog {
	return &model.Catalog{
		Faculty:  []model.Faculty{{ID: 7, Name: "Dr. Smith"}},
		Sections: []model.Section{{ID: 1, Name: "A1"}, {ID: 2, Name: "A2"}, {ID: 3, Name: "B1"}},
	}
}

func validForm() SubjectForm {
	return SubjectForm{
		Name:            "  Algebra ",
		FacultyIDs:      []int64{7},
		SlotDuration:    2,
		LecturesPerWeek: 3,
		Scope:           model.ScopeAll,
	}
}

func TestSubjectFormBuild(t *testing.T) {
	form := validForm()

	req, err := form.Build(testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Algebra", req.Name)
	assert.Equal(t, []int64{7}, req.FacultyIDs)
	assert.Equal(t, []int64{1, 2, 3}, req.ResolvedSections)
	assert.Equal(t, model.ScopeAll, req.SectionScope)
	assert.Empty(t, req.ID)
}

func TestSubjectFormBuildExclude(t *testing.T) {
	form := validForm()
	form.Scope = model.ScopeExclude
	form.SelectedSections = []int64{2}

	req, err := form.Build(testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, req.ResolvedSections)
}

func TestSubjectFormValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *SubjectForm)
		field string
	}{
		{name: "blank name", edit: func(f *SubjectForm) { f.Name = "   " }, field: "name"},
		{name: "long name", edit: func(f *SubjectForm) { f.Name = strings.Repeat("я", MaxSubjectNameLength+1) }, field: "name"},
		{name: "no faculty", edit: func(f *SubjectForm) { f.FacultyIDs = nil }, field: "faculty"},
		{name: "zero duration", edit: func(f *SubjectForm) { f.SlotDuration = 0 }, field: "duration"},
		{name: "huge duration", edit: func(f *SubjectForm) { f.SlotDuration = MaxSlotDuration + 1 }, field: "duration"},
		{name: "zero lectures", edit: func(f *SubjectForm) { f.LecturesPerWeek = 0 }, field: "lectures"},
		{name: "too many lectures", edit: func(f *SubjectForm) { f.LecturesPerWeek = MaxLecturesPerWeek + 1 }, field: "lectures"},
		{name: "no scope", edit: func(f *SubjectForm) { f.Scope = "" }, field: "scope"},
		{name: "unknown scope", edit: func(f *SubjectForm) { f.Scope = "SOME" }, field: "scope"},
		{name: "specific without sections", edit: func(f *SubjectForm) { f.Scope = model.ScopeSpecific }, field: "sections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.edit(&form)

			_, err := form.Build(testCatalog())
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestSubjectFormNameAtLimit(t *testing.T) {
	form := validForm()
	form.Name = strings.Repeat("я", MaxSubjectNameLength)
	assert.NoError(t, form.Validate())
}

func TestSubjectFormBuildWithoutCatalog(t *testing.T) {
	form := validForm()
	_, err := form.Build(nil)
	assert.ErrorIs(t, err, ErrCatalogNotReady)
}

func TestSubjectFormToggle(t *testing.T) {
	var form SubjectForm

	form.ToggleFaculty(1)
	form.ToggleFaculty(2)
	assert.True(t, form.HasFaculty(1))
	form.ToggleFaculty(1)
	assert.False(t, form.HasFaculty(1))
	assert.Equal(t, []int64{2}, form.FacultyIDs)

	form.ToggleSection(5)
	assert.True(t, form.HasSection(5))
	form.ToggleSection(5)
	assert.Empty(t, form.SelectedSections)
}

func TestCheckSteps(t *testing.T) {
	assert.NoError(t, CheckName(" Algebra "))
	assert.True(t, IsValidationError(CheckName("  ")))
	assert.True(t, IsValidationError(CheckName(strings.Repeat("x", MaxSubjectNameLength+1))))

	assert.NoError(t, CheckSlotDuration(MaxSlotDuration))
	assert.True(t, IsValidationError(CheckSlotDuration(0)))

	assert.NoError(t, CheckLecturesPerWeek(MinLecturesPerWeek))
	err := CheckLecturesPerWeek(MaxLecturesPerWeek + 1)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "lectures", vErr.Field)
}
