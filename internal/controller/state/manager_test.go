package state

import (
	"sync"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerState(t *testing.T) {
	sm := NewManager()

	assert.Equal(t, StateNone, sm.GetState(1))

	sm.SetState(1, StateSectionSearch)
	sm.SetData(1, KeyRunID, int64(5))
	assert.Equal(t, StateSectionSearch, sm.GetState(1))

	value, ok := sm.GetData(1, KeyRunID)
	require.True(t, ok)
	assert.Equal(t, int64(5), value)

	_, ok = sm.GetInt(1, KeyRunID)
	assert.False(t, ok, "int64 is not int")

	sm.ClearState(1)
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Nil(t, sm.GetAllData(1))
}

func TestManagerForm(t *testing.T) {
	sm := NewManager()

	_, ok := sm.UpdateForm(1, func(f *service.SubjectForm) { t.Fatal("must not be called") })
	assert.False(t, ok)

	sm.SetData(1, KeyFacultyPage, 2)
	sm.StartForm(1, StateSubjectName)
	_, ok = sm.GetData(1, KeyFacultyPage)
	assert.False(t, ok, "starting a form resets previous dialog data")

	form, ok := sm.UpdateForm(1, func(f *service.SubjectForm) {
		f.Name = "Algebra"
		f.ToggleFaculty(7)
	})
	require.True(t, ok)
	assert.Equal(t, "Algebra", form.Name)

	form.FacultyIDs[0] = 99
	stored, ok := sm.Form(1)
	require.True(t, ok)
	assert.Equal(t, []int64{7}, stored.FacultyIDs, "returned form is a copy")

	sm.SetState(1, StateSubjectDuration)
	stored, _ = sm.Form(1)
	assert.Equal(t, "Algebra", stored.Name, "changing state keeps the draft")
	assert.True(t, sm.GetState(1).IsSubjectDialog())
	assert.False(t, StateSectionSearch.IsSubjectDialog())
}

func TestManagerConcurrentToggles(t *testing.T) {
	sm := NewManager()
	sm.StartForm(1, StateSubjectSections)

	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.UpdateForm(1, func(f *service.SubjectForm) { f.ToggleSection(id) })
		}(i)
	}
	wg.Wait()

	form, _ := sm.Form(1)
	assert.Len(t, form.SelectedSections, 50)
}
