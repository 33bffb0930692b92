package common

import (
	"testing"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, faculty, sections int) *catalog.Cache {
	t.Helper()
	c := &model.Catalog{}
	for i := 1; i <= faculty; i++ {
		c.Faculty = append(c.Faculty, model.Faculty{ID: int64(i), Name: "Prof " + string(rune('A'+i-1))})
	}
	for i := 1; i <= sections; i++ {
		c.Sections = append(c.Sections, model.Section{ID: int64(100 + i), Name: "S" + string(rune('A'+i-1))})
	}
	cache := catalog.NewCache()
	cache.Replace(c)
	return cache
}

func callbacks(kb *models.InlineKeyboardMarkup) []string {
	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			data = append(data, b.CallbackData)
		}
	}
	return data
}

func TestFacultyPickerScreen(t *testing.T) {
	cache := testCache(t, 10, 0)
	form := service.SubjectForm{Name: "Algebra", FacultyIDs: []int64{2}}

	text, kb := FacultyPickerScreen(cache, form, 0)
	assert.Contains(t, text, "Algebra")
	assert.Contains(t, text, "Prof B")

	data := callbacks(kb)
	assert.Contains(t, data, "form_fac:1")
	assert.Contains(t, data, "form_fac:8")
	assert.NotContains(t, data, "form_fac:9")
	assert.Contains(t, data, "form_fac_page:1")
	assert.Contains(t, data, FormFacultyDone)
	assert.Contains(t, data, FormCancel)
	assert.Equal(t, "✅ Prof B", kb.InlineKeyboard[1][0].Text)

	_, kb = FacultyPickerScreen(cache, form, 5)
	data = callbacks(kb)
	assert.Contains(t, data, "form_fac:10", "page is clamped to the last one")
}

func TestSectionPickerScreen(t *testing.T) {
	cache := testCache(t, 1, 3)
	form := service.SubjectForm{Scope: model.ScopeExclude, SelectedSections: []int64{102}}

	text, kb := SectionPickerScreen(cache, form, 0)
	assert.Contains(t, text, "исключить")
	assert.Contains(t, text, "Выбрано: 1 группа")

	data := callbacks(kb)
	assert.Contains(t, data, "form_sec:101")
	assert.Contains(t, data, FormSectionDone)
	assert.Contains(t, data, FormBackToScope)
}

func TestQueueScreen(t *testing.T) {
	cache := testCache(t, 1, 2)

	text, kb := QueueScreen(nil, cache)
	assert.Contains(t, text, "Очередь пуста")
	assert.Equal(t, []string{QueueAdd}, callbacks(kb))

	queue := []model.SubjectRequest{
		{Name: "Algebra", FacultyIDs: []int64{1, 99}, SlotDuration: 1, LecturesPerWeek: 2, SectionScope: model.ScopeAll, ResolvedSections: []int64{101, 102}},
		{Name: "Physics", FacultyIDs: []int64{1}, SlotDuration: 2, LecturesPerWeek: 1, SectionScope: model.ScopeExclude},
	}
	text, kb = QueueScreen(queue, cache)
	assert.Contains(t, text, "Очередь: 2 предмета")
	assert.Contains(t, text, "SA, SB")
	assert.NotContains(t, text, "99", "unknown faculty ids are dropped")

	data := callbacks(kb)
	assert.Contains(t, data, "queue_rm:0")
	assert.Contains(t, data, "queue_rm:1")
	assert.Contains(t, data, QueueGenerate)
}

func TestTimetableScreens(t *testing.T) {
	run := &model.TimetableRun{
		ID:        7,
		CreatedAt: time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC),
		Result:    &model.GenerationResult{SkippedSlots: []model.SkippedSlot{{Subject: "X"}}},
	}
	sections := []string{"A1", "A2"}

	text, kb := TimetableScreen(run, sections, 0)
	assert.Contains(t, text, "02.09.2024")
	data := callbacks(kb)
	assert.Contains(t, data, "tt_sec:7:1")
	assert.Contains(t, data, "tt_search:7")
	assert.Contains(t, data, "tt_skipped:7")

	_, kb = SectionScreen(7, 1, "A2", nil)
	assert.Equal(t, []string{"tt_page:7:0"}, callbacks(kb), "no image button for an empty section")

	_, kb = SectionScreen(7, 1, "A2", []model.TimetableEntry{{SubjectName: "Algebra"}})
	assert.Contains(t, callbacks(kb), "tt_img:7:1")
}

func TestSearchResultsScreen(t *testing.T) {
	all := []string{"CS-1", "CS-2", "MATH"}

	text, kb := SearchResultsScreen(3, "cs", []string{"CS-1", "CS-2"}, all)
	assert.Contains(t, text, "2 группы")
	data := callbacks(kb)
	assert.Contains(t, data, "tt_sec:3:0")
	assert.Contains(t, data, "tt_sec:3:1")

	text, kb = SearchResultsScreen(3, "<bio>", nil, all)
	assert.Contains(t, text, "&lt;bio&gt;")
	require.Len(t, callbacks(kb), 1)
}
