package formatting

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "занятие"},
		{2, "занятия"},
		{5, "занятий"},
		{11, "занятий"},
		{21, "занятие"},
		{22, "занятия"},
		{0, "занятий"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralizeLectures(tt.count), "count %d", tt.count)
	}
	assert.Equal(t, "группы", PluralizeSections(3))
	assert.Equal(t, "предметов", PluralizeSubjects(12))
}

func TestWeekdayNames(t *testing.T) {
	assert.Equal(t, "Пн", WeekdayShortName("Monday"))
	assert.Equal(t, "Вс", WeekdayShortName("SUNDAY"))
	assert.Equal(t, "?", WeekdayShortName(""))
	assert.Equal(t, "Holiday", WeekdayShortName("Holiday"))
	assert.Equal(t, "Среда", WeekdayName("wednesday"))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock("09:00:00"))
	assert.Equal(t, "09:00", FormatClock("09:00"))
	assert.Equal(t, "--:--", FormatClock(""))
	assert.Equal(t, "09:00-10:30", FormatTimeRange("09:00:00", "10:30"))
}

func TestFormatQueueItem(t *testing.T) {
	item := model.SubjectRequest{
		Name:            "Algebra <adv>",
		SlotDuration:    2,
		LecturesPerWeek: 3,
		SectionScope:    model.ScopeAll,
	}

	text := FormatQueueItem(1, item, []string{"Dr. Smith"}, []string{"A1", "A2"})
	assert.Contains(t, text, "<b>1. Algebra &lt;adv&gt;</b>")
	assert.Contains(t, text, "Dr. Smith")
	assert.Contains(t, text, "2 слота · 3 занятия в неделю")
	assert.Contains(t, text, "все группы: A1, A2")

	empty := FormatQueueItem(2, item, nil, nil)
	assert.Contains(t, empty, "попадёт в пропущенные")
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "a, b", JoinNames([]string{"a", "b"}, 5))
	assert.Equal(t, "a, b и ещё 2", JoinNames([]string{"a", "b", "c", "d"}, 2))
}

func TestSectionTimetable(t *testing.T) {
	entries := []model.TimetableEntry{
		{
			SubjectName: "Algebra",
			Faculty:     model.FacultyRef{Name: "Dr. Smith"},
			Sections:    model.GroupSections("A1", "A2"),
			Room:        model.RoomRef{Label: "101"},
			Timeslot:    model.Timeslot{Day: "Monday", StartTime: "09:00:00", EndTime: "10:30:00"},
		},
	}

	text := SectionTimetable("A1", entries)
	assert.Contains(t, text, "Расписание группы A1")
	assert.Contains(t, text, "<pre>")
	assert.Contains(t, text, "Algebra")
	assert.Contains(t, text, "A1, A2")
	assert.Contains(t, text, "Пн")
	assert.Contains(t, text, "10:30")
	assert.NotContains(t, text, "10:30:00")

	none := SectionTimetable("B1", nil)
	assert.Contains(t, none, "Занятий нет.")
	assert.NotContains(t, none, "<pre>")
}

func TestRenderTableAlignment(t *testing.T) {
	entries := []model.TimetableEntry{
		{SubjectName: "A", Timeslot: model.Timeslot{Day: "Monday", StartTime: "09:00", EndTime: "10:00"}},
		{SubjectName: "Очень длинное название предмета", Timeslot: model.Timeslot{Day: "Friday", StartTime: "11:00", EndTime: "12:00"}},
	}

	lines := strings.Split(RenderTable(entries), "\n")
	require.Len(t, lines, 4)

	sep := runeIndex(lines[0], "│")
	assert.Equal(t, sep, runeIndex(lines[1], "┼"))
	assert.Equal(t, sep, runeIndex(lines[2], "│"))
	assert.Equal(t, sep, runeIndex(lines[3], "│"))
	assert.Contains(t, lines[3], "…")
}

func runeIndex(s, sub string) int {
	return utf8.RuneCountInString(s[:strings.Index(s, sub)])
}

func TestSectionTimetableEscapesHTML(t *testing.T) {
	entries := []model.TimetableEntry{{SubjectName: "R&D", Timeslot: model.Timeslot{Day: "Monday"}}}
	assert.Contains(t, SectionTimetable("<A1>", entries), "R&amp;D")
	assert.Contains(t, SectionTimetable("<A1>", entries), "&lt;A1&gt;")
}

func TestSkippedSlots(t *testing.T) {
	assert.Equal(t, "✅ Все занятия размещены.", SkippedSlots(nil, nil))

	id := int64(3)
	text := SkippedSlots([]model.SkippedSlot{
		{Subject: "Physics", SectionID: &id, Reason: "no room"},
		{Subject: "Orphan"},
	}, func(int64) string { return "B1" })

	assert.Contains(t, text, "Не удалось разместить: 2")
	assert.Contains(t, text, "Physics (B1): no room")
	assert.Contains(t, text, "Orphan (без группы)")
}

func TestGenerationSummary(t *testing.T) {
	run := &model.TimetableRun{Result: &model.GenerationResult{
		Timetable:    make([]model.TimetableEntry, 5),
		SkippedSlots: make([]model.SkippedSlot, 1),
	}}

	text := GenerationSummary(run, 2)
	assert.Contains(t, text, "Размещено: 5 занятий")
	assert.Contains(t, text, "2 группы")
	assert.Contains(t, text, "Пропущено: 1")
}
