package formatting

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// maxTableRows ограничивает таблицу, чтобы сообщение влезло в лимит Telegram
const maxTableRows = 40

type column struct {
	title    string
	maxWidth int
	value    func(e model.TimetableEntry) string
}

var timetableColumns = []column{
	{title: "Предмет", maxWidth: 18, value: func(e model.TimetableEntry) string { return e.SubjectName }},
	{title: "Преподаватель", maxWidth: 16, value: func(e model.TimetableEntry) string { return e.Faculty.Name }},
	{title: "Группы", maxWidth: 14, value: func(e model.TimetableEntry) string { return e.Sections.String() }},
	{title: "Ауд.", maxWidth: 6, value: func(e model.TimetableEntry) string { return e.Room.Label }},
	{title: "День", maxWidth: 4, value: func(e model.TimetableEntry) string { return WeekdayShortName(e.Timeslot.Day) }},
	{title: "Начало", maxWidth: 6, value: func(e model.TimetableEntry) string { return FormatClock(e.Timeslot.StartTime) }},
	{title: "Конец", maxWidth: 6, value: func(e model.TimetableEntry) string { return FormatClock(e.Timeslot.EndTime) }},
}

// SectionTimetable таблица занятий группы в HTML-разметке Telegram.
// Записи должны быть уже отсортированы проекцией.
func SectionTimetable(section string, entries []model.TimetableEntry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 <b>Расписание группы %s</b>\n", html.EscapeString(section)))

	if len(entries) == 0 {
		sb.WriteString("\nЗанятий нет.")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%d %s\n\n", len(entries), PluralizeLectures(len(entries))))

	shown := entries
	if len(shown) > maxTableRows {
		shown = shown[:maxTableRows]
	}

	sb.WriteString("<pre>")
	sb.WriteString(html.EscapeString(RenderTable(shown)))
	sb.WriteString("</pre>")

	if hidden := len(entries) - len(shown); hidden > 0 {
		sb.WriteString(fmt.Sprintf("\n… и ещё %d %s, см. картинку недели", hidden, PluralizeLectures(hidden)))
	}

	return sb.String()
}

// RenderTable моноширинная таблица без разметки
func RenderTable(entries []model.TimetableEntry) string {
	cells := make([][]string, len(entries)+1)
	widths := make([]int, len(timetableColumns))

	cells[0] = make([]string, len(timetableColumns))
	for i, col := range timetableColumns {
		cells[0][i] = col.title
		widths[i] = utf8.RuneCountInString(col.title)
	}

	for row, entry := range entries {
		cells[row+1] = make([]string, len(timetableColumns))
		for i, col := range timetableColumns {
			value := truncate(col.value(entry), col.maxWidth)
			cells[row+1][i] = value
			if w := utf8.RuneCountInString(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for row, line := range cells {
		for i, value := range line {
			if i > 0 {
				sb.WriteString(" │ ")
			}
			sb.WriteString(value)
			if i < len(line)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(value)))
			}
		}
		sb.WriteString("\n")

		if row == 0 {
			for i, w := range widths {
				if i > 0 {
					sb.WriteString("─┼─")
				}
				sb.WriteString(strings.Repeat("─", w))
			}
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

// SkippedSlots список занятий, которые бэкенд не смог разместить
func SkippedSlots(skipped []model.SkippedSlot, sectionName func(id int64) string) string {
	if len(skipped) == 0 {
		return "✅ Все занятия размещены."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠️ <b>Не удалось разместить: %d</b>\n", len(skipped)))

	for _, slot := range skipped {
		section := slot.Section
		if section == "" && slot.SectionID != nil && sectionName != nil {
			section = sectionName(*slot.SectionID)
		}
		if section == "" {
			section = "без группы"
		}

		sb.WriteString(fmt.Sprintf("\n• %s (%s)", html.EscapeString(slot.Subject), html.EscapeString(section)))
		if slot.Reason != "" {
			sb.WriteString(": " + html.EscapeString(slot.Reason))
		}
	}

	return sb.String()
}

// GenerationSummary итог генерации для сообщения после /generate
func GenerationSummary(run *model.TimetableRun, sectionsCount int) string {
	var entries, skipped int
	if run.Result != nil {
		entries = len(run.Result.Timetable)
		skipped = len(run.Result.SkippedSlots)
	}

	text := fmt.Sprintf("✅ <b>Расписание сгенерировано</b>\n\n"+
		"📚 Размещено: %d %s\n"+
		"👥 %d %s\n",
		entries, PluralizeLectures(entries),
		sectionsCount, PluralizeSections(sectionsCount))

	if skipped > 0 {
		text += fmt.Sprintf("⚠️ Пропущено: %d\n", skipped)
	}

	return text + "\nВыберите группу:"
}
