package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// maxListedSections сколько групп показывать в строке, остальные сворачиваются в "и ещё N"
const maxListedSections = 10

// FormatScope описание режима групп
func FormatScope(scope model.SectionScope) string {
	switch scope {
	case model.ScopeAll:
		return "все группы"
	case model.ScopeSpecific:
		return "только выбранные группы"
	case model.ScopeExclude:
		return "все группы, кроме выбранных"
	default:
		return string(scope)
	}
}

// JoinNames перечисляет имена через запятую, сворачивая хвост длинного списка
func JoinNames(names []string, limit int) string {
	if len(names) <= limit || limit <= 0 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s и ещё %d", strings.Join(names[:limit], ", "), len(names)-limit)
}

// FormatQueueItem форматирует элемент очереди. position начинается с 1.
// Имена преподавателей и групп уже разрешены через справочник, неизвестные id отброшены.
func FormatQueueItem(position int, item model.SubjectRequest, facultyNames, sectionNames []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>%d. %s</b>\n", position, html.EscapeString(item.Name)))

	faculty := "—"
	if len(facultyNames) > 0 {
		faculty = html.EscapeString(strings.Join(facultyNames, ", "))
	}
	sb.WriteString(fmt.Sprintf("👨‍🏫 %s\n", faculty))

	sb.WriteString(fmt.Sprintf("⏱ %d %s · %d %s в неделю\n",
		item.SlotDuration, PluralizeSlots(item.SlotDuration),
		item.LecturesPerWeek, PluralizeLectures(item.LecturesPerWeek)))

	if len(sectionNames) == 0 {
		sb.WriteString(fmt.Sprintf("👥 %s: групп не осталось, предмет попадёт в пропущенные", FormatScope(item.SectionScope)))
	} else {
		sb.WriteString(fmt.Sprintf("👥 %s: %s", FormatScope(item.SectionScope),
			html.EscapeString(JoinNames(sectionNames, maxListedSections))))
	}

	return sb.String()
}
