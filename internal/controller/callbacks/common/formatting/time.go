package formatting

import (
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/service"
)

var weekdayShortNames = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

var weekdayNames = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// WeekdayShortName краткое русское название дня из ответа бэкенда ("Monday" -> "Пн").
// Неизвестный день выводится как есть, пустой - как "?".
func WeekdayShortName(day string) string {
	if idx := service.DayIndex(day); idx < len(weekdayShortNames) {
		return weekdayShortNames[idx]
	}
	if strings.TrimSpace(day) == "" {
		return "?"
	}
	return day
}

// WeekdayName полное русское название дня
func WeekdayName(day string) string {
	if idx := service.DayIndex(day); idx < len(weekdayNames) {
		return weekdayNames[idx]
	}
	if strings.TrimSpace(day) == "" {
		return "День не указан"
	}
	return day
}

// WeekdayShortNames Пн..Вс
func WeekdayShortNames() []string {
	return append([]string(nil), weekdayShortNames...)
}

// FormatClock обрезает секунды: "09:00:00" -> "09:00"
func FormatClock(t string) string {
	t = strings.TrimSpace(t)
	if len(t) == len("15:04:05") && strings.Count(t, ":") == 2 {
		return t[:5]
	}
	if t == "" {
		return "--:--"
	}
	return t
}

// FormatTimeRange форматирует диапазон времени
func FormatTimeRange(start, end string) string {
	return FormatClock(start) + "-" + FormatClock(end)
}
