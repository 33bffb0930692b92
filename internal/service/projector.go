package service

import (
	"sort"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// unknownDayIndex позиция записей с неизвестным или пустым днём: после воскресенья
const unknownDayIndex = 7

var dayIndexes = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// DayIndex возвращает 0..6 для Monday..Sunday (без учёта регистра) и 7 для остального
func DayIndex(day string) int {
	if idx, ok := dayIndexes[strings.ToLower(strings.TrimSpace(day))]; ok {
		return idx
	}
	return unknownDayIndex
}

// Projector строит представление расписания по группам. Входные записи не изменяются,
// поэтому проекцию можно пересчитывать при каждом выборе группы.
type Projector struct {
	entries  []model.TimetableEntry
	sections []string
}

// NewProjector создаёт проекцию по плоскому списку записей бэкенда
func NewProjector(entries []model.TimetableEntry) *Projector {
	p := &Projector{entries: append([]model.TimetableEntry(nil), entries...)}

	seen := make(map[string]struct{})
	for _, entry := range p.entries {
		for _, name := range entry.Sections.Names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			p.sections = append(p.sections, name)
		}
	}
	sort.Strings(p.sections)

	return p
}

// SectionsPresent все группы, упомянутые напрямую или в объединённых занятиях, по алфавиту
func (p *Projector) SectionsPresent() []string {
	return append([]string{}, p.sections...)
}

// ForSection записи группы name, отсортированные по (день, время начала).
// Сортировка устойчивая: равные ключи сохраняют порядок бэкенда. Пустой результат - не ошибка.
func (p *Projector) ForSection(name string) []model.TimetableEntry {
	filtered := make([]model.TimetableEntry, 0)
	for _, entry := range p.entries {
		if entry.Sections.Contains(name) {
			filtered = append(filtered, entry)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		di, dj := DayIndex(filtered[i].Timeslot.Day), DayIndex(filtered[j].Timeslot.Day)
		if di != dj {
			return di < dj
		}
		return filtered[i].Timeslot.StartTime < filtered[j].Timeslot.StartTime
	})

	return filtered
}

// SearchSections фильтрует SectionsPresent по подстроке без учёта регистра
func (p *Projector) SearchSections(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return p.SectionsPresent()
	}

	result := make([]string, 0)
	for _, name := range p.sections {
		if strings.Contains(strings.ToLower(name), query) {
			result = append(result, name)
		}
	}
	return result
}

// HasSection проверяет, есть ли группа в расписании
func (p *Projector) HasSection(name string) bool {
	idx := sort.SearchStrings(p.sections, name)
	return idx < len(p.sections) && p.sections[idx] == name
}

func (p *Projector) Len() int {
	return len(p.entries)
}
