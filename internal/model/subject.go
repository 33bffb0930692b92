package model

import "fmt"

// SectionScope определяет, к каким группам относится предмет
type SectionScope string

const (
	ScopeAll      SectionScope = "ALL"
	ScopeSpecific SectionScope = "SPECIFIC"
	ScopeExclude  SectionScope = "EXCLUDE"
)

// NeedsSelection сообщает, требует ли режим явного выбора групп
func (s SectionScope) NeedsSelection() bool {
	return s == ScopeSpecific || s == ScopeExclude
}

func (s SectionScope) Valid() bool {
	switch s {
	case ScopeAll, ScopeSpecific, ScopeExclude:
		return true
	}
	return false
}

// ParseSectionScope разбирает режим из строки (callback data, конфиг)
func ParseSectionScope(raw string) (SectionScope, error) {
	scope := SectionScope(raw)
	if !scope.Valid() {
		return "", fmt.Errorf("unknown section scope %q", raw)
	}
	return scope, nil
}

// SubjectRequest элемент очереди предметов.
// ResolvedSections всегда содержит уже применённый к справочнику набор групп без дублей.
type SubjectRequest struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	FacultyIDs       []int64      `json:"facultyIds"`
	SlotDuration     int          `json:"slotDuration"`
	LecturesPerWeek  int          `json:"lecturesPerWeek"`
	SectionScope     SectionScope `json:"sectionScope"`
	ResolvedSections []int64      `json:"resolvedSections"`
}

// ExpandedRequest запись, отправляемая бэкенду: одно недельное занятие
// предмета для одной группы. SectionID == nil означает "группа не определена".
type ExpandedRequest struct {
	SubjectName string  `json:"subjectName"`
	FacultyIDs  []int64 `json:"facultyIds"`
	Duration    int     `json:"duration"`
	Frequency   int     `json:"frequency"`
	SectionID   *int64  `json:"sectionId"`
}
