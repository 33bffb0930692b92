package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SectionRefKind вид привязки записи расписания к группам
type SectionRefKind int

const (
	SectionRefNone   SectionRefKind = iota // запись без группы
	SectionRefSingle                       // одна группа (section)
	SectionRefGroup                        // объединённое занятие (sections[])
)

// SectionRef нормализованная привязка записи к группам.
// Бэкенд присылает либо section, либо sections[]; разбор происходит один раз при декодировании.
type SectionRef struct {
	Kind  SectionRefKind
	Names []string
}

func SingleSection(name string) SectionRef {
	return SectionRef{Kind: SectionRefSingle, Names: []string{name}}
}

func GroupSections(names ...string) SectionRef {
	return SectionRef{Kind: SectionRefGroup, Names: names}
}

// Contains проверяет, относится ли запись к группе name
func (r SectionRef) Contains(name string) bool {
	for _, n := range r.Names {
		if n == name {
			return true
		}
	}
	return false
}

func (r SectionRef) String() string {
	return strings.Join(r.Names, ", ")
}

type FacultyRef struct {
	Name string
}

// RoomRef аудитория; Label = roomNumber, а если его нет - name
type RoomRef struct {
	Label string
}

// Timeslot время занятия. Время хранится строкой как пришло ("09:00" или "09:00:00").
type Timeslot struct {
	Day       string
	StartTime string
	EndTime   string
}

// TimetableEntry запись сгенерированного расписания. Принадлежит бэкенду, только чтение.
type TimetableEntry struct {
	SubjectName string
	Faculty     FacultyRef
	Sections    SectionRef
	Room        RoomRef
	Timeslot    Timeslot
}

type wireNamed struct {
	Name string `json:"name"`
}

type wireRoom struct {
	RoomNumber string `json:"roomNumber"`
	Name       string `json:"name"`
}

type wireTimeslot struct {
	Day            string    `json:"day"`
	StartTime      clockTime `json:"start_time"`
	StartTimeCamel clockTime `json:"startTime"`
	EndTime        clockTime `json:"end_time"`
	EndTimeCamel   clockTime `json:"endTime"`
}

type wireEntry struct {
	SubjectName string        `json:"subjectName"`
	Faculty     *wireNamed    `json:"faculty"`
	Section     *wireNamed    `json:"section"`
	Sections    []wireNamed   `json:"sections"`
	Room        *wireRoom     `json:"room"`
	Timeslot    *wireTimeslot `json:"timeslot"`
}

func (e *TimetableEntry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	entry := TimetableEntry{SubjectName: w.SubjectName}
	if w.Faculty != nil {
		entry.Faculty.Name = w.Faculty.Name
	}

	// Непустой sections[] - объединённое занятие, иначе одиночная группа
	var groupNames []string
	for _, s := range w.Sections {
		if s.Name != "" {
			groupNames = append(groupNames, s.Name)
		}
	}
	switch {
	case len(groupNames) > 0:
		entry.Sections = GroupSections(groupNames...)
	case w.Section != nil && w.Section.Name != "":
		entry.Sections = SingleSection(w.Section.Name)
	}

	if w.Room != nil {
		entry.Room.Label = w.Room.RoomNumber
		if entry.Room.Label == "" {
			entry.Room.Label = w.Room.Name
		}
	}

	if w.Timeslot != nil {
		entry.Timeslot = Timeslot{
			Day:       w.Timeslot.Day,
			StartTime: firstNonEmpty(string(w.Timeslot.StartTime), string(w.Timeslot.StartTimeCamel)),
			EndTime:   firstNonEmpty(string(w.Timeslot.EndTime), string(w.Timeslot.EndTimeCamel)),
		}
	}

	*e = entry
	return nil
}

// clockTime принимает время строкой ("09:00:00") или массивом [9, 0, 0],
// как его сериализует Jackson без настройки дат.
type clockTime string

func (c *clockTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = clockTime(s)
		return nil
	}

	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("invalid time value %s", string(data))
	}
	switch len(parts) {
	case 2:
		*c = clockTime(fmt.Sprintf("%02d:%02d", parts[0], parts[1]))
	case 3:
		*c = clockTime(fmt.Sprintf("%02d:%02d:%02d", parts[0], parts[1], parts[2]))
	default:
		return fmt.Errorf("invalid time value %s", string(data))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// SkippedSlot занятие, которое бэкенд не смог разместить
type SkippedSlot struct {
	Subject   string `json:"subject"`
	SectionID *int64 `json:"sectionId,omitempty"`
	Section   string `json:"section,omitempty"`
	Reason    string `json:"reason"`
}

// GenerationResult ответ POST /api/generate-timetable
type GenerationResult struct {
	Timetable    []TimetableEntry `json:"timetable"`
	SkippedSlots []SkippedSlot    `json:"skippedSlots"`
}
