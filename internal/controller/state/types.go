package state

import "github.com/Freeeeeet/timetable_bot/internal/service"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния диалога добавления предмета
	StateSubjectName     UserState = "subject_name"
	StateSubjectFaculty  UserState = "subject_faculty"
	StateSubjectDuration UserState = "subject_duration"
	StateSubjectLectures UserState = "subject_lectures"
	StateSubjectScope    UserState = "subject_scope"
	StateSubjectSections UserState = "subject_sections"

	// Поиск группы в сгенерированном расписании
	StateSectionSearch UserState = "section_search"
)

// IsSubjectDialog сообщает, относится ли состояние к диалогу добавления предмета
func (s UserState) IsSubjectDialog() bool {
	switch s {
	case StateSubjectName, StateSubjectFaculty, StateSubjectDuration,
		StateSubjectLectures, StateSubjectScope, StateSubjectSections:
		return true
	}
	return false
}

// Ключи временных данных
const (
	KeyFacultyPage = "faculty_page"
	KeySectionPage = "section_page"
	KeyRunID       = "run_id"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Form  *service.SubjectForm   // черновик предмета, пока идёт диалог
	Data  map[string]interface{} // Временные данные для текущего диалога
}
