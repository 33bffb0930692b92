package common

import "strconv"

// ========================
// Callback Data Patterns
// ========================
// Форматы callback data, общие для экранов и роутера (лимит Telegram - 64 байта)

const (
	Noop       = "noop"
	BackToMain = "back_to_main"
)

// Диалог добавления предмета
const (
	FormFaculty     = "form_fac:"      // form_fac:faculty_id
	FormFacultyPage = "form_fac_page:" // form_fac_page:page
	FormFacultyDone = "form_fac_done"
	FormDuration    = "form_dur:"      // form_dur:slots
	FormLectures    = "form_lec:"      // form_lec:count
	FormScope       = "form_scope:"    // form_scope:ALL|SPECIFIC|EXCLUDE
	FormSection     = "form_sec:"      // form_sec:section_id
	FormSectionPage = "form_sec_page:" // form_sec_page:page
	FormSectionDone = "form_sec_done"
	FormBackToScope = "form_back_scope"
	FormCancel      = "form_cancel"
)

// Очередь предметов
const (
	QueueShow     = "queue_show"
	QueueAdd      = "queue_add"
	QueueRemove   = "queue_rm:" // queue_rm:position
	QueueClear    = "queue_clear"
	QueueGenerate = "queue_gen"
)

// Просмотр расписания
const (
	TimetablePage    = "tt_page:"    // tt_page:run_id:page
	TimetableSection = "tt_sec:"     // tt_sec:run_id:section_index
	TimetableImage   = "tt_img:"     // tt_img:run_id:section_index
	TimetableSearch  = "tt_search:"  // tt_search:run_id
	TimetableSkipped = "tt_skipped:" // tt_skipped:run_id
)

// TimetablePageData callback data страницы списка групп
func TimetablePageData(runID int64, page int) string {
	return TimetablePage + strconv.FormatInt(runID, 10) + ":" + strconv.Itoa(page)
}
