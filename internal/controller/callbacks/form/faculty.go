package form

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleFacultyToggle отмечает или снимает преподавателя
func HandleFacultyToggle(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, _ service.SubjectForm) {
		facultyID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			hc.AnswerError("Invalid faculty callback", err)
			return
		}

		form, ok := h.StateManager.UpdateForm(hc.TelegramID, func(f *service.SubjectForm) {
			f.ToggleFaculty(facultyID)
		})
		if !ok {
			hc.AnswerError("Form disappeared", common.ErrNoActiveDialog)
			return
		}

		hc.Answer("")
		showFacultyPicker(hc, form)
	})
}

// HandleFacultyPage листает список преподавателей
func HandleFacultyPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, form service.SubjectForm) {
		page, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			hc.AnswerError("Invalid faculty page callback", err)
			return
		}

		hc.SetData(state.KeyFacultyPage, int(page))
		hc.Answer("")
		showFacultyPicker(hc, form)
	})
}

// HandleFacultyDone переходит к выбору длительности
func HandleFacultyDone(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, form service.SubjectForm) {
		if len(form.FacultyIDs) == 0 {
			hc.AnswerAlert(common.ErrorMessage(&service.ValidationError{Field: "faculty"}))
			return
		}

		hc.SetState(state.StateSubjectDuration)
		hc.Answer("")
		text, kb := common.DurationPickerScreen(h.TimetableService.Catalog(), form)
		hc.ShowScreen(text, kb)
	})
}

func showFacultyPicker(hc *common.HandlerContext, form service.SubjectForm) {
	page, _ := hc.GetInt(state.KeyFacultyPage)
	text, kb := common.FacultyPickerScreen(hc.Handler.TimetableService.Catalog(), form, page)
	hc.ShowScreen(text, kb)
}
