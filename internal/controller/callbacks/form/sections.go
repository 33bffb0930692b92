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

// HandleSectionToggle отмечает или снимает группу
func HandleSectionToggle(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, _ service.SubjectForm) {
		sectionID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			hc.AnswerError("Invalid section callback", err)
			return
		}

		form, ok := h.StateManager.UpdateForm(hc.TelegramID, func(f *service.SubjectForm) {
			f.ToggleSection(sectionID)
		})
		if !ok {
			hc.AnswerError("Form disappeared", common.ErrNoActiveDialog)
			return
		}

		hc.Answer("")
		showSectionPicker(hc, form)
	})
}

// HandleSectionPage листает список групп
func HandleSectionPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, form service.SubjectForm) {
		page, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			hc.AnswerError("Invalid section page callback", err)
			return
		}

		hc.SetData(state.KeySectionPage, int(page))
		hc.Answer("")
		showSectionPicker(hc, form)
	})
}

// HandleSectionDone отправляет предмет с выбранными группами
func HandleSectionDone(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, form service.SubjectForm) {
		if len(form.SelectedSections) == 0 {
			hc.AnswerAlert(common.ErrorMessage(&service.ValidationError{Field: "sections"}))
			return
		}
		submit(hc, form)
	})
}

func showSectionPicker(hc *common.HandlerContext, form service.SubjectForm) {
	page, _ := hc.GetInt(state.KeySectionPage)
	text, kb := common.SectionPickerScreen(hc.Handler.TimetableService.Catalog(), form, page)
	hc.ShowScreen(text, kb)
}
