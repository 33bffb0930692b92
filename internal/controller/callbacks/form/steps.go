package form

import (
	"context"
	"strconv"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDuration сохраняет длительность и переходит к числу занятий
func HandleDuration(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, _ service.SubjectForm) {
		n, err := parseNumber(callback.Data, common.FormDuration)
		if err == nil {
			err = service.CheckSlotDuration(n)
		}
		if err != nil {
			hc.AnswerError("Invalid duration", err)
			return
		}

		form, ok := h.StateManager.UpdateForm(hc.TelegramID, func(f *service.SubjectForm) {
			f.SlotDuration = n
		})
		if !ok {
			hc.AnswerError("Form disappeared", common.ErrNoActiveDialog)
			return
		}

		hc.SetState(state.StateSubjectLectures)
		hc.Answer("")
		text, kb := common.LecturesPickerScreen(h.TimetableService.Catalog(), form)
		hc.ShowScreen(text, kb)
	})
}

// HandleLectures сохраняет число занятий в неделю и переходит к выбору групп
func HandleLectures(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, _ service.SubjectForm) {
		n, err := parseNumber(callback.Data, common.FormLectures)
		if err == nil {
			err = service.CheckLecturesPerWeek(n)
		}
		if err != nil {
			hc.AnswerError("Invalid lectures per week", err)
			return
		}

		form, ok := h.StateManager.UpdateForm(hc.TelegramID, func(f *service.SubjectForm) {
			f.LecturesPerWeek = n
		})
		if !ok {
			hc.AnswerError("Form disappeared", common.ErrNoActiveDialog)
			return
		}

		hc.SetState(state.StateSubjectScope)
		hc.Answer("")
		text, kb := common.ScopePickerScreen(h.TimetableService.Catalog(), form)
		hc.ShowScreen(text, kb)
	})
}

// HandleScope сохраняет режим групп. ALL сразу отправляет предмет,
// остальные режимы открывают выбор групп.
func HandleScope(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, _ service.SubjectForm) {
		raw, err := common.ArgFromCallback(callback.Data, common.FormScope)
		if err != nil {
			hc.AnswerError("Invalid scope callback", err)
			return
		}
		scope := model.SectionScope(raw)
		if !scope.Valid() {
			hc.AnswerError("Unknown scope", common.ErrInvalidFormat)
			return
		}

		form, ok := h.StateManager.UpdateForm(hc.TelegramID, func(f *service.SubjectForm) {
			f.Scope = scope
			if scope == model.ScopeAll {
				f.SelectedSections = nil
			}
		})
		if !ok {
			hc.AnswerError("Form disappeared", common.ErrNoActiveDialog)
			return
		}

		if scope == model.ScopeAll {
			submit(hc, form)
			return
		}

		hc.SetState(state.StateSubjectSections)
		hc.SetData(state.KeySectionPage, 0)
		hc.Answer("")
		showSectionPicker(hc, form)
	})
}

// HandleBackToScope возвращает к выбору режима групп
func HandleBackToScope(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithForm(ctx, b, callback, h, func(hc *common.HandlerContext, form service.SubjectForm) {
		hc.SetState(state.StateSubjectScope)
		hc.Answer("")
		text, kb := common.ScopePickerScreen(h.TimetableService.Catalog(), form)
		hc.ShowScreen(text, kb)
	})
}

// HandleCancel прерывает диалог, очередь не меняется
func HandleCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	hc.ClearState()

	h.Logger.Info("Subject dialog canceled", zap.Int64("telegram_id", hc.TelegramID))

	hc.Answer("Отменено")
	hc.ShowScreen("❌ Добавление предмета отменено.\n\nОчередь: /queue", nil)
}

func parseNumber(data, prefix string) (int, error) {
	raw, err := common.ArgFromCallback(data, prefix)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.ErrInvalidFormat
	}
	return n, nil
}
