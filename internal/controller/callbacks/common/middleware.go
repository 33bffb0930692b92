package common

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithForm создаёт HandlerContext и проверяет, что идёт диалог добавления предмета
// При ошибке автоматически отвечает пользователю
func WithForm(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext, service.SubjectForm),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	form, ok := h.StateManager.Form(hc.TelegramID)
	if !ok || !h.StateManager.GetState(hc.TelegramID).IsSubjectDialog() {
		h.Logger.Debug("Form callback without active dialog",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("data", callback.Data))
		hc.AnswerAlert(ErrorMessage(ErrNoActiveDialog))
		return
	}

	handler(hc, form)
}

// WithRun создаёт HandlerContext и загружает расписание, на которое ссылается кнопка.
// Кнопки от предыдущей генерации отклоняются.
func WithRun(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	runID int64,
	handler func(*HandlerContext, *model.TimetableRun, *service.Projector),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	run, projector, err := h.TimetableService.Projection(ctx, hc.TelegramID)
	if err != nil {
		hc.AnswerError("Failed to load timetable", err)
		return
	}
	if run.ID != runID {
		hc.AnswerError("Stale timetable button", ErrStaleTimetable)
		return
	}

	handler(hc, run, projector)
}
