package queue

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleShow показывает очередь предметов
func HandleShow(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	hc.Answer("")
	showQueue(hc)
}

// HandleAdd начинает диалог добавления предмета
func HandleAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	if err := h.TimetableService.EnsureCatalog(ctx); err != nil {
		hc.AnswerError("Reference data unavailable", err)
		return
	}

	h.StateManager.StartForm(hc.TelegramID, state.StateSubjectName)
	hc.Answer("")

	kb := keyboard.NewBuilder().AddCancelButton(common.FormCancel).Build()
	if err := hc.SendMessage(common.NamePrompt(), kb); err != nil {
		h.Logger.Error("Failed to send name prompt",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// HandleRemove удаляет предмет по позиции в очереди
func HandleRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	position, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.AnswerError("Invalid remove callback", err)
		return
	}

	// Кнопка со старого экрана может указывать за конец очереди - это не ошибка
	if h.TimetableService.RemoveSubject(hc.TelegramID, int(position)) {
		hc.Answer("🗑 Удалено")
	} else {
		hc.Answer("Этого предмета уже нет в очереди")
	}
	showQueue(hc)
}

// HandleClear очищает очередь
func HandleClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	h.TimetableService.ClearQueue(hc.TelegramID)
	h.Logger.Info("Queue cleared", zap.Int64("telegram_id", hc.TelegramID))

	hc.Answer("🧹 Очередь очищена")
	showQueue(hc)
}

func showQueue(hc *common.HandlerContext) {
	svc := hc.Handler.TimetableService
	text, kb := common.QueueScreen(svc.Queue(hc.TelegramID), svc.Catalog())
	hc.ShowScreen(text, kb)
}
