package queue

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleGenerate отправляет очередь в сервис расписания.
// Результат приходит новым сообщением, экран очереди остаётся.
func HandleGenerate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	if len(h.TimetableService.Queue(hc.TelegramID)) == 0 {
		hc.AnswerAlert(common.ErrorMessage(service.ErrEmptyQueue))
		return
	}

	hc.Answer("⏳ Генерирую расписание...")

	text, kb := GenerateScreen(ctx, h.TimetableService, hc.TelegramID, h.Logger)
	if err := hc.SendMessage(text, kb); err != nil {
		h.Logger.Error("Failed to send generation result",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// GenerateScreen запускает генерацию и возвращает экран с результатом или ошибкой.
// Используется и кнопкой, и командой /generate.
func GenerateScreen(ctx context.Context, svc *service.TimetableService, telegramID int64, logger *zap.Logger) (string, *models.InlineKeyboardMarkup) {
	run, err := svc.Generate(ctx, telegramID)
	if err != nil {
		logger.Warn("Generation failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return common.GenerationFailedText(err, hasPreviousRun(ctx, svc, telegramID)), nil
	}

	var entries []model.TimetableEntry
	if run.Result != nil {
		entries = run.Result.Timetable
	}
	return common.GenerationScreen(run, service.NewProjector(entries).SectionsPresent())
}

func hasPreviousRun(ctx context.Context, svc *service.TimetableService, telegramID int64) bool {
	run, err := svc.LatestRun(ctx, telegramID)
	return err == nil && run != nil
}
