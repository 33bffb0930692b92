package handlers

import (
	"context"
	"errors"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/queue"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.logger.Info("User started bot",
		zap.Int64("telegram_id", update.Message.From.ID),
		zap.String("username", update.Message.From.Username))

	// Справочник подгружается заранее, чтобы диалог добавления не ждал
	if err := h.timetableService.EnsureCatalog(ctx); err != nil {
		h.logger.Warn("Reference data not ready on start", zap.Error(err))
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, common.MainMenuText(), nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := common.MainMenuText() + "\n\n" +
		"<b>Как это работает</b>\n" +
		"1. Добавьте предметы: название, преподаватели, длительность, число занятий в неделю и группы.\n" +
		"2. Предмет с тем же названием и теми же группами заменяет прежний.\n" +
		"3. /generate отправляет очередь в сервис расписания.\n" +
		"4. В /timetable выберите группу, чтобы увидеть её неделю."

	h.sendHTML(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleAddSubject начинает диалог добавления предмета
func (h *Handlers) HandleAddSubject(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if err := h.timetableService.EnsureCatalog(ctx); err != nil {
		h.logger.Warn("Cannot start subject dialog", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	h.stateManager.StartForm(telegramID, state.StateSubjectName)

	h.logger.Info("Starting subject dialog", zap.Int64("telegram_id", telegramID))

	kb := keyboard.NewBuilder().AddCancelButton(common.FormCancel).Build()
	h.sendHTML(ctx, b, chatID, common.NamePrompt(), kb)
}

// HandleQueue показывает очередь предметов
func (h *Handlers) HandleQueue(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text, kb := common.QueueScreen(
		h.timetableService.Queue(update.Message.From.ID),
		h.timetableService.Catalog())
	h.sendHTML(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleGenerate отправляет очередь в сервис расписания
func (h *Handlers) HandleGenerate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if len(h.timetableService.Queue(telegramID)) == 0 {
		h.sendError(ctx, b, chatID, common.ErrorMessage(service.ErrEmptyQueue))
		return
	}

	h.sendTyping(ctx, b, chatID)
	text, kb := queue.GenerateScreen(ctx, h.timetableService, telegramID, h.logger)
	h.sendHTML(ctx, b, chatID, text, kb)
}

// HandleTimetable показывает последнее сгенерированное расписание
func (h *Handlers) HandleTimetable(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	run, projector, err := h.timetableService.Projection(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, service.ErrRunNotFound) {
			h.logger.Error("Failed to load timetable", zap.Int64("telegram_id", telegramID), zap.Error(err))
		}
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text, kb := common.TimetableScreen(run, projector.SectionsPresent(), 0)
	h.sendHTML(ctx, b, chatID, text, kb)
}

// HandleReload перезагружает справочник из сервиса расписания
func (h *Handlers) HandleReload(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	if err := h.timetableService.RefreshCatalog(ctx); err != nil {
		text := common.ErrorMessage(err)
		if h.timetableService.Catalog().Ready() {
			text += "\n\nИспользуется ранее загруженный справочник."
		}
		h.sendError(ctx, b, chatID, text)
		return
	}

	h.sendHTML(ctx, b, chatID, common.CatalogSummaryText(h.timetableService.Catalog().Snapshot()), nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	// Очищаем состояние, очередь остаётся как была
	h.stateManager.ClearState(telegramID)

	h.sendHTML(ctx, b, update.Message.Chat.ID,
		"✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.", nil)
}
