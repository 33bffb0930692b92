package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		return
	case state.StateSubjectName:
		h.handleSubjectNameStep(ctx, b, update)
	case state.StateSubjectDuration:
		h.handleSubjectDurationStep(ctx, b, update)
	case state.StateSubjectLectures:
		h.handleSubjectLecturesStep(ctx, b, update)
	case state.StateSectionSearch:
		h.handleSectionSearch(ctx, b, update)
	case state.StateSubjectFaculty, state.StateSubjectScope, state.StateSubjectSections:
		h.sendError(ctx, b, update.Message.Chat.ID,
			"👆 На этом шаге выберите вариант кнопками выше.\n\nДля отмены используйте /cancel")
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

// handleSubjectNameStep обрабатывает ввод названия предмета
func (h *Handlers) handleSubjectNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	name := strings.TrimSpace(update.Message.Text)

	if err := service.CheckName(name); err != nil {
		h.logger.Debug("Invalid subject name", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err)+"\n\nПопробуйте ещё раз:")
		return
	}

	form, ok := h.stateManager.UpdateForm(telegramID, func(f *service.SubjectForm) {
		f.Name = name
	})
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(common.ErrNoActiveDialog))
		return
	}

	h.stateManager.SetState(telegramID, state.StateSubjectFaculty)
	h.stateManager.SetData(telegramID, state.KeyFacultyPage, 0)

	text, kb := common.FacultyPickerScreen(h.timetableService.Catalog(), form, 0)
	h.sendHTML(ctx, b, update.Message.Chat.ID, text, kb)
}

// handleSubjectDurationStep длительность можно ввести числом вместо кнопки
func (h *Handlers) handleSubjectDurationStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	n, err := parseCount(update.Message.Text)
	if err == nil {
		err = service.CheckSlotDuration(n)
	}
	if err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(&service.ValidationError{Field: "duration"})+"\n\nПопробуйте ещё раз:")
		return
	}

	form, ok := h.stateManager.UpdateForm(telegramID, func(f *service.SubjectForm) {
		f.SlotDuration = n
	})
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(common.ErrNoActiveDialog))
		return
	}

	h.stateManager.SetState(telegramID, state.StateSubjectLectures)

	text, kb := common.LecturesPickerScreen(h.timetableService.Catalog(), form)
	h.sendHTML(ctx, b, update.Message.Chat.ID, text, kb)
}

// handleSubjectLecturesStep число занятий в неделю, в том числе больше, чем есть на кнопках
func (h *Handlers) handleSubjectLecturesStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	n, err := parseCount(update.Message.Text)
	if err == nil {
		err = service.CheckLecturesPerWeek(n)
	}
	if err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(&service.ValidationError{Field: "lectures"})+"\n\nПопробуйте ещё раз:")
		return
	}

	form, ok := h.stateManager.UpdateForm(telegramID, func(f *service.SubjectForm) {
		f.LecturesPerWeek = n
	})
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(common.ErrNoActiveDialog))
		return
	}

	h.stateManager.SetState(telegramID, state.StateSubjectScope)

	text, kb := common.ScopePickerScreen(h.timetableService.Catalog(), form)
	h.sendHTML(ctx, b, update.Message.Chat.ID, text, kb)
}

// handleSectionSearch ищет группы в расписании, на котором был начат поиск
func (h *Handlers) handleSectionSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	query := strings.TrimSpace(update.Message.Text)

	runID, ok := h.stateManager.GetInt(telegramID, state.KeyRunID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrStaleTimetable))
		return
	}

	run, projector, err := h.timetableService.Projection(ctx, telegramID)
	if err != nil {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}
	if run.ID != int64(runID) {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrStaleTimetable))
		return
	}

	text, kb := common.SearchResultsScreen(run.ID, query, projector.SearchSections(query), projector.SectionsPresent())
	h.sendHTML(ctx, b, chatID, text, kb)
}

func parseCount(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}
