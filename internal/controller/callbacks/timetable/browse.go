package timetable

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlePage показывает страницу списка групп
// Формат: tt_page:run_id:page
func HandlePage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	ids, err := common.ParseIDsFromCallback(callback.Data, 2)
	if err != nil {
		common.NewHandlerContext(ctx, b, callback, h).AnswerError("Invalid timetable page callback", err)
		return
	}

	common.WithRun(ctx, b, callback, h, ids[0], func(hc *common.HandlerContext, run *model.TimetableRun, projector *service.Projector) {
		hc.Answer("")
		text, kb := common.TimetableScreen(run, projector.SectionsPresent(), int(ids[1]))
		hc.ShowScreen(text, kb)
	})
}

// HandleSection показывает занятия выбранной группы
// Формат: tt_sec:run_id:section_index
func HandleSection(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	ids, err := common.ParseIDsFromCallback(callback.Data, 2)
	if err != nil {
		common.NewHandlerContext(ctx, b, callback, h).AnswerError("Invalid section callback", err)
		return
	}

	common.WithRun(ctx, b, callback, h, ids[0], func(hc *common.HandlerContext, run *model.TimetableRun, projector *service.Projector) {
		index := int(ids[1])
		section, ok := sectionAt(projector, index)
		if !ok {
			hc.AnswerError("Section index out of range", common.ErrSectionNotFound)
			return
		}

		hc.Answer("")
		text, kb := common.SectionScreen(run.ID, index, section, projector.ForSection(section))
		hc.ShowScreen(text, kb)
	})
}

// HandleSkipped показывает занятия, которые сервис не смог разместить
// Формат: tt_skipped:run_id
func HandleSkipped(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	runID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.NewHandlerContext(ctx, b, callback, h).AnswerError("Invalid skipped callback", err)
		return
	}

	common.WithRun(ctx, b, callback, h, runID, func(hc *common.HandlerContext, run *model.TimetableRun, _ *service.Projector) {
		hc.Answer("")
		text, kb := common.SkippedScreen(run, h.TimetableService.Catalog())
		hc.ShowScreen(text, kb)
	})
}

// HandleSearch включает поиск группы по тексту
// Формат: tt_search:run_id
func HandleSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	runID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.NewHandlerContext(ctx, b, callback, h).AnswerError("Invalid search callback", err)
		return
	}

	common.WithRun(ctx, b, callback, h, runID, func(hc *common.HandlerContext, run *model.TimetableRun, _ *service.Projector) {
		// Поиск прерывает незаконченный диалог добавления предмета
		hc.ClearState()
		hc.SetState(state.StateSectionSearch)
		hc.SetData(state.KeyRunID, int(run.ID))

		hc.Answer("")
		kb := keyboard.NewBuilder().AddBackButton(common.TimetablePageData(run.ID, 0)).Build()
		if err := hc.SendMessage(common.SearchPrompt(), kb); err != nil {
			h.Logger.Error("Failed to send search prompt",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
		}
	})
}

func sectionAt(projector *service.Projector, index int) (string, bool) {
	sections := projector.SectionsPresent()
	if index < 0 || index >= len(sections) {
		return "", false
	}
	return sections[index], true
}
