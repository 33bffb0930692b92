package timetable

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleImage отправляет неделю группы картинкой
// Формат: tt_img:run_id:section_index
func HandleImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	ids, err := common.ParseIDsFromCallback(callback.Data, 2)
	if err != nil {
		common.NewHandlerContext(ctx, b, callback, h).AnswerError("Invalid image callback", err)
		return
	}

	common.WithRun(ctx, b, callback, h, ids[0], func(hc *common.HandlerContext, run *model.TimetableRun, projector *service.Projector) {
		section, ok := sectionAt(projector, int(ids[1]))
		if !ok {
			hc.AnswerError("Section index out of range", common.ErrSectionNotFound)
			return
		}

		hc.Answer("🖼 Рисую...")

		data, err := common.GenerateSectionWeekImage(section, projector.ForSection(section))
		if err != nil {
			h.Logger.Error("Failed to render week image",
				zap.Int64("run_id", run.ID),
				zap.String("section", section),
				zap.Error(err))
			_ = hc.SendMessage("❌ Не удалось нарисовать расписание", nil)
			return
		}

		caption := fmt.Sprintf("🗓 Группа <b>%s</b>", html.EscapeString(section))
		if err := hc.SendPhoto(fmt.Sprintf("timetable_%d.png", run.ID), data, caption); err != nil {
			h.Logger.Error("Failed to send week image",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
		}
	})
}
