package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/form"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/queue"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/timetable"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Common Navigation =====
	case data == common.Noop:
		// No operation - просто подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")
	case data == common.BackToMain:
		handleBackToMain(ctx, b, callback, h)

	// ===== Subject Dialog =====
	case strings.HasPrefix(data, common.FormFacultyPage):
		form.HandleFacultyPage(ctx, b, callback, h)
	case data == common.FormFacultyDone:
		form.HandleFacultyDone(ctx, b, callback, h)
	case strings.HasPrefix(data, common.FormFaculty):
		form.HandleFacultyToggle(ctx, b, callback, h)
	case strings.HasPrefix(data, common.FormDuration):
		form.HandleDuration(ctx, b, callback, h)
	case strings.HasPrefix(data, common.FormLectures):
		form.HandleLectures(ctx, b, callback, h)
	case strings.HasPrefix(data, common.FormScope):
		form.HandleScope(ctx, b, callback, h)
	case strings.HasPrefix(data, common.FormSectionPage):
		form.HandleSectionPage(ctx, b, callback, h)
	case data == common.FormSectionDone:
		form.HandleSectionDone(ctx, b, callback, h)
	case strings.HasPrefix(data, common.FormSection):
		form.HandleSectionToggle(ctx, b, callback, h)
	case data == common.FormBackToScope:
		form.HandleBackToScope(ctx, b, callback, h)
	case data == common.FormCancel:
		form.HandleCancel(ctx, b, callback, h)

	// ===== Subject Queue =====
	case data == common.QueueShow:
		queue.HandleShow(ctx, b, callback, h)
	case data == common.QueueAdd:
		queue.HandleAdd(ctx, b, callback, h)
	case strings.HasPrefix(data, common.QueueRemove):
		queue.HandleRemove(ctx, b, callback, h)
	case data == common.QueueClear:
		queue.HandleClear(ctx, b, callback, h)
	case data == common.QueueGenerate:
		queue.HandleGenerate(ctx, b, callback, h)

	// ===== Timetable =====
	case strings.HasPrefix(data, common.TimetablePage):
		timetable.HandlePage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.TimetableSection):
		timetable.HandleSection(ctx, b, callback, h)
	case strings.HasPrefix(data, common.TimetableImage):
		timetable.HandleImage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.TimetableSearch):
		timetable.HandleSearch(ctx, b, callback, h)
	case strings.HasPrefix(data, common.TimetableSkipped):
		timetable.HandleSkipped(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}

// handleBackToMain возвращает в главное меню и сбрасывает диалог
func handleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	hc.ClearState()
	hc.Answer("")
	hc.ShowScreen(common.MainMenuText(), nil)
}
