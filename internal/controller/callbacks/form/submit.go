package form

import (
	"errors"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"go.uber.org/zap"
)

// submit добавляет предмет в очередь. Ошибка проверки оставляет диалог открытым,
// чтобы пользователь мог исправить выбор.
func submit(hc *common.HandlerContext, form service.SubjectForm) {
	svc := hc.Handler.TimetableService

	result, subject, err := svc.SubmitSubject(hc.Ctx, hc.TelegramID, form)
	if err != nil {
		if service.IsValidationError(err) || errors.Is(err, service.ErrCatalogNotReady) {
			hc.Handler.Logger.Debug("Subject rejected",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}
		hc.AnswerError("Failed to submit subject", err)
		return
	}

	hc.ClearState()
	hc.Answer("Готово")

	text, kb := common.QueueScreen(svc.Queue(hc.TelegramID), svc.Catalog())
	hc.ShowScreen(common.SubmitResultText(result, subject)+"\n\n"+text, kb)
}
