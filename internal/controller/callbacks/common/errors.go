package common

import (
	"errors"

	"github.com/Freeeeeet/timetable_bot/internal/schedulerapi"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage       = errors.New("no message in callback")
	ErrInvalidFormat   = errors.New("invalid callback format")
	ErrNoActiveDialog  = errors.New("no active subject dialog")
	ErrStaleTimetable  = errors.New("timetable was regenerated")
	ErrSectionNotFound = errors.New("section not found in timetable")
	ErrNothingSelected = errors.New("nothing selected")
)

// validationHints подсказки по полям формы предмета
var validationHints = map[string]string{
	"name":     "❌ Название не может быть пустым и должно быть не длиннее 100 символов.",
	"faculty":  "❌ Выберите хотя бы одного преподавателя.",
	"duration": "❌ Длительность занятия - целое число слотов от 1 до 8.",
	"lectures": "❌ Число занятий в неделю - целое число от 1 до 14.",
	"scope":    "❌ Выберите, для каких групп предмет: все, выбранные или все кроме выбранных.",
	"sections": "❌ Выберите хотя бы одну группу.",
}

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		if hint, ok := validationHints[vErr.Field]; ok {
			return hint
		}
		return "❌ Проверьте введённые данные"
	}

	switch {
	case errors.Is(err, service.ErrCatalogNotReady):
		return "⏳ Справочник ещё не загружен. Попробуйте через минуту или выполните /reload"
	case errors.Is(err, service.ErrEmptyQueue):
		return "📭 Очередь пуста. Добавьте предмет через /addsubject"
	case errors.Is(err, service.ErrRunNotFound):
		return "📭 Расписание ещё не сгенерировано. Используйте /generate"
	case schedulerapi.IsNetworkError(err):
		return "❌ Сервис расписания недоступен. Попробуйте позже."
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, ErrNoActiveDialog):
		return "❌ Диалог уже завершён. Начните заново: /addsubject"
	case errors.Is(err, ErrStaleTimetable):
		return "🔄 Расписание обновилось. Откройте его заново: /timetable"
	case errors.Is(err, ErrSectionNotFound):
		return "❌ Группа не найдена в расписании"
	case errors.Is(err, ErrNothingSelected):
		return "❌ Ничего не выбрано"
	default:
		return "❌ Произошла ошибка"
	}
}
