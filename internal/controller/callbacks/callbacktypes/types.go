package callbacktypes

import (
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"go.uber.org/zap"
)

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) state.UserState
	SetState(telegramID int64, s state.UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
	GetInt(telegramID int64, key string) (int, bool)
	StartForm(telegramID int64, s state.UserState)
	Form(telegramID int64) (service.SubjectForm, bool)
	UpdateForm(telegramID int64, fn func(form *service.SubjectForm)) (service.SubjectForm, bool)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	TimetableService *service.TimetableService
	StateManager     StateManager
	Logger           *zap.Logger
}
