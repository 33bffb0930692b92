package state

import (
	"sync"

	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

func (sm *Manager) entry(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		sm.states[telegramID] = userData
	}
	return userData
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя. Черновик и данные сохраняются.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).State = state
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return nil, false
}

// GetInt получает целое значение; ok == false, если ключа нет или тип другой
func (sm *Manager) GetInt(telegramID int64, key string) (int, bool) {
	value, ok := sm.GetData(telegramID, key)
	if !ok {
		return 0, false
	}
	n, ok := value.(int)
	return n, ok
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).Data[key] = value
}

// StartForm начинает новый черновик предмета, сбрасывая предыдущий диалог
func (sm *Manager) StartForm(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[telegramID] = &UserData{
		State: state,
		Form:  &service.SubjectForm{},
		Data:  make(map[string]interface{}),
	}
}

// Form возвращает копию черновика
func (sm *Manager) Form(telegramID int64) (service.SubjectForm, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[telegramID]
	if !exists || userData.Form == nil {
		return service.SubjectForm{}, false
	}
	return copyForm(userData.Form), true
}

// UpdateForm изменяет черновик под блокировкой и возвращает его копию.
// Если диалог не начат, fn не вызывается.
func (sm *Manager) UpdateForm(telegramID int64, fn func(form *service.SubjectForm)) (service.SubjectForm, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData, exists := sm.states[telegramID]
	if !exists || userData.Form == nil {
		return service.SubjectForm{}, false
	}
	fn(userData.Form)
	return copyForm(userData.Form), true
}

// ClearState очищает состояние и данные пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

// GetAllData получает все временные данные пользователя
func (sm *Manager) GetAllData(telegramID int64) map[string]interface{} {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		// Возвращаем копию, чтобы избежать race condition
		dataCopy := make(map[string]interface{}, len(userData.Data))
		for k, v := range userData.Data {
			dataCopy[k] = v
		}
		return dataCopy
	}
	return nil
}

func copyForm(form *service.SubjectForm) service.SubjectForm {
	c := *form
	c.FacultyIDs = append([]int64(nil), form.FacultyIDs...)
	c.SelectedSections = append([]int64(nil), form.SelectedSections...)
	return c
}
