package service

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogNotReady справочник ещё ни разу не загрузился, добавлять предметы рано
	ErrCatalogNotReady = errors.New("reference data is not loaded yet")
	ErrEmptyQueue      = errors.New("subject queue is empty")
	ErrRunNotFound     = errors.New("no generated timetable")
)

// ValidationError ошибка заполнения формы предмета. Очередь при этом не меняется.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError проверяет, что err (или обёрнутая в неё ошибка) - ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
