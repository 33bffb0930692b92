package schedulerapi

import (
	"errors"
	"fmt"
)

// Error сетевая ошибка обращения к бэкенду расписания:
// сбой транспорта, ответ не 2xx или некорректный JSON
type Error struct {
	Op         string // reference-data, generate-timetable
	StatusCode int    // 0, если ответа не было
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode >= 300 && e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.StatusCode >= 300:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetworkError проверяет, что ошибка пришла от клиента бэкенда
func IsNetworkError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
