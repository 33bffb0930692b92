package model

import (
	"encoding/json"
	"time"
)

// TimetableRun результат успешной генерации, сохранённый для просмотра
type TimetableRun struct {
	ID         int64             `json:"id"`
	TelegramID int64             `json:"telegram_id"`
	Requests   []ExpandedRequest `json:"requests"`
	Result     *GenerationResult `json:"-"`
	RawResult  json.RawMessage   `json:"result"` // тело ответа бэкенда как есть
	CreatedAt  time.Time         `json:"created_at"`
}
