package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseIDFromCallback извлекает ID из callback data
// Например: "form_fac:123" -> 123
func ParseIDFromCallback(data string) (int64, error) {
	ids, err := ParseIDsFromCallback(data, 1)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// ParseIDsFromCallback извлекает n числовых аргументов после префикса
// Например: "tt_sec:12:3" -> [12, 3]
func ParseIDsFromCallback(data string, n int) ([]int64, error) {
	parts := strings.Split(data, ":")
	if len(parts) != n+1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}

	ids := make([]int64, n)
	for i, raw := range parts[1:] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
		}
		ids[i] = id
	}
	return ids, nil
}

// ArgFromCallback возвращает строковый аргумент после префикса
// Например: "form_scope:ALL" -> "ALL"
func ArgFromCallback(data, prefix string) (string, error) {
	if !strings.HasPrefix(data, prefix) || len(data) == len(prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return strings.TrimPrefix(data, prefix), nil
}

// IsMessageNotModifiedError Telegram отвечает так, если новый текст совпадает со старым
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// PageBounds возвращает границы страницы [from, to), номер страницы,
// приведённый к допустимому диапазону, и число страниц
func PageBounds(total, page, pageSize int) (from, to, current, pages int) {
	pages = (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= pages {
		page = pages - 1
	}

	from = page * pageSize
	to = from + pageSize
	if to > total {
		to = total
	}
	return from, to, page, pages
}
