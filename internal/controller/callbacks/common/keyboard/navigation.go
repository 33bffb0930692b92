package keyboard

import "github.com/go-telegram/bot/models"

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Назад", callbackData)
}

// CancelButton создаёт кнопку "Отмена"
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Отмена", callbackData)
}

// DoneButton создаёт кнопку "Готово"
func DoneButton(callbackData string) models.InlineKeyboardButton {
	return Button("✅ Готово", callbackData)
}

// AddBackButton добавляет кнопку "Назад" к builder
func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

// AddCancelButton добавляет кнопку "Отмена" к builder
func (b *Builder) AddCancelButton(callbackData string) *Builder {
	return b.Row(CancelButton(callbackData))
}
