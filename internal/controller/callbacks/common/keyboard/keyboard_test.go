package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("p:", 0, 1))

	first := PaginationButtons("p:", 0, 3)
	require.Len(t, first, 2)
	assert.Equal(t, "noop", first[0].CallbackData)
	assert.Equal(t, "p:1", first[1].CallbackData)

	middle := PaginationButtons("p:", 1, 3)
	require.Len(t, middle, 3)
	assert.Equal(t, "p:0", middle[0].CallbackData)
	assert.Equal(t, "📄 2/3", middle[1].Text)

	last := PaginationButtons("p:", 2, 3)
	require.Len(t, last, 2)
	assert.Equal(t, "p:1", last[0].CallbackData)
}

func TestBuilderGrid(t *testing.T) {
	kb := NewBuilder().
		Grid(2, Button("a", "a"), Button("b", "b"), Button("c", "c")).
		Row().
		AddCancelButton("cancel").
		Build()

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)
	assert.Equal(t, "cancel", kb.InlineKeyboard[2][0].CallbackData)
}

func TestToggleButton(t *testing.T) {
	assert.Equal(t, "✅ A1", ToggleButton("A1", true, "x").Text)
	assert.Equal(t, "▫️ A1", ToggleButton("A1", false, "x").Text)
}
