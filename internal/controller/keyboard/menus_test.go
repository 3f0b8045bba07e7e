package keyboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mihppk/college_bot/internal/model"
)

func TestMainMenuLayout(t *testing.T) {
	menu := MainMenu()

	require.True(t, menu.ResizeKeyboard)
	require.Len(t, menu.Keyboard, 3)
	require.Equal(t, BtnViewSchedule, menu.Keyboard[0][0].Text)
	require.Equal(t, BtnHelp, menu.Keyboard[2][1].Text)
}

func TestAdminMenuLayout(t *testing.T) {
	menu := AdminMenu()

	require.Len(t, menu.Keyboard, 4)
	require.Equal(t, BtnBack, menu.Keyboard[3][0].Text)
}

func TestGroupSelectCallbackData(t *testing.T) {
	markup := GroupSelect(func(group string) string {
		return "clear_group_" + group
	})

	require.Len(t, markup.InlineKeyboard, len(model.Groups))
	for i, g := range model.Groups {
		row := markup.InlineKeyboard[i]
		require.Len(t, row, 1)
		require.Equal(t, g, row[0].Text)
		require.Equal(t, "clear_group_"+g, row[0].CallbackData)
	}
}
