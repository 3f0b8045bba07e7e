package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mihppk/college_bot/internal/model"
)

func TestFormatSchedule(t *testing.T) {
	entries := []*model.ScheduleEntry{
		{Day: "Monday", Time: "09:00", Subject: "Math", Location: "Room 4"},
		{Day: "Tuesday", Time: "10:30", Subject: "Physics", Location: "Room 7"},
	}

	text := FormatSchedule("11Т", entries)

	require.Contains(t, text, "Расписание для группы 11Т:")
	require.Contains(t, text, "День: Monday\nВремя: 09:00\nПредмет: Math\nМестоположение: Room 4")
	require.Contains(t, text, "День: Tuesday\nВремя: 10:30\nПредмет: Physics\nМестоположение: Room 7")
}

func TestFormatAnnouncementsPreservesOrder(t *testing.T) {
	newer := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	// Хранилище отдаёт объявления по убыванию даты; форматирование
	// обязано сохранить порядок
	text := FormatAnnouncements([]*model.Announcement{
		{Text: "Новое объявление", CreatedAt: newer},
		{Text: "Старое объявление", CreatedAt: older},
	})

	require.Contains(t, text, "01.09.2026 12:00 - Новое объявление")
	require.Contains(t, text, "30.08.2026 09:00 - Старое объявление")
	require.Less(t,
		strings.Index(text, "Новое объявление"),
		strings.Index(text, "Старое объявление"))
}

func TestFormatGroupStats(t *testing.T) {
	text := FormatGroupStats([]model.GroupStat{
		{Group: "11Т", Count: 5},
		{Group: "21Т", Count: 3},
	})

	require.Contains(t, text, "📊 Статистика по группам:")
	require.Contains(t, text, "Группа 11Т: 5 участников")
	require.Contains(t, text, "Группа 21Т: 3 участников")
}
