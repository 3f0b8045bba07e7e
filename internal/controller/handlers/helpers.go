package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"

	"github.com/mihppk/college_bot/internal/model"
)

// sendText отправляет простое текстовое сообщение
func sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

// FormatSchedule форматирует расписание группы для отображения
func FormatSchedule(group string, entries []*model.ScheduleEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Расписание для группы %s:\n\n", group)

	for _, entry := range entries {
		fmt.Fprintf(&sb, "День: %s\nВремя: %s\nПредмет: %s\nМестоположение: %s\n\n",
			entry.Day, entry.Time, entry.Subject, entry.Location)
	}

	return sb.String()
}

// FormatAnnouncements форматирует список объявлений (порядок сохраняется)
func FormatAnnouncements(announcements []*model.Announcement) string {
	lines := make([]string, 0, len(announcements))
	for _, a := range announcements {
		lines = append(lines, fmt.Sprintf("%s - %s", a.CreatedAt.Format("02.01.2006 15:04"), a.Text))
	}

	return "Объявления:\n" + strings.Join(lines, "\n\n")
}

// FormatGroupStats форматирует статистику по группам
func FormatGroupStats(stats []model.GroupStat) string {
	var sb strings.Builder
	sb.WriteString("📊 Статистика по группам:\n\n")

	for _, stat := range stats {
		fmt.Fprintf(&sb, "Группа %s: %d участников\n", stat.Group, stat.Count)
	}

	return sb.String()
}
