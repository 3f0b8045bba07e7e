package model

import "time"

// User — привязка Telegram-пользователя к учебной группе
type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Group      string    `json:"group"` // пустая строка - группа не выбрана
	CreatedAt  time.Time `json:"created_at"`
}
