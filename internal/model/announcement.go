package model

import "time"

// Announcement — объявление для всех учащихся, только добавляется
type Announcement struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupStat — количество участников в группе (для статистики админа)
type GroupStat struct {
	Group string `json:"group"`
	Count int64  `json:"count"`
}
