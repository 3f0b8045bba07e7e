package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mihppk/college_bot/internal/model"
	"github.com/mihppk/college_bot/internal/repository/base"
)

type AnnouncementRepository struct {
	*base.Repository
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет объявление
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	query := `
		INSERT INTO announcements (text)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query, announcement.Text).Scan(
		&announcement.ID,
		&announcement.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}

	return nil
}

// ListAll получает все объявления строго по убыванию даты
func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]*model.Announcement, error) {
	query := `
		SELECT id, text, created_at
		FROM announcements
		ORDER BY created_at DESC
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*model.Announcement
	for rows.Next() {
		var announcement model.Announcement
		if err := rows.Scan(&announcement.ID, &announcement.Text, &announcement.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		announcements = append(announcements, &announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}

	return announcements, nil
}
