package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/model"
)

// AnnouncementStore — операции хранилища объявлений
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	ListAll(ctx context.Context) ([]*model.Announcement, error)
}

type AnnouncementService struct {
	announcements AnnouncementStore
	logger        *zap.Logger
}

func NewAnnouncementService(announcements AnnouncementStore, logger *zap.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		logger:        logger,
	}
}

// Publish сохраняет объявление
func (s *AnnouncementService) Publish(ctx context.Context, text string) (*model.Announcement, error) {
	announcement := &model.Announcement{Text: text}

	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("publish announcement: %w", err)
	}

	s.logger.Info("Announcement published", zap.Int64("id", announcement.ID))
	return announcement, nil
}

// List получает объявления строго по убыванию даты
func (s *AnnouncementService) List(ctx context.Context) ([]*model.Announcement, error) {
	return s.announcements.ListAll(ctx)
}
