package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/model"
)

// UserStore — операции хранилища привязок пользователей к группам
type UserStore interface {
	UpsertGroup(ctx context.Context, telegramID int64, group string) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	ListByGroup(ctx context.Context, group string) ([]*model.User, error)
	ListAll(ctx context.Context) ([]*model.User, error)
	CountByGroup(ctx context.Context) ([]model.GroupStat, error)
}

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// SetGroup привязывает пользователя к группе (upsert по telegram_id)
func (s *UserService) SetGroup(ctx context.Context, telegramID int64, group string) error {
	if !model.IsValidGroup(group) {
		return fmt.Errorf("unknown group code: %q", group)
	}

	if err := s.users.UpsertGroup(ctx, telegramID, group); err != nil {
		return fmt.Errorf("set group: %w", err)
	}

	s.logger.Info("User group updated",
		zap.Int64("telegram_id", telegramID),
		zap.String("group", group),
	)

	return nil
}

// GetByTelegramID получает привязку пользователя (nil, если группа не выбрана)
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.users.GetByTelegramID(ctx, telegramID)
}

// ListByGroup получает всех участников группы
func (s *UserService) ListByGroup(ctx context.Context, group string) ([]*model.User, error) {
	return s.users.ListByGroup(ctx, group)
}

// ListAll получает всех пользователей (для рассылки объявлений)
func (s *UserService) ListAll(ctx context.Context) ([]*model.User, error) {
	return s.users.ListAll(ctx)
}

// GroupStats считает участников по группам
func (s *UserService) GroupStats(ctx context.Context) ([]model.GroupStat, error) {
	stats, err := s.users.CountByGroup(ctx)
	if err != nil {
		return nil, fmt.Errorf("group stats: %w", err)
	}
	return stats, nil
}
