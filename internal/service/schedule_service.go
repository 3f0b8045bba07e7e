package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/model"
)

// ScheduleStore — операции хранилища расписаний
type ScheduleStore interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	ListByGroup(ctx context.Context, group string) ([]*model.ScheduleEntry, error)
	GetByGroupDay(ctx context.Context, group, day string) (*model.ScheduleEntry, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
}

type ScheduleService struct {
	schedules ScheduleStore
	logger    *zap.Logger
}

func NewScheduleService(schedules ScheduleStore, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		logger:    logger,
	}
}

// Add сохраняет новую строку расписания.
// Поля не валидируются: что прислал админ, то и попадает в запись.
func (s *ScheduleService) Add(ctx context.Context, entry *model.ScheduleEntry) error {
	if err := s.schedules.Create(ctx, entry); err != nil {
		return fmt.Errorf("add schedule: %w", err)
	}

	s.logger.Info("Schedule entry added",
		zap.Int64("id", entry.ID),
		zap.String("group", entry.Group),
		zap.String("day", entry.Day),
	)

	return nil
}

// ForGroup получает расписание группы
func (s *ScheduleService) ForGroup(ctx context.Context, group string) ([]*model.ScheduleEntry, error) {
	return s.schedules.ListByGroup(ctx, group)
}

// Find находит строку расписания по группе и дню (nil, если не найдена)
func (s *ScheduleService) Find(ctx context.Context, group, day string) (*model.ScheduleEntry, error) {
	return s.schedules.GetByGroupDay(ctx, group, day)
}

// Update перезаписывает время, предмет и местоположение найденной строки
func (s *ScheduleService) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	if err := s.schedules.Update(ctx, entry); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}

	s.logger.Info("Schedule entry updated", zap.Int64("id", entry.ID))
	return nil
}
