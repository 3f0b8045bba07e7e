package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/model"
)

// MaterialStore — операции хранилища учебных материалов
type MaterialStore interface {
	Create(ctx context.Context, material *model.Material) error
	ListByGroup(ctx context.Context, group string) ([]*model.Material, error)
	DeleteByGroup(ctx context.Context, group string) (int64, error)
}

type MaterialService struct {
	materials MaterialStore
	logger    *zap.Logger
}

func NewMaterialService(materials MaterialStore, logger *zap.Logger) *MaterialService {
	return &MaterialService{
		materials: materials,
		logger:    logger,
	}
}

// Publish сохраняет материал для группы.
// Пустое описание заменяется заглушкой, для файловых видов обязателен FileID.
func (s *MaterialService) Publish(ctx context.Context, material *model.Material) error {
	if material.Description == "" {
		material.Description = model.DefaultMaterialDescription
	}

	if material.Kind != model.MaterialKindText && material.FileID == "" {
		return fmt.Errorf("material of kind %q requires a file id", material.Kind)
	}

	if err := s.materials.Create(ctx, material); err != nil {
		return fmt.Errorf("publish material: %w", err)
	}

	s.logger.Info("Material published",
		zap.Int64("id", material.ID),
		zap.String("group", material.Group),
		zap.String("kind", string(material.Kind)),
	)

	return nil
}

// ForGroup получает материалы группы, новые первыми
func (s *MaterialService) ForGroup(ctx context.Context, group string) ([]*model.Material, error) {
	return s.materials.ListByGroup(ctx, group)
}

// ClearGroup удаляет все материалы группы
func (s *MaterialService) ClearGroup(ctx context.Context, group string) (int64, error) {
	deleted, err := s.materials.DeleteByGroup(ctx, group)
	if err != nil {
		return 0, fmt.Errorf("clear materials: %w", err)
	}

	s.logger.Info("Materials cleared",
		zap.String("group", group),
		zap.Int64("deleted", deleted),
	)

	return deleted, nil
}
