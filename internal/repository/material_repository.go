package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mihppk/college_bot/internal/model"
	"github.com/mihppk/college_bot/internal/repository/base"
)

type MaterialRepository struct {
	*base.Repository
}

func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет новый материал
func (r *MaterialRepository) Create(ctx context.Context, material *model.Material) error {
	query := `
		INSERT INTO materials ("group", title, description, kind, file_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		material.Group,
		material.Title,
		material.Description,
		material.Kind,
		material.FileID,
	).Scan(&material.ID, &material.CreatedAt)

	if err != nil {
		return fmt.Errorf("create material: %w", err)
	}

	return nil
}

// ListByGroup получает материалы группы, новые первыми
func (r *MaterialRepository) ListByGroup(ctx context.Context, group string) ([]*model.Material, error) {
	query := `
		SELECT id, "group", title, description, kind, file_id, created_at
		FROM materials
		WHERE "group" = $1
		ORDER BY created_at DESC
	`

	rows, err := r.Query(ctx, query, group)
	if err != nil {
		return nil, fmt.Errorf("list materials by group: %w", err)
	}
	defer rows.Close()

	var materials []*model.Material
	for rows.Next() {
		var material model.Material
		err := rows.Scan(
			&material.ID,
			&material.Group,
			&material.Title,
			&material.Description,
			&material.Kind,
			&material.FileID,
			&material.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, &material)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	return materials, nil
}

// DeleteByGroup удаляет все материалы группы, возвращает количество удалённых
func (r *MaterialRepository) DeleteByGroup(ctx context.Context, group string) (int64, error) {
	query := `DELETE FROM materials WHERE "group" = $1`

	affected, err := r.ExecAffected(ctx, query, group)
	if err != nil {
		return 0, fmt.Errorf("delete materials by group: %w", err)
	}

	return affected, nil
}
