package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mihppk/college_bot/internal/model"
	"github.com/mihppk/college_bot/internal/repository/base"
)

type UserRepository struct {
	*base.Repository
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{Repository: base.NewRepository(pool)}
}

// UpsertGroup привязывает пользователя к группе.
// Повторный выбор группы обновляет существующую запись, дублей не создаёт.
func (r *UserRepository) UpsertGroup(ctx context.Context, telegramID int64, group string) error {
	query := `
		INSERT INTO users (telegram_id, "group")
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET "group" = EXCLUDED."group"
	`

	if _, err := r.ExecAffected(ctx, query, telegramID, group); err != nil {
		return fmt.Errorf("upsert user group: %w", err)
	}

	return nil
}

// GetByTelegramID получает привязку пользователя по Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `
		SELECT id, telegram_id, "group", created_at
		FROM users
		WHERE telegram_id = $1
	`

	var user model.User
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Group,
		&user.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}

	return &user, nil
}

// ListByGroup получает всех пользователей группы
func (r *UserRepository) ListByGroup(ctx context.Context, group string) ([]*model.User, error) {
	query := `
		SELECT id, telegram_id, "group", created_at
		FROM users
		WHERE "group" = $1
	`

	rows, err := r.Query(ctx, query, group)
	if err != nil {
		return nil, fmt.Errorf("list users by group: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.TelegramID, &user.Group, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// ListAll получает всех пользователей с привязкой к группе
func (r *UserRepository) ListAll(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, telegram_id, "group", created_at
		FROM users
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.TelegramID, &user.Group, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// CountByGroup считает количество участников по группам (по возрастанию кода группы)
func (r *UserRepository) CountByGroup(ctx context.Context) ([]model.GroupStat, error) {
	query := `
		SELECT "group", COUNT(*)
		FROM users
		WHERE "group" <> ''
		GROUP BY "group"
		ORDER BY "group"
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count users by group: %w", err)
	}
	defer rows.Close()

	var stats []model.GroupStat
	for rows.Next() {
		var stat model.GroupStat
		if err := rows.Scan(&stat.Group, &stat.Count); err != nil {
			return nil, fmt.Errorf("scan group stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group stats: %w", err)
	}

	return stats, nil
}
