package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mihppk/college_bot/internal/model"
	"github.com/mihppk/college_bot/internal/repository/base"
)

type ScheduleRepository struct {
	*base.Repository
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{Repository: base.NewRepository(pool)}
}

// Create добавляет строку расписания
func (r *ScheduleRepository) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	query := `
		INSERT INTO schedules ("group", day, "time", subject, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.QueryRow(
		ctx, query,
		entry.Group,
		entry.Day,
		entry.Time,
		entry.Subject,
		entry.Location,
	).Scan(&entry.ID)

	if err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}

	return nil
}

// ListByGroup получает расписание группы
func (r *ScheduleRepository) ListByGroup(ctx context.Context, group string) ([]*model.ScheduleEntry, error) {
	query := `
		SELECT id, "group", day, "time", subject, location
		FROM schedules
		WHERE "group" = $1
		ORDER BY id
	`

	rows, err := r.Query(ctx, query, group)
	if err != nil {
		return nil, fmt.Errorf("list schedules by group: %w", err)
	}
	defer rows.Close()

	var entries []*model.ScheduleEntry
	for rows.Next() {
		var entry model.ScheduleEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Group,
			&entry.Day,
			&entry.Time,
			&entry.Subject,
			&entry.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule entries: %w", err)
	}

	return entries, nil
}

// GetByGroupDay находит первую строку расписания по группе и дню
func (r *ScheduleRepository) GetByGroupDay(ctx context.Context, group, day string) (*model.ScheduleEntry, error) {
	query := `
		SELECT id, "group", day, "time", subject, location
		FROM schedules
		WHERE "group" = $1 AND day = $2
		ORDER BY id
		LIMIT 1
	`

	var entry model.ScheduleEntry
	err := r.QueryRow(ctx, query, group, day).Scan(
		&entry.ID,
		&entry.Group,
		&entry.Day,
		&entry.Time,
		&entry.Subject,
		&entry.Location,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Расписание не найдено
		}
		return nil, fmt.Errorf("get schedule by group and day: %w", err)
	}

	return &entry, nil
}

// Update перезаписывает поля строки расписания (last-write-wins, без проверки версии)
func (r *ScheduleRepository) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	query := `
		UPDATE schedules
		SET "time" = $1, subject = $2, location = $3
		WHERE id = $4
	`

	if _, err := r.ExecAffected(ctx, query, entry.Time, entry.Subject, entry.Location, entry.ID); err != nil {
		return fmt.Errorf("update schedule entry: %w", err)
	}

	return nil
}
