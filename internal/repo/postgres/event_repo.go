package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

func (r *EventRepo) Create(ctx context.Context, event model.Event) (model.Event, error) {
	if r.pool == nil {
		return model.Event{}, fmt.Errorf("postgres pool is nil")
	}
	if event.CreatorID <= 0 {
		return model.Event{}, fmt.Errorf("invalid creator id")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO events (creator_id, title, event_type, location, starts_at, capacity, description, ai_described, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
RETURNING id, created_at
`, event.CreatorID, event.Title, event.EventType, event.Location,
		event.StartsAt, event.Capacity, event.Description, event.AIDescribed).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return model.Event{}, fmt.Errorf("insert event: %w", err)
	}

	return event, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (model.Event, error) {
	if r.pool == nil {
		return model.Event{}, fmt.Errorf("postgres pool is nil")
	}

	var event model.Event
	err := r.pool.QueryRow(ctx, `
SELECT id, creator_id, title, event_type, location, starts_at, capacity, description, ai_described, created_at
FROM events
WHERE id = $1
`, id).Scan(
		&event.ID, &event.CreatorID, &event.Title, &event.EventType, &event.Location,
		&event.StartsAt, &event.Capacity, &event.Description, &event.AIDescribed, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, fmt.Errorf("get event by id: %w", err)
	}

	return event, nil
}

func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, creator_id, title, event_type, location, starts_at, capacity, description, ai_described, created_at
FROM events
ORDER BY starts_at ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(
			&event.ID, &event.CreatorID, &event.Title, &event.EventType, &event.Location,
			&event.StartsAt, &event.Capacity, &event.Description, &event.AIDescribed, &event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

func (r *EventRepo) Update(ctx context.Context, event model.Event) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE events
SET title = $2, event_type = $3, location = $4, starts_at = $5,
	capacity = $6, description = $7, ai_described = $8
WHERE id = $1
`, event.ID, event.Title, event.EventType, event.Location, event.StartsAt,
		event.Capacity, event.Description, event.AIDescribed)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}
