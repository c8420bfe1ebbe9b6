package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create is best effort at call sites: pipeline outcomes should never
// fail because a status message could not be written.
func (r *NotificationRepo) Create(ctx context.Context, notification model.Notification) error {
	if r.pool == nil {
		return nil
	}
	if notification.UserID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if notification.Kind == "" {
		notification.Kind = model.NotificationKindInfo
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO notifications (user_id, kind, message, created_at)
VALUES ($1, $2, $3, NOW())
`, notification.UserID, notification.Kind, notification.Message)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, kind, message, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var notification model.Notification
		if err := rows.Scan(
			&notification.ID, &notification.UserID, &notification.Kind,
			&notification.Message, &notification.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}
