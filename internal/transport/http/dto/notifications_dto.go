package dto

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func NewNotificationResponses(notifications []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, NotificationResponse{
			ID:        notification.ID,
			Kind:      notification.Kind,
			Message:   notification.Message,
			CreatedAt: notification.CreatedAt,
		})
	}
	return out
}
