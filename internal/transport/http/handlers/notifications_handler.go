package handlers

import (
	"context"
	"net/http"

	"github.com/Ihebmsaed/Artygen/internal/domain/model"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type NotificationLister interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error)
}

type NotificationsHandler struct {
	store NotificationLister
}

func NewNotificationsHandler(store NotificationLister) *NotificationsHandler {
	return &NotificationsHandler{store: store}
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.store == nil {
		writeInternal(w, "NOTIFICATIONS_UNAVAILABLE", "notifications are unavailable")
		return
	}

	limit := queryInt(r, "limit", "50")
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	notifications, err := h.store.ListByUser(r.Context(), identity.UserID, limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load notifications")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NotificationListResponse{
		Notifications: dto.NewNotificationResponses(notifications),
	})
}
