package interfaces

import (
	"context"

	"startlabx/internal/domain/entities"
)

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

// INotifier is fire-and-forget: callers never wait on or observe delivery.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification)
}

// INotificationPublisher pushes a stored notification to live subscribers.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}
