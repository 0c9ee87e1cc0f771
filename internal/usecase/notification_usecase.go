package usecase

import (
	"context"
	"strings"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"
)

// NotificationListLimit caps a listing to the newest notifications.
const NotificationListLimit = 50

type INotificationUseCase interface {
	List(ctx context.Context, caller entities.Identity) ([]entities.Notification, error)
	MarkRead(ctx context.Context, caller entities.Identity, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, caller entities.Identity) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) List(ctx context.Context, caller entities.Identity) ([]entities.Notification, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return nil, ErrUnauthenticated
	}
	return u.repo.ListByUserID(ctx, caller.UserID, NotificationListLimit)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, caller entities.Identity, id string) (entities.Notification, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return entities.Notification{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id, caller.UserID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, caller entities.Identity) (int, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return 0, ErrUnauthenticated
	}
	return u.repo.MarkAllRead(ctx, caller.UserID)
}
