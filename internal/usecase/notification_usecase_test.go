package usecase

import (
	"context"
	"errors"
	"testing"

	"startlabx/internal/domain/entities"
	mock_interfaces "startlabx/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if _, err := uc.List(context.Background(), entities.Identity{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
		if _, err := uc.MarkAllRead(context.Background(), entities.Identity{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("list is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		repo.EXPECT().ListByUserID(gomock.Any(), "pro-1", NotificationListLimit).Return([]entities.Notification{{ID: "n-1"}}, nil)

		res, err := uc.List(context.Background(), professional)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})

	t.Run("mark read of someone else's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1", "pro-1").Return(entities.Notification{}, nil)

		if _, err := uc.MarkRead(context.Background(), professional, "n-1"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("mark all read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		repo.EXPECT().MarkAllRead(gomock.Any(), "pro-1").Return(4, nil)

		n, err := uc.MarkAllRead(context.Background(), professional)
		if err != nil || n != 4 {
			t.Fatalf("unexpected result: %d %v", n, err)
		}
	})
}
