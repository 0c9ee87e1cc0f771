package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"
)

const notificationColumns = `id, user_id, type, title, message, read, created_at`

type NotificationRepository struct {
	store *Store
}

var _ interfaces.INotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	_, err := r.store.sqlDB.ExecContext(ctx, `
INSERT INTO notifications (`+notificationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
`, n.ID, n.UserID, string(n.Type), n.Title, n.Message, n.Read, toMillis(n.CreatedAt))
	if err != nil {
		return entities.Notification{}, fmt.Errorf("insert notification: %w", err)
	}
	return n, nil
}

// ListByUserID returns the user's newest notifications first.
func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	rows, err := r.store.sqlDB.QueryContext(ctx, `
SELECT `+notificationColumns+`
FROM notifications
WHERE user_id = ?
ORDER BY created_at DESC, seq DESC
LIMIT ?
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

// MarkRead returns a zero notification when id does not belong to userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	res, err := r.store.sqlDB.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	if n, err := rowsAffected(res); err != nil || n == 0 {
		return entities.Notification{}, err
	}

	row := r.store.sqlDB.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	n, err := scanNotification(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Notification{}, nil
	}
	if err != nil {
		return entities.Notification{}, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	res, err := r.store.sqlDB.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE user_id = ? AND read = 0`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return rowsAffected(res)
}

func scanNotification(scan func(dest ...any) error) (entities.Notification, error) {
	var (
		n         entities.Notification
		typ       string
		createdAt int64
	)
	if err := scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &n.Read, &createdAt); err != nil {
		return entities.Notification{}, err
	}
	n.Type = entities.NotificationType(typ)
	n.CreatedAt = fromMillis(createdAt)
	return n, nil
}
