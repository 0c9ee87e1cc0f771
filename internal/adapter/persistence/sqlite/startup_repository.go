package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"
)

type StartupRepository struct {
	store *Store
}

var _ interfaces.IStartupRepository = (*StartupRepository)(nil)

func NewStartupRepository(store *Store) *StartupRepository {
	return &StartupRepository{store: store}
}

func (r *StartupRepository) Create(ctx context.Context, s entities.Startup) (entities.Startup, error) {
	_, err := r.store.sqlDB.ExecContext(ctx, `
INSERT INTO startups (id, owner_id, name, description, created_at) VALUES (?, ?, ?, ?, ?)
`, s.ID, s.OwnerID, s.Name, s.Description, toMillis(s.CreatedAt))
	if err != nil {
		return entities.Startup{}, fmt.Errorf("insert startup: %w", err)
	}
	return s, nil
}

func (r *StartupRepository) GetByID(ctx context.Context, id string) (entities.Startup, error) {
	return getStartup(ctx, r.store.sqlDB, id)
}

// Delete removes the startup; its cap table entries go with it (ON DELETE CASCADE).
func (r *StartupRepository) Delete(ctx context.Context, id string) (entities.Startup, error) {
	var removed entities.Startup
	err := r.store.withTx(ctx, "startup delete", func(tx *sql.Tx) error {
		current, err := getStartup(ctx, tx, id)
		if err != nil || current.ID == "" {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM startups WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete startup: %w", err)
		}
		removed = current
		return nil
	})
	if err != nil {
		return entities.Startup{}, err
	}
	return removed, nil
}

func getStartup(ctx context.Context, q queryer, id string) (entities.Startup, error) {
	var (
		s         entities.Startup
		createdAt int64
	)
	err := q.QueryRowContext(ctx, `
SELECT id, owner_id, name, description, created_at FROM startups WHERE id = ?
`, id).Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Startup{}, nil
	}
	if err != nil {
		return entities.Startup{}, fmt.Errorf("get startup: %w", err)
	}
	s.CreatedAt = fromMillis(createdAt)
	return s, nil
}
