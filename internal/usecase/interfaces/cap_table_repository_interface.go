package interfaces

import (
	"context"

	"startlabx/internal/domain/entities"
)

// ICapTableRepository abstracts persistence for CapTableEntry.
//
// Create and Update enforce the per-startup allocation bound atomically and
// return entities.ErrAllocationExceeded without writing when it would break.
type ICapTableRepository interface {
	Create(ctx context.Context, e entities.CapTableEntry) (entities.CapTableEntry, error)
	GetByID(ctx context.Context, id string) (entities.CapTableEntry, error)
	ListByStartupID(ctx context.Context, startupID string) ([]entities.CapTableEntry, error)
	Update(ctx context.Context, e entities.CapTableEntry) (entities.CapTableEntry, error)
	Delete(ctx context.Context, id string) (entities.CapTableEntry, error)
	DeleteByStartupID(ctx context.Context, startupID string) (int, error)
}
