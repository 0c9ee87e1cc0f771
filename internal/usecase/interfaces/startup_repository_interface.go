package interfaces

import (
	"context"

	"startlabx/internal/domain/entities"
)

type IStartupRepository interface {
	Create(ctx context.Context, s entities.Startup) (entities.Startup, error)
	GetByID(ctx context.Context, id string) (entities.Startup, error)
	Delete(ctx context.Context, id string) (entities.Startup, error)
}
