package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IStartupUseCase manages the startup registry the equity engine checks
// ownership against. Deleting a startup cascades to its cap table; offers are
// kept as history.
type IStartupUseCase interface {
	Register(ctx context.Context, caller entities.Identity, name, description string) (entities.Startup, error)
	GetByID(ctx context.Context, id string) (entities.Startup, error)
	Delete(ctx context.Context, caller entities.Identity, id string) (entities.Startup, int, error)
}

type StartupUseCase struct {
	repo    interfaces.IStartupRepository
	capRepo interfaces.ICapTableRepository
}

var _ IStartupUseCase = (*StartupUseCase)(nil)

func NewStartupUseCase(repo interfaces.IStartupRepository, capRepo interfaces.ICapTableRepository) *StartupUseCase {
	return &StartupUseCase{repo: repo, capRepo: capRepo}
}

func (u *StartupUseCase) Register(ctx context.Context, caller entities.Identity, name, description string) (entities.Startup, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return entities.Startup{}, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Startup{}, ErrInvalidStartupName
	}

	s := entities.Startup{
		ID:          uuid.NewString(),
		OwnerID:     caller.UserID,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Startup{}, err
	}
	log.Printf("[startup][usecase] registered startup_id=%s owner_id=%s", created.ID, created.OwnerID)
	return created, nil
}

func (u *StartupUseCase) GetByID(ctx context.Context, id string) (entities.Startup, error) {
	return loadStartup(ctx, u.repo, id)
}

func (u *StartupUseCase) Delete(ctx context.Context, caller entities.Identity, id string) (entities.Startup, int, error) {
	s, err := loadOwnedStartup(ctx, u.repo, caller, id)
	if err != nil {
		return entities.Startup{}, 0, err
	}

	// The startup goes first so inserts racing the cascade fail their
	// startup check instead of leaving orphan entries. Backends with a
	// foreign key cascade have already dropped the entries by the time
	// DeleteByStartupID runs, so they are counted up front.
	entries, err := u.capRepo.ListByStartupID(ctx, s.ID)
	if err != nil {
		return entities.Startup{}, 0, err
	}
	deleted, err := u.repo.Delete(ctx, s.ID)
	if err != nil {
		return entities.Startup{}, 0, err
	}
	if deleted.ID == "" {
		return entities.Startup{}, 0, ErrStartupNotFound
	}
	cascaded, err := u.capRepo.DeleteByStartupID(ctx, deleted.ID)
	if err != nil {
		log.Printf("[startup][usecase] cap table cascade failed startup_id=%s err=%v", deleted.ID, err)
		return entities.Startup{}, 0, err
	}
	removed := max(len(entries), cascaded)
	log.Printf("[startup][usecase] deleted startup_id=%s removed_entries=%d", deleted.ID, removed)
	return deleted, removed, nil
}
