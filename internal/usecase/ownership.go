package usecase

import (
	"context"
	"log"
	"strings"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"
)

// loadOwnedStartup returns the startup when caller owns it.
func loadOwnedStartup(ctx context.Context, startups interfaces.IStartupRepository, caller entities.Identity, startupID string) (entities.Startup, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return entities.Startup{}, ErrUnauthenticated
	}
	s, err := loadStartup(ctx, startups, startupID)
	if err != nil {
		return entities.Startup{}, err
	}
	if s.OwnerID != caller.UserID {
		log.Printf("[ownership][usecase] forbidden startup_id=%s owner_id=%s caller_id=%s", s.ID, s.OwnerID, caller.UserID)
		return entities.Startup{}, ErrForbidden
	}
	return s, nil
}

func loadStartup(ctx context.Context, startups interfaces.IStartupRepository, startupID string) (entities.Startup, error) {
	startupID = strings.TrimSpace(startupID)
	if startupID == "" {
		return entities.Startup{}, ErrInvalidStartupID
	}
	s, err := startups.GetByID(ctx, startupID)
	if err != nil {
		return entities.Startup{}, err
	}
	if s.ID == "" {
		return entities.Startup{}, ErrStartupNotFound
	}
	return s, nil
}
