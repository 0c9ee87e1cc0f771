// Package cache decorates repositories with an in-process read cache.
package cache

import (
	"context"
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// CachedStartupRepository memoizes startup lookups, which every owner check
// performs. Only found startups are cached; Delete evicts. Storage still
// rejects writes against a deleted startup, so a stale hit cannot break the
// cap table.
type CachedStartupRepository struct {
	next  interfaces.IStartupRepository
	cache *gocache.Cache
}

var _ interfaces.IStartupRepository = (*CachedStartupRepository)(nil)

func NewCachedStartupRepository(next interfaces.IStartupRepository, ttl time.Duration) *CachedStartupRepository {
	return &CachedStartupRepository{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *CachedStartupRepository) Create(ctx context.Context, s entities.Startup) (entities.Startup, error) {
	created, err := r.next.Create(ctx, s)
	if err != nil {
		return entities.Startup{}, err
	}
	r.cache.Set(created.ID, created, gocache.DefaultExpiration)
	return created, nil
}

func (r *CachedStartupRepository) GetByID(ctx context.Context, id string) (entities.Startup, error) {
	if cached, found := r.cache.Get(id); found {
		return cached.(entities.Startup), nil
	}
	s, err := r.next.GetByID(ctx, id)
	if err != nil || s.ID == "" {
		return s, err
	}
	r.cache.Set(id, s, gocache.DefaultExpiration)
	return s, nil
}

// Delete evicts on both sides of the storage delete so a lookup that ran in
// between cannot leave the deleted startup cached.
func (r *CachedStartupRepository) Delete(ctx context.Context, id string) (entities.Startup, error) {
	r.cache.Delete(id)
	defer r.cache.Delete(id)
	return r.next.Delete(ctx, id)
}
