package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"startlabx/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "equity.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func pct(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedStartup(t *testing.T, store *Store, id string) entities.Startup {
	t.Helper()
	s, err := NewStartupRepository(store).Create(context.Background(), entities.Startup{
		ID:        id,
		OwnerID:   "owner-" + id,
		Name:      "Startup " + id,
		CreatedAt: base,
	})
	require.NoError(t, err)
	return s
}

func entry(id, startupID, equity string) entities.CapTableEntry {
	return entities.CapTableEntry{
		ID:               id,
		StartupID:        startupID,
		StakeholderID:    "holder-" + id,
		StakeholderType:  entities.StakeholderFounder,
		EquityPercentage: pct(equity),
		CreatedAt:        base,
	}
}

func offer(id, startupID, equity string) entities.EquityOffer {
	return entities.EquityOffer{
		ID:                  id,
		StartupID:           startupID,
		ProfessionalID:      "pro-1",
		EquityPercentage:    pct(equity),
		VestingPeriodMonths: 48,
		CliffPeriodMonths:   12,
		Role:                "CTO",
		Salary:              pct("120000"),
		Status:              entities.OfferStatusPending,
		CreatedAt:           base,
		UpdatedAt:           base,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equity.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Ping(context.Background()))
	require.NoError(t, second.Close())
}

func TestCapTableAllocationBound(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	repo := NewCapTableRepository(store)

	_, err := repo.Create(ctx, entry("a", "s-1", "60"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, entry("b", "s-1", "33.3"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, entry("c", "s-1", "6.71"))
	require.ErrorIs(t, err, entities.ErrAllocationExceeded)

	missing, err := repo.GetByID(ctx, "c")
	require.NoError(t, err)
	assert.Empty(t, missing.ID, "rejected entry must not be written")

	_, err = repo.Create(ctx, entry("d", "s-1", "6.7"))
	require.NoError(t, err, "exactly 100 is allowed")

	entries, err := repo.ListByStartupID(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ID)
	assert.True(t, entities.SumEquity(entries).Equal(entities.MaxAllocation))
}

func TestCapTableUpdateExcludesOwnShare(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	repo := NewCapTableRepository(store)

	_, err := repo.Create(ctx, entry("a", "s-1", "70"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, entry("b", "s-1", "20"))
	require.NoError(t, err)

	b, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)

	b.EquityPercentage = pct("30")
	start := base
	end := base.AddDate(4, 0, 0)
	b.VestingStart, b.VestingEnd, b.CliffMonths = &start, &end, 12
	updated, err := repo.Update(ctx, b)
	require.NoError(t, err)
	assert.True(t, updated.EquityPercentage.Equal(pct("30")))
	require.NotNil(t, updated.VestingEnd)
	assert.True(t, updated.VestingEnd.Equal(end))
	assert.Equal(t, 12, updated.CliffMonths)

	updated.EquityPercentage = pct("30.5")
	_, err = repo.Update(ctx, updated)
	require.ErrorIs(t, err, entities.ErrAllocationExceeded)

	stored, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.True(t, stored.EquityPercentage.Equal(pct("30")), "failed update must leave the entry unchanged")

	unknown, err := repo.Update(ctx, entry("zzz", "s-1", "1"))
	require.NoError(t, err)
	assert.Empty(t, unknown.ID)
}

func TestCapTableDelete(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	repo := NewCapTableRepository(store)

	_, err := repo.Create(ctx, entry("a", "s-1", "10"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", removed.ID)

	removed, err = repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, removed.ID)
}

func TestCapTableUnknownStartup(t *testing.T) {
	store := openTempStore(t)
	_, err := NewCapTableRepository(store).Create(context.Background(), entry("a", "ghost", "10"))
	require.ErrorIs(t, err, entities.ErrStartupGone)
}

func TestStartupDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	seedStartup(t, store, "s-2")
	capRepo := NewCapTableRepository(store)
	startups := NewStartupRepository(store)

	_, err := capRepo.Create(ctx, entry("a", "s-1", "50"))
	require.NoError(t, err)
	_, err = capRepo.Create(ctx, entry("b", "s-2", "50"))
	require.NoError(t, err)

	removed, err := startups.Delete(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-s-1", removed.OwnerID)

	left, err := capRepo.ListByStartupID(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, left)
	other, err := capRepo.ListByStartupID(ctx, "s-2")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	gone, err := startups.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestOfferRoundTripAndListing(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewEquityOfferRepository(store)

	older := offer("o-1", "s-1", "5")
	newer := offer("o-2", "s-1", "2.5")
	newer.CreatedAt = base.Add(time.Hour)
	newer.UpdatedAt = newer.CreatedAt
	other := offer("o-3", "s-2", "1")
	other.ProfessionalID = "pro-2"
	for _, o := range []entities.EquityOffer{older, newer, other} {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, "o-1")
	require.NoError(t, err)
	assert.True(t, got.EquityPercentage.Equal(pct("5")))
	assert.True(t, got.Salary.Equal(pct("120000")))
	assert.Equal(t, 48, got.VestingPeriodMonths)
	assert.Equal(t, entities.OfferStatusPending, got.Status)
	assert.True(t, got.CreatedAt.Equal(base))

	byStartup, err := repo.ListByStartupID(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, byStartup, 2)
	assert.Equal(t, "o-2", byStartup[0].ID, "newest first")

	byPro, err := repo.ListByProfessionalID(ctx, "pro-2")
	require.NoError(t, err)
	require.Len(t, byPro, 1)

	stale, err := repo.ListPendingCreatedBefore(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.ElementsMatch(t, []string{"o-1", "o-3"}, []string{stale[0].ID, stale[1].ID})
}

func TestOfferTerminalStatesAreAbsorbing(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewEquityOfferRepository(store)
	_, err := repo.Create(ctx, offer("o-1", "s-1", "5"))
	require.NoError(t, err)

	rejected, err := repo.UpdateStatus(ctx, "o-1", entities.OfferStatusPending, entities.OfferStatusRejected, base.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, entities.OfferStatusRejected, rejected.Status)

	before, err := repo.GetByID(ctx, "o-1")
	require.NoError(t, err)

	for _, to := range []entities.OfferStatus{entities.OfferStatusAccepted, entities.OfferStatusExpired, entities.OfferStatusRejected} {
		_, err := repo.UpdateStatus(ctx, "o-1", entities.OfferStatusPending, to, base.Add(time.Hour))
		require.ErrorIs(t, err, entities.ErrInvalidStateTransition)
	}
	_, _, err = repo.Accept(ctx, "o-1", entry("e-1", "s-1", "5"), base.Add(time.Hour))
	require.ErrorIs(t, err, entities.ErrInvalidStateTransition)

	after, err := repo.GetByID(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	unknown, err := repo.UpdateStatus(ctx, "nope", entities.OfferStatusPending, entities.OfferStatusRejected, base)
	require.NoError(t, err)
	assert.Empty(t, unknown.ID)
}

func TestAcceptIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	capRepo := NewCapTableRepository(store)
	offers := NewEquityOfferRepository(store)

	_, err := capRepo.Create(ctx, entry("founder", "s-1", "97"))
	require.NoError(t, err)
	_, err = offers.Create(ctx, offer("o-1", "s-1", "5"))
	require.NoError(t, err)

	o, _ := offers.GetByID(ctx, "o-1")
	_, _, err = offers.Accept(ctx, "o-1", o.ToCapTableEntry("e-1", base), base)
	require.ErrorIs(t, err, entities.ErrAllocationExceeded)

	still, err := offers.GetByID(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, entities.OfferStatusPending, still.Status)
	assert.True(t, still.UpdatedAt.Equal(base))

	e, err := capRepo.GetByID(ctx, "e-1")
	require.NoError(t, err)
	assert.Empty(t, e.ID)

	// Freeing room lets the same offer through.
	_, err = capRepo.Delete(ctx, "founder")
	require.NoError(t, err)
	accepted, created, err := offers.Accept(ctx, "o-1", o.ToCapTableEntry("e-1", base), base.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, entities.OfferStatusAccepted, accepted.Status)
	assert.Equal(t, "e-1", created.ID)
}

func TestAcceptUnknownOffer(t *testing.T) {
	store := openTempStore(t)
	o, e, err := NewEquityOfferRepository(store).Accept(context.Background(), "nope", entry("e-1", "s-1", "1"), base)
	require.NoError(t, err)
	assert.Empty(t, o.ID)
	assert.Empty(t, e.ID)
}

func TestConcurrentAcceptsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	offers := NewEquityOfferRepository(store)
	_, err := offers.Create(ctx, offer("o-1", "s-1", "5"))
	require.NoError(t, err)
	o, _ := offers.GetByID(ctx, "o-1")

	const workers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		wins   int
		errs   []error
		starts = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-starts
			_, _, err := offers.Accept(ctx, "o-1", o.ToCapTableEntry(fmt.Sprintf("e-%d", i), base), base)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}
			errs = append(errs, err)
		}(i)
	}
	close(starts)
	wg.Wait()

	assert.Equal(t, 1, wins)
	for _, err := range errs {
		assert.True(t, errors.Is(err, entities.ErrInvalidStateTransition) || errors.Is(err, entities.ErrConcurrentModification), "unexpected error: %v", err)
	}

	entries, err := NewCapTableRepository(store).ListByStartupID(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConcurrentAddsNeverOverAllocate(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	seedStartup(t, store, "s-1")
	repo := NewCapTableRepository(store)

	const workers = 16
	var (
		wg     sync.WaitGroup
		starts = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-starts
			_, _ = repo.Create(ctx, entry(fmt.Sprintf("e-%d", i), "s-1", "10"))
		}(i)
	}
	close(starts)
	wg.Wait()

	entries, err := repo.ListByStartupID(ctx, "s-1")
	require.NoError(t, err)
	total := entities.SumEquity(entries)
	assert.True(t, total.LessThanOrEqual(entities.MaxAllocation), "total %s", total)
	assert.LessOrEqual(t, len(entries), 10)
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewNotificationRepository(store)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, entities.Notification{
			ID:        fmt.Sprintf("n-%d", i),
			UserID:    "pro-1",
			Type:      entities.NotificationEquityOffer,
			Title:     "New Equity Offer",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, entities.Notification{ID: "other", UserID: "pro-2", Type: entities.NotificationEquityOffer, CreatedAt: base})
	require.NoError(t, err)

	list, err := repo.ListByUserID(ctx, "pro-1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID)
	assert.False(t, list[0].Read)

	n, err := repo.MarkRead(ctx, "n-0", "pro-1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	n, err = repo.MarkRead(ctx, "other", "pro-1")
	require.NoError(t, err)
	assert.Empty(t, n.ID, "cannot mark another user's notification")

	updated, err := repo.MarkAllRead(ctx, "pro-1")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}
