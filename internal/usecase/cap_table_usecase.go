package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"startlabx/internal/domain/calculator"
	"startlabx/internal/domain/entities"
	"startlabx/internal/infrastructure/metrics"
	"startlabx/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddEntryInput struct {
	StartupID        string
	StakeholderID    string
	StakeholderType  entities.StakeholderType
	EquityPercentage decimal.Decimal
	VestingStart     *time.Time
	VestingEnd       *time.Time
	CliffMonths      int
}

// UpdateEntryInput is a partial update; nil fields are left unchanged.
type UpdateEntryInput struct {
	EquityPercentage *decimal.Decimal
	VestingStart     *time.Time
	VestingEnd       *time.Time
	CliffMonths      *int
}

// VestingStatus is an entry together with its vested split at AsOf.
type VestingStatus struct {
	Entry    entities.CapTableEntry
	Snapshot calculator.Snapshot
}

// ICapTableUseCase exposes the per-startup ledger. Writes are restricted to the
// startup owner and never leave a startup above 100% allocated.
type ICapTableUseCase interface {
	AddEntry(ctx context.Context, caller entities.Identity, in AddEntryInput) (entities.CapTableEntry, error)
	UpdateEntry(ctx context.Context, caller entities.Identity, entryID string, in UpdateEntryInput) (entities.CapTableEntry, error)
	RemoveEntry(ctx context.Context, caller entities.Identity, entryID string) (entities.CapTableEntry, error)
	GetCapTable(ctx context.Context, startupID string) (entities.CapTable, error)
	VestingStatus(ctx context.Context, entryID string, asOf time.Time) (VestingStatus, error)
}

type CapTableUseCase struct {
	repo     interfaces.ICapTableRepository
	startups interfaces.IStartupRepository
	now      func() time.Time
}

var _ ICapTableUseCase = (*CapTableUseCase)(nil)

func NewCapTableUseCase(repo interfaces.ICapTableRepository, startups interfaces.IStartupRepository) *CapTableUseCase {
	return &CapTableUseCase{
		repo:     repo,
		startups: startups,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *CapTableUseCase) AddEntry(ctx context.Context, caller entities.Identity, in AddEntryInput) (entities.CapTableEntry, error) {
	in.StakeholderID = strings.TrimSpace(in.StakeholderID)
	if in.StakeholderID == "" || !in.StakeholderType.Valid() {
		return entities.CapTableEntry{}, ErrInvalidStakeholder
	}

	e := entities.CapTableEntry{
		ID:               uuid.NewString(),
		StakeholderID:    in.StakeholderID,
		StakeholderType:  in.StakeholderType,
		EquityPercentage: in.EquityPercentage,
		VestingStart:     utcPtr(in.VestingStart),
		VestingEnd:       utcPtr(in.VestingEnd),
		CliffMonths:      in.CliffMonths,
		CreatedAt:        u.now(),
	}
	if err := validateEntry(e); err != nil {
		return entities.CapTableEntry{}, err
	}

	startup, err := loadOwnedStartup(ctx, u.startups, caller, in.StartupID)
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	e.StartupID = startup.ID

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, entities.ErrAllocationExceeded) {
			metrics.AllocationRejections.Inc()
		}
		log.Printf("[captable][usecase] add failed startup_id=%s stakeholder_id=%s equity=%s err=%v", e.StartupID, e.StakeholderID, e.EquityPercentage, err)
		return entities.CapTableEntry{}, err
	}
	log.Printf("[captable][usecase] added entry_id=%s startup_id=%s equity=%s", created.ID, created.StartupID, created.EquityPercentage)
	return created, nil
}

func (u *CapTableUseCase) UpdateEntry(ctx context.Context, caller entities.Identity, entryID string, in UpdateEntryInput) (entities.CapTableEntry, error) {
	current, err := u.loadOwnedEntry(ctx, caller, entryID)
	if err != nil {
		return entities.CapTableEntry{}, err
	}

	next := current
	if in.EquityPercentage != nil {
		next.EquityPercentage = *in.EquityPercentage
	}
	if in.VestingStart != nil {
		next.VestingStart = utcPtr(in.VestingStart)
	}
	if in.VestingEnd != nil {
		next.VestingEnd = utcPtr(in.VestingEnd)
	}
	if in.CliffMonths != nil {
		next.CliffMonths = *in.CliffMonths
	}
	if err := validateEntry(next); err != nil {
		return entities.CapTableEntry{}, err
	}

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		if errors.Is(err, entities.ErrAllocationExceeded) {
			metrics.AllocationRejections.Inc()
		}
		log.Printf("[captable][usecase] update failed entry_id=%s err=%v", current.ID, err)
		return entities.CapTableEntry{}, err
	}
	if updated.ID == "" {
		return entities.CapTableEntry{}, ErrEntryNotFound
	}
	log.Printf("[captable][usecase] updated entry_id=%s equity=%s", updated.ID, updated.EquityPercentage)
	return updated, nil
}

func (u *CapTableUseCase) RemoveEntry(ctx context.Context, caller entities.Identity, entryID string) (entities.CapTableEntry, error) {
	current, err := u.loadOwnedEntry(ctx, caller, entryID)
	if err != nil {
		return entities.CapTableEntry{}, err
	}

	removed, err := u.repo.Delete(ctx, current.ID)
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	if removed.ID == "" {
		return entities.CapTableEntry{}, ErrEntryNotFound
	}
	log.Printf("[captable][usecase] removed entry_id=%s startup_id=%s", removed.ID, removed.StartupID)
	return removed, nil
}

func (u *CapTableUseCase) GetCapTable(ctx context.Context, startupID string) (entities.CapTable, error) {
	startup, err := loadStartup(ctx, u.startups, startupID)
	if err != nil {
		return entities.CapTable{}, err
	}
	entries, err := u.repo.ListByStartupID(ctx, startup.ID)
	if err != nil {
		return entities.CapTable{}, err
	}
	return entities.NewCapTable(startup.ID, entries), nil
}

func (u *CapTableUseCase) VestingStatus(ctx context.Context, entryID string, asOf time.Time) (VestingStatus, error) {
	e, err := u.getEntry(ctx, entryID)
	if err != nil {
		return VestingStatus{}, err
	}
	if asOf.IsZero() {
		asOf = u.now()
	}
	return VestingStatus{
		Entry:    e,
		Snapshot: calculator.SnapshotAt(e.EquityPercentage, e.VestingStart, e.VestingEnd, e.CliffMonths, asOf.UTC()),
	}, nil
}

func (u *CapTableUseCase) getEntry(ctx context.Context, entryID string) (entities.CapTableEntry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.CapTableEntry{}, ErrInvalidEntryID
	}
	e, err := u.repo.GetByID(ctx, entryID)
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	if e.ID == "" {
		return entities.CapTableEntry{}, ErrEntryNotFound
	}
	return e, nil
}

func (u *CapTableUseCase) loadOwnedEntry(ctx context.Context, caller entities.Identity, entryID string) (entities.CapTableEntry, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return entities.CapTableEntry{}, ErrUnauthenticated
	}
	e, err := u.getEntry(ctx, entryID)
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	if _, err := loadOwnedStartup(ctx, u.startups, caller, e.StartupID); err != nil {
		return entities.CapTableEntry{}, err
	}
	return e, nil
}

func validateEntry(e entities.CapTableEntry) error {
	if !e.EquityPercentage.IsPositive() || e.EquityPercentage.GreaterThan(entities.MaxAllocation) {
		return ErrInvalidEquityPercentage
	}
	if e.CliffMonths < 0 {
		return ErrInvalidCliffMonths
	}
	if e.HasVestingWindow() && e.VestingEnd.Before(*e.VestingStart) {
		return ErrInvalidVestingWindow
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
