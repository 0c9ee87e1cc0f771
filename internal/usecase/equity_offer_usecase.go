package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/infrastructure/metrics"
	"startlabx/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultOfferExpiryWindow is how long an offer may stay PENDING before the
// expiry sweep moves it to EXPIRED.
const DefaultOfferExpiryWindow = 30 * 24 * time.Hour

// CreateOfferInput carries the negotiable terms of a new offer. Nil periods take
// the defaults (48 months vesting, 12 months cliff capped at the vesting period).
type CreateOfferInput struct {
	StartupID           string
	ProfessionalID      string
	EquityPercentage    decimal.Decimal
	VestingPeriodMonths *int
	CliffPeriodMonths   *int
	Role                string
	Salary              decimal.Decimal
}

// StatusChangeResult is the outcome of PUT /equity/offers/:id/status. Entry is
// set only for an acceptance.
type StatusChangeResult struct {
	Offer entities.EquityOffer
	Entry *entities.CapTableEntry
}

// IEquityOfferUseCase exposes the offer lifecycle:
//   - create (startup owner)             => PENDING
//   - accept / reject (target professional) => ACCEPTED / REJECTED
//   - expire (housekeeping sweep)        => EXPIRED
//
// Terminal states are absorbing; any transition out of them fails with
// entities.ErrInvalidStateTransition.
type IEquityOfferUseCase interface {
	CreateOffer(ctx context.Context, caller entities.Identity, in CreateOfferInput) (entities.EquityOffer, error)
	ChangeStatus(ctx context.Context, caller entities.Identity, offerID string, status entities.OfferStatus) (StatusChangeResult, error)
	AcceptOffer(ctx context.Context, caller entities.Identity, offerID string) (entities.EquityOffer, entities.CapTableEntry, error)
	RejectOffer(ctx context.Context, caller entities.Identity, offerID string) (entities.EquityOffer, error)
	ExpireOffer(ctx context.Context, offerID string) (entities.EquityOffer, error)
	ExpirePending(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (entities.EquityOffer, error)
	ListByStartupID(ctx context.Context, startupID string) ([]entities.EquityOffer, error)
	ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.EquityOffer, error)
}

type EquityOfferUseCase struct {
	repo         interfaces.IEquityOfferRepository
	startups     interfaces.IStartupRepository
	notifier     interfaces.INotifier
	expiryWindow time.Duration
	now          func() time.Time
}

var _ IEquityOfferUseCase = (*EquityOfferUseCase)(nil)

func NewEquityOfferUseCase(repo interfaces.IEquityOfferRepository, startups interfaces.IStartupRepository, notifier interfaces.INotifier, expiryWindow time.Duration) *EquityOfferUseCase {
	if expiryWindow <= 0 {
		expiryWindow = DefaultOfferExpiryWindow
	}
	return &EquityOfferUseCase{
		repo:         repo,
		startups:     startups,
		notifier:     notifier,
		expiryWindow: expiryWindow,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *EquityOfferUseCase) CreateOffer(ctx context.Context, caller entities.Identity, in CreateOfferInput) (entities.EquityOffer, error) {
	in.ProfessionalID = strings.TrimSpace(in.ProfessionalID)
	if in.ProfessionalID == "" {
		return entities.EquityOffer{}, ErrInvalidProfessionalID
	}
	if !in.EquityPercentage.IsPositive() || in.EquityPercentage.GreaterThan(entities.MaxAllocation) {
		return entities.EquityOffer{}, ErrInvalidEquityPercentage
	}

	vesting := entities.DefaultVestingPeriodMonths
	if in.VestingPeriodMonths != nil {
		vesting = *in.VestingPeriodMonths
	}
	if vesting < 1 || vesting > entities.MaxVestingPeriodMonths {
		return entities.EquityOffer{}, ErrInvalidVestingPeriod
	}
	cliff := min(entities.DefaultCliffPeriodMonths, vesting)
	if in.CliffPeriodMonths != nil {
		cliff = *in.CliffPeriodMonths
	}
	if cliff < 0 || cliff > entities.MaxCliffPeriodMonths || cliff > vesting {
		return entities.EquityOffer{}, ErrInvalidCliffPeriod
	}
	if in.Salary.IsNegative() {
		return entities.EquityOffer{}, ErrInvalidSalary
	}

	startup, err := loadOwnedStartup(ctx, u.startups, caller, in.StartupID)
	if err != nil {
		return entities.EquityOffer{}, err
	}

	now := u.now()
	o := entities.EquityOffer{
		ID:                  uuid.NewString(),
		StartupID:           startup.ID,
		ProfessionalID:      in.ProfessionalID,
		EquityPercentage:    in.EquityPercentage,
		VestingPeriodMonths: vesting,
		CliffPeriodMonths:   cliff,
		Role:                strings.TrimSpace(in.Role),
		Salary:              in.Salary,
		Status:              entities.OfferStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[offer][usecase] create failed startup_id=%s professional_id=%s err=%v", o.StartupID, o.ProfessionalID, err)
		return entities.EquityOffer{}, err
	}
	metrics.OfferTransitions.WithLabelValues(string(entities.OfferStatusPending)).Inc()
	log.Printf("[offer][usecase] created offer_id=%s startup_id=%s professional_id=%s equity=%s", created.ID, created.StartupID, created.ProfessionalID, created.EquityPercentage)

	u.notify(ctx, created.ProfessionalID, entities.NotificationEquityOffer, "New Equity Offer",
		fmt.Sprintf("You received an equity offer of %s%% from %s", created.EquityPercentage, startup.Name))
	return created, nil
}

func (u *EquityOfferUseCase) ChangeStatus(ctx context.Context, caller entities.Identity, offerID string, status entities.OfferStatus) (StatusChangeResult, error) {
	switch status {
	case entities.OfferStatusAccepted:
		o, e, err := u.AcceptOffer(ctx, caller, offerID)
		if err != nil {
			return StatusChangeResult{}, err
		}
		return StatusChangeResult{Offer: o, Entry: &e}, nil
	case entities.OfferStatusRejected:
		o, err := u.RejectOffer(ctx, caller, offerID)
		if err != nil {
			return StatusChangeResult{}, err
		}
		return StatusChangeResult{Offer: o}, nil
	default:
		return StatusChangeResult{}, ErrInvalidStatus
	}
}

func (u *EquityOfferUseCase) AcceptOffer(ctx context.Context, caller entities.Identity, offerID string) (entities.EquityOffer, entities.CapTableEntry, error) {
	current, err := u.loadForProfessional(ctx, caller, offerID)
	if err != nil {
		return entities.EquityOffer{}, entities.CapTableEntry{}, err
	}
	if !current.Status.CanTransitionTo(entities.OfferStatusAccepted) {
		return entities.EquityOffer{}, entities.CapTableEntry{}, entities.ErrInvalidStateTransition
	}

	now := u.now()
	entry := current.ToCapTableEntry(uuid.NewString(), now)

	log.Printf("[offer][usecase] accept start offer_id=%s startup_id=%s equity=%s", current.ID, current.StartupID, current.EquityPercentage)
	accepted, created, err := u.repo.Accept(ctx, current.ID, entry, now)
	if err != nil {
		if errors.Is(err, entities.ErrAllocationExceeded) {
			metrics.AllocationRejections.Inc()
		}
		log.Printf("[offer][usecase] accept failed offer_id=%s err=%v", current.ID, err)
		return entities.EquityOffer{}, entities.CapTableEntry{}, err
	}
	if accepted.ID == "" {
		return entities.EquityOffer{}, entities.CapTableEntry{}, ErrOfferNotFound
	}
	metrics.OfferTransitions.WithLabelValues(string(entities.OfferStatusAccepted)).Inc()
	log.Printf("[offer][usecase] accept success offer_id=%s entry_id=%s", accepted.ID, created.ID)

	u.notifyOwner(ctx, accepted, entities.NotificationEquityOfferAccepted, "Equity Offer Accepted",
		fmt.Sprintf("Your equity offer of %s%% was accepted", accepted.EquityPercentage))
	return accepted, created, nil
}

func (u *EquityOfferUseCase) RejectOffer(ctx context.Context, caller entities.Identity, offerID string) (entities.EquityOffer, error) {
	current, err := u.loadForProfessional(ctx, caller, offerID)
	if err != nil {
		return entities.EquityOffer{}, err
	}

	rejected, err := u.transition(ctx, current, entities.OfferStatusRejected)
	if err != nil {
		return entities.EquityOffer{}, err
	}
	u.notifyOwner(ctx, rejected, entities.NotificationEquityOfferRejected, "Equity Offer Rejected",
		fmt.Sprintf("Your equity offer of %s%% was rejected", rejected.EquityPercentage))
	return rejected, nil
}

func (u *EquityOfferUseCase) ExpireOffer(ctx context.Context, offerID string) (entities.EquityOffer, error) {
	current, err := u.GetByID(ctx, offerID)
	if err != nil {
		return entities.EquityOffer{}, err
	}

	expired, err := u.transition(ctx, current, entities.OfferStatusExpired)
	if err != nil {
		return entities.EquityOffer{}, err
	}
	u.notify(ctx, expired.ProfessionalID, entities.NotificationEquityOfferExpired, "Equity Offer Expired",
		fmt.Sprintf("An equity offer of %s%% expired before it was answered", expired.EquityPercentage))
	return expired, nil
}

// ExpirePending moves every offer left PENDING longer than the expiry window to
// EXPIRED. Offers answered while the sweep runs are skipped.
func (u *EquityOfferUseCase) ExpirePending(ctx context.Context) (int, error) {
	cutoff := u.now().Add(-u.expiryWindow)
	pending, err := u.repo.ListPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range pending {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		if _, err := u.ExpireOffer(ctx, o.ID); err != nil {
			if errors.Is(err, entities.ErrInvalidStateTransition) || errors.Is(err, ErrOfferNotFound) {
				continue
			}
			return expired, err
		}
		expired++
	}
	log.Printf("[offer][usecase] expiry sweep done cutoff=%s candidates=%d expired=%d", cutoff.Format(time.RFC3339), len(pending), expired)
	return expired, nil
}

func (u *EquityOfferUseCase) GetByID(ctx context.Context, id string) (entities.EquityOffer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EquityOffer{}, ErrInvalidOfferID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EquityOffer{}, err
	}
	if o.ID == "" {
		return entities.EquityOffer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *EquityOfferUseCase) ListByStartupID(ctx context.Context, startupID string) ([]entities.EquityOffer, error) {
	startupID = strings.TrimSpace(startupID)
	if startupID == "" {
		return nil, ErrInvalidStartupID
	}
	return u.repo.ListByStartupID(ctx, startupID)
}

func (u *EquityOfferUseCase) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.EquityOffer, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}
	return u.repo.ListByProfessionalID(ctx, professionalID)
}

func (u *EquityOfferUseCase) loadForProfessional(ctx context.Context, caller entities.Identity, offerID string) (entities.EquityOffer, error) {
	if strings.TrimSpace(caller.UserID) == "" {
		return entities.EquityOffer{}, ErrUnauthenticated
	}
	o, err := u.GetByID(ctx, offerID)
	if err != nil {
		return entities.EquityOffer{}, err
	}
	if o.ProfessionalID != caller.UserID {
		log.Printf("[offer][usecase] forbidden offer_id=%s professional_id=%s caller_id=%s", o.ID, o.ProfessionalID, caller.UserID)
		return entities.EquityOffer{}, ErrForbidden
	}
	return o, nil
}

// transition applies a PENDING -> terminal move that has no ledger side effect.
func (u *EquityOfferUseCase) transition(ctx context.Context, current entities.EquityOffer, to entities.OfferStatus) (entities.EquityOffer, error) {
	if !current.Status.CanTransitionTo(to) {
		return entities.EquityOffer{}, entities.ErrInvalidStateTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.OfferStatusPending, to, u.now())
	if err != nil {
		log.Printf("[offer][usecase] transition failed offer_id=%s to=%s err=%v", current.ID, to, err)
		return entities.EquityOffer{}, err
	}
	if updated.ID == "" {
		return entities.EquityOffer{}, ErrOfferNotFound
	}
	metrics.OfferTransitions.WithLabelValues(string(to)).Inc()
	log.Printf("[offer][usecase] transition success offer_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *EquityOfferUseCase) notifyOwner(ctx context.Context, o entities.EquityOffer, typ entities.NotificationType, title, message string) {
	s, err := u.startups.GetByID(ctx, o.StartupID)
	if err != nil || s.ID == "" {
		log.Printf("[offer][usecase] owner lookup failed, notification skipped offer_id=%s startup_id=%s err=%v", o.ID, o.StartupID, err)
		return
	}
	u.notify(ctx, s.OwnerID, typ, title, message)
}

func (u *EquityOfferUseCase) notify(ctx context.Context, userID string, typ entities.NotificationType, title, message string) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: u.now(),
	})
}
