package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus represents the lifecycle of an equity offer.
//
// Domain notes:
//   - PENDING is the only state that accepts transitions.
//   - ACCEPTED, REJECTED and EXPIRED are absorbing.
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "PENDING"
	OfferStatusAccepted OfferStatus = "ACCEPTED"
	OfferStatusRejected OfferStatus = "REJECTED"
	OfferStatusExpired  OfferStatus = "EXPIRED"
)

const (
	DefaultVestingPeriodMonths = 48
	DefaultCliffPeriodMonths   = 12

	MaxVestingPeriodMonths = 120
	MaxCliffPeriodMonths   = 48
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusRejected, OfferStatusExpired:
		return true
	}
	return false
}

func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected || s == OfferStatusExpired
}

// CanTransitionTo reports whether the state machine allows s -> next.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	return s == OfferStatusPending && next.IsTerminal()
}

// EquityOffer is an equity grant proposed by a startup owner to a professional.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (startup_id-index): startup_id
//   - GSI2 (professional_id-index): professional_id
//
// EquityPercentage is immutable after creation; only Status and UpdatedAt change.
type EquityOffer struct {
	ID                  string          `json:"id"`
	StartupID           string          `json:"startup_id"`
	ProfessionalID      string          `json:"professional_id"`
	EquityPercentage    decimal.Decimal `json:"equity_percentage"`
	VestingPeriodMonths int             `json:"vesting_period"`
	CliffPeriodMonths   int             `json:"cliff_period"`
	Role                string          `json:"role"`
	Salary              decimal.Decimal `json:"salary"`
	Status              OfferStatus     `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToCapTableEntry synthesizes the ledger entry created when the offer is accepted.
func (o EquityOffer) ToCapTableEntry(id string, acceptedAt time.Time) CapTableEntry {
	start := acceptedAt.UTC()
	end := start.AddDate(0, o.VestingPeriodMonths, 0)
	return CapTableEntry{
		ID:               id,
		StartupID:        o.StartupID,
		StakeholderID:    o.ProfessionalID,
		StakeholderType:  StakeholderEmployee,
		EquityPercentage: o.EquityPercentage,
		VestingStart:     &start,
		VestingEnd:       &end,
		CliffMonths:      o.CliffPeriodMonths,
		CreatedAt:        start,
	}
}
