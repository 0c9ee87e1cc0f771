package response

import (
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase"
)

type OfferResponse struct {
	ID               string    `json:"id"`
	StartupID        string    `json:"startup_id"`
	ProfessionalID   string    `json:"professional_id"`
	EquityPercentage float64   `json:"equity_percentage"`
	VestingPeriod    int       `json:"vesting_period"`
	CliffPeriod      int       `json:"cliff_period"`
	Role             string    `json:"role"`
	Salary           float64   `json:"salary"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromOffer(o entities.EquityOffer) OfferResponse {
	return OfferResponse{
		ID:               o.ID,
		StartupID:        o.StartupID,
		ProfessionalID:   o.ProfessionalID,
		EquityPercentage: o.EquityPercentage.InexactFloat64(),
		VestingPeriod:    o.VestingPeriodMonths,
		CliffPeriod:      o.CliffPeriodMonths,
		Role:             o.Role,
		Salary:           o.Salary.InexactFloat64(),
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOffers(list []entities.EquityOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOffer(o))
	}
	return out
}

type OfferStatusResponse struct {
	Offer OfferResponse  `json:"offer"`
	Entry *EntryResponse `json:"entry,omitempty"`
}

func FromStatusChange(r usecase.StatusChangeResult) OfferStatusResponse {
	out := OfferStatusResponse{Offer: FromOffer(r.Offer)}
	if r.Entry != nil {
		e := FromEntry(*r.Entry)
		out.Entry = &e
	}
	return out
}

type EntryResponse struct {
	ID               string     `json:"id"`
	StartupID        string     `json:"startup_id"`
	StakeholderID    string     `json:"stakeholder_id"`
	StakeholderType  string     `json:"stakeholder_type"`
	EquityPercentage float64    `json:"equity_percentage"`
	VestingStart     *time.Time `json:"vesting_start"`
	VestingEnd       *time.Time `json:"vesting_end"`
	CliffMonths      int        `json:"cliff_months"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromEntry(e entities.CapTableEntry) EntryResponse {
	return EntryResponse{
		ID:               e.ID,
		StartupID:        e.StartupID,
		StakeholderID:    e.StakeholderID,
		StakeholderType:  string(e.StakeholderType),
		EquityPercentage: e.EquityPercentage.InexactFloat64(),
		VestingStart:     e.VestingStart,
		VestingEnd:       e.VestingEnd,
		CliffMonths:      e.CliffMonths,
		CreatedAt:        e.CreatedAt,
	}
}

type CapTableResponse struct {
	Entries        []EntryResponse `json:"entries"`
	TotalAllocated float64         `json:"totalAllocated"`
	Available      float64         `json:"available"`
}

func FromCapTable(ct entities.CapTable) CapTableResponse {
	entries := make([]EntryResponse, 0, len(ct.Entries))
	for _, e := range ct.Entries {
		entries = append(entries, FromEntry(e))
	}
	return CapTableResponse{
		Entries:        entries,
		TotalAllocated: ct.TotalAllocated.InexactFloat64(),
		Available:      ct.Available.InexactFloat64(),
	}
}

type VestingStatusResponse struct {
	Entry              EntryResponse `json:"entry"`
	AsOf               time.Time     `json:"asOf"`
	MonthsElapsed      int           `json:"monthsElapsed"`
	VestingMonths      int           `json:"vestingMonths"`
	CliffMonths        int           `json:"cliffMonths"`
	VestedPercentage   float64       `json:"vestedPercentage"`
	UnvestedPercentage float64       `json:"unvestedPercentage"`
	FullyVested        bool          `json:"fullyVested"`
}

func FromVestingStatus(s usecase.VestingStatus) VestingStatusResponse {
	return VestingStatusResponse{
		Entry:              FromEntry(s.Entry),
		AsOf:               s.Snapshot.AsOf,
		MonthsElapsed:      s.Snapshot.MonthsElapsed,
		VestingMonths:      s.Snapshot.VestingMonths,
		CliffMonths:        s.Snapshot.CliffMonths,
		VestedPercentage:   s.Snapshot.VestedPercentage.InexactFloat64(),
		UnvestedPercentage: s.Snapshot.UnvestedPercentage.InexactFloat64(),
		FullyVested:        s.Snapshot.FullyVested,
	}
}
