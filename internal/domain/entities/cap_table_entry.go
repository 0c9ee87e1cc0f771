package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// StakeholderType classifies a cap table holder.
type StakeholderType string

const (
	StakeholderFounder  StakeholderType = "FOUNDER"
	StakeholderEmployee StakeholderType = "EMPLOYEE"
	StakeholderInvestor StakeholderType = "INVESTOR"
	StakeholderAdvisor  StakeholderType = "ADVISOR"
)

func (t StakeholderType) Valid() bool {
	switch t {
	case StakeholderFounder, StakeholderEmployee, StakeholderInvestor, StakeholderAdvisor:
		return true
	}
	return false
}

// MaxAllocation is the upper bound of the summed equity of one startup.
var MaxAllocation = decimal.NewFromInt(100)

// CapTableEntry is one grant in a startup's cap table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (startup_id-index): startup_id
//
// The startup is the unit of consistency: the sum of EquityPercentage over its
// entries never exceeds MaxAllocation.
type CapTableEntry struct {
	ID               string          `json:"id"`
	StartupID        string          `json:"startup_id"`
	StakeholderID    string          `json:"stakeholder_id"`
	StakeholderType  StakeholderType `json:"stakeholder_type"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
	VestingStart     *time.Time      `json:"vesting_start"`
	VestingEnd       *time.Time      `json:"vesting_end"`
	CliffMonths      int             `json:"cliff_months"`
	CreatedAt        time.Time       `json:"created_at"`
}

// HasVestingWindow reports whether both ends of the vesting window are known.
func (e CapTableEntry) HasVestingWindow() bool {
	return e.VestingStart != nil && e.VestingEnd != nil
}

// CapTable is the ledger view of a startup.
type CapTable struct {
	StartupID      string
	Entries        []CapTableEntry
	TotalAllocated decimal.Decimal
	Available      decimal.Decimal
}

// NewCapTable orders entries by equity descending, keeping the incoming
// (insertion) order for ties, and computes the allocation totals.
func NewCapTable(startupID string, entries []CapTableEntry) CapTable {
	ordered := make([]CapTableEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EquityPercentage.GreaterThan(ordered[j].EquityPercentage)
	})

	total := SumEquity(ordered)
	return CapTable{
		StartupID:      startupID,
		Entries:        ordered,
		TotalAllocated: total,
		Available:      MaxAllocation.Sub(total),
	}
}

func SumEquity(entries []CapTableEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.EquityPercentage)
	}
	return total
}

// ExceedsAllocation reports whether current+delta would break the allocation bound.
func ExceedsAllocation(current, delta decimal.Decimal) bool {
	return current.Add(delta).GreaterThan(MaxAllocation)
}
