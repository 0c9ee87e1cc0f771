package calculator

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the vested/unvested split of a grant at a point in time.
type Snapshot struct {
	AsOf               time.Time
	MonthsElapsed      int
	VestingMonths      int
	CliffMonths        int
	TotalEquity        decimal.Decimal
	VestedPercentage   decimal.Decimal
	UnvestedPercentage decimal.Decimal
	FullyVested        bool
}

// SnapshotAt evaluates a grant whose schedule is implied by its vesting window.
//
// A grant without a window (start or end unknown) is fully vested. A window
// shorter than one month vests entirely at its end. The cliff is clamped to the
// window length.
func SnapshotAt(total decimal.Decimal, start, end *time.Time, cliffMonths int, asOf time.Time) Snapshot {
	snap := Snapshot{AsOf: asOf, TotalEquity: total, CliffMonths: cliffMonths}

	if start == nil || end == nil {
		snap.VestedPercentage = total
		snap.UnvestedPercentage = decimal.Zero
		snap.FullyVested = true
		return snap
	}

	months := MonthsBetween(*start, *end)
	elapsed := max(MonthsBetween(*start, asOf), 0)
	snap.VestingMonths = months
	snap.MonthsElapsed = elapsed

	if months < 1 {
		if asOf.Before(*end) {
			snap.VestedPercentage = decimal.Zero
			snap.UnvestedPercentage = total
		} else {
			snap.VestedPercentage = total
			snap.UnvestedPercentage = decimal.Zero
			snap.FullyVested = true
		}
		return snap
	}

	cliff := min(max(cliffMonths, 0), months)
	snap.CliffMonths = cliff
	s := Schedule{TotalEquity: total, VestingMonths: months, CliffMonths: cliff, StartDate: *start}
	if asOf.Before(*start) {
		elapsed = 0
	}
	snap.VestedPercentage = s.VestedAt(elapsed)
	snap.UnvestedPercentage = s.UnvestedAt(elapsed)
	snap.FullyVested = snap.VestedPercentage.Equal(total)
	return snap
}
