// Package calculator holds the pure equity math: vesting curves, dilution and
// exit proceeds. Nothing here touches storage or the clock.
package calculator

import (
	"errors"
	"iter"
	"time"

	"startlabx/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidScheduleParameters = errors.New("invalid vesting schedule parameters")

// Schedule is a linear monthly vesting curve with a cliff.
//
// Nothing vests before CliffMonths; at the cliff the accrued months vest in one
// lump sum and vesting is linear afterwards, reaching TotalEquity at VestingMonths.
type Schedule struct {
	TotalEquity   decimal.Decimal
	VestingMonths int
	CliffMonths   int
	StartDate     time.Time
}

// VestingPoint is one month of a schedule.
type VestingPoint struct {
	Month              int
	Date               time.Time
	VestedPercentage   decimal.Decimal
	UnvestedPercentage decimal.Decimal
}

// NewSchedule validates the curve parameters. Vesting is capped at the same
// entities.MaxVestingPeriodMonths offers accept, which also bounds Points.
func NewSchedule(totalEquity decimal.Decimal, vestingMonths, cliffMonths int, startDate time.Time) (Schedule, error) {
	if !totalEquity.IsPositive() || vestingMonths < 1 || vestingMonths > entities.MaxVestingPeriodMonths ||
		cliffMonths < 0 || cliffMonths > vestingMonths {
		return Schedule{}, ErrInvalidScheduleParameters
	}
	return Schedule{
		TotalEquity:   totalEquity,
		VestingMonths: vestingMonths,
		CliffMonths:   cliffMonths,
		StartDate:     startDate,
	}, nil
}

// VestedAt returns the vested percentage after month months.
func (s Schedule) VestedAt(month int) decimal.Decimal {
	if month <= 0 || month < s.CliffMonths {
		return decimal.Zero
	}
	if month >= s.VestingMonths {
		return s.TotalEquity
	}
	// Multiply first so the curve stays exact at whole fractions of the grant.
	vested := s.TotalEquity.Mul(decimal.NewFromInt(int64(month))).Div(decimal.NewFromInt(int64(s.VestingMonths)))
	return decimal.Min(vested, s.TotalEquity)
}

func (s Schedule) UnvestedAt(month int) decimal.Decimal {
	return decimal.Max(s.TotalEquity.Sub(s.VestedAt(month)), decimal.Zero)
}

func (s Schedule) Point(month int) VestingPoint {
	return VestingPoint{
		Month:              month,
		Date:               s.StartDate.AddDate(0, month, 0),
		VestedPercentage:   s.VestedAt(month),
		UnvestedPercentage: s.UnvestedAt(month),
	}
}

// Points yields months 0..VestingMonths inclusive. Each range over the
// sequence starts again from month 0.
func (s Schedule) Points() iter.Seq[VestingPoint] {
	return func(yield func(VestingPoint) bool) {
		for m := 0; m <= s.VestingMonths; m++ {
			if !yield(s.Point(m)) {
				return
			}
		}
	}
}

// MonthsBetween counts whole calendar months from start to end, using the same
// month arithmetic as Point. It returns a negative value when end is before start.
func MonthsBetween(start, end time.Time) int {
	start, end = start.UTC(), end.UTC()
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if start.AddDate(0, months, 0).After(end) {
		months--
	}
	return months
}
