package usecase

import (
	"context"
	"slices"
	"time"

	"startlabx/internal/domain/calculator"

	"github.com/shopspring/decimal"
)

type VestingScheduleInput struct {
	EquityPercentage decimal.Decimal
	VestingMonths    int
	CliffMonths      int
	// StartDate defaults to now when zero.
	StartDate time.Time
}

// ICalculatorUseCase serves the scenario calculators. Nothing is persisted.
type ICalculatorUseCase interface {
	VestingSchedule(ctx context.Context, in VestingScheduleInput) ([]calculator.VestingPoint, error)
	Dilution(ctx context.Context, currentEquity, newInvestmentAmount, preMoneyValuation decimal.Decimal) (calculator.DilutionResult, error)
	Exit(ctx context.Context, equityPercentage, exitValuation, liquidationPreference decimal.Decimal) (calculator.ExitResult, error)
}

type CalculatorUseCase struct {
	now func() time.Time
}

var _ ICalculatorUseCase = (*CalculatorUseCase)(nil)

func NewCalculatorUseCase() *CalculatorUseCase {
	return &CalculatorUseCase{now: func() time.Time { return time.Now().UTC() }}
}

func (u *CalculatorUseCase) VestingSchedule(_ context.Context, in VestingScheduleInput) ([]calculator.VestingPoint, error) {
	start := in.StartDate
	if start.IsZero() {
		start = u.now()
	}
	s, err := calculator.NewSchedule(in.EquityPercentage, in.VestingMonths, in.CliffMonths, start.UTC())
	if err != nil {
		return nil, err
	}
	return slices.Collect(s.Points()), nil
}

func (u *CalculatorUseCase) Dilution(_ context.Context, currentEquity, newInvestmentAmount, preMoneyValuation decimal.Decimal) (calculator.DilutionResult, error) {
	return calculator.Dilution(currentEquity, newInvestmentAmount, preMoneyValuation)
}

func (u *CalculatorUseCase) Exit(_ context.Context, equityPercentage, exitValuation, liquidationPreference decimal.Decimal) (calculator.ExitResult, error) {
	return calculator.Exit(equityPercentage, exitValuation, liquidationPreference)
}
