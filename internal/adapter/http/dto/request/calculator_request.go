package request

import (
	"startlabx/internal/usecase"

	"github.com/shopspring/decimal"
)

type VestingScheduleRequest struct {
	EquityPercentage *decimal.Decimal `json:"equity_percentage" binding:"required"`
	VestingMonths    *int             `json:"vesting_months" binding:"required"`
	CliffMonths      int              `json:"cliff_months"`
	StartDate        string           `json:"start_date"`
}

func (r VestingScheduleRequest) ToInput() (usecase.VestingScheduleInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.VestingScheduleInput{}, err
	}
	return usecase.VestingScheduleInput{
		EquityPercentage: *r.EquityPercentage,
		VestingMonths:    *r.VestingMonths,
		CliffMonths:      r.CliffMonths,
		StartDate:        start,
	}, nil
}

type DilutionRequest struct {
	CurrentEquity       *decimal.Decimal `json:"current_equity" binding:"required"`
	NewInvestmentAmount *decimal.Decimal `json:"new_investment_amount" binding:"required"`
	PreMoneyValuation   *decimal.Decimal `json:"pre_money_valuation" binding:"required"`
}

type ExitRequest struct {
	EquityPercentage      *decimal.Decimal `json:"equity_percentage" binding:"required"`
	ExitValuation         *decimal.Decimal `json:"exit_valuation" binding:"required"`
	LiquidationPreference *decimal.Decimal `json:"liquidation_preference"`
}

// Preference defaults to zero when omitted.
func (r ExitRequest) Preference() decimal.Decimal {
	if r.LiquidationPreference == nil {
		return decimal.Zero
	}
	return *r.LiquidationPreference
}
