package response

import (
	"time"

	"startlabx/internal/domain/calculator"
)

type VestingPointResponse struct {
	Month              int     `json:"month"`
	Date               string  `json:"date"`
	VestedPercentage   float64 `json:"vestedPercentage"`
	UnvestedPercentage float64 `json:"unvestedPercentage"`
}

func FromSchedule(points []calculator.VestingPoint) []VestingPointResponse {
	out := make([]VestingPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, VestingPointResponse{
			Month:              p.Month,
			Date:               p.Date.Format(time.DateOnly),
			VestedPercentage:   p.VestedPercentage.InexactFloat64(),
			UnvestedPercentage: p.UnvestedPercentage.InexactFloat64(),
		})
	}
	return out
}

type DilutionResponse struct {
	PreMoneyValuation   float64 `json:"preMoneyValuation"`
	NewInvestmentAmount float64 `json:"newInvestmentAmount"`
	PostMoneyValuation  float64 `json:"postMoneyValuation"`
	NewInvestorEquity   float64 `json:"newInvestorEquity"`
	CurrentEquity       float64 `json:"currentEquity"`
	DilutedEquity       float64 `json:"dilutedEquity"`
	DilutionPercentage  float64 `json:"dilutionPercentage"`
}

func FromDilution(r calculator.DilutionResult) DilutionResponse {
	return DilutionResponse{
		PreMoneyValuation:   r.PreMoneyValuation.InexactFloat64(),
		NewInvestmentAmount: r.NewInvestmentAmount.InexactFloat64(),
		PostMoneyValuation:  r.PostMoneyValuation.InexactFloat64(),
		NewInvestorEquity:   r.NewInvestorEquity.InexactFloat64(),
		CurrentEquity:       r.CurrentEquity.InexactFloat64(),
		DilutedEquity:       r.DilutedEquity.InexactFloat64(),
		DilutionPercentage:  r.DilutionPercentage.InexactFloat64(),
	}
}

type ExitResponse struct {
	ExitValuation         float64 `json:"exitValuation"`
	EquityPercentage      float64 `json:"equityPercentage"`
	EquityValue           float64 `json:"equityValue"`
	LiquidationPreference float64 `json:"liquidationPreference"`
	NetValue              float64 `json:"netValue"`
}

func FromExit(r calculator.ExitResult) ExitResponse {
	return ExitResponse{
		ExitValuation:         r.ExitValuation.InexactFloat64(),
		EquityPercentage:      r.EquityPercentage.InexactFloat64(),
		EquityValue:           r.EquityValue.InexactFloat64(),
		LiquidationPreference: r.LiquidationPreference.InexactFloat64(),
		NetValue:              r.NetValue.InexactFloat64(),
	}
}
