package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidValuation = errors.New("invalid valuation")
	ErrInvalidInput     = errors.New("invalid calculator input")
)

var hundred = decimal.NewFromInt(100)

type DilutionResult struct {
	PreMoneyValuation   decimal.Decimal
	NewInvestmentAmount decimal.Decimal
	PostMoneyValuation  decimal.Decimal
	NewInvestorEquity   decimal.Decimal
	CurrentEquity       decimal.Decimal
	DilutedEquity       decimal.Decimal
	DilutionPercentage  decimal.Decimal
}

// Dilution computes the effect of a priced round on an existing holding.
func Dilution(currentEquity, newInvestmentAmount, preMoneyValuation decimal.Decimal) (DilutionResult, error) {
	if !preMoneyValuation.IsPositive() {
		return DilutionResult{}, ErrInvalidValuation
	}
	if newInvestmentAmount.IsNegative() || !currentEquity.IsPositive() || currentEquity.GreaterThan(hundred) {
		return DilutionResult{}, ErrInvalidInput
	}

	post := preMoneyValuation.Add(newInvestmentAmount)
	if post.IsZero() {
		return DilutionResult{}, ErrInvalidValuation
	}

	newInvestorEquity := newInvestmentAmount.Div(post).Mul(hundred)
	diluted := currentEquity.Mul(decimal.NewFromInt(1).Sub(newInvestorEquity.Div(hundred)))
	dilution := currentEquity.Sub(diluted).Div(currentEquity).Mul(hundred)

	return DilutionResult{
		PreMoneyValuation:   preMoneyValuation,
		NewInvestmentAmount: newInvestmentAmount,
		PostMoneyValuation:  post,
		NewInvestorEquity:   newInvestorEquity,
		CurrentEquity:       currentEquity,
		DilutedEquity:       diluted,
		DilutionPercentage:  dilution,
	}, nil
}

type ExitResult struct {
	ExitValuation         decimal.Decimal
	EquityPercentage      decimal.Decimal
	EquityValue           decimal.Decimal
	LiquidationPreference decimal.Decimal
	NetValue              decimal.Decimal
}

// Exit computes the proceeds of a holding at an exit valuation, net of a
// liquidation preference paid ahead of it.
func Exit(equityPercentage, exitValuation, liquidationPreference decimal.Decimal) (ExitResult, error) {
	if equityPercentage.IsNegative() || equityPercentage.GreaterThan(hundred) ||
		exitValuation.IsNegative() || liquidationPreference.IsNegative() {
		return ExitResult{}, ErrInvalidInput
	}

	equityValue := equityPercentage.Div(hundred).Mul(exitValuation)
	return ExitResult{
		ExitValuation:         exitValuation,
		EquityPercentage:      equityPercentage,
		EquityValue:           equityValue,
		LiquidationPreference: liquidationPreference,
		NetValue:              decimal.Max(equityValue.Sub(liquidationPreference), decimal.Zero),
	}, nil
}
