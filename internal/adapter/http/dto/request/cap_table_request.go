package request

import (
	"strings"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase"

	"github.com/shopspring/decimal"
)

type AddEntryRequest struct {
	StartupID        string           `json:"startup_id" binding:"required"`
	StakeholderID    string           `json:"stakeholder_id" binding:"required"`
	StakeholderType  string           `json:"stakeholder_type" binding:"required"`
	EquityPercentage *decimal.Decimal `json:"equity_percentage" binding:"required"`
	VestingStart     *string          `json:"vesting_start"`
	VestingEnd       *string          `json:"vesting_end"`
	CliffMonths      int              `json:"cliff_months"`
}

func (r AddEntryRequest) ToInput() (usecase.AddEntryInput, error) {
	start, err := parseDatePtr(r.VestingStart)
	if err != nil {
		return usecase.AddEntryInput{}, err
	}
	end, err := parseDatePtr(r.VestingEnd)
	if err != nil {
		return usecase.AddEntryInput{}, err
	}
	return usecase.AddEntryInput{
		StartupID:        r.StartupID,
		StakeholderID:    r.StakeholderID,
		StakeholderType:  entities.StakeholderType(strings.ToUpper(strings.TrimSpace(r.StakeholderType))),
		EquityPercentage: *r.EquityPercentage,
		VestingStart:     start,
		VestingEnd:       end,
		CliffMonths:      r.CliffMonths,
	}, nil
}

// UpdateEntryRequest is a partial update: omitted fields keep their value.
type UpdateEntryRequest struct {
	EquityPercentage *decimal.Decimal `json:"equity_percentage"`
	VestingStart     *string          `json:"vesting_start"`
	VestingEnd       *string          `json:"vesting_end"`
	CliffMonths      *int             `json:"cliff_months"`
}

func (r UpdateEntryRequest) ToInput() (usecase.UpdateEntryInput, error) {
	start, err := parseDatePtr(r.VestingStart)
	if err != nil {
		return usecase.UpdateEntryInput{}, err
	}
	end, err := parseDatePtr(r.VestingEnd)
	if err != nil {
		return usecase.UpdateEntryInput{}, err
	}
	return usecase.UpdateEntryInput{
		EquityPercentage: r.EquityPercentage,
		VestingStart:     start,
		VestingEnd:       end,
		CliffMonths:      r.CliffMonths,
	}, nil
}
