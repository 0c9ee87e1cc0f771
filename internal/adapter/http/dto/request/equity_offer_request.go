package request

import (
	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateOfferRequest struct {
	StartupID        string           `json:"startup_id" binding:"required"`
	ProfessionalID   string           `json:"professional_id" binding:"required"`
	EquityPercentage *decimal.Decimal `json:"equity_percentage" binding:"required"`
	VestingPeriod    *int             `json:"vesting_period"`
	CliffPeriod      *int             `json:"cliff_period"`
	Role             string           `json:"role"`
	Salary           *decimal.Decimal `json:"salary"`
}

func (r CreateOfferRequest) ToInput() usecase.CreateOfferInput {
	salary := decimal.Zero
	if r.Salary != nil {
		salary = *r.Salary
	}
	return usecase.CreateOfferInput{
		StartupID:           r.StartupID,
		ProfessionalID:      r.ProfessionalID,
		EquityPercentage:    *r.EquityPercentage,
		VestingPeriodMonths: r.VestingPeriod,
		CliffPeriodMonths:   r.CliffPeriod,
		Role:                r.Role,
		Salary:              salary,
	}
}

// UpdateOfferStatusRequest is the accept/reject payload. Only ACCEPTED and
// REJECTED are meaningful; anything else is rejected by the use case.
type UpdateOfferStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOfferStatusRequest) OfferStatus() entities.OfferStatus {
	return entities.OfferStatus(r.Status)
}
