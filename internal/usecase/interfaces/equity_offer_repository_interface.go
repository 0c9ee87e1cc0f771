package interfaces

import (
	"context"
	"time"

	"startlabx/internal/domain/entities"
)

// IEquityOfferRepository abstracts persistence for EquityOffer.
//
// Accept is the only multi-record write: the PENDING -> ACCEPTED transition and
// the cap table insert commit together or not at all.
//
// A zero offer (ID == "") with a nil error means not found.
type IEquityOfferRepository interface {
	Create(ctx context.Context, o entities.EquityOffer) (entities.EquityOffer, error)
	GetByID(ctx context.Context, id string) (entities.EquityOffer, error)
	ListByStartupID(ctx context.Context, startupID string) ([]entities.EquityOffer, error)
	ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.EquityOffer, error)
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]entities.EquityOffer, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OfferStatus, now time.Time) (entities.EquityOffer, error)
	Accept(ctx context.Context, id string, entry entities.CapTableEntry, now time.Time) (entities.EquityOffer, entities.CapTableEntry, error)
}
