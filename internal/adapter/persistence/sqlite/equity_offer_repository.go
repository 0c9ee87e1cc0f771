package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"
)

const offerColumns = `id, startup_id, professional_id, equity_percentage, vesting_period_months, cliff_period_months, role, salary, status, created_at, updated_at`

type EquityOfferRepository struct {
	store *Store
}

var _ interfaces.IEquityOfferRepository = (*EquityOfferRepository)(nil)

func NewEquityOfferRepository(store *Store) *EquityOfferRepository {
	return &EquityOfferRepository{store: store}
}

func (r *EquityOfferRepository) Create(ctx context.Context, o entities.EquityOffer) (entities.EquityOffer, error) {
	_, err := r.store.sqlDB.ExecContext(ctx, `
INSERT INTO equity_offers (`+offerColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		o.ID,
		o.StartupID,
		o.ProfessionalID,
		o.EquityPercentage.String(),
		o.VestingPeriodMonths,
		o.CliffPeriodMonths,
		o.Role,
		o.Salary.String(),
		string(o.Status),
		toMillis(o.CreatedAt),
		toMillis(o.UpdatedAt),
	)
	if err != nil {
		return entities.EquityOffer{}, fmt.Errorf("insert equity offer: %w", err)
	}
	return o, nil
}

func (r *EquityOfferRepository) GetByID(ctx context.Context, id string) (entities.EquityOffer, error) {
	return getOffer(ctx, r.store.sqlDB, id)
}

func (r *EquityOfferRepository) ListByStartupID(ctx context.Context, startupID string) ([]entities.EquityOffer, error) {
	return r.list(ctx, `WHERE startup_id = ? ORDER BY created_at DESC, seq DESC`, startupID)
}

func (r *EquityOfferRepository) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.EquityOffer, error) {
	return r.list(ctx, `WHERE professional_id = ? ORDER BY created_at DESC, seq DESC`, professionalID)
}

func (r *EquityOfferRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]entities.EquityOffer, error) {
	return r.list(ctx, `WHERE status = ? AND created_at < ? ORDER BY created_at ASC, seq ASC`, string(entities.OfferStatusPending), toMillis(cutoff))
}

// UpdateStatus moves an offer from one status to another. A zero offer means the
// id is unknown; an offer found in another status yields
// entities.ErrInvalidStateTransition and is left untouched.
func (r *EquityOfferRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OfferStatus, now time.Time) (entities.EquityOffer, error) {
	var updated entities.EquityOffer
	err := r.store.withTx(ctx, "offer status update", func(tx *sql.Tx) error {
		ok, err := transitionOffer(ctx, tx, id, from, to, now)
		if err != nil || !ok {
			return err
		}
		updated, err = getOffer(ctx, tx, id)
		return err
	})
	if err != nil {
		return entities.EquityOffer{}, err
	}
	return updated, nil
}

// Accept moves a PENDING offer to ACCEPTED and inserts entry in the same
// transaction. When the insert breaks the allocation bound nothing is written.
func (r *EquityOfferRepository) Accept(ctx context.Context, id string, entry entities.CapTableEntry, now time.Time) (entities.EquityOffer, entities.CapTableEntry, error) {
	var accepted entities.EquityOffer
	err := r.store.withTx(ctx, "offer accept", func(tx *sql.Tx) error {
		ok, err := transitionOffer(ctx, tx, id, entities.OfferStatusPending, entities.OfferStatusAccepted, now)
		if err != nil || !ok {
			return err
		}
		if err := insertEntry(ctx, tx, entry); err != nil {
			return err
		}
		accepted, err = getOffer(ctx, tx, id)
		return err
	})
	if err != nil {
		return entities.EquityOffer{}, entities.CapTableEntry{}, err
	}
	if accepted.ID == "" {
		return entities.EquityOffer{}, entities.CapTableEntry{}, nil
	}
	return accepted, entry, nil
}

// transitionOffer reports false with a nil error when the offer does not exist.
func transitionOffer(ctx context.Context, tx *sql.Tx, id string, from, to entities.OfferStatus, now time.Time) (bool, error) {
	res, err := tx.ExecContext(ctx, `
UPDATE equity_offers SET status = ?, updated_at = ? WHERE id = ? AND status = ?
`, string(to), toMillis(now), id, string(from))
	if err != nil {
		return false, fmt.Errorf("update equity offer status: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}
	if n == 1 {
		return true, nil
	}

	current, err := getOffer(ctx, tx, id)
	if err != nil {
		return false, err
	}
	if current.ID == "" {
		return false, nil
	}
	return false, entities.ErrInvalidStateTransition
}

func (r *EquityOfferRepository) list(ctx context.Context, where string, args ...any) ([]entities.EquityOffer, error) {
	rows, err := r.store.sqlDB.QueryContext(ctx, `SELECT `+offerColumns+` FROM equity_offers `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("list equity offers: %w", err)
	}
	defer rows.Close()

	out := make([]entities.EquityOffer, 0)
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan equity offer: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate equity offers: %w", err)
	}
	return out, nil
}

func getOffer(ctx context.Context, q queryer, id string) (entities.EquityOffer, error) {
	row := q.QueryRowContext(ctx, `SELECT `+offerColumns+` FROM equity_offers WHERE id = ?`, id)
	o, err := scanOffer(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.EquityOffer{}, nil
	}
	if err != nil {
		return entities.EquityOffer{}, fmt.Errorf("get equity offer: %w", err)
	}
	return o, nil
}

func scanOffer(scan func(dest ...any) error) (entities.EquityOffer, error) {
	var (
		o                    entities.EquityOffer
		status               string
		createdAt, updatedAt int64
	)
	if err := scan(
		&o.ID,
		&o.StartupID,
		&o.ProfessionalID,
		&o.EquityPercentage,
		&o.VestingPeriodMonths,
		&o.CliffPeriodMonths,
		&o.Role,
		&o.Salary,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return entities.EquityOffer{}, err
	}
	o.Status = entities.OfferStatus(status)
	o.CreatedAt = fromMillis(createdAt)
	o.UpdatedAt = fromMillis(updatedAt)
	return o, nil
}
