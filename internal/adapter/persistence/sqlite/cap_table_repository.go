package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const capTableColumns = `id, startup_id, stakeholder_id, stakeholder_type, equity_percentage, vesting_start, vesting_end, cliff_months, created_at`

type CapTableRepository struct {
	store *Store
}

var _ interfaces.ICapTableRepository = (*CapTableRepository)(nil)

func NewCapTableRepository(store *Store) *CapTableRepository {
	return &CapTableRepository{store: store}
}

func (r *CapTableRepository) Create(ctx context.Context, e entities.CapTableEntry) (entities.CapTableEntry, error) {
	err := r.store.withTx(ctx, "cap table insert", func(tx *sql.Tx) error {
		return insertEntry(ctx, tx, e)
	})
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	return e, nil
}

func (r *CapTableRepository) GetByID(ctx context.Context, id string) (entities.CapTableEntry, error) {
	return getEntry(ctx, r.store.sqlDB, id)
}

// ListByStartupID returns entries in insertion order.
func (r *CapTableRepository) ListByStartupID(ctx context.Context, startupID string) ([]entities.CapTableEntry, error) {
	rows, err := r.store.sqlDB.QueryContext(ctx, `
SELECT `+capTableColumns+`
FROM cap_table_entries
WHERE startup_id = ?
ORDER BY seq ASC
`, startupID)
	if err != nil {
		return nil, fmt.Errorf("list cap table entries: %w", err)
	}
	defer rows.Close()

	out := make([]entities.CapTableEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan cap table entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cap table entries: %w", err)
	}
	return out, nil
}

// Update rewrites the mutable fields of an entry. The allocation check uses the
// startup total without the entry's current percentage.
func (r *CapTableRepository) Update(ctx context.Context, e entities.CapTableEntry) (entities.CapTableEntry, error) {
	var updated entities.CapTableEntry
	err := r.store.withTx(ctx, "cap table update", func(tx *sql.Tx) error {
		current, err := getEntry(ctx, tx, e.ID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return nil
		}

		others, err := allocatedExcluding(ctx, tx, current.StartupID, current.ID)
		if err != nil {
			return err
		}
		if entities.ExceedsAllocation(others, e.EquityPercentage) {
			return entities.ErrAllocationExceeded
		}

		if _, err := tx.ExecContext(ctx, `
UPDATE cap_table_entries
SET equity_percentage = ?, vesting_start = ?, vesting_end = ?, cliff_months = ?
WHERE id = ?
`, e.EquityPercentage.String(), toNullMillis(e.VestingStart), toNullMillis(e.VestingEnd), e.CliffMonths, current.ID); err != nil {
			return fmt.Errorf("update cap table entry: %w", err)
		}

		updated, err = getEntry(ctx, tx, current.ID)
		return err
	})
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	return updated, nil
}

func (r *CapTableRepository) Delete(ctx context.Context, id string) (entities.CapTableEntry, error) {
	var removed entities.CapTableEntry
	err := r.store.withTx(ctx, "cap table delete", func(tx *sql.Tx) error {
		current, err := getEntry(ctx, tx, id)
		if err != nil || current.ID == "" {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM cap_table_entries WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete cap table entry: %w", err)
		}
		removed = current
		return nil
	})
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	return removed, nil
}

func (r *CapTableRepository) DeleteByStartupID(ctx context.Context, startupID string) (int, error) {
	res, err := r.store.sqlDB.ExecContext(ctx, `DELETE FROM cap_table_entries WHERE startup_id = ?`, startupID)
	if err != nil {
		return 0, fmt.Errorf("delete cap table entries: %w", err)
	}
	return rowsAffected(res)
}

// insertEntry checks the allocation bound and inserts e. It must run inside a
// write transaction.
func insertEntry(ctx context.Context, tx *sql.Tx, e entities.CapTableEntry) error {
	allocated, err := allocatedExcluding(ctx, tx, e.StartupID, "")
	if err != nil {
		return err
	}
	if entities.ExceedsAllocation(allocated, e.EquityPercentage) {
		return entities.ErrAllocationExceeded
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO cap_table_entries (`+capTableColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		e.ID,
		e.StartupID,
		e.StakeholderID,
		string(e.StakeholderType),
		e.EquityPercentage.String(),
		toNullMillis(e.VestingStart),
		toNullMillis(e.VestingEnd),
		e.CliffMonths,
		toMillis(e.CreatedAt),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.ErrStartupGone
		}
		return fmt.Errorf("insert cap table entry: %w", err)
	}
	return nil
}

// allocatedExcluding sums the startup's percentages, leaving out excludeID.
func allocatedExcluding(ctx context.Context, q queryer, startupID, excludeID string) (decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx, `
SELECT equity_percentage FROM cap_table_entries WHERE startup_id = ? AND id <> ?
`, startupID, excludeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum allocation: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var pct decimal.Decimal
		if err := rows.Scan(&pct); err != nil {
			return decimal.Zero, fmt.Errorf("scan allocation: %w", err)
		}
		total = total.Add(pct)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("iterate allocation: %w", err)
	}
	return total, nil
}

func getEntry(ctx context.Context, q queryer, id string) (entities.CapTableEntry, error) {
	row := q.QueryRowContext(ctx, `SELECT `+capTableColumns+` FROM cap_table_entries WHERE id = ?`, strings.TrimSpace(id))
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CapTableEntry{}, nil
	}
	if err != nil {
		return entities.CapTableEntry{}, fmt.Errorf("get cap table entry: %w", err)
	}
	return e, nil
}

func scanEntry(scan func(dest ...any) error) (entities.CapTableEntry, error) {
	var (
		e               entities.CapTableEntry
		stakeholderType string
		start, end      sql.NullInt64
		createdAt       int64
	)
	if err := scan(
		&e.ID,
		&e.StartupID,
		&e.StakeholderID,
		&stakeholderType,
		&e.EquityPercentage,
		&start,
		&end,
		&e.CliffMonths,
		&createdAt,
	); err != nil {
		return entities.CapTableEntry{}, err
	}
	e.StakeholderType = entities.StakeholderType(stakeholderType)
	e.VestingStart = fromNullMillis(start)
	e.VestingEnd = fromNullMillis(end)
	e.CreatedAt = fromMillis(createdAt)
	return e, nil
}
