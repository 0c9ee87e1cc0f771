package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

var errEntryMissing = errors.New("cap table entry missing")

// ErrStartupStillPresent is returned when a cap table cascade is asked for a
// startup that has not been deleted yet.
var ErrStartupStillPresent = errors.New("startup must be deleted before its cap table")

type capTableItem struct {
	ID               string  `dynamodbav:"id"`
	StartupID        string  `dynamodbav:"startup_id"`
	StakeholderID    string  `dynamodbav:"stakeholder_id"`
	StakeholderType  string  `dynamodbav:"stakeholder_type"`
	EquityPercentage string  `dynamodbav:"equity_percentage"`
	VestingStart     *string `dynamodbav:"vesting_start,omitempty"`
	VestingEnd       *string `dynamodbav:"vesting_end,omitempty"`
	CliffMonths      int     `dynamodbav:"cliff_months"`
	CreatedAt        string  `dynamodbav:"created_at"`
}

// CapTableDynamoRepository persists cap table entries in DynamoDB and keeps
// the per-startup allocation item in step with them.
type CapTableDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	startupsTable string
	ledger        *allocationLedger
}

var _ interfaces.ICapTableRepository = (*CapTableDynamoRepository)(nil)

func NewCapTableDynamoRepository(ddb DynamoDBAPI, tables Tables) *CapTableDynamoRepository {
	return &CapTableDynamoRepository{
		ddb:           ddb,
		tableName:     tables.CapTable,
		startupsTable: tables.Startups,
		ledger:        newAllocationLedger(ddb, tables.Allocations),
	}
}

func (r *CapTableDynamoRepository) Create(ctx context.Context, e entities.CapTableEntry) (entities.CapTableEntry, error) {
	put, err := r.putEntry(e)
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	err = r.ledger.apply(ctx, e.StartupID, func(current decimal.Decimal) (decimal.Decimal, []guardedWrite, error) {
		if entities.ExceedsAllocation(current, e.EquityPercentage) {
			return decimal.Zero, nil, entities.ErrAllocationExceeded
		}
		return current.Add(e.EquityPercentage), []guardedWrite{startupExists(r.startupsTable, e.StartupID), put}, nil
	})
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	return e, nil
}

func (r *CapTableDynamoRepository) GetByID(ctx context.Context, id string) (entities.CapTableEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CapTableEntry{}, nil
	}
	var it capTableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CapTableEntry{}, err
	}
	return fromCapTableItem(it)
}

// ListByStartupID returns entries in creation order.
func (r *CapTableDynamoRepository) ListByStartupID(ctx context.Context, startupID string) ([]entities.CapTableEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(startupIndex),
		KeyConditionExpression:    aws.String("#startup_id = :startup_id"),
		ExpressionAttributeNames:  map[string]string{"#startup_id": "startup_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":startup_id": &types.AttributeValueMemberS{Value: startupID}},
		ScanIndexForward:          aws.Bool(true),
	})

	out := make([]entities.CapTableEntry, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query cap table entries: %w", err)
		}
		var items []capTableItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			e, err := fromCapTableItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Update rewrites the mutable fields of an entry. The entry is re-read after
// the allocation item on every attempt so its old share matches the total the
// version guard protects.
func (r *CapTableDynamoRepository) Update(ctx context.Context, e entities.CapTableEntry) (entities.CapTableEntry, error) {
	current, err := r.GetByID(ctx, e.ID)
	if err != nil || current.ID == "" {
		return entities.CapTableEntry{}, err
	}

	var updated entities.CapTableEntry
	err = r.ledger.apply(ctx, current.StartupID, func(total decimal.Decimal) (decimal.Decimal, []guardedWrite, error) {
		latest, err := r.GetByID(ctx, e.ID)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if latest.ID == "" {
			return decimal.Zero, nil, errEntryMissing
		}

		updated = latest
		updated.EquityPercentage = e.EquityPercentage
		updated.VestingStart = e.VestingStart
		updated.VestingEnd = e.VestingEnd
		updated.CliffMonths = e.CliffMonths

		others := total.Sub(latest.EquityPercentage)
		if entities.ExceedsAllocation(others, updated.EquityPercentage) {
			return decimal.Zero, nil, entities.ErrAllocationExceeded
		}
		put, err := r.replaceEntry(updated)
		if err != nil {
			return decimal.Zero, nil, err
		}
		return others.Add(updated.EquityPercentage), []guardedWrite{put}, nil
	})
	if errors.Is(err, errEntryMissing) {
		return entities.CapTableEntry{}, nil
	}
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	return updated, nil
}

func (r *CapTableDynamoRepository) Delete(ctx context.Context, id string) (entities.CapTableEntry, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return entities.CapTableEntry{}, err
	}

	var removed entities.CapTableEntry
	err = r.ledger.apply(ctx, current.StartupID, func(total decimal.Decimal) (decimal.Decimal, []guardedWrite, error) {
		latest, err := r.GetByID(ctx, id)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if latest.ID == "" {
			return decimal.Zero, nil, errEntryMissing
		}
		removed = latest

		next := total.Sub(latest.EquityPercentage)
		if next.IsNegative() {
			next = decimal.Zero
		}
		del := guardedWrite{
			item: types.TransactWriteItem{Delete: &types.Delete{
				TableName:                aws.String(r.tableName),
				Key:                      idKey(latest.ID),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			err: errEntryMissing,
		}
		return next, []guardedWrite{del}, nil
	})
	if errors.Is(err, errEntryMissing) {
		return entities.CapTableEntry{}, nil
	}
	if err != nil {
		return entities.CapTableEntry{}, err
	}
	return removed, nil
}

// DeleteByStartupID removes every entry of the startup and its allocation
// item. The startup item must already be deleted: inserts carry a
// startupExists check, so once it is gone no entry can land behind the
// cascade. Entries are deleted one by one.
func (r *CapTableDynamoRepository) DeleteByStartupID(ctx context.Context, startupID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.startupsTable),
		Key:            idKey(startupID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, fmt.Errorf("check startup before cascade: %w", err)
	}
	if len(out.Item) != 0 {
		return 0, ErrStartupStillPresent
	}

	entries, err := r.ListByStartupID(ctx, startupID)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       idKey(e.ID),
		})
		if err != nil {
			return removed, fmt.Errorf("delete cap table entry: %w", err)
		}
		removed++
	}
	if err := r.ledger.remove(ctx, startupID); err != nil {
		return removed, err
	}
	return removed, nil
}

func (r *CapTableDynamoRepository) putEntry(e entities.CapTableEntry) (guardedWrite, error) {
	av, err := attributevalue.MarshalMap(toCapTableItem(e))
	if err != nil {
		return guardedWrite{}, err
	}
	return guardedWrite{
		item: types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		err: fmt.Errorf("cap table entry %s already exists", e.ID),
	}, nil
}

func (r *CapTableDynamoRepository) replaceEntry(e entities.CapTableEntry) (guardedWrite, error) {
	av, err := attributevalue.MarshalMap(toCapTableItem(e))
	if err != nil {
		return guardedWrite{}, err
	}
	return guardedWrite{
		item: types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		err: errEntryMissing,
	}, nil
}

func toCapTableItem(e entities.CapTableEntry) capTableItem {
	return capTableItem{
		ID:               e.ID,
		StartupID:        e.StartupID,
		StakeholderID:    e.StakeholderID,
		StakeholderType:  string(e.StakeholderType),
		EquityPercentage: e.EquityPercentage.String(),
		VestingStart:     formatTimePtr(e.VestingStart),
		VestingEnd:       formatTimePtr(e.VestingEnd),
		CliffMonths:      e.CliffMonths,
		CreatedAt:        formatTime(e.CreatedAt),
	}
}

func fromCapTableItem(it capTableItem) (entities.CapTableEntry, error) {
	pct, err := decimal.NewFromString(it.EquityPercentage)
	if err != nil {
		return entities.CapTableEntry{}, fmt.Errorf("parse entry %s equity: %w", it.ID, err)
	}
	vestingStart, err := parseTimePtr(it.VestingStart)
	if err != nil {
		return entities.CapTableEntry{}, fmt.Errorf("parse entry %s vesting start: %w", it.ID, err)
	}
	vestingEnd, err := parseTimePtr(it.VestingEnd)
	if err != nil {
		return entities.CapTableEntry{}, fmt.Errorf("parse entry %s vesting end: %w", it.ID, err)
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.CapTableEntry{}, fmt.Errorf("parse entry %s created at: %w", it.ID, err)
	}
	return entities.CapTableEntry{
		ID:               it.ID,
		StartupID:        it.StartupID,
		StakeholderID:    it.StakeholderID,
		StakeholderType:  entities.StakeholderType(it.StakeholderType),
		EquityPercentage: pct,
		VestingStart:     vestingStart,
		VestingEnd:       vestingEnd,
		CliffMonths:      it.CliffMonths,
		CreatedAt:        createdAt,
	}, nil
}
