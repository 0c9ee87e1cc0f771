package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

var errOfferNotPending = errors.New("equity offer left the expected status")

type equityOfferItem struct {
	ID                  string `dynamodbav:"id"`
	StartupID           string `dynamodbav:"startup_id"`
	ProfessionalID      string `dynamodbav:"professional_id"`
	EquityPercentage    string `dynamodbav:"equity_percentage"`
	VestingPeriodMonths int    `dynamodbav:"vesting_period_months"`
	CliffPeriodMonths   int    `dynamodbav:"cliff_period_months"`
	Role                string `dynamodbav:"role"`
	Salary              string `dynamodbav:"salary"`
	Status              string `dynamodbav:"status"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// EquityOfferDynamoRepository persists equity offers in DynamoDB. Accept
// shares the allocation ledger with CapTableDynamoRepository.
type EquityOfferDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	capTable  *CapTableDynamoRepository
}

var _ interfaces.IEquityOfferRepository = (*EquityOfferDynamoRepository)(nil)

func NewEquityOfferDynamoRepository(ddb DynamoDBAPI, tables Tables) *EquityOfferDynamoRepository {
	return &EquityOfferDynamoRepository{
		ddb:       ddb,
		tableName: tables.Offers,
		capTable:  NewCapTableDynamoRepository(ddb, tables),
	}
}

func (r *EquityOfferDynamoRepository) Create(ctx context.Context, o entities.EquityOffer) (entities.EquityOffer, error) {
	av, err := attributevalue.MarshalMap(toEquityOfferItem(o))
	if err != nil {
		return entities.EquityOffer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EquityOffer{}, err
	}
	return o, nil
}

func (r *EquityOfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.EquityOffer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EquityOffer{}, err
	}
	if len(out.Item) == 0 {
		return entities.EquityOffer{}, nil
	}

	var it equityOfferItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EquityOffer{}, err
	}
	return fromEquityOfferItem(it)
}

func (r *EquityOfferDynamoRepository) ListByStartupID(ctx context.Context, startupID string) ([]entities.EquityOffer, error) {
	return r.query(ctx, startupIndex, "startup_id", startupID, false, nil)
}

func (r *EquityOfferDynamoRepository) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.EquityOffer, error) {
	return r.query(ctx, professionalIndex, "professional_id", professionalID, false, nil)
}

func (r *EquityOfferDynamoRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]entities.EquityOffer, error) {
	before := formatTime(cutoff)
	return r.query(ctx, statusIndex, "status", string(entities.OfferStatusPending), true, &before)
}

// UpdateStatus moves an offer from one status to another. A zero offer means the
// id is unknown; an offer in another status yields
// entities.ErrInvalidStateTransition.
func (r *EquityOfferDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OfferStatus, now time.Time) (entities.EquityOffer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ExpressionAttributeNames: mergeNames(statusNames(), map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return r.explainRejectedTransition(ctx, id)
		}
		return entities.EquityOffer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EquityOffer{}, nil
	}
	var it equityOfferItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EquityOffer{}, err
	}
	return fromEquityOfferItem(it)
}

// Accept moves a PENDING offer to ACCEPTED and puts entry in one transaction
// with the startup allocation update.
func (r *EquityOfferDynamoRepository) Accept(ctx context.Context, id string, entry entities.CapTableEntry, now time.Time) (entities.EquityOffer, entities.CapTableEntry, error) {
	offer, err := r.GetByID(ctx, id)
	if err != nil || offer.ID == "" {
		return entities.EquityOffer{}, entities.CapTableEntry{}, err
	}
	if offer.Status != entities.OfferStatusPending {
		return entities.EquityOffer{}, entities.CapTableEntry{}, entities.ErrInvalidStateTransition
	}

	put, err := r.capTable.putEntry(entry)
	if err != nil {
		return entities.EquityOffer{}, entities.CapTableEntry{}, err
	}
	transition := guardedWrite{
		item: types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(id),
			ConditionExpression: aws.String("#status = :from"),
			UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from":       &types.AttributeValueMemberS{Value: string(entities.OfferStatusPending)},
				":to":         &types.AttributeValueMemberS{Value: string(entities.OfferStatusAccepted)},
				":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
			},
			ExpressionAttributeNames: statusNames(),
		}},
		err: errOfferNotPending,
	}

	err = r.capTable.ledger.apply(ctx, entry.StartupID, func(current decimal.Decimal) (decimal.Decimal, []guardedWrite, error) {
		if entities.ExceedsAllocation(current, entry.EquityPercentage) {
			return decimal.Zero, nil, entities.ErrAllocationExceeded
		}
		return current.Add(entry.EquityPercentage), []guardedWrite{
			transition,
			startupExists(r.capTable.startupsTable, entry.StartupID),
			put,
		}, nil
	})
	if errors.Is(err, errOfferNotPending) {
		o, err := r.explainRejectedTransition(ctx, id)
		return o, entities.CapTableEntry{}, err
	}
	if err != nil {
		return entities.EquityOffer{}, entities.CapTableEntry{}, err
	}

	offer.Status = entities.OfferStatusAccepted
	offer.UpdatedAt = now.UTC()
	return offer, entry, nil
}

// explainRejectedTransition tells a missing offer (zero, nil) from one that is
// no longer in the expected status.
func (r *EquityOfferDynamoRepository) explainRejectedTransition(ctx context.Context, id string) (entities.EquityOffer, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.EquityOffer{}, err
	}
	if current.ID == "" {
		return entities.EquityOffer{}, nil
	}
	return entities.EquityOffer{}, entities.ErrInvalidStateTransition
}

// query walks a created_at ranged index. A non-nil before bounds created_at
// from above.
func (r *EquityOfferDynamoRepository) query(ctx context.Context, index, key, value string, ascending bool, before *string) ([]entities.EquityOffer, error) {
	cond := "#k = :v"
	names := map[string]string{"#k": key}
	values := map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}}
	if before != nil {
		cond += " AND #created_at < :before"
		names["#created_at"] = "created_at"
		values[":before"] = &types.AttributeValueMemberS{Value: *before}
	}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(ascending),
	})

	out := make([]entities.EquityOffer, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query equity offers: %w", err)
		}
		var items []equityOfferItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o, err := fromEquityOfferItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func statusNames() map[string]string {
	return map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
}

func toEquityOfferItem(o entities.EquityOffer) equityOfferItem {
	return equityOfferItem{
		ID:                  o.ID,
		StartupID:           o.StartupID,
		ProfessionalID:      o.ProfessionalID,
		EquityPercentage:    o.EquityPercentage.String(),
		VestingPeriodMonths: o.VestingPeriodMonths,
		CliffPeriodMonths:   o.CliffPeriodMonths,
		Role:                o.Role,
		Salary:              o.Salary.String(),
		Status:              string(o.Status),
		CreatedAt:           formatTime(o.CreatedAt),
		UpdatedAt:           formatTime(o.UpdatedAt),
	}
}

func fromEquityOfferItem(it equityOfferItem) (entities.EquityOffer, error) {
	pct, err := decimal.NewFromString(it.EquityPercentage)
	if err != nil {
		return entities.EquityOffer{}, fmt.Errorf("parse offer %s equity: %w", it.ID, err)
	}
	salary := decimal.Zero
	if it.Salary != "" {
		if salary, err = decimal.NewFromString(it.Salary); err != nil {
			return entities.EquityOffer{}, fmt.Errorf("parse offer %s salary: %w", it.ID, err)
		}
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.EquityOffer{}, fmt.Errorf("parse offer %s created at: %w", it.ID, err)
	}
	updatedAt, err := parseTime(it.UpdatedAt)
	if err != nil {
		return entities.EquityOffer{}, fmt.Errorf("parse offer %s updated at: %w", it.ID, err)
	}
	return entities.EquityOffer{
		ID:                  it.ID,
		StartupID:           it.StartupID,
		ProfessionalID:      it.ProfessionalID,
		EquityPercentage:    pct,
		VestingPeriodMonths: it.VestingPeriodMonths,
		CliffPeriodMonths:   it.CliffPeriodMonths,
		Role:                it.Role,
		Salary:              salary,
		Status:              entities.OfferStatus(it.Status),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}
