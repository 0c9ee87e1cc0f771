package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"startlabx/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DefaultAllocationAttempts bounds the optimistic retries on the allocation item.
const DefaultAllocationAttempts = 5

const conditionalCheckFailed = "ConditionalCheckFailed"

type allocation struct {
	Total   decimal.Decimal
	Version int64
}

// guardedWrite is a transaction item whose condition failure maps to err.
type guardedWrite struct {
	item types.TransactWriteItem
	err  error
}

// allocationLedger keeps one item per startup holding the summed equity of its
// cap table. Every write that changes the sum commits in the same transaction
// as a version-guarded update of that item, so two writers never both pass
// the bound check on the same total.
type allocationLedger struct {
	ddb         DynamoDBAPI
	table       string
	maxAttempts int
}

func newAllocationLedger(ddb DynamoDBAPI, table string) *allocationLedger {
	return &allocationLedger{ddb: ddb, table: table, maxAttempts: DefaultAllocationAttempts}
}

func (l *allocationLedger) get(ctx context.Context, startupID string) (allocation, error) {
	out, err := l.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(l.table),
		Key: map[string]types.AttributeValue{
			"startup_id": &types.AttributeValueMemberS{Value: startupID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return allocation{}, fmt.Errorf("get allocation: %w", err)
	}
	a := allocation{Total: decimal.Zero}
	if len(out.Item) == 0 {
		return a, nil
	}
	if v, ok := out.Item["total_allocated"].(*types.AttributeValueMemberS); ok {
		if a.Total, err = decimal.NewFromString(v.Value); err != nil {
			return allocation{}, fmt.Errorf("parse allocation total: %w", err)
		}
	}
	if v, ok := out.Item["version"].(*types.AttributeValueMemberN); ok {
		if a.Version, err = strconv.ParseInt(v.Value, 10, 64); err != nil {
			return allocation{}, fmt.Errorf("parse allocation version: %w", err)
		}
	}
	return a, nil
}

// apply reads the startup allocation, asks build for the new total and the
// writes that produce it, and commits them atomically. build runs again on
// every retry. When the version keeps moving the call fails with
// entities.ErrConcurrentModification.
func (l *allocationLedger) apply(
	ctx context.Context,
	startupID string,
	build func(current decimal.Decimal) (decimal.Decimal, []guardedWrite, error),
) error {
	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		current, err := l.get(ctx, startupID)
		if err != nil {
			return err
		}
		next, writes, err := build(current.Total)
		if err != nil {
			return err
		}

		items := make([]types.TransactWriteItem, 0, len(writes)+1)
		items = append(items, l.versionedUpdate(startupID, current, next))
		for _, w := range writes {
			items = append(items, w.item)
		}

		_, err = l.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
		if err == nil {
			return nil
		}

		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			return fmt.Errorf("transact allocation write: %w", err)
		}
		reasons := tce.CancellationReasons
		for i, w := range writes {
			if i+1 < len(reasons) && aws.ToString(reasons[i+1].Code) == conditionalCheckFailed {
				return w.err
			}
		}
		if len(reasons) > 0 && aws.ToString(reasons[0].Code) == conditionalCheckFailed {
			log.Printf("[captable][dynamodb] allocation version conflict startup_id=%s attempt=%d", startupID, attempt)
			continue
		}
		return fmt.Errorf("transact allocation write: %w", err)
	}
	return entities.ErrConcurrentModification
}

func (l *allocationLedger) versionedUpdate(startupID string, current allocation, next decimal.Decimal) types.TransactWriteItem {
	update := &types.Update{
		TableName: aws.String(l.table),
		Key: map[string]types.AttributeValue{
			"startup_id": &types.AttributeValueMemberS{Value: startupID},
		},
		UpdateExpression: aws.String("SET #total = :total, #version = :next"),
		ExpressionAttributeNames: map[string]string{
			"#total":   "total_allocated",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total": &types.AttributeValueMemberS{Value: next.String()},
			":next":  &types.AttributeValueMemberN{Value: strconv.FormatInt(current.Version+1, 10)},
		},
	}
	if current.Version == 0 {
		update.ConditionExpression = aws.String("attribute_not_exists(#sid)")
		update.ExpressionAttributeNames["#sid"] = "startup_id"
	} else {
		update.ConditionExpression = aws.String("#version = :expected")
		update.ExpressionAttributeValues[":expected"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(current.Version, 10)}
	}
	return types.TransactWriteItem{Update: update}
}

func (l *allocationLedger) remove(ctx context.Context, startupID string) error {
	_, err := l.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(l.table),
		Key: map[string]types.AttributeValue{
			"startup_id": &types.AttributeValueMemberS{Value: startupID},
		},
	})
	if err != nil {
		return fmt.Errorf("delete allocation: %w", err)
	}
	return nil
}

// startupExists guards an insert against a startup deleted concurrently.
func startupExists(table, startupID string) guardedWrite {
	return guardedWrite{
		item: types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
			TableName:                aws.String(table),
			Key:                      idKey(startupID),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		err: entities.ErrStartupGone,
	}
}
