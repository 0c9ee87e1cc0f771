package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_repository "startlabx/internal/adapter/persistence/repository/mocks"
	"startlabx/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testTables = Tables{
	Offers:        "offers",
	CapTable:      "entries",
	Allocations:   "allocations",
	Startups:      "startups",
	Notifications: "notifications",
}

var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func allocationItem(total string, version string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"startup_id":      &types.AttributeValueMemberS{Value: "s-1"},
		"total_allocated": &types.AttributeValueMemberS{Value: total},
		"version":         &types.AttributeValueMemberN{Value: version},
	}
}

// byTable answers GetItem from a fixed item per table; a missing table returns no item.
func byTable(items map[string]map[string]types.AttributeValue) func(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return func(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: items[aws.ToString(in.TableName)]}, nil
	}
}

func canceled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{Message: aws.String("canceled"), CancellationReasons: reasons}
}

func newEntry(pct string) entities.CapTableEntry {
	return entities.CapTableEntry{
		ID:               "e-1",
		StartupID:        "s-1",
		StakeholderID:    "u-1",
		StakeholderType:  entities.StakeholderFounder,
		EquityPercentage: decimal.RequireFromString(pct),
		CreatedAt:        testNow,
	}
}

func TestCapTableDynamoRepository_Create(t *testing.T) {
	t.Run("writes allocation, startup check and entry in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"allocations": allocationItem("60", "3")}))
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 3 {
					t.Fatalf("expected 3 transact items, got %d", len(in.TransactItems))
				}
				upd := in.TransactItems[0].Update
				if upd == nil || aws.ToString(upd.ConditionExpression) != "#version = :expected" {
					t.Fatalf("expected version guarded allocation update, got %+v", upd)
				}
				if got := upd.ExpressionAttributeValues[":total"].(*types.AttributeValueMemberS).Value; got != "65" {
					t.Fatalf("expected new total 65, got %s", got)
				}
				if got := upd.ExpressionAttributeValues[":next"].(*types.AttributeValueMemberN).Value; got != "4" {
					t.Fatalf("expected version 4, got %s", got)
				}
				if in.TransactItems[1].ConditionCheck == nil || aws.ToString(in.TransactItems[1].ConditionCheck.TableName) != "startups" {
					t.Fatalf("expected startup condition check, got %+v", in.TransactItems[1])
				}
				put := in.TransactItems[2].Put
				if put == nil || aws.ToString(put.TableName) != "entries" {
					t.Fatalf("expected entry put, got %+v", in.TransactItems[2])
				}
				var it capTableItem
				if err := attributevalue.UnmarshalMap(put.Item, &it); err != nil {
					t.Fatalf("unmarshal put item: %v", err)
				}
				if it.EquityPercentage != "5" || it.StartupID != "s-1" {
					t.Fatalf("unexpected item %+v", it)
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			})

		got, err := repo.Create(context.Background(), newEntry("5"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "e-1" {
			t.Fatalf("expected entry back, got %+v", got)
		}
	})

	t.Run("first entry creates the allocation item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
				if got := aws.ToString(in.TransactItems[0].Update.ConditionExpression); got != "attribute_not_exists(#sid)" {
					t.Fatalf("expected creation guard, got %q", got)
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			})

		if _, err := repo.Create(context.Background(), newEntry("100")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects without writing when the bound would break", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"allocations": allocationItem("97", "7")}))

		_, err := repo.Create(context.Background(), newEntry("5"))
		if !errors.Is(err, entities.ErrAllocationExceeded) {
			t.Fatalf("expected ErrAllocationExceeded, got %v", err)
		}
	})

	t.Run("retries a version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		gomock.InOrder(
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"allocations": allocationItem("10", "1")})),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, canceled("ConditionalCheckFailed", "None", "None")),
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"allocations": allocationItem("20", "2")})),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&dynamodb.TransactWriteItemsOutput{}, nil),
		)

		if _, err := repo.Create(context.Background(), newEntry("5")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("gives up after bounded retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"allocations": allocationItem("10", "1")})).
			Times(DefaultAllocationAttempts)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, canceled("ConditionalCheckFailed", "None", "None")).
			Times(DefaultAllocationAttempts)

		_, err := repo.Create(context.Background(), newEntry("5"))
		if !errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("deleted startup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, canceled("None", "ConditionalCheckFailed", "None"))

		_, err := repo.Create(context.Background(), newEntry("5"))
		if !errors.Is(err, entities.ErrStartupGone) {
			t.Fatalf("expected ErrStartupGone, got %v", err)
		}
	})
}

func TestCapTableDynamoRepository_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
	repo := NewCapTableDynamoRepository(ddb, testTables)

	stored, err := attributevalue.MarshalMap(toCapTableItem(newEntry("40")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(byTable(map[string]map[string]types.AttributeValue{
			"entries":     stored,
			"allocations": allocationItem("100", "9"),
		})).AnyTimes()
	ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
			if got := in.TransactItems[0].Update.ExpressionAttributeValues[":total"].(*types.AttributeValueMemberS).Value; got != "90" {
				t.Fatalf("expected total 90 after replacing 40 with 30, got %s", got)
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		})

	lower := newEntry("30")
	got, err := repo.Update(context.Background(), lower)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.EquityPercentage.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected 30, got %s", got.EquityPercentage)
	}

	_, err = repo.Update(context.Background(), newEntry("41"))
	if !errors.Is(err, entities.ErrAllocationExceeded) {
		t.Fatalf("expected ErrAllocationExceeded, got %v", err)
	}
}

func pendingOfferItem(t *testing.T, status entities.OfferStatus) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toEquityOfferItem(entities.EquityOffer{
		ID:                  "o-1",
		StartupID:           "s-1",
		ProfessionalID:      "pro-1",
		EquityPercentage:    decimal.NewFromInt(5),
		VestingPeriodMonths: 48,
		CliffPeriodMonths:   12,
		Salary:              decimal.Zero,
		Status:              status,
		CreatedAt:           testNow,
		UpdatedAt:           testNow,
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestEquityOfferDynamoRepository_Accept(t *testing.T) {
	entry := entities.CapTableEntry{
		ID:               "e-9",
		StartupID:        "s-1",
		StakeholderID:    "pro-1",
		StakeholderType:  entities.StakeholderEmployee,
		EquityPercentage: decimal.NewFromInt(5),
		CliffMonths:      12,
		CreatedAt:        testNow,
	}

	t.Run("accepts and inserts atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(byTable(map[string]map[string]types.AttributeValue{
				"offers":      pendingOfferItem(t, entities.OfferStatusPending),
				"allocations": allocationItem("60", "2"),
			})).Times(2)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 4 {
					t.Fatalf("expected 4 transact items, got %d", len(in.TransactItems))
				}
				offerUpd := in.TransactItems[1].Update
				if offerUpd == nil || aws.ToString(offerUpd.TableName) != "offers" {
					t.Fatalf("expected offer update second, got %+v", in.TransactItems[1])
				}
				if got := offerUpd.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS).Value; got != "ACCEPTED" {
					t.Fatalf("expected ACCEPTED, got %s", got)
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			})

		o, e, err := repo.Accept(context.Background(), "o-1", entry, testNow)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if o.Status != entities.OfferStatusAccepted || e.ID != "e-9" {
			t.Fatalf("unexpected result %+v %+v", o, e)
		}
	})

	t.Run("allocation exceeded leaves the offer pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(byTable(map[string]map[string]types.AttributeValue{
				"offers":      pendingOfferItem(t, entities.OfferStatusPending),
				"allocations": allocationItem("97", "5"),
			})).Times(2)

		_, _, err := repo.Accept(context.Background(), "o-1", entry, testNow)
		if !errors.Is(err, entities.ErrAllocationExceeded) {
			t.Fatalf("expected ErrAllocationExceeded, got %v", err)
		}
	})

	t.Run("lost race on the offer status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		gomock.InOrder(
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&dynamodb.GetItemOutput{Item: pendingOfferItem(t, entities.OfferStatusPending)}, nil),
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&dynamodb.GetItemOutput{Item: allocationItem("60", "2")}, nil),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, canceled("None", "ConditionalCheckFailed", "None", "None")),
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&dynamodb.GetItemOutput{Item: pendingOfferItem(t, entities.OfferStatusAccepted)}, nil),
		)

		_, _, err := repo.Accept(context.Background(), "o-1", entry, testNow)
		if !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("terminal offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&dynamodb.GetItemOutput{Item: pendingOfferItem(t, entities.OfferStatusRejected)}, nil)

		_, _, err := repo.Accept(context.Background(), "o-1", entry, testNow)
		if !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})
}

func TestEquityOfferDynamoRepository_UpdateStatus(t *testing.T) {
	ccfe := &types.ConditionalCheckFailedException{Message: aws.String("failed")}

	t.Run("unknown offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ccfe)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{}, nil)

		o, err := repo.UpdateStatus(context.Background(), "missing", entities.OfferStatusPending, entities.OfferStatusRejected, testNow)
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero offer and nil error, got %+v %v", o, err)
		}
	})

	t.Run("offer in another status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ccfe)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&dynamodb.GetItemOutput{Item: pendingOfferItem(t, entities.OfferStatusExpired)}, nil)

		_, err := repo.UpdateStatus(context.Background(), "o-1", entities.OfferStatusPending, entities.OfferStatusRejected, testNow)
		if !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
				if got := aws.ToString(in.ConditionExpression); got != "attribute_exists(#id) AND #status = :from" {
					t.Fatalf("unexpected condition %q", got)
				}
				return &dynamodb.UpdateItemOutput{Attributes: pendingOfferItem(t, entities.OfferStatusRejected)}, nil
			})

		o, err := repo.UpdateStatus(context.Background(), "o-1", entities.OfferStatusPending, entities.OfferStatusRejected, testNow)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if o.Status != entities.OfferStatusRejected || !o.EquityPercentage.Equal(decimal.NewFromInt(5)) {
			t.Fatalf("unexpected offer %+v", o)
		}
	})
}

func TestEquityOfferDynamoRepository_ListPendingCreatedBefore(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
	repo := NewEquityOfferDynamoRepository(ddb, testTables)

	cutoff := testNow.Add(-30 * 24 * time.Hour)
	ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != statusIndex {
				t.Fatalf("expected %s, got %s", statusIndex, aws.ToString(in.IndexName))
			}
			if got := in.ExpressionAttributeValues[":before"].(*types.AttributeValueMemberS).Value; got != formatTime(cutoff) {
				t.Fatalf("unexpected cutoff %s", got)
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{pendingOfferItem(t, entities.OfferStatusPending)}}, nil
		})

	got, err := repo.ListPendingCreatedBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "o-1" {
		t.Fatalf("unexpected offers %+v", got)
	}
}

func entryItem(t *testing.T, id string) map[string]types.AttributeValue {
	t.Helper()
	e := newEntry("5")
	e.ID = id
	av, err := attributevalue.MarshalMap(toCapTableItem(e))
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	return av
}

func TestCapTableDynamoRepository_DeleteByStartupID(t *testing.T) {
	t.Run("refuses while the startup item still exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"startups": idKey("s-1")}))

		_, err := repo.DeleteByStartupID(context.Background(), "s-1")
		if !errors.Is(err, ErrStartupStillPresent) {
			t.Fatalf("expected ErrStartupStillPresent, got %v", err)
		}
	})

	t.Run("an add racing the cascade is rejected once the startup is gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		startups := NewStartupDynamoRepository(ddb, testTables)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		var deleted []string
		gomock.InOrder(
			// startup delete lands first
			ddb.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
					if aws.ToString(in.TableName) != "startups" {
						t.Fatalf("expected startup delete first, got %s", aws.ToString(in.TableName))
					}
					return &dynamodb.DeleteItemOutput{Attributes: map[string]types.AttributeValue{
						"id":         &types.AttributeValueMemberS{Value: "s-1"},
						"owner_id":   &types.AttributeValueMemberS{Value: "owner-1"},
						"created_at": &types.AttributeValueMemberS{Value: formatTime(testNow)},
					}}, nil
				}),
			// concurrent add: its startup condition check now fails
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(byTable(map[string]map[string]types.AttributeValue{"allocations": allocationItem("5", "1")})),
			ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, canceled("None", "ConditionalCheckFailed", "None")),
			// cascade
			ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(byTable(nil)),
			ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{entryItem(t, "e-1")}}, nil),
			ddb.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
					deleted = append(deleted, aws.ToString(in.TableName))
					return &dynamodb.DeleteItemOutput{}, nil
				}).Times(2),
		)

		s, err := startups.Delete(context.Background(), "s-1")
		if err != nil || s.ID != "s-1" {
			t.Fatalf("expected startup deleted, got %+v %v", s, err)
		}

		late := newEntry("5")
		late.ID = "e-2"
		if _, err := repo.Create(context.Background(), late); !errors.Is(err, entities.ErrStartupGone) {
			t.Fatalf("expected ErrStartupGone for the late add, got %v", err)
		}

		removed, err := repo.DeleteByStartupID(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if removed != 1 {
			t.Fatalf("expected 1 removed entry, got %d", removed)
		}
		if len(deleted) != 2 || deleted[0] != "entries" || deleted[1] != "allocations" {
			t.Fatalf("expected entry then allocation deletes, got %v", deleted)
		}
	})
}

func TestStartupDynamoRepository_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
	repo := NewStartupDynamoRepository(ddb, testTables)

	ddb.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("failed")})

	s, err := repo.Delete(context.Background(), "missing")
	if err != nil || s.ID != "" {
		t.Fatalf("expected zero startup and nil error, got %+v %v", s, err)
	}
}

func TestNotificationDynamoRepository_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
	repo := NewNotificationDynamoRepository(ddb, testTables)

	ddb.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("failed")})

	n, err := repo.MarkRead(context.Background(), "n-1", "someone-else")
	if err != nil || n.ID != "" {
		t.Fatalf("expected zero notification and nil error, got %+v %v", n, err)
	}
}

func TestTimeLayoutSortsChronologically(t *testing.T) {
	earlier := formatTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	later := formatTime(time.Date(2025, 1, 1, 0, 0, 0, 500_000_000, time.UTC))
	if !(earlier < later) {
		t.Fatalf("expected %s < %s", earlier, later)
	}
	got, err := parseTime(later)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 500_000_000, time.UTC)) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestDecodersRejectCorruptItems(t *testing.T) {
	t.Run("entry with unparsable equity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewCapTableDynamoRepository(ddb, testTables)

		item := entryItem(t, "e-1")
		item["equity_percentage"] = &types.AttributeValueMemberS{Value: "five"}
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		e, err := repo.GetByID(context.Background(), "e-1")
		if err == nil {
			t.Fatalf("expected parse error, got entry %+v", e)
		}
	})

	t.Run("offer with unparsable timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewEquityOfferDynamoRepository(ddb, testTables)

		item := pendingOfferItem(t, entities.OfferStatusPending)
		item["created_at"] = &types.AttributeValueMemberS{Value: "yesterday"}
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		o, err := repo.GetByID(context.Background(), "o-1")
		if err == nil {
			t.Fatalf("expected parse error, got offer %+v", o)
		}
	})

	t.Run("startup with unparsable timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mock_repository.NewMockDynamoDBAPI(ctrl)
		repo := NewStartupDynamoRepository(ddb, testTables)

		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: "s-1"},
			"owner_id":   &types.AttributeValueMemberS{Value: "owner-1"},
			"created_at": &types.AttributeValueMemberS{Value: ""},
		}}, nil)

		if _, err := repo.GetByID(context.Background(), "s-1"); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

