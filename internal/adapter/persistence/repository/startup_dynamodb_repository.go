package repository

import (
	"context"
	"fmt"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type startupItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type StartupDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IStartupRepository = (*StartupDynamoRepository)(nil)

func NewStartupDynamoRepository(ddb DynamoDBAPI, tables Tables) *StartupDynamoRepository {
	return &StartupDynamoRepository{ddb: ddb, tableName: tables.Startups}
}

func (r *StartupDynamoRepository) Create(ctx context.Context, s entities.Startup) (entities.Startup, error) {
	av, err := attributevalue.MarshalMap(startupItem{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   formatTime(s.CreatedAt),
	})
	if err != nil {
		return entities.Startup{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Startup{}, err
	}
	return s, nil
}

func (r *StartupDynamoRepository) GetByID(ctx context.Context, id string) (entities.Startup, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Startup{}, err
	}
	return decodeStartup(out.Item)
}

// Delete removes the startup and returns it. A zero startup means it did not exist.
func (r *StartupDynamoRepository) Delete(ctx context.Context, id string) (entities.Startup, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
		ReturnValues:             types.ReturnValueAllOld,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Startup{}, nil
		}
		return entities.Startup{}, err
	}
	return decodeStartup(out.Attributes)
}

func decodeStartup(av map[string]types.AttributeValue) (entities.Startup, error) {
	if len(av) == 0 {
		return entities.Startup{}, nil
	}
	var it startupItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Startup{}, err
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Startup{}, fmt.Errorf("parse startup %s created at: %w", it.ID, err)
	}
	return entities.Startup{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   createdAt,
	}, nil
}
