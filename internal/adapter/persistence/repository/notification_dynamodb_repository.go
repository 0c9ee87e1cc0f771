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

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Type      string `dynamodbav:"type"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Read      bool   `dynamodbav:"read"`
	CreatedAt string `dynamodbav:"created_at"`
}

type NotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoDBAPI, tables Tables) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tables.Notifications}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

// ListByUserID returns the newest limit notifications of a user.
func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(userIndex),
		KeyConditionExpression:    aws.String("#user_id = :user_id"),
		ExpressionAttributeNames:  map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":user_id": &types.AttributeValueMemberS{Value: userID}},
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	var items []notificationItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	list := make([]entities.Notification, 0, len(items))
	for _, it := range items {
		n, err := fromNotificationItem(it)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// MarkRead flags one notification of userID as read. A zero notification
// means it does not exist or belongs to another user.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :user_id"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
			"#read":    "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":read":    &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it)
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(userIndex),
		KeyConditionExpression:    aws.String("#user_id = :user_id"),
		FilterExpression:          aws.String("#read = :unread"),
		ExpressionAttributeNames:  map[string]string{"#user_id": "user_id", "#read": "read"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":unread":  &types.AttributeValueMemberBOOL{Value: false},
		},
	})

	updated := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return updated, fmt.Errorf("query unread notifications: %w", err)
		}
		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return updated, err
		}
		for _, it := range items {
			n, err := r.MarkRead(ctx, it.ID, userID)
			if err != nil {
				return updated, err
			}
			if n.ID != "" {
				updated++
			}
		}
	}
	return updated, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) (entities.Notification, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("parse notification %s created at: %w", it.ID, err)
	}
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      entities.NotificationType(it.Type),
		Title:     it.Title,
		Message:   it.Message,
		Read:      it.Read,
		CreatedAt: createdAt,
	}, nil
}
