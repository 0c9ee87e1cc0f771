package notifications

import (
	"context"
	"encoding/json"

	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type redisPublishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher fans stored notifications out on a per-user pub/sub channel.
type RedisPublisher struct {
	rdb redisPublishClient
}

var _ interfaces.INotificationPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(rdb redisPublishClient) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Channel is the pub/sub channel a user's live clients subscribe to.
func Channel(userID string) string {
	return "notifications:" + userID
}

func (p *RedisPublisher) Publish(ctx context.Context, n entities.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, Channel(n.UserID), payload).Err()
}
