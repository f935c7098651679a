package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/farmlink/internal/models"
	"github.com/redis/go-redis/v9"
)

// MessageNotifier fans out newly sent messages to live subscribers.
type MessageNotifier interface {
	Publish(ctx context.Context, message *models.Message) error
}

// RedisNotifier publishes messages on a per-receiver redis channel. The
// websocket feed subscribes to the same channel.
type RedisNotifier struct {
	rdb *redis.Client
}

// NewRedisNotifier creates a new RedisNotifier
func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

// MessageChannel returns the redis channel name for a receiver's feed
func MessageChannel(receiverID uint) string {
	return fmt.Sprintf("farmlink:messages:%d", receiverID)
}

// Publish sends the message to the receiver's channel
func (n *RedisNotifier) Publish(ctx context.Context, message *models.Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, MessageChannel(message.ReceiverID), payload).Err()
}
