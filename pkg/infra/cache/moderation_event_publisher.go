package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/go-redis/redis/v8"
)

type moderationEventPublisher struct {
	redis   *redis.Client
	channel string
}

// NewModerationEventPublisher publishes every persisted usage record on a
// redis channel so that all console replicas can stream it to admins.
func NewModerationEventPublisher(redisClient *redis.Client, channel string) moderation.EventPublisher {
	if channel == "" {
		channel = ModerationEventsChannel
	}
	return &moderationEventPublisher{
		redis:   redisClient,
		channel: channel,
	}
}

func (p *moderationEventPublisher) Publish(ctx context.Context, record *moderation.UsageRecord) error {
	data, err := EncodeUsageRecordMessage(record)
	if err != nil {
		return err
	}
	return p.redis.Publish(ctx, p.channel, data).Err()
}

func EncodeUsageRecordMessage(record *moderation.UsageRecord) ([]byte, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal usage record: %w", err)
	}
	envelope := RedisMessage{
		Type:  UsageRecordCreatedEvent,
		Event: b,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event envelope: %w", err)
	}
	return data, nil
}
