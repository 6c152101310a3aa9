package cache_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerationEventPublisher_Publish(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	record := moderation.NewUsageRecord(
		"some text", moderation.ContextTranslation, "en", []string{"fuck"}, moderation.CategoryProfanity, "user-1",
	)
	payload, err := cache.EncodeUsageRecordMessage(record)
	require.NoError(t, err)
	mock.ExpectPublish(cache.ModerationEventsChannel, payload).SetVal(1)

	publisher := cache.NewModerationEventPublisher(redisMock, "")
	err = publisher.Publish(context.Background(), record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRecordMessage_RoundTrip(t *testing.T) {
	record := moderation.NewUsageRecord(
		"kill yourself", moderation.ContextFileUpload, "auto", []string{"kill yourself"}, moderation.CategoryViolence, "",
	)
	payload, err := cache.EncodeUsageRecordMessage(record)
	require.NoError(t, err)

	decoded, err := cache.DecodeUsageRecordMessage(payload)
	require.NoError(t, err)
	assert.Equal(t, record.ID, decoded.ID)
	assert.Equal(t, record.Category, decoded.Category)
	assert.Equal(t, []string(record.DetectedWords), []string(decoded.DetectedWords))
}

func TestDecodeUsageRecordMessage_UnknownType(t *testing.T) {
	payload, err := json.Marshal(cache.RedisMessage{Type: "gateway.updated", Event: json.RawMessage(`{}`)})
	require.NoError(t, err)

	_, err = cache.DecodeUsageRecordMessage(payload)
	assert.ErrorContains(t, err, "unknown event type")
}
