package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/sirupsen/logrus"
)

type UsageRecordHandler func(ctx context.Context, record *moderation.UsageRecord)

type EventListener interface {
	Listen(ctx context.Context, handler UsageRecordHandler)
}

type moderationEventListener struct {
	logger  *logrus.Logger
	cache   Client
	channel string
}

func NewModerationEventListener(logger *logrus.Logger, cache Client, channel string) EventListener {
	if channel == "" {
		channel = ModerationEventsChannel
	}
	return &moderationEventListener{
		logger:  logger,
		cache:   cache,
		channel: channel,
	}
}

// Listen blocks until ctx is done, reconnecting whenever the subscription
// drops.
func (l *moderationEventListener) Listen(ctx context.Context, handler UsageRecordHandler) {
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("redis pubsub listener shutting down")
			return
		default:
		}

		l.listenOnce(ctx, handler)

		if ctx.Err() != nil {
			return
		}

		l.logger.Warn("redis pubsub disconnected, reconnecting in 1s...")
		time.Sleep(time.Second)
	}
}

func (l *moderationEventListener) listenOnce(ctx context.Context, handler UsageRecordHandler) {
	pubSub := l.cache.RedisClient().Subscribe(ctx, l.channel)
	defer func() { _ = pubSub.Close() }()

	l.logger.WithField("channel", l.channel).Debug("redis pubsub connected")

	stop := closeOnCancel(ctx, pubSub)
	defer stop()

	for msg := range pubSub.Channel() {
		if ctx.Err() != nil {
			return
		}
		record, err := DecodeUsageRecordMessage([]byte(msg.Payload))
		if err != nil {
			l.logger.WithError(err).Error("error decoding redis message")
			continue
		}
		handler(ctx, record)
	}
}

// closeOnCancel closes c when ctx is done. The returned stop ends the watch
// and waits for it to exit.
func closeOnCancel(ctx context.Context, c io.Closer) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

func DecodeUsageRecordMessage(payload []byte) (*moderation.UsageRecord, error) {
	var envelope RedisMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, err
	}
	if envelope.Type != UsageRecordCreatedEvent {
		return nil, fmt.Errorf("unknown event type: %s", envelope.Type)
	}
	var record moderation.UsageRecord
	if err := json.Unmarshal(envelope.Event, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling event data: %w", err)
	}
	return &record, nil
}
