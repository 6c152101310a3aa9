package websocket

import (
	"context"
	"sync"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultSubscriberBuffer = 64

// Subscription receives every record broadcast after it was created. C is
// closed when the subscription is cancelled or the hub drops a slow reader.
type Subscription struct {
	ID string
	C  <-chan Message

	ch chan Message
}

// Hub fans usage records out to the connected admin stream clients.
type Hub struct {
	logger      *logrus.Logger
	mu          sync.RWMutex
	subscribers map[string]*Subscription
	bufferSize  int
}

func NewHub(logger *logrus.Logger, bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultSubscriberBuffer
	}
	return &Hub{
		logger:      logger,
		subscribers: make(map[string]*Subscription),
		bufferSize:  bufferSize,
	}
}

func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Message, h.bufferSize)
	sub := &Subscription{ID: uuid.NewString(), C: ch, ch: ch}

	h.mu.Lock()
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[sub.ID]; ok {
		delete(h.subscribers, sub.ID)
		close(sub.ch)
	}
}

// Broadcast never blocks. A subscriber whose buffer is full is disconnected.
func (h *Hub) Broadcast(_ context.Context, record *moderation.UsageRecord) {
	msg := NewUsageRecordMessage(record)

	var slow []*Subscription
	h.mu.RLock()
	for _, sub := range h.subscribers {
		select {
		case sub.ch <- msg:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range slow {
		h.logger.WithField("subscriber", sub.ID).Warn("moderation stream subscriber too slow, disconnecting")
		h.Unsubscribe(sub)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub.ch)
	}
}
