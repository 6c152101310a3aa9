package websocket

import (
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

const (
	MessageTypeUsageRecord = "usage_record"
	MessageTypeHello       = "hello"
)

// Message is one frame sent to admin stream subscribers.
type Message struct {
	Type   string                  `json:"type"`
	SentAt time.Time               `json:"sent_at"`
	Record *moderation.UsageRecord `json:"record,omitempty"`
}

func NewUsageRecordMessage(record *moderation.UsageRecord) Message {
	return Message{
		Type:   MessageTypeUsageRecord,
		SentAt: time.Now().UTC(),
		Record: record,
	}
}
