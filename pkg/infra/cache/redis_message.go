package cache

import (
	"encoding/json"
)

const UsageRecordCreatedEvent = "usage_record.created"

// RedisMessage is the envelope published on redis channels.
type RedisMessage struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}
