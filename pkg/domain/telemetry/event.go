package telemetry

import (
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

const UsageRecordCreated = "usage_record.created"

// Event is the envelope every exporter ships.
type Event struct {
	Type       string                  `json:"type"`
	Source     string                  `json:"source"`
	ExportedAt time.Time               `json:"exported_at"`
	Record     *moderation.UsageRecord `json:"record"`
}

func NewUsageRecordEvent(record *moderation.UsageRecord) Event {
	return Event{
		Type:       UsageRecordCreated,
		Source:     "polyglai",
		ExportedAt: time.Now().UTC(),
		Record:     record,
	}
}
