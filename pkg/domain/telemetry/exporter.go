package telemetry

import (
	"context"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

// Exporter ships persisted usage records to an external analytics sink.
// The registered instance is a template; WithSettings returns a configured copy.
//
//go:generate mockery --name=Exporter --dir=. --output=./mocks --filename=exporter_mock.go --case=underscore --with-expecter
type Exporter interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	Handle(ctx context.Context, record *moderation.UsageRecord) error
	WithSettings(settings map[string]interface{}) (Exporter, error)
	Close()
}
