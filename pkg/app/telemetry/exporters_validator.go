package telemetry

import (
	"fmt"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	factory "github.com/PolyglAI/PolyglAI/pkg/infra/telemetry"
)

type ExportersValidator interface {
	Validate(configs []domain.ExporterConfig) error
}

type exportersValidator struct {
	locator *factory.ExporterLocator
}

func NewExportersValidator(locator *factory.ExporterLocator) ExportersValidator {
	return &exportersValidator{locator: locator}
}

func (v *exportersValidator) Validate(configs []domain.ExporterConfig) error {
	seen := make(map[string]bool, len(configs))
	for _, cfg := range configs {
		if seen[cfg.Name] {
			return fmt.Errorf("exporter %s configured more than once", cfg.Name)
		}
		seen[cfg.Name] = true
		if err := v.locator.ValidateExporter(cfg); err != nil {
			return fmt.Errorf("exporter %s: %w", cfg.Name, err)
		}
	}
	return nil
}
