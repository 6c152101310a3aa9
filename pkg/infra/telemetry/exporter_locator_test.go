package telemetry_test

import (
	"errors"
	"testing"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry/mocks"
	"github.com/PolyglAI/PolyglAI/pkg/infra/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTemplate(t *testing.T, name string) *mocks.Exporter {
	t.Helper()
	m := mocks.NewExporter(t)
	m.On("Name").Return(name).Maybe()
	return m
}

func TestExporterLocator_GetExporter(t *testing.T) {
	template := newTemplate(t, "webhook")
	configured := newTemplate(t, "webhook")
	settings := map[string]interface{}{"url": "http://sink"}

	template.On("ValidateConfig", settings).Return(nil).Once()
	template.On("WithSettings", settings).Return(configured, nil).Once()

	locator := telemetry.NewExporterLocator(telemetry.WithExporter(template))
	exporter, err := locator.GetExporter(domain.ExporterConfig{Name: "webhook", Settings: settings})

	require.NoError(t, err)
	assert.Same(t, configured, exporter)
}

func TestExporterLocator_Unknown(t *testing.T) {
	locator := telemetry.NewExporterLocator()

	_, err := locator.GetExporter(domain.ExporterConfig{Name: "splunk"})
	assert.ErrorContains(t, err, "unknown exporter: splunk")
	assert.ErrorContains(t, locator.ValidateExporter(domain.ExporterConfig{Name: "splunk"}), "unknown exporter")
}

func TestExporterLocator_InvalidSettings(t *testing.T) {
	template := newTemplate(t, "kafka")
	template.On("ValidateConfig", map[string]interface{}(nil)).Return(errors.New("kafka host is required")).Twice()

	locator := telemetry.NewExporterLocator(telemetry.WithExporter(template))

	_, err := locator.GetExporter(domain.ExporterConfig{Name: "kafka"})
	assert.ErrorContains(t, err, "kafka host is required")
	assert.ErrorContains(t, locator.ValidateExporter(domain.ExporterConfig{Name: "kafka"}), "kafka host is required")
	template.AssertNotCalled(t, "WithSettings", mock.Anything)
}
