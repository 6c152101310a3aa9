package telemetry_test

import (
	"errors"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/app/telemetry"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry/mocks"
	factory "github.com/PolyglAI/PolyglAI/pkg/infra/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func template(t *testing.T, name string) *mocks.Exporter {
	t.Helper()
	m := mocks.NewExporter(t)
	m.On("Name").Return(name).Maybe()
	return m
}

func TestExportersBuilder_Build(t *testing.T) {
	kafka := template(t, "kafka")
	webhook := template(t, "webhook")
	kafkaConfigured := mocks.NewExporter(t)
	webhookConfigured := mocks.NewExporter(t)

	kafka.On("ValidateConfig", mock.Anything).Return(nil)
	kafka.On("WithSettings", mock.Anything).Return(kafkaConfigured, nil).Once()
	webhook.On("ValidateConfig", mock.Anything).Return(nil)
	webhook.On("WithSettings", mock.Anything).Return(webhookConfigured, nil).Once()

	locator := factory.NewExporterLocator(factory.WithExporter(kafka), factory.WithExporter(webhook))
	exporters, err := telemetry.NewExportersBuilder(locator).Build([]domain.ExporterConfig{
		{Name: "kafka"}, {Name: "webhook"},
	})

	require.NoError(t, err)
	assert.Len(t, exporters, 2)
}

func TestExportersBuilder_ClosesBuiltOnError(t *testing.T) {
	kafka := template(t, "kafka")
	webhook := template(t, "webhook")
	kafkaConfigured := mocks.NewExporter(t)

	kafka.On("ValidateConfig", mock.Anything).Return(nil)
	kafka.On("WithSettings", mock.Anything).Return(kafkaConfigured, nil).Once()
	kafkaConfigured.On("Close").Return().Once()
	webhook.On("ValidateConfig", mock.Anything).Return(errors.New("webhook url is required"))

	locator := factory.NewExporterLocator(factory.WithExporter(kafka), factory.WithExporter(webhook))
	exporters, err := telemetry.NewExportersBuilder(locator).Build([]domain.ExporterConfig{
		{Name: "kafka"}, {Name: "webhook"},
	})

	assert.Nil(t, exporters)
	assert.ErrorContains(t, err, "exporter webhook: webhook url is required")
}

func TestExportersValidator(t *testing.T) {
	webhook := template(t, "webhook")
	webhook.On("ValidateConfig", mock.Anything).Return(nil)

	validator := telemetry.NewExportersValidator(factory.NewExporterLocator(factory.WithExporter(webhook)))

	assert.NoError(t, validator.Validate([]domain.ExporterConfig{{Name: "webhook"}}))
	assert.ErrorContains(t, validator.Validate([]domain.ExporterConfig{{Name: "webhook"}, {Name: "webhook"}}), "more than once")
	assert.ErrorContains(t, validator.Validate([]domain.ExporterConfig{{Name: "s3"}}), "unknown exporter")
}
