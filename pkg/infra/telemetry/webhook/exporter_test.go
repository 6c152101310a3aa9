package webhook_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	httpxMocks "github.com/PolyglAI/PolyglAI/pkg/infra/httpx/mocks"
	"github.com/PolyglAI/PolyglAI/pkg/infra/telemetry/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func response(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewBufferString(""))}
}

func testRecord() *moderation.UsageRecord {
	return moderation.NewUsageRecord("you bastard", moderation.ContextTranslation, "en",
		[]string{"bastard"}, moderation.CategoryProfanity, "user-9")
}

func TestExporter_ValidateConfig(t *testing.T) {
	exporter := webhook.NewWebhookExporter(httpxMocks.NewClient(t))

	assert.NoError(t, exporter.ValidateConfig(map[string]interface{}{"url": "https://sink.example.com/events"}))
	assert.ErrorContains(t, exporter.ValidateConfig(map[string]interface{}{}), "webhook url is required")
	assert.ErrorContains(t, exporter.ValidateConfig(map[string]interface{}{"url": "sink/events"}), "absolute")
	assert.ErrorContains(t, exporter.ValidateConfig(map[string]interface{}{
		"url": "https://sink", "timeout_seconds": -1,
	}), "must not be negative")
}

func TestExporter_Handle(t *testing.T) {
	client := httpxMocks.NewClient(t)
	record := testRecord()

	client.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		if r.URL.String() != "https://sink.example.com/events" ||
			r.Header.Get("Authorization") != "Bearer t0k" ||
			r.Header.Get("X-Tenant") != "polyglai" {
			return false
		}
		var evt telemetry.Event
		rc, err := r.GetBody()
		if err != nil {
			return false
		}
		body, _ := io.ReadAll(rc)
		if err := json.Unmarshal(body, &evt); err != nil {
			return false
		}
		return evt.Type == telemetry.UsageRecordCreated && evt.Record.ID == record.ID
	})).Return(response(http.StatusAccepted), nil).Once()

	configured, err := webhook.NewWebhookExporter(client).WithSettings(map[string]interface{}{
		"url":     "https://sink.example.com/events",
		"token":   "t0k",
		"headers": map[string]interface{}{"X-Tenant": "polyglai"},
	})
	require.NoError(t, err)

	assert.NoError(t, configured.Handle(context.Background(), record))
}

func TestExporter_HandleFailures(t *testing.T) {
	client := httpxMocks.NewClient(t)
	client.On("Do", mock.Anything).Return(response(http.StatusInternalServerError), nil).Once()
	client.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	configured, err := webhook.NewWebhookExporter(client).WithSettings(map[string]interface{}{"url": "https://sink"})
	require.NoError(t, err)

	assert.ErrorContains(t, configured.Handle(context.Background(), testRecord()), "status code 500")
	assert.ErrorContains(t, configured.Handle(context.Background(), testRecord()), "connection refused")
}

func TestExporter_HandleUnconfigured(t *testing.T) {
	exporter := webhook.NewWebhookExporter(httpxMocks.NewClient(t))
	assert.ErrorContains(t, exporter.Handle(context.Background(), testRecord()), "not configured")
}
