package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation/mocks"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T, dispatcher moderation.Dispatcher) moderation.Validator {
	t.Helper()
	classifier, err := moderation.NewClassifier(moderation.DefaultLexicon())
	require.NoError(t, err)
	return moderation.NewValidator(newTestLogger(), classifier, dispatcher, 0)
}

func TestValidateContentHandler_Clean(t *testing.T) {
	dispatcher := mocks.NewDispatcher(t)
	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), newGate(t, dispatcher), true).Handle)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{
		Text: "Hello, how are you today?",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result moderation.ValidationResult
	decode(t, resp, &result)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.DetectedWords)
}

func TestValidateContentHandler_ViolationRecordedWithCaller(t *testing.T) {
	dispatcher := mocks.NewDispatcher(t)
	dispatcher.On("Dispatch", mock.MatchedBy(func(r *domain.UsageRecord) bool {
		return r.UserID == "learner-7" &&
			r.Context == domain.ContextTranslation &&
			r.Language == "es" &&
			r.Device == "Computer"
	})).Once()

	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), newGate(t, dispatcher), true).Handle)

	req := jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{
		Text:     "eres una puta",
		Context:  domain.ContextTranslation,
		Language: "es",
	})
	req.Header.Set("X-User-ID", "learner-7")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result moderation.ValidationResult
	decode(t, resp, &result)
	assert.False(t, result.IsValid)
	assert.Equal(t, moderation.ReasonInappropriateContent, result.Reason)
	assert.Contains(t, result.DetectedWords, "puta")
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestValidateContentHandler_RecordingOptOut(t *testing.T) {
	dispatcher := mocks.NewDispatcher(t)
	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), newGate(t, dispatcher), true).Handle)

	off := false
	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{
		Text:            "kill yourself",
		RecordProfanity: &off,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestValidateContentHandler_RecordingDisabledByConfig(t *testing.T) {
	dispatcher := mocks.NewDispatcher(t)
	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), newGate(t, dispatcher), false).Handle)

	on := true
	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{
		Text:            "fuck",
		RecordProfanity: &on,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestValidateContentHandler_EmptyAndTooLong(t *testing.T) {
	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), newGate(t, nil), true).Handle)

	tests := []struct {
		text   string
		reason moderation.Reason
	}{
		{"   ", moderation.ReasonEmpty},
		{strings.Repeat("a", 10001), moderation.ReasonTooLong},
	}
	for _, tt := range tests {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{Text: tt.text}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var result moderation.ValidationResult
		decode(t, resp, &result)
		assert.False(t, result.IsValid)
		assert.Equal(t, tt.reason, result.Reason)
	}
}

func TestValidateContentHandler_BadRequest(t *testing.T) {
	validator := mocks.NewValidator(t)
	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), validator, true).Handle)

	req := httptest.NewRequest("POST", "/api/v1/content/validate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{
		Text:    "hello",
		Context: strings.Repeat("c", request.MaxContextLength+1),
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateContentHandler_FreeFormContext(t *testing.T) {
	dispatcher := mocks.NewDispatcher(t)
	dispatcher.On("Dispatch", mock.MatchedBy(func(r *domain.UsageRecord) bool {
		return r.Context == "chat"
	})).Once()
	app := newTestApp()
	app.Post("/api/v1/content/validate", NewValidateContentHandler(newTestLogger(), newGate(t, dispatcher), true).Handle)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/content/validate", request.ValidateContentRequest{
		Text:    "que mierda",
		Context: "chat",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result moderation.ValidationResult
	decode(t, resp, &result)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"mierda"}, result.DetectedWords)
}
