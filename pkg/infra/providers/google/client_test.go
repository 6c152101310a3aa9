package google_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/httpx"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/google"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T, handler http.HandlerFunc) *google.Translator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tr, err := google.NewTranslator(google.Config{ApiKey: "test-key", BaseURL: server.URL}, httpx.NewFastHTTPClient())
	require.NoError(t, err)
	return tr
}

func TestNewTranslator_MissingKey(t *testing.T) {
	_, err := google.NewTranslator(google.Config{}, httpx.NewFastHTTPClient())
	assert.ErrorIs(t, err, google.ErrMissingAPIKey)
}

func TestTranslate(t *testing.T) {
	var received map[string]string
	tr := newTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Buenos días","detectedSourceLanguage":"en"}]}}`))
	})

	out, err := tr.Translate(context.Background(), translation.Request{
		Text: "Good morning", SourceLanguage: translation.AutoDetect, TargetLanguage: "es",
	})

	require.NoError(t, err)
	assert.Equal(t, "Buenos días", out.TranslatedText)
	assert.Equal(t, "en", out.DetectedSourceLanguage)
	assert.Equal(t, "google", out.Provider)
	assert.Equal(t, "es", received["target"])
	assert.Equal(t, "text", received["format"])
	_, hasSource := received["source"]
	assert.False(t, hasSource)
}

func TestTranslate_ExplicitSourceAndGzip(t *testing.T) {
	tr := newTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		var received map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "fr", received["source"])

		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, _ = gz.Write([]byte(`{"data":{"translations":[{"translatedText":"hello"}]}}`))
		_ = gz.Close()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	})

	out, err := tr.Translate(context.Background(), translation.Request{
		Text: "bonjour", SourceLanguage: "fr", TargetLanguage: "en",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", out.TranslatedText)
	assert.Equal(t, "fr", out.DetectedSourceLanguage)
}

func TestTranslate_APIError(t *testing.T) {
	tr := newTranslator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid Value"}}`))
	})

	_, err := tr.Translate(context.Background(), translation.Request{Text: "x", TargetLanguage: "zz"})

	var apiErr *google.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid Value", apiErr.Message)
}

func TestTranslate_EmptyTranslations(t *testing.T) {
	tr := newTranslator(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	})

	_, err := tr.Translate(context.Background(), translation.Request{Text: "x", TargetLanguage: "es"})
	assert.ErrorIs(t, err, translation.ErrNoTranslation)
}

func TestDetectLanguage(t *testing.T) {
	tr := newTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"detections":[[
			{"language":"pt","confidence":0.4,"isReliable":false},
			{"language":"es","confidence":0.9,"isReliable":false}
		]]}}`))
	})

	lang, err := tr.DetectLanguage(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "es", lang)
}

func TestDetectLanguage_Undetermined(t *testing.T) {
	tr := newTranslator(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"detections":[[{"language":"und","confidence":0}]]}}`))
	})

	_, err := tr.DetectLanguage(context.Background(), "???")
	assert.ErrorContains(t, err, "could not be detected")
}
