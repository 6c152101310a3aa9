package google

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/httpx"
	"github.com/valyala/fastjson"
)

const (
	ProviderName   = "google"
	DefaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

	breakerTimeout     = 30 * time.Second
	breakerMaxFailures = 5
)

var ErrMissingAPIKey = errors.New("google translate API key is required")

// APIError is a non-2xx reply from the Cloud Translation API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google translate: status %d: %s", e.StatusCode, e.Message)
}

type Config struct {
	ApiKey  string
	BaseURL string
}

// Translator calls the Cloud Translation v2 REST API with an API key.
type Translator struct {
	apiKey     string
	baseURL    string
	httpClient httpx.Client
	breaker    httpx.CircuitBreaker
	parsers    fastjson.ParserPool
}

func NewTranslator(cfg Config, httpClient httpx.Client) (*Translator, error) {
	if cfg.ApiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Translator{
		apiKey:     cfg.ApiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		breaker:    httpx.NewCircuitBreaker("google-translate", breakerTimeout, breakerMaxFailures),
	}, nil
}

func (t *Translator) Name() string {
	return ProviderName
}

func (t *Translator) Translate(ctx context.Context, req translation.Request) (*translation.Translation, error) {
	payload := map[string]string{
		"q":      req.Text,
		"target": req.TargetLanguage,
		"format": "text",
	}
	if req.SourceLanguage != "" && req.SourceLanguage != translation.AutoDetect {
		payload["source"] = req.SourceLanguage
	}

	var result *translation.Translation
	err := t.call(ctx, "", payload, func(v *fastjson.Value) error {
		translations := v.GetArray("data", "translations")
		if len(translations) == 0 {
			return translation.ErrNoTranslation
		}
		text := string(translations[0].GetStringBytes("translatedText"))
		if text == "" {
			return translation.ErrNoTranslation
		}
		detected := string(translations[0].GetStringBytes("detectedSourceLanguage"))
		if detected == "" {
			detected = payload["source"]
		}
		result = &translation.Translation{
			TranslatedText:         text,
			DetectedSourceLanguage: detected,
			Provider:               ProviderName,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (t *Translator) DetectLanguage(ctx context.Context, text string) (string, error) {
	var language string
	err := t.call(ctx, "/detect", map[string]string{"q": text}, func(v *fastjson.Value) error {
		detections := v.GetArray("data", "detections")
		if len(detections) == 0 {
			return fmt.Errorf("google translate: no detections returned")
		}
		best := 0.0
		for _, candidate := range detections[0].GetArray() {
			confidence := candidate.GetFloat64("confidence")
			if language == "" || confidence > best {
				language = string(candidate.GetStringBytes("language"))
				best = confidence
			}
		}
		if language == "" || language == "und" {
			return fmt.Errorf("google translate: language could not be detected")
		}
		return nil
	})
	return language, err
}

func (t *Translator) call(
	ctx context.Context,
	path string,
	payload map[string]string,
	handle func(v *fastjson.Value) error,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	endpoint := fmt.Sprintf("%s%s?key=%s", t.baseURL, path, url.QueryEscape(t.apiKey))

	var respBody []byte
	err = t.breaker.Execute(func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept-Encoding", "gzip, br")

		resp, err := t.httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		respBody, _, err = httpx.DecodeChain(resp.Header.Get("Content-Encoding"), raw)
		if err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
			if v, perr := fastjson.ParseBytes(respBody); perr == nil {
				if msg := v.GetStringBytes("error", "message"); len(msg) > 0 {
					apiErr.Message = string(msg)
				}
			}
			return apiErr
		}
		return nil
	})
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if err != nil {
		return fmt.Errorf("translation request failed: %w", err)
	}

	parser := t.parsers.Get()
	defer t.parsers.Put(parser)
	v, err := parser.ParseBytes(respBody)
	if err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return handle(v)
}
