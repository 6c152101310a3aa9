package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/infra/httpx"
	"github.com/mitchellh/mapstructure"
)

const (
	ExporterName = "webhook"

	defaultTimeout     = 5 * time.Second
	breakerTimeout     = 30 * time.Second
	breakerMaxFailures = 5
)

type Config struct {
	URL            string            `mapstructure:"url"`
	Token          string            `mapstructure:"token"`
	Headers        map[string]string `mapstructure:"headers"`
	TimeoutSeconds int               `mapstructure:"timeout_seconds"`
}

// Exporter posts each usage record as JSON to an HTTP endpoint.
type Exporter struct {
	cfg     Config
	client  httpx.Client
	breaker httpx.CircuitBreaker
}

func NewWebhookExporter(client httpx.Client) *Exporter {
	return &Exporter{client: client}
}

func (p *Exporter) Name() string {
	return ExporterName
}

func decodeConfig(settings map[string]interface{}) (Config, error) {
	var conf Config
	if err := mapstructure.WeakDecode(settings, &conf); err != nil {
		return conf, fmt.Errorf("invalid webhook config: %w", err)
	}
	return conf, nil
}

func (p *Exporter) ValidateConfig(settings map[string]interface{}) error {
	conf, err := decodeConfig(settings)
	if err != nil {
		return err
	}
	if conf.URL == "" {
		return errors.New("webhook url is required")
	}
	u, err := url.Parse(conf.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook url must be an absolute http(s) url: %q", conf.URL)
	}
	if conf.TimeoutSeconds < 0 {
		return errors.New("webhook timeout_seconds must not be negative")
	}
	return nil
}

func (p *Exporter) WithSettings(settings map[string]interface{}) (telemetry.Exporter, error) {
	conf, err := decodeConfig(settings)
	if err != nil {
		return nil, err
	}
	return &Exporter{
		cfg:     conf,
		client:  p.client,
		breaker: httpx.NewCircuitBreaker("webhook-exporter", breakerTimeout, breakerMaxFailures),
	}, nil
}

func (p *Exporter) Handle(ctx context.Context, record *moderation.UsageRecord) error {
	if p.breaker == nil {
		return errors.New("webhook exporter is not configured")
	}
	body, err := json.Marshal(telemetry.NewUsageRecordEvent(record))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	timeout := defaultTimeout
	if p.cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(p.cfg.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err = p.breaker.Execute(func() error {
		req, err := p.buildRequest(ctx, body)
		if err != nil {
			return fmt.Errorf("failed to create HTTP request: %w", err)
		}
		res, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("webhook request failed: %w", err)
		}
		defer res.Body.Close()
		_, _ = io.Copy(io.Discard, res.Body)

		if res.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("webhook returned status code %d", res.StatusCode)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}
	return nil
}

func (p *Exporter) Close() {}

func (p *Exporter) buildRequest(ctx context.Context, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range p.cfg.Headers {
		req.Header.Set(k, v)
	}
	if p.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
