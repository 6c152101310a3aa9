package factory

import (
	"errors"
	"fmt"

	"github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/httpx"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/anthropic"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/azure"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/bedrock"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/gemini"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/google"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/openai"
)

const (
	ProviderGoogle    = "google"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderAzure     = "azure"
)

var ErrUnsupportedProvider = errors.New("unsupported provider")

// Config selects and configures the translation backend.
type Config struct {
	Provider    string                           `mapstructure:"provider"`
	ApiKey      string                           `mapstructure:"api_key"`
	BaseURL     string                           `mapstructure:"base_url"`
	Model       string                           `mapstructure:"model"`
	MaxTokens   int                              `mapstructure:"max_tokens"`
	Temperature float64                          `mapstructure:"temperature"`
	Azure       *providers.AzureCredentials      `mapstructure:"azure"`
	AwsBedrock  *providers.AwsBedrockCredentials `mapstructure:"aws_bedrock"`
}

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
	Translator(cfg Config) (translation.Translator, error)
}

type providerLocator struct {
	httpClient httpx.Client
}

func NewProviderLocator(httpClient httpx.Client) ProviderLocator {
	return &providerLocator{
		httpClient: httpClient,
	}
}

// Get returns the chat-completion client for an LLM provider.
func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderGemini:
		return gemini.NewGeminiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case ProviderBedrock:
		return bedrock.NewBedrockClient(), nil
	case ProviderAzure:
		return azure.NewAzureClient(f.httpClient), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

// Translator builds the translation backend named by cfg.Provider. The
// google provider calls the Cloud Translation API; every other provider
// translates through a chat-completion model.
func (f *providerLocator) Translator(cfg Config) (translation.Translator, error) {
	if cfg.Provider == "" || cfg.Provider == ProviderGoogle {
		return google.NewTranslator(google.Config{ApiKey: cfg.ApiKey, BaseURL: cfg.BaseURL}, f.httpClient)
	}

	client, err := f.Get(cfg.Provider)
	if err != nil {
		return nil, err
	}
	if cfg.ApiKey == "" && cfg.Provider != ProviderBedrock && !(cfg.Provider == ProviderAzure && cfg.Azure != nil && cfg.Azure.UseIdentity) {
		return nil, fmt.Errorf("%s: API key is required", cfg.Provider)
	}

	return providers.NewLLMTranslator(cfg.Provider, client, providers.Config{
		Credentials: providers.Credentials{
			ApiKey:     cfg.ApiKey,
			BaseURL:    cfg.BaseURL,
			Azure:      cfg.Azure,
			AwsBedrock: cfg.AwsBedrock,
		},
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}), nil
}
