package providers

import (
	"context"
	"fmt"

	"github.com/PolyglAI/PolyglAI/pkg/domain/translation"
)

// LLMTranslator implements translation.Translator on top of any
// chat-completion Client.
type LLMTranslator struct {
	name   string
	client Client
	config Config
}

func NewLLMTranslator(name string, client Client, config Config) *LLMTranslator {
	if config.SystemPrompt == "" {
		config.SystemPrompt = TranslationSystemPrompt
	}
	return &LLMTranslator{name: name, client: client, config: config}
}

func (t *LLMTranslator) Name() string {
	return t.name
}

func (t *LLMTranslator) Translate(ctx context.Context, req translation.Request) (*translation.Translation, error) {
	cfg := t.config
	resp, err := t.client.Ask(ctx, &cfg, TranslationPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	text, detected := ParseTranslation(resp.Response, req)
	if text == "" {
		return nil, translation.ErrNoTranslation
	}
	return &translation.Translation{
		TranslatedText:         text,
		DetectedSourceLanguage: detected,
		Provider:               t.name,
	}, nil
}

func (t *LLMTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	cfg := t.config
	resp, err := t.client.Ask(ctx, &cfg, DetectionPrompt(text))
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.name, err)
	}
	return NormalizeLanguageCode(StripCodeFence(resp.Response))
}
