package gemini_test

import (
	"context"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/infra/providers"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/gemini"
	"github.com/stretchr/testify/assert"
)

func TestAsk_MissingAPIKey(t *testing.T) {
	client := gemini.NewGeminiClient()

	resp, err := client.Ask(context.Background(), &providers.Config{Model: gemini.DefaultModel}, "hello")

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "API key is required")
}
