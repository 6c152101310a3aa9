package azure_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	httpxMocks "github.com/PolyglAI/PolyglAI/pkg/infra/httpx/mocks"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers/azure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticCredential struct{ token string }

func (c staticCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: c.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

const completion = `{"id":"chatcmpl-az","choices":[{"message":{"role":"assistant","content":"ciao"}}],
	"usage":{"prompt_tokens":5,"completion_tokens":1,"total_tokens":6}}`

func TestAsk_Validation(t *testing.T) {
	client := azure.NewAzureClient(httpxMocks.NewClient(t))
	ctx := context.Background()

	_, err := client.Ask(ctx, &providers.Config{}, "hi")
	assert.ErrorContains(t, err, "azure configuration is required")

	_, err = client.Ask(ctx, &providers.Config{Credentials: providers.Credentials{
		Azure: &providers.AzureCredentials{},
	}}, "hi")
	assert.ErrorContains(t, err, "azure endpoint is required")

	_, err = client.Ask(ctx, &providers.Config{Credentials: providers.Credentials{
		Azure: &providers.AzureCredentials{Endpoint: "https://x.openai.azure.com"},
	}}, "hi")
	assert.ErrorContains(t, err, "deployment ID")

	_, err = client.Ask(ctx, &providers.Config{Model: "gpt-4o", Credentials: providers.Credentials{
		Azure: &providers.AzureCredentials{Endpoint: "https://x.openai.azure.com"},
	}}, "hi")
	assert.ErrorContains(t, err, "API key is required")
}

func TestAsk_APIKey(t *testing.T) {
	httpClient := httpxMocks.NewClient(t)
	httpClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.URL.String() == "https://x.openai.azure.com/openai/deployments/translate/chat/completions?api-version="+azure.DefaultAPIVersion &&
			r.Header.Get("api-key") == "secret" &&
			r.Header.Get("Authorization") == ""
	})).Return(jsonResponse(http.StatusOK, completion), nil).Once()

	client := azure.NewAzureClient(httpClient)
	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{
			ApiKey: "secret",
			Azure:  &providers.AzureCredentials{Endpoint: "https://x.openai.azure.com/", Deployment: "translate"},
		},
	}, "hello")

	require.NoError(t, err)
	assert.Equal(t, "chatcmpl-az", resp.ID)
	assert.Equal(t, "ciao", resp.Response)
	assert.Equal(t, "translate", resp.Model)
	assert.Equal(t, 6, resp.Usage.TotalTokens)
}

func TestAsk_Identity(t *testing.T) {
	httpClient := httpxMocks.NewClient(t)
	httpClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer aad-token" && r.Header.Get("api-key") == ""
	})).Return(jsonResponse(http.StatusOK, completion), nil).Once()

	client := azure.NewAzureClientWithCredential(httpClient, staticCredential{token: "aad-token"})
	_, err := client.Ask(context.Background(), &providers.Config{
		Model: "gpt-4o",
		Credentials: providers.Credentials{
			Azure: &providers.AzureCredentials{Endpoint: "https://x.openai.azure.com", UseIdentity: true},
		},
	}, "hello")

	require.NoError(t, err)
}

func TestAsk_UpstreamError(t *testing.T) {
	httpClient := httpxMocks.NewClient(t)
	httpClient.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusTooManyRequests, `{"error":"throttled"}`), nil).Once()

	client := azure.NewAzureClient(httpClient)
	_, err := client.Ask(context.Background(), &providers.Config{
		Model: "gpt-4o",
		Credentials: providers.Credentials{
			ApiKey: "secret",
			Azure:  &providers.AzureCredentials{Endpoint: "https://x.openai.azure.com"},
		},
	}, "hello")

	assert.ErrorContains(t, err, "non-200 status: 429")
}
