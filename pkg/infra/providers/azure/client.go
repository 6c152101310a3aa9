package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/PolyglAI/PolyglAI/pkg/infra/httpx"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers"
	"github.com/valyala/fastjson"
)

const (
	DefaultAPIVersion      = "2024-02-15-preview"
	cognitiveServicesScope = "https://cognitiveservices.azure.com/.default"
)

type client struct {
	httpClient httpx.Client

	credMu     sync.Mutex
	credential azcore.TokenCredential
}

func NewAzureClient(httpClient httpx.Client) providers.Client {
	return &client{httpClient: httpClient}
}

// NewAzureClientWithCredential uses the given credential instead of the
// default Azure credential chain when identity auth is enabled.
func NewAzureClientWithCredential(httpClient httpx.Client, credential azcore.TokenCredential) providers.Client {
	return &client{httpClient: httpClient, credential: credential}
}

// Ask calls an Azure OpenAI chat deployment. The deployment comes from the
// Azure credentials and falls back to the model name. Authentication uses
// the api-key header unless identity auth is enabled.
func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	azureCfg := config.Credentials.Azure
	if azureCfg == nil {
		return nil, fmt.Errorf("azure configuration is required")
	}
	if azureCfg.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	deployment := azureCfg.Deployment
	if deployment == "" {
		deployment = config.Model
	}
	if deployment == "" {
		return nil, fmt.Errorf("model (deployment ID) is required")
	}
	if !azureCfg.UseIdentity && config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required when not using Azure identity")
	}

	var messages []map[string]string
	if config.SystemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		messages = append(messages, map[string]string{"role": "user", "content": providers.FormatInstructions(config.Instructions)})
	}
	if prompt != "" {
		messages = append(messages, map[string]string{"role": "user", "content": prompt})
	}

	reqBody := map[string]interface{}{"messages": messages}
	if config.Temperature > 0 {
		reqBody["temperature"] = config.Temperature
	}
	if config.MaxTokens > 0 {
		reqBody["max_tokens"] = config.MaxTokens
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiVersion := azureCfg.ApiVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimSuffix(azureCfg.Endpoint, "/"), deployment, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if azureCfg.UseIdentity {
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("api-key", config.Credentials.ApiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status: %d: %s", resp.StatusCode, string(respBody))
	}

	v, err := fastjson.ParseBytes(respBody)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	choices := v.GetArray("choices")
	if len(choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}
	content := string(choices[0].GetStringBytes("message", "content"))
	if content == "" {
		return nil, fmt.Errorf("invalid content format")
	}

	id := string(v.GetStringBytes("id"))
	if id == "" {
		id = providers.CompletionID(ctx, "azure")
	}
	return &providers.CompletionResponse{
		ID:       id,
		Model:    deployment,
		Response: content,
		Usage: providers.Usage{
			PromptTokens:     v.GetInt("usage", "prompt_tokens"),
			CompletionTokens: v.GetInt("usage", "completion_tokens"),
			TotalTokens:      v.GetInt("usage", "total_tokens"),
		},
	}, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.credMu.Lock()
	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			c.credMu.Unlock()
			return "", fmt.Errorf("failed to create credential: %w", err)
		}
		c.credential = cred
	}
	cred := c.credential
	c.credMu.Unlock()

	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveServicesScope},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}
