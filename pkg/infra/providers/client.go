package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials `json:"credentials"`
	Model        string      `json:"model"`
	MaxTokens    int         `json:"max_tokens,omitempty"`
	Temperature  float64     `json:"temperature,omitempty"`
	SystemPrompt string      `json:"system_prompt,omitempty"`
	Instructions []string    `json:"instructions,omitempty"`
}

type Credentials struct {
	ApiKey     string                 `json:"api_key,omitempty"`
	BaseURL    string                 `json:"base_url,omitempty"`
	Azure      *AzureCredentials      `json:"azure,omitempty"`
	AwsBedrock *AwsBedrockCredentials `json:"aws_bedrock,omitempty"`
}

type AzureCredentials struct {
	Endpoint    string `json:"endpoint" mapstructure:"endpoint"`
	Deployment  string `json:"deployment" mapstructure:"deployment"`
	ApiVersion  string `json:"api_version" mapstructure:"api_version"`
	UseIdentity bool   `json:"use_identity" mapstructure:"use_identity"`
}

type AwsBedrockCredentials struct {
	Region       string `json:"region" mapstructure:"region"`
	AccessKey    string `json:"access_key" mapstructure:"access_key"`
	SecretKey    string `json:"secret_key" mapstructure:"secret_key"`
	SessionToken string `json:"session_token" mapstructure:"session_token"`
	UseRole      bool   `json:"use_role" mapstructure:"use_role"`
	RoleARN      string `json:"role_arn" mapstructure:"role_arn"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

// Client sends a single prompt to a chat-completion model.
type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}
