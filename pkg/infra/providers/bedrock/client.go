package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/PolyglAI/PolyglAI/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	stsTypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/valyala/fastjson"
)

const (
	DefaultModel     = "anthropic.claude-3-haiku-20240307-v1:0"
	defaultRegion    = "us-east-1"
	defaultMaxTokens = 1024
	anthropicVersion = "bedrock-2023-05-31"
	roleSessionName  = "PolyglAITranslationSession"

	modelPrefixAnthropicClaude = "anthropic.claude"
	modelPrefixAmazonTitan     = "amazon.titan"
	modelPrefixMistral         = "mistral"
	modelPrefixMetaLlama       = "meta.llama"
)

// InvokeModelAPI is the subset of the bedrock runtime client the
// translator uses.
type InvokeModelAPI interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

type runtimeFactory func(ctx context.Context, credentials providers.Credentials) (InvokeModelAPI, error)

type client struct {
	clientPool *sync.Map
	newRuntime runtimeFactory
}

func NewBedrockClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
		newRuntime: func(ctx context.Context, credentials providers.Credentials) (InvokeModelAPI, error) {
			cfg, err := buildAwsConfig(ctx, credentials)
			if err != nil {
				return nil, err
			}
			return bedrockruntime.NewFromConfig(cfg), nil
		},
	}
}

// NewBedrockClientWithRuntime sends every request through api regardless
// of the configured credentials.
func NewBedrockClientWithRuntime(api InvokeModelAPI) providers.Client {
	return &client{
		clientPool: &sync.Map{},
		newRuntime: func(context.Context, providers.Credentials) (InvokeModelAPI, error) {
			return api, nil
		},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	runtime, err := c.getOrCreateClient(ctx, config.Credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	body, err := json.Marshal(prepareRequest(model, config, prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	responseText, usage, err := parseResponse(model, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &providers.CompletionResponse{
		ID:       providers.CompletionID(ctx, "bedrock"),
		Model:    model,
		Response: responseText,
		Usage:    usage,
	}, nil
}

func prepareRequest(model string, config *providers.Config, prompt string) map[string]interface{} {
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	if strings.Contains(model, modelPrefixAnthropicClaude) {
		var messages []map[string]interface{}
		if len(config.Instructions) > 0 {
			messages = append(messages, map[string]interface{}{
				"role": "user", "content": providers.FormatInstructions(config.Instructions),
			})
		}
		messages = append(messages, map[string]interface{}{"role": "user", "content": prompt})
		request := map[string]interface{}{
			"anthropic_version": anthropicVersion,
			"max_tokens":        maxTokens,
			"messages":          messages,
		}
		if config.SystemPrompt != "" {
			request["system"] = config.SystemPrompt
		}
		if config.Temperature > 0 {
			request["temperature"] = config.Temperature
		}
		return request
	}

	var fullPrompt strings.Builder
	if config.SystemPrompt != "" {
		fullPrompt.WriteString(config.SystemPrompt + "\n\n")
	}
	if len(config.Instructions) > 0 {
		fullPrompt.WriteString(providers.FormatInstructions(config.Instructions) + "\n\n")
	}
	fullPrompt.WriteString(prompt)

	if strings.Contains(model, modelPrefixAmazonTitan) {
		generation := map[string]interface{}{"maxTokenCount": maxTokens}
		if config.Temperature > 0 {
			generation["temperature"] = config.Temperature
		}
		return map[string]interface{}{
			"inputText":            fullPrompt.String(),
			"textGenerationConfig": generation,
		}
	}

	request := map[string]interface{}{"prompt": fullPrompt.String()}
	if strings.Contains(model, modelPrefixMetaLlama) {
		request["max_gen_len"] = maxTokens
	} else {
		request["max_tokens"] = maxTokens
	}
	if config.Temperature > 0 {
		request["temperature"] = config.Temperature
	}
	return request
}

func parseResponse(model string, body []byte) (string, providers.Usage, error) {
	var usage providers.Usage
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return "", usage, err
	}

	var text string
	switch {
	case strings.Contains(model, modelPrefixAnthropicClaude):
		for _, block := range v.GetArray("content") {
			if string(block.GetStringBytes("type")) == "text" {
				text = string(block.GetStringBytes("text"))
				break
			}
		}
		usage.PromptTokens = v.GetInt("usage", "input_tokens")
		usage.CompletionTokens = v.GetInt("usage", "output_tokens")
	case strings.Contains(model, modelPrefixAmazonTitan):
		if results := v.GetArray("results"); len(results) > 0 {
			text = string(results[0].GetStringBytes("outputText"))
			usage.CompletionTokens = results[0].GetInt("tokenCount")
		}
		usage.PromptTokens = v.GetInt("inputTextTokenCount")
	case strings.Contains(model, modelPrefixMistral):
		if outputs := v.GetArray("outputs"); len(outputs) > 0 {
			text = string(outputs[0].GetStringBytes("text"))
		}
	default:
		text = string(v.GetStringBytes("generation"))
		usage.PromptTokens = v.GetInt("prompt_token_count")
		usage.CompletionTokens = v.GetInt("generation_token_count")
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens

	text = strings.TrimSpace(text)
	if text == "" {
		return "", usage, fmt.Errorf("no text content returned")
	}
	return text, usage, nil
}

func (c *client) getOrCreateClient(ctx context.Context, credentials providers.Credentials) (InvokeModelAPI, error) {
	clientKey := buildClientKey(credentials)
	if clientVal, ok := c.clientPool.Load(clientKey); ok {
		if runtime, ok := clientVal.(InvokeModelAPI); ok {
			return runtime, nil
		}
	}
	runtime, err := c.newRuntime(ctx, credentials)
	if err != nil {
		return nil, err
	}
	c.clientPool.Store(clientKey, runtime)
	return runtime, nil
}

func buildClientKey(credentials providers.Credentials) string {
	if credentials.AwsBedrock == nil {
		return "default"
	}
	b := credentials.AwsBedrock
	return fmt.Sprintf("%s:%s:%t:%s", b.Region, b.AccessKey, b.UseRole, b.RoleARN)
}

// buildAwsConfig uses static keys when given and the default AWS credential
// chain otherwise. With UseRole the keys are exchanged for role credentials.
func buildAwsConfig(ctx context.Context, credentials providers.Credentials) (aws.Config, error) {
	if credentials.AwsBedrock == nil {
		return config.LoadDefaultConfig(ctx, config.WithRegion(defaultRegion))
	}

	region := credentials.AwsBedrock.Region
	if region == "" {
		region = defaultRegion
	}
	accessKey := credentials.AwsBedrock.AccessKey
	secretKey := credentials.AwsBedrock.SecretKey

	if credentials.AwsBedrock.UseRole && credentials.AwsBedrock.RoleARN != "" {
		creds, err := assumeRole(ctx, accessKey, secretKey, credentials.AwsBedrock.RoleARN, region)
		if err != nil {
			return aws.Config{}, err
		}
		return loadAWSConfig(ctx, *creds.AccessKeyId, *creds.SecretAccessKey, *creds.SessionToken, region)
	}
	if accessKey == "" {
		return config.LoadDefaultConfig(ctx, config.WithRegion(region))
	}
	return loadAWSConfig(ctx, accessKey, secretKey, credentials.AwsBedrock.SessionToken, region)
}

func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)),
		config.WithRegion(region),
	)
}

func assumeRole(ctx context.Context, accessKey, secretKey, roleARN, region string) (*stsTypes.Credentials, error) {
	var baseCfg aws.Config
	var err error
	if accessKey == "" {
		baseCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(region))
	} else {
		baseCfg, err = loadAWSConfig(ctx, accessKey, secretKey, "", region)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load base AWS config: %w", err)
	}

	output, err := sts.NewFromConfig(baseCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(roleSessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assume role: %w", err)
	}
	return output.Credentials, nil
}
