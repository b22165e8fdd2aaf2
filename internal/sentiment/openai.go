package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/solacehq/solace-core/internal/types"
)

const maxHintTokens = 60

// ChatProvider labels messages through an OpenAI-compatible chat endpoint.
type ChatProvider struct {
	client      *openai.Client
	model       string
	instruction string
}

// NewOpenAIProvider creates a provider backed by the OpenAI API.
func NewOpenAIProvider(apiKey, modelName string) (*ChatProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHeader("user-agent", userAgent("openai-go")),
	)
	return &ChatProvider{
		client:      &client,
		model:       modelName,
		instruction: buildInstruction(),
	}, nil
}

// NewGrokProvider creates a provider backed by the x.ai API.
func NewGrokProvider(apiKey, modelName string) (*ChatProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	// Grok speaks the OpenAI wire format on its own base URL.
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL("https://api.x.ai/v1"),
		option.WithHeader("user-agent", userAgent("grok-go")),
	)
	return &ChatProvider{
		client:      &client,
		model:       modelName,
		instruction: buildInstruction(),
	}, nil
}

// NewOpenRouterProvider creates a provider backed by OpenRouter.
func NewOpenRouterProvider(apiKey, modelName string) (*ChatProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL("https://openrouter.ai/api/v1"),
		option.WithHeader("user-agent", userAgent("openrouter-go")),
	)
	return &ChatProvider{
		client:      &client,
		model:       modelName,
		instruction: buildInstruction(),
	}, nil
}

// Hint labels the polarity of one message.
func (p *ChatProvider) Hint(ctx context.Context, text string) (types.Sentiment, error) {
	if p == nil || p.client == nil {
		return "", fmt.Errorf("hint provider not configured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return types.SentimentNeutral, nil
	}

	params := openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.instruction),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(maxHintTokens),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		slog.Error("failed to call hint API", "error", err.Error())
		return "", fmt.Errorf("failed to call hint API: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty hint response")
	}

	return parseHintOutput(resp.Choices[0].Message.Content)
}

// userAgent builds the UA header once, when the provider is created.
func userAgent(clientName string) string {
	return fmt.Sprintf("%s/%s go/%s",
		clientName, "1.0.0", strings.TrimPrefix(runtime.Version(), "go"))
}
