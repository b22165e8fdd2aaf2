package sentiment

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/solacehq/solace-core/internal/types"
)

// GeminiProvider labels messages through the Gemini API, which takes the
// response schema as a typed request parameter.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider backed by the Gemini API.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  strings.TrimSpace(modelName),
	}, nil
}

// Hint labels the polarity of one message.
func (p *GeminiProvider) Hint(ctx context.Context, text string) (types.Sentiment, error) {
	if p == nil || p.client == nil {
		return "", fmt.Errorf("hint provider not configured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return types.SentimentNeutral, nil
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(hintInstruction, "user"),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    geminiHintSchema(),
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(text), config)
	if err != nil {
		return "", fmt.Errorf("failed to call hint API: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty hint response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return parseHintOutput(sb.String())
}

func geminiHintSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sentiment": {
				Type: genai.TypeString,
				Enum: []string{"positive", "negative", "neutral"},
			},
		},
		Required: []string{"sentiment"},
	}
}
