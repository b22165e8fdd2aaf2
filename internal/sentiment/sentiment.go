// Package sentiment asks a language model for a polarity hint on a single
// chat message. The hint is advisory: the classifier only consults it when
// its own tiers find nothing.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/solacehq/solace-core/internal/types"
)

// Provider labels the emotional polarity of one message.
type Provider interface {
	Hint(ctx context.Context, text string) (types.Sentiment, error)
}

// hintInstruction asks for a single strict JSON object so the tolerant
// parser below has something stable to grab.
const hintInstruction = `You label the emotional polarity of one chat message.
Judge only how the writer feels, not the topic they discuss.
Return a valid JSON object that matches the output schema.
Do not include any extra keys or text outside the JSON object.`

// hintOutput is the structured response expected from the model.
type hintOutput struct {
	Sentiment string `json:"sentiment"`
}

func hintOutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"sentiment": {
				Type:        "string",
				Description: "Polarity of the writer's feeling.",
				Enum:        []any{"positive", "negative", "neutral"},
			},
		},
		Required: []string{"sentiment"},
	}
}

// renderSchemaJSON flattens the schema into plain JSON for embedding in the
// instruction, since chat-completion endpoints take no schema parameter.
func renderSchemaJSON(schema *jsonschema.Schema) string {
	result := map[string]any{
		"type": "object",
	}
	if schema.Type != "" {
		result["type"] = schema.Type
	}
	if len(schema.Properties) > 0 {
		properties := make(map[string]any)
		for name, propSchema := range schema.Properties {
			if propSchema == nil {
				continue
			}
			prop := map[string]any{}
			if propSchema.Type != "" {
				prop["type"] = propSchema.Type
			}
			if propSchema.Description != "" {
				prop["description"] = propSchema.Description
			}
			if len(propSchema.Enum) > 0 {
				prop["enum"] = propSchema.Enum
			}
			properties[name] = prop
		}
		result["properties"] = properties
	}
	if len(schema.Required) > 0 {
		result["required"] = schema.Required
	}

	rendered, err := json.Marshal(result)
	if err != nil {
		return ""
	}
	return string(rendered)
}

// buildInstruction appends the rendered schema to the base instruction.
func buildInstruction() string {
	rendered := renderSchemaJSON(hintOutputSchema())
	if rendered == "" {
		return hintInstruction
	}
	return hintInstruction + "\n\nOutput schema:\n" + rendered
}

// parseHintOutput extracts and validates the sentiment label from a model
// response. Models occasionally wrap the JSON in prose or answer with the
// bare label; both forms are accepted.
func parseHintOutput(raw string) (types.Sentiment, error) {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var output hintOutput
	if err := json.Unmarshal([]byte(clean), &output); err != nil {
		return normalizeLabel(clean)
	}
	return normalizeLabel(output.Sentiment)
}

func normalizeLabel(label string) (types.Sentiment, error) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(label), "\"'.")) {
	case "positive":
		return types.SentimentPositive, nil
	case "negative":
		return types.SentimentNegative, nil
	case "neutral":
		return types.SentimentNeutral, nil
	}
	return "", fmt.Errorf("invalid sentiment label: %s", label)
}
