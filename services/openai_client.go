package services

import (
	"context"
	"errors"
	"fmt"

	"Townplate/config/environment"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const suggestionSystemPrompt = `You are a food discovery assistant for a local delivery app. ` +
	`Given what the user is craving, suggest exactly 3 dishes they could search for. ` +
	`Use widely known dish names so a catalog search for the name has a chance to match. ` +
	`Return only JSON conforming to the provided schema, with a short appetizing description per dish. ` +
	`Do not add explanations outside the JSON response.`

// suggestionSchema constrains the model output to
// {"suggestions": [{"name": string, "description": string}, ...]}.
var suggestionSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"suggestions": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"name":        {Type: jsonschema.String},
					"description": {Type: jsonschema.String},
				},
				Required:             []string{"name", "description"},
				AdditionalProperties: false,
			},
		},
	},
	Required:             []string{"suggestions"},
	AdditionalProperties: false,
}

// OpenAIClient is the production recommendation collaborator, backed by the
// OpenAI chat completions API with a strict JSON schema response format.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates the client from environment configuration.
func NewOpenAIClient() *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(environment.GetOpenAIKey()),
		model:  environment.GetOpenAIModel(),
	}
}

// Suggest sends the craving prompt and returns the raw model output. The
// schema is asserted on the request; the caller still validates the response,
// since the collaborator's output is untrusted.
func (c *OpenAIClient) Suggest(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "dish_suggestions",
				Schema: &suggestionSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}
	return resp.Choices[0].Message.Content, nil
}
