package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient(apiKey, model string) *OpenAIItineraryClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIItineraryClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIItineraryClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIItineraryClient) Close() error {
	return nil
}
