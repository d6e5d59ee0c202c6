package utils

import (
	"context"
	"fmt"
	"strings"
)

// ItineraryClientInterface is the contract for external text-generation
// providers. Implementations send a system + user instruction pair and
// return the model's raw text, which callers parse as JSON.
type ItineraryClientInterface interface {
	GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// NewItineraryClient creates a provider client from configuration.
func NewItineraryClient(provider, apiKey, model string) (ItineraryClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIItineraryClient(apiKey, model), nil
	case "gemini":
		return NewGeminiItineraryClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported itinerary provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown code fences and any stray prose the model
// wrapped around the JSON payload, returning only the outermost object or
// array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatching(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatching(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
