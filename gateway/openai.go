package gateway

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements Generator using OpenAI's chat completion API.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI generator.
type OpenAIConfig struct {
	APIKey      string  // API key; required
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Sampling temperature (default: 0.8)
	BaseURL     string  // Custom base URL, also used for compatible providers
}

// NewOpenAIGenerator creates a new OpenAI-backed generator.
func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.8
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Generate implements Generator.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = 800
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		if len(resp.Choices) > 0 && resp.Choices[0].FinishReason == openai.FinishReasonContentFilter {
			return "", &Error{
				Kind:    KindSafetyBlock,
				Message: "content was blocked by safety filters; try rephrasing",
			}
		}
		return "", &Error{
			Kind:    KindNoResponse,
			Message: "no response from provider; please try again",
		}
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError maps a transport/API failure to the kind taxonomy.
func classifyOpenAIError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := strings.ToLower(apiErr.Message)
		switch {
		case apiErr.HTTPStatusCode == 429 ||
			strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit"):
			return &Error{
				Kind:    KindRateLimit,
				Message: "API quota exceeded; wait a few minutes or check your plan",
				Cause:   err,
			}
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403 ||
			strings.Contains(msg, "api key") || strings.Contains(msg, "incorrect"):
			return &Error{
				Kind:    KindAuth,
				Message: "invalid API key; check your provider settings",
				Cause:   err,
			}
		case apiErr.HTTPStatusCode == 402 ||
			strings.Contains(msg, "billing") || strings.Contains(msg, "insufficient"):
			return &Error{
				Kind:    KindBilling,
				Message: "insufficient credits; top up your provider account",
				Cause:   err,
			}
		case apiErr.HTTPStatusCode >= 500:
			return &Error{
				Kind:    KindServer,
				Message: "provider is temporarily unavailable; try again later",
				Cause:   err,
			}
		}
		return &Error{Kind: KindAPI, Message: apiErr.Message, Cause: err}
	}

	var authErr *openai.RequestError
	if errors.As(err, &authErr) && authErr.HTTPStatusCode == 401 {
		return &Error{
			Kind:    KindAuth,
			Message: "invalid API key; check your provider settings",
			Cause:   err,
		}
	}

	return &Error{Kind: KindAPI, Message: "provider request failed", Cause: err}
}

// Verify OpenAIGenerator implements Generator
var _ Generator = (*OpenAIGenerator)(nil)
