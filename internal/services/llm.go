package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// LLM translates through an OpenAI-compatible chat endpoint (Groq). Last-resort
// provider; only wired when an API key is configured.
type LLM struct {
	client *openai.Client
	model  string
}

func NewLLM(apiKey, model string) *LLM {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = "https://api.groq.com/openai/v1"

	return &LLM{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (l *LLM) Name() string { return "llm" }

func (l *LLM) Translate(ctx context.Context, text, source, target string) (string, error) {
	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a translation engine. Translate the user's text from %s to %s. Reply with the translation only, no explanations.",
					source, target),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("llm API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
