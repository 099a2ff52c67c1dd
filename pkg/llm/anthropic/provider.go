package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"meeting-minutes-be/pkg/llm"
)

const defaultMaxTokens = 8192

type AnthropicProvider struct {
	client    anthropicsdk.Client
	ModelName string
}

var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, modelName string) *AnthropicProvider {
	return &AnthropicProvider{
		client:    anthropicsdk.NewClient(option.WithAPIKey(apiKey)),
		ModelName: modelName,
	}
}

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	// System messages ride in the dedicated System parameter; the
	// messages array carries only user/assistant turns.
	var systemText string
	messages := make([]anthropicsdk.MessageParam, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			if systemText == "" {
				systemText = msg.Content
			}
		case "assistant", "model":
			messages = append(messages, anthropicsdk.NewAssistantMessage(
				anthropicsdk.NewTextBlock(msg.Content),
			))
		default:
			messages = append(messages, anthropicsdk.NewUserMessage(
				anthropicsdk.NewTextBlock(msg.Content),
			))
		}
	}
	if len(messages) == 0 {
		return "", llm.Fatal(fmt.Errorf("anthropic: no user messages to send"))
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	maxTokens := options.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(model),
		MaxTokens:   int64(maxTokens),
		Messages:    messages,
		Temperature: anthropicsdk.Float(options.Temperature),
	}
	if systemText != "" {
		params.System = []anthropicsdk.TextBlockParam{{Text: systemText}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func classify(err error) error {
	var apiErr *anthropicsdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500:
			return llm.Retryable(fmt.Errorf("anthropic API call failed: %w", err))
		default:
			// 401/403 bad key, 400 bad request, 404 unknown model
			return llm.Fatal(fmt.Errorf("anthropic API call failed: %w", err))
		}
	}
	return llm.Retryable(fmt.Errorf("anthropic request failed: %w", err))
}
