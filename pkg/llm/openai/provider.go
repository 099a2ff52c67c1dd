package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"meeting-minutes-be/pkg/llm"
)

// GroqBaseURL points the OpenAI-compatible client at Groq's API.
const GroqBaseURL = "https://api.groq.com/openai/v1"

type OpenAIProvider struct {
	client    openaisdk.Client
	ModelName string
}

var _ llm.LLMProvider = &OpenAIProvider{}

// NewOpenAIProvider talks to the OpenAI API directly.
func NewOpenAIProvider(apiKey, modelName string) *OpenAIProvider {
	return &OpenAIProvider{
		client:    openaisdk.NewClient(option.WithAPIKey(apiKey)),
		ModelName: modelName,
	}
}

// NewCompatibleProvider talks to any OpenAI-compatible endpoint (Groq).
func NewCompatibleProvider(apiKey, modelName, baseURL string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openaisdk.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		ModelName: modelName,
	}
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			messages = append(messages, openaisdk.SystemMessage(msg.Content))
		case "assistant", "model":
			messages = append(messages, openaisdk.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(msg.Content))
		}
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    messages,
		Temperature: openaisdk.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(options.MaxTokens))
	}
	if options.JSONOutput {
		params.ResponseFormat = openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{
				Type: "json_object",
			},
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	if len(completion.Choices) == 0 {
		return "", llm.Retryable(fmt.Errorf("openai: no completion choices returned"))
	}

	return completion.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func classify(err error) error {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500:
			return llm.Retryable(fmt.Errorf("openai API call failed: %w", err))
		default:
			return llm.Fatal(fmt.Errorf("openai API call failed: %w", err))
		}
	}
	return llm.Retryable(fmt.Errorf("openai request failed: %w", err))
}
