package summary

import (
	"context"
	"fmt"
	"time"

	"meeting-minutes-be/pkg/llm"
)

// Summarizer is the narrow client boundary the processor depends on:
// one chunk in, one structured partial out. Implementations classify
// failures with llm.Retryable / llm.Fatal.
type Summarizer interface {
	Summarize(ctx context.Context, chunkText string) (*PartialSummary, error)
}

const defaultCallTimeout = 120 * time.Second

// LLMSummarizer adapts an llm.LLMProvider into the Summarizer boundary:
// it owns the instruction template, the per-call timeout, and the
// parsing of the structured response.
type LLMSummarizer struct {
	provider llm.LLMProvider
	model    string
	timeout  time.Duration
}

var _ Summarizer = &LLMSummarizer{}

func NewLLMSummarizer(provider llm.LLMProvider, model string) *LLMSummarizer {
	return &LLMSummarizer{
		provider: provider,
		model:    model,
		timeout:  defaultCallTimeout,
	}
}

func (s *LLMSummarizer) WithTimeout(d time.Duration) *LLMSummarizer {
	if d > 0 {
		s.timeout = d
	}
	return s
}

func (s *LLMSummarizer) Summarize(ctx context.Context, chunkText string) (*PartialSummary, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Generate(callCtx, BuildChunkPrompt(chunkText),
		llm.WithModel(s.model),
		llm.WithTemperature(0.2),
		llm.WithJSONOutput(),
	)
	if err != nil {
		if callCtx.Err() != nil {
			// A timed-out call is transient, not fatal
			return nil, llm.Retryable(fmt.Errorf("summarization call timed out: %w", err))
		}
		return nil, err
	}

	partial, err := ParsePartialSummary(raw)
	if err != nil {
		return nil, llm.Retryable(fmt.Errorf("malformed structured output: %w", err))
	}
	return partial, nil
}
