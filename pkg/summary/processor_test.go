package summary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"meeting-minutes-be/pkg/llm"
)

// fakeSummarizer scripts per-call behavior keyed by chunk text.
type fakeSummarizer struct {
	mu       sync.Mutex
	attempts map[string]int
	behave   func(chunkText string, attempt int) (*PartialSummary, error)
}

func newFakeSummarizer(behave func(chunkText string, attempt int) (*PartialSummary, error)) *fakeSummarizer {
	return &fakeSummarizer{
		attempts: map[string]int{},
		behave:   behave,
	}
}

func (f *fakeSummarizer) Summarize(_ context.Context, chunkText string) (*PartialSummary, error) {
	f.mu.Lock()
	f.attempts[chunkText]++
	attempt := f.attempts[chunkText]
	f.mu.Unlock()
	return f.behave(chunkText, attempt)
}

func (f *fakeSummarizer) attemptCount(chunkText string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[chunkText]
}

func contentPartial(marker string) *PartialSummary {
	return &PartialSummary{
		SectionSummary: Section{
			Title:  "Section Summary",
			Blocks: []Block{{Id: marker, Type: "text", Content: marker}},
		},
	}
}

func testChunks(n int) []Chunk {
	chunks := make([]Chunk, n)
	for i := range chunks {
		chunks[i] = Chunk{Index: i, Text: fmt.Sprintf("chunk-%d", i)}
	}
	return chunks
}

func fastOpts() ProcessorOptions {
	return ProcessorOptions{
		MaxAttempts: 3,
		Workers:     2,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  2 * time.Millisecond,
	}
}

func TestProcessRetryThenSuccess(t *testing.T) {
	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		if attempt < 3 {
			return nil, llm.Retryable(errors.New("rate limited"))
		}
		return contentPartial(text), nil
	})

	partials, failures := NewProcessor(fake, fastOpts()).Process(context.Background(), testChunks(1))

	if len(failures) != 0 {
		t.Fatalf("failures = %+v, want none", failures)
	}
	if len(partials) != 1 {
		t.Fatalf("partials = %d, want 1", len(partials))
	}
	if got := fake.attemptCount("chunk-0"); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestProcessEmptyResponseIsRetried(t *testing.T) {
	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		return &PartialSummary{}, nil // valid JSON shape, no blocks anywhere
	})

	partials, failures := NewProcessor(fake, fastOpts()).Process(context.Background(), testChunks(1))

	if len(partials) != 0 {
		t.Fatalf("partials = %d, want 0", len(partials))
	}
	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	if failures[0].Attempts != 3 {
		t.Errorf("Attempts = %d, want the full budget", failures[0].Attempts)
	}
}

func TestProcessPartialFailure(t *testing.T) {
	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		if text == "chunk-1" {
			return nil, llm.Retryable(errors.New("upstream 500"))
		}
		return contentPartial(text), nil
	})

	partials, failures := NewProcessor(fake, fastOpts()).Process(context.Background(), testChunks(3))

	if len(partials) != 2 {
		t.Fatalf("partials = %d, want 2", len(partials))
	}
	// Survivors keep chunk order
	if partials[0].SectionSummary.Blocks[0].Id != "chunk-0" ||
		partials[1].SectionSummary.Blocks[0].Id != "chunk-2" {
		t.Errorf("partials out of order: %s, %s",
			partials[0].SectionSummary.Blocks[0].Id,
			partials[1].SectionSummary.Blocks[0].Id)
	}
	if len(failures) != 1 || failures[0].Index != 1 {
		t.Fatalf("failures = %+v, want single failure for chunk 1", failures)
	}
}

func TestProcessAllChunksFail(t *testing.T) {
	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		return nil, llm.Retryable(errors.New("connection refused"))
	})

	partials, failures := NewProcessor(fake, fastOpts()).Process(context.Background(), testChunks(4))

	if len(partials) != 0 {
		t.Fatalf("partials = %d, want 0", len(partials))
	}
	if len(failures) != 4 {
		t.Fatalf("failures = %d, want 4", len(failures))
	}
	for i, f := range failures {
		if f.Index != i {
			t.Errorf("failure %d has Index %d", i, f.Index)
		}
	}
}

func TestProcessFatalErrorSkipsRetries(t *testing.T) {
	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		return nil, llm.Fatal(errors.New("invalid api key"))
	})

	partials, failures := NewProcessor(fake, fastOpts()).Process(context.Background(), testChunks(1))

	if len(partials) != 0 {
		t.Fatalf("partials = %d, want 0", len(partials))
	}
	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	if failures[0].Attempts != 1 {
		t.Errorf("Attempts = %d, want 1 (no retries after fatal)", failures[0].Attempts)
	}
	if got := fake.attemptCount("chunk-0"); got != 1 {
		t.Errorf("summarizer called %d times, want 1", got)
	}
}

func TestProcessParallelKeepsOrder(t *testing.T) {
	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		// Early chunks finish last
		if text == "chunk-0" {
			time.Sleep(10 * time.Millisecond)
		}
		return contentPartial(text), nil
	})

	opts := fastOpts()
	opts.Workers = 4
	partials, failures := NewProcessor(fake, opts).Process(context.Background(), testChunks(6))

	if len(failures) != 0 {
		t.Fatalf("failures = %+v, want none", failures)
	}
	for i, p := range partials {
		want := fmt.Sprintf("chunk-%d", i)
		if p.SectionSummary.Blocks[0].Id != want {
			t.Errorf("partial %d = %s, want %s", i, p.SectionSummary.Blocks[0].Id, want)
		}
	}
}

func TestProcessContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := newFakeSummarizer(func(text string, attempt int) (*PartialSummary, error) {
		return nil, llm.Retryable(errors.New("should not matter"))
	})

	partials, failures := NewProcessor(fake, fastOpts()).Process(ctx, testChunks(2))

	if len(partials) != 0 {
		t.Fatalf("partials = %d, want 0 after cancellation", len(partials))
	}
	if len(failures) != 2 {
		t.Fatalf("failures = %d, want 2", len(failures))
	}
}
