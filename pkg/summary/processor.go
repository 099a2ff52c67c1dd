package summary

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"meeting-minutes-be/pkg/llm"
)

// ChunkFailure records a chunk whose attempt budget was exhausted (or
// that hit a fatal error). Failures never abort the run.
type ChunkFailure struct {
	Index    int
	Attempts int
	Err      error
}

// ProcessorOptions tune the per-chunk retry loop and the worker pool.
type ProcessorOptions struct {
	MaxAttempts int           // attempts per chunk, default 3
	Workers     int           // concurrent chunk calls, default 2
	BaseBackoff time.Duration // first retry delay, default 2s
	MaxBackoff  time.Duration // delay cap, default 32s
}

func (o ProcessorOptions) withDefaults() ProcessorOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.Workers <= 0 {
		o.Workers = 2
	}
	if o.BaseBackoff <= 0 {
		o.BaseBackoff = 2 * time.Second
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 32 * time.Second
	}
	return o
}

// Processor drives the Summarizer over a chunk sequence with bounded
// retries and bounded parallelism. It owns no persistence; partial
// results for failed chunks are simply absent from the output.
type Processor struct {
	summarizer Summarizer
	opts       ProcessorOptions
}

func NewProcessor(summarizer Summarizer, opts ProcessorOptions) *Processor {
	return &Processor{
		summarizer: summarizer,
		opts:       opts.withDefaults(),
	}
}

// Process invokes the summarizer for every chunk. Partials come back
// ordered by chunk index regardless of completion order; failures are
// reported per chunk and never abort the remaining chunks.
func (p *Processor) Process(ctx context.Context, chunks []Chunk) ([]*PartialSummary, []ChunkFailure) {
	results := make([]*PartialSummary, len(chunks))
	failSlots := make([]*ChunkFailure, len(chunks))

	sem := make(chan struct{}, p.opts.Workers)
	var wg sync.WaitGroup

	for i := range chunks {
		wg.Add(1)
		sem <- struct{}{}
		go func(chunk Chunk) {
			defer wg.Done()
			defer func() { <-sem }()

			partial, failure := p.processChunk(ctx, chunk)
			results[chunk.Index] = partial
			failSlots[chunk.Index] = failure
		}(chunks[i])
	}

	wg.Wait()

	// Compact into index order, dropping the failed slots
	var partials []*PartialSummary
	var failures []ChunkFailure
	for i := range chunks {
		if results[i] != nil {
			partials = append(partials, results[i])
			continue
		}
		if failSlots[i] != nil {
			failures = append(failures, *failSlots[i])
		}
	}

	return partials, failures
}

func (p *Processor) processChunk(ctx context.Context, chunk Chunk) (*PartialSummary, *ChunkFailure) {
	var lastErr error

	for attempt := 1; attempt <= p.opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := p.sleepBackoff(ctx, attempt); err != nil {
				lastErr = err
				break
			}
		}
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		partial, err := p.summarizer.Summarize(ctx, chunk.Text)
		if err == nil && !partial.HasContent() {
			// Syntactically valid but semantically empty: retryable
			err = fmt.Errorf("summary response contained no blocks in any section")
		}
		if err == nil {
			return partial, nil
		}

		lastErr = err
		if llm.IsFatal(err) {
			log.Printf("[ERROR] Chunk %d failed with non-retryable error: %v", chunk.Index, err)
			return nil, &ChunkFailure{Index: chunk.Index, Attempts: attempt, Err: err}
		}
		log.Printf("[WARN] Chunk %d attempt %d/%d failed: %v", chunk.Index, attempt, p.opts.MaxAttempts, err)
	}

	return nil, &ChunkFailure{Index: chunk.Index, Attempts: p.opts.MaxAttempts, Err: lastErr}
}

// sleepBackoff waits exponentially longer before each retry, with
// jitter so parallel chunks don't hammer the provider in lockstep.
func (p *Processor) sleepBackoff(ctx context.Context, attempt int) error {
	delay := p.opts.BaseBackoff << (attempt - 2)
	if delay > p.opts.MaxBackoff {
		delay = p.opts.MaxBackoff
	}
	half := delay / 2
	delay = half + time.Duration(rand.Int63n(int64(half)+1))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
