// Package fetcher downloads raw feed and page payloads for the sources
// the registry hands it, bounding concurrency and per-source latency so
// one slow or dead source never stalls a collection cycle.
//
// # Concurrency
//
// Fetch spins up a fixed pool of worker goroutines reading from an
// internal job channel and writing results to a single output channel.
// Workers run until the source channel is drained; the output channel is
// closed once every worker has exited, so callers can range over it
// without a separate done signal.
//
// # Error Handling Philosophy
//
// A fetch failure for one source — DNS failure, connection refused, HTTP
// error status, context deadline — never aborts the cycle. It is captured
// as a Result.Err and the worker moves to its next source. Only the
// caller decides whether a cycle with partial failures is acceptable.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

// Result is one source's fetch outcome: either Payload is set and Err is
// nil, or Err is set and Payload is empty.
type Result struct {
	Source  models.SourceConfig
	Payload []byte
	Err     error
}

// Fetcher downloads source payloads with bounded parallelism.
type Fetcher struct {
	client      *http.Client
	concurrency int
	timeout     time.Duration
	log         *logging.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the default http.Client (useful in tests to
// point at an httptest.Server transport).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// New builds a Fetcher. concurrency is P_fetch (the worker pool size);
// timeout is T_fetch, the hard per-source deadline.
func New(concurrency int, timeout time.Duration, log *logging.Logger, opts ...Option) *Fetcher {
	if concurrency <= 0 {
		concurrency = 10
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	f := &Fetcher{
		client:      &http.Client{},
		concurrency: concurrency,
		timeout:     timeout,
		log:         log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads every source in sources with bounded parallelism and
// streams results back on the returned channel. The channel is closed
// once all sources have been attempted or ctx is cancelled. Exactly one
// attempt is made per source per call — no retries at this layer.
func (f *Fetcher) Fetch(ctx context.Context, sources []models.SourceConfig) <-chan Result {
	jobs := make(chan models.SourceConfig)
	out := make(chan Result, len(sources))

	workers := f.concurrency
	if workers > len(sources) && len(sources) > 0 {
		workers = len(sources)
	}
	if workers <= 0 {
		workers = 1
	}

	done := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for src := range jobs {
				out <- f.fetchOne(ctx, src)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, src := range sources {
			select {
			case jobs <- src:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		for i := 0; i < workers; i++ {
			<-done
		}
		close(out)
	}()

	return out
}

func (f *Fetcher) fetchOne(ctx context.Context, src models.SourceConfig) Result {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, src.URL, nil)
	if err != nil {
		return Result{Source: src, Err: apperrors.NewFetchError(src.Name, "building request", err)}
	}
	req.Header.Set("User-Agent", "newsscope-collector/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		f.warn(src, err)
		return Result{Source: src, Err: apperrors.NewFetchError(src.Name, "network error", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		httpErr := fmt.Errorf("HTTP status %d", resp.StatusCode)
		f.warn(src, httpErr)
		return Result{Source: src, Err: apperrors.NewFetchError(src.Name, "unexpected status", httpErr)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.warn(src, err)
		return Result{Source: src, Err: apperrors.NewFetchError(src.Name, "reading response body", err)}
	}

	return Result{Source: src, Payload: body}
}

func (f *Fetcher) warn(src models.SourceConfig, err error) {
	if f.log != nil {
		f.log.Warn("fetch failed", "source", src.Name, "url", src.URL, "error", err)
	}
}
