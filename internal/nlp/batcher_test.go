package nlp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

type stubClassifier struct {
	mu    sync.Mutex
	calls [][]string
}

func (s *stubClassifier) Name() string { return "stub" }

func (s *stubClassifier) Classify(_ context.Context, texts []string) ([]models.SentimentResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, append([]string(nil), texts...))
	s.mu.Unlock()

	out := make([]models.SentimentResult, len(texts))
	for i := range texts {
		out[i] = models.SentimentResult{Label: models.SentimentPositive, Score: 0.7}
	}
	return out, nil
}

func TestBatcherFlushesOnSize(t *testing.T) {
	stub := &stubClassifier{}
	b := NewBatcher(stub, 2, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	var wg sync.WaitGroup
	results := make([]models.SentimentResult, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := b.Submit(ctx, "text")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		if r.Label != models.SentimentPositive {
			t.Fatalf("expected positive label from stub, got %+v", r)
		}
	}
}

func TestBatcherFlushesOnTimeout(t *testing.T) {
	stub := &stubClassifier{}
	b := NewBatcher(stub, 20, 20*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	r, err := b.Submit(ctx, "lonely text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Label != models.SentimentPositive {
		t.Fatalf("expected flush-by-timeout to still classify, got %+v", r)
	}
}
