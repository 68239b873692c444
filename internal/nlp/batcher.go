package nlp

import (
	"context"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

// defaultBatchSize and defaultFlushTimeout are the batch-size cap and its
// companion flush timer.
const (
	defaultBatchSize     = 20
	defaultFlushTimeout  = 250 * time.Millisecond
	defaultQueueCapacity = 256
)

type batchRequest struct {
	text   string
	respCh chan batchResponse
}

type batchResponse struct {
	result models.SentimentResult
	err    error
}

// Batcher coalesces individual Classify calls into batches bounded by
// size or a flush timer, whichever is reached first.
type Batcher struct {
	in           chan batchRequest
	batchSize    int
	flushTimeout time.Duration
	classifier   Classifier
	log          *logging.Logger
}

// NewBatcher builds a Batcher around a single Classifier. batchSize <= 0
// and flushTimeout <= 0 select the spec defaults of 20 and 250ms.
func NewBatcher(classifier Classifier, batchSize int, flushTimeout time.Duration, log *logging.Logger) *Batcher {
	return NewBatcherWithQueueDepth(classifier, batchSize, flushTimeout, 0, log)
}

// NewBatcherWithQueueDepth is NewBatcher with an explicit Submit-queue
// capacity, wired to NLP_BATCHER_QUEUE_DEPTH so operators can size the
// backlog a burst of fetched articles may pile up in before Run drains it.
// queueDepth <= 0 selects the default of 256.
func NewBatcherWithQueueDepth(classifier Classifier, batchSize int, flushTimeout time.Duration, queueDepth int, log *logging.Logger) *Batcher {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if flushTimeout <= 0 {
		flushTimeout = defaultFlushTimeout
	}
	if queueDepth <= 0 {
		queueDepth = defaultQueueCapacity
	}
	return &Batcher{
		in:           make(chan batchRequest, queueDepth),
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		classifier:   classifier,
		log:          log,
	}
}

// Run drives the batching loop until ctx is cancelled. It must be
// started in its own goroutine before any call to Submit.
func (b *Batcher) Run(ctx context.Context) {
	var pending []batchRequest
	timer := time.NewTimer(b.flushTimeout)
	defer timer.Stop()

	flush := func() {
		if len(pending) == 0 {
			return
		}
		batch := pending
		pending = nil
		b.classify(ctx, batch)
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case req := <-b.in:
			pending = append(pending, req)
			if len(pending) >= b.batchSize {
				flush()
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(b.flushTimeout)
			}
		case <-timer.C:
			flush()
			timer.Reset(b.flushTimeout)
		}
	}
}

func (b *Batcher) classify(ctx context.Context, batch []batchRequest) {
	texts := make([]string, len(batch))
	for i, req := range batch {
		texts[i] = req.text
	}

	results, err := b.classifier.Classify(ctx, texts)
	if err != nil && b.log != nil {
		b.log.Warn("nlp classifier batch had failures", "classifier", b.classifier.Name(), "error", err)
	}

	for i, req := range batch {
		if i < len(results) {
			req.respCh <- batchResponse{result: results[i]}
		} else {
			req.respCh <- batchResponse{err: err}
		}
	}
}

// Submit enqueues text for the next batch and blocks until its result is
// ready or ctx is cancelled.
func (b *Batcher) Submit(ctx context.Context, text string) (models.SentimentResult, error) {
	req := batchRequest{text: text, respCh: make(chan batchResponse, 1)}

	select {
	case b.in <- req:
	case <-ctx.Done():
		return models.SentimentResult{}, ctx.Err()
	}

	select {
	case resp := <-req.respCh:
		return resp.result, resp.err
	case <-ctx.Done():
		return models.SentimentResult{}, ctx.Err()
	}
}
