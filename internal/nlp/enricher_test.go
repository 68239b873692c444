package nlp

import (
	"context"
	"testing"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

func newRunningBatcher(t *testing.T, c Classifier) *Batcher {
	t.Helper()
	b := NewBatcher(c, 1, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go b.Run(ctx)
	return b
}

func TestEnrichAppliesAdjusterWhenConfigured(t *testing.T) {
	stub := &stubClassifier{}
	english := newRunningBatcher(t, stub)
	indic := newRunningBatcher(t, stub)
	multi := newRunningBatcher(t, stub)

	e := NewEnricher(english, indic, multi, NewRuleBasedAdjuster(0.15), nil, nil, nil, nil)

	result, err := e.Enrich(t.Context(), "en", "excellent scheme launched for farmers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sentiment.Label == "" {
		t.Fatal("expected a sentiment label")
	}
}

func TestEnrichSkipsAdjusterWhenDisabled(t *testing.T) {
	stub := &stubClassifier{}
	english := newRunningBatcher(t, stub)
	indic := newRunningBatcher(t, stub)
	multi := newRunningBatcher(t, stub)

	e := NewEnricher(english, indic, multi, nil, nil, nil, nil, nil)

	result, err := e.Enrich(t.Context(), "en", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sentiment.Label != models.SentimentPositive || result.Sentiment.Score != 0.7 {
		t.Fatalf("expected the raw stub classifier result unmodified, got %+v", result.Sentiment)
	}
}

func TestEnrichRoutesByLanguage(t *testing.T) {
	english := newRunningBatcher(t, &stubClassifier{})
	indicStub := &stubClassifier{}
	indic := newRunningBatcher(t, indicStub)
	multi := newRunningBatcher(t, &stubClassifier{})

	e := NewEnricher(english, indic, multi, nil, nil, nil, nil, nil)

	if _, err := e.Enrich(t.Context(), "hi", "कुछ पाठ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(indicStub.calls) != 1 {
		t.Fatalf("expected hi text routed to the indic batcher, got %d calls", len(indicStub.calls))
	}
}

func TestGazetteerEntitiesMatchesSchemeNames(t *testing.T) {
	entities := gazetteerEntities("The Ayushman Bharat scheme was expanded today")
	found := false
	for _, e := range entities {
		if e.Label == "SCHEME" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected at least one SCHEME entity from gazetteer match")
	}
}
