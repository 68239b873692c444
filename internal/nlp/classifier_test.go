package nlp

import "testing"

func TestRouteClassifierSelectsByLanguage(t *testing.T) {
	english := &RuleBasedClassifier{}
	indic := &RuleBasedClassifier{}
	multilingual := &RuleBasedClassifier{}

	if got := RouteClassifier("en", english, indic, multilingual); got != english {
		t.Error("expected en to route to english classifier")
	}
	if got := RouteClassifier("hi", english, indic, multilingual); got != indic {
		t.Error("expected hi to route to indic classifier")
	}
	if got := RouteClassifier("ta", english, indic, multilingual); got != indic {
		t.Error("expected ta to route to indic classifier")
	}
	if got := RouteClassifier("fr", english, indic, multilingual); got != multilingual {
		t.Error("expected unrecognized language to route to multilingual classifier")
	}
}

func TestParseSentimentLineParsesLabelScore(t *testing.T) {
	r := parseSentimentLine("positive|0.82")
	if r.Label != "positive" || r.Score != 0.82 {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestParseSentimentLineClampsOutOfRangeScore(t *testing.T) {
	r := parseSentimentLine("negative|1.5")
	if r.Score != 1 {
		t.Fatalf("expected score clamped to 1, got %v", r.Score)
	}
}

func TestParseSentimentLineDefaultsUnknownLabelToNeutral(t *testing.T) {
	r := parseSentimentLine("mixed|0.4")
	if r.Label != "neutral" {
		t.Fatalf("expected unknown label to fall back to neutral, got %q", r.Label)
	}
}

func TestParseSentimentLineParsesStarRating(t *testing.T) {
	cases := map[string]string{
		"1 star":  "negative",
		"2 stars": "negative",
		"3 stars": "neutral",
		"4 stars": "positive",
		"5 stars": "positive",
	}
	for line, want := range cases {
		r := parseSentimentLine(line)
		if string(r.Label) != want {
			t.Errorf("parseSentimentLine(%q) = %q, want %q", line, r.Label, want)
		}
	}
}

func TestRuleBasedClassifierProducesResultPerText(t *testing.T) {
	c := NewRuleBasedClassifier(NewRuleBasedAdjuster(0.15))
	results, err := c.Classify(t.Context(), []string{"great scheme launched", "ordinary update"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected one result per input text, got %d", len(results))
	}
}
