package nlp

import (
	"testing"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

func TestRuleBasedAdjusterBoostsPositiveSignal(t *testing.T) {
	a := NewRuleBasedAdjuster(0)
	original := models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5}

	out := a.Adjust("Ministry announces major achievement in digital india rollout", original)

	if out.Score <= original.Score {
		t.Fatalf("expected score to increase, got %v (was %v)", out.Score, original.Score)
	}
	if out.OriginalLabel != models.SentimentNeutral || out.OriginalScore != 0.5 {
		t.Fatalf("expected original label/score preserved, got %+v", out)
	}
	if out.AdjustmentReason == "" || out.AdjustmentReason == "no_keywords_found" {
		t.Fatalf("expected a populated adjustment reason, got %q", out.AdjustmentReason)
	}
}

func TestRuleBasedAdjusterPenalizesNegativeSignal(t *testing.T) {
	a := NewRuleBasedAdjuster(0)
	original := models.SentimentResult{Label: models.SentimentPositive, Score: 0.8}

	out := a.Adjust("Serious concern raised over massive corruption scandal", original)

	if out.Score >= original.Score {
		t.Fatalf("expected score to decrease, got %v (was %v)", out.Score, original.Score)
	}
	if out.Label != models.SentimentNegative {
		t.Fatalf("expected relabel to negative at low score, got %s", out.Label)
	}
}

func TestRuleBasedAdjusterNoKeywordsIsNoop(t *testing.T) {
	a := NewRuleBasedAdjuster(0)
	original := models.SentimentResult{Label: models.SentimentNeutral, Score: 0.42}

	out := a.Adjust("A wholly unrelated sentence about nothing in particular", original)

	if out.Score != original.Score || out.Label != original.Label {
		t.Fatalf("expected no-op on zero keyword matches, got %+v", out)
	}
	if out.AdjustmentReason != "no_keywords_found" {
		t.Fatalf("expected no_keywords_found reason, got %q", out.AdjustmentReason)
	}
}

func TestRuleBasedAdjusterEmptyTextIsNoop(t *testing.T) {
	a := NewRuleBasedAdjuster(0)
	original := models.SentimentResult{Label: models.SentimentPositive, Score: 0.9}

	out := a.Adjust("", original)

	if out.Score != original.Score || out.Label != original.Label {
		t.Fatalf("expected no-op on empty text, got %+v", out)
	}
	if out.AdjustmentReason != "no_text" {
		t.Fatalf("expected no_text reason, got %q", out.AdjustmentReason)
	}
}

func TestParseSentimentLineStarRatings(t *testing.T) {
	cases := map[string]models.SentimentLabel{
		"1":      models.SentimentNegative,
		"2 star": models.SentimentNegative,
		"3":      models.SentimentNeutral,
		"4":      models.SentimentPositive,
		"5 stars": models.SentimentPositive,
	}
	for input, want := range cases {
		got := parseSentimentLine(input)
		if got.Label != want {
			t.Fatalf("parseSentimentLine(%q) = %s, want %s", input, got.Label, want)
		}
	}
}

func TestParseSentimentLineLabelScore(t *testing.T) {
	got := parseSentimentLine("positive|0.82")
	if got.Label != models.SentimentPositive || got.Score != 0.82 {
		t.Fatalf("unexpected parse result: %+v", got)
	}
}
