package confidence

import (
	"testing"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

func TestScoreHighConfidenceAutoApproves(t *testing.T) {
	s := New()
	in := Input{
		Title:                    "PM Modi launches Ayushman Bharat Yojana expansion",
		Summary:                  "Ministry of Health announces health insurance coverage for 10 crore families",
		Source:                   "pib.gov.in",
		PublishedAt:              time.Now(),
		GOIKeywordCount:          6,
		SchemeCount:              1,
		MinistryCount:            1,
		IsGOI:                    true,
		ClassificationConfidence: 0.95,
		Category:                 models.CategoryGovernment,
		SentimentScore:           0.2,
		DetectedLanguage:         "en",
	}

	result := s.Score(in)

	if result.Level != models.ConfidenceHigh {
		t.Fatalf("expected high confidence, got %s (score %v)", result.Level, result.Score)
	}
	if !result.AutoApproved {
		t.Fatalf("expected auto_approved for high confidence, got %+v", result)
	}
	if result.NeedsVerification {
		t.Fatalf("expected no verification needed, got %+v", result)
	}
}

func TestScoreLowConfidenceAutoRejects(t *testing.T) {
	s := New()
	in := Input{
		Title:            "Bangladesh protests over Dhaka unrest",
		Summary:          "Clashes reported in Dhaka",
		Source:           "example.com",
		PublishedAt:      time.Now(),
		GOIKeywordCount:  0,
		DetectedLanguage: "en",
	}

	result := s.Score(in)

	if result.Level != models.ConfidenceLow {
		t.Fatalf("expected low confidence, got %s (score %v)", result.Level, result.Score)
	}
	if !result.AutoRejected {
		t.Fatalf("expected auto_rejected for low confidence, got %+v", result)
	}
}

func TestScoreAnomalyForcesVerification(t *testing.T) {
	s := New()
	in := Input{
		Title:            "Government scheme launch coincides with bollywood premiere",
		Summary:          "ministry launch cricket celebrity film",
		Source:           "pib.gov.in",
		PublishedAt:      time.Now(),
		GOIKeywordCount:  6,
		SchemeCount:      1,
		MinistryCount:    1,
		IsGOI:            true,
		Category:         models.CategoryGovernment,
		DetectedLanguage: "en",
	}

	result := s.Score(in)

	if len(result.Anomalies) == 0 {
		t.Fatalf("expected an anomaly for government+entertainment mix, got none")
	}
	if !result.NeedsVerification {
		t.Fatalf("expected anomaly to force needs_verification, got %+v", result)
	}
	if result.AutoApproved {
		t.Fatalf("expected anomaly to clear auto_approved, got %+v", result)
	}
}

func TestScoreStaleArticlePenalized(t *testing.T) {
	s := New()
	fresh := Input{
		Title: "Ministry launches scheme", Summary: "scheme yojana benefit",
		Source: "pib.gov.in", PublishedAt: time.Now(), GOIKeywordCount: 3,
		DetectedLanguage: "en",
	}
	stale := fresh
	stale.PublishedAt = time.Now().Add(-60 * 24 * time.Hour)

	freshResult := s.Score(fresh)
	staleResult := s.Score(stale)

	if staleResult.Score >= freshResult.Score {
		t.Fatalf("expected stale article to score lower: fresh=%v stale=%v", freshResult.Score, staleResult.Score)
	}
}
