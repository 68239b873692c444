package store

import (
	"testing"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

func TestHashIsStableForSameInputs(t *testing.T) {
	published := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	a := Hash("https://pib.gov.in/a", "Title", published)
	b := Hash("https://pib.gov.in/a", "Title", published)
	if a != b {
		t.Fatalf("expected stable hash, got %q and %q", a, b)
	}

	c := Hash("https://pib.gov.in/a", "Different Title", published)
	if a == c {
		t.Fatalf("expected different title to change the hash")
	}
}

func TestHashToleratesZeroPublishedAt(t *testing.T) {
	h := Hash("https://pib.gov.in/a", "Title", time.Time{})
	if h == "" {
		t.Fatalf("expected a non-empty hash even with a zero published_at")
	}
}

func TestAcceptTrustedSourceWithScheme(t *testing.T) {
	item := models.EnrichedItem{}
	item.SourceName = "pib.gov.in"
	item.GOISchemes = []string{"Ayushman Bharat"}

	accepted, reason := Accept(item)
	if !accepted {
		t.Fatalf("expected trusted source with scheme to be accepted, reason=%q", reason)
	}
}

func TestAcceptGovernmentCategoryWithRelevance(t *testing.T) {
	item := models.EnrichedItem{}
	item.SourceName = "example-news.com"
	item.ContentCategory = models.CategoryGovernment
	item.ShouldShowPIB = true
	item.RelevanceScore = 0.5

	accepted, reason := Accept(item)
	if !accepted {
		t.Fatalf("expected government category with sufficient relevance to be accepted, reason=%q", reason)
	}
}

func TestAcceptRejectsUntrustedLowSignal(t *testing.T) {
	item := models.EnrichedItem{}
	item.SourceName = "example-news.com"
	item.ContentCategory = models.CategoryEntertainment

	accepted, _ := Accept(item)
	if accepted {
		t.Fatalf("expected low-signal non-government item to be rejected")
	}
}

func TestAcceptRegionalLanguageException(t *testing.T) {
	item := models.EnrichedItem{}
	item.SourceName = "example-news.com"
	item.DetectedLanguage = "hi"
	item.IsGOI = true

	accepted, reason := Accept(item)
	if !accepted || reason != "regional_language_exception" {
		t.Fatalf("expected regional language is_goi exception, got accepted=%v reason=%q", accepted, reason)
	}
}

func TestAcceptRegionalLanguageWithoutSignalRejected(t *testing.T) {
	item := models.EnrichedItem{}
	item.SourceName = "example-news.com"
	item.DetectedLanguage = "ta"

	accepted, _ := Accept(item)
	if accepted {
		t.Fatalf("expected regional language item with no goi signal to be rejected")
	}
}
