package translator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTranslateEnglishIsIdentity(t *testing.T) {
	tr := New(nil, nil, nil)
	text := "Government announces new policy"

	out, err := tr.Translate(t.Context(), text, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || *out != text {
		t.Fatalf("expected identity translation, got %v", out)
	}
}

func TestTranslateEmptyTextReturnsNil(t *testing.T) {
	tr := New(nil, nil, nil)

	out, err := tr.Translate(t.Context(), "   ", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result for blank input, got %v", *out)
	}
}

func TestTranslateNoProvidersReturnsNilNotError(t *testing.T) {
	tr := New(nil, nil, nil)

	out, err := tr.Translate(t.Context(), "सरकार ने नई नीति की घोषणा की", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result with no providers configured, got %v", *out)
	}
}

func TestTranslateFallsThroughChainOnProviderFailure(t *testing.T) {
	failing := NewHTTPProvider("failing", func(context.Context, string, string) (string, error) {
		return "", errors.New("upstream unavailable")
	})
	succeeding := NewHTTPProvider("succeeding", func(context.Context, string, string) (string, error) {
		return "The government announced a new policy today", nil
	})

	tr := New([]Provider{failing, succeeding}, nil, nil)

	out, err := tr.Translate(t.Context(), "सरकार ने आज एक नई नीति की घोषणा की", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || !strings.Contains(*out, "government announced") {
		t.Fatalf("expected fallback provider's output, got %v", out)
	}
}

func TestTranslateRejectsTooShortOutput(t *testing.T) {
	tooShort := NewHTTPProvider("too-short", func(context.Context, string, string) (string, error) {
		return "ok", nil
	})

	tr := New([]Provider{tooShort}, nil, nil)

	out, err := tr.Translate(t.Context(), "सरकार ने आज एक नई नीति की घोषणा की", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result when every provider's output is too short, got %v", *out)
	}
}

func TestTranslateStripsHTMLBeforeCallingProvider(t *testing.T) {
	var seen string
	provider := NewHTTPProvider("capture", func(_ context.Context, text, _ string) (string, error) {
		seen = text
		return "The minister visited the site and announced funding", nil
	})

	tr := New([]Provider{provider}, nil, nil)
	if _, err := tr.Translate(t.Context(), "<p>मंत्री ने साइट का दौरा किया</p>", "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(seen, "<p>") {
		t.Fatalf("expected HTML tags stripped before provider call, got %q", seen)
	}
}

func TestNoopEntityExtractorAlwaysEmpty(t *testing.T) {
	var e EntityExtractor = NoopEntityExtractor{}
	entities, err := e.Extract(t.Context(), "text", "hi")
	if err != nil || len(entities) != 0 {
		t.Fatalf("expected empty, nil-error result, got %v, %v", entities, err)
	}
}
