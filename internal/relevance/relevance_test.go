package relevance

import "testing"

func TestClassifySchemeMentionElevatesIsGOI(t *testing.T) {
	c := New()
	result := c.Classify("en", "PM Modi launches Ayushman Bharat Yojana expansion",
		"Ministry of Health announces health insurance coverage for 10 crore families")

	if !result.IsGOI {
		t.Fatalf("expected is_goi=true on scheme mention")
	}
	if result.Score < 0.8 {
		t.Fatalf("expected scheme match to floor score at 0.8, got %v", result.Score)
	}
	if len(result.Schemes) == 0 {
		t.Fatalf("expected at least one detected scheme")
	}
}

func TestClassifyMinistryOnlyStillElevatesScore(t *testing.T) {
	c := New()
	result := c.Classify("en", "Ministry of Finance reviews budget allocation", "")

	if !result.IsGOI {
		t.Fatalf("expected ministry detection to mark is_goi")
	}
	if result.Score < 0.5 {
		t.Fatalf("expected ministry match to floor score at 0.5, got %v", result.Score)
	}
}

func TestClassifyNoSignalIsNotGOI(t *testing.T) {
	c := New()
	result := c.Classify("en", "Local bakery wins regional award", "A bakery in town won an award")

	if result.IsGOI {
		t.Fatalf("expected is_goi=false with no government signal, got %+v", result)
	}
	if result.Score != 0 {
		t.Fatalf("expected zero score with no signal, got %v", result.Score)
	}
}
