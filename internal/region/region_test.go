package region

import "testing"

func TestClassifyPrefersTitleOverSummary(t *testing.T) {
	c := New()
	state := c.Classify("Flood relief announced in Chennai", "Officials toured Mumbai today", "")

	if state != "Tamil Nadu" {
		t.Fatalf("expected title match to win, got %q", state)
	}
}

func TestClassifyFallsBackToSummaryThenContent(t *testing.T) {
	c := New()
	state := c.Classify("National policy update", "New scheme rolled out in Jaipur", "")

	if state != "Rajasthan" {
		t.Fatalf("expected summary match, got %q", state)
	}

	state = c.Classify("National policy update", "", "Officials met in Patna to discuss the budget")
	if state != "Bihar" {
		t.Fatalf("expected content match, got %q", state)
	}
}

func TestClassifyEarliestAliasWinsWithinText(t *testing.T) {
	c := New()
	state := c.Classify("", "Delegates travelled from Lucknow to Kanpur for the summit", "")

	if state != "Uttar Pradesh" {
		t.Fatalf("expected Uttar Pradesh from either alias, got %q", state)
	}
}

func TestClassifyNoMatchReturnsEmpty(t *testing.T) {
	c := New()
	state := c.Classify("Global markets react to inflation report", "No city mentioned here", "")

	if state != "" {
		t.Fatalf("expected no match, got %q", state)
	}
}

func TestClassifyOnlyLooksAtFirstThousandContentChars(t *testing.T) {
	c := New()
	padding := make([]byte, contentLookupChars)
	for i := range padding {
		padding[i] = 'x'
	}
	content := string(padding) + " this mentions Chandigarh"

	state := c.Classify("", "", content)
	if state != "" {
		t.Fatalf("expected match beyond the 1000-char window to be ignored, got %q", state)
	}
}
