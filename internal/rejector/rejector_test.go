package rejector

import "testing"

func TestShouldRejectInternationalNewsWithoutIndianMarker(t *testing.T) {
	r := New()
	reject, reason := r.ShouldReject("Sheikh Hasina addresses Dhaka rally", "Awami League celebrates")
	if !reject {
		t.Fatal("expected international news to be rejected")
	}
	if reason == "" {
		t.Fatal("expected a non-empty rejection reason")
	}
}

func TestShouldRejectAllowsInternationalNewsWithIndianGovernmentMarker(t *testing.T) {
	r := New()
	reject, _ := r.ShouldReject("Indian government and Bangladesh sign bilateral pact", "Ministry officials met in Dhaka")
	if reject {
		t.Fatal("expected bilateral India-Bangladesh news to survive the international filter")
	}
}

func TestShouldRejectEntertainmentContent(t *testing.T) {
	r := New()
	reject, reason := r.ShouldReject("Bollywood star announces new film", "Actor to begin shooting next month")
	if !reject {
		t.Fatal("expected entertainment content to be rejected")
	}
	if reason != "Entertainment content" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestShouldRejectSportsContent(t *testing.T) {
	r := New()
	reject, reason := r.ShouldReject("India wins cricket world cup final", "Team celebrates historic victory")
	if !reject {
		t.Fatal("expected sports content to be rejected")
	}
	if reason != "Sports content" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestShouldRejectTributeContent(t *testing.T) {
	r := New()
	reject, reason := r.ShouldReject("Nation pays tribute to veteran leader", "Condolences pour in from across the country")
	if !reject {
		t.Fatal("expected tribute content to be rejected")
	}
	if reason != "Personal tribute content" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestShouldRejectAcceptsOrdinaryGovernmentNews(t *testing.T) {
	r := New()
	reject, reason := r.ShouldReject("PM Modi launches Ayushman Bharat expansion", "New scheme covers rural families")
	if reject {
		t.Fatalf("did not expect rejection, got reason %q", reason)
	}
}
