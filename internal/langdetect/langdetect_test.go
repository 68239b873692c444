package langdetect

import "testing"

func TestDetectUnambiguousScriptsMapDirectly(t *testing.T) {
	d := New(nil)

	cases := map[string]string{
		"এটি একটি পরীক্ষা বাক্য যা যথেষ্ট দীর্ঘ":    "bn",
		"இது ஒரு சோதனை வாக்கியம் இது போதுமான நீளம்": "ta",
		"ఇది తగినంత పొడవైన పరీక్ష వాక్యం":           "te",
	}

	for text, want := range cases {
		got := d.Detect(text)
		if got.Code != want {
			t.Errorf("Detect(%q) = %q, want %q", text, got.Code, want)
		}
		if got.Confidence <= 0 {
			t.Errorf("Detect(%q) confidence = %v, want > 0", text, got.Confidence)
		}
	}
}

func TestDetectShortTextIsUnknown(t *testing.T) {
	d := New(nil)
	got := d.Detect("short")
	if got.Code != "unknown" || got.Confidence != 0 {
		t.Fatalf("expected unknown for short text, got %+v", got)
	}
}

func TestDetectDevanagariDefaultsToHindiWithoutStatisticalDetector(t *testing.T) {
	d := New(nil)
	got := d.Detect("यह एक परीक्षण वाक्य है जो पर्याप्त लंबा है")
	if got.Code != "hi" {
		t.Fatalf("expected hi fallback, got %q", got.Code)
	}
	if got.Script != "Devanagari" {
		t.Fatalf("expected Devanagari script, got %q", got.Script)
	}
}

type fakeStatisticalDetector struct {
	tag        string
	confidence float64
	ok         bool
}

func (f fakeStatisticalDetector) Detect(string) (string, float64, bool) {
	return f.tag, f.confidence, f.ok
}

func TestDetectDevanagariUsesStatisticalDetectorForMarathi(t *testing.T) {
	d := New(fakeStatisticalDetector{tag: "mr-IN", confidence: 0.9, ok: true})
	got := d.Detect("हा एक चाचणी वाक्य आहे जो पुरेसा लांब आहे")
	if got.Code != "mr" {
		t.Fatalf("expected mr from statistical detector, got %q", got.Code)
	}
	if got.Confidence != 0.95 {
		t.Fatalf("expected boosted confidence, got %v", got.Confidence)
	}
}

func TestDetectDevanagariIgnoresLowConfidenceStatisticalResult(t *testing.T) {
	d := New(fakeStatisticalDetector{tag: "mr", confidence: 0.5, ok: true})
	got := d.Detect("यह एक परीक्षण वाक्य है जो पर्याप्त लंबा है")
	if got.Code != "hi" {
		t.Fatalf("expected hi fallback when confidence below threshold, got %q", got.Code)
	}
}

func TestDetectNoScriptMatchIsUnknown(t *testing.T) {
	d := New(nil)
	got := d.Detect("1234567890 1234567890 1234567890")
	if got.Code != "unknown" {
		t.Fatalf("expected unknown for non-script text, got %q", got.Code)
	}
}
