// Package langdetect implements the Language Detector (C4): a Unicode
// script-range heuristic backed by a statistical detector for the
// Devanagari hi/mr ambiguity.
package langdetect

import (
	"golang.org/x/text/language"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

// scriptRange is an inclusive Unicode code point range for one script.
type scriptRange struct {
	lo, hi rune
}

// scriptToUnambiguousLanguage maps a script name to the one language code
// it is unambiguously associated with (every script except Devanagari,
// which is shared by Hindi and Marathi).
// to exactly one language code (everything but Devanagari, which is shared
// by Hindi and Marathi).
var scriptToUnambiguousLanguage = map[string]string{
	"Bengali":   "bn",
	"Gurmukhi":  "pa",
	"Gujarati":  "gu",
	"Odia":      "or",
	"Tamil":     "ta",
	"Telugu":    "te",
	"Kannada":   "kn",
	"Malayalam": "ml",
	"Arabic":    "ur",
	"Latin":     "en",
}

var scriptRanges = map[string]scriptRange{
	"Devanagari": {0x0900, 0x097F},
	"Bengali":    {0x0980, 0x09FF},
	"Gurmukhi":   {0x0A00, 0x0A7F},
	"Gujarati":   {0x0A80, 0x0AFF},
	"Odia":       {0x0B00, 0x0B7F},
	"Tamil":      {0x0B80, 0x0BFF},
	"Telugu":     {0x0C00, 0x0C7F},
	"Kannada":    {0x0C80, 0x0CFF},
	"Malayalam":  {0x0D00, 0x0D7F},
	"Arabic":     {0x0600, 0x06FF},
	"Latin":      {0x0041, 0x007A},
}

// scriptOrder is fixed so that ties between scripts with identical counts
// resolve deterministically.
var scriptOrder = []string{
	"Devanagari", "Bengali", "Gurmukhi", "Gujarati", "Odia", "Tamil",
	"Telugu", "Kannada", "Malayalam", "Arabic", "Latin",
}

// StatisticalDetector is the narrow interface the ambiguous-script path
// calls into. The production implementation would wrap a statistical
// n-gram detector; tests supply a fake.
type StatisticalDetector interface {
	// Detect returns a BCP-47-ish language tag and a confidence in [0,1].
	// ok is false when the detector declines to answer.
	Detect(text string) (tag string, confidence float64, ok bool)
}

// Detector is the Language Detector component.
type Detector struct {
	statistical StatisticalDetector
}

// New builds a Detector. statistical may be nil, in which case the
// Devanagari hi/mr disambiguation always falls back to "hi".
func New(statistical StatisticalDetector) *Detector {
	return &Detector{statistical: statistical}
}

// Detect assigns {code, script, confidence} to raw text using script
// heuristics plus, for Devanagari, a statistical detector to disambiguate
// Hindi from Marathi.
func (d *Detector) Detect(text string) models.LanguageResult {
	if len([]rune(text)) < 10 {
		return models.LanguageResult{Code: "unknown", Script: "unknown", Confidence: 0.0}
	}

	counts := scriptCounts(text)

	dominant, dominantCount := "", 0
	for _, script := range scriptOrder {
		if c := counts[script]; c > dominantCount {
			dominant, dominantCount = script, c
		}
	}
	if dominant == "" || dominantCount == 0 {
		return models.LanguageResult{Code: "unknown", Script: "unknown", Confidence: 0.0}
	}

	if code, ok := scriptToUnambiguousLanguage[dominant]; ok {
		confidence := 0.9
		if d.statistical != nil {
			if tag, conf, ok := d.statistical.Detect(text); ok && normalizeTag(tag) == code && conf > 0 {
				confidence = 0.95
			}
		}
		return models.LanguageResult{Code: code, Script: dominant, Confidence: confidence}
	}

	// Devanagari: ambiguous between hi and mr, resolved statistically.
	code := "hi"
	confidence := 0.9
	if d.statistical != nil {
		if tag, conf, ok := d.statistical.Detect(text); ok {
			normalized := normalizeTag(tag)
			if (normalized == "hi" || normalized == "mr") && conf > 0.85 {
				code = normalized
			}
			if normalized == code {
				confidence = 0.95
			}
		}
	}
	return models.LanguageResult{Code: code, Script: "Devanagari", Confidence: confidence}
}

func scriptCounts(text string) map[string]int {
	counts := make(map[string]int, len(scriptRanges))
	for _, r := range text {
		for _, script := range scriptOrder {
			rng := scriptRanges[script]
			if r >= rng.lo && r <= rng.hi {
				counts[script]++
				break
			}
		}
	}
	return counts
}

// normalizeTag reduces a BCP-47 tag (e.g. "hi-IN") to its base language
// subtag using golang.org/x/text/language, falling back to the raw string
// on parse failure.
func normalizeTag(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	base, _ := t.Base()
	return base.String()
}
