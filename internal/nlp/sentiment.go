// Package nlp implements the NLP Enricher (C7): batched sentiment
// classification by language, a rule-based adjuster applied
// unconditionally afterward, and optional topic/entity stubs.
package nlp

import (
	"strings"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

// Keyword sets for the rule-based sentiment adjuster, ported verbatim
// from sentiment_adjuster.py (English plus transliterated Hindi and
// common government-scheme names).
var (
	positiveKeywords = map[string]bool{
		"achievement": true, "progress": true, "success": true, "growth": true,
		"development": true, "improvement": true, "innovation": true, "reform": true,
		"benefit": true, "welfare": true, "opportunity": true, "initiative": true,
		"launch": true, "inaugurate": true, "approval": true, "sanction": true,
		"allocation": true, "boost": true, "enhance": true, "strengthen": true,
		"expand": true, "accelerate": true, "facilitate": true, "promote": true,
		"empowerment": true, "inclusive": true, "sustainable": true, "transparent": true,
		"efficient": true,
		"vikas": true, "pragati": true, "safalta": true, "sudhar": true, "kalyan": true,
		"yojana": true, "shubharambh": true, "nirmaan": true, "vikasit": true,
		"unnati": true, "labh": true,
		"ayushman": true, "ujjwala": true, "swachh": true, "bharatmala": true,
		"sagarmala": true, "digital india": true, "make in india": true,
		"skill india": true, "smart city": true,
	}

	negativeKeywords = map[string]bool{
		"crisis": true, "decline": true, "failure": true, "corruption": true,
		"scam": true, "scandal": true, "protest": true, "strike": true,
		"controversy": true, "criticism": true, "opposition": true, "delay": true,
		"cancellation": true, "shortage": true, "problem": true, "issue": true,
		"concern": true, "challenge": true, "dispute": true, "conflict": true,
		"tension": true, "violation": true, "breach": true, "negligence": true,
		"mismanagement": true, "inefficiency": true,
		"samasya": true, "mushkil": true, "virodh": true, "bhrashtachar": true,
		"ghotala": true, "sangharsh": true, "vivad": true, "kathinai": true,
	}

	neutralKeywords = map[string]bool{
		"meeting": true, "discussion": true, "conference": true, "statement": true,
		"report": true, "review": true, "assessment": true, "survey": true,
		"data": true, "statistics": true, "announcement": true, "notification": true,
		"circular": true, "guideline": true, "session": true, "parliament": true,
		"assembly": true, "cabinet": true, "committee": true,
	}

	strongPositivePhrases = []string{
		"major achievement", "significant progress", "record growth",
		"historic decision", "landmark initiative", "game changer",
		"transformative reform", "revolutionary step", "milestone reached",
		"unprecedented success", "remarkable improvement",
	}

	strongNegativePhrases = []string{
		"major setback", "serious concern", "grave situation",
		"alarming development", "critical issue", "severe crisis",
		"massive corruption", "widespread protest", "violent clashes",
	}
)

// defaultBoostThreshold is the adjustment unit for a single net keyword
// signal; strong phrases use double this.
const defaultBoostThreshold = 0.15

// RuleBasedAdjuster adjusts a model's sentiment output using curated
// keyword and phrase sets, ported from
// RuleBasedSentimentAdjuster.adjust_sentiment.
type RuleBasedAdjuster struct {
	boostThreshold       float64
	strongBoostThreshold float64
}

// NewRuleBasedAdjuster builds an adjuster. boostThreshold of 0 selects the
// default of 0.15.
func NewRuleBasedAdjuster(boostThreshold float64) *RuleBasedAdjuster {
	if boostThreshold <= 0 {
		boostThreshold = defaultBoostThreshold
	}
	return &RuleBasedAdjuster{
		boostThreshold:       boostThreshold,
		strongBoostThreshold: boostThreshold * 2,
	}
}

// Adjust implements the exact scoring/dilution/clamp/relabel algorithm
// from sentiment_adjuster.py. An empty text is a no-op.
func (a *RuleBasedAdjuster) Adjust(text string, original models.SentimentResult) models.SentimentResult {
	out := original
	out.OriginalLabel = original.Label
	out.OriginalScore = original.Score

	if strings.TrimSpace(text) == "" {
		out.AdjustmentReason = "no_text"
		return out
	}

	lower := strings.ToLower(text)

	strongPos := countPhrases(lower, strongPositivePhrases)
	strongNeg := countPhrases(lower, strongNegativePhrases)
	pos := countKeywords(lower, positiveKeywords)
	neg := countKeywords(lower, negativeKeywords)
	neutral := countKeywords(lower, neutralKeywords)

	total := pos + neg + neutral
	if total == 0 {
		out.AdjustmentReason = "no_keywords_found"
		return out
	}

	adjustment := 0.0
	var reasons []string

	if strongPos > 0 {
		adjustment += a.strongBoostThreshold * float64(strongPos)
		reasons = append(reasons, "strong_positive")
	}
	if strongNeg > 0 {
		adjustment -= a.strongBoostThreshold * float64(strongNeg)
		reasons = append(reasons, "strong_negative")
	}

	switch {
	case pos > neg:
		netPositive := pos - neg
		adjustment += a.boostThreshold * (float64(netPositive) / float64(total))
		reasons = append(reasons, "positive_keywords")
	case neg > pos:
		netNegative := neg - pos
		adjustment -= a.boostThreshold * (float64(netNegative) / float64(total))
		reasons = append(reasons, "negative_keywords")
	}

	if neutral > 0 {
		dilution := float64(neutral) / float64(total)
		adjustment *= 1 - dilution*0.5
		reasons = append(reasons, "neutral_keywords")
	}

	adjustedScore := original.Score + adjustment
	if adjustedScore < 0 {
		adjustedScore = 0
	}
	if adjustedScore > 1 {
		adjustedScore = 1
	}

	var label models.SentimentLabel
	switch {
	case adjustedScore >= 0.6:
		label = models.SentimentPositive
	case adjustedScore <= 0.4:
		label = models.SentimentNegative
	default:
		label = models.SentimentNeutral
	}

	out.Label = label
	out.Score = adjustedScore
	out.Polarity = polarity(label, adjustedScore)
	if len(reasons) == 0 {
		out.AdjustmentReason = "no_adjustment"
	} else {
		out.AdjustmentReason = strings.Join(reasons, " | ")
	}

	return out
}

func countKeywords(text string, set map[string]bool) int {
	count := 0
	for kw := range set {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

func countPhrases(text string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			count++
		}
	}
	return count
}

// polarity maps a label and score to a signed polarity: positive ->
// +score, negative -> -score, neutral -> 0.
func polarity(label models.SentimentLabel, score float64) float64 {
	switch label {
	case models.SentimentPositive:
		return score
	case models.SentimentNegative:
		return -score
	default:
		return 0
	}
}
