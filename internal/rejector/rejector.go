// Package rejector implements the Early Rejector (C6): a cheap keyword scan
// over title+summary that drops non-Indian-government items before any
// expensive NLP work runs.
package rejector

import (
	"strings"

	"github.com/prajwalm-hub/newsscope/internal/gazetteer"
)

// Rejector holds no state beyond the static gazetteer data it scans
// against.
type Rejector struct{}

// New builds a Rejector.
func New() *Rejector {
	return &Rejector{}
}

// ShouldReject scans title+summary for international, entertainment,
// sports, or tribute content that has no business reaching a PIB officer's
// queue. reason is empty when reject is false.
func (r *Rejector) ShouldReject(title, summary string) (reject bool, reason string) {
	text := strings.ToLower(title + " " + summary)

	if bloc, term := matchInternational(text); bloc != "" {
		if !hasIndianGovernmentMarker(text) {
			return true, "International news: " + bloc
		}
		_ = term
	}

	if hasAny(text, gazetteer.EntertainmentKeywords["en"]) || hasAny(text, gazetteer.EntertainmentKeywords["hi"]) {
		return true, "Entertainment content"
	}
	if hasAny(text, gazetteer.SportsKeywords["en"]) || hasAny(text, gazetteer.SportsKeywords["hi"]) {
		return true, "Sports content"
	}
	if hasAny(text, gazetteer.TributeKeywords) {
		return true, "Personal tribute content"
	}

	return false, ""
}

func matchInternational(text string) (bloc string, term string) {
	for name, terms := range gazetteer.InternationalKeywordSets {
		for _, t := range terms {
			if strings.Contains(text, t) {
				return name, t
			}
		}
	}
	return "", ""
}

func hasIndianGovernmentMarker(text string) bool {
	return hasAny(text, gazetteer.IndianGovernmentMarkers)
}

func hasAny(text string, terms []string) bool {
	wordByte := func(i int) bool {
		return i >= 0 && i < len(text) && (text[i] >= 'a' && text[i] <= 'z' || text[i] >= '0' && text[i] <= '9')
	}
	for _, t := range terms {
		t = strings.ToLower(t)
		for from := 0; t != "" && from < len(text); from++ {
			i := strings.Index(text[from:], t)
			if i == -1 {
				break
			}
			from += i
			if !wordByte(from-1) && !wordByte(from+len(t)) {
				return true
			}
		}
	}
	return false
}
