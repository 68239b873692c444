// Package relevance implements the Relevance Classifier (C8):
// multi-signal Government-of-India relevance scoring over keyword match,
// scheme detection, and ministry mentions.
package relevance

import (
	"regexp"
	"strings"

	"github.com/prajwalm-hub/newsscope/internal/gazetteer"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

const maxMinistries = 5

// Classifier scores GOI relevance from per-language keyword sets plus the
// scheme and ministry gazetteers.
type Classifier struct{}

// New builds a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify scores GOI relevance from keyword, scheme, and ministry
// matches. lang selects the GOI keyword dictionary; English keywords are
// always checked in addition, since translated text and mixed-language
// bylines both carry English terms.
func (c *Classifier) Classify(lang, title, summary string) models.RelevanceResult {
	text := strings.ToLower(title + " " + summary)

	matched := matchKeywords(text, lang)
	schemes := detectSchemes(text)
	ministries := detectMinistries(text)

	result := models.RelevanceResult{
		MatchedTerms: matched,
		Schemes:      schemes,
		Ministries:   ministries,
	}

	if len(matched) > 0 {
		result.IsGOI = true
		result.Score = min1(float64(len(matched)) / 10.0)
	}
	if len(ministries) > 0 {
		result.IsGOI = true
		if result.Score < 0.5 {
			result.Score = 0.5
		}
	}
	if len(schemes) > 0 {
		result.IsGOI = true
		if result.Score < 0.8 {
			result.Score = 0.8
		}
	}

	return result
}

func min1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

func matchKeywords(text, lang string) []string {
	var out []string
	seen := make(map[string]bool)

	add := func(terms []string) {
		for _, t := range terms {
			tl := strings.ToLower(t)
			if tl == "" || seen[tl] {
				continue
			}
			if strings.Contains(text, tl) {
				seen[tl] = true
				out = append(out, t)
			}
		}
	}

	add(gazetteer.GovernmentKeywords["en"])
	if lang != "" && lang != "en" {
		add(gazetteer.GovernmentKeywords[lang])
	}
	return out
}

// detectSchemes reports the canonical names of every configured scheme
// whose canonical name or any alias (English or regional) appears in
// text.
func detectSchemes(text string) []string {
	var out []string
	seen := make(map[string]bool)

	matches := func(name string, aliases []string) bool {
		if strings.Contains(text, strings.ToLower(name)) {
			return true
		}
		for _, a := range aliases {
			if a != "" && strings.Contains(text, strings.ToLower(a)) {
				return true
			}
		}
		return false
	}

	for _, s := range gazetteer.Schemes {
		if seen[s.CanonicalName] {
			continue
		}
		if matches(s.CanonicalName, s.EnglishAliases) {
			seen[s.CanonicalName] = true
			out = append(out, s.CanonicalName)
			continue
		}
		for _, aliases := range s.RegionalAliases {
			if matches("", aliases) {
				seen[s.CanonicalName] = true
				out = append(out, s.CanonicalName)
				break
			}
		}
	}
	return out
}

var wordRe = regexp.MustCompile(`\S+`)

// detectMinistries extracts up to three words preceding a ministry
// keyword as a crude ministry-name span. Capped at maxMinistries unique
// matches.
func detectMinistries(text string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, kw := range gazetteer.MinistryKeywords {
		kwl := strings.ToLower(kw)
		idx := 0
		for {
			pos := strings.Index(text[idx:], kwl)
			if pos == -1 {
				break
			}
			start := idx + pos
			span := precedingWords(text, start, 3) + kw
			if !seen[span] {
				seen[span] = true
				out = append(out, span)
				if len(out) >= maxMinistries {
					return out
				}
			}
			idx = start + len(kwl)
		}
	}
	return out
}

// precedingWords returns up to n whitespace-delimited tokens immediately
// before byte offset pos in text, joined with single spaces and a
// trailing space.
func precedingWords(text string, pos, n int) string {
	prefix := text[:pos]
	matches := wordRe.FindAllString(prefix, -1)
	if len(matches) > n {
		matches = matches[len(matches)-n:]
	}
	if len(matches) == 0 {
		return ""
	}
	return strings.Join(matches, " ") + " "
}
