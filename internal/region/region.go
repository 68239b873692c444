// Package region implements the Region Classifier (C10): a static
// alias-map lookup that assigns a state/UT to an article from the cities
// and state names mentioned in its text.
package region

import (
	"strings"

	"github.com/prajwalm-hub/newsscope/internal/gazetteer"
)

const contentLookupChars = 1000

// Classifier maps mentioned city/state aliases to a canonical state name.
type Classifier struct{}

// New builds a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify scans title, then summary, then the first 1000 characters of
// content in turn; the first alias match wins. Returns "" when no location
// is mentioned anywhere.
func (c *Classifier) Classify(title, summary, content string) string {
	if state := c.classifyText(title); state != "" {
		return state
	}
	if state := c.classifyText(summary); state != "" {
		return state
	}
	if len(content) > contentLookupChars {
		content = content[:contentLookupChars]
	}
	return c.classifyText(content)
}

// classifyText finds the earliest-occurring alias in text and maps it to
// a state. Ties are broken by the earlier byte offset, matching the
// source's position-sorted candidate list.
func (c *Classifier) classifyText(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)

	bestPos := -1
	bestState := ""

	consider := func(alias, state string) {
		pos := strings.Index(lower, alias)
		if pos == -1 {
			return
		}
		if bestPos == -1 || pos < bestPos {
			bestPos = pos
			bestState = state
		}
	}

	for city, state := range gazetteer.CityToState {
		consider(city, state)
	}
	for alias, state := range gazetteer.StateVariations {
		consider(alias, state)
	}

	return bestState
}
