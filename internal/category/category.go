// Package category implements the Content Categorizer (C9): weighted
// per-language keyword scoring that buckets an article into a primary
// category and decides whether it should ever reach a PIB officer's
// queue. Ported from content_classifier.py's `classify_content`,
// `_determine_sub_category`, and `_should_show_to_pib`.
package category

import (
	"strings"

	"github.com/prajwalm-hub/newsscope/internal/gazetteer"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

const maxMatchedKeywords = 10

var supportedLangs = map[string]bool{
	"en": true, "hi": true, "kn": true, "ta": true, "te": true, "bn": true,
}

var officialSourceIndicators = []string{
	" pib", "press information bureau", "pib.gov.in", "ministry of",
	"government of india", "भारत सरकार",
}

var governmentIndicators = []string{
	"government scheme", "सरकारी योजना", "yojana", "योजना", "scheme",
	"pm ", "pradhan mantri", "प्रधानमंत्री",
}

var govResponseMarkers = []string{
	"government response", "ministry statement", "official response",
	"सरकार प्रतिक्रिया", "मंत्रालय बयान",
}

var sportsGovMarkers = []string{
	"khelo india", "खेलो इंडिया", "sports ministry", "खेल मंत्रालय",
}

var crimeGovMarkers = []string{
	"minister announces", "government compensation", "official statement",
	"मंत्री घोषणा", "सरकार मुआवजा", "आधिकारिक बयान",
}

var businessGovMarkers = []string{
	"government regulation", "ministry approval", "government policy",
	"सरकार नियमन", "मंत्रालय अनुमोदन",
}

// Categorizer scores and buckets article text.
type Categorizer struct{}

// New builds a Categorizer.
func New() *Categorizer {
	return &Categorizer{}
}

// Classify buckets article text into a primary category and decides
// whether it should ever reach a PIB officer's queue. isOfficialSource
// should reflect the fetch source's trusted-domain status (the confidence
// scorer's trusted-source list), used here for the official-source
// priority boost.
func (c *Categorizer) Classify(lang, title, text string, isOfficialSource bool) models.CategoryResult {
	if title == "" && text == "" {
		return models.CategoryResult{
			PrimaryCategory: models.CategoryOther,
			SubCategory:     "Unknown",
			FilterReason:    "No content to classify",
		}
	}

	if !supportedLangs[lang] {
		lang = "en"
	}
	combined := strings.ToLower(title + " " + text)

	if bloc, _ := matchInternational(combined); bloc != "" && !hasIndianGovernmentMarker(combined) {
		return models.CategoryResult{
			PrimaryCategory: models.CategoryInternational,
			SubCategory:     "Foreign News",
			Confidence:      1.0,
			ShouldShowPIB:   false,
			FilterReason:    "International content: " + bloc,
		}
	}

	scores := map[models.ContentCategory]int{
		models.CategoryGovernment:    0,
		models.CategoryPolitical:     0,
		models.CategoryEntertainment: 0,
		models.CategorySports:        0,
		models.CategoryCrime:         0,
		models.CategoryBusiness:      0,
	}
	var matched []string

	if isOfficialSource || hasAny(combined, officialSourceIndicators) {
		scores[models.CategoryGovernment] += 20
		matched = append(matched, "official_source")
	}
	if hasAny(combined, governmentIndicators) {
		scores[models.CategoryGovernment] += 10
		matched = append(matched, "government_indicator")
	}

	matched = scoreKeywords(combined, gazetteer.GovernmentKeywords[lang], scores, models.CategoryGovernment, 2, matched)
	matched = scoreKeywords(combined, gazetteer.PoliticalKeywords[lang], scores, models.CategoryPolitical, 2, matched)
	matched = scoreKeywords(combined, gazetteer.EntertainmentKeywords[lang], scores, models.CategoryEntertainment, 2, matched)
	matched = scoreKeywords(combined, gazetteer.SportsKeywords[lang], scores, models.CategorySports, 2, matched)
	matched = scoreKeywords(combined, gazetteer.CrimeAccidentKeywords[lang], scores, models.CategoryCrime, 1, matched)
	matched = scoreKeywords(combined, gazetteer.BusinessKeywords[lang], scores, models.CategoryBusiness, 1, matched)

	primary, maxScore := argmax(scores)

	var confidence float64
	var sub string
	if maxScore == 0 {
		primary = models.CategoryOther
		sub = "Uncategorized"
	} else {
		confidence = float64(maxScore) / 10.0
		if confidence > 1.0 {
			confidence = 1.0
		}
		sub = subCategory(primary, combined)
	}

	if len(matched) > maxMatchedKeywords {
		matched = matched[:maxMatchedKeywords]
	}

	shouldShow, reason := shouldShowToPIB(primary, sub, combined)

	return models.CategoryResult{
		PrimaryCategory: primary,
		SubCategory:     sub,
		Confidence:      confidence,
		MatchedKeywords: matched,
		ShouldShowPIB:   shouldShow,
		FilterReason:    reason,
	}
}

func scoreKeywords(text string, keywords []string, scores map[models.ContentCategory]int, cat models.ContentCategory, weight int, matched []string) []string {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			scores[cat] += weight
			matched = append(matched, kw)
		}
	}
	return matched
}

func argmax(scores map[models.ContentCategory]int) (models.ContentCategory, int) {
	var best models.ContentCategory
	bestScore := -1
	// Fixed iteration order keeps ties deterministic, matching the
	// priority the source list assigns its categories.
	order := []models.ContentCategory{
		models.CategoryGovernment, models.CategoryPolitical,
		models.CategoryEntertainment, models.CategorySports,
		models.CategoryCrime, models.CategoryBusiness,
	}
	for _, cat := range order {
		if s := scores[cat]; s > bestScore {
			bestScore = s
			best = cat
		}
	}
	return best, bestScore
}

func subCategory(cat models.ContentCategory, text string) string {
	switch cat {
	case models.CategoryGovernment:
		switch {
		case hasAny(text, []string{"scheme", "योजना", "yojana"}):
			return "Scheme Implementation"
		case hasAny(text, []string{"policy", "नीति", "announcement", "घोषणा"}):
			return "Policy Announcement"
		case hasAny(text, []string{"delay", "देरी", "grievance", "शिकायत", "complaint"}):
			return "Public Grievance"
		case hasAny(text, []string{"project", "परियोजना", "infrastructure", "बुनियादी"}):
			return "Infrastructure Project"
		case hasAny(text, []string{"fake", "misinformation", "false", "गलत"}):
			return "Misinformation Alert"
		default:
			return "Government Services"
		}
	case models.CategoryPolitical:
		switch {
		case hasAny(text, []string{"election", "चुनाव", "voting", "मतदान"}):
			return "Election Coverage"
		case hasAny(text, []string{"rally", "रैली", "campaign", "प्रचार"}):
			return "Campaign Activity"
		case hasAny(text, []string{"criticize", "आलोचना", "slam", "attack", "हमला"}):
			return "Party Criticism"
		case hasAny(text, []string{"alliance", "गठबंधन", "coalition"}):
			return "Coalition Politics"
		default:
			return "Party Activity"
		}
	case models.CategoryEntertainment:
		switch {
		case hasAny(text, []string{"movie", "film", "फिल्म", "cinema"}):
			return "Movies"
		case hasAny(text, []string{"tv", "web series", "ott"}):
			return "TV/OTT"
		case hasAny(text, []string{"celebrity", "actor", "actress", "अभिनेता"}):
			return "Celebrity News"
		default:
			return "Entertainment"
		}
	case models.CategorySports:
		switch {
		case hasAny(text, []string{"cricket", "क्रिकेट"}):
			return "Cricket"
		case hasAny(text, []string{"football", "फुटबॉल"}):
			return "Football"
		case hasAny(text, []string{"olympics", "ओलंपिक", "medal", "पदक"}):
			return "Olympics/International"
		default:
			return "Sports"
		}
	case models.CategoryCrime:
		switch {
		case hasAny(text, []string{"accident", "दुर्घटना"}):
			return "Accident"
		case hasAny(text, []string{"murder", "हत्या", "crime", "अपराध"}):
			return "Crime"
		default:
			return "Crime/Accident"
		}
	case models.CategoryBusiness:
		switch {
		case hasAny(text, []string{"startup", "स्टार्टअप"}):
			return "Startup"
		case hasAny(text, []string{"stock", "share", "शेयर"}):
			return "Stock Market"
		default:
			return "Corporate"
		}
	}
	return string(cat)
}

// shouldShowToPIB decides whether a categorized item should reach a PIB
// officer's queue, keyed off the primary category and (for the
// government-adjacent categories) a secondary marker check.
func shouldShowToPIB(cat models.ContentCategory, sub, text string) (bool, string) {
	switch cat {
	case models.CategoryGovernment:
		return true, ""
	case models.CategoryInternational:
		return false, "International content: " + sub
	case models.CategoryPolitical:
		if hasAny(text, govResponseMarkers) {
			return true, ""
		}
		return false, "Political content: " + sub
	case models.CategoryEntertainment:
		return false, "Entertainment content: " + sub
	case models.CategorySports:
		if hasAny(text, sportsGovMarkers) {
			return true, ""
		}
		return false, "Sports content: " + sub
	case models.CategoryCrime:
		if hasAny(text, crimeGovMarkers) {
			return true, ""
		}
		return false, "Crime/Accident: " + sub
	case models.CategoryBusiness:
		if hasAny(text, businessGovMarkers) {
			return true, ""
		}
		return false, "Business content: " + sub
	default:
		return false, "Uncategorized: " + sub
	}
}

func hasAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// matchInternational reports the first international keyword bloc found
// in text, or "" if none matched.
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

// hasIndianGovernmentMarker reports whether text carries a marker that an
// international-keyword match is actually about India's own government
// response to or relationship with that country, not foreign news proper.
func hasIndianGovernmentMarker(text string) bool {
	return hasAny(text, gazetteer.IndianGovernmentMarkers)
}
