// Package models defines the core domain types that flow through the
// collection-and-classification pipeline: the record produced at ingestion
// (RawItem), the record that accumulates enrichment as it moves through the
// stages (EnrichedItem), the persisted shape (StoredArticle), the review
// artifact raised for negative-sentiment government items (PIBAlert), and
// the static configuration/reference types (SourceConfig, Scheme,
// GazetteerEntry).
package models

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
)

// SourceKind distinguishes how an item was obtained.
type SourceKind string

const (
	SourceKindRSS     SourceKind = "rss"
	SourceKindScraper SourceKind = "scraper"
)

// SentimentLabel is the three-way sentiment classification used throughout
// the NLP enricher and confidence scorer.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// ConfidenceLevel is the three-tier discretization of ConfidenceScore that
// drives routing.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ContentCategory is the primary classification bucket assigned by the
// content categorizer.
type ContentCategory string

const (
	CategoryGovernment    ContentCategory = "Government"
	CategoryPolitical     ContentCategory = "Political"
	CategoryEntertainment ContentCategory = "Entertainment"
	CategorySports        ContentCategory = "Sports"
	CategoryCrime         ContentCategory = "Crime"
	CategoryBusiness      ContentCategory = "Business"
	CategoryInternational ContentCategory = "International"
	CategoryOther         ContentCategory = "Other"
)

// SourceConfig describes one configured feed or scraped source, loaded from
// the YAML source-list file by the source registry.
type SourceConfig struct {
	Name             string     `yaml:"name" json:"name"`
	URL              string     `yaml:"url" json:"url"`
	Kind             SourceKind `yaml:"kind" json:"kind"`
	DeclaredLanguage string     `yaml:"language" json:"declared_language"`
	DeclaredScript   string     `yaml:"script,omitempty" json:"declared_script,omitempty"`
	DeclaredRegion   string     `yaml:"region,omitempty" json:"declared_region,omitempty"`
	Trusted          bool       `yaml:"trusted,omitempty" json:"trusted,omitempty"`
}

// RawItem is the uniform record produced by the Parser from either an RSS
// feed entry or a scraped article page.
type RawItem struct {
	URL              string
	Title            string
	Summary          string
	Content          string
	SourceName       string
	SourceKind       SourceKind
	DeclaredLanguage string
	DeclaredRegion   string
	PublishedAt      time.Time
}

// Entity is a single extracted named entity.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type"`
}

// LanguageResult is the output of the language detector.
type LanguageResult struct {
	Code       string
	Script     string
	Confidence float64
}

// SentimentResult is the output of a sentiment classifier or the rule-based
// adjuster, before it is folded back into an EnrichedItem.
type SentimentResult struct {
	Label            SentimentLabel
	Score            float64
	Polarity         float64
	OriginalLabel    SentimentLabel
	OriginalScore    float64
	AdjustmentReason string
}

// RelevanceResult is the output of the Relevance Classifier (C8).
type RelevanceResult struct {
	IsGOI       bool
	Score       float64
	Ministries  []string
	Schemes     []string
	GOIEntities []string
	MatchedTerms []string
}

// CategoryResult is the output of the Content Categorizer (C9).
type CategoryResult struct {
	PrimaryCategory ContentCategory
	SubCategory     string
	Confidence      float64
	MatchedKeywords []string
	ShouldShowPIB   bool
	FilterReason    string
}

// ConfidenceResult is the output of the Confidence Scorer (C11).
type ConfidenceResult struct {
	Score              float64
	Level              ConfidenceLevel
	ContributingFactors []string
	AutoApproved       bool
	AutoRejected       bool
	NeedsVerification  bool
	Anomalies          []string
}

// EnrichedItem is the accumulating record passed through the pipeline: a
// superset of RawItem plus every field contributed by C4 through C12.
type EnrichedItem struct {
	RawItem

	DetectedLanguage  string
	DetectedScript    string
	LanguageConfidence float64

	TranslatedTitle   string
	TranslatedSummary string
	TextForNLP        string

	SentimentLabel    SentimentLabel
	SentimentScore    float64
	SentimentPolarity float64
	OriginalSentiment *SentimentResult
	AdjustmentReason  string

	TopicLabels []string
	Entities    []Entity

	GOIMinistries   []string
	GOISchemes      []string
	GOIMatchedTerms []string
	GOIEntities     []string
	RelevanceScore  float64
	IsGOI           bool

	ContentCategory       ContentCategory
	ContentSubCategory    string
	ClassificationConfidence float64
	ClassificationKeywords  []string
	ShouldShowPIB         bool
	FilterReason          string

	ConfidenceScore     float64
	ConfidenceLevel     ConfidenceLevel
	ContributingFactors []string
	AutoApproved        bool
	AutoRejected        bool
	NeedsVerification   bool
	Anomalies           []string

	Hash string
}

// StoredArticle is the persisted shape of an EnrichedItem: every field a
// categorizer keeps, plus server-assigned ID and CollectedAt.
type StoredArticle struct {
	ID      int64     `db:"id"`
	URL     string    `db:"url"`
	Title   string    `db:"title"`
	Summary string    `db:"summary"`
	Content string    `db:"content"`
	Source  string    `db:"source"`

	SourceType string `db:"source_type"`
	Region     string `db:"region"`
	Language   string `db:"language"`

	DetectedLanguage   string  `db:"detected_language"`
	DetectedScript     string  `db:"detected_script"`
	LanguageConfidence float64 `db:"language_confidence"`

	TranslatedTitle   string `db:"translated_title"`
	TranslatedSummary string `db:"translated_summary"`

	PublishedAt time.Time `db:"published_at"`
	CollectedAt time.Time `db:"collected_at"`

	SentimentLabel    string  `db:"sentiment_label"`
	SentimentScore    float64 `db:"sentiment_score"`
	SentimentPolarity float64 `db:"sentiment_polarity"`

	TopicLabels StringArray `db:"topic_labels"`
	Entities    JSONText    `db:"entities"`

	Hash string `db:"hash"`

	IsGOI          bool        `db:"is_goi"`
	RelevanceScore float64     `db:"relevance_score"`
	GOIMinistries  StringArray `db:"goi_ministries"`
	GOISchemes     StringArray `db:"goi_schemes"`
	GOIEntities    JSONText    `db:"goi_entities"`
	GOIMatchedTerms StringArray `db:"goi_matched_terms"`

	ContentCategory          string      `db:"content_category"`
	ContentSubCategory       string      `db:"content_sub_category"`
	ClassificationConfidence float64     `db:"classification_confidence"`
	ClassificationKeywords   StringArray `db:"classification_keywords"`
	ShouldShowPIB            bool        `db:"should_show_pib"`
	FilterReason             string      `db:"filter_reason"`
}

// PIBAlert is a review artifact raised for a negative-sentiment government
// article. At most one row exists per ArticleID.
type PIBAlert struct {
	ID             int64      `db:"id"`
	ArticleID      int64      `db:"article_id"`
	Title          string     `db:"title"`
	Summary        string     `db:"summary"`
	Link           string     `db:"link"`
	Language       string     `db:"language"`
	SentimentScore float64    `db:"sentiment_score"`
	IsReviewed     bool       `db:"is_reviewed"`
	ReviewedAt     *time.Time `db:"reviewed_at"`
	ReviewedBy     *string    `db:"reviewed_by"`
	EmailSent      bool       `db:"email_sent"`
	EmailSentAt    *time.Time `db:"email_sent_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// Scheme is a named central-government program with canonical name,
// owning ministry, and per-language aliases used for relevance matching.
type Scheme struct {
	CanonicalName   string
	Ministry        string
	Description     string
	Tags            []string
	EnglishAliases  []string
	RegionalAliases map[string][]string
}

// GazetteerEntryType enumerates the kinds of static named-entity entries
// used for exact/fuzzy matching.
type GazetteerEntryType string

const (
	GazetteerMinistry GazetteerEntryType = "ministry"
	GazetteerScheme   GazetteerEntryType = "scheme"
	GazetteerOfficial GazetteerEntryType = "official"
	GazetteerState    GazetteerEntryType = "state"
	GazetteerCity     GazetteerEntryType = "city"
)

// GazetteerEntry is a static named-entity reference used for matching.
type GazetteerEntry struct {
	CanonicalForm string
	Aliases       []string
	Type          GazetteerEntryType
}

// StringArray is a custom type for PostgreSQL text[] columns, delegating to
// github.com/lib/pq for the wire format and normalizing empty slices to the
// literal empty-array form instead of NULL.
type StringArray []string

// Value implements driver.Valuer.
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	return pq.Array([]string(a)).Value()
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(value interface{}) error {
	return pq.Array((*[]string)(a)).Scan(value)
}

// JSONText is a raw JSON payload stored in a jsonb column. Marshaling is
// done by callers with json-iterator (see internal/store) so this type is
// just a byte-slice carrier with Valuer/Scanner implementations.
type JSONText []byte

// Value implements driver.Valuer.
func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "[]", nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONText) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append(JSONText(nil), v...)
	case string:
		*j = JSONText(v)
	default:
		*j = nil
	}
	return nil
}
