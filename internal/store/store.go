// Package store implements the Deduplicator & Store (C12): it hashes each
// enriched item, upserts it against PostgreSQL by URL-or-hash match, and
// double-checks the acceptance rule that the categorizer and confidence
// scorer already applied upstream. Wraps *sqlx.DB over lib/pq, using the
// sqlx convenience methods (Get/NamedExec) for the upsert path.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/confidence"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Open connects to PostgreSQL via sqlx and sizes the connection pool from
// config. poolSize maps to SetMaxIdleConns; poolSize+maxOverflow maps to
// SetMaxOpenConns. Connecting through sqlx.Connect (rather than plain
// database/sql) lets Store.Upsert use Get/NamedExec.
func Open(databaseURL string, poolSize, maxOverflow int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxIdleConns(poolSize)
	db.SetMaxOpenConns(poolSize + maxOverflow)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return db, nil
}

// Migrate creates the articles and pib_alerts tables and their indexes.
// Idempotent: safe to run on every startup.
func Migrate(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		id SERIAL PRIMARY KEY,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		summary TEXT,
		content TEXT,
		source TEXT NOT NULL,
		source_type TEXT,
		region TEXT,
		language TEXT,
		detected_language TEXT,
		detected_script TEXT,
		language_confidence DOUBLE PRECISION,
		translated_title TEXT,
		translated_summary TEXT,
		published_at TIMESTAMPTZ,
		collected_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		sentiment_label TEXT,
		sentiment_score DOUBLE PRECISION,
		sentiment_polarity DOUBLE PRECISION,
		topic_labels TEXT[],
		entities JSONB,
		hash TEXT NOT NULL,
		is_goi BOOLEAN DEFAULT false,
		relevance_score DOUBLE PRECISION,
		goi_ministries TEXT[],
		goi_schemes TEXT[],
		goi_entities JSONB,
		goi_matched_terms TEXT[],
		content_category TEXT,
		content_sub_category TEXT,
		classification_confidence DOUBLE PRECISION,
		classification_keywords TEXT[],
		should_show_pib BOOLEAN DEFAULT false,
		filter_reason TEXT,
		UNIQUE (url),
		UNIQUE (hash)
	);

	CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at);
	CREATE INDEX IF NOT EXISTS idx_articles_should_show_pib ON articles(should_show_pib);
	CREATE INDEX IF NOT EXISTS idx_articles_content_category ON articles(content_category);

	CREATE TABLE IF NOT EXISTS pib_alerts (
		id SERIAL PRIMARY KEY,
		article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE UNIQUE,
		title TEXT NOT NULL,
		summary TEXT,
		link TEXT NOT NULL,
		language TEXT,
		sentiment_score DOUBLE PRECISION,
		is_reviewed BOOLEAN DEFAULT false,
		reviewed_at TIMESTAMPTZ,
		reviewed_by TEXT,
		email_sent BOOLEAN DEFAULT false,
		email_sent_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_pib_alerts_is_reviewed ON pib_alerts(is_reviewed);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	return nil
}

// Store persists EnrichedItems and retrieves PIBAlert bookkeeping.
type Store struct {
	db               *sqlx.DB
	log              *logging.Logger
	statementTimeout time.Duration
}

// New builds a Store.
func New(db *sqlx.DB, log *logging.Logger, statementTimeout time.Duration) *Store {
	return &Store{db: db, log: log, statementTimeout: statementTimeout}
}

// Hash computes H = SHA-256(url | title | iso(published_at_or_empty)), the
// fingerprint used to dedupe articles that change URL but not identity.
func Hash(url, title string, publishedAt time.Time) string {
	iso := ""
	if !publishedAt.IsZero() {
		iso = publishedAt.UTC().Format(time.RFC3339)
	}
	sum := sha256.Sum256([]byte(url + "|" + title + "|" + iso))
	return hex.EncodeToString(sum[:])
}

// Accept applies the acceptance rule: the final double-check before an
// item is allowed to reach storage, independent of (but consistent with)
// the category/confidence decisions made upstream.
func Accept(item models.EnrichedItem) (bool, string) {
	trusted := confidence.IsTrustedSource(item.SourceName)
	hasSchemes := len(item.GOISchemes) > 0
	hasMinistries := len(item.GOIMinistries) > 0

	if isRegionalLanguage(item.DetectedLanguage) {
		if item.ContentCategory == models.CategoryGovernment || item.ShouldShowPIB || item.IsGOI {
			return true, "regional_language_exception"
		}
		return false, "rejected_no_goi_signal"
	}

	if trusted && (hasSchemes || hasMinistries) {
		return true, "trusted_source_with_goi_signal"
	}

	if item.ContentCategory == models.CategoryGovernment && item.ShouldShowPIB &&
		(item.RelevanceScore >= 0.4 || item.ConfidenceScore >= 0.7 || hasSchemes || hasMinistries) {
		return true, "government_category_with_goi_signal"
	}

	return false, "rejected_acceptance_rule"
}

func isRegionalLanguage(lang string) bool {
	return lang != "" && lang != "en"
}

// Upsert double-checks item against the acceptance rule, hashes it, and
// matches it on (url = ?) OR (hash = ?). A match overwrites mutable
// enrichment fields and preserves collected_at; no match inserts a fresh
// row.
func (s *Store) Upsert(ctx context.Context, item models.EnrichedItem) (id int64, created bool, err error) {
	accepted, reason := Accept(item)
	if !accepted {
		s.log.Debug("article rejected by acceptance rule", "url", item.URL, "reason", reason)
		return 0, false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.statementTimeout)
	defer cancel()

	row := toStoredArticle(item)
	entitiesJSON, err := json.Marshal(item.Entities)
	if err != nil {
		return 0, false, apperrors.NewStorageError(item.URL, "failed to marshal entities", err)
	}
	goiEntitiesJSON, err := json.Marshal(item.GOIEntities)
	if err != nil {
		return 0, false, apperrors.NewStorageError(item.URL, "failed to marshal goi entities", err)
	}
	row.Entities = models.JSONText(entitiesJSON)
	row.GOIEntities = models.JSONText(goiEntitiesJSON)

	var existingID int64
	err = s.db.GetContext(ctx, &existingID,
		`SELECT id FROM articles WHERE url = $1 OR hash = $2 LIMIT 1`, row.URL, row.Hash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id, err = s.insert(ctx, row)
		return id, true, err
	case err != nil:
		return 0, false, apperrors.NewStorageError(item.URL, "failed to look up existing article", err)
	default:
		if err := s.update(ctx, existingID, row); err != nil {
			return 0, false, err
		}
		return existingID, false, nil
	}
}

func (s *Store) insert(ctx context.Context, row models.StoredArticle) (int64, error) {
	const q = `
	INSERT INTO articles (
		url, title, summary, content, source, source_type, region, language,
		detected_language, detected_script, language_confidence,
		translated_title, translated_summary, published_at,
		sentiment_label, sentiment_score, sentiment_polarity,
		topic_labels, entities, hash,
		is_goi, relevance_score, goi_ministries, goi_schemes, goi_entities, goi_matched_terms,
		content_category, content_sub_category, classification_confidence, classification_keywords,
		should_show_pib, filter_reason
	) VALUES (
		:url, :title, :summary, :content, :source, :source_type, :region, :language,
		:detected_language, :detected_script, :language_confidence,
		:translated_title, :translated_summary, :published_at,
		:sentiment_label, :sentiment_score, :sentiment_polarity,
		:topic_labels, :entities, :hash,
		:is_goi, :relevance_score, :goi_ministries, :goi_schemes, :goi_entities, :goi_matched_terms,
		:content_category, :content_sub_category, :classification_confidence, :classification_keywords,
		:should_show_pib, :filter_reason
	) RETURNING id`

	stmt, err := s.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return 0, apperrors.NewStorageError(row.URL, "failed to prepare insert", err)
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, row); err != nil {
		return 0, apperrors.NewStorageError(row.URL, "failed to insert article", err)
	}
	return id, nil
}

func (s *Store) update(ctx context.Context, id int64, row models.StoredArticle) error {
	row.ID = id
	const q = `
	UPDATE articles SET
		title = :title, summary = :summary, content = :content,
		detected_language = :detected_language, detected_script = :detected_script,
		language_confidence = :language_confidence,
		translated_title = :translated_title, translated_summary = :translated_summary,
		sentiment_label = :sentiment_label, sentiment_score = :sentiment_score,
		sentiment_polarity = :sentiment_polarity,
		topic_labels = :topic_labels, entities = :entities,
		is_goi = :is_goi, relevance_score = :relevance_score,
		goi_ministries = :goi_ministries, goi_schemes = :goi_schemes,
		goi_entities = :goi_entities, goi_matched_terms = :goi_matched_terms,
		content_category = :content_category, content_sub_category = :content_sub_category,
		classification_confidence = :classification_confidence,
		classification_keywords = :classification_keywords,
		should_show_pib = :should_show_pib, filter_reason = :filter_reason
	WHERE id = :id`

	if _, err := s.db.NamedExecContext(ctx, q, row); err != nil {
		return apperrors.NewStorageError(row.URL, "failed to update article", err)
	}
	return nil
}

func toStoredArticle(item models.EnrichedItem) models.StoredArticle {
	return models.StoredArticle{
		URL:     item.URL,
		Title:   item.Title,
		Summary: item.Summary,
		Content: item.Content,
		Source:  item.SourceName,

		SourceType: string(item.SourceKind),
		Region:     item.DeclaredRegion,
		Language:   item.DeclaredLanguage,

		DetectedLanguage:   item.DetectedLanguage,
		DetectedScript:     item.DetectedScript,
		LanguageConfidence: item.LanguageConfidence,

		TranslatedTitle:   item.TranslatedTitle,
		TranslatedSummary: item.TranslatedSummary,

		PublishedAt: item.PublishedAt,

		SentimentLabel:    string(item.SentimentLabel),
		SentimentScore:    item.SentimentScore,
		SentimentPolarity: item.SentimentPolarity,

		TopicLabels: models.StringArray(item.TopicLabels),

		Hash: Hash(item.URL, item.Title, item.PublishedAt),

		IsGOI:           item.IsGOI,
		RelevanceScore:  item.RelevanceScore,
		GOIMinistries:   models.StringArray(item.GOIMinistries),
		GOISchemes:      models.StringArray(item.GOISchemes),
		GOIMatchedTerms: models.StringArray(item.GOIMatchedTerms),

		ContentCategory:          string(item.ContentCategory),
		ContentSubCategory:       item.ContentSubCategory,
		ClassificationConfidence: item.ClassificationConfidence,
		ClassificationKeywords:   models.StringArray(item.ClassificationKeywords),
		ShouldShowPIB:            item.ShouldShowPIB,
		FilterReason:             item.FilterReason,
	}
}
