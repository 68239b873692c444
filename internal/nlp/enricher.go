package nlp

import (
	"context"
	"strings"

	"github.com/prajwalm-hub/newsscope/internal/cache"
	"github.com/prajwalm-hub/newsscope/internal/gazetteer"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

// TopicClassifier is the optional zero-shot topic labeler (fixed label
// set, threshold 0.35, top 5). Disabled by default; NoopTopicClassifier is
// the always-empty implementation.
type TopicClassifier interface {
	Classify(ctx context.Context, text string) ([]string, error)
}

// NoopTopicClassifier always returns an empty topic list.
type NoopTopicClassifier struct{}

// Classify implements TopicClassifier.
func (NoopTopicClassifier) Classify(context.Context, string) ([]string, error) { return nil, nil }

// EntityExtractor is the optional multilingual NER hook; its output is
// merged with (and superseded by) the gazetteer phrase matcher.
// NoopEntityExtractor is the always-empty implementation.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) ([]models.Entity, error)
}

// NoopEntityExtractor always returns an empty entity list.
type NoopEntityExtractor struct{}

// Extract implements EntityExtractor.
func (NoopEntityExtractor) Extract(context.Context, string) ([]models.Entity, error) { return nil, nil }

// Enricher orchestrates batched sentiment classification routed by
// language, the unconditional rule-based adjuster pass, and the optional
// topic/entity stages.
type Enricher struct {
	english      *Batcher
	indic        *Batcher
	multilingual *Batcher
	adjuster     *RuleBasedAdjuster
	cache        *cache.Cache
	topics       TopicClassifier
	entities     EntityExtractor
	log          *logging.Logger
}

// NewEnricher builds an Enricher. topics/entities may be nil, in which
// case NoopTopicClassifier/NoopEntityExtractor are used. adjuster may be
// nil to disable the rule-based pass entirely (RULE_BASED_ADJUSTER_ENABLED).
func NewEnricher(english, indic, multilingual *Batcher, adjuster *RuleBasedAdjuster, c *cache.Cache, topics TopicClassifier, entities EntityExtractor, log *logging.Logger) *Enricher {
	if topics == nil {
		topics = NoopTopicClassifier{}
	}
	if entities == nil {
		entities = NoopEntityExtractor{}
	}
	return &Enricher{
		english:      english,
		indic:        indic,
		multilingual: multilingual,
		adjuster:     adjuster,
		cache:        c,
		topics:       topics,
		entities:     entities,
		log:          log,
	}
}

// Result is the full output of one Enrich call.
type Result struct {
	Sentiment models.SentimentResult
	Topics    []string
	Entities  []models.Entity
}

// Enrich runs the full C7 pipeline for one item's text: cache lookup,
// routed batched model inference, the rule-based adjustment pass (unless
// disabled), and the optional topic/entity stages.
func (e *Enricher) Enrich(ctx context.Context, lang, text string) (Result, error) {
	sentiment, err := e.sentiment(ctx, lang, text)
	if err != nil && e.log != nil {
		e.log.Warn("sentiment classification degraded", "lang", lang, "error", err)
	}

	adjusted := sentiment
	if e.adjuster != nil {
		adjusted = e.adjuster.Adjust(text, sentiment)
	}

	topics, terr := e.topics.Classify(ctx, text)
	if terr != nil && e.log != nil {
		e.log.Warn("topic classification failed", "error", terr)
	}

	entities := gazetteerEntities(text)
	if extracted, eerr := e.entities.Extract(ctx, text); eerr != nil {
		if e.log != nil {
			e.log.Warn("entity extraction failed", "error", eerr)
		}
	} else {
		entities = mergeEntities(entities, extracted)
	}

	return Result{Sentiment: adjusted, Topics: topics, Entities: entities}, err
}

func (e *Enricher) sentiment(ctx context.Context, lang, text string) (models.SentimentResult, error) {
	if e.cache != nil {
		var cached models.SentimentResult
		if ok, _ := e.cache.Get(ctx, cache.ClassSentiment, text, &cached); ok {
			return cached, nil
		}
	}

	batcher := RouteBatcher(lang, e.english, e.indic, e.multilingual)
	result, err := batcher.Submit(ctx, text)
	if err != nil {
		return result, err
	}

	if e.cache != nil {
		e.cache.Set(ctx, cache.ClassSentiment, text, result)
	}
	return result, nil
}

// RouteBatcher selects the English, Indic, or multilingual batcher by
// detected language, mirroring RouteClassifier.
func RouteBatcher(lang string, english, indic, multilingual *Batcher) *Batcher {
	switch {
	case lang == "en":
		return english
	case indicLanguages[lang]:
		return indic
	default:
		return multilingual
	}
}

// gazetteerEntities matches scheme canonical names and English aliases
// against text, producing entities with confidence 1.0 — an exact-match
// signal that supersedes the NER model's output.
func gazetteerEntities(text string) []models.Entity {
	lower := strings.ToLower(text)
	var out []models.Entity

	for _, s := range gazetteer.Schemes {
		candidates := append([]string{s.CanonicalName}, s.EnglishAliases...)
		for _, c := range candidates {
			cl := strings.ToLower(c)
			if idx := strings.Index(lower, cl); idx != -1 {
				out = append(out, models.Entity{
					Text:       c,
					Label:      "SCHEME",
					Type:       "gazetteer",
					Start:      idx,
					End:        idx + len(c),
					Confidence: 1.0,
				})
				break
			}
		}
	}
	return out
}

// mergeEntities appends ner entities that don't overlap a gazetteer
// match's text, since gazetteer matches supersede the model's output.
func mergeEntities(gazetteerMatches, nerEntities []models.Entity) []models.Entity {
	out := append([]models.Entity{}, gazetteerMatches...)

	seen := make(map[string]bool)
	for _, g := range gazetteerMatches {
		seen[strings.ToLower(g.Text)] = true
	}

	for _, n := range nerEntities {
		if !seen[strings.ToLower(n.Text)] {
			out = append(out, n)
		}
	}
	return out
}
