// Package pipeline wires the Registry through the Alert Dispatcher into one
// collection cycle: fetch every configured source, turn each into RawItems,
// run each RawItem through language detection, early rejection, translation,
// NLP enrichment, relevance/category/region classification, confidence
// scoring, storage, and — on a matching trigger — alert dispatch. No stage
// holds a back-reference to Pipeline; each is an independent collaborator
// passed in at construction, with one wiring point per process rather than
// a global registry of services.
package pipeline

import (
	"context"
	"sync"

	"github.com/prajwalm-hub/newsscope/internal/alert"
	"github.com/prajwalm-hub/newsscope/internal/category"
	"github.com/prajwalm-hub/newsscope/internal/confidence"
	"github.com/prajwalm-hub/newsscope/internal/fetcher"
	"github.com/prajwalm-hub/newsscope/internal/langdetect"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
	"github.com/prajwalm-hub/newsscope/internal/nlp"
	"github.com/prajwalm-hub/newsscope/internal/parser"
	"github.com/prajwalm-hub/newsscope/internal/region"
	"github.com/prajwalm-hub/newsscope/internal/rejector"
	"github.com/prajwalm-hub/newsscope/internal/relevance"
	"github.com/prajwalm-hub/newsscope/internal/store"
	"github.com/prajwalm-hub/newsscope/internal/translator"
)

// Registry is the subset of internal/registry's Registry the pipeline
// needs, narrowed so tests can supply a fake source list.
type Registry interface {
	All() []models.SourceConfig
}

// Store is the subset of internal/store's Store the pipeline needs.
type Store interface {
	Upsert(ctx context.Context, item models.EnrichedItem) (id int64, created bool, err error)
}

// AlertDispatcher is the subset of internal/alert's Dispatcher the pipeline
// needs.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, t alert.Trigger) error
}

// Pipeline owns one instance of every collaborator a collection cycle
// needs. Build one at process startup and call RunCycle on a schedule.
type Pipeline struct {
	registry   Registry
	fetcher    *fetcher.Fetcher
	parser     *parser.Parser
	langdetect *langdetect.Detector
	rejector   *rejector.Rejector
	translator *translator.Translator
	enricher   *nlp.Enricher
	relevance  *relevance.Classifier
	category   *category.Categorizer
	region     *region.Classifier
	confidence *confidence.Scorer
	store      Store
	alerts     AlertDispatcher

	scrapeConcurrency int
	itemConcurrency   int

	alertEnabled   bool
	alertThreshold float64

	log *logging.Logger
}

// Config bundles the pool-sizing and alert-predicate knobs RunCycle needs
// beyond the collaborators themselves. AlertEnabled/AlertThreshold mirror
// the same values the alert.Dispatcher was built with, so RunCycle's stats
// can report how many items actually met the trigger predicate rather than
// how many times Dispatch was merely called.
type Config struct {
	// ScrapeConcurrency bounds how many scraped sources DiscoverAndExtract
	// runs at once (RSS feed concurrency is already bounded inside
	// *fetcher.Fetcher).
	ScrapeConcurrency int
	// ItemConcurrency bounds how many RawItems run through the
	// detect/translate/enrich/classify/store chain at once.
	ItemConcurrency int

	AlertEnabled   bool
	AlertThreshold float64
}

// New builds a Pipeline from its collaborators. Any of store/alerts may be
// swapped for fakes in tests via the Store/AlertDispatcher interfaces.
func New(
	reg Registry,
	f *fetcher.Fetcher,
	p *parser.Parser,
	ld *langdetect.Detector,
	rj *rejector.Rejector,
	tr *translator.Translator,
	en *nlp.Enricher,
	rel *relevance.Classifier,
	cat *category.Categorizer,
	reg2 *region.Classifier,
	conf *confidence.Scorer,
	st Store,
	al AlertDispatcher,
	cfg Config,
	log *logging.Logger,
) *Pipeline {
	scrapeConcurrency := cfg.ScrapeConcurrency
	if scrapeConcurrency <= 0 {
		scrapeConcurrency = 5
	}
	itemConcurrency := cfg.ItemConcurrency
	if itemConcurrency <= 0 {
		itemConcurrency = 10
	}

	return &Pipeline{
		registry:          reg,
		fetcher:           f,
		parser:            p,
		langdetect:        ld,
		rejector:          rj,
		translator:        tr,
		enricher:          en,
		relevance:         rel,
		category:          cat,
		region:            reg2,
		confidence:        conf,
		store:             st,
		alerts:            al,
		scrapeConcurrency: scrapeConcurrency,
		itemConcurrency:   itemConcurrency,
		alertEnabled:      cfg.AlertEnabled,
		alertThreshold:    cfg.AlertThreshold,
		log:               log,
	}
}

// Stats summarizes one RunCycle call for logging and tests.
type Stats struct {
	SourcesFetched int
	SourcesFailed  int
	ItemsParsed    int
	ItemsRejected  int
	ItemsStored    int
	ItemsSkipped   int
	AlertsSent     int
}

// RunCycle executes one end-to-end collection cycle: fetch every configured
// source, parse each into RawItems, then run every RawItem through the
// detect-translate-enrich-classify-score-store-alert chain. A failure
// anywhere within one item's chain is logged and that item is skipped; it
// never aborts the rest of the cycle.
func (p *Pipeline) RunCycle(ctx context.Context) (Stats, error) {
	sources := p.registry.All()

	var feedSources, scrapedSources []models.SourceConfig
	for _, s := range sources {
		if s.Kind == models.SourceKindScraper {
			scrapedSources = append(scrapedSources, s)
		} else {
			feedSources = append(feedSources, s)
		}
	}

	var stats Stats
	var statsMu sync.Mutex

	items := make(chan models.RawItem, 64)
	var producers sync.WaitGroup

	producers.Add(1)
	go func() {
		defer producers.Done()
		p.fetchFeeds(ctx, feedSources, items, &stats, &statsMu)
	}()

	producers.Add(1)
	go func() {
		defer producers.Done()
		p.scrapeSources(ctx, scrapedSources, items, &stats, &statsMu)
	}()

	go func() {
		producers.Wait()
		close(items)
	}()

	var workers sync.WaitGroup
	sem := make(chan struct{}, p.itemConcurrency)
	for item := range items {
		item := item
		sem <- struct{}{}
		workers.Add(1)
		go func() {
			defer workers.Done()
			defer func() { <-sem }()
			p.processItem(ctx, item, &stats, &statsMu)
		}()
	}
	workers.Wait()

	p.log.Info("collection cycle complete",
		"sources_fetched", stats.SourcesFetched,
		"sources_failed", stats.SourcesFailed,
		"items_parsed", stats.ItemsParsed,
		"items_rejected", stats.ItemsRejected,
		"items_stored", stats.ItemsStored,
		"items_skipped", stats.ItemsSkipped,
		"alerts_sent", stats.AlertsSent,
	)
	return stats, nil
}

func (p *Pipeline) fetchFeeds(ctx context.Context, sources []models.SourceConfig, out chan<- models.RawItem, stats *Stats, mu *sync.Mutex) {
	if len(sources) == 0 {
		return
	}
	for res := range p.fetcher.Fetch(ctx, sources) {
		mu.Lock()
		if res.Err != nil {
			stats.SourcesFailed++
		} else {
			stats.SourcesFetched++
		}
		mu.Unlock()

		if res.Err != nil {
			p.log.Warn("feed fetch failed", "source", res.Source.Name, "error", res.Err)
			continue
		}

		parsed, err := p.parser.ParseFeed(res.Source, res.Payload)
		if err != nil {
			p.log.Warn("feed parse failed", "source", res.Source.Name, "error", err)
			continue
		}

		mu.Lock()
		stats.ItemsParsed += len(parsed)
		mu.Unlock()

		for _, item := range parsed {
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (p *Pipeline) scrapeSources(ctx context.Context, sources []models.SourceConfig, out chan<- models.RawItem, stats *Stats, mu *sync.Mutex) {
	if len(sources) == 0 {
		return
	}

	sem := make(chan struct{}, p.scrapeConcurrency)
	var wg sync.WaitGroup

	for _, src := range sources {
		src := src
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			items, err := p.parser.DiscoverAndExtract(ctx, src)

			mu.Lock()
			if err != nil {
				stats.SourcesFailed++
			} else {
				stats.SourcesFetched++
				stats.ItemsParsed += len(items)
			}
			mu.Unlock()

			if err != nil {
				p.log.Warn("scrape failed", "source", src.Name, "error", err)
				return
			}

			for _, item := range items {
				select {
				case out <- item:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	wg.Wait()
}

// processItem runs one RawItem through C4 through C13. Each stage's error
// is logged and treated as a reason to skip the item rather than fail the
// cycle, except where the spec marks a stage's failure as a soft-degrade
// (translation and enrichment, which both have defined fallback behavior).
func (p *Pipeline) processItem(ctx context.Context, raw models.RawItem, stats *Stats, mu *sync.Mutex) {
	lang := p.langdetect.Detect(raw.Title + " " + raw.Summary + " " + raw.Content)

	if reject, reason := p.rejector.ShouldReject(raw.Title, raw.Summary); reject {
		p.log.Debug("item rejected", "url", raw.URL, "reason", reason)
		mu.Lock()
		stats.ItemsRejected++
		mu.Unlock()
		return
	}

	item := models.EnrichedItem{
		RawItem:            raw,
		DetectedLanguage:   lang.Code,
		DetectedScript:     lang.Script,
		LanguageConfidence: lang.Confidence,
	}

	translatedTitle, err := p.translator.Translate(ctx, raw.Title, lang.Code)
	if err != nil {
		p.log.Warn("title translation failed", "url", raw.URL, "error", err)
	} else if translatedTitle != nil {
		item.TranslatedTitle = *translatedTitle
	}

	translatedSummary, err := p.translator.Translate(ctx, raw.Summary, lang.Code)
	if err != nil {
		p.log.Warn("summary translation failed", "url", raw.URL, "error", err)
	} else if translatedSummary != nil {
		item.TranslatedSummary = *translatedSummary
	}

	textForNLP := item.TranslatedSummary
	if textForNLP == "" {
		textForNLP = raw.Summary
	}
	if textForNLP == "" {
		textForNLP = item.TranslatedTitle
	}
	if textForNLP == "" {
		textForNLP = raw.Title
	}
	item.TextForNLP = textForNLP

	enrichResult, err := p.enricher.Enrich(ctx, lang.Code, textForNLP)
	if err != nil {
		p.log.Warn("enrichment degraded", "url", raw.URL, "error", err)
	}
	item.SentimentLabel = enrichResult.Sentiment.Label
	item.SentimentScore = enrichResult.Sentiment.Score
	item.SentimentPolarity = enrichResult.Sentiment.Polarity
	item.OriginalSentiment = &enrichResult.Sentiment
	item.AdjustmentReason = enrichResult.Sentiment.AdjustmentReason
	item.TopicLabels = enrichResult.Topics
	item.Entities = enrichResult.Entities

	displayTitle := item.TranslatedTitle
	if displayTitle == "" {
		displayTitle = raw.Title
	}
	displaySummary := item.TranslatedSummary
	if displaySummary == "" {
		displaySummary = raw.Summary
	}

	relResult := p.relevance.Classify(lang.Code, displayTitle, displaySummary)
	item.GOIMinistries = relResult.Ministries
	item.GOISchemes = relResult.Schemes
	item.GOIMatchedTerms = relResult.MatchedTerms
	item.RelevanceScore = relResult.Score
	item.IsGOI = relResult.IsGOI

	isOfficialSource := confidence.IsTrustedSource(raw.SourceName)
	catResult := p.category.Classify(lang.Code, displayTitle, displaySummary+" "+raw.Content, isOfficialSource)
	item.ContentCategory = catResult.PrimaryCategory
	item.ContentSubCategory = catResult.SubCategory
	item.ClassificationConfidence = catResult.Confidence
	item.ClassificationKeywords = catResult.MatchedKeywords
	item.ShouldShowPIB = catResult.ShouldShowPIB
	item.FilterReason = catResult.FilterReason

	item.DeclaredRegion = p.region.Classify(displayTitle, displaySummary, raw.Content)

	confResult := p.confidence.Score(confidence.Input{
		Title:                    displayTitle,
		Summary:                  displaySummary,
		Source:                   raw.SourceName,
		PublishedAt:              raw.PublishedAt,
		GOIKeywordCount:          len(relResult.MatchedTerms),
		SchemeCount:              len(relResult.Schemes),
		MinistryCount:            len(relResult.Ministries),
		IsGOI:                    relResult.IsGOI,
		ClassificationConfidence: catResult.Confidence,
		Category:                 catResult.PrimaryCategory,
		SentimentScore:           item.SentimentScore,
		DetectedLanguage:         lang.Code,
	})
	item.ConfidenceScore = confResult.Score
	item.ConfidenceLevel = confResult.Level
	item.ContributingFactors = confResult.ContributingFactors
	item.AutoApproved = confResult.AutoApproved
	item.AutoRejected = confResult.AutoRejected
	item.NeedsVerification = confResult.NeedsVerification
	item.Anomalies = confResult.Anomalies

	item.Hash = store.Hash(raw.URL, raw.Title, raw.PublishedAt)

	id, _, err := p.store.Upsert(ctx, item)
	if err != nil {
		p.log.Error("store upsert failed", "url", raw.URL, "error", err)
		return
	}
	if id == 0 {
		mu.Lock()
		stats.ItemsSkipped++
		mu.Unlock()
		return
	}

	mu.Lock()
	stats.ItemsStored++
	mu.Unlock()

	trigger := alert.Trigger{
		ArticleID:      id,
		Title:          displayTitle,
		Summary:        displaySummary,
		Link:           raw.URL,
		Language:       lang.Code,
		SentimentLabel: item.SentimentLabel,
		SentimentScore: item.SentimentScore,
		Schemes:        item.GOISchemes,
	}

	willAlert := alert.ShouldAlert(p.alertEnabled, p.alertThreshold, trigger)
	if err := p.alerts.Dispatch(ctx, trigger); err != nil {
		p.log.Error("alert dispatch failed", "url", raw.URL, "error", err)
		return
	}
	if willAlert {
		mu.Lock()
		stats.AlertsSent++
		mu.Unlock()
	}
}
