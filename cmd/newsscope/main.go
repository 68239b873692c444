// Command newsscope is the process entrypoint: it loads configuration,
// wires every pipeline collaborator exactly once, and starts the
// scheduler. Construction happens here and nowhere else — no package
// outside this file reaches for a global singleton.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prajwalm-hub/newsscope/internal/alert"
	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/cache"
	"github.com/prajwalm-hub/newsscope/internal/category"
	"github.com/prajwalm-hub/newsscope/internal/confidence"
	"github.com/prajwalm-hub/newsscope/internal/config"
	"github.com/prajwalm-hub/newsscope/internal/fetcher"
	"github.com/prajwalm-hub/newsscope/internal/langdetect"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/nlp"
	"github.com/prajwalm-hub/newsscope/internal/parser"
	"github.com/prajwalm-hub/newsscope/internal/pipeline"
	"github.com/prajwalm-hub/newsscope/internal/region"
	"github.com/prajwalm-hub/newsscope/internal/registry"
	"github.com/prajwalm-hub/newsscope/internal/rejector"
	"github.com/prajwalm-hub/newsscope/internal/relevance"
	"github.com/prajwalm-hub/newsscope/internal/scheduler"
	"github.com/prajwalm-hub/newsscope/internal/smtpclient"
	"github.com/prajwalm-hub/newsscope/internal/store"
	"github.com/prajwalm-hub/newsscope/internal/translator"
)

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	reg, err := registry.New(cfg.FeedsFile, cfg.ScrapingSourcesFile, log)
	if err != nil {
		log.Error("source registry load failed", "error", err)
		os.Exit(1)
	}

	if cfg.DatabaseURL == "" {
		log.Error("config invalid", "error", apperrors.NewConfigError("DATABASE_URL is required", nil))
		os.Exit(1)
	}
	db, err := store.Open(cfg.DatabaseURL, cfg.DBPoolSize, cfg.DBPoolMaxOverflow)
	if err != nil {
		log.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Error("database migrate failed", "error", err)
		os.Exit(1)
	}
	st := store.New(db, log, cfg.DBStatementTimeout)

	var rdb *redis.Client
	if cfg.CacheURL != "" {
		opts, err := redis.ParseURL(cfg.CacheURL)
		if err != nil {
			log.Warn("cache URL invalid, caching disabled", "error", err)
		} else {
			rdb = redis.NewClient(opts)
		}
	}
	resultCache := cache.New(rdb, cache.DefaultTTLs(
		cfg.CacheTTLSentimentHours,
		cfg.CacheTTLTranslationHours,
		cfg.CacheTTLClassificationHours,
		cfg.CacheTTLSchemeDays,
	), log)

	f := fetcher.New(cfg.FetchConcurrency, cfg.FetchTimeout, log)
	p := parser.New(nil)
	ld := langdetect.New(nil)
	rj := rejector.New()

	var providers []translator.Provider
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, translator.NewOpenAIProvider(cfg.OpenAIAPIKey, "", "openai-primary"))
	}
	var tr *translator.Translator
	if cfg.TranslationEnabled {
		tr = translator.New(providers, resultCache, log)
	} else {
		tr = translator.New(nil, resultCache, log)
	}

	adjuster := nlp.NewRuleBasedAdjuster(0.15)
	httpClient := &http.Client{Timeout: 30 * time.Second}
	englishClassifier := nlp.NewModelClassifierWithMaxLength("english", "http://localhost:11434", "llama3", cfg.MaxLength, httpClient)
	indicClassifier := nlp.NewModelClassifierWithMaxLength("indic", "http://localhost:11434", "llama3", cfg.MaxLength, httpClient)
	multilingualClassifier := nlp.NewModelClassifierWithMaxLength("multilingual", "http://localhost:11434", "llama3", cfg.MaxLength, httpClient)
	ruleBasedClassifier := nlp.NewRuleBasedClassifier(adjuster)

	var englishBatch, indicBatch, multilingualBatch nlp.Classifier = englishClassifier, indicClassifier, multilingualClassifier
	if !cfg.NLPEnabled {
		englishBatch, indicBatch, multilingualBatch = ruleBasedClassifier, ruleBasedClassifier, ruleBasedClassifier
	} else if !cfg.IndicBERTSentimentEnabled {
		// The Indic-specialized model is the one most often unavailable in a
		// minimal deployment; INDICBERT_SENTIMENT_ENABLED lets it be skipped
		// in favor of the rule-based fallback without disabling NLP_ENABLED
		// for English and multilingual routing too.
		indicBatch = ruleBasedClassifier
	}
	englishBatcher := nlp.NewBatcherWithQueueDepth(englishBatch, cfg.BatchSize, cfg.NLPBatchFlushDelay, cfg.NLPBatcherQueueDepth, log)
	indicBatcher := nlp.NewBatcherWithQueueDepth(indicBatch, cfg.BatchSize, cfg.NLPBatchFlushDelay, cfg.NLPBatcherQueueDepth, log)
	multilingualBatcher := nlp.NewBatcherWithQueueDepth(multilingualBatch, cfg.BatchSize, cfg.NLPBatchFlushDelay, cfg.NLPBatcherQueueDepth, log)

	var enricherAdjuster *nlp.RuleBasedAdjuster
	if cfg.RuleBasedAdjusterEnabled {
		enricherAdjuster = adjuster
	}
	enricher := nlp.NewEnricher(englishBatcher, indicBatcher, multilingualBatcher, enricherAdjuster, resultCache, nil, nil, log)

	relClassifier := relevance.New()
	cat := category.New()
	reg2 := region.New()
	conf := confidence.New()

	var smtp *smtpclient.Client
	if cfg.SMTPEnabled {
		smtp = smtpclient.New(smtpclient.Config{
			Host:      cfg.SMTPServer,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUsername,
			Password:  cfg.SMTPPassword,
			FromEmail: cfg.SMTPFromEmail,
			FromName:  "NewsScope PIB Alerts",
			UseTLS:    cfg.SMTPUseTLS,
		})
	}
	dispatcher := alert.New(db, smtp, log, alert.Config{
		AlertEnabled:     cfg.AlertEnabled,
		AlertThreshold:   cfg.AlertNegativeThreshold,
		SMTPEnabled:      cfg.SMTPEnabled,
		PIBAlertEmail:    cfg.PIBAlertEmail,
		FrontendURL:      cfg.FrontendURL,
		StatementTimeout: cfg.DBStatementTimeout,
	})

	pl := pipeline.New(
		reg, f, p, ld, rj, tr, enricher, relClassifier, cat, reg2, conf, st, dispatcher,
		pipeline.Config{
			ScrapeConcurrency: cfg.FetchConcurrency,
			ItemConcurrency:   cfg.BatchSize,
			AlertEnabled:      cfg.AlertEnabled,
			AlertThreshold:    cfg.AlertNegativeThreshold,
		},
		log,
	)

	sched := scheduler.New(cfg.CollectInterval, cfg.SchedulerGraceDuration, func(ctx context.Context) error {
		_, err := pl.RunCycle(ctx)
		return err
	}, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Each batcher's coalescing loop must be running before anything calls
	// Submit; one goroutine per model role, torn down with the root context.
	go englishBatcher.Run(ctx)
	go indicBatcher.Run(ctx)
	go multilingualBatcher.Run(ctx)

	sched.Start(ctx)
	log.Info("newsscope started", "collect_interval", cfg.CollectInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining")
	sched.Stop()
	cancel()
	log.Info("shutdown complete")
}
