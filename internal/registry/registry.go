// Package registry loads the configured news sources — RSS feeds and
// scraped sites — from YAML source-list files.
//
// A Registry holds no per-entry state beyond the configuration itself; it
// is an iterator over two flat lists, reloadable at any time without
// restarting the process.
package registry

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

// sourceFile is the on-disk shape of both the feeds and scraped-sources
// YAML files: a flat list under a single top-level key.
type sourceFile struct {
	Sources []sourceEntry `yaml:"sources"`
}

type sourceEntry struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Language string `yaml:"language"`
	Script   string `yaml:"script"`
	Region   string `yaml:"region"`
	Trusted  bool   `yaml:"trusted"`
}

// Registry holds the loaded feed and scraped-source lists.
type Registry struct {
	mu sync.RWMutex

	feedsPath   string
	scrapedPath string

	feeds   []models.SourceConfig
	scraped []models.SourceConfig

	log *logging.Logger
}

// New builds a Registry and performs the initial load. feedsPath and
// scrapedPath must both point to existing files: a missing path at
// startup is a fatal ConfigError, per the fail-fast contract. A file that
// exists but fails to parse is non-fatal — loadFile logs the failure and
// leaves that list empty.
func New(feedsPath, scrapedPath string, log *logging.Logger) (*Registry, error) {
	r := &Registry{
		feedsPath:   feedsPath,
		scrapedPath: scrapedPath,
		log:         log,
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads both source-list files in place. Safe to call while
// Feeds/Scraped are being iterated by other goroutines.
func (r *Registry) Reload() error {
	feeds, err := loadFile(r.feedsPath, r.log)
	if err != nil {
		return err
	}
	scraped, err := loadFile(r.scrapedPath, r.log)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.feeds = feeds
	r.scraped = scraped
	r.mu.Unlock()
	return nil
}

// loadFile reads and parses one source-list file. A missing file is fatal
// (ConfigError); a present-but-malformed file is logged and treated as an
// empty list so callers never crash on a bad edit to the source file.
func loadFile(path string, log *logging.Logger) ([]models.SourceConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("source list file unreadable: "+path, err)
	}

	var parsed sourceFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		if log != nil {
			log.Warn("source list malformed, using empty list", "path", path, "error", err)
		}
		return []models.SourceConfig{}, nil
	}

	out := make([]models.SourceConfig, 0, len(parsed.Sources))
	for _, e := range parsed.Sources {
		out = append(out, models.SourceConfig{
			Name:             e.Name,
			URL:              e.URL,
			Kind:             models.SourceKindRSS,
			DeclaredLanguage: e.Language,
			DeclaredScript:   e.Script,
			DeclaredRegion:   e.Region,
			Trusted:          e.Trusted,
		})
	}
	return out, nil
}

// Feeds returns the currently loaded RSS/Atom feed sources.
func (r *Registry) Feeds() []models.SourceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SourceConfig, len(r.feeds))
	copy(out, r.feeds)
	return out
}

// Scraped returns the currently loaded scraped-site sources.
func (r *Registry) Scraped() []models.SourceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SourceConfig, len(r.scraped))
	for i := range r.scraped {
		out[i] = r.scraped[i]
		out[i].Kind = models.SourceKindScraper
	}
	return out
}

// All returns feeds and scraped sources concatenated, each tagged with its
// SourceKind.
func (r *Registry) All() []models.SourceConfig {
	feeds := r.Feeds()
	for i := range feeds {
		feeds[i].Kind = models.SourceKindRSS
	}
	return append(feeds, r.Scraped()...)
}
