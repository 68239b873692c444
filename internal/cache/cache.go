// Package cache implements the Result Cache (C15): a Redis-backed key-value
// store keyed by operation prefix plus a text fingerprint, with per-operation
// TTL classes covering the get/set-with-TTL shape this pipeline needs — no
// warming scheduler or time-of-day-sensitive TTL.
//
// A nil or unreachable cache is never an error to a caller: every method
// degrades to a cache miss so components fall back to direct computation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prajwalm-hub/newsscope/internal/logging"
)

// Class identifies the TTL bucket a cached value belongs to.
type Class string

const (
	ClassSentiment      Class = "sentiment"
	ClassTranslation    Class = "translation"
	ClassClassification Class = "classification"
	ClassScheme         Class = "scheme"
)

// Cache wraps a redis.Client with prefix-scoped keys and per-Class TTLs.
// A Cache constructed with a nil client (or one pointing at an unreachable
// server) degrades every Get/Set to a no-op miss.
type Cache struct {
	client *redis.Client
	ttls   map[Class]time.Duration
	log    *logging.Logger
}

// New builds a Cache. client may be nil to disable caching entirely (tests,
// or CACHE_URL unset).
func New(client *redis.Client, ttls map[Class]time.Duration, log *logging.Logger) *Cache {
	return &Cache{client: client, ttls: ttls, log: log}
}

// DefaultTTLs builds the TTL map: 24h for sentiment/translation/
// classification, 7d for scheme detection.
func DefaultTTLs(sentimentHours, translationHours, classificationHours, schemeDays int) map[Class]time.Duration {
	return map[Class]time.Duration{
		ClassSentiment:      time.Duration(sentimentHours) * time.Hour,
		ClassTranslation:    time.Duration(translationHours) * time.Hour,
		ClassClassification: time.Duration(classificationHours) * time.Hour,
		ClassScheme:         time.Duration(schemeDays) * 24 * time.Hour,
	}
}

// Key derives the cache key for a (class, text) pair: a fixed prefix plus
// the SHA-256 hex digest of the text.
func Key(class Class, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "newsscope:" + string(class) + ":" + hex.EncodeToString(sum[:])
}

// Get looks up a JSON-encoded value by class+text, decoding it into dst. It
// reports (true, nil) on a hit and (false, nil) otherwise: a miss, a
// disabled cache, a backend error, or a stored value that fails to decode
// (the last two are logged). It never returns a non-nil error.
func (c *Cache) Get(ctx context.Context, class Class, text string, dst interface{}) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	raw, err := c.client.Get(ctx, Key(class, text)).Bytes()
	if err != nil {
		if err != redis.Nil && c.log != nil {
			c.log.Warn("cache get failed, degrading to miss", "class", class, "error", err)
		}
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		if c.log != nil {
			c.log.Warn("cache value corrupt, degrading to miss", "class", class, "error", err)
		}
		return false, nil
	}
	return true, nil
}

// Set stores a JSON-encoded value under class+text with the TTL configured
// for that class. Failures are logged and swallowed — a cache write is
// never allowed to fail the caller's pipeline stage.
func (c *Cache) Set(ctx context.Context, class Class, text string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		if c.log != nil {
			c.log.Warn("cache marshal failed", "class", class, "error", err)
		}
		return
	}

	ttl := c.ttls[class]
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	if err := c.client.Set(ctx, Key(class, text), data, ttl).Err(); err != nil && c.log != nil {
		c.log.Warn("cache set failed", "class", class, "error", err)
	}
}
