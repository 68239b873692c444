// Package translator implements the Translator (C5): an ordered fallback
// chain of translation providers that produces English text for non-English
// articles, trying each provider in turn and logging (without failing) on
// each declined or failed attempt.
package translator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/cache"
	"github.com/prajwalm-hub/newsscope/internal/logging"
)

const (
	maxInputLength  = 5000
	minOutputLength = 10
)

// Provider is one entry in the fallback chain.
type Provider interface {
	// Name identifies the provider for logging.
	Name() string
	// Translate returns English text for src-language text, or an error.
	// A non-nil error means "try the next provider"; it is never fatal.
	Translate(ctx context.Context, text, src string) (string, error)
}

// EntityExtractor is an optional named-entity hook a caller may wire in
// to extract entities from translated text. The stub implementation
// always returns an empty slice.
type EntityExtractor interface {
	Extract(ctx context.Context, text, lang string) ([]string, error)
}

// NoopEntityExtractor is the always-empty EntityExtractor.
type NoopEntityExtractor struct{}

// Extract always returns an empty slice and a nil error.
func (NoopEntityExtractor) Extract(context.Context, string, string) ([]string, error) {
	return nil, nil
}

// Translator runs text through HTML stripping, a length cap, then an
// ordered fallback chain of Providers. src == "en" is a fast-path identity
// translation; empty input yields (nil, nil).
type Translator struct {
	providers []Provider
	cache     *cache.Cache
	log       *logging.Logger
}

// New builds a Translator. providers are tried in order; the dedicated
// Indian-to-English model (if any) should be providers[0].
func New(providers []Provider, c *cache.Cache, log *logging.Logger) *Translator {
	return &Translator{providers: providers, cache: c, log: log}
}

// Translate strips HTML, caps input length, checks the cache, then tries
// each provider in order. It returns (nil, nil) when every provider in the
// chain fails or declines — the caller must proceed with the original text
// in that case, never treating a nil result as an error.
func (t *Translator) Translate(ctx context.Context, text, src string) (*string, error) {
	if src == "en" {
		return &text, nil
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	stripped := stripHTML(text)
	if len(stripped) > maxInputLength {
		stripped = stripped[:maxInputLength]
	}

	if cached, ok := t.lookupCache(ctx, stripped, src); ok {
		return &cached, nil
	}

	for _, p := range t.providers {
		out, err := p.Translate(ctx, stripped, src)
		if err != nil {
			if t.log != nil {
				t.log.Warn("translation provider failed, trying next", "provider", p.Name(), "error", err)
			}
			continue
		}
		if len(strings.TrimSpace(out)) <= minOutputLength {
			if t.log != nil {
				t.log.Warn("translation provider output too short, trying next", "provider", p.Name())
			}
			continue
		}
		if t.cache != nil {
			t.cache.Set(ctx, cache.ClassTranslation, cacheText(stripped, src), out)
		}
		return &out, nil
	}

	return nil, nil
}

func (t *Translator) lookupCache(ctx context.Context, text, src string) (string, bool) {
	if t.cache == nil {
		return "", false
	}
	var out string
	ok, err := t.cache.Get(ctx, cache.ClassTranslation, cacheText(text, src), &out)
	if err != nil || !ok {
		return "", false
	}
	return out, true
}

func cacheText(text, src string) string {
	return src + "|en|" + text
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, " "))
}

// OpenAIProvider implements Provider using Chat Completions as a
// translation backend.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	name   string
}

// NewOpenAIProvider builds an OpenAIProvider. name distinguishes it in logs
// when the same client backs more than one position in the chain.
func NewOpenAIProvider(apiKey, model, name string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
		name:   name,
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return p.name }

// Translate implements Provider via a single chat-completion call asking
// for a literal translation with no commentary.
func (p *OpenAIProvider) Translate(ctx context.Context, text, src string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Translate the user's text from " + src + " to English. Reply with only the translation, no commentary.",
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", apperrors.NewTranslationError("", "openai translation request", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewTranslationError("", "openai translation returned no choices", nil)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// HTTPProvider implements Provider against a simple REST translation
// endpoint (the "secondary" and "tertiary free-tier" steps of the chain),
// via an injected function so tests don't need a live HTTP server.
type HTTPProvider struct {
	name   string
	invoke func(ctx context.Context, text, src string) (string, error)
}

// NewHTTPProvider builds an HTTPProvider backed by invoke.
func NewHTTPProvider(name string, invoke func(ctx context.Context, text, src string) (string, error)) *HTTPProvider {
	return &HTTPProvider{name: name, invoke: invoke}
}

// Name implements Provider.
func (p *HTTPProvider) Name() string { return p.name }

// Translate implements Provider.
func (p *HTTPProvider) Translate(ctx context.Context, text, src string) (string, error) {
	out, err := p.invoke(ctx, text, src)
	if err != nil {
		return "", apperrors.NewTranslationError("", fmt.Sprintf("%s translation request", p.name), err)
	}
	return out, nil
}
