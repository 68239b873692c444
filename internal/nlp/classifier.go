package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

// indicLanguages is the set of languages routed to the Indic-specialized
// classifier.
var indicLanguages = map[string]bool{
	"hi": true, "kn": true, "ta": true, "te": true, "bn": true,
	"ml": true, "mr": true, "gu": true, "pa": true, "or": true, "as": true,
}

// Classifier produces a raw sentiment triplet for a batch of texts. Model
// output is normalized to {label, score} before it reaches the rule-based
// adjuster.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, texts []string) ([]models.SentimentResult, error)
}

// RouteClassifier selects English, Indic, or multilingual classification
// by detected language.
func RouteClassifier(lang string, english, indic, multilingual Classifier) Classifier {
	switch {
	case lang == "en":
		return english
	case indicLanguages[lang]:
		return indic
	default:
		return multilingual
	}
}

// ollamaRequest/ollamaResponse model a raw Ollama HTTP generate call,
// carrying a sentiment-classification prompt instead of a summarization
// one.
type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// ModelClassifier calls a local Ollama-compatible inference endpoint with
// a fixed sentiment-analysis prompt and parses a "label|score" response.
// One ModelClassifier instance, differently configured, backs the
// English, Indic, and multilingual roles: the difference between roles is
// in which model name and system prompt are used, not in the HTTP
// transport.
type ModelClassifier struct {
	name       string
	baseURL    string
	model      string
	systemText string
	maxLength  int
	client     *http.Client
}

// defaultMaxLength is MAX_LENGTH's default: a character cap on the text
// handed to the model, standing in for a token-length cap.
const defaultMaxLength = 512

// NewModelClassifier builds a ModelClassifier. name identifies it in logs
// and error wrapping (e.g. "english", "indic", "multilingual").
func NewModelClassifier(name, baseURL, model string, client *http.Client) *ModelClassifier {
	return NewModelClassifierWithMaxLength(name, baseURL, model, 0, client)
}

// NewModelClassifierWithMaxLength is NewModelClassifier with an explicit
// input-length cap, wired to MAX_LENGTH so long articles don't blow past
// what the inference endpoint can usefully consume in one prompt.
// maxLength <= 0 selects the default of 512.
func NewModelClassifierWithMaxLength(name, baseURL, model string, maxLength int, client *http.Client) *ModelClassifier {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}
	return &ModelClassifier{
		name:      name,
		baseURL:   baseURL,
		model:     model,
		client:    client,
		maxLength: maxLength,
		systemText: "You are a sentiment classifier for Indian government news. " +
			"Reply with exactly one line: label|score, where label is " +
			"positive, negative, or neutral, and score is your confidence " +
			"between 0 and 1.",
	}
}

// Name implements Classifier.
func (m *ModelClassifier) Name() string { return m.name }

// Classify sends one inference request per text. A batch never fails as
// a whole: each text's failure is wrapped as a ModelError (the first one is
// returned with the results) and the corresponding result is a neutral 0.5
// baseline, the same starting point RuleBasedClassifier uses, so the
// Enricher's rule-based adjuster derives that item's sentiment from its
// keywords. The caller always receives len(texts) results.
func (m *ModelClassifier) Classify(ctx context.Context, texts []string) ([]models.SentimentResult, error) {
	out := make([]models.SentimentResult, len(texts))
	var firstErr error

	for i, text := range texts {
		result, err := m.classifyOne(ctx, text)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			out[i] = models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5}
			continue
		}
		out[i] = result
	}

	return out, firstErr
}

func (m *ModelClassifier) classifyOne(ctx context.Context, text string) (models.SentimentResult, error) {
	if len(text) > m.maxLength {
		text = text[:m.maxLength]
	}

	body, err := json.Marshal(ollamaRequest{
		Model:  m.model,
		Prompt: text,
		System: m.systemText,
		Stream: false,
	})
	if err != nil {
		return models.SentimentResult{}, apperrors.NewModelError(m.name+" request encoding", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return models.SentimentResult{}, apperrors.NewModelError(m.name+" request build", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return models.SentimentResult{}, apperrors.NewModelError(m.name+" inference request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SentimentResult{}, apperrors.NewModelError(fmt.Sprintf("%s returned status %d", m.name, resp.StatusCode), nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.SentimentResult{}, apperrors.NewModelError(m.name+" reading response", err)
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return models.SentimentResult{}, apperrors.NewModelError(m.name+" decoding response", err)
	}

	return parseSentimentLine(parsed.Response), nil
}

// parseSentimentLine normalizes a "label|score" or star-rating reply into
// the canonical {label, score}: star ratings 1-2 map to negative, 3 to
// neutral, 4-5 to positive.
func parseSentimentLine(line string) models.SentimentResult {
	line = strings.TrimSpace(strings.ToLower(line))

	if stars, ok := parseStarRating(line); ok {
		switch {
		case stars <= 2:
			return models.SentimentResult{Label: models.SentimentNegative, Score: 0.6}
		case stars == 3:
			return models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5}
		default:
			return models.SentimentResult{Label: models.SentimentPositive, Score: 0.6}
		}
	}

	parts := strings.SplitN(line, "|", 2)
	label := models.SentimentLabel(strings.TrimSpace(parts[0]))
	switch label {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		label = models.SentimentNeutral
	}

	score := 0.5
	if len(parts) == 2 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			score = v
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return models.SentimentResult{Label: label, Score: score}
}

func parseStarRating(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), " stars")
	s = strings.TrimSuffix(s, " star")
	s = strings.TrimSuffix(s, "★")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// RuleBasedClassifier assigns sentiment purely from the adjuster's
// keyword sets, with no model call at all. cmd/newsscope selects it in
// place of a ModelClassifier when NLP is disabled, and for the Indic route
// when the Indic model is disabled; a failing ModelClassifier is not
// swapped for it (see ModelClassifier.Classify for the per-text fallback).
type RuleBasedClassifier struct {
	adjuster *RuleBasedAdjuster
}

// NewRuleBasedClassifier builds a RuleBasedClassifier.
func NewRuleBasedClassifier(adjuster *RuleBasedAdjuster) *RuleBasedClassifier {
	return &RuleBasedClassifier{adjuster: adjuster}
}

// Name implements Classifier.
func (r *RuleBasedClassifier) Name() string { return "rule_based" }

// Classify starts every text from a neutral baseline and immediately
// lets the shared adjuster derive label/score from keyword signal — the
// same function the enricher would apply afterward anyway, so a run
// without a sentiment model still yields a keyword-derived triplet instead
// of a flat neutral.
func (r *RuleBasedClassifier) Classify(_ context.Context, texts []string) ([]models.SentimentResult, error) {
	out := make([]models.SentimentResult, len(texts))
	for i, text := range texts {
		baseline := models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5}
		out[i] = r.adjuster.Adjust(text, baseline)
	}
	return out, nil
}
