// Package parser turns raw fetch payloads into RawItem records: RSS/Atom
// feeds via gofeed, and scraped HTML pages via goquery content-selector
// heuristics.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/models"
)

const (
	minTitleLen         = 10
	minTextLen          = 100
	maxAcceptedArticles = 3
	maxProbedCandidates = 10
)

// contentSelectors are tried in order; the first selector that yields
// substantial text wins. Ordered from most to least specific.
var contentSelectors = []string{
	"article", ".article-content", ".entry-content", ".post-content",
	".article-body", ".story-body", ".content", "main", "[role='main']",
}

// candidatePathPatterns identify URLs likely to be article pages.
var candidatePathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/news/`),
	regexp.MustCompile(`/article/`),
	regexp.MustCompile(`/20\d{2}/`),
}

// excludedPathPatterns identify URLs that are never article pages even
// when they match a candidate pattern.
var excludedPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/login`),
	regexp.MustCompile(`/search`),
	regexp.MustCompile(`/tag/`),
	regexp.MustCompile(`/category/`),
	regexp.MustCompile(`^mailto:`),
}

// Parser converts feed and page payloads into RawItem records.
type Parser struct {
	feedParser *gofeed.Parser
	client     *http.Client
}

// New builds a Parser with its own HTTP client for scraped-page fetches
// made during candidate-link extraction.
func New(client *http.Client) *Parser {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Parser{feedParser: gofeed.NewParser(), client: client}
}

// ParseFeed parses an RSS/Atom payload into RawItem records. A parse
// failure is returned as a ParseError; it never panics on malformed XML.
func (p *Parser) ParseFeed(source models.SourceConfig, payload []byte) ([]models.RawItem, error) {
	feed, err := p.feedParser.ParseString(string(payload))
	if err != nil {
		return nil, apperrors.NewParseError(source.Name, "parsing feed", err)
	}

	items := make([]models.RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		published := time.Now().UTC()
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		}

		content := entry.Content
		if content == "" {
			content = entry.Description
		}

		items = append(items, models.RawItem{
			URL:              entry.Link,
			Title:            strings.TrimSpace(entry.Title),
			Summary:          strings.TrimSpace(entry.Description),
			Content:          strings.TrimSpace(stripTags(content)),
			SourceName:       source.Name,
			SourceKind:       models.SourceKindRSS,
			DeclaredLanguage: source.DeclaredLanguage,
			DeclaredRegion:   source.DeclaredRegion,
			PublishedAt:      published,
		})
	}
	return items, nil
}

// DiscoverAndExtract scrapes a source's landing page for candidate
// article links, then extracts up to maxAcceptedArticles full articles
// from up to maxProbedCandidates candidates, in page order.
func (p *Parser) DiscoverAndExtract(ctx context.Context, source models.SourceConfig) ([]models.RawItem, error) {
	landing, _, err := p.fetchDocument(ctx, source.URL)
	if err != nil {
		return nil, apperrors.NewFetchError(source.Name, "fetching landing page", err)
	}

	base, err := url.Parse(source.URL)
	if err != nil {
		return nil, apperrors.NewParseError(source.Name, "parsing source URL", err)
	}

	candidates := candidateLinks(landing, base)

	var out []models.RawItem
	probed := 0
	for _, link := range candidates {
		if probed >= maxProbedCandidates || len(out) >= maxAcceptedArticles {
			break
		}
		probed++

		item, err := p.ExtractArticle(ctx, source, link)
		if err != nil {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

// ExtractArticle fetches a single page and extracts {title, text} using
// the prioritized content-selector chain. The result is accepted only if
// len(title) >= 10 and len(text) >= 100; otherwise an error is returned
// and the caller should skip the candidate.
func (p *Parser) ExtractArticle(ctx context.Context, source models.SourceConfig, pageURL string) (*models.RawItem, error) {
	doc, raw, err := p.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, apperrors.NewFetchError(source.Name, "fetching article page", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); len(h1) > len(title) {
		title = h1
	}

	text := extractContent(doc)
	if len(text) < minTextLen {
		if walked := extractContentByWalk(raw); len(walked) > len(text) {
			text = walked
		}
	}

	if len(title) < minTitleLen || len(text) < minTextLen {
		return nil, apperrors.NewParseError(source.Name, "article below acceptance threshold", nil)
	}

	return &models.RawItem{
		URL:              pageURL,
		Title:            title,
		Content:          text,
		SourceName:       source.Name,
		SourceKind:       models.SourceKindScraper,
		DeclaredLanguage: source.DeclaredLanguage,
		DeclaredRegion:   source.DeclaredRegion,
		PublishedAt:      time.Now().UTC(),
	}, nil
}

// fetchDocument fetches pageURL and returns both the parsed goquery document
// and the raw body bytes, the latter kept for extractContentByWalk's
// manual-DOM-walking fallback when the selector chain comes up short.
func (p *Parser) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", "newsscope-collector/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("HTTP status %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}

// extractContent walks contentSelectors in order and returns the first
// selector match whose text is substantial, falling back to the full body.
func extractContent(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		var text string
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			candidate := strings.TrimSpace(s.Text())
			if len(candidate) > minTextLen {
				text = candidate
				return false
			}
			return true
		})
		if text != "" {
			return text
		}
	}
	return strings.TrimSpace(doc.Find("body").Text())
}

// skippedTags never contribute to extractContentByWalk's text accumulation;
// their contents are boilerplate or non-prose even when they sit inside an
// otherwise-prose container.
var skippedTags = map[string]bool{
	"script": true, "style": true, "nav": true, "header": true,
	"footer": true, "aside": true, "noscript": true,
}

// extractContentByWalk is the last-resort fallback when goquery's
// contentSelectors chain fails to find a substantial block: it walks the raw
// token stream directly with golang.org/x/net/html and concatenates every
// text node outside a skipped tag. Pages that hide body copy behind
// selectors contentSelectors doesn't know about (custom CMS markup, inline
// SVG-wrapped layouts) still yield usable text this way.
func extractContentByWalk(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	tokenizer := html.NewTokenizer(bytes.NewReader(raw))
	var sb strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(collapseSpace(sb.String()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if skippedTags[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTags[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// candidateLinks extracts same-host article-shaped links from a landing
// page, in document order, filtering out known non-article patterns.
func candidateLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)
	var out []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		if resolved.Host != base.Host {
			return
		}
		link := resolved.String()
		if seen[link] {
			return
		}
		if !looksLikeArticle(resolved.Path) {
			return
		}
		seen[link] = true
		out = append(out, link)
	})
	return out
}

func looksLikeArticle(path string) bool {
	for _, re := range excludedPathPatterns {
		if re.MatchString(path) {
			return false
		}
	}
	for _, re := range candidatePathPatterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, " ")
}
