package parser

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

const sampleFeed = `<?xml version="1.0"?>
<rss version="2.0"><channel>
<title>Sample Feed</title>
<item>
  <title>Government Launches New Scheme For Farmers</title>
  <link>https://example.gov.in/news/scheme-launch</link>
  <description>A summary of the new scheme.</description>
  <content:encoded xmlns:content="http://purl.org/rss/1.0/modules/content/">
    <![CDATA[<p>Full article body text about the scheme.</p>]]>
  </content:encoded>
</item>
</channel></rss>`

func TestParseFeedProducesRawItems(t *testing.T) {
	p := New(nil)
	source := models.SourceConfig{Name: "Sample", Kind: models.SourceKindRSS, DeclaredLanguage: "en"}

	items, err := p.ParseFeed(source, []byte(sampleFeed))
	if err != nil {
		t.Fatalf("ParseFeed error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Government Launches New Scheme For Farmers" {
		t.Fatalf("unexpected title: %q", items[0].Title)
	}
	if items[0].SourceKind != models.SourceKindRSS {
		t.Fatalf("expected RSS source kind")
	}
}

func TestParseFeedMalformedReturnsError(t *testing.T) {
	p := New(nil)
	source := models.SourceConfig{Name: "Broken"}
	if _, err := p.ParseFeed(source, []byte("not xml at all {{{")); err == nil {
		t.Fatal("expected parse error for malformed payload")
	}
}

func TestExtractArticleAcceptsLongEnoughContent(t *testing.T) {
	longText := strings.Repeat("Ministry announces new policy details. ", 5)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Government Announces Major Policy Update</title></head>
<body><article>` + longText + `</article></body></html>`))
	}))
	defer srv.Close()

	p := New(srv.Client())
	source := models.SourceConfig{Name: "Portal", Kind: models.SourceKindScraper}

	item, err := p.ExtractArticle(t.Context(), source, srv.URL)
	if err != nil {
		t.Fatalf("ExtractArticle error: %v", err)
	}
	if len(item.Title) < minTitleLen || len(item.Content) < minTextLen {
		t.Fatalf("extracted article below acceptance thresholds: %+v", item)
	}
}

func TestExtractArticleRejectsShortContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Too Short</title></head><body><article>tiny</article></body></html>`))
	}))
	defer srv.Close()

	p := New(srv.Client())
	source := models.SourceConfig{Name: "Portal"}

	if _, err := p.ExtractArticle(t.Context(), source, srv.URL); err == nil {
		t.Fatal("expected rejection for short article")
	}
}

func TestLooksLikeArticleFiltersKnownNonArticlePaths(t *testing.T) {
	cases := map[string]bool{
		"/news/2024/scheme-update": true,
		"/article/123":             true,
		"/2024/latest-update":      true,
		"/login":                   false,
		"/search?q=x":              false,
		"/tag/politics":            false,
		"/category/sports":         false,
		"/about":                   false,
	}
	for path, want := range cases {
		if got := looksLikeArticle(path); got != want {
			t.Errorf("looksLikeArticle(%q) = %v, want %v", path, got, want)
		}
	}
}
