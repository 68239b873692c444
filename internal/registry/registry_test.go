package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestNewLoadsFeedsAndScrapedSources(t *testing.T) {
	dir := t.TempDir()
	feeds := writeTemp(t, dir, "feeds.yaml", `
sources:
  - name: PIB Delhi
    url: https://pib.gov.in/rss.xml
    language: en
    region: Delhi
    trusted: true
`)
	scraped := writeTemp(t, dir, "scraped.yaml", `
sources:
  - name: State Portal
    url: https://example.gov.in/news
    language: hi
`)

	r, err := New(feeds, scraped, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	f := r.Feeds()
	if len(f) != 1 || f[0].Name != "PIB Delhi" || !f[0].Trusted {
		t.Fatalf("unexpected feeds: %+v", f)
	}

	s := r.Scraped()
	if len(s) != 1 || s[0].Name != "State Portal" || s[0].DeclaredLanguage != "hi" {
		t.Fatalf("unexpected scraped sources: %+v", s)
	}

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 combined sources, got %d", len(all))
	}
}

func TestNewFailsFastOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	feeds := writeTemp(t, dir, "feeds.yaml", "sources: []\n")
	missing := filepath.Join(dir, "does-not-exist.yaml")

	if _, err := New(feeds, missing, nil); err == nil {
		t.Fatal("expected ConfigError for missing scraped-sources file, got nil")
	}
}

func TestLoadFileReturnsEmptyListOnMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	bad := writeTemp(t, dir, "bad.yaml", "sources: [this is not valid: yaml: at all\n")

	out, err := loadFile(bad, nil)
	if err != nil {
		t.Fatalf("malformed YAML should not error, got: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list for malformed YAML, got %d entries", len(out))
	}
}

func TestReloadReplacesInPlace(t *testing.T) {
	dir := t.TempDir()
	feeds := writeTemp(t, dir, "feeds.yaml", "sources:\n  - name: A\n    url: https://a.example\n    language: en\n")
	scraped := writeTemp(t, dir, "scraped.yaml", "sources: []\n")

	r, err := New(feeds, scraped, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(r.Feeds()) != 1 {
		t.Fatalf("expected 1 feed before reload")
	}

	writeTemp(t, dir, "feeds.yaml", "sources:\n  - name: A\n    url: https://a.example\n    language: en\n  - name: B\n    url: https://b.example\n    language: hi\n")
	if err := r.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(r.Feeds()) != 2 {
		t.Fatalf("expected 2 feeds after reload, got %d", len(r.Feeds()))
	}
}
