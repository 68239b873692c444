package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/models"
)

func TestFetchReturnsResultPerSource(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload-ok"))
	}))
	defer ok.Close()

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	sources := []models.SourceConfig{
		{Name: "good", URL: ok.URL, Kind: models.SourceKindRSS},
		{Name: "bad", URL: notFound.URL, Kind: models.SourceKindRSS},
	}

	f := New(2, 2*time.Second, nil)
	results := make(map[string]Result)
	for r := range f.Fetch(context.Background(), sources) {
		results[r.Source.Name] = r
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["good"].Err != nil || string(results["good"].Payload) != "payload-ok" {
		t.Fatalf("unexpected good result: %+v", results["good"])
	}
	if results["bad"].Err == nil {
		t.Fatalf("expected error for 404 source")
	}
}

func TestFetchRespectsTimeoutPerSource(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte("too-late"))
	}))
	defer slow.Close()

	sources := []models.SourceConfig{{Name: "slow", URL: slow.URL}}
	f := New(1, 10*time.Millisecond, nil)

	var got Result
	for r := range f.Fetch(context.Background(), sources) {
		got = r
	}
	if got.Err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetchEmptySourcesClosesImmediately(t *testing.T) {
	f := New(5, time.Second, nil)
	count := 0
	for range f.Fetch(context.Background(), nil) {
		count++
	}
	if count != 0 {
		t.Fatalf("expected no results, got %d", count)
	}
}
