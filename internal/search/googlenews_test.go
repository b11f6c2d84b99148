package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketscout/internal/fetcher"
	"marketscout/internal/ratelimit"
)

func TestExtractHeadlines(t *testing.T) {
	page := `<html><body>
		<div><h3>  Apple <b>beats</b> estimates </h3></div>
		<h3></h3>
		<h2>Not a headline</h2>
		<h3>iPhone sales climb</h3>
		<h3>Third</h3>
	</body></html>`

	got, err := ExtractHeadlines(strings.NewReader(page), 2)
	if err != nil {
		t.Fatalf("ExtractHeadlines() returned unexpected error: %v", err)
	}

	want := []string{"Apple beats estimates", "iPhone sales climb"}
	if len(got) != len(want) {
		t.Fatalf("ExtractHeadlines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headline[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHeadlines_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if q := r.URL.Query(); q.Get("q") != "Apple Inc. news" || q.Get("tbm") != "nws" {
			t.Errorf("unexpected query %v", q)
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><h3>One</h3><h3>Two</h3></body></html>`))
	}))
	defer server.Close()

	src := NewGoogleNews(server.URL, ratelimit.Unlimited()).Headlines("Apple Inc.")
	raw, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() returned unexpected error: %v", err)
	}

	var headlines []string
	if err := json.Unmarshal(raw, &headlines); err != nil {
		t.Fatalf("payload is not a JSON string array: %v", err)
	}
	if len(headlines) != 2 || headlines[0] != "One" {
		t.Errorf("headlines = %q", headlines)
	}
}

func TestHeadlines_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewGoogleNews(server.URL, ratelimit.Unlimited()).Headlines("Apple Inc.").Fetch(context.Background())
	if got := fetcher.KindOf(err); got != fetcher.KindUpstream {
		t.Errorf("KindOf() = %q, want %q", got, fetcher.KindUpstream)
	}
}
