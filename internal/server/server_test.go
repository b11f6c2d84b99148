package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"marketscout/internal/aggregator"
	"marketscout/internal/alpaca"
	"marketscout/internal/cache"
	"marketscout/internal/finnhub"
	"marketscout/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeFinnhub struct {
	gotSymbol, gotName string
	err                error
}

func (f *fakeFinnhub) Get(_ context.Context, symbol, name string) (finnhub.Record, error) {
	f.gotSymbol, f.gotName = symbol, name
	if f.err != nil {
		return finnhub.Record{}, f.err
	}
	return finnhub.Record{Symbol: symbol, CompanyName: name, Warnings: []string{"All data validated successfully"}}, nil
}

type fakeNews struct{ err error }

func (f fakeNews) Get(_ context.Context, symbol, name string) (aggregator.NewsResult, error) {
	return aggregator.NewsResult{Symbol: symbol, CompanyName: name}, f.err
}

type fakeStocks struct{ got alpaca.BarsQuery }

func (f *fakeStocks) Get(_ context.Context, q alpaca.BarsQuery) (aggregator.StocksResult, error) {
	f.got = q
	return aggregator.StocksResult{Symbol: q.Symbol, Bars: []alpaca.Bar{{T: 1, C: 2}}}, nil
}

type fakeSearch struct{}

func (fakeSearch) Get(_ context.Context, company string) (aggregator.SearchResult, error) {
	return aggregator.SearchResult{Company: company, Headlines: []string{"One"}, Sentiment: "ok"}, nil
}

func newTestRouter(svc Services) *gin.Engine {
	if svc.Finnhub == nil {
		svc.Finnhub = &fakeFinnhub{}
	}
	if svc.News == nil {
		svc.News = fakeNews{}
	}
	if svc.Stocks == nil {
		svc.Stocks = &fakeStocks{}
	}
	if svc.Search == nil {
		svc.Search = fakeSearch{}
	}
	if svc.Cache == nil {
		svc.Cache = cache.New(cache.DefaultTTLs())
	}

	now := func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local) }
	return NewRouter(svc, Options{
		Validator: validation.NewWithClock(now),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return w, decoded
}

func TestFinnhub_CanonicalName(t *testing.T) {
	fh := &fakeFinnhub{}
	router := newTestRouter(Services{Finnhub: fh})

	w, body := do(t, router, http.MethodGet, "/finnhub/aapl", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if fh.gotSymbol != "AAPL" || fh.gotName != "Apple Inc." {
		t.Errorf("service got %q/%q", fh.gotSymbol, fh.gotName)
	}
	if body["company_name"] != "Apple Inc." {
		t.Errorf("body = %v", body)
	}

	do(t, router, http.MethodGet, "/finnhub/aapl?company_name=Apple", "")
	if fh.gotName != "Apple" {
		t.Errorf("company_name override ignored, got %q", fh.gotName)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", &aggregator.Error{Kind: aggregator.KindNotFound, Err: errors.New("No earnings data found for AAPL")}, http.StatusNotFound, "No earnings data found for AAPL"},
		{"timeout", &aggregator.Error{Kind: aggregator.KindTimeout, Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "Request timeout"},
		{"rate limited", &aggregator.Error{Kind: aggregator.KindRateLimited, Err: errors.New("429")}, http.StatusTooManyRequests, "Upstream rate limit exceeded"},
		{"upstream", &aggregator.Error{Kind: aggregator.KindUpstreamFailure, Source: "earnings", Err: errors.New("boom")}, http.StatusBadGateway, "earnings upstream_failure: boom"},
		{"unauthorized", &aggregator.Error{Kind: aggregator.KindUnauthorized, Err: errors.New("401")}, http.StatusBadGateway, "unauthorized: 401"},
		{"unexpected", errors.New("oops"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(Services{Finnhub: &fakeFinnhub{err: tt.err}})

			w, body := do(t, router, http.MethodGet, "/finnhub/AAPL", "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body["detail"] != tt.wantDetail {
				t.Errorf("detail = %v, want %q", body["detail"], tt.wantDetail)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	router := newTestRouter(Services{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"bad symbol", http.MethodGet, "/finnhub/TOOLONG", "", http.StatusBadRequest},
		{"unknown symbol", http.MethodGet, "/news/ZZZZ", "", http.StatusNotFound},
		{"news without name", http.MethodGet, "/news/PPL", "", http.StatusNotFound},
		{"bad dates", http.MethodGet, "/stocks/AAPL?start=2024-06-01&end=2024-01-01", "", http.StatusBadRequest},
		{"bad timeframe", http.MethodGet, "/stocks/AAPL?start=2024-01-01&end=2024-02-01&timeframe=3Day", "", http.StatusBadRequest},
		{"empty search", http.MethodPost, "/search", `{"company": " "}`, http.StatusBadRequest},
		{"unknown company", http.MethodPost, "/search", `{"company": "Nope Corp"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, router, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%v)", w.Code, tt.wantStatus, body)
			}
			if _, ok := body["detail"]; !ok {
				t.Errorf("body %v has no detail", body)
			}
		})
	}
}

func TestStocks_DefaultTimeframe(t *testing.T) {
	stocks := &fakeStocks{}
	router := newTestRouter(Services{Stocks: stocks})

	w, body := do(t, router, http.MethodGet, "/stocks/msft?start=2024-01-01&end=2024-02-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", w.Code, body)
	}
	want := alpaca.BarsQuery{Symbol: "MSFT", Start: "2024-01-01", End: "2024-02-01", Timeframe: "1Day"}
	if stocks.got != want {
		t.Errorf("query = %+v, want %+v", stocks.got, want)
	}
}

func TestSearch(t *testing.T) {
	router := newTestRouter(Services{})

	w, body := do(t, router, http.MethodPost, "/search", `{"company": "Apple Inc."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", w.Code, body)
	}
	if body["company"] != "Apple Inc." || body["sentiment"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestCacheEndpoints(t *testing.T) {
	c := cache.New(cache.DefaultTTLs())
	if err := c.Store(cache.ClassNews, "aapl", "x"); err != nil {
		t.Fatalf("Store() returned unexpected error: %v", err)
	}
	router := newTestRouter(Services{Cache: c})

	w, body := do(t, router, http.MethodGet, "/cache/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	classes, ok := body["classes"].([]any)
	if !ok || len(classes) != 5 {
		t.Fatalf("classes = %v", body["classes"])
	}

	w, _ = do(t, router, http.MethodPost, "/cache/clear", "")
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", w.Code)
	}
	for _, s := range c.Stats() {
		if s.Total != 0 {
			t.Errorf("class %s has %d entries after clear", s.Class, s.Total)
		}
	}
}

func TestRootAndTest(t *testing.T) {
	router := newTestRouter(Services{})

	if w, body := do(t, router, http.MethodGet, "/test", ""); w.Code != http.StatusOK || body["status"] != "OK" {
		t.Errorf("/test = %d %v", w.Code, body)
	}
	if w, body := do(t, router, http.MethodGet, "/", ""); w.Code != http.StatusOK || body["endpoints"] == nil {
		t.Errorf("/ = %d %v", w.Code, body)
	}
}

func TestCORS(t *testing.T) {
	router := NewRouter(Services{}, Options{
		AllowedOrigins: []string{"http://localhost:5173"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	req := httptest.NewRequest(http.MethodOptions, "/search", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/search", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for disallowed origin, want empty", got)
	}
}
