// Package alpaca fetches historical stock bars from the Alpaca market data API.
package alpaca

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"

	"marketscout/internal/fetcher"
	"marketscout/internal/ratelimit"
)

const (
	// DefaultBaseURL is the production Alpaca market data endpoint.
	DefaultBaseURL = "https://data.alpaca.markets"

	// DefaultMaxPages caps how many next_page_token hops one request follows.
	DefaultMaxPages = 10

	pageLimit = "10000"
)

// BarsQuery selects a bar series.
type BarsQuery struct {
	Symbol    string
	Start     string
	End       string
	Timeframe string
}

// Client creates bar sources authenticated with an Alpaca key pair.
type Client struct {
	client   *resty.Client
	limiter  *ratelimit.Limiter
	maxPages int
}

// NewClient creates a new Alpaca client. maxPages <= 0 uses DefaultMaxPages.
func NewClient(apiKey, apiSecret, baseURL string, maxPages int, limiter *ratelimit.Limiter) *Client {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Client{
		client: fetcher.NewHTTPClient(baseURL).
			SetHeader("APCA-API-KEY-ID", apiKey).
			SetHeader("APCA-API-SECRET-KEY", apiSecret),
		limiter:  limiter,
		maxPages: maxPages,
	}
}

// Bars returns the source for q. Its payload is {"symbol": ..., "bars": [...]}
// with every page concatenated.
func (c *Client) Bars(q BarsQuery) fetcher.Source {
	return &barsSource{client: c, query: q}
}

type barsSource struct {
	client *Client
	query  BarsQuery
}

type page struct {
	Bars          []json.RawMessage `json:"bars"`
	NextPageToken *string           `json:"next_page_token"`
}

type combined struct {
	Symbol string            `json:"symbol"`
	Bars   []json.RawMessage `json:"bars"`
}

// Name implements fetcher.Source
func (s *barsSource) Name() string {
	return fmt.Sprintf("alpaca:bars:%s:%s", s.query.Symbol, s.query.Timeframe)
}

// Fetch implements fetcher.Source
func (s *barsSource) Fetch(ctx context.Context) (json.RawMessage, error) {
	out := combined{Symbol: s.query.Symbol, Bars: []json.RawMessage{}}
	path := "/v2/stocks/" + s.query.Symbol + "/bars"

	token := ""
	for i := 0; i < s.client.maxPages; i++ {
		if err := s.client.limiter.Wait(ctx, ratelimit.APIAlpaca); err != nil {
			return nil, fetcher.ClassifyTransportError(err)
		}

		req := s.client.client.R().SetQueryParams(map[string]string{
			"start":      s.query.Start,
			"end":        s.query.End,
			"timeframe":  s.query.Timeframe,
			"feed":       "iex",
			"adjustment": "all",
			"limit":      pageLimit,
		})
		if token != "" {
			req.SetQueryParam("page_token", token)
		}

		raw, err := fetcher.GetJSON(ctx, req, path)
		if err != nil {
			return nil, fmt.Errorf("alpaca bars request failed for %s: %w", s.query.Symbol, err)
		}

		var p page
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fetcher.NewValidationError("unexpected alpaca bars body: " + err.Error())
		}
		out.Bars = append(out.Bars, p.Bars...)

		if p.NextPageToken == nil || *p.NextPageToken == "" {
			break
		}
		token = *p.NextPageToken
	}

	return json.Marshal(out)
}
