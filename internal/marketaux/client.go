// Package marketaux fetches entity-filtered news articles from Marketaux.
package marketaux

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"

	"marketscout/internal/fetcher"
	"marketscout/internal/ratelimit"
)

// DefaultBaseURL is the production Marketaux endpoint.
const DefaultBaseURL = "https://api.marketaux.com/v1"

// Client creates news sources for individual symbols.
type Client struct {
	apiKey  string
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewClient creates a new Marketaux client
func NewClient(apiKey, baseURL string, limiter *ratelimit.Limiter) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  fetcher.NewHTTPClient(baseURL),
		limiter: limiter,
	}
}

// News returns the source for recent English news mentioning symbol.
func (c *Client) News(symbol string) fetcher.Source {
	return &newsSource{client: c, symbol: symbol}
}

type newsSource struct {
	client *Client
	symbol string
}

// Name implements fetcher.Source
func (s *newsSource) Name() string {
	return "marketaux:news:" + s.symbol
}

// Fetch implements fetcher.Source
func (s *newsSource) Fetch(ctx context.Context) (json.RawMessage, error) {
	if err := s.client.limiter.Wait(ctx, ratelimit.APIMarketaux); err != nil {
		return nil, fetcher.ClassifyTransportError(err)
	}

	req := s.client.client.R().SetQueryParams(map[string]string{
		"symbols":         s.symbol,
		"filter_entities": "true",
		"language":        "en",
		"api_token":       s.client.apiKey,
	})

	raw, err := fetcher.GetJSON(ctx, req, "/news/all")
	if err != nil {
		return nil, fmt.Errorf("marketaux news request failed for %s: %w", s.symbol, err)
	}
	return raw, nil
}
