package finnhub

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"

	"marketscout/internal/fetcher"
	"marketscout/internal/ratelimit"
)

// DefaultBaseURL is the production Finnhub REST endpoint.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Client builds fetcher.Source values for the three Finnhub endpoints the
// aggregator merges.
type Client struct {
	apiKey  string
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewClient creates a new Finnhub client
func NewClient(apiKey, baseURL string, limiter *ratelimit.Limiter) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  fetcher.NewHTTPClient(baseURL),
		limiter: limiter,
	}
}

// Earnings returns the source for /stock/earnings.
func (c *Client) Earnings(symbol string) fetcher.Source {
	return c.endpoint("earnings", "/stock/earnings", map[string]string{"symbol": symbol})
}

// Profile returns the source for /stock/profile2.
func (c *Client) Profile(symbol string) fetcher.Source {
	return c.endpoint("profile", "/stock/profile2", map[string]string{"symbol": symbol})
}

// Metrics returns the source for /stock/metric with every metric group.
func (c *Client) Metrics(symbol string) fetcher.Source {
	return c.endpoint("metrics", "/stock/metric", map[string]string{
		"symbol": symbol,
		"metric": "all",
	})
}

func (c *Client) endpoint(name, path string, params map[string]string) *endpoint {
	return &endpoint{
		client: c,
		name:   name,
		path:   path,
		params: params,
	}
}

// endpoint is one Finnhub call bound to its query parameters
type endpoint struct {
	client *Client
	name   string
	path   string
	params map[string]string
}

// Name implements fetcher.Source
func (e *endpoint) Name() string {
	return fmt.Sprintf("finnhub:%s:%s", e.name, e.params["symbol"])
}

// Fetch implements fetcher.Source
func (e *endpoint) Fetch(ctx context.Context) (json.RawMessage, error) {
	if err := e.client.limiter.Wait(ctx, ratelimit.APIFinnhub); err != nil {
		return nil, fetcher.ClassifyTransportError(err)
	}

	req := e.client.client.R().
		SetQueryParams(e.params).
		SetQueryParam("token", e.client.apiKey)

	raw, err := fetcher.GetJSON(ctx, req, e.path)
	if err != nil {
		return nil, fmt.Errorf("finnhub %s request failed for %s: %w", e.name, e.params["symbol"], err)
	}
	return raw, nil
}
