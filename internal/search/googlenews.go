// Package search scrapes news headlines for a company and summarizes their
// sentiment.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"resty.dev/v3"

	"marketscout/internal/fetcher"
	"marketscout/internal/ratelimit"
)

const (
	// DefaultBaseURL is the Google web search host.
	DefaultBaseURL = "https://www.google.com"

	// MaxHeadlines is how many headlines a search keeps.
	MaxHeadlines = 10

	userAgent = "Mozilla/5.0 (compatible; marketscout/1.0)"
)

// GoogleNews scrapes the Google News tab of a web search.
type GoogleNews struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewGoogleNews creates a new headline scraper
func NewGoogleNews(baseURL string, limiter *ratelimit.Limiter) *GoogleNews {
	return &GoogleNews{
		client: fetcher.NewHTTPClient(baseURL).
			SetHeader("Accept", "text/html").
			SetHeader("User-Agent", userAgent),
		limiter: limiter,
	}
}

// Headlines returns the source whose payload is a JSON array of headline
// strings for company.
func (g *GoogleNews) Headlines(company string) fetcher.Source {
	return &headlineSource{news: g, company: company}
}

type headlineSource struct {
	news    *GoogleNews
	company string
}

// Name implements fetcher.Source
func (s *headlineSource) Name() string {
	return "googlenews:headlines:" + s.company
}

// Fetch implements fetcher.Source
func (s *headlineSource) Fetch(ctx context.Context) (json.RawMessage, error) {
	if err := s.news.limiter.Wait(ctx, ratelimit.APIGoogleNews); err != nil {
		return nil, fetcher.ClassifyTransportError(err)
	}

	resp, err := s.news.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":   s.company + " news",
			"tbm": "nws",
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("google news request failed for %s: %w", s.company, fetcher.ClassifyTransportError(err))
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("google news request failed for %s: %w", s.company, fetcher.ClassifyHTTPError(resp.StatusCode()))
	}

	headlines, err := ExtractHeadlines(bytes.NewReader(resp.Bytes()), MaxHeadlines)
	if err != nil {
		return nil, fetcher.NewValidationError("unparseable search page: " + err.Error())
	}
	return json.Marshal(headlines)
}

// ExtractHeadlines returns the text of up to limit non-empty h3 elements in
// document order.
func ExtractHeadlines(r io.Reader, limit int) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	headlines := make([]string, 0, limit)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(headlines) >= limit {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.H3 {
			if text := nodeText(n); text != "" {
				headlines = append(headlines, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return headlines, nil
}

// nodeText returns the text below n with whitespace runs collapsed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
