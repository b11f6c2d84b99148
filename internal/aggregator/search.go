package aggregator

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"marketscout/internal/cache"
	"marketscout/internal/fetcher"
	"marketscout/internal/search"
)

// TaskHeadlines identifies the single headline task.
const TaskHeadlines = "headlines"

// DegradedSentiment replaces the summary when the analyzer fails.
const DegradedSentiment = "Unable to analyze sentiment due to API error."

// HeadlineSource builds the headline scrape for a company.
type HeadlineSource interface {
	Headlines(company string) fetcher.Source
}

// SearchResult is the search family payload.
type SearchResult struct {
	Company   string    `json:"company"`
	Headlines []string  `json:"headlines"`
	Sentiment string    `json:"sentiment"`
	Timestamp time.Time `json:"timestamp"`
}

// Search scrapes headlines for a company and summarizes their sentiment.
type Search struct {
	cache    *cache.Cache
	source   HeadlineSource
	analyzer search.Analyzer
	opts     Options
}

// NewSearch creates the search orchestrator. A nil analyzer always degrades.
func NewSearch(c *cache.Cache, source HeadlineSource, analyzer search.Analyzer, opts Options) *Search {
	if analyzer == nil {
		analyzer = search.Unavailable{}
	}
	return &Search{cache: c, source: source, analyzer: analyzer, opts: opts.withDefaults()}
}

// Get returns headlines and a sentiment summary for company. Results with a
// degraded summary are returned but never cached.
func (s *Search) Get(ctx context.Context, company string) (SearchResult, error) {
	return withDeadline(ctx, s.opts.RequestTimeout, func(ctx context.Context) (SearchResult, error) {
		return s.get(ctx, company)
	})
}

func (s *Search) get(ctx context.Context, company string) (SearchResult, error) {
	key := cache.Key(company)
	if res, ok := cache.Get[SearchResult](s.cache, cache.ClassSearch, key); ok {
		s.opts.Logger.Debug("cache hit", "class", cache.ClassSearch, "company", company)
		res.Headlines = slices.Clone(res.Headlines)
		return res, nil
	}

	raw, err := fetchOne(ctx, TaskHeadlines, s.source.Headlines(company), s.opts.TaskTimeout)
	if err != nil {
		return SearchResult{}, err
	}

	var headlines []string
	if err := json.Unmarshal(raw, &headlines); err != nil {
		return SearchResult{}, upstreamFailure(TaskHeadlines, err)
	}
	if len(headlines) == 0 {
		return SearchResult{}, notFound(TaskHeadlines, "No news found")
	}

	res := SearchResult{
		Company:   company,
		Headlines: headlines,
		Timestamp: s.opts.Now().UTC(),
	}

	summary, err := s.analyzer.Analyze(ctx, company, headlines)
	if err != nil {
		s.opts.Logger.Warn("sentiment analysis failed", "company", company, "error", err)
		res.Sentiment = DegradedSentiment
		return res, nil
	}
	res.Sentiment = summary

	store(s.cache, s.opts.Logger, cache.ClassSearch, key, res)

	res.Headlines = slices.Clone(headlines)
	return res, nil
}
