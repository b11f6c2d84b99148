package aggregator

import (
	"context"
	"slices"
	"time"

	"marketscout/internal/cache"
	"marketscout/internal/fetcher"
	"marketscout/internal/marketaux"
)

// TaskNews identifies the single news task.
const TaskNews = "news"

// NewsSource builds the news upstream call for a symbol.
type NewsSource interface {
	News(symbol string) fetcher.Source
}

// NewsResult is the news family payload.
type NewsResult struct {
	Symbol      string              `json:"symbol"`
	CompanyName string              `json:"company_name"`
	Timestamp   time.Time           `json:"timestamp"`
	Data        []marketaux.Article `json:"data"`
}

// News serves recent articles per symbol.
type News struct {
	cache  *cache.Cache
	source NewsSource
	opts   Options
}

// NewNews creates the news orchestrator
func NewNews(c *cache.Cache, source NewsSource, opts Options) *News {
	return &News{cache: c, source: source, opts: opts.withDefaults()}
}

// Get returns the articles for symbol. An empty feed is ErrNotFound.
func (n *News) Get(ctx context.Context, symbol, companyName string) (NewsResult, error) {
	return withDeadline(ctx, n.opts.RequestTimeout, func(ctx context.Context) (NewsResult, error) {
		return n.get(ctx, symbol, companyName)
	})
}

func (n *News) get(ctx context.Context, symbol, companyName string) (NewsResult, error) {
	key := cache.Key(symbol)
	if res, ok := cache.Get[NewsResult](n.cache, cache.ClassNews, key); ok {
		n.opts.Logger.Debug("cache hit", "class", cache.ClassNews, "symbol", symbol)
		res.Data = slices.Clone(res.Data)
		return res, nil
	}

	raw, err := fetchOne(ctx, TaskNews, n.source.News(symbol), n.opts.TaskTimeout)
	if err != nil {
		return NewsResult{}, err
	}

	articles, err := marketaux.ParseArticles(raw, symbol)
	if err != nil {
		return NewsResult{}, upstreamFailure(TaskNews, err)
	}
	if len(articles) == 0 {
		return NewsResult{}, notFound(TaskNews, "No news found for %s", symbol)
	}

	res := NewsResult{
		Symbol:      symbol,
		CompanyName: companyName,
		Timestamp:   n.opts.Now().UTC(),
		Data:        articles,
	}
	store(n.cache, n.opts.Logger, cache.ClassNews, key, res)

	res.Data = slices.Clone(articles)
	return res, nil
}
