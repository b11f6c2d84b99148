package aggregator

import (
	"context"
	"slices"
	"time"

	"marketscout/internal/alpaca"
	"marketscout/internal/cache"
	"marketscout/internal/fetcher"
)

// TaskBars identifies the single bars task.
const TaskBars = "bars"

// BarsSource builds the bars upstream call for a query.
type BarsSource interface {
	Bars(q alpaca.BarsQuery) fetcher.Source
}

// StocksResult is the stocks family payload.
type StocksResult struct {
	Symbol    string       `json:"symbol"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Timeframe string       `json:"timeframe"`
	Timestamp time.Time    `json:"timestamp"`
	Bars      []alpaca.Bar `json:"bars"`
}

// Stocks serves historical bars.
type Stocks struct {
	cache  *cache.Cache
	source BarsSource
	opts   Options
}

// NewStocks creates the stocks orchestrator
func NewStocks(c *cache.Cache, source BarsSource, opts Options) *Stocks {
	return &Stocks{cache: c, source: source, opts: opts.withDefaults()}
}

// Get returns the bars selected by q. An empty series is ErrNotFound.
func (s *Stocks) Get(ctx context.Context, q alpaca.BarsQuery) (StocksResult, error) {
	return withDeadline(ctx, s.opts.RequestTimeout, func(ctx context.Context) (StocksResult, error) {
		return s.get(ctx, q)
	})
}

func (s *Stocks) get(ctx context.Context, q alpaca.BarsQuery) (StocksResult, error) {
	key := cache.Key(q.Symbol, q.Start, q.End, q.Timeframe)
	if res, ok := cache.Get[StocksResult](s.cache, cache.ClassStocks, key); ok {
		s.opts.Logger.Debug("cache hit", "class", cache.ClassStocks, "key", key)
		res.Bars = slices.Clone(res.Bars)
		return res, nil
	}

	raw, err := fetchOne(ctx, TaskBars, s.source.Bars(q), s.opts.TaskTimeout)
	if err != nil {
		return StocksResult{}, err
	}

	bars, err := alpaca.ParseBars(raw)
	if err != nil {
		return StocksResult{}, upstreamFailure(TaskBars, err)
	}
	if len(bars) == 0 {
		return StocksResult{}, notFound(TaskBars, "No stock data found for %s", q.Symbol)
	}

	res := StocksResult{
		Symbol:    q.Symbol,
		Start:     q.Start,
		End:       q.End,
		Timeframe: q.Timeframe,
		Timestamp: s.opts.Now().UTC(),
		Bars:      bars,
	}
	store(s.cache, s.opts.Logger, cache.ClassStocks, key, res)

	res.Bars = slices.Clone(bars)
	return res, nil
}
