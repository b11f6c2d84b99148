package aggregator

import (
	"context"
	"encoding/json"
	"slices"

	"marketscout/internal/cache"
	"marketscout/internal/fetcher"
	"marketscout/internal/finnhub"
	"marketscout/internal/quality"
)

// Task identifiers of the finnhub fan-out round.
const (
	TaskEarnings = "earnings"
	TaskProfile  = "profile"
	TaskMetrics  = "metrics"
)

// FinnhubSources builds the upstream calls merged into one record.
type FinnhubSources interface {
	Earnings(symbol string) fetcher.Source
	Profile(symbol string) fetcher.Source
	Metrics(symbol string) fetcher.Source
}

// Finnhub merges earnings, profile and metrics into a finnhub.Record and
// caches it when the quality gate allows. The profile is cached on its own
// class, keyed by symbol alone, and reused across company names.
type Finnhub struct {
	cache       *cache.Cache
	sources     FinnhubSources
	gate        *quality.Gate
	opts        Options
	maxQuarters int
}

// NewFinnhub creates the finnhub orchestrator. maxQuarters <= 0 keeps
// finnhub.DefaultMaxQuarters.
func NewFinnhub(c *cache.Cache, sources FinnhubSources, gate *quality.Gate, maxQuarters int, opts Options) *Finnhub {
	if gate == nil {
		gate = quality.NewGate(quality.DefaultQuorum, nil)
	}
	if maxQuarters <= 0 {
		maxQuarters = finnhub.DefaultMaxQuarters
	}
	return &Finnhub{
		cache:       c,
		sources:     sources,
		gate:        gate,
		opts:        opts.withDefaults(),
		maxQuarters: maxQuarters,
	}
}

// Get returns the merged record for symbol. It fails only when earnings are
// unavailable or the request deadline passes; every other degraded source is
// reported through the record's warnings.
func (f *Finnhub) Get(ctx context.Context, symbol, companyName string) (finnhub.Record, error) {
	return withDeadline(ctx, f.opts.RequestTimeout, func(ctx context.Context) (finnhub.Record, error) {
		return f.get(ctx, symbol, companyName)
	})
}

func (f *Finnhub) get(ctx context.Context, symbol, companyName string) (finnhub.Record, error) {
	logger := f.opts.Logger.With("symbol", symbol)

	key := cache.Key(symbol, companyName)
	if rec, ok := cache.Get[finnhub.Record](f.cache, cache.ClassFinnhub, key); ok {
		logger.Debug("cache hit", "class", cache.ClassFinnhub)
		return rec.Clone(), nil
	}

	profileKey := cache.Key(symbol)
	cachedProfile, haveProfile := cache.Get[finnhub.CachedProfile](f.cache, cache.ClassProfile, profileKey)

	tasks := []fetcher.Task{
		{ID: TaskEarnings, Source: f.sources.Earnings(symbol)},
		{ID: TaskMetrics, Source: f.sources.Metrics(symbol)},
	}
	if !haveProfile {
		tasks = append(tasks, fetcher.Task{ID: TaskProfile, Source: f.sources.Profile(symbol)})
	}

	logger.Debug("cache miss, fetching", "tasks", len(tasks), "profile_cached", haveProfile)
	results := fetcher.Index(fetcher.FetchAll(ctx, tasks, f.opts.TaskTimeout))

	earnings := results[TaskEarnings]
	if !earnings.OK() {
		return finnhub.Record{}, upstreamFailure(TaskEarnings, earnings.Err)
	}
	points, err := finnhub.NormalizeEarnings(earnings.Value, f.maxQuarters)
	if err != nil {
		return finnhub.Record{}, upstreamFailure(TaskEarnings, err)
	}
	if len(points) == 0 {
		return finnhub.Record{}, notFound(TaskEarnings, "No earnings data found for %s", symbol)
	}

	for id, r := range results {
		if !r.OK() && id != TaskEarnings {
			logger.Warn("source failed, continuing without it", "task", id, "error", r.Err)
		}
	}

	record := finnhub.Record{
		Symbol:      symbol,
		CompanyName: companyName,
		Timestamp:   f.opts.Now().UTC(),
		Earnings:    points,
		Raw:         finnhub.RawData{Earnings: earnings.Value},
	}

	profileFetched := false
	if haveProfile {
		record.Profile = cachedProfile.Profile
		record.Raw.Profile = slices.Clone(cachedProfile.Raw)
		record.ProfileFromCache = true
	} else {
		record.Raw.Profile = decode(results[TaskProfile], func(raw json.RawMessage) error {
			p, err := finnhub.ParseProfile(raw)
			record.Profile = p
			return err
		})
		profileFetched = results[TaskProfile].OK()
	}

	var metrics finnhub.Metrics
	record.Raw.Metrics = decode(results[TaskMetrics], func(raw json.RawMessage) error {
		m, err := finnhub.ParseMetrics(raw)
		metrics = m
		return err
	})
	record.Metrics = metrics.WithMarketCap(record.Profile)

	verdict := f.gate.Evaluate(record)
	record.Warnings = verdict.Warnings

	if verdict.EligibleForCache {
		store(f.cache, logger, cache.ClassFinnhub, key, record.Clone())
	} else {
		logger.Info("record not cached", "meaningful", verdict.Signals.Meaningful(), "market_cap", verdict.Signals.MarketCap)
	}

	if profileFetched && verdict.ProfileEligible {
		store(f.cache, logger, cache.ClassProfile, profileKey, finnhub.CachedProfile{
			Profile: record.Profile,
			Raw:     slices.Clone(record.Raw.Profile),
		})
	}

	return record, nil
}

// decode hands a successful result to parse and returns the raw payload to
// keep. Failures, including parse failures, become an error placeholder.
func decode(r fetcher.Result, parse func(json.RawMessage) error) json.RawMessage {
	if !r.OK() {
		return finnhub.ErrorPayload(r.Err)
	}
	if err := parse(r.Value); err != nil {
		return finnhub.ErrorPayload(err)
	}
	return r.Value
}
