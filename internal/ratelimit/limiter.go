package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// API represents the different external APIs we interact with
type API string

const (
	// APIFinnhub represents the Finnhub API (earnings, profile, metrics)
	APIFinnhub API = "finnhub"
	// APIMarketaux represents the Marketaux news API
	APIMarketaux API = "marketaux"
	// APIAlpaca represents the Alpaca market data API
	APIAlpaca API = "alpaca"
	// APIGoogleNews represents the Google News search page
	APIGoogleNews API = "googlenews"
)

// Limiter manages rate limits for different APIs
type Limiter struct {
	limiters map[API]*rate.Limiter
	mu       sync.RWMutex
}

// New creates a limiter from requests-per-second values per API.
// A rate <= 0 leaves that API unlimited.
func New(perSecond map[API]float64) *Limiter {
	l := &Limiter{
		limiters: make(map[API]*rate.Limiter),
	}
	for api, rps := range perSecond {
		l.Set(api, rps)
	}
	return l
}

// Unlimited returns a limiter that never blocks. Handy for tests.
func Unlimited() *Limiter {
	return New(nil)
}

// Set replaces the limit for one API.
func (l *Limiter) Set(api API, perSecond float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if perSecond <= 0 {
		delete(l.limiters, api)
		return
	}
	l.limiters[api] = rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Wait blocks until the rate limiter permits an event for the given API
// It returns an error if the context is canceled before the event can proceed
func (l *Limiter) Wait(ctx context.Context, api API) error {
	if l == nil {
		return nil
	}

	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether an event for the given API may happen now
func (l *Limiter) Allow(api API) bool {
	if l == nil {
		return true
	}

	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		return true
	}

	return limiter.Allow()
}
