// Package cache is the process-local, read-through TTL cache shared by every
// request family.
//
// Entries are grouped by Class and each class carries its own TTL. Expiration
// is lazy: an expired entry stays in memory until a Lookup touches it, at which
// point it is evicted. There is no background sweep and no capacity bound, so
// Stats may count expired-but-untouched entries and memory grows with the
// number of distinct keys seen.
package cache

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// Class is a logical data class. The class decides expiration, never the key.
type Class string

const (
	ClassNews    Class = "news"
	ClassFinnhub Class = "finnhub"
	ClassSearch  Class = "search"
	ClassStocks  Class = "stocks"
	ClassProfile Class = "profile"
)

// ErrUnknownClass is returned when storing into a class the cache was not built with.
var ErrUnknownClass = errors.New("unknown cache class")

// Entry is one cached payload. Payloads are treated as immutable once stored.
type Entry struct {
	Payload  any
	StoredAt time.Time
}

// ClassStats is a point-in-time view of one class.
type ClassStats struct {
	Class    Class         `json:"class"`
	TTL      time.Duration `json:"-"`
	TTLHours float64       `json:"ttl_hours"`
	Total    int           `json:"total_entries"`
	Valid    int           `json:"valid_entries"`
	Expired  int           `json:"expired_entries"`
}

type classStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]Entry
}

// Cache maps (class, key) to payloads with per-class expiration.
// It is safe for concurrent use; each class has its own lock.
type Cache struct {
	classes map[Class]*classStore
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Tests use it to advance time.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// Hours converts a fractional hour count into a Duration, so a 6-minute class
// can be configured as 0.1.
func Hours(h float64) time.Duration {
	return time.Duration(math.Round(h * float64(time.Hour)))
}

// DefaultTTLs returns the TTL table used when configuration does not override it.
func DefaultTTLs() map[Class]time.Duration {
	return map[Class]time.Duration{
		ClassNews:    Hours(1),
		ClassFinnhub: Hours(6),
		ClassSearch:  Hours(0.5),
		ClassStocks:  Hours(0.1),
		ClassProfile: Hours(168),
	}
}

// New creates a cache with one map per class in ttls.
func New(ttls map[Class]time.Duration, opts ...Option) *Cache {
	c := &Cache{
		classes: make(map[Class]*classStore, len(ttls)),
		now:     time.Now,
	}
	for class, ttl := range ttls {
		c.classes[class] = &classStore{
			ttl:     ttl,
			entries: make(map[string]Entry),
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds a cache key from request parameters. Parts are trimmed and
// lower-cased so requests differing only in case share a key.
func Key(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(normalized, ":")
}

// TTL returns the expiration configured for class, or 0 if unknown.
func (c *Cache) TTL(class Class) time.Duration {
	s, ok := c.classes[class]
	if !ok {
		return 0
	}
	return s.ttl
}

// Lookup returns the payload stored under (class, key) if it is still valid.
// An expired entry is evicted as a side effect.
func (c *Cache) Lookup(class Class, key string) (any, bool) {
	s, ok := c.classes[class]
	if !ok {
		return nil, false
	}

	now := c.now()

	s.mu.RLock()
	entry, found := s.entries[key]
	s.mu.RUnlock()

	if !found {
		return nil, false
	}
	if s.valid(entry, now) {
		return entry.Payload, true
	}

	s.mu.Lock()
	// Another request may have stored a fresh value in between.
	if current, still := s.entries[key]; still && !s.valid(current, now) {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	return nil, false
}

// Store records payload under (class, key). The last write wins.
func (c *Cache) Store(class Class, key string, payload any) error {
	s, ok := c.classes[class]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}

	entry := Entry{Payload: payload, StoredAt: c.now()}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	return nil
}

// Clear drops every entry in every class.
func (c *Cache) Clear() {
	for _, s := range c.classes {
		s.mu.Lock()
		s.entries = make(map[string]Entry)
		s.mu.Unlock()
	}
}

// Stats reports entry counts per class, sorted by class name. It does not
// evict anything.
func (c *Cache) Stats() []ClassStats {
	now := c.now()
	out := make([]ClassStats, 0, len(c.classes))

	for class, s := range c.classes {
		st := ClassStats{
			Class:    class,
			TTL:      s.ttl,
			TTLHours: s.ttl.Hours(),
		}

		s.mu.RLock()
		st.Total = len(s.entries)
		for _, e := range s.entries {
			if s.valid(e, now) {
				st.Valid++
			}
		}
		s.mu.RUnlock()

		st.Expired = st.Total - st.Valid
		out = append(out, st)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}

func (s *classStore) valid(e Entry, now time.Time) bool {
	return now.Sub(e.StoredAt) < s.ttl
}

// Get is a typed Lookup. A payload of a different type is reported as absent.
func Get[T any](c *Cache, class Class, key string) (T, bool) {
	var zero T

	payload, ok := c.Lookup(class, key)
	if !ok {
		return zero, false
	}

	v, ok := payload.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
