// Package quality decides whether a merged Finnhub record is trustworthy
// enough to cache.
//
// Each source contributes a boolean "meaningful" signal. The main record is
// cacheable when the market capitalization is present and at least Quorum of
// the earnings/profile/metrics signals hold. The profile sub-record has its
// own, independent identity rule.
package quality

import (
	"fmt"
	"strings"

	"marketscout/internal/finnhub"
)

// AllValidated is the single warning reported when nothing is missing.
const AllValidated = "All data validated successfully"

// DefaultQuorum is the number of meaningful sources required for caching.
const DefaultQuorum = 2

// DefaultSentinels are identity values treated as "not available".
var DefaultSentinels = []string{"", "n/a", "null"}

const (
	WarnEarningsMissing  = "No earnings data available"
	WarnProfileMissing   = "Company profile incomplete (missing market cap or company name)"
	WarnMetricsMissing   = "Company metrics unavailable (market cap could not be derived)"
	WarnMarketCapMissing = "Market capitalization missing; result will not be cached"
	WarnIdentityMissing  = "Profile identity incomplete (missing logo or industry)"
)

// Signals are the individual per-source checks.
type Signals struct {
	Earnings  bool `json:"earnings"`
	Profile   bool `json:"profile"`
	Metrics   bool `json:"metrics"`
	MarketCap bool `json:"market_cap"`
	Identity  bool `json:"identity"`
}

// Meaningful counts the quorum signals that hold.
func (s Signals) Meaningful() int {
	n := 0
	for _, ok := range []bool{s.Earnings, s.Profile, s.Metrics} {
		if ok {
			n++
		}
	}
	return n
}

// Verdict is the outcome of one evaluation. It is derived from the record and
// never stored.
type Verdict struct {
	EligibleForCache bool
	ProfileEligible  bool
	Warnings         []string
	Signals          Signals
	// Completeness is the share of quorum signals that hold, in [0, 1].
	Completeness float64
}

// Gate evaluates merged records.
type Gate struct {
	quorum    int
	sentinels map[string]struct{}
}

// NewGate builds a gate. quorum <= 0 selects DefaultQuorum; a nil sentinel
// list selects DefaultSentinels. The empty string is always a sentinel.
func NewGate(quorum int, sentinels []string) *Gate {
	if quorum <= 0 {
		quorum = DefaultQuorum
	}
	if sentinels == nil {
		sentinels = DefaultSentinels
	}

	set := map[string]struct{}{"": {}}
	for _, s := range sentinels {
		set[normalize(s)] = struct{}{}
	}

	return &Gate{quorum: quorum, sentinels: set}
}

// Quorum returns the configured threshold.
func (g *Gate) Quorum() int {
	return g.quorum
}

// Evaluate computes the caching verdict for r.
func (g *Gate) Evaluate(r finnhub.Record) Verdict {
	s := Signals{
		Earnings:  len(r.Earnings) > 0,
		Profile:   r.Profile.MarketCap > 0 && strings.TrimSpace(r.Profile.Name) != "",
		Metrics:   r.Metrics.MarketCap > 0,
		MarketCap: r.Profile.MarketCap > 0,
		Identity:  g.IdentityMeaningful(r.Profile),
	}

	var warnings []string
	for _, src := range []struct {
		name string
		raw  []byte
	}{
		{"Earnings", r.Raw.Earnings},
		{"Profile", r.Raw.Profile},
		{"Metrics", r.Raw.Metrics},
	} {
		if msg, failed := finnhub.PayloadError(src.raw); failed {
			warnings = append(warnings, fmt.Sprintf("%s source failed: %s", src.name, msg))
		}
	}

	if !s.Earnings {
		warnings = append(warnings, WarnEarningsMissing)
	}
	if !s.Profile {
		warnings = append(warnings, WarnProfileMissing)
	}
	if !s.Metrics {
		warnings = append(warnings, WarnMetricsMissing)
	}
	if !s.MarketCap {
		warnings = append(warnings, WarnMarketCapMissing)
	}
	if !s.Identity {
		warnings = append(warnings, WarnIdentityMissing)
	}
	if len(warnings) == 0 {
		warnings = []string{AllValidated}
	}

	return Verdict{
		EligibleForCache: s.MarketCap && s.Meaningful() >= g.quorum,
		ProfileEligible:  s.Identity,
		Warnings:         warnings,
		Signals:          s,
		Completeness:     float64(s.Meaningful()) / 3,
	}
}

// IdentityMeaningful reports whether both logo and industry carry real values.
func (g *Gate) IdentityMeaningful(p finnhub.Profile) bool {
	return !g.sentinel(p.Logo) && !g.sentinel(p.Industry)
}

func (g *Gate) sentinel(v string) bool {
	_, ok := g.sentinels[normalize(v)]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
