package finnhub

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// EarningsPoint is one normalized quarter of EPS data.
type EarningsPoint struct {
	Quarter  string  `json:"quarter"`
	Period   string  `json:"period"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
	Surprise string  `json:"surprise"`
}

// Profile is the stable company identity block. It is cached on its own,
// longer-lived class and reused verbatim across requests.
type Profile struct {
	Name      string  `json:"name"`
	Ticker    string  `json:"ticker"`
	Logo      string  `json:"logo"`
	Industry  string  `json:"industry"`
	Exchange  string  `json:"exchange"`
	Country   string  `json:"country"`
	Currency  string  `json:"currency"`
	WebURL    string  `json:"weburl"`
	IPO       string  `json:"ipo"`
	MarketCap float64 `json:"marketCapitalization"`
}

// Metrics are the headline figures shown next to the earnings chart.
// MarketCap is recomputed from the profile, in currency units.
type Metrics struct {
	MarketCap   float64 `json:"marketCap"`
	PERatio     float64 `json:"peRatio"`
	WeekHigh52  float64 `json:"weekHigh52"`
	WeekLow52   float64 `json:"weekLow52"`
	GrossMargin float64 `json:"grossMargin"`
	Volume10Day float64 `json:"volume10Day"`
}

// RawData keeps each upstream body as received. A failed source holds an
// {"error": "..."} placeholder instead.
type RawData struct {
	Earnings json.RawMessage `json:"earnings"`
	Profile  json.RawMessage `json:"profile"`
	Metrics  json.RawMessage `json:"metrics"`
}

// Record is the merged cross-source result for one symbol.
type Record struct {
	Symbol           string          `json:"symbol"`
	CompanyName      string          `json:"company_name"`
	Timestamp        time.Time       `json:"timestamp"`
	Earnings         []EarningsPoint `json:"earnings_data"`
	Metrics          Metrics         `json:"company_metrics"`
	Profile          Profile         `json:"profile"`
	ProfileFromCache bool            `json:"profile_from_cache"`
	Raw              RawData         `json:"raw_data"`
	Warnings         []string        `json:"validation_warnings"`
}

// Clone returns a deep copy so cached records are never shared by reference.
func (r Record) Clone() Record {
	out := r
	out.Earnings = slices.Clone(r.Earnings)
	out.Warnings = slices.Clone(r.Warnings)
	out.Raw = RawData{
		Earnings: slices.Clone(r.Raw.Earnings),
		Profile:  slices.Clone(r.Raw.Profile),
		Metrics:  slices.Clone(r.Raw.Metrics),
	}
	return out
}

// CachedProfile is what the profile sub-cache stores: the parsed profile plus
// its raw body so a reuse is indistinguishable from a fresh fetch.
type CachedProfile struct {
	Profile Profile
	Raw     json.RawMessage
}

// ErrorPayload builds the inline placeholder kept in RawData for a failed source.
func ErrorPayload(err error) json.RawMessage {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return b
}

// PayloadError reports the message of an ErrorPayload placeholder.
func PayloadError(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return "", false
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || len(body) != 1 {
		return "", false
	}

	var msg string
	if err := json.Unmarshal(body["error"], &msg); err != nil {
		return "", false
	}
	return msg, true
}
