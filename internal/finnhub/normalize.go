package finnhub

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"marketscout/internal/fetcher"
	"marketscout/internal/numeric"
)

// DefaultMaxQuarters is how many of the most recent quarters are kept.
const DefaultMaxQuarters = 4

// marketCapUnit converts profile2's marketCapitalization (millions) to units.
const marketCapUnit = 1e6

// earningEntry mirrors one element of /stock/earnings. Numbers are decoded
// loosely because Finnhub sends null for quarters that have not reported.
type earningEntry struct {
	Actual          any    `json:"actual"`
	Estimate        any    `json:"estimate"`
	Period          string `json:"period"`
	Quarter         any    `json:"quarter"`
	Year            any    `json:"year"`
	Surprise        any    `json:"surprise"`
	SurprisePercent any    `json:"surprisePercent"`
}

// NormalizeEarnings turns the raw earnings body into a chronological series of
// at most maxQuarters reported quarters. Entries without an actual EPS or a
// parseable period are dropped. An empty result is not an error here; the
// caller decides what "no usable quarters" means.
func NormalizeEarnings(raw json.RawMessage, maxQuarters int) ([]EarningsPoint, error) {
	var entries []earningEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fetcher.NewValidationError(fmt.Sprintf("earnings payload is not a list: %v", err))
	}

	type dated struct {
		at    time.Time
		point EarningsPoint
	}

	var usable []dated
	for _, e := range entries {
		if e.Actual == nil {
			continue
		}
		at, err := time.Parse("2006-01-02", strings.TrimSpace(e.Period))
		if err != nil {
			continue
		}

		quarter := int(numeric.Float(e.Quarter))
		if quarter < 1 || quarter > 4 {
			quarter = (int(at.Month())-1)/3 + 1
		}
		year := int(numeric.FloatOr(e.Year, float64(at.Year())))

		usable = append(usable, dated{
			at: at,
			point: EarningsPoint{
				Quarter:  fmt.Sprintf("Q%d %d", quarter, year),
				Period:   at.Format("2006-01-02"),
				Expected: numeric.Round(numeric.Float(e.Estimate), 4),
				Actual:   numeric.Round(numeric.Float(e.Actual), 4),
				Surprise: numeric.Fixed(numeric.Float(e.SurprisePercent), 2),
			},
		})
	}

	sort.SliceStable(usable, func(i, j int) bool { return usable[i].at.Before(usable[j].at) })

	if maxQuarters > 0 && len(usable) > maxQuarters {
		usable = usable[len(usable)-maxQuarters:]
	}

	points := make([]EarningsPoint, len(usable))
	for i, d := range usable {
		points[i] = d.point
	}
	return points, nil
}

// ParseProfile decodes /stock/profile2. Finnhub answers unknown symbols with
// an empty object, which yields a zero Profile rather than an error.
func ParseProfile(raw json.RawMessage) (Profile, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return Profile{}, fetcher.NewValidationError(fmt.Sprintf("profile payload is not an object: %v", err))
	}

	return Profile{
		Name:      str(body["name"]),
		Ticker:    str(body["ticker"]),
		Logo:      str(body["logo"]),
		Industry:  str(body["finnhubIndustry"]),
		Exchange:  str(body["exchange"]),
		Country:   str(body["country"]),
		Currency:  str(body["currency"]),
		WebURL:    str(body["weburl"]),
		IPO:       str(body["ipo"]),
		MarketCap: numeric.Float(body["marketCapitalization"]),
	}, nil
}

// ParseMetrics decodes the "metric" object of /stock/metric. MarketCap is not
// read from the payload; use WithMarketCap to derive it from the profile.
func ParseMetrics(raw json.RawMessage) (Metrics, error) {
	var body struct {
		Metric map[string]any `json:"metric"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Metrics{}, fetcher.NewValidationError(fmt.Sprintf("metrics payload is not an object: %v", err))
	}

	m := body.Metric
	pe := numeric.Float(m["peTTM"])
	if pe == 0 {
		pe = numeric.Float(m["peBasicExclExtraTTM"])
	}

	return Metrics{
		PERatio:     pe,
		WeekHigh52:  numeric.Float(m["52WeekHigh"]),
		WeekLow52:   numeric.Float(m["52WeekLow"]),
		GrossMargin: numeric.Float(m["grossMarginTTM"]),
		Volume10Day: numeric.Float(m["10DayAverageTradingVolume"]),
	}, nil
}

// WithMarketCap returns m with MarketCap recomputed from the profile.
func (m Metrics) WithMarketCap(p Profile) Metrics {
	m.MarketCap = numeric.Round(p.MarketCap*marketCapUnit, 2)
	return m
}

func str(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
