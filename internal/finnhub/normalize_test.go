package finnhub

import (
	"encoding/json"
	"errors"
	"testing"
)

const earningsBody = `[
	{"actual": 1.53, "estimate": 1.43, "period": "2023-06-30", "quarter": 3, "surprise": 0.1, "surprisePercent": 6.993, "symbol": "AAPL", "year": 2023},
	{"actual": 1.46, "estimate": 1.39, "period": "2023-09-30", "quarter": 4, "surprise": 0.07, "surprisePercent": 5.0359, "symbol": "AAPL", "year": 2023},
	{"actual": 2.18, "estimate": 2.1, "period": "2023-12-31", "quarter": 1, "surprise": 0.08, "surprisePercent": 3.8095, "symbol": "AAPL", "year": 2024},
	{"actual": 1.52, "estimate": 1.43, "period": "2023-03-31", "quarter": 2, "surprise": 0.09, "surprisePercent": 6.2937, "symbol": "AAPL", "year": 2023},
	{"actual": 1.88, "estimate": 1.94, "period": "2022-12-31", "quarter": 1, "surprise": -0.06, "surprisePercent": -3.0928, "symbol": "AAPL", "year": 2023}
]`

func TestNormalizeEarnings_SortsAndTrims(t *testing.T) {
	points, err := NormalizeEarnings(json.RawMessage(earningsBody), DefaultMaxQuarters)
	if err != nil {
		t.Fatalf("NormalizeEarnings() returned unexpected error: %v", err)
	}

	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}

	wantQuarters := []string{"Q2 2023", "Q3 2023", "Q4 2023", "Q1 2024"}
	for i, want := range wantQuarters {
		if points[i].Quarter != want {
			t.Errorf("points[%d].Quarter = %q, want %q", i, points[i].Quarter, want)
		}
	}

	last := points[3]
	if last.Actual != 2.18 || last.Expected != 2.1 {
		t.Errorf("last point = %+v, want actual 2.18 expected 2.1", last)
	}
	if last.Surprise != "3.81" {
		t.Errorf("last.Surprise = %q, want \"3.81\"", last.Surprise)
	}
}

func TestNormalizeEarnings_DropsUnusableEntries(t *testing.T) {
	body := `[
		{"actual": null, "estimate": 1.5, "period": "2024-03-31", "quarter": 2, "year": 2024},
		{"actual": 1.2, "estimate": "n/a", "period": "garbage", "quarter": 1, "year": 2024},
		{"actual": "1.10", "estimate": null, "period": "2023-12-31", "quarter": 0}
	]`

	points, err := NormalizeEarnings(json.RawMessage(body), 0)
	if err != nil {
		t.Fatalf("NormalizeEarnings() returned unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1: %+v", len(points), points)
	}

	p := points[0]
	if p.Actual != 1.1 || p.Expected != 0 {
		t.Errorf("point = %+v, want actual 1.1 expected 0", p)
	}
	if p.Quarter != "Q4 2023" {
		t.Errorf("Quarter = %q, want derived \"Q4 2023\"", p.Quarter)
	}
	if p.Surprise != "0.00" {
		t.Errorf("Surprise = %q, want \"0.00\"", p.Surprise)
	}
}

func TestNormalizeEarnings_Empty(t *testing.T) {
	points, err := NormalizeEarnings(json.RawMessage(`[]`), 4)
	if err != nil {
		t.Fatalf("NormalizeEarnings() returned unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points, want 0", len(points))
	}
}

func TestNormalizeEarnings_NotAList(t *testing.T) {
	if _, err := NormalizeEarnings(json.RawMessage(`{"error": "x"}`), 4); err == nil {
		t.Error("NormalizeEarnings() expected error for object payload, got nil")
	}
}

func TestParseProfile(t *testing.T) {
	body := `{
		"country": "US",
		"currency": "USD",
		"exchange": "NASDAQ NMS - GLOBAL MARKET",
		"finnhubIndustry": "Technology",
		"ipo": "1980-12-12",
		"logo": "https://static2.finnhub.io/file/publicdatany/finnhubimage/stock_logo/AAPL.png",
		"marketCapitalization": 2871523.5,
		"name": "Apple Inc",
		"ticker": "AAPL",
		"weburl": "https://www.apple.com/"
	}`

	p, err := ParseProfile(json.RawMessage(body))
	if err != nil {
		t.Fatalf("ParseProfile() returned unexpected error: %v", err)
	}

	if p.Name != "Apple Inc" || p.Industry != "Technology" || p.Ticker != "AAPL" {
		t.Errorf("profile = %+v", p)
	}
	if p.MarketCap != 2871523.5 {
		t.Errorf("MarketCap = %v, want 2871523.5", p.MarketCap)
	}
}

func TestParseProfile_EmptyObject(t *testing.T) {
	p, err := ParseProfile(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("ParseProfile() returned unexpected error: %v", err)
	}
	if p != (Profile{}) {
		t.Errorf("ParseProfile({}) = %+v, want zero value", p)
	}
}

func TestParseProfile_GarbageMarketCap(t *testing.T) {
	p, err := ParseProfile(json.RawMessage(`{"name": "X", "marketCapitalization": "NaN"}`))
	if err != nil {
		t.Fatalf("ParseProfile() returned unexpected error: %v", err)
	}
	if p.MarketCap != 0 {
		t.Errorf("MarketCap = %v, want 0", p.MarketCap)
	}
}

func TestParseMetrics(t *testing.T) {
	body := `{
		"metric": {
			"10DayAverageTradingVolume": 52.3,
			"52WeekHigh": 199.62,
			"52WeekLow": 164.08,
			"grossMarginTTM": 45.03,
			"peTTM": 30.1
		},
		"metricType": "all",
		"symbol": "AAPL"
	}`

	m, err := ParseMetrics(json.RawMessage(body))
	if err != nil {
		t.Fatalf("ParseMetrics() returned unexpected error: %v", err)
	}

	want := Metrics{PERatio: 30.1, WeekHigh52: 199.62, WeekLow52: 164.08, GrossMargin: 45.03, Volume10Day: 52.3}
	if m != want {
		t.Errorf("ParseMetrics() = %+v, want %+v", m, want)
	}

	m = m.WithMarketCap(Profile{MarketCap: 3000000})
	if m.MarketCap != 3e12 {
		t.Errorf("MarketCap = %v, want 3e12", m.MarketCap)
	}
}

func TestWithMarketCap_Overflow(t *testing.T) {
	p, err := ParseProfile(json.RawMessage(`{"name": "X", "marketCapitalization": 1e305}`))
	if err != nil {
		t.Fatalf("ParseProfile() returned unexpected error: %v", err)
	}

	m := Metrics{}.WithMarketCap(p)
	if m.MarketCap != 0 {
		t.Errorf("MarketCap = %v, want 0", m.MarketCap)
	}
}

func TestParseMetrics_FallbackPE(t *testing.T) {
	m, err := ParseMetrics(json.RawMessage(`{"metric": {"peBasicExclExtraTTM": 28.5}}`))
	if err != nil {
		t.Fatalf("ParseMetrics() returned unexpected error: %v", err)
	}
	if m.PERatio != 28.5 {
		t.Errorf("PERatio = %v, want 28.5", m.PERatio)
	}
}

func TestErrorPayloadRoundTrip(t *testing.T) {
	raw := ErrorPayload(errors.New("timeout error: request timed out"))

	msg, ok := PayloadError(raw)
	if !ok || msg != "timeout error: request timed out" {
		t.Errorf("PayloadError() = %q, %v", msg, ok)
	}

	if _, ok := PayloadError(json.RawMessage(`{"error": "x", "name": "Apple"}`)); ok {
		t.Error("objects with other fields are not placeholders")
	}
	if _, ok := PayloadError(json.RawMessage(`[1,2]`)); ok {
		t.Error("lists are not placeholders")
	}
}

func TestRecord_Clone(t *testing.T) {
	r := Record{
		Symbol:   "AAPL",
		Earnings: []EarningsPoint{{Quarter: "Q1 2024"}},
		Warnings: []string{"w"},
		Raw:      RawData{Profile: json.RawMessage(`{"a":1}`)},
	}

	c := r.Clone()
	c.Earnings[0].Quarter = "changed"
	c.Warnings[0] = "changed"
	c.Raw.Profile[2] = 'b'

	if r.Earnings[0].Quarter != "Q1 2024" || r.Warnings[0] != "w" || string(r.Raw.Profile) != `{"a":1}` {
		t.Error("Clone() shares memory with the original")
	}
}
