package alpaca

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bar is one OHLCV candle. T is the bar open time in Unix milliseconds.
type Bar struct {
	T int64   `json:"t"`
	O float64 `json:"o"`
	H float64 `json:"h"`
	L float64 `json:"l"`
	C float64 `json:"c"`
	V float64 `json:"v"`
}

type apiBar struct {
	T time.Time `json:"t"`
	O float64   `json:"o"`
	H float64   `json:"h"`
	L float64   `json:"l"`
	C float64   `json:"c"`
	V float64   `json:"v"`
}

// ParseBars decodes the payload produced by a bars source.
func ParseBars(raw json.RawMessage) ([]Bar, error) {
	var body struct {
		Bars []apiBar `json:"bars"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode alpaca bars: %w", err)
	}

	bars := make([]Bar, len(body.Bars))
	for i, b := range body.Bars {
		bars[i] = Bar{
			T: b.T.UnixMilli(),
			O: b.O,
			H: b.H,
			L: b.L,
			C: b.C,
			V: b.V,
		}
	}
	return bars, nil
}
