// Package numeric coerces loosely-typed upstream values into float64.
//
// Upstream providers return numbers as JSON numbers, numeric strings, null or
// occasionally garbage. Every numeric field that reaches the quality gate or a
// merged record passes through FloatOr so a bad value collapses to a fallback
// instead of faulting.
package numeric

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Float coerces v to float64 with a fallback of 0.
func Float(v any) float64 {
	return FloatOr(v, 0)
}

// FloatOr coerces v to float64. Missing, non-numeric, NaN and infinite values
// yield fallback.
func FloatOr(v any, fallback float64) float64 {
	switch t := v.(type) {
	case nil, bool:
		return fallback
	case string:
		if strings.TrimSpace(t) == "" {
			return fallback
		}
		v = strings.TrimSpace(t)
	case json.Number:
		v = t.String()
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// Positive reports whether v coerces to a strictly positive number.
func Positive(v any) bool {
	return Float(v) > 0
}

// Round rounds v half away from zero to the given number of decimal places.
// Non-finite values round to 0.
func Round(v float64, places int32) float64 {
	if !finite(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Fixed formats v with exactly places decimals, e.g. Fixed(3.14159, 2) == "3.14".
func Fixed(v float64, places int32) string {
	if !finite(v) {
		return decimal.Zero.StringFixed(places)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
