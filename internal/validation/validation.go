// Package validation canonicalizes inbound request parameters before they
// reach the aggregators. The aggregators trust its output and do no further
// domain checks.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidInput marks malformed parameters (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownSymbol marks well-formed but untracked symbols (HTTP 404).
	ErrUnknownSymbol = errors.New("unknown symbol")
)

const (
	dateLayout       = "2006-01-02"
	maxSymbolLength  = 5
	minCompanyLength = 2
	maxCompanyLength = 100
	maxHistory       = 365 * 10 * 24 * time.Hour
)

// Timeframes are the bar sizes accepted by the stocks family.
var Timeframes = []string{"1Min", "5Min", "15Min", "1Hour", "1Day", "1Week"}

var (
	symbols      map[string]struct{}
	companies    map[string]struct{}
	timeframeSet map[string]struct{}
)

func init() {
	symbols = make(map[string]struct{}, len(companyNames)+len(untitledSymbols))
	companies = make(map[string]struct{}, len(companyNames))
	for sym, name := range companyNames {
		symbols[sym] = struct{}{}
		companies[name] = struct{}{}
	}
	for _, sym := range untitledSymbols {
		symbols[sym] = struct{}{}
	}

	timeframeSet = make(map[string]struct{}, len(Timeframes))
	for _, tf := range Timeframes {
		timeframeSet[tf] = struct{}{}
	}
}

// Error is a rejected request. Detail is safe to show to API clients.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func invalid(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Detail: fmt.Sprintf(format, args...)}
}

// StocksParams is a validated stocks request.
type StocksParams struct {
	Symbol    string
	Start     string
	End       string
	Timeframe string
}

// Validator holds the clock used for date bounds.
type Validator struct {
	now func() time.Time
}

// New creates a validator using the wall clock.
func New() *Validator {
	return &Validator{now: time.Now}
}

// NewWithClock creates a validator with a custom time source.
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Symbol trims and upper-cases raw and checks it against the tracked table.
func (v *Validator) Symbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))

	if symbol == "" || len(symbol) > maxSymbolLength {
		return "", invalid("Invalid symbol format")
	}
	if _, ok := symbols[symbol]; !ok {
		return "", &Error{
			Kind:   ErrUnknownSymbol,
			Detail: fmt.Sprintf("Symbol '%s' not supported. We track %d companies.", symbol, len(symbols)),
		}
	}
	return symbol, nil
}

// News validates a news request. The canonical name is mandatory.
func (v *Validator) News(rawSymbol string) (symbol, companyName string, err error) {
	symbol, err = v.Symbol(rawSymbol)
	if err != nil {
		return "", "", err
	}

	name, ok := companyNames[symbol]
	if !ok {
		return "", "", &Error{Kind: ErrUnknownSymbol, Detail: "Company name not found"}
	}
	return symbol, name, nil
}

// Finnhub validates a finnhub request. Symbols without a canonical name fall
// back to the symbol itself.
func (v *Validator) Finnhub(rawSymbol string) (symbol, companyName string, err error) {
	symbol, err = v.Symbol(rawSymbol)
	if err != nil {
		return "", "", err
	}

	if name, ok := companyNames[symbol]; ok {
		return symbol, name, nil
	}
	return symbol, symbol, nil
}

// Stocks validates a bars request.
func (v *Validator) Stocks(rawSymbol, start, end, timeframe string) (StocksParams, error) {
	symbol, err := v.Symbol(rawSymbol)
	if err != nil {
		return StocksParams{}, err
	}

	startDate, errStart := time.ParseInLocation(dateLayout, start, time.Local)
	endDate, errEnd := time.ParseInLocation(dateLayout, end, time.Local)
	if errStart != nil || errEnd != nil {
		return StocksParams{}, invalid("Invalid date format. Use YYYY-MM-DD")
	}

	if endDate.Before(startDate) {
		return StocksParams{}, invalid("End date must be after start date")
	}

	now := v.now()
	if startDate.After(now) || endDate.After(now) {
		return StocksParams{}, invalid("Cannot request future dates")
	}
	if startDate.Before(now.Add(-maxHistory)) {
		return StocksParams{}, invalid("Start date too far in past (max 10 years)")
	}

	if _, ok := timeframeSet[timeframe]; !ok {
		return StocksParams{}, invalid("Invalid timeframe. Must be one of: %s", strings.Join(Timeframes, ", "))
	}

	return StocksParams{
		Symbol:    symbol,
		Start:     start,
		End:       end,
		Timeframe: timeframe,
	}, nil
}

// Company validates a search request against the canonical company names.
func (v *Validator) Company(raw string) (string, error) {
	company := strings.TrimSpace(raw)

	if len(company) < minCompanyLength {
		return "", invalid("Company name too short")
	}
	if len(company) > maxCompanyLength {
		return "", invalid("Company name too long")
	}
	if _, ok := companies[company]; !ok {
		return "", invalid("Invalid Company")
	}
	return company, nil
}
