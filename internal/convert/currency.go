package convert

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
)

// Default currency pairing for a fresh currency screen.
const (
	DefaultFromCurrency = "USD"
	DefaultToCurrency   = "INR"
)

// Currency is a selectable currency.
type Currency struct {
	Code string
	Name string
}

func (c Currency) String() string { return c.Code }

// WorldCurrencies returns the currencies offered by the currency screen.
func WorldCurrencies() []Currency {
	return []Currency{
		{Code: "USD", Name: "United States Dollar"},
		{Code: "EUR", Name: "Euro"},
		{Code: "JPY", Name: "Japanese Yen"},
		{Code: "GBP", Name: "British Pound"},
		{Code: "INR", Name: "Indian Rupee"},
	}
}

// LookupCurrency resolves an ISO 4217 code. Codes outside WorldCurrencies are
// accepted when x/text knows them; their Name is the code itself.
func LookupCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	iso := unit.String()
	for _, c := range WorldCurrencies() {
		if c.Code == iso {
			return c, nil
		}
	}
	return Currency{Code: iso, Name: iso}, nil
}

// MustCurrency is LookupCurrency for codes known at compile time.
func MustCurrency(code string) Currency {
	c, err := LookupCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// RateTable holds conversion rates keyed by currency code, all relative to Base.
type RateTable struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// IsEmpty reports whether the table carries no rates.
func (t RateTable) IsEmpty() bool {
	return len(t.Rates) == 0
}

// Rate returns the rate for code. The base currency always has rate 1.
func (t RateTable) Rate(code string) (float64, bool) {
	if code == t.Base && !t.IsEmpty() {
		return 1, true
	}
	r, ok := t.Rates[code]
	return r, ok
}

// ConvertCurrency converts v from one currency to another with a table fetched
// for from as base: v × rates[to]. The reverse direction, where to is the
// table's base, divides by rates[from].
func ConvertCurrency(v float64, from, to string, table RateTable) (float64, error) {
	if table.IsEmpty() {
		return 0, ErrNoRates
	}
	switch table.Base {
	case from:
		rate, ok := table.Rate(to)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownRate, to)
		}
		return v * rate, nil
	case to:
		rate, ok := table.Rate(from)
		if !ok || rate == 0 {
			return 0, fmt.Errorf("%w: %s", ErrUnknownRate, from)
		}
		return v / rate, nil
	default:
		return 0, fmt.Errorf("%w: table is for %s, not %s", ErrNoRates, table.Base, from)
	}
}
