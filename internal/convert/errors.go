package convert

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnknownUnit is returned when a unit name cannot be parsed.
	ErrUnknownUnit = constError("unknown unit")

	// ErrNoRates indicates the rate table is empty or keyed to another base currency.
	ErrNoRates = constError("no exchange rates for base currency")

	// ErrUnknownRate indicates the rate table has no entry for the target currency.
	ErrUnknownRate = constError("no exchange rate for currency")

	// ErrUnknownCurrency is returned for codes that are not ISO 4217 currencies.
	ErrUnknownCurrency = constError("unknown currency")
)
