package screen

import (
	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/rates"
)

// CurrencyStrategy converts with a rate table fetched for the from currency.
type CurrencyStrategy struct {
	Rates     convert.RateTable
	Precision int
	Limit     int
}

// Convert implements Strategy.
func (c CurrencyStrategy) Convert(v float64, from, to convert.Currency) (float64, error) {
	return convert.ConvertCurrency(v, from.Code, to.Code, c.Rates)
}

// Format implements Strategy.
func (c CurrencyStrategy) Format(v float64) string { return convert.FormatValue(v, c.Precision) }

// DigitLimit implements Strategy.
func (c CurrencyStrategy) DigitLimit() int { return c.Limit }

// AllowsSign implements Strategy.
func (CurrencyStrategy) AllowsSign() bool { return false }

// CurrencyState is the currency screen snapshot. Rates are always keyed by
// the current FromUnit; Error is sticky until the next successful fetch.
type CurrencyState struct {
	ConversionState[convert.Currency]

	Rates    convert.RateTable
	Loading  bool
	Error    string
	FetchSeq uint64
}

// NewCurrencyState returns the currency screen defaults: 1 USD to INR, no rates yet.
func NewCurrencyState() CurrencyState {
	return CurrencyState{
		ConversionState: ConversionState[convert.Currency]{
			FromValue: "1",
			FromUnit:  convert.MustCurrency(convert.DefaultFromCurrency),
			ToUnit:    convert.MustCurrency(convert.DefaultToCurrency),
			Active:    FieldFrom,
		},
	}
}

// DisplayToValue is the text shown in the to field: the sticky error while
// one is set, the converted value otherwise.
func (s CurrencyState) DisplayToValue() string {
	if s.Error != "" {
		return s.Error
	}
	return s.ToValue
}

// FetchRequest asks the caller to fetch rates for Base and report back with Seq.
type FetchRequest struct {
	Base string
	Seq  uint64
}

// RatesRequested is delivered once when the screen opens.
type RatesRequested struct{}

// RatesLoaded reports a successful fetch.
type RatesLoaded struct {
	Seq   uint64
	Table convert.RateTable
}

// RatesFailed reports a failed fetch.
type RatesFailed struct {
	Seq uint64
	Err error
}

func (RatesRequested) screenEvent() {}
func (RatesLoaded) screenEvent()    {}
func (RatesFailed) screenEvent()    {}

// CurrencyReducer applies events to CurrencyState.
type CurrencyReducer struct {
	Precision int
	Limit     int
}

// NewCurrencyReducer returns a reducer with the default precision and digit limit.
func NewCurrencyReducer() CurrencyReducer {
	return CurrencyReducer{Precision: convert.CurrencyPrecision, Limit: CurrencyDigitLimit}
}

func (r CurrencyReducer) strategy(table convert.RateTable) CurrencyStrategy {
	return CurrencyStrategy{Rates: table, Precision: r.Precision, Limit: r.Limit}
}

// Reduce applies ev. A non-nil FetchRequest means the caller must start a
// fetch and deliver RatesLoaded or RatesFailed carrying the same Seq. Results
// for any other Seq are stale and ignored.
func (r CurrencyReducer) Reduce(s CurrencyState, ev Event) (CurrencyState, *FetchRequest, error) {
	switch e := ev.(type) {
	case RatesRequested:
		return s.beginFetch()
	case UnitSelected[convert.Currency]:
		if e.Side == FieldFrom {
			s.FromUnit = e.Unit
			s.Rates = convert.RateTable{}
			s.ConversionState = Recompute(s.ConversionState, r.strategy(s.Rates))
			return s.beginFetch()
		}
		s.ToUnit = e.Unit
		s.ConversionState = Recompute(s.ConversionState, r.strategy(s.Rates))
		return s, nil, nil
	case RatesLoaded:
		if e.Seq != s.FetchSeq || e.Table.Base != s.FromUnit.Code {
			return s, nil, nil
		}
		s.Rates = e.Table
		s.Loading = false
		s.Error = ""
		s.ConversionState = Recompute(s.ConversionState, r.strategy(s.Rates))
		return s, nil, nil
	case RatesFailed:
		if e.Seq != s.FetchSeq {
			return s, nil, nil
		}
		s.Loading = false
		s.Error = rates.Message(e.Err)
		return s, nil, nil
	default:
		next, err := Reduce(s.ConversionState, ev, r.strategy(s.Rates))
		s.ConversionState = next
		return s, nil, err
	}
}

func (s CurrencyState) beginFetch() (CurrencyState, *FetchRequest, error) {
	s.FetchSeq++
	s.Loading = true
	return s, &FetchRequest{Base: s.FromUnit.Code, Seq: s.FetchSeq}, nil
}
