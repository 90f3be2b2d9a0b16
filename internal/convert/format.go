package convert

import (
	"math"

	"github.com/shopspring/decimal"
)

// Display precision per screen, in decimal places.
const (
	SpeedPrecision       = 4
	TemperaturePrecision = 2
	CurrencyPrecision    = 2
)

// FormatValue renders v rounded half-to-even to at most places decimals, with
// trailing zeros and a dangling decimal point removed ("212", "62.1371").
// Non-finite values render as the empty string.
func FormatValue(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if places < 0 {
		places = 0
	}
	d := decimal.NewFromFloat(v).RoundBank(int32(places)) //nolint:gosec // places is a small display precision.
	if d.IsZero() {
		return "0"
	}
	return d.String()
}
