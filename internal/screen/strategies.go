package screen

import (
	"github.com/quickconvert/quickconvert/internal/convert"
)

// Digit limits per screen.
const (
	SpeedDigitLimit       = 12
	TemperatureDigitLimit = 12
	CurrencyDigitLimit    = 10
)

// SpeedStrategy converts between speed units.
type SpeedStrategy struct {
	Precision int
	Limit     int
}

// NewSpeedStrategy returns the speed strategy with default precision and limit.
func NewSpeedStrategy() SpeedStrategy {
	return SpeedStrategy{Precision: convert.SpeedPrecision, Limit: SpeedDigitLimit}
}

// Convert implements Strategy.
func (SpeedStrategy) Convert(v float64, from, to convert.SpeedUnit) (float64, error) {
	return convert.ConvertSpeed(v, from, to), nil
}

// Format implements Strategy.
func (s SpeedStrategy) Format(v float64) string { return convert.FormatValue(v, s.Precision) }

// DigitLimit implements Strategy.
func (s SpeedStrategy) DigitLimit() int { return s.Limit }

// AllowsSign implements Strategy. Speeds are magnitudes.
func (SpeedStrategy) AllowsSign() bool { return false }

// TemperatureStrategy converts between temperature units.
type TemperatureStrategy struct {
	Precision int
	Limit     int
}

// NewTemperatureStrategy returns the temperature strategy with defaults.
func NewTemperatureStrategy() TemperatureStrategy {
	return TemperatureStrategy{Precision: convert.TemperaturePrecision, Limit: TemperatureDigitLimit}
}

// Convert implements Strategy.
func (TemperatureStrategy) Convert(v float64, from, to convert.TemperatureUnit) (float64, error) {
	return convert.ConvertTemperature(v, from, to), nil
}

// Format implements Strategy.
func (s TemperatureStrategy) Format(v float64) string { return convert.FormatValue(v, s.Precision) }

// DigitLimit implements Strategy.
func (s TemperatureStrategy) DigitLimit() int { return s.Limit }

// AllowsSign implements Strategy.
func (TemperatureStrategy) AllowsSign() bool { return true }

// SpeedState is the speed screen snapshot.
type SpeedState = ConversionState[convert.SpeedUnit]

// TemperatureState is the temperature screen snapshot.
type TemperatureState = ConversionState[convert.TemperatureUnit]

// NewSpeedState returns the speed screen defaults: km/h to mph, both fields empty.
func NewSpeedState() SpeedState {
	return SpeedState{
		FromUnit: convert.KilometersPerHour,
		ToUnit:   convert.MilesPerHour,
		Active:   FieldFrom,
	}
}

// NewTemperatureState returns the temperature screen defaults: °C to °F.
func NewTemperatureState() TemperatureState {
	return TemperatureState{
		FromUnit: convert.Celsius,
		ToUnit:   convert.Fahrenheit,
		Active:   FieldFrom,
	}
}
