package convert

import (
	"fmt"
	"strings"
)

// TemperatureUnit is a unit of temperature.
type TemperatureUnit int

// Supported temperature units.
const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
)

const (
	kelvinOffset     = 273.15
	fahrenheitOffset = 32.0
	fahrenheitScale  = 9.0 / 5.0
)

// TemperatureUnits returns every temperature unit in display order.
func TemperatureUnits() []TemperatureUnit {
	return []TemperatureUnit{Celsius, Fahrenheit, Kelvin}
}

// Name returns the long display name.
func (u TemperatureUnit) Name() string {
	switch u {
	case Celsius:
		return "Degree Celsius"
	case Fahrenheit:
		return "Degree Fahrenheit"
	case Kelvin:
		return "Kelvin"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", int(u))
	}
}

// Symbol returns the short unit symbol.
func (u TemperatureUnit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "?"
	}
}

func (u TemperatureUnit) String() string { return u.Symbol() }

// ParseTemperatureUnit accepts "C", "°C", "celsius", "Degree Celsius" and the
// equivalents for the other units.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "°")
	for _, u := range TemperatureUnits() {
		short := strings.TrimPrefix(u.Symbol(), "°")
		long := strings.TrimPrefix(u.Name(), "Degree ")
		if strings.EqualFold(s, short) || strings.EqualFold(s, long) || strings.EqualFold(s, u.Name()) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: temperature %q", ErrUnknownUnit, s)
}

// ConvertTemperature converts v between temperature units via Kelvin.
func ConvertTemperature(v float64, from, to TemperatureUnit) float64 {
	if from == to {
		return v
	}
	return fromKelvin(toKelvin(v, from), to)
}

func toKelvin(v float64, u TemperatureUnit) float64 {
	switch u {
	case Celsius:
		return v + kelvinOffset
	case Fahrenheit:
		return (v-fahrenheitOffset)/fahrenheitScale + kelvinOffset
	case Kelvin:
		return v
	default:
		return v
	}
}

func fromKelvin(k float64, u TemperatureUnit) float64 {
	switch u {
	case Celsius:
		return k - kelvinOffset
	case Fahrenheit:
		return (k-kelvinOffset)*fahrenheitScale + fahrenheitOffset
	case Kelvin:
		return k
	default:
		return k
	}
}
