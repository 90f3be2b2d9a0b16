package convert

import (
	"fmt"
	"strings"
)

// SpeedUnit is a unit of speed.
type SpeedUnit int

// Supported speed units.
const (
	KilometersPerHour SpeedUnit = iota
	MilesPerHour
	MetersPerSecond
	KilometersPerSecond
)

// Conversion factors relative to meters per second.
const (
	kmhPerMetersPerSecond = 3.6
	mphPerMetersPerSecond = 2.23694
	metersPerKilometer    = 1000
)

// SpeedUnits returns every speed unit in display order.
func SpeedUnits() []SpeedUnit {
	return []SpeedUnit{KilometersPerHour, MilesPerHour, MetersPerSecond, KilometersPerSecond}
}

// Name returns the long display name.
func (u SpeedUnit) Name() string {
	switch u {
	case KilometersPerHour:
		return "Kilometers/hour"
	case MilesPerHour:
		return "Miles/hour"
	case MetersPerSecond:
		return "Meters/second"
	case KilometersPerSecond:
		return "Kilometers/second"
	default:
		return fmt.Sprintf("SpeedUnit(%d)", int(u))
	}
}

// Symbol returns the short unit symbol, e.g. "km/h".
func (u SpeedUnit) Symbol() string {
	switch u {
	case KilometersPerHour:
		return "km/h"
	case MilesPerHour:
		return "mph"
	case MetersPerSecond:
		return "m/s"
	case KilometersPerSecond:
		return "km/s"
	default:
		return "?"
	}
}

func (u SpeedUnit) String() string { return u.Symbol() }

// slug is the flag-friendly spelling of a unit.
func (u SpeedUnit) slug() string {
	return strings.ReplaceAll(u.Symbol(), "/", "")
}

// ParseSpeedUnit accepts a symbol ("km/h"), a slug ("kmh") or a display name.
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	s = strings.TrimSpace(s)
	for _, u := range SpeedUnits() {
		if strings.EqualFold(s, u.Symbol()) || strings.EqualFold(s, u.slug()) || strings.EqualFold(s, u.Name()) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: speed %q", ErrUnknownUnit, s)
}

// ConvertSpeed converts v from one speed unit to another via meters per second.
func ConvertSpeed(v float64, from, to SpeedUnit) float64 {
	if from == to {
		return v
	}
	return fromMetersPerSecond(toMetersPerSecond(v, from), to)
}

func toMetersPerSecond(v float64, u SpeedUnit) float64 {
	switch u {
	case KilometersPerHour:
		return v / kmhPerMetersPerSecond
	case MilesPerHour:
		return v / mphPerMetersPerSecond
	case KilometersPerSecond:
		return v * metersPerKilometer
	case MetersPerSecond:
		return v
	default:
		return v
	}
}

func fromMetersPerSecond(v float64, u SpeedUnit) float64 {
	switch u {
	case KilometersPerHour:
		return v * kmhPerMetersPerSecond
	case MilesPerHour:
		return v * mphPerMetersPerSecond
	case KilometersPerSecond:
		return v / metersPerKilometer
	case MetersPerSecond:
		return v
	default:
		return v
	}
}
