package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to TemperatureUnit
		want     float64
	}{
		{name: "boiling C to F", value: 100, from: Celsius, to: Fahrenheit, want: 212},
		{name: "freezing F to C", value: 32, from: Fahrenheit, to: Celsius, want: 0},
		{name: "C to K", value: 0, from: Celsius, to: Kelvin, want: 273.15},
		{name: "K to C", value: 0, from: Kelvin, to: Celsius, want: -273.15},
		{name: "F to K", value: -40, from: Fahrenheit, to: Kelvin, want: 233.15},
		{name: "K to F", value: 373.15, from: Kelvin, to: Fahrenheit, want: 212},
		{name: "minus forty meets", value: -40, from: Celsius, to: Fahrenheit, want: -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ConvertTemperature(tt.value, tt.from, tt.to), 1e-9)
		})
	}
}

func TestConvertTemperature_IdentityAndRoundTrip(t *testing.T) {
	for _, a := range TemperatureUnits() {
		for _, v := range []float64{-459.67, 0, 36.6, 1000} {
			assert.Equal(t, v, ConvertTemperature(v, a, a))
		}
		for _, b := range TemperatureUnits() {
			for _, v := range []float64{-40, 0, 36.6, 5000.5} {
				back := ConvertTemperature(ConvertTemperature(v, a, b), b, a)
				assert.InDelta(t, v, back, 1e-6, "%s -> %s -> %s", a, b, a)
			}
		}
	}
}

func TestParseTemperatureUnit(t *testing.T) {
	for in, want := range map[string]TemperatureUnit{
		"C":                 Celsius,
		"°C":                Celsius,
		"celsius":           Celsius,
		"F":                 Fahrenheit,
		"Degree Fahrenheit": Fahrenheit,
		"k":                 Kelvin,
		"Kelvin":            Kelvin,
	} {
		got, err := ParseTemperatureUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTemperatureUnit("rankine")
	require.ErrorIs(t, err, ErrUnknownUnit)
}
