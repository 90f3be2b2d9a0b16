package screen

import (
	"github.com/quickconvert/quickconvert/internal/keypad"
)

// Strategy supplies the domain-specific parts of a conversion screen.
type Strategy[U comparable] interface {
	// Convert maps v from one unit to another. An error clears the dependent field.
	Convert(v float64, from, to U) (float64, error)
	// Format renders a converted value for display.
	Format(v float64) string
	// DigitLimit is the maximum number of digits per field; 0 means unlimited.
	DigitLimit() int
	// AllowsSign reports whether the +/- key is meaningful.
	AllowsSign() bool
}

// ConversionState is an immutable two-field conversion snapshot. The
// inactive field always holds the conversion of the active one, or is empty
// when the active text is not a number.
type ConversionState[U comparable] struct {
	FromValue string
	ToValue   string
	FromUnit  U
	ToUnit    U
	Active    Field
}

// Value returns the text of field f.
func (s ConversionState[U]) Value(f Field) string {
	if f == FieldFrom {
		return s.FromValue
	}
	return s.ToValue
}

// Unit returns the unit of field f.
func (s ConversionState[U]) Unit(f Field) U {
	if f == FieldFrom {
		return s.FromUnit
	}
	return s.ToUnit
}

func (s ConversionState[U]) withValue(f Field, v string) ConversionState[U] {
	if f == FieldFrom {
		s.FromValue = v
	} else {
		s.ToValue = v
	}
	return s
}

func (s ConversionState[U]) withUnit(f Field, u U) ConversionState[U] {
	if f == FieldFrom {
		s.FromUnit = u
	} else {
		s.ToUnit = u
	}
	return s
}

// Reduce applies ev and returns the next snapshot. A rejected digit returns
// the unchanged state and a keypad.MaxDigitsError carrying the user notice.
func Reduce[U comparable](s ConversionState[U], ev Event, strategy Strategy[U]) (ConversionState[U], error) {
	active := s.Value(s.Active)

	switch e := ev.(type) {
	case DigitPressed:
		next, err := keypad.AppendDigit(active, e.D, strategy.DigitLimit())
		if err != nil {
			return s, err
		}
		return Recompute(s.withValue(s.Active, next), strategy), nil
	case DecimalPressed:
		return Recompute(s.withValue(s.Active, keypad.AppendDecimal(active)), strategy), nil
	case BackspacePressed:
		return Recompute(s.withValue(s.Active, keypad.Backspace(active)), strategy), nil
	case ClearPressed:
		return Recompute(s.withValue(s.Active, keypad.Clear(active)), strategy), nil
	case SignToggled:
		if !strategy.AllowsSign() {
			return s, nil
		}
		return Recompute(s.withValue(s.Active, keypad.ToggleSign(active)), strategy), nil
	case FieldActivated:
		s.Active = e.Field
		return s, nil
	case UnitSelected[U]:
		return Recompute(s.withUnit(e.Side, e.Unit), strategy), nil
	default:
		return s, nil
	}
}

// Recompute derives the inactive field from the active one.
func Recompute[U comparable](s ConversionState[U], strategy Strategy[U]) ConversionState[U] {
	source := s.Active
	target := source.Other()

	v, ok := keypad.ParseNumber(s.Value(source))
	if !ok {
		return s.withValue(target, "")
	}
	converted, err := strategy.Convert(v, s.Unit(source), s.Unit(target))
	if err != nil {
		return s.withValue(target, "")
	}
	return s.withValue(target, strategy.Format(converted))
}
