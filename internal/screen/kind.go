package screen

import (
	"fmt"
	"strings"
)

// Kind identifies a screen.
type Kind int

// Screens in menu order.
const (
	KindCalculator Kind = iota
	KindTemperature
	KindSpeed
	KindCurrency
)

// Kinds returns every screen in menu order.
func Kinds() []Kind {
	return []Kind{KindCalculator, KindTemperature, KindSpeed, KindCurrency}
}

func (k Kind) String() string {
	switch k {
	case KindCalculator:
		return "calculator"
	case KindTemperature:
		return "temperature"
	case KindSpeed:
		return "speed"
	case KindCurrency:
		return "currency"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title is the menu label.
func (k Kind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind resolves a screen name; "calc" is accepted for the calculator.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "calc" {
		return KindCalculator, nil
	}
	for _, k := range Kinds() {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown screen %q (want one of calculator, temperature, speed, currency)", s)
}
