package calc

import "github.com/quickconvert/quickconvert/internal/keypad"

// Event is a calculator key press.
type Event interface {
	calcEvent()
}

// Digit is a number key ("0".."9").
type Digit struct{ D string }

// Operator is one of + - × ÷ (the keyboard spellings * / x are accepted).
type Operator struct{ Op string }

// Decimal is the "." key.
type Decimal struct{}

// Percent is the "%" key.
type Percent struct{}

// Equals is the "=" key.
type Equals struct{}

// Backspace is the "⌫" key.
type Backspace struct{}

// Clear is the "AC" key.
type Clear struct{}

func (Digit) calcEvent()     {}
func (Operator) calcEvent()  {}
func (Decimal) calcEvent()   {}
func (Percent) calcEvent()   {}
func (Equals) calcEvent()    {}
func (Backspace) calcEvent() {}
func (Clear) calcEvent()     {}

// ParseKeys turns a key string such as "100-50%=" into events. Unknown
// characters are skipped; "c" clears and "<" is backspace.
func ParseKeys(keys string) []Event {
	events := make([]Event, 0, len(keys))
	for _, r := range keys {
		switch {
		case r >= '0' && r <= '9':
			events = append(events, Digit{D: string(r)})
		case r == '.':
			events = append(events, Decimal{})
		case r == '%':
			events = append(events, Percent{})
		case r == '=':
			events = append(events, Equals{})
		case r == '<':
			events = append(events, Backspace{})
		case r == 'c' || r == 'C':
			events = append(events, Clear{})
		default:
			if _, ok := keypad.NormalizeOperator(string(r)); ok {
				events = append(events, Operator{Op: string(r)})
			}
		}
	}
	return events
}
