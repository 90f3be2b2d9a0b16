// Package keypad implements the text-buffer rules shared by every screen.
//
// A buffer is the raw text a user has typed on the on-screen keypad. The rules
// here are pure functions over strings:
//   - digits replace a lone "0" and respect a per-screen digit limit
//   - a decimal point is added at most once (an empty buffer becomes "0.")
//   - backspace removes one rune and is a no-op on an empty buffer
//   - clear resets to the empty string; "0" is substituted only at render time
//
// The calculator keeps a whole equation in one buffer; the helpers in
// equation.go scope the decimal and leading-zero rules to the numeric segment
// after the last operator.
package keypad
