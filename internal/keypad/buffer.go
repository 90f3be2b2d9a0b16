package keypad

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	decimalPoint = "."
	minusSign    = "-"
	zero         = "0"
)

// ErrMaxDigits is matched by every *MaxDigitsError via errors.Is.
var ErrMaxDigits = errors.New("maximum digits reached")

// ErrNotDigit is returned when AppendDigit receives anything but a single ASCII digit.
var ErrNotDigit = errors.New("not a digit")

// MaxDigitsError reports a rejected digit. Its message is the user-visible notice.
type MaxDigitsError struct {
	Limit int
}

func (e *MaxDigitsError) Error() string {
	return fmt.Sprintf("Maximum digits reached (%d)", e.Limit)
}

// Is reports whether target is ErrMaxDigits.
func (e *MaxDigitsError) Is(target error) bool {
	return target == ErrMaxDigits
}

// IsDigit reports whether s is exactly one ASCII digit.
func IsDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// DigitCount returns the number of characters in b, ignoring decimal points
// and a leading minus sign.
func DigitCount(b string) int {
	b = strings.TrimPrefix(b, minusSign)
	return utf8.RuneCountInString(strings.ReplaceAll(b, decimalPoint, ""))
}

// AppendDigit appends d to b. A buffer holding exactly "0" is replaced by d.
// When limit > 0 and b already holds limit digits, b is returned unchanged
// together with a *MaxDigitsError.
func AppendDigit(b, d string, limit int) (string, error) {
	if !IsDigit(d) {
		return b, fmt.Errorf("%w: %q", ErrNotDigit, d)
	}
	if limit > 0 && DigitCount(b) >= limit {
		return b, &MaxDigitsError{Limit: limit}
	}
	switch b {
	case zero:
		return d, nil
	case minusSign + zero:
		return minusSign + d, nil
	}
	return b + d, nil
}

// AppendDecimal adds a decimal point unless b already has one.
func AppendDecimal(b string) string {
	if strings.Contains(b, decimalPoint) {
		return b
	}
	switch b {
	case "":
		return zero + decimalPoint
	case minusSign:
		return minusSign + zero + decimalPoint
	}
	return b + decimalPoint
}

// Backspace removes the last rune of b.
func Backspace(b string) string {
	if b == "" {
		return b
	}
	_, size := utf8.DecodeLastRuneInString(b)
	return b[:len(b)-size]
}

// Clear resets a buffer.
func Clear(string) string {
	return ""
}

// ToggleSign adds or strips a leading minus sign. Blank buffers are left alone.
func ToggleSign(b string) string {
	if strings.TrimSpace(b) == "" {
		return b
	}
	if strings.HasPrefix(b, minusSign) {
		return strings.TrimPrefix(b, minusSign)
	}
	return minusSign + b
}

// ParseNumber parses a buffer. Blank, a bare sign, a bare decimal point and
// non-finite values all fail.
func ParseNumber(b string) (float64, bool) {
	switch b {
	case "", minusSign, decimalPoint, minusSign + decimalPoint:
		return 0, false
	}
	v, err := strconv.ParseFloat(b, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Display returns the text to render for b; an empty buffer shows "0".
func Display(b string) string {
	if b == "" {
		return zero
	}
	return b
}
