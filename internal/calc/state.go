package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/quickconvert/quickconvert/internal/keypad"
)

// ErrorResult is the sentinel shown when an equation cannot be evaluated.
const ErrorResult = "Error"

const (
	initialResult  = "0"
	percentDivisor = 100
	// maxExactInt is the largest float64 magnitude where every integer is exact.
	maxExactInt = 1 << 53
)

// State is an immutable calculator snapshot.
type State struct {
	Equation string
	Result   string
	Done     bool
}

// NewState returns the state of a freshly opened calculator.
func NewState() State {
	return State{Result: initialResult}
}

// Display returns the text for the main display: the result once an
// evaluation has happened, otherwise the equation being edited.
func (s State) Display() string {
	if s.Done {
		return s.Result
	}
	return keypad.Display(s.Equation)
}

// Reduce applies one event to s and returns the next snapshot. It never
// mutates s. Unknown events leave the state unchanged.
func Reduce(s State, ev Event, eval Evaluator) State {
	switch e := ev.(type) {
	case Digit:
		return enterDigit(s, e.D)
	case Operator:
		return enterOperator(s, e.Op)
	case Decimal:
		return enterDecimal(s)
	case Percent:
		return enterPercent(s, eval)
	case Equals:
		return calculate(s, eval)
	case Backspace:
		return backspace(s)
	case Clear:
		return NewState()
	default:
		return s
	}
}

func enterDigit(s State, d string) State {
	if !keypad.IsDigit(d) {
		return s
	}
	if s.Done {
		return State{Equation: d, Result: s.Result}
	}
	eq := s.Equation
	if keypad.Segment(eq) == "0" {
		eq = keypad.Backspace(eq)
	}
	return State{Equation: eq + d, Result: s.Result}
}

func enterOperator(s State, op string) State {
	glyph, ok := keypad.NormalizeOperator(op)
	if !ok {
		return s
	}
	if s.Done {
		if s.Result == ErrorResult {
			return s
		}
		return State{Equation: s.Result + glyph, Result: s.Result}
	}
	eq := s.Equation
	if strings.TrimSpace(eq) == "" {
		return s
	}
	if last, _ := utf8.DecodeLastRuneInString(eq); last < '0' || last > '9' {
		eq = keypad.Backspace(eq)
	}
	return State{Equation: eq + glyph, Result: s.Result}
}

func enterDecimal(s State) State {
	if s.Done {
		return s
	}
	segment := keypad.Segment(s.Equation)
	next := keypad.AppendDecimal(segment)
	if next == segment {
		return s
	}
	prefix := strings.TrimSuffix(s.Equation, segment)
	return State{Equation: prefix + next, Result: s.Result}
}

// enterPercent rewrites "A<op>B" into "A<op>(A*B/100)", keeping A and <op> as typed.
func enterPercent(s State, eval Evaluator) State {
	eq := s.Equation
	if strings.TrimSpace(eq) == "" || s.Done {
		return s
	}
	idx := keypad.LastOperatorIndex(eq)
	if idx < 0 {
		return s
	}
	op, size := utf8.DecodeRuneInString(eq[idx:])
	base, pct := eq[:idx], eq[idx+size:]
	if strings.TrimSpace(pct) == "" || base == "" {
		return s
	}

	baseValue, err := eval.Evaluate(keypad.ToEvaluable(base))
	if err != nil {
		return s
	}
	pctValue, err := eval.Evaluate(keypad.ToEvaluable(pct))
	if err != nil {
		return s
	}

	value := baseValue * pctValue / percentDivisor
	return State{Equation: base + string(op) + formatNumber(value), Result: s.Result}
}

func calculate(s State, eval Evaluator) State {
	if strings.TrimSpace(s.Equation) == "" {
		return s
	}
	v, err := eval.Evaluate(keypad.ToEvaluable(s.Equation))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return State{Equation: s.Equation, Result: ErrorResult, Done: true}
	}
	return State{Equation: s.Equation, Result: formatNumber(v), Done: true}
}

func backspace(s State) State {
	if s.Equation == "" {
		return s
	}
	return State{Equation: keypad.Backspace(s.Equation), Result: s.Result}
}

// formatNumber prints integral values without a fractional part and all
// other values with the shortest representation that round-trips.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < maxExactInt {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
