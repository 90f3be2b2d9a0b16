package calc

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/Knetic/govaluate.v3"
)

// ErrNotANumber is returned when an expression evaluates to something other
// than a finite number.
var ErrNotANumber = errors.New("expression did not evaluate to a finite number")

// Evaluator evaluates arithmetic expressions written with * / + - and parentheses.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// ExprEvaluator is the default Evaluator, backed by govaluate.
type ExprEvaluator struct{}

// NewEvaluator returns the default expression evaluator.
func NewEvaluator() *ExprEvaluator {
	return &ExprEvaluator{}
}

// Evaluate parses and evaluates expr. Malformed input, non-numeric results,
// NaN and infinities are all reported as errors.
func (ExprEvaluator) Evaluate(expr string) (float64, error) {
	parsed, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return math.NaN(), fmt.Errorf("parsing expression %q: %w", expr, err)
	}
	raw, err := parsed.Evaluate(nil)
	if err != nil {
		return math.NaN(), fmt.Errorf("evaluating expression %q: %w", expr, err)
	}
	v, ok := raw.(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), fmt.Errorf("%w: %q = %v", ErrNotANumber, expr, raw)
	}
	return v, nil
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(expr string) (float64, error)

// Evaluate calls f(expr).
func (f EvaluatorFunc) Evaluate(expr string) (float64, error) {
	return f(expr)
}
