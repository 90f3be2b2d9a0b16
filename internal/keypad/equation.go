package keypad

import (
	"strings"
	"unicode/utf8"
)

// Operator glyphs as they appear in a calculator equation.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "×"
	OpDivide   = "÷"
)

const operatorGlyphs = OpAdd + OpSubtract + OpMultiply + OpDivide

// evaluable maps display glyphs to the operators an expression evaluator understands.
//
//nolint:gochecknoglobals // Immutable lookup table.
var evaluable = strings.NewReplacer(OpMultiply, "*", OpDivide, "/")

// IsOperator reports whether r is one of the four operator glyphs.
func IsOperator(r rune) bool {
	return strings.ContainsRune(operatorGlyphs, r)
}

// NormalizeOperator maps keyboard spellings onto operator glyphs.
// It returns false for anything that is not an operator.
func NormalizeOperator(op string) (string, bool) {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, true
	case "*", "x", "X":
		return OpMultiply, true
	case "/", ":":
		return OpDivide, true
	}
	return "", false
}

// LastOperatorIndex returns the byte index of the last operator glyph in eq, or -1.
func LastOperatorIndex(eq string) int {
	return strings.LastIndexAny(eq, operatorGlyphs)
}

// Segment returns the numeric segment of eq: everything after the last operator.
func Segment(eq string) string {
	i := LastOperatorIndex(eq)
	if i < 0 {
		return eq
	}
	_, size := utf8.DecodeRuneInString(eq[i:])
	return eq[i+size:]
}

// ToEvaluable rewrites display glyphs into evaluator operators.
func ToEvaluable(eq string) string {
	return evaluable.Replace(eq)
}
