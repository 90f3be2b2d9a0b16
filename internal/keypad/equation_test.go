package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOperator(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"+", OpAdd, true},
		{"-", OpSubtract, true},
		{"*", OpMultiply, true},
		{"x", OpMultiply, true},
		{"×", OpMultiply, true},
		{"/", OpDivide, true},
		{"÷", OpDivide, true},
		{"%", "", false},
		{"7", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeOperator(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegment(t *testing.T) {
	assert.Equal(t, "12.5", Segment("12.5"))
	assert.Equal(t, "3", Segment("1.5+3"))
	assert.Equal(t, "", Segment("7×"))
	assert.Equal(t, "42", Segment("6÷2×42"))
}

func TestLastOperatorIndex(t *testing.T) {
	assert.Equal(t, -1, LastOperatorIndex("123"))
	assert.Equal(t, 3, LastOperatorIndex("100-50"))
	assert.Equal(t, 1, LastOperatorIndex("5×2"))
}

func TestToEvaluable(t *testing.T) {
	assert.Equal(t, "6/2*3+1-4", ToEvaluable("6÷2×3+1-4"))
	assert.True(t, IsOperator('×'))
	assert.False(t, IsOperator('.'))
}
