package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"calculator", KindCalculator},
		{"calc", KindCalculator},
		{" Speed ", KindSpeed},
		{"TEMPERATURE", KindTemperature},
		{"currency", KindCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("length")
	assert.Error(t, err)
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Currency", KindCurrency.Title())
	assert.Len(t, Kinds(), 4)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
