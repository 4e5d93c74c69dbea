package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "valor com milhar", value: 1234.56, expected: "R$ 1.234,56"},
		{name: "valor pequeno", value: 9.9, expected: "R$ 9,90"},
		{name: "zero", value: 0, expected: "R$ 0,00"},
		{name: "milhões", value: 1234567.891, expected: "R$ 1.234.567,89"},
		{name: "negativo", value: -1234.5, expected: "-R$ 1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.value))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "999", Number(999))
	assert.Equal(t, "1.000", Number(1000))
	assert.Equal(t, "1.234.567", Number(1234567))
	assert.Equal(t, "-1.234", Number(-1234))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12,35%", Percent(12.345, 2))
	assert.Equal(t, "1,9%", Percent(1.92, 1))
	assert.Equal(t, "0,00%", Percent(0, 2))
	assert.Equal(t, "100%", Percent(100, 0))
}
