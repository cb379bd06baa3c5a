package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "R$ 0,00"},
		{name: "com milhar", input: 78144.5, want: "R$ 78.144,50"},
		{name: "milhões", input: 1202104.52, want: "R$ 1.202.104,52"},
		{name: "centavos", input: 437.7, want: "R$ 437,70"},
		{name: "negativo", input: -437.7, want: "-R$ 437,70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.input))
		})
	}
}

func TestNullableCurrency(t *testing.T) {
	assert.Equal(t, "—", NullableCurrency(domain.NoData()))
	assert.Equal(t, "R$ 150.000,00", NullableCurrency(domain.Float(150000)))
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "40", Integer(40))
	assert.Equal(t, "1.234.567", Integer(1234567))
	assert.Equal(t, "0", Integer(0))
}

func TestInteger_Rounding(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "meio arredonda para cima", value: 1234.5, want: "1.235"},
		{name: "abaixo do meio arredonda para baixo", value: 1234.4, want: "1.234"},
		{name: "fração alta", value: 999.6, want: "1.000"},
		{name: "negativo afasta do zero", value: -1234.5, want: "-1.235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Integer(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", Percent(10, 0))
	assert.Equal(t, "64,7%", Percent(22, 34))
	assert.Equal(t, "100,0%", Percent(1682.58, 1682.58))
	assert.Equal(t, "2,9%", PercentValue(2.89))
}

func TestDays(t *testing.T) {
	assert.Equal(t, "1,5 dias", Days(1.5))
	assert.Equal(t, "3,0 dias", Days(3))
}
