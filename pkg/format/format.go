// Package format converte os valores puros do relatório em texto pt-BR
package format

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

const (
	currencyPattern = "#.###,##"
	integerPattern  = "#.###,"
	percentPattern  = "#.###,#"
)

// Currency formata em reais: R$ 1.234,56
func Currency(v float64) string {
	if v < 0 {
		return "-R$ " + humanize.FormatFloat(currencyPattern, math.Abs(v))
	}
	return "R$ " + humanize.FormatFloat(currencyPattern, v)
}

// NullableCurrency formata um valor que pode estar sem dados; sem dados vira "—"
func NullableCurrency(v domain.NullFloat) string {
	if !v.Valid {
		return "—"
	}
	return Currency(v.Float64)
}

// Integer formata com separador de milhar e sem casas decimais
func Integer(v float64) string {
	return humanize.FormatFloat(integerPattern, v)
}

// Percent formata value/total com uma casa decimal; total zero vira "0%"
func Percent(value, total float64) string {
	if total == 0 {
		return "0%"
	}
	return PercentValue(value / total * 100)
}

// PercentValue formata um percentual já calculado
func PercentValue(p float64) string {
	return humanize.FormatFloat(percentPattern, p) + "%"
}

// Days formata uma média em dias: "1,5 dias"
func Days(v float64) string {
	return humanize.FormatFloat(percentPattern, v) + " dias"
}
