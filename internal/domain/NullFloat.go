// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"strconv"
)

// MonthsInYear é o tamanho fixo de toda série mensal
const MonthsInYear = 12

// MonthLabels são os rótulos dos meses usados pelos gráficos (pt-BR)
var MonthLabels = [MonthsInYear]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

var jsonNull = []byte("null")

// NullFloat representa um valor decimal que pode estar ausente ("sem dados"),
// distinto de zero. Serializa como null quando Valid é falso.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float cria um NullFloat válido
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// NoData cria um NullFloat sem dados
func NoData() NullFloat {
	return NullFloat{}
}

// ValueOrZero retorna o valor ou 0 quando não há dados
func (n NullFloat) ValueOrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Float64
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return strconv.AppendFloat(nil, n.Float64, 'g', -1, 64), nil
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = NullFloat{}
		return nil
	}

	v, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil {
		return err
	}

	*n = Float(v)
	return nil
}

func (n NullFloat) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}

// Series é uma série mensal (Jan..Dez) de tamanho fixo. Por ser um array,
// é copiada por valor e nunca compartilha memória entre snapshots.
type Series [MonthsInYear]NullFloat

// SeriesOf monta uma série a partir de ponteiros, onde nil significa "sem dados".
// Valores além do décimo segundo são ignorados.
func SeriesOf(values ...*float64) Series {
	var s Series
	for i, v := range values {
		if i >= MonthsInYear {
			break
		}
		if v != nil {
			s[i] = Float(*v)
		}
	}
	return s
}

// Values retorna a série como slice, útil para as funções de métricas
func (s Series) Values() []NullFloat {
	return s[:]
}

// Defined retorna a quantidade de meses com dados
func (s Series) Defined() int {
	count := 0
	for _, v := range s {
		if v.Valid {
			count++
		}
	}
	return count
}
