package merging

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

// maxSafeInteger é o maior inteiro representável sem perda em um float64
const maxSafeInteger = 1 << 53

// toFloat aplica o cast numérico permissivo ("12.5" -> 12.5, true -> 1).
// Retorna false quando o valor não é numérico ou não é finito.
func toFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)

	switch value := v.(type) {
	case nil:
		return 0, true
	case json.Number:
		f, err = value.Float64()
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, true
		}
		f, err = cast.ToFloat64E(trimmed)
		if err != nil && hasRadixPrefix(trimmed) {
			var i int64
			i, err = cast.ToInt64E(trimmed)
			f = float64(i)
		}
	case map[string]any, []any:
		return 0, false
	default:
		f, err = cast.ToFloat64E(value)
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// hasRadixPrefix reconhece literais inteiros "0x1f", "0o17" e "0b101", sem
// sinal e sem separadores
func hasRadixPrefix(s string) bool {
	if len(s) < 3 || s[0] != '0' || strings.ContainsRune(s, '_') {
		return false
	}
	return strings.ContainsRune("xXoObB", rune(s[1]))
}

// number converte um valor para decimal, caindo para 0 quando não numérico
func (m *merger) number(path string, v any) float64 {
	f, ok := toFloat(v)
	if !ok {
		m.warn(path, ReasonNotNumeric, fmt.Sprintf("valor %s convertido para 0", describe(v)))
		return 0
	}
	return f
}

// integer converte um valor para inteiro, truncando a parte fracionária
func (m *merger) integer(path string, v any) int {
	f, ok := toFloat(v)
	if !ok {
		m.warn(path, ReasonNotNumeric, fmt.Sprintf("valor %s convertido para 0", describe(v)))
		return 0
	}

	if math.Abs(f) > maxSafeInteger {
		m.warn(path, ReasonNotNumeric, "inteiro fora do intervalo convertido para 0")
		return 0
	}

	truncated := math.Trunc(f)
	if truncated != f {
		m.warn(path, ReasonTruncated, fmt.Sprintf("%v truncado para %v", f, truncated))
	}
	return int(truncated)
}

// text converte um valor para string; ausente ou nulo vira o fallback
func (m *merger) text(path string, v any, fallback string) string {
	if v == nil {
		return fallback
	}

	switch v.(type) {
	case map[string]any, []any:
		m.warn(path, ReasonNotText, fmt.Sprintf("valor %s substituído por %q", describe(v), fallback))
		return fallback
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		m.warn(path, ReasonNotText, fmt.Sprintf("valor %s substituído por %q", describe(v), fallback))
		return fallback
	}
	return s
}

// boolean converte um valor para bool; valores não reconhecidos viram false
func (m *merger) boolean(path string, v any) bool {
	if v == nil {
		return false
	}

	switch value := v.(type) {
	case string:
		v = strings.TrimSpace(value)
	case map[string]any, []any:
		m.warn(path, ReasonNotBoolean, fmt.Sprintf("valor %s convertido para false", describe(v)))
		return false
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		m.warn(path, ReasonNotBoolean, fmt.Sprintf("valor %s convertido para false", describe(v)))
		return false
	}
	return b
}

// object retorna o valor como objeto JSON ou registra aviso e retorna false
func (m *merger) object(path string, v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		m.warn(path, ReasonNotObject, fmt.Sprintf("valor %s ignorado, mantido o anterior", describe(v)))
		return nil, false
	}
	return obj, true
}

// array retorna o valor como array JSON ou registra aviso e retorna false
func (m *merger) array(path string, v any) ([]any, bool) {
	arr, ok := v.([]any)
	if !ok {
		m.warn(path, ReasonNotArray, fmt.Sprintf("valor %s ignorado, mantido o anterior", describe(v)))
		return nil, false
	}
	return arr, true
}

// record retorna o elemento de uma lista como objeto; elementos que não são
// objetos viram registros com todos os valores padrão
func (m *merger) record(path string, v any) map[string]any {
	if v == nil {
		return map[string]any{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		m.warn(path, ReasonNotObject, fmt.Sprintf("valor %s substituído por registro padrão", describe(v)))
		return map[string]any{}
	}
	return obj
}

// series substitui a série somente se o valor for um array de exatamente 12 elementos.
// Cada elemento nulo vira "sem dados"; os demais passam pelo cast numérico.
func (m *merger) series(path string, v any, dst *domain.Series) {
	arr, ok := m.array(path, v)
	if !ok {
		return
	}

	if len(arr) != domain.MonthsInYear {
		m.warn(path, ReasonWrongLength, fmt.Sprintf("esperado %d elementos, recebido %d; mantido o anterior", domain.MonthsInYear, len(arr)))
		return
	}

	var out domain.Series
	for i, element := range arr {
		if element == nil {
			out[i] = domain.NoData()
			continue
		}
		out[i] = domain.Float(m.number(fmt.Sprintf("%s[%d]", path, i), element))
	}
	*dst = out
}

// numberField aplica a sub-chave numérica se presente e não nula
func (m *merger) numberField(obj map[string]any, path, key string, dst *float64) {
	v, present := obj[key]
	if !present || v == nil {
		return
	}
	*dst = m.number(join(path, key), v)
}

// intField aplica a sub-chave inteira se presente e não nula
func (m *merger) intField(obj map[string]any, path, key string, dst *int) {
	v, present := obj[key]
	if !present || v == nil {
		return
	}
	*dst = m.integer(join(path, key), v)
}

// unknownKeys registra aviso para chaves não reconhecidas de um objeto
func (m *merger) unknownKeys(path string, obj map[string]any, known ...string) {
	for _, key := range sortedKeys(obj) {
		if !contains(known, key) {
			m.warn(join(path, key), ReasonUnknownField, "")
		}
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// describe gera uma descrição curta do valor para as mensagens de aviso
func describe(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "objeto"
	case []any:
		return fmt.Sprintf("array[%d]", len(value))
	case string:
		return fmt.Sprintf("%q", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
