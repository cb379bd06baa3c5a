// Package measuring calcula os valores derivados do painel de KPIs.
// Todas as funções são puras e seguras para uso concorrente.
package measuring

import (
	"math"

	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

// consistencyTolerance é a diferença máxima aceita entre um total e a soma das partes
const consistencyTolerance = 0.01

// SumDefined soma apenas os meses com dados
func SumDefined(values []domain.NullFloat) float64 {
	sum := 0.0
	for _, v := range values {
		if v.Valid {
			sum += v.Float64
		}
	}
	return sum
}

// AverageOfDefined é a média dos meses com dados; 0 quando nenhum mês tem dados
func AverageOfDefined(values []domain.NullFloat) float64 {
	count := 0
	sum := 0.0
	for _, v := range values {
		if v.Valid {
			sum += v.Float64
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Achievement é o realizado acumulado contra um previsto mensal fixo:
// soma(realizado) / (previsto * 12) * 100. Retorna 0 quando o previsto é 0.
func Achievement(actual []domain.NullFloat, plannedMonthly float64) float64 {
	plannedTotal := plannedMonthly * domain.MonthsInYear
	if plannedTotal == 0 {
		return 0
	}
	return SumDefined(actual) / plannedTotal * 100
}

// AchievementPaired compara duas séries mês a mês: soma(realizado) / soma(previsto) * 100.
// Retorna 0 quando a soma do previsto é 0.
func AchievementPaired(actual, planned []domain.NullFloat) float64 {
	plannedTotal := SumDefined(planned)
	if plannedTotal == 0 {
		return 0
	}
	return SumDefined(actual) / plannedTotal * 100
}

// ConsistencyCheck verifica se partA + partB bate com o total (tolerância de 0,01)
func ConsistencyCheck(total, partA, partB float64) bool {
	return math.Abs((partA+partB)-total) < consistencyTolerance
}

// PercentageOfTotal retorna part / total * 100, ou 0 quando o total é 0
func PercentageOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// BestIndex retorna o índice do primeiro maior valor entre os meses com dados.
// Sem nenhum mês com dados o resultado é 0.
func BestIndex(values []domain.NullFloat) int {
	best := 0
	for i, v := range values {
		if !v.Valid {
			continue
		}
		current := math.Inf(-1)
		if values[best].Valid {
			current = values[best].Float64
		}
		if current < v.Float64 {
			best = i
		}
	}
	return best
}

// WorstIndex retorna o índice do primeiro menor valor entre os meses com dados.
// Sem nenhum mês com dados o resultado é 0.
func WorstIndex(values []domain.NullFloat) int {
	worst := 0
	for i, v := range values {
		if !v.Valid {
			continue
		}
		current := math.Inf(1)
		if values[worst].Valid {
			current = values[worst].Float64
		}
		if current > v.Float64 {
			worst = i
		}
	}
	return worst
}

// ClassifyByThreshold aplica o valor (em dias) à escada de limites inclusivos
func ClassifyByThreshold(value float64, t domain.Thresholds) domain.Classification {
	switch {
	case value <= t.Excellent:
		return domain.Classification{Level: domain.LevelExcellent, Percent: 100}
	case value <= t.Good:
		return domain.Classification{Level: domain.LevelGood, Percent: 75}
	case value <= t.Fair:
		return domain.Classification{Level: domain.LevelFair, Percent: 50}
	default:
		return domain.Classification{Level: domain.LevelPoor, Percent: 25}
	}
}

// GroupTotals soma os valores agrupando pela chave de cada item
func GroupTotals[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	totals := make(map[string]float64, len(items))
	for _, item := range items {
		totals[key(item)] += value(item)
	}
	return totals
}

// ItemCostPercent é o custo do item em percentual da venda; 0 quando não há venda
func ItemCostPercent(item domain.SaleVsCostItem) float64 {
	return PercentageOfTotal(item.CostValue, item.SaleValue)
}

// SummarizeSaleVsCost agrega os itens de uma categoria
func SummarizeSaleVsCost(items []domain.SaleVsCostItem) domain.SaleVsCostSummary {
	summary := domain.SaleVsCostSummary{Items: len(items)}

	for _, item := range items {
		summary.TotalSale += item.SaleValue
		summary.TotalCost += item.CostValue
		if item.PassedOnToClient {
			summary.PassedOnCost += item.CostValue
		} else {
			summary.NotPassedOnCost += item.CostValue
		}
	}

	summary.CostAsPercentOfSale = PercentageOfTotal(summary.TotalCost, summary.TotalSale)
	return summary
}

// ProductTotals soma quantidade e valor dos produtos
func ProductTotals(products []domain.Product) domain.Totals {
	var totals domain.Totals
	for _, p := range products {
		totals.Quantity += p.Quantity
		totals.Value += p.Value
	}
	return totals
}
