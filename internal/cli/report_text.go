package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/format"
)

var levelLabels = map[domain.Level]string{
	domain.LevelExcellent: "ÓTIMO",
	domain.LevelGood:      "BOM",
	domain.LevelFair:      "REGULAR",
	domain.LevelPoor:      "RUIM",
}

// writeTextReport escreve o relatório em texto pt-BR, seção por seção
func writeTextReport(w io.Writer, r *domain.DashboardReport) {
	if r.Revision != "" {
		fmt.Fprintf(w, "Painel de KPIs (revisão %s)\n", r.Revision)
	} else {
		fmt.Fprintln(w, "Painel de KPIs")
	}

	section(w, "Resumo")
	line(w, "Quantidade total", format.Integer(float64(r.Cards.TotalQuantity)))
	line(w, "Valor total", format.Currency(r.Cards.TotalValue))
	line(w, "Faturado", format.Currency(r.Cards.Invoiced))
	line(w, "Cancelado", format.Currency(r.Cards.Cancelled))

	section(w, "Produtos")
	for _, p := range r.Products.Items {
		fmt.Fprintf(w, "  %-24s %8s  %16s  %7s\n", p.Name, format.Integer(float64(p.Quantity)), format.Currency(p.Value), format.PercentValue(p.PercentOfValue))
	}

	section(w, "Faturamento")
	line(w, "Total no período", format.Currency(r.Revenue.Total))
	line(w, "Média mensal", format.Currency(r.Revenue.MonthlyAverage))
	line(w, "Melhor mês", highlight(r.Revenue.BestMonth))
	line(w, "Pior mês", highlight(r.Revenue.WorstMonth))
	line(w, "Total do ano", format.Currency(r.Revenue.ThisYearTotal))
	line(w, "Meta", format.NullableCurrency(r.Revenue.Target))
	line(w, "Itens desenvolvidos", format.Integer(float64(r.Revenue.ItemsTotal)))

	writeSplit(w, "Status dos itens", r.ItemStatus)
	writeSplit(w, "Prazo", r.Deadline)
	writeSplit(w, "Propostas", r.Proposals)

	section(w, "Conversão")
	line(w, "Com proposta", format.Integer(float64(r.Conversion.WithProposal)))
	line(w, "Viraram pedido", fmt.Sprintf("%s (%s)", format.Integer(float64(r.Conversion.BecameOrder)), format.PercentValue(r.Conversion.BecameOrderPercent)))
	line(w, "Não viraram pedido", fmt.Sprintf("%s (%s)", format.Integer(float64(r.Conversion.DidNotBecomeOrder)), format.PercentValue(r.Conversion.DidNotBecomeOrderPercent)))

	section(w, "Compra de clichê")
	line(w, "Previsto", format.Currency(r.Cliche.PlannedTotal))
	line(w, "Realizado", format.Currency(r.Cliche.ActualTotal))
	line(w, "Atingimento", format.PercentValue(r.Cliche.Achievement))
	line(w, "Atingimento produção", format.PercentValue(r.Cliche.ProductionAchievement))
	for _, name := range slices.Sorted(maps.Keys(r.Cliche.CostCenterTotals)) {
		line(w, "Centro de custo "+name, fmt.Sprintf("%s (%s)", format.Currency(r.Cliche.CostCenterTotals[name]), format.PercentValue(r.Cliche.CostCenterPercentOfTotal[name])))
	}

	section(w, "Compra de lâmina")
	line(w, "Vendido", format.Currency(r.Blade.Totals.Sold))
	line(w, "Comprado", format.Currency(r.Blade.Totals.Purchased))
	line(w, "Repassado", format.PercentValue(r.Blade.PassedOnPercent))
	line(w, "Não repassado", format.PercentValue(r.Blade.NotPassedOnPercent))

	section(w, "Tempo de resposta")
	for _, g := range r.Gauges {
		line(w, g.Name, fmt.Sprintf("%s (%s)", format.Days(g.Days), levelLabels[g.Classification.Level]))
	}

	section(w, "Venda x custo")
	for _, s := range r.SaleVsCost {
		fmt.Fprintf(w, "  %-4s %4d itens  venda %s  custo %s (%s)\n", s.Category, s.Items, format.Currency(s.TotalSale), format.Currency(s.TotalCost), format.PercentValue(s.CostAsPercentOfSale))
	}

	if len(r.Warnings) > 0 {
		section(w, "Avisos")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", warn.Check, warn.Message)
		}
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-24s %s\n", label+":", value)
}

func highlight(h domain.MonthHighlight) string {
	if !h.Value.Valid {
		return "—"
	}
	return fmt.Sprintf("%s (%s)", h.Label, format.Currency(h.Value.Float64))
}

func writeSplit(w io.Writer, title string, split domain.SplitReport) {
	section(w, title)
	for _, part := range split.Parts {
		line(w, part.Label, fmt.Sprintf("%s (%s)", format.Integer(float64(part.Value)), format.PercentValue(part.Percent)))
	}
	line(w, "Total", format.Integer(float64(split.Total)))
}
