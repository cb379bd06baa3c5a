package measuring

import (
	"fmt"

	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/utils"
)

// Identificadores das verificações de consistência
const (
	CheckTotalsVsProducts = "totals_vs_products"
	CheckDeadlineBase     = "deadline_vs_completed"
	CheckConversionFunnel = "conversion_funnel"
	CheckBladePassedOn    = "blade_passed_on"
)

// Nomes dos medidores de tempo de resposta
const (
	GaugeDevelopment   = "Desenvolvimento"
	GaugeCommercial    = "Comercial"
	GaugeClicheArrival = "Chegada de clichê"
)

// Service implementa a interface Reporter
type Service struct{}

// NewService cria uma nova instância do serviço de métricas
func NewService() Reporter {
	return &Service{}
}

// BuildReport calcula todos os valores derivados a partir de um snapshot.
// Divergências entre totais viram avisos e nunca interrompem o cálculo.
func (s *Service) BuildReport(snapshot domain.Snapshot, gauges domain.GaugeSettings) *domain.DashboardReport {
	report := &domain.DashboardReport{
		Cards: domain.KPICards{
			TotalQuantity: snapshot.Totals.Quantity,
			TotalValue:    snapshot.Totals.Value,
			Invoiced:      snapshot.Financial.Invoiced,
			Cancelled:     snapshot.Financial.Cancelled,
		},
		Revenue: buildRevenue(snapshot),
		ItemStatus: buildSplit(
			domain.Split{Label: "Finalizados", Value: snapshot.ItemStatus.Completed},
			domain.Split{Label: "Cancelados", Value: snapshot.ItemStatus.Cancelled},
		),
		Deadline: buildSplit(
			domain.Split{Label: "No prazo", Value: snapshot.Deadline.OnTime},
			domain.Split{Label: "Atrasados", Value: snapshot.Deadline.Late},
		),
		Proposals: buildSplit(
			domain.Split{Label: "Com proposta", Value: snapshot.Proposals.WithProposal},
			domain.Split{Label: "Sem proposta", Value: snapshot.Proposals.WithoutProposal},
		),
		Cliche:     buildCliche(snapshot.ClichePurchase),
		Gauges:     buildGauges(snapshot.ResponseTime, gauges),
		SaleVsCost: buildSaleVsCost(snapshot.SaleVsCost),
		Warnings:   []domain.ConsistencyWarning{},
	}

	report.Products = s.buildProducts(report, snapshot)
	report.Conversion = s.buildConversion(report, snapshot)
	report.Blade = s.buildBlade(report, snapshot.BladePurchase)

	if report.Deadline.Total != snapshot.ItemStatus.Completed {
		report.Warnings = append(report.Warnings, domain.ConsistencyWarning{
			Check:    CheckDeadlineBase,
			Message:  fmt.Sprintf("no prazo + atrasados (%d) difere dos finalizados (%d)", report.Deadline.Total, snapshot.ItemStatus.Completed),
			Expected: float64(snapshot.ItemStatus.Completed),
			Actual:   float64(report.Deadline.Total),
		})
	}

	return report
}

func (s *Service) buildProducts(report *domain.DashboardReport, snapshot domain.Snapshot) domain.ProductsReport {
	computed := ProductTotals(snapshot.Products)

	items := make([]domain.ProductShare, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		items = append(items, domain.ProductShare{
			Name:           p.Name,
			Quantity:       p.Quantity,
			Value:          p.Value,
			PercentOfValue: utils.RoundWithTwoDecimalPlace(PercentageOfTotal(p.Value, computed.Value)),
		})
	}

	consistent := computed.Quantity == snapshot.Totals.Quantity &&
		ConsistencyCheck(snapshot.Totals.Value, computed.Value, 0)

	if computed.Quantity != snapshot.Totals.Quantity {
		report.Warnings = append(report.Warnings, domain.ConsistencyWarning{
			Check:    CheckTotalsVsProducts,
			Message:  fmt.Sprintf("quantidade total (%d) difere da soma dos produtos (%d)", snapshot.Totals.Quantity, computed.Quantity),
			Expected: float64(computed.Quantity),
			Actual:   float64(snapshot.Totals.Quantity),
		})
	}
	if !ConsistencyCheck(snapshot.Totals.Value, computed.Value, 0) {
		report.Warnings = append(report.Warnings, domain.ConsistencyWarning{
			Check:    CheckTotalsVsProducts,
			Message:  fmt.Sprintf("valor total (%.2f) difere da soma dos produtos (%.2f)", snapshot.Totals.Value, computed.Value),
			Expected: computed.Value,
			Actual:   snapshot.Totals.Value,
		})
	}

	return domain.ProductsReport{
		Items:          items,
		Totals:         snapshot.Totals,
		ComputedTotals: computed,
		Consistent:     consistent,
	}
}

// buildRevenue monta a evolução do faturamento do ano fechado (revenueLastYear)
// junto com a quantidade de desenvolvimentos por mês
func buildRevenue(snapshot domain.Snapshot) domain.RevenueReport {
	revenue := snapshot.RevenueLastYear.Values()
	best := BestIndex(revenue)
	worst := WorstIndex(revenue)

	months := make([]domain.MonthPoint, 0, domain.MonthsInYear)
	for i, label := range domain.MonthLabels {
		months = append(months, domain.MonthPoint{
			Label:       label,
			Revenue:     snapshot.RevenueLastYear[i],
			Development: snapshot.DevelopmentLastYear[i],
		})
	}

	return domain.RevenueReport{
		Total:          SumDefined(revenue),
		MonthlyAverage: AverageOfDefined(revenue),
		DefinedMonths:  snapshot.RevenueLastYear.Defined(),
		BestMonth:      domain.MonthHighlight{Index: best, Label: domain.MonthLabels[best], Value: snapshot.RevenueLastYear[best]},
		WorstMonth:     domain.MonthHighlight{Index: worst, Label: domain.MonthLabels[worst], Value: snapshot.RevenueLastYear[worst]},
		ThisYearTotal:  SumDefined(snapshot.RevenueThisYear.Values()),
		Target:         snapshot.Target,
		Months:         months,
		ItemsTotal:     int(SumDefined(snapshot.DevelopmentLastYear.Values())),
	}
}

func buildSplit(parts ...domain.Split) domain.SplitReport {
	total := 0
	for _, p := range parts {
		total += p.Value
	}

	out := make([]domain.Split, 0, len(parts))
	for _, p := range parts {
		p.Percent = utils.RoundWithTwoDecimalPlace(PercentageOfTotal(float64(p.Value), float64(total)))
		out = append(out, p)
	}

	return domain.SplitReport{Total: total, Parts: out}
}

func (s *Service) buildConversion(report *domain.DashboardReport, snapshot domain.Snapshot) domain.ConversionReport {
	c := snapshot.Conversion
	base := float64(c.EnteredWithout)
	consistent := c.BecameOrder+c.DidNotBecomeOrder == c.EnteredWithout

	if !consistent {
		report.Warnings = append(report.Warnings, domain.ConsistencyWarning{
			Check:    CheckConversionFunnel,
			Message:  fmt.Sprintf("virou + não virou (%d) difere da base sem proposta (%d)", c.BecameOrder+c.DidNotBecomeOrder, c.EnteredWithout),
			Expected: base,
			Actual:   float64(c.BecameOrder + c.DidNotBecomeOrder),
		})
	}

	return domain.ConversionReport{
		Base:                     c.EnteredWithout,
		WithProposal:             snapshot.Proposals.WithProposal,
		BecameOrder:              c.BecameOrder,
		DidNotBecomeOrder:        c.DidNotBecomeOrder,
		BecameOrderPercent:       utils.RoundWithTwoDecimalPlace(PercentageOfTotal(float64(c.BecameOrder), base)),
		DidNotBecomeOrderPercent: utils.RoundWithTwoDecimalPlace(PercentageOfTotal(float64(c.DidNotBecomeOrder), base)),
		Consistent:               consistent,
	}
}

func bucketKey(b domain.CategoryBucket) string {
	if b.Key == "" {
		return b.Label
	}
	return b.Key
}

func bucketValue(b domain.CategoryBucket) float64 {
	return b.Value
}

func buildCliche(kpi domain.ClichePurchaseKPI) domain.ClicheReport {
	costCenters := GroupTotals(kpi.CostCenters, bucketKey, bucketValue)

	costCenterSum := 0.0
	for _, v := range costCenters {
		costCenterSum += v
	}
	costCenterPercent := make(map[string]float64, len(costCenters))
	for k, v := range costCenters {
		costCenterPercent[k] = utils.RoundWithTwoDecimalPlace(PercentageOfTotal(v, costCenterSum))
	}

	quantities := GroupTotals(kpi.Quantities,
		func(q domain.QuantityBucket) string {
			if q.Key == "" {
				return q.Label
			}
			return q.Key
		},
		func(q domain.QuantityBucket) float64 { return float64(q.Quantity) },
	)

	return domain.ClicheReport{
		PlannedMonthly:           kpi.PlannedMonthly,
		PlannedTotal:             kpi.PlannedMonthly * domain.MonthsInYear,
		ActualTotal:              SumDefined(kpi.Actual.Values()),
		Achievement:              utils.RoundWithTwoDecimalPlace(Achievement(kpi.Actual.Values(), kpi.PlannedMonthly)),
		ProductionPlannedTotal:   kpi.PlannedMonthlyProduction * domain.MonthsInYear,
		ProductionActualTotal:    SumDefined(kpi.ActualProduction.Values()),
		ProductionAchievement:    utils.RoundWithTwoDecimalPlace(Achievement(kpi.ActualProduction.Values(), kpi.PlannedMonthlyProduction)),
		CategoryTotals:           GroupTotals(kpi.Categories, bucketKey, bucketValue),
		CostCenterTotals:         costCenters,
		QuantityTotals:           quantities,
		CostCenterPercentOfTotal: costCenterPercent,
	}
}

func (s *Service) buildBlade(report *domain.DashboardReport, kpi domain.BladePurchaseKPI) domain.BladeReport {
	t := kpi.Totals
	consistent := ConsistencyCheck(t.Purchased, t.PassedOnToClient, t.NotPassedOn)

	if !consistent {
		report.Warnings = append(report.Warnings, domain.ConsistencyWarning{
			Check:    CheckBladePassedOn,
			Message:  fmt.Sprintf("repassado + não repassado (%.2f) difere do comprado (%.2f)", t.PassedOnToClient+t.NotPassedOn, t.Purchased),
			Expected: t.Purchased,
			Actual:   t.PassedOnToClient + t.NotPassedOn,
		})
	}

	return domain.BladeReport{
		Totals:                  t,
		Consistent:              consistent,
		PassedOnPercent:         utils.RoundWithTwoDecimalPlace(PercentageOfTotal(t.PassedOnToClient, t.Purchased)),
		NotPassedOnPercent:      utils.RoundWithTwoDecimalPlace(PercentageOfTotal(t.NotPassedOn, t.Purchased)),
		DevelopmentPlannedTotal: SumDefined(kpi.DevelopmentPlanned.Values()),
		DevelopmentActualTotal:  SumDefined(kpi.DevelopmentActual.Values()),
		DevelopmentAchievement:  utils.RoundWithTwoDecimalPlace(AchievementPaired(kpi.DevelopmentActual.Values(), kpi.DevelopmentPlanned.Values())),
		ProductionPlannedTotal:  SumDefined(kpi.ProductionPlanned.Values()),
		ProductionActualTotal:   SumDefined(kpi.ProductionActual.Values()),
		ProductionAchievement:   utils.RoundWithTwoDecimalPlace(AchievementPaired(kpi.ProductionActual.Values(), kpi.ProductionPlanned.Values())),
	}
}

func buildGauges(rt domain.ResponseTime, settings domain.GaugeSettings) []domain.GaugeReport {
	gauge := func(name string, days float64, t domain.Thresholds) domain.GaugeReport {
		return domain.GaugeReport{
			Name:           name,
			Days:           days,
			Thresholds:     t,
			Classification: ClassifyByThreshold(days, t),
		}
	}

	return []domain.GaugeReport{
		gauge(GaugeDevelopment, rt.Development, settings.Development),
		gauge(GaugeCommercial, rt.Commercial, settings.Commercial),
		gauge(GaugeClicheArrival, rt.ClicheArrival, settings.ClicheArrival),
	}
}

func buildSaleVsCost(saleVsCost domain.SaleVsCost) []domain.SaleVsCostSummary {
	summaries := make([]domain.SaleVsCostSummary, 0, len(domain.SaleCategories))
	for _, category := range domain.SaleCategories {
		summary := SummarizeSaleVsCost(saleVsCost.Items(category))
		summary.Category = category
		summary.CostAsPercentOfSale = utils.RoundWithTwoDecimalPlace(summary.CostAsPercentOfSale)
		summaries = append(summaries, summary)
	}
	return summaries
}
