package domain

// DashboardReport reúne todos os valores derivados consumidos pela camada visual.
// Todos os números são valores puros, sem formatação.
type DashboardReport struct {
	Revision   string               `json:"revision,omitempty" yaml:"revision,omitempty"`
	Cards      KPICards             `json:"cards" yaml:"cards"`
	Products   ProductsReport       `json:"products" yaml:"products"`
	Revenue    RevenueReport        `json:"revenue" yaml:"revenue"`
	ItemStatus SplitReport          `json:"itemStatus" yaml:"itemStatus"`
	Deadline   SplitReport          `json:"deadline" yaml:"deadline"`
	Proposals  SplitReport          `json:"proposals" yaml:"proposals"`
	Conversion ConversionReport     `json:"conversion" yaml:"conversion"`
	Cliche     ClicheReport         `json:"cliche" yaml:"cliche"`
	Blade      BladeReport          `json:"blade" yaml:"blade"`
	Gauges     []GaugeReport        `json:"gauges" yaml:"gauges"`
	SaleVsCost []SaleVsCostSummary  `json:"saleVsCost" yaml:"saleVsCost"`
	Warnings   []ConsistencyWarning `json:"warnings" yaml:"warnings"`
}

type KPICards struct {
	TotalQuantity int     `json:"totalQuantity" yaml:"totalQuantity"`
	TotalValue    float64 `json:"totalValue" yaml:"totalValue"`
	Invoiced      float64 `json:"invoiced" yaml:"invoiced"`
	Cancelled     float64 `json:"cancelled" yaml:"cancelled"`
}

type ProductShare struct {
	Name           string  `json:"name" yaml:"name"`
	Quantity       int     `json:"quantity" yaml:"quantity"`
	Value          float64 `json:"value" yaml:"value"`
	PercentOfValue float64 `json:"percentOfValue" yaml:"percentOfValue"`
}

type ProductsReport struct {
	Items          []ProductShare `json:"items" yaml:"items"`
	Totals         Totals         `json:"totals" yaml:"totals"`
	ComputedTotals Totals         `json:"computedTotals" yaml:"computedTotals"` // Soma dos produtos
	Consistent     bool           `json:"consistent" yaml:"consistent"`
}

// MonthHighlight identifica um mês de destaque (melhor ou pior)
type MonthHighlight struct {
	Index int       `json:"index" yaml:"index"`
	Label string    `json:"label" yaml:"label"`
	Value NullFloat `json:"value" yaml:"value"`
}

type MonthPoint struct {
	Label       string    `json:"label" yaml:"label"`
	Revenue     NullFloat `json:"revenue" yaml:"revenue"`
	Development NullFloat `json:"development" yaml:"development"`
}

type RevenueReport struct {
	Total          float64        `json:"total" yaml:"total"`
	MonthlyAverage float64        `json:"monthlyAverage" yaml:"monthlyAverage"` // Média dos meses com valor
	DefinedMonths  int            `json:"definedMonths" yaml:"definedMonths"`
	BestMonth      MonthHighlight `json:"bestMonth" yaml:"bestMonth"`
	WorstMonth     MonthHighlight `json:"worstMonth" yaml:"worstMonth"`
	ThisYearTotal  float64        `json:"thisYearTotal" yaml:"thisYearTotal"`
	Target         NullFloat      `json:"target" yaml:"target"`
	Months         []MonthPoint   `json:"months" yaml:"months"`
	ItemsTotal     int            `json:"itemsTotal" yaml:"itemsTotal"`
}

// Split é uma fatia de um gráfico de rosca
type Split struct {
	Label   string  `json:"label" yaml:"label"`
	Value   int     `json:"value" yaml:"value"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type SplitReport struct {
	Total int     `json:"total" yaml:"total"`
	Parts []Split `json:"parts" yaml:"parts"`
}

type ConversionReport struct {
	Base                     int     `json:"base" yaml:"base"`
	WithProposal             int     `json:"withProposal" yaml:"withProposal"`
	BecameOrder              int     `json:"becameOrder" yaml:"becameOrder"`
	DidNotBecomeOrder        int     `json:"didNotBecomeOrder" yaml:"didNotBecomeOrder"`
	BecameOrderPercent       float64 `json:"becameOrderPercent" yaml:"becameOrderPercent"`
	DidNotBecomeOrderPercent float64 `json:"didNotBecomeOrderPercent" yaml:"didNotBecomeOrderPercent"`
	Consistent               bool    `json:"consistent" yaml:"consistent"`
}

type ClicheReport struct {
	PlannedMonthly           float64            `json:"plannedMonthly" yaml:"plannedMonthly"`
	PlannedTotal             float64            `json:"plannedTotal" yaml:"plannedTotal"`
	ActualTotal              float64            `json:"actualTotal" yaml:"actualTotal"`
	Achievement              float64            `json:"achievement" yaml:"achievement"`
	ProductionPlannedTotal   float64            `json:"productionPlannedTotal" yaml:"productionPlannedTotal"`
	ProductionActualTotal    float64            `json:"productionActualTotal" yaml:"productionActualTotal"`
	ProductionAchievement    float64            `json:"productionAchievement" yaml:"productionAchievement"`
	CategoryTotals           map[string]float64 `json:"categoryTotals" yaml:"categoryTotals"`
	CostCenterTotals         map[string]float64 `json:"costCenterTotals" yaml:"costCenterTotals"`
	QuantityTotals           map[string]float64 `json:"quantityTotals" yaml:"quantityTotals"`
	CostCenterPercentOfTotal map[string]float64 `json:"costCenterPercentOfTotal" yaml:"costCenterPercentOfTotal"`
}

type BladeReport struct {
	Totals                  BladeTotals `json:"totals" yaml:"totals"`
	Consistent              bool        `json:"consistent" yaml:"consistent"`
	PassedOnPercent         float64     `json:"passedOnPercent" yaml:"passedOnPercent"`
	NotPassedOnPercent      float64     `json:"notPassedOnPercent" yaml:"notPassedOnPercent"`
	DevelopmentPlannedTotal float64     `json:"developmentPlannedTotal" yaml:"developmentPlannedTotal"`
	DevelopmentActualTotal  float64     `json:"developmentActualTotal" yaml:"developmentActualTotal"`
	DevelopmentAchievement  float64     `json:"developmentAchievement" yaml:"developmentAchievement"`
	ProductionPlannedTotal  float64     `json:"productionPlannedTotal" yaml:"productionPlannedTotal"`
	ProductionActualTotal   float64     `json:"productionActualTotal" yaml:"productionActualTotal"`
	ProductionAchievement   float64     `json:"productionAchievement" yaml:"productionAchievement"`
}

// GaugeReport é um medidor de tempo de resposta já classificado
type GaugeReport struct {
	Name           string         `json:"name" yaml:"name"`
	Days           float64        `json:"days" yaml:"days"`
	Thresholds     Thresholds     `json:"thresholds" yaml:"thresholds"`
	Classification Classification `json:"classification" yaml:"classification"`
}

// SaleVsCostSummary é a agregação venda × custo de uma categoria
type SaleVsCostSummary struct {
	Category            SaleCategory `json:"category" yaml:"category"`
	Items               int          `json:"items" yaml:"items"`
	TotalSale           float64      `json:"totalSale" yaml:"totalSale"`
	TotalCost           float64      `json:"totalCost" yaml:"totalCost"`
	CostAsPercentOfSale float64      `json:"costAsPercentOfSale" yaml:"costAsPercentOfSale"`
	PassedOnCost        float64      `json:"passedOnCost" yaml:"passedOnCost"`
	NotPassedOnCost     float64      `json:"notPassedOnCost" yaml:"notPassedOnCost"`
}

// ConsistencyWarning sinaliza divergência entre totais relacionados.
// É apenas informativo: nunca bloqueia cálculo ou exibição.
type ConsistencyWarning struct {
	Check    string  `json:"check" yaml:"check"`
	Message  string  `json:"message" yaml:"message"`
	Expected float64 `json:"expected" yaml:"expected"`
	Actual   float64 `json:"actual" yaml:"actual"`
}
