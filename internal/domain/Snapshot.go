package domain

import "time"

// Snapshot é a representação completa e imutável dos dados de KPI em um
// instante. Nunca é alterada campo a campo após publicada: cada merge bem
// sucedido produz um novo Snapshot.
type Snapshot struct {
	Products            []Product         `json:"products" yaml:"products"`
	Totals              Totals            `json:"totals" yaml:"totals"`
	Financial           Financial         `json:"financial" yaml:"financial"`
	ItemStatus          ItemStatus        `json:"itemStatus" yaml:"itemStatus"`
	Deadline            Deadline          `json:"deadline" yaml:"deadline"`
	Proposals           Proposals         `json:"proposals" yaml:"proposals"`
	Conversion          Conversion        `json:"conversion" yaml:"conversion"`
	RevenueLastYear     Series            `json:"revenueLastYear" yaml:"revenueLastYear"`
	RevenueThisYear     Series            `json:"revenueThisYear" yaml:"revenueThisYear"`
	DevelopmentLastYear Series            `json:"developmentLastYear" yaml:"developmentLastYear"`
	DevelopmentThisYear Series            `json:"developmentThisYear" yaml:"developmentThisYear"`
	Target              NullFloat         `json:"target" yaml:"target"` // Sem dados = sem linha de meta
	ClichePurchase      ClichePurchaseKPI `json:"clichePurchaseKPI" yaml:"clichePurchaseKPI"`
	BladePurchase       BladePurchaseKPI  `json:"bladePurchaseKPI" yaml:"bladePurchaseKPI"`
	SaleVsCost          SaleVsCost        `json:"saleVsCostItems" yaml:"saleVsCostItems"`
	ResponseTime        ResponseTime      `json:"responseTime" yaml:"responseTime"`
}

type Product struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Value    float64 `json:"value" yaml:"value"`
}

// Totals deveria bater com a soma dos produtos, mas não é recalculado
// automaticamente: o operador pode sobrescrever
type Totals struct {
	Quantity int     `json:"quantity" yaml:"quantity"`
	Value    float64 `json:"value" yaml:"value"`
}

type Financial struct {
	Invoiced  float64 `json:"invoiced" yaml:"invoiced"`
	Cancelled float64 `json:"cancelled" yaml:"cancelled"`
}

type ItemStatus struct {
	Completed int `json:"completed" yaml:"completed"`
	Cancelled int `json:"cancelled" yaml:"cancelled"`
}

type Deadline struct {
	OnTime int `json:"onTime" yaml:"onTime"`
	Late   int `json:"late" yaml:"late"`
}

type Proposals struct {
	WithProposal    int `json:"withProposal" yaml:"withProposal"`
	WithoutProposal int `json:"withoutProposal" yaml:"withoutProposal"`
}

// Conversion descreve o funil dos itens que entraram sem proposta.
// Esperado (não validado): BecameOrder + DidNotBecomeOrder == EnteredWithout
type Conversion struct {
	EnteredWithout    int `json:"enteredWithout" yaml:"enteredWithout"`
	BecameOrder       int `json:"becameOrder" yaml:"becameOrder"`
	DidNotBecomeOrder int `json:"didNotBecomeOrder" yaml:"didNotBecomeOrder"`
}

// CategoryBucket é um agrupamento rotulado de valores em R$
type CategoryBucket struct {
	Key   string  `json:"key" yaml:"key"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// QuantityBucket é um agrupamento rotulado de quantidades
type QuantityBucket struct {
	Key      string `json:"key" yaml:"key"`
	Label    string `json:"label" yaml:"label"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// ClichePurchaseKPI agrupa os indicadores de compra de clichês
type ClichePurchaseKPI struct {
	Categories               []CategoryBucket `json:"categories" yaml:"categories"`
	CostCenters              []CategoryBucket `json:"costCenters" yaml:"costCenters"`
	Quantities               []QuantityBucket `json:"quantities" yaml:"quantities"`
	PlannedMonthly           float64          `json:"plannedMonthly" yaml:"plannedMonthly"` // Previsto fixo por mês
	Actual                   Series           `json:"actual" yaml:"actual"`
	PlannedMonthlyProduction float64          `json:"plannedMonthlyProduction" yaml:"plannedMonthlyProduction"`
	ActualProduction         Series           `json:"actualProduction" yaml:"actualProduction"`
}

// BladeTotals são os totais acumulados de compra de facas
type BladeTotals struct {
	Sold             float64 `json:"sold" yaml:"sold"`
	Purchased        float64 `json:"purchased" yaml:"purchased"`
	PassedOnToClient float64 `json:"passedOnToClient" yaml:"passedOnToClient"`
	NotPassedOn      float64 `json:"notPassedOn" yaml:"notPassedOn"`
}

// BladePurchaseKPI agrupa os indicadores de compra de facas
type BladePurchaseKPI struct {
	Totals             BladeTotals `json:"totals" yaml:"totals"`
	DevelopmentPlanned Series      `json:"developmentPlanned" yaml:"developmentPlanned"`
	DevelopmentActual  Series      `json:"developmentActual" yaml:"developmentActual"`
	ProductionPlanned  Series      `json:"productionPlanned" yaml:"productionPlanned"`
	ProductionActual   Series      `json:"productionActual" yaml:"productionActual"`
}

// ResponseTime são as médias em dias usadas pelos medidores
type ResponseTime struct {
	Development   float64 `json:"development" yaml:"development"`
	Commercial    float64 `json:"commercial" yaml:"commercial"`
	ClicheArrival float64 `json:"clicheArrival" yaml:"clicheArrival"`
}

// PublishedSnapshot é o snapshot atualmente publicado junto com sua revisão
type PublishedSnapshot struct {
	Revision    string    `json:"revision"`
	PublishedAt time.Time `json:"published_at"`
	Snapshot    Snapshot  `json:"snapshot"`
}

// Clone devolve uma cópia profunda, sem nenhum slice ou map compartilhado
func (s Snapshot) Clone() Snapshot {
	out := s

	out.Products = append(make([]Product, 0, len(s.Products)), s.Products...)
	out.ClichePurchase.Categories = append(make([]CategoryBucket, 0, len(s.ClichePurchase.Categories)), s.ClichePurchase.Categories...)
	out.ClichePurchase.CostCenters = append(make([]CategoryBucket, 0, len(s.ClichePurchase.CostCenters)), s.ClichePurchase.CostCenters...)
	out.ClichePurchase.Quantities = append(make([]QuantityBucket, 0, len(s.ClichePurchase.Quantities)), s.ClichePurchase.Quantities...)
	out.SaleVsCost = s.SaleVsCost.Clone()

	return out
}
