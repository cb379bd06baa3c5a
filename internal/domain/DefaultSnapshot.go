package domain

// Valores padrão dos tempos de resposta (em dias) quando nenhum dado foi informado
const (
	DefaultDevelopmentResponseDays   = 1.5
	DefaultCommercialResponseDays    = 1.5
	DefaultClicheArrivalResponseDays = 3
)

// DefaultSnapshot retorna os dados iniciais do painel
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Products: []Product{
			{Name: "BOBINA", Quantity: 9, Value: 31134.0},
			{Name: "ETIQUETA", Quantity: 29, Value: 23445.0},
			{Name: "RÓTULO", Quantity: 2, Value: 15000.2},
		},
		Totals:     Totals{Quantity: 40, Value: 78579.2},
		Financial:  Financial{Invoiced: 78144.5, Cancelled: 437.7},
		ItemStatus: ItemStatus{Completed: 27, Cancelled: 13},
		Deadline:   Deadline{OnTime: 22, Late: 5},
		Proposals:  Proposals{WithProposal: 6, WithoutProposal: 34},
		Conversion: Conversion{EnteredWithout: 34, BecameOrder: 22, DidNotBecomeOrder: 12},
		RevenueLastYear: Series{
			NoData(), NoData(), Float(57218.31), Float(107826.7), Float(156192.11), Float(102083.74),
			Float(115014.82), Float(162736.6), Float(254443.1), Float(101276.86), Float(104766.52), Float(40545.76),
		},
		RevenueThisYear: Series{Float(78144.5)},
		DevelopmentLastYear: Series{
			NoData(), NoData(), Float(19), Float(40), Float(45), Float(53),
			Float(65), Float(46), Float(96), Float(44), Float(25), Float(25),
		},
		DevelopmentThisYear: Series{Float(40)},
		Target:              NoData(),
		ClichePurchase: ClichePurchaseKPI{
			Categories: []CategoryBucket{
				{Key: "des", Label: "DESENVOLVIMENTO", Value: 5074.44},
				{Key: "rep", Label: "REPOSIÇÃO", Value: 4838.11},
				{Key: "tot", Label: "TOTAL", Value: 9912.55},
			},
			CostCenters: []CategoryBucket{
				{Key: "psr", Label: "PSR", Value: 8342.61},
				{Key: "cli", Label: "CLIENTE", Value: 1569.94},
			},
			Quantities: []QuantityBucket{
				{Key: "des", Label: "COMPRAS DESENVOLVIMENTO", Quantity: 11},
				{Key: "rep", Label: "COMPRAS REPOSIÇÃO", Quantity: 11},
			},
			PlannedMonthly:           13500,
			Actual:                   Series{Float(4677.98)},
			PlannedMonthlyProduction: 4500,
			ActualProduction:         Series{Float(3779.09)},
		},
		BladePurchase: BladePurchaseKPI{
			Totals:             BladeTotals{Sold: 3555.0, Purchased: 1682.58, PassedOnToClient: 1682.58, NotPassedOn: 0},
			DevelopmentPlanned: Series{Float(5000)},
			DevelopmentActual:  Series{Float(932.58)},
			ProductionPlanned:  Series{Float(9000)},
			ProductionActual:   Series{Float(4588.85)},
		},
		SaleVsCost: NewSaleVsCost(),
		ResponseTime: ResponseTime{
			Development:   DefaultDevelopmentResponseDays,
			Commercial:    DefaultCommercialResponseDays,
			ClicheArrival: DefaultClicheArrivalResponseDays,
		},
	}
}
