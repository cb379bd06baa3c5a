package merging

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
)

// Mesmo comportamento da biblioteca padrão, mas preservando os números como
// json.Number para que o cast de cada campo decida a conversão
var documentParser = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// fieldApplier aplica um campo de primeiro nível ao snapshot em construção
type fieldApplier func(m *merger, path string, value any)

// Chaves de primeiro nível reconhecidas. Qualquer outra é ignorada.
var topLevelFields = map[string]fieldApplier{
	"products":            applyProducts,
	"totals":              applyTotals,
	"financial":           applyFinancial,
	"itemStatus":          applyItemStatus,
	"deadline":            applyDeadline,
	"proposals":           applyProposals,
	"conversion":          applyConversion,
	"revenueLastYear":     seriesApplier(func(s *domain.Snapshot) *domain.Series { return &s.RevenueLastYear }),
	"revenueThisYear":     seriesApplier(func(s *domain.Snapshot) *domain.Series { return &s.RevenueThisYear }),
	"developmentLastYear": seriesApplier(func(s *domain.Snapshot) *domain.Series { return &s.DevelopmentLastYear }),
	"developmentThisYear": seriesApplier(func(s *domain.Snapshot) *domain.Series { return &s.DevelopmentThisYear }),
	"target":              applyTarget,
	"clichePurchaseKPI":   applyClichePurchase,
	"bladePurchaseKPI":    applyBladePurchase,
	"saleVsCostItems":     applySaleVsCost,
	"responseTime":        applyResponseTime,
}

// merger acumula o snapshot em construção e os avisos de um único merge
type merger struct {
	next     domain.Snapshot
	warnings []FieldWarning
}

func (m *merger) warn(field string, reason WarningReason, details string) {
	m.warnings = append(m.warnings, FieldWarning{Field: field, Reason: reason, Details: details})
}

// Service implementa a interface Merger
type Service struct{}

// NewService cria uma nova instância do motor de merge
func NewService() Merger {
	return &Service{}
}

// Merge valida o documento e o combina com o snapshot anterior.
// Campos ausentes mantêm os valores anteriores; campos presentes são
// convertidos individualmente e nunca bloqueiam a aceitação do documento.
func (s *Service) Merge(prior domain.Snapshot, raw []byte) (*MergeResult, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, NewMergeError(ErrInvalidJSON, KindSyntax, appErrors.ErrInvalidJSON, "documento vazio")
	}

	var document any
	if err := documentParser.Unmarshal(raw, &document); err != nil {
		return nil, NewMergeError(ErrInvalidJSON, KindSyntax, appErrors.ErrInvalidJSON, err.Error())
	}

	fields, ok := document.(map[string]any)
	if !ok {
		return nil, NewMergeError(ErrNotObject, KindNotObject, appErrors.ErrNotObject, fmt.Sprintf("recebido %s", describe(document)))
	}

	m := &merger{next: prior.Clone()}

	for _, key := range sortedKeys(fields) {
		apply, known := topLevelFields[key]
		if !known {
			m.warn(key, ReasonUnknownField, "")
			continue
		}
		apply(m, key, fields[key])
	}

	return &MergeResult{
		Snapshot: m.next,
		Warnings: m.warnings,
	}, nil
}

func sortedKeys(obj map[string]any) []string {
	return slices.Sorted(maps.Keys(obj))
}

func applyProducts(m *merger, path string, value any) {
	arr, ok := m.array(path, value)
	if !ok {
		return
	}

	products := make([]domain.Product, 0, len(arr))
	for i, element := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		rec := m.record(itemPath, element)
		products = append(products, domain.Product{
			Name:     m.text(join(itemPath, "name"), rec["name"], "Item"),
			Quantity: m.integer(join(itemPath, "quantity"), rec["quantity"]),
			Value:    m.number(join(itemPath, "value"), rec["value"]),
		})
	}
	m.next.Products = products
}

func applyTotals(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "quantity", "value")
	m.intField(obj, path, "quantity", &m.next.Totals.Quantity)
	m.numberField(obj, path, "value", &m.next.Totals.Value)
}

func applyFinancial(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "invoiced", "cancelled")
	m.numberField(obj, path, "invoiced", &m.next.Financial.Invoiced)
	m.numberField(obj, path, "cancelled", &m.next.Financial.Cancelled)
}

func applyItemStatus(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "completed", "cancelled")
	m.intField(obj, path, "completed", &m.next.ItemStatus.Completed)
	m.intField(obj, path, "cancelled", &m.next.ItemStatus.Cancelled)
}

func applyDeadline(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "onTime", "late")
	m.intField(obj, path, "onTime", &m.next.Deadline.OnTime)
	m.intField(obj, path, "late", &m.next.Deadline.Late)
}

func applyProposals(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "withProposal", "withoutProposal")
	m.intField(obj, path, "withProposal", &m.next.Proposals.WithProposal)
	m.intField(obj, path, "withoutProposal", &m.next.Proposals.WithoutProposal)
}

func applyConversion(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "enteredWithout", "becameOrder", "didNotBecomeOrder")
	m.intField(obj, path, "enteredWithout", &m.next.Conversion.EnteredWithout)
	m.intField(obj, path, "becameOrder", &m.next.Conversion.BecameOrder)
	m.intField(obj, path, "didNotBecomeOrder", &m.next.Conversion.DidNotBecomeOrder)
}

func seriesApplier(field func(s *domain.Snapshot) *domain.Series) fieldApplier {
	return func(m *merger, path string, value any) {
		m.series(path, value, field(&m.next))
	}
}

// applyTarget: null remove a meta, qualquer outro valor passa pelo cast numérico
func applyTarget(m *merger, path string, value any) {
	if value == nil {
		m.next.Target = domain.NoData()
		return
	}
	m.next.Target = domain.Float(m.number(path, value))
}

func applyClichePurchase(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "categories", "costCenters", "quantities", "plannedMonthly", "actual", "plannedMonthlyProduction", "actualProduction")

	kpi := &m.next.ClichePurchase

	if v, present := obj["categories"]; present {
		if buckets, ok := m.categoryBuckets(join(path, "categories"), v); ok {
			kpi.Categories = buckets
		}
	}
	if v, present := obj["costCenters"]; present {
		if buckets, ok := m.categoryBuckets(join(path, "costCenters"), v); ok {
			kpi.CostCenters = buckets
		}
	}
	if v, present := obj["quantities"]; present {
		if buckets, ok := m.quantityBuckets(join(path, "quantities"), v); ok {
			kpi.Quantities = buckets
		}
	}

	m.numberField(obj, path, "plannedMonthly", &kpi.PlannedMonthly)
	m.numberField(obj, path, "plannedMonthlyProduction", &kpi.PlannedMonthlyProduction)

	if v, present := obj["actual"]; present {
		m.series(join(path, "actual"), v, &kpi.Actual)
	}
	if v, present := obj["actualProduction"]; present {
		m.series(join(path, "actualProduction"), v, &kpi.ActualProduction)
	}
}

func (m *merger) categoryBuckets(path string, value any) ([]domain.CategoryBucket, bool) {
	arr, ok := m.array(path, value)
	if !ok {
		return nil, false
	}

	buckets := make([]domain.CategoryBucket, 0, len(arr))
	for i, element := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		rec := m.record(itemPath, element)
		buckets = append(buckets, domain.CategoryBucket{
			Key:   m.text(join(itemPath, "key"), rec["key"], ""),
			Label: m.text(join(itemPath, "label"), rec["label"], ""),
			Value: m.number(join(itemPath, "value"), rec["value"]),
		})
	}
	return buckets, true
}

func (m *merger) quantityBuckets(path string, value any) ([]domain.QuantityBucket, bool) {
	arr, ok := m.array(path, value)
	if !ok {
		return nil, false
	}

	buckets := make([]domain.QuantityBucket, 0, len(arr))
	for i, element := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		rec := m.record(itemPath, element)
		buckets = append(buckets, domain.QuantityBucket{
			Key:      m.text(join(itemPath, "key"), rec["key"], ""),
			Label:    m.text(join(itemPath, "label"), rec["label"], ""),
			Quantity: m.integer(join(itemPath, "quantity"), rec["quantity"]),
		})
	}
	return buckets, true
}

func applyBladePurchase(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "totals", "developmentPlanned", "developmentActual", "productionPlanned", "productionActual")

	kpi := &m.next.BladePurchase

	if v, present := obj["totals"]; present {
		totalsPath := join(path, "totals")
		if totals, ok := m.object(totalsPath, v); ok {
			m.unknownKeys(totalsPath, totals, "sold", "purchased", "passedOnToClient", "notPassedOn")
			m.numberField(totals, totalsPath, "sold", &kpi.Totals.Sold)
			m.numberField(totals, totalsPath, "purchased", &kpi.Totals.Purchased)
			m.numberField(totals, totalsPath, "passedOnToClient", &kpi.Totals.PassedOnToClient)
			m.numberField(totals, totalsPath, "notPassedOn", &kpi.Totals.NotPassedOn)
		}
	}

	seriesFields := []struct {
		key string
		dst *domain.Series
	}{
		{"developmentPlanned", &kpi.DevelopmentPlanned},
		{"developmentActual", &kpi.DevelopmentActual},
		{"productionPlanned", &kpi.ProductionPlanned},
		{"productionActual", &kpi.ProductionActual},
	}
	for _, field := range seriesFields {
		if v, present := obj[field.key]; present {
			m.series(join(path, field.key), v, field.dst)
		}
	}
}

// applySaleVsCost substitui por inteiro a lista de cada categoria presente;
// categorias ausentes mantêm os itens anteriores
func applySaleVsCost(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}

	for _, key := range sortedKeys(obj) {
		categoryPath := join(path, key)
		category := domain.SaleCategory(key)
		if !category.IsValid() {
			m.warn(categoryPath, ReasonUnknownField, "categoria fora do conjunto ETQ, BOB, ROT")
			continue
		}

		arr, ok := m.array(categoryPath, obj[key])
		if !ok {
			continue
		}

		items := make([]domain.SaleVsCostItem, 0, len(arr))
		for i, element := range arr {
			itemPath := fmt.Sprintf("%s[%d]", categoryPath, i)
			rec := m.record(itemPath, element)
			items = append(items, domain.SaleVsCostItem{
				Type:             m.text(join(itemPath, "type"), rec["type"], ""),
				Code:             m.text(join(itemPath, "code"), rec["code"], ""),
				OrderRef:         m.text(join(itemPath, "orderRef"), rec["orderRef"], ""),
				Client:           m.text(join(itemPath, "client"), rec["client"], ""),
				SaleValue:        m.number(join(itemPath, "saleValue"), rec["saleValue"]),
				CostValue:        m.number(join(itemPath, "costValue"), rec["costValue"]),
				PassedOnToClient: m.boolean(join(itemPath, "passedOnToClient"), rec["passedOnToClient"]),
			})
		}
		m.next.SaleVsCost[category] = items
	}
}

func applyResponseTime(m *merger, path string, value any) {
	obj, ok := m.object(path, value)
	if !ok {
		return
	}
	m.unknownKeys(path, obj, "development", "commercial", "clicheArrival")
	m.numberField(obj, path, "development", &m.next.ResponseTime.Development)
	m.numberField(obj, path, "commercial", &m.next.ResponseTime.Commercial)
	m.numberField(obj, path, "clicheArrival", &m.next.ResponseTime.ClicheArrival)
}
