package domain

// SaleCategory identifica o grupo de produto do comparativo venda × custo
type SaleCategory string

const (
	SaleCategoryETQ SaleCategory = "ETQ" // Etiquetas
	SaleCategoryBOB SaleCategory = "BOB" // Bobinas
	SaleCategoryROT SaleCategory = "ROT" // Rótulos
)

// SaleCategories é o conjunto fixo de categorias, na ordem de exibição
var SaleCategories = []SaleCategory{SaleCategoryETQ, SaleCategoryBOB, SaleCategoryROT}

// IsValid verifica se a categoria pertence ao conjunto fixo
func (c SaleCategory) IsValid() bool {
	for _, known := range SaleCategories {
		if c == known {
			return true
		}
	}
	return false
}

// SaleVsCostItem é um pedido com o valor de venda e o custo de clichê associado
type SaleVsCostItem struct {
	Type             string  `json:"type" yaml:"type"`
	Code             string  `json:"code" yaml:"code"`
	OrderRef         string  `json:"orderRef" yaml:"orderRef"`
	Client           string  `json:"client" yaml:"client"`
	SaleValue        float64 `json:"saleValue" yaml:"saleValue"`
	CostValue        float64 `json:"costValue" yaml:"costValue"`
	PassedOnToClient bool    `json:"passedOnToClient" yaml:"passedOnToClient"`
}

// SaleVsCost agrupa os itens por categoria
type SaleVsCost map[SaleCategory][]SaleVsCostItem

// NewSaleVsCost cria o agrupamento com todas as categorias fixas vazias
func NewSaleVsCost() SaleVsCost {
	out := make(SaleVsCost, len(SaleCategories))
	for _, c := range SaleCategories {
		out[c] = []SaleVsCostItem{}
	}
	return out
}

// Items retorna os itens de uma categoria (nunca nil)
func (s SaleVsCost) Items(category SaleCategory) []SaleVsCostItem {
	if items, ok := s[category]; ok && items != nil {
		return items
	}
	return []SaleVsCostItem{}
}

// Clone copia o agrupamento garantindo todas as categorias fixas
func (s SaleVsCost) Clone() SaleVsCost {
	out := NewSaleVsCost()
	for c, items := range s {
		if !c.IsValid() {
			continue
		}
		out[c] = append(make([]SaleVsCostItem, 0, len(items)), items...)
	}
	return out
}
