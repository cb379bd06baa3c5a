package merging

import (
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

// MergeResult é o produto de um merge bem sucedido
type MergeResult struct {
	Snapshot domain.Snapshot
	Warnings []FieldWarning
}

// Merger define a interface do motor de validação e merge
type Merger interface {
	// Merge valida o documento bruto e o combina com o snapshot anterior.
	// O snapshot anterior nunca é alterado; em caso de erro nenhum snapshot é produzido.
	Merge(prior domain.Snapshot, raw []byte) (*MergeResult, error)
}
