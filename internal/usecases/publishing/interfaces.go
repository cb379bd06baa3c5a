package publishing

import (
	"context"

	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/merging"
)

//go:generate mockgen -destination=mocks/publisher.go -package=mocks . Publisher

// ApplyResult é o resultado de um documento aceito e publicado
type ApplyResult struct {
	Published domain.PublishedSnapshot
	Warnings  []merging.FieldWarning
}

// Publisher define a interface de publicação do snapshot corrente
type Publisher interface {
	// Current retorna o snapshot publicado
	Current() domain.PublishedSnapshot

	// Apply combina o documento com o snapshot publicado e publica o resultado.
	// Documentos rejeitados não alteram o snapshot publicado.
	Apply(ctx context.Context, raw []byte) (*ApplyResult, error)

	// Report calcula o relatório derivado do snapshot publicado
	Report(ctx context.Context) *domain.DashboardReport
}
