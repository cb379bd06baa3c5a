package measuring

import (
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

// Reporter define a interface para montar o relatório derivado do painel
type Reporter interface {
	// BuildReport calcula todos os valores derivados a partir de um snapshot
	BuildReport(snapshot domain.Snapshot, gauges domain.GaugeSettings) *domain.DashboardReport
}
