package publishing

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/measuring"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/merging"
	"github.com/vfg2006/kpi-dashboard/pkg/log"
)

// Service implementa a interface Publisher
type Service struct {
	snapshotRepository repository.SnapshotRepository
	merger             merging.Merger
	reporter           measuring.Reporter
	gauges             domain.GaugeSettings

	// applyMu serializa leitura, merge e publicação de cada documento
	applyMu sync.Mutex
}

// NewService cria uma nova instância do serviço de publicação
func NewService(
	snapshotRepository repository.SnapshotRepository,
	merger merging.Merger,
	reporter measuring.Reporter,
	gauges domain.GaugeSettings,
) Publisher {
	return &Service{
		snapshotRepository: snapshotRepository,
		merger:             merger,
		reporter:           reporter,
		gauges:             gauges,
	}
}

func (s *Service) Current() domain.PublishedSnapshot {
	return s.snapshotRepository.Current()
}

func (s *Service) Apply(ctx context.Context, raw []byte) (*ApplyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	prior := s.snapshotRepository.Current()

	result, err := s.merger.Merge(prior.Snapshot, raw)
	if err != nil {
		logger.WithError(err).WithField("revision", prior.Revision).Warn("Documento rejeitado, snapshot publicado mantido")
		return nil, err
	}

	for _, w := range result.Warnings {
		logger.WithFields(log.Fields{
			"field":  w.Field,
			"reason": string(w.Reason),
		}).Warn("Campo ignorado ou convertido: ", w.Details)
	}

	published, err := s.snapshotRepository.Replace(result.Snapshot)
	if err != nil {
		logger.WithError(err).Error("Erro ao publicar snapshot")
		return nil, errors.Wrap(err, "erro ao publicar snapshot")
	}

	logger.WithFields(log.Fields{
		"revision": published.Revision,
		"warnings": len(result.Warnings),
	}).Info("Snapshot publicado")

	return &ApplyResult{
		Published: published,
		Warnings:  result.Warnings,
	}, nil
}

func (s *Service) Report(ctx context.Context) *domain.DashboardReport {
	published := s.snapshotRepository.Current()

	report := s.reporter.BuildReport(published.Snapshot, s.gauges)
	report.Revision = published.Revision

	logger := log.ForContext(ctx).WithField("revision", published.Revision)
	for _, w := range report.Warnings {
		logger.WithField("check", w.Check).Debug("Inconsistência nos dados: ", w.Message)
	}

	return report
}
