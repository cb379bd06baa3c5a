package scheduler

import (
	"bytes"
	"context"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard/internal/config"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/publishing"
	"github.com/vfg2006/kpi-dashboard/pkg/log"
)

// DataFileSyncConfig representa a configuração da recarga periódica do arquivo de dados
type DataFileSyncConfig struct {
	CronSchedule string
	DataFile     string
	SyncEnabled  bool
}

// DataFileSyncService relê o arquivo de dados e publica o conteúdo quando ele muda
type DataFileSyncService struct {
	scheduler           *gocron.Scheduler
	config              DataFileSyncConfig
	publisher           publishing.Publisher
	readFile            func(name string) ([]byte, error)
	onPublished         func(ctx context.Context, result *publishing.ApplyResult)
	syncRunning         bool
	syncPending         bool
	syncMutex           sync.Mutex
	lastContent         []byte
	lastRevision        string
	lastError           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDataFileSyncService cria uma nova instância do serviço de recarga do arquivo de dados
func NewDataFileSyncService(publisher publishing.Publisher, dataFile string, appConfig *config.Config) *DataFileSyncService {
	syncConfig := DataFileSyncConfig{
		CronSchedule: appConfig.DataFileSync.CronSchedule,
		DataFile:     dataFile,
		SyncEnabled:  appConfig.DataFileSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"data_file":     syncConfig.DataFile,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Debug("Configuração do agendador do arquivo de dados carregada")

	return &DataFileSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		publisher: publisher,
		readFile:  os.ReadFile,
	}
}

// OnPublished registra uma função chamada após cada publicação bem sucedida
func (s *DataFileSyncService) OnPublished(fn func(ctx context.Context, result *publishing.ApplyResult)) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.onPublished = fn
}

// Start agenda a recarga periódica. O agendador para quando o contexto é cancelado.
func (s *DataFileSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled || s.config.DataFile == "" {
		logrus.Info("Recarga periódica do arquivo de dados desabilitada")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do arquivo de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDataFile(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar recarga do arquivo de dados")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do arquivo de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDataFile é a execução agendada: erros só são registrados
func (s *DataFileSyncService) syncDataFile(ctx context.Context) {
	if _, err := s.SyncNow(ctx); err != nil {
		log.ForContext(ctx).WithError(err).WithField("data_file", s.config.DataFile).Error("Erro na recarga do arquivo de dados")
	}
}

// SyncNow lê o arquivo e publica o conteúdo se ele mudou desde a última leitura.
// Retorna true quando um novo snapshot foi publicado. Uma chamada feita durante
// outra recarga marca uma releitura, executada assim que a recarga atual termina.
func (s *DataFileSyncService) SyncNow(ctx context.Context) (bool, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncPending = true
		s.syncMutex.Unlock()
		logrus.Info("Recarga do arquivo de dados já em andamento, releitura agendada")
		return false, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	published, err := s.sync(ctx)

	for {
		s.syncMutex.Lock()
		if !s.syncPending || ctx.Err() != nil {
			s.syncPending = false
			s.syncRunning = false
			s.lastSyncCompletedAt = time.Now()
			if err != nil {
				s.lastError = err.Error()
			} else {
				s.lastError = ""
			}
			s.syncMutex.Unlock()
			return published, err
		}
		s.syncPending = false
		s.syncMutex.Unlock()

		logrus.Debug("Releitura pendente do arquivo de dados")

		var again bool
		again, err = s.sync(ctx)
		published = published || again
	}
}

func (s *DataFileSyncService) sync(ctx context.Context) (bool, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("data_file", s.config.DataFile)

	content, err := s.readFile(s.config.DataFile)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao ler arquivo de dados %s", s.config.DataFile)
	}

	s.syncMutex.Lock()
	unchanged := s.lastContent != nil && bytes.Equal(content, s.lastContent)
	s.syncMutex.Unlock()

	if unchanged {
		logger.Debug("Arquivo de dados sem alterações")
		return false, nil
	}

	result, err := s.publisher.Apply(ctx, content)
	if err != nil {
		return false, err
	}

	s.syncMutex.Lock()
	s.lastContent = content
	s.lastRevision = result.Published.Revision
	onPublished := s.onPublished
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{
		"revision": result.Published.Revision,
		"warnings": len(result.Warnings),
	}).Info("Arquivo de dados recarregado")

	if onPublished != nil {
		onPublished(ctx, result)
	}

	return true, nil
}

// TriggerManualSync inicia manualmente uma recarga do arquivo de dados
func (s *DataFileSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncPending = true
		s.syncMutex.Unlock()
		logrus.Info("Recarga do arquivo de dados já em andamento, releitura agendada")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do arquivo de dados")
	go s.syncDataFile(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *DataFileSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"data_file":              s.config.DataFile,
		"last_revision":          s.lastRevision,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
