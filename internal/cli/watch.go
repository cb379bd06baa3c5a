package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/publishing"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"github.com/vfg2006/kpi-dashboard/pkg/format"
	"github.com/vfg2006/kpi-dashboard/pkg/log"
	"golang.org/x/sync/errgroup"
)

var watchData string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Mantém o snapshot atualizado a partir do arquivo de dados",
	Long: `Carrega o arquivo de dados e o recarrega a cada gravação e no horário
do agendador (DATA_FILE_SYNC_CRON). SIGHUP força uma recarga; SIGINT ou
SIGTERM encerram o comando. Um documento inválido nunca substitui o
snapshot publicado.`,
	Args: argsAtMost(0),
	RunE: wrap(runWatch),
}

func init() {
	watchCmd.Flags().StringVar(&watchData, "data", "", "Arquivo de dados observado (padrão: DASHBOARD_DATA_FILE)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()

	dataFile := watchData
	if dataFile == "" {
		dataFile = cfg.Dashboard.DataFile
	}
	if dataFile == "" {
		return newCommandError(appErrors.ErrInvalidArgument, ErrMissingDataFile)
	}

	publisher, err := newPublisher(domain.DefaultSnapshot(), cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	syncService := scheduler.NewDataFileSyncService(publisher, dataFile, cfg)
	syncService.OnPublished(func(ctx context.Context, _ *publishing.ApplyResult) {
		logReportSummary(ctx, publisher)
	})

	// Carga inicial: sem arquivo válido o snapshot padrão continua publicado
	if _, err := syncService.SyncNow(ctx); err != nil {
		log.ForContext(ctx).WithError(err).WithField("data_file", dataFile).Warn("Carga inicial falhou, mantendo snapshot padrão")
		logReportSummary(ctx, publisher)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return syncService.Start(gctx)
	})

	var watcher *scheduler.DataFileWatcher
	if cfg.DataFileSync.WatchEnabled {
		watcher, err = scheduler.NewDataFileWatcher(dataFile, cfg.DataFileSync.WatchDebounce, func(ctx context.Context) error {
			_, err := syncService.SyncNow(ctx)
			return err
		})
		if err != nil {
			return errors.Wrap(err, "erro ao criar observador do arquivo de dados")
		}

		g.Go(func() error {
			if err := watcher.Start(gctx); err != nil {
				return err
			}
			<-gctx.Done()
			watcher.Stop()
			return nil
		})
	}

	g.Go(func() error {
		hangup := make(chan os.Signal, 1)
		signal.Notify(hangup, syscall.SIGHUP)
		defer signal.Stop(hangup)

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-hangup:
				syncService.TriggerManualSync(gctx)
			}
		}
	})

	log.ForContext(ctx).WithField("data_file", dataFile).Info("Aguardando alterações no arquivo de dados")

	err = g.Wait()

	fields := log.Fields{
		"revision":    publisher.Current().Revision,
		"sync_status": syncService.GetStatus(),
		"data_file":   dataFile,
	}
	if watcher != nil {
		stats := watcher.GetStats()
		fields["watch_events"] = stats.Events
		fields["watch_reloads"] = stats.Reloads
		fields["watch_errors"] = stats.Errors
	}
	log.ForContext(ctx).WithFields(fields).Info("Observação do arquivo de dados encerrada")

	return err
}

// logReportSummary registra os principais indicadores do snapshot publicado
func logReportSummary(ctx context.Context, publisher publishing.Publisher) {
	report := publisher.Report(ctx)

	log.ForContext(ctx).WithFields(log.Fields{
		"revision":               report.Revision,
		"snapshot_invoiced":      format.Currency(report.Cards.Invoiced),
		"snapshot_revenue_total": format.Currency(report.Revenue.Total),
		"snapshot_best_month":    report.Revenue.BestMonth.Label,
		"snapshot_warnings":      len(report.Warnings),
	}).Info("Resumo do painel atualizado")
}
