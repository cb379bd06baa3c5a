package cli

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpi-dashboard/internal/config"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"github.com/vfg2006/kpi-dashboard/pkg/utils"
	"gopkg.in/yaml.v3"
)

var (
	reportData   string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Calcula os indicadores do painel",
	Long: `Aplica o arquivo de dados (opcional) sobre o snapshot padrão e mostra
os indicadores derivados em texto, JSON ou YAML.`,
	Example: `  kpi report
  kpi report --data kpi.json --format json`,
	Args: argsAtMost(0),
	RunE: wrap(runReport),
}

func init() {
	reportCmd.Flags().StringVar(&reportData, "data", "", "Arquivo JSON aplicado sobre o snapshot padrão (padrão: DASHBOARD_DATA_FILE)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Formato de saída: text, json ou yaml (padrão: DASHBOARD_OUTPUT_FORMAT)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()

	format := reportFormat
	if format == "" {
		format = cfg.Dashboard.OutputFormat
	}
	dataFile := reportData
	if dataFile == "" {
		dataFile = cfg.Dashboard.DataFile
	}

	publisher, err := newPublisher(domain.DefaultSnapshot(), cfg)
	if err != nil {
		return err
	}

	if err := applyDataFile(cmd, publisher, dataFile); err != nil {
		return err
	}

	out, err := renderReport(publisher.Report(cmd.Context()), format)
	if err != nil {
		return err
	}

	return writeOutput(cmd, "", out)
}

// renderReport serializa o relatório no formato pedido
func renderReport(report *domain.DashboardReport, format string) ([]byte, error) {
	switch format {
	case config.OutputText:
		var buf bytes.Buffer
		writeTextReport(&buf, report)
		return buf.Bytes(), nil

	case config.OutputJSON:
		out, err := utils.PrettyJSON(report)
		if err != nil {
			return nil, newCommandError(appErrors.ErrInternal, errors.Wrap(err, "erro ao serializar relatório"))
		}
		return out, nil

	case config.OutputYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return nil, newCommandError(appErrors.ErrInternal, errors.Wrap(err, "erro ao serializar relatório"))
		}
		return out, nil

	default:
		return nil, newCommandError(appErrors.ErrInvalidReportFmt, errors.Wrapf(ErrUnknownFormat, "%q (use text, json ou yaml)", format))
	}
}
