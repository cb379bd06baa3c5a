package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"github.com/vfg2006/kpi-dashboard/pkg/utils"
)

var snapshotData string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Mostra o snapshot atual em JSON",
	Long: `Mostra o snapshot atual como JSON indentado, pronto para edição.
Sem --data, mostra o snapshot padrão do painel.`,
	Args: argsAtMost(0),
	RunE: wrap(runSnapshot),
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotData, "data", "", "Arquivo JSON aplicado sobre o snapshot padrão")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	publisher, err := newPublisher(domain.DefaultSnapshot(), currentConfig())
	if err != nil {
		return err
	}

	if err := applyDataFile(cmd, publisher, snapshotData); err != nil {
		return err
	}

	out, err := utils.PrettyJSON(publisher.Current().Snapshot)
	if err != nil {
		return newCommandError(appErrors.ErrInternal, errors.Wrap(err, "erro ao serializar snapshot"))
	}

	return writeOutput(cmd, "", out)
}
