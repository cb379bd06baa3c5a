package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/merging"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"github.com/vfg2006/kpi-dashboard/pkg/utils"
)

var (
	mergeBase string
	mergeOut  string
)

var mergeCmd = &cobra.Command{
	Use:   "merge [patch.json|-]",
	Short: "Combina um documento parcial com o snapshot",
	Long: `Valida o documento parcial e o combina com o snapshot base (o snapshot
padrão ou o arquivo de --base). Campos inválidos são ignorados e listados
como avisos na saída de erro. Sem argumento, o documento é lido da entrada
padrão.`,
	Example: `  kpi merge patch.json
  cat patch.json | kpi merge --base atual.json --out novo.json`,
	Args: argsAtMost(1),
	RunE: wrap(runMerge),
}

func init() {
	mergeCmd.Flags().StringVar(&mergeBase, "base", "", "Snapshot base (padrão: snapshot do painel)")
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "Arquivo de saída (padrão: saída padrão)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	merger := merging.NewService()
	snapshot := domain.DefaultSnapshot()

	if mergeBase != "" {
		base, err := readInput(cmd, mergeBase)
		if err != nil {
			return err
		}
		result, err := merger.Merge(snapshot, base)
		if err != nil {
			return errors.WithMessage(err, "snapshot base inválido")
		}
		printWarnings(cmd, result.Warnings)
		snapshot = result.Snapshot
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	patch, err := readInput(cmd, source)
	if err != nil {
		return err
	}

	result, err := merger.Merge(snapshot, patch)
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)

	out, err := utils.PrettyJSON(result.Snapshot)
	if err != nil {
		return newCommandError(appErrors.ErrInternal, errors.Wrap(err, "erro ao serializar snapshot"))
	}

	return writeOutput(cmd, mergeOut, out)
}
