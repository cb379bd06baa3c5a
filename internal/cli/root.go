// Package cli expõe os comandos de linha de comando do painel de KPIs
package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpi-dashboard/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard/internal/config"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/measuring"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/merging"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/publishing"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"github.com/vfg2006/kpi-dashboard/pkg/middleware"
)

var (
	version   = "dev"
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Ingestão de dados e métricas do painel de KPIs",
	Long: `Valida e combina documentos JSON parciais com o snapshot do painel,
calcula os indicadores derivados e mantém o snapshot atualizado a partir de
um arquivo de dados.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newCommandError(appErrors.ErrInvalidArgument, err)
	})
}

// Execute executa o comando raiz e devolve o código de saída do processo
func Execute(ctx context.Context, cfg *config.Config) int {
	appConfig = cfg

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return writeError(rootCmd.ErrOrStderr(), err)
	}
	return 0
}

// wrap aplica os middlewares comuns a todos os comandos
func wrap(run middleware.RunE) func(cmd *cobra.Command, args []string) error {
	return middleware.Chain(run, middleware.LoggingMiddleware, middleware.LogPanicMiddleware)
}

// argsAtMost valida a quantidade de argumentos com o código de argumento inválido
func argsAtMost(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return newCommandError(appErrors.ErrInvalidArgument, err)
		}
		return nil
	}
}

func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// newPublisher monta o serviço de publicação sobre o snapshot inicial
func newPublisher(initial domain.Snapshot, cfg *config.Config) (publishing.Publisher, error) {
	repo, err := repository.NewSnapshotRepository(initial)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar repositório do snapshot")
	}
	return publishing.NewService(repo, merging.NewService(), measuring.NewService(), cfg.GaugeSettings()), nil
}

// readInput lê um arquivo ou a entrada padrão quando o caminho é "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		content []byte
		err     error
	)

	if path == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, newCommandError(appErrors.ErrReadInput, errors.Wrapf(err, "erro ao ler %s", path))
	}

	return content, nil
}

// writeOutput escreve na saída padrão ou no arquivo informado
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return newCommandError(appErrors.ErrWriteOutput, errors.Wrap(err, "erro ao escrever saída"))
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newCommandError(appErrors.ErrWriteOutput, errors.Wrapf(err, "erro ao escrever %s", path))
	}
	return nil
}

// printWarnings lista os avisos de campo na saída de erro
func printWarnings(cmd *cobra.Command, warnings []merging.FieldWarning) {
	for _, w := range warnings {
		cmd.PrintErrf("aviso: %s\n", w)
	}
}

// applyDataFile aplica o arquivo de dados ao publicador, quando informado
func applyDataFile(cmd *cobra.Command, publisher publishing.Publisher, path string) error {
	if path == "" {
		return nil
	}

	content, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	result, err := publisher.Apply(cmd.Context(), content)
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)

	return nil
}
