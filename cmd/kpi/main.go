package main

import (
	"context"
	"os"

	"github.com/vfg2006/kpi-dashboard/internal/cli"
	"github.com/vfg2006/kpi-dashboard/internal/config"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"github.com/vfg2006/kpi-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		os.Exit(appErrors.WriteError(os.Stderr, appErrors.ErrConfiguration, err.Error(), nil))
	}

	// Logs vão para a saída de erro; a saída padrão fica com o resultado dos comandos
	if err := log.Configure(os.Stderr, cfg.App.LogLevel, cfg.App.Env); err != nil {
		os.Exit(appErrors.WriteError(os.Stderr, appErrors.ErrConfiguration, err.Error(), nil))
	}
	log.L.Debugf("Nível de log configurado para: %s", cfg.App.LogLevel)

	os.Exit(cli.Execute(context.Background(), cfg))
}
