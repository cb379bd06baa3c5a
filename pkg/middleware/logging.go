package middleware

import (
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpi-dashboard/pkg/log"
)

// RunE é a assinatura de execução de um comando cobra
type RunE func(cmd *cobra.Command, args []string) error

// Middleware envolve a execução de um comando
type Middleware func(next RunE) RunE

// Chain aplica os middlewares na ordem informada: o primeiro é o mais externo
func Chain(next RunE, middlewares ...Middleware) RunE {
	for i := len(middlewares) - 1; i >= 0; i-- {
		next = middlewares[i](next)
	}
	return next
}

// LoggingMiddleware registra informações sobre cada execução de comando
func LoggingMiddleware(next RunE) RunE {
	return func(cmd *cobra.Command, args []string) error {
		// Gera um ID de correlação para esta execução
		ctx, correlationID := log.WithCorrelationID(cmd.Context())
		cmd.SetContext(ctx)

		startTime := time.Now()

		log.L.WithFields(log.Fields{
			"correlation_id": correlationID,
			"command":        cmd.CommandPath(),
			"args":           args,
		}).Debug("→ Iniciando comando")

		err := next(cmd, args)

		elapsed := time.Since(startTime)
		logger := log.L.WithFields(log.Fields{
			"correlation_id": correlationID,
			"command":        cmd.CommandPath(),
			"duration_ms":    elapsed.Milliseconds(),
		})

		if err != nil {
			logger.WithError(err).Error(fmt.Sprintf("✗ Comando finalizado com erro em %s", formatDuration(elapsed)))
			return err
		}

		logger.Debug(fmt.Sprintf("✓ Comando completado em %s", formatDuration(elapsed)))
		return nil
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// LogPanicMiddleware converte um panic do comando em erro
func LogPanicMiddleware(next RunE) RunE {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			// Captura a pilha de chamadas
			stack := make([]byte, 4096)
			stackSize := runtime.Stack(stack, false)
			stackTrace := string(stack[:stackSize])

			logger := log.L.WithFields(log.Fields{
				"correlation_id": log.GetCorrelationID(cmd.Context()),
				"command":        cmd.CommandPath(),
				"panic_error":    recovered,
			})

			if log.IsDevelopment() {
				logger.Error("❌ PANIC no comando")
				fmt.Fprintf(cmd.ErrOrStderr(), "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
			} else {
				logger.Error("Erro não tratado no comando")
				logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
			}

			err = errors.Errorf("erro interno no comando %s: %v", cmd.Name(), recovered)
		}()

		return next(cmd, args)
	}
}
