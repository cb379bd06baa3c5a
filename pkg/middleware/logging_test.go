package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard/pkg/log"
)

func newCommand() (*cobra.Command, *bytes.Buffer) {
	stderr := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "report"}
	cmd.SetErr(stderr)
	cmd.SetContext(context.Background())
	return cmd, stderr
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name    string
		next    RunE
		wantErr error
	}{
		{
			name:    "Comando com sucesso",
			next:    func(cmd *cobra.Command, args []string) error { return nil },
			wantErr: nil,
		},
		{
			name:    "Erro do comando é repassado",
			next:    func(cmd *cobra.Command, args []string) error { return context.DeadlineExceeded },
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newCommand()

			var seenID string
			wrapped := LoggingMiddleware(func(cmd *cobra.Command, args []string) error {
				seenID = log.GetCorrelationID(cmd.Context())
				return tt.next(cmd, args)
			})

			err := wrapped(cmd, nil)

			assert.Equal(t, tt.wantErr, err)
			assert.NotEmpty(t, seenID)
			assert.Equal(t, seenID, log.GetCorrelationID(cmd.Context()))
		})
	}
}

func TestLoggingMiddleware_KeepsExistingCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	cmd, _ := newCommand()
	ctx, id := log.WithCorrelationID(context.Background())
	cmd.SetContext(ctx)

	err := LoggingMiddleware(func(cmd *cobra.Command, args []string) error { return nil })(cmd, nil)

	require.NoError(t, err)
	assert.Equal(t, id, log.GetCorrelationID(cmd.Context()))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	t.Run("Panic vira erro", func(t *testing.T) {
		cmd, stderr := newCommand()

		err := LogPanicMiddleware(func(cmd *cobra.Command, args []string) error {
			panic("índice fora do intervalo")
		})(cmd, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "índice fora do intervalo")
		if log.IsDevelopment() {
			assert.Contains(t, stderr.String(), "STACK TRACE")
		}
	})

	t.Run("Sem panic o retorno é mantido", func(t *testing.T) {
		cmd, stderr := newCommand()
		want := errors.New("falha")

		err := LogPanicMiddleware(func(cmd *cobra.Command, args []string) error { return want })(cmd, nil)

		assert.Equal(t, want, err)
		assert.Empty(t, stderr.String())
	})
}

func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next RunE) RunE {
			return func(cmd *cobra.Command, args []string) error {
				order = append(order, name)
				return next(cmd, args)
			}
		}
	}

	cmd, _ := newCommand()
	err := Chain(func(cmd *cobra.Command, args []string) error {
		order = append(order, "comando")
		return nil
	}, mark("externo"), mark("interno"))(cmd, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"externo", "interno", "comando"}, order)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"Microssegundos", 500 * time.Microsecond, "500 µs"},
		{"Milissegundos", 250 * time.Millisecond, "250 ms"},
		{"Segundos", 1500 * time.Millisecond, "1.50 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.in))
		})
	}
}
