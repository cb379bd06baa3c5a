package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard/internal/config"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
	"gopkg.in/yaml.v3"
)

func TestReportCmd(t *testing.T) {
	dir := t.TempDir()

	dataFile := filepath.Join(dir, "kpi.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"financial": {"invoiced": 1000}, "target": 120000}`), 0o644))

	invalidFile := filepath.Join(dir, "invalido.json")
	require.NoError(t, os.WriteFile(invalidFile, []byte(`{"financial": `), 0o644))

	tests := []struct {
		name     string
		cfg      *config.Config
		args     []string
		wantCode string
		validate func(t *testing.T, stdout string)
	}{
		{
			name: "Texto do snapshot padrão",
			args: []string{"report"},
			validate: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "Painel de KPIs")
				assert.Contains(t, stdout, "R$ 78.144,50")
				assert.Contains(t, stdout, "Set (R$ 254.443,10)")
				assert.Contains(t, stdout, "Finalizados:")
				assert.Contains(t, stdout, "[totals_vs_products]")
				assert.Contains(t, stdout, "Meta:")
			},
		},
		{
			name: "JSON com arquivo de dados",
			args: []string{"report", "--data", dataFile, "--format", "json"},
			validate: func(t *testing.T, stdout string) {
				var report domain.DashboardReport
				require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(stdout), &report))
				assert.Equal(t, 1000.0, report.Cards.Invoiced)
				assert.Equal(t, domain.Float(120000), report.Revenue.Target)
				assert.NotEmpty(t, report.Revision)
			},
		},
		{
			name: "YAML",
			args: []string{"report", "-f", "yaml"},
			validate: func(t *testing.T, stdout string) {
				var report map[string]any
				require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
				cards, ok := report["cards"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, 78144.5, cards["invoiced"])
			},
		},
		{
			name: "Formato e arquivo vêm da configuração",
			cfg: func() *config.Config {
				cfg := config.Default()
				cfg.Dashboard.OutputFormat = config.OutputJSON
				cfg.Dashboard.DataFile = dataFile
				return cfg
			}(),
			args: []string{"report"},
			validate: func(t *testing.T, stdout string) {
				var report domain.DashboardReport
				require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(stdout), &report))
				assert.Equal(t, 1000.0, report.Cards.Invoiced)
			},
		},
		{
			name:     "Formato desconhecido",
			args:     []string{"report", "--format", "xml"},
			wantCode: appErrors.ErrInvalidReportFmt,
		},
		{
			name:     "Arquivo de dados inválido",
			args:     []string{"report", "--data", invalidFile},
			wantCode: appErrors.ErrInvalidJSON,
		},
		{
			name:     "Arquivo de dados inexistente",
			args:     []string{"report", "--data", filepath.Join(dir, "nao-existe.json")},
			wantCode: appErrors.ErrReadInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.cfg)

			stdout, _, err := execute(t, "", tt.args...)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errorCode(err))
				return
			}
			require.NoError(t, err)
			tt.validate(t, stdout)
		})
	}
}

func TestRenderReport_EmptySnapshot(t *testing.T) {
	publisher, err := newPublisher(domain.Snapshot{}.Clone(), config.Default())
	require.NoError(t, err)

	out, err := renderReport(publisher.Report(context.Background()), config.OutputText)

	require.NoError(t, err)
	assert.Contains(t, string(out), "Melhor mês:")
	assert.Contains(t, string(out), "—")
}
