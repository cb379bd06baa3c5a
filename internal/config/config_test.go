package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "Valores padrão",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.App.LogLevel)
				assert.Equal(t, OutputText, cfg.Dashboard.OutputFormat)
				assert.Equal(t, domain.DefaultGaugeSettings(), cfg.GaugeSettings())
				assert.Equal(t, "*/5 * * * *", cfg.DataFileSync.CronSchedule)
				assert.True(t, cfg.DataFileSync.WatchEnabled)
				assert.Equal(t, 200*time.Millisecond, cfg.DataFileSync.WatchDebounce)
			},
		},
		{
			name: "Variáveis de ambiente sobrescrevem os padrões",
			env: map[string]string{
				"DASHBOARD_DATA_FILE":         "/tmp/kpi.json",
				"DASHBOARD_OUTPUT_FORMAT":     "yaml",
				"GAUGE_CLICHE_ARRIVAL_FAIR":   "10",
				"DATA_FILE_SYNC_ENABLED":      "false",
				"DATA_FILE_WATCH_DEBOUNCE":    "1s",
				"LOG_LEVEL":                   "debug",
				"GAUGE_DEVELOPMENT_EXCELLENT": "1.5",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/kpi.json", cfg.Dashboard.DataFile)
				assert.Equal(t, OutputYAML, cfg.Dashboard.OutputFormat)
				assert.Equal(t, 10.0, cfg.GaugeSettings().ClicheArrival.Fair)
				assert.Equal(t, 1.5, cfg.GaugeSettings().Development.Excellent)
				assert.False(t, cfg.DataFileSync.Enabled)
				assert.Equal(t, time.Second, cfg.DataFileSync.WatchDebounce)
				assert.Equal(t, "debug", cfg.App.LogLevel)
			},
		},
		{
			name:    "Formato de saída inválido",
			env:     map[string]string{"DASHBOARD_OUTPUT_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "Limites fora de ordem",
			env:     map[string]string{"GAUGE_COMMERCIAL_GOOD": "9"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultGaugeSettings(), cfg.GaugeSettings())
	assert.Equal(t, OutputText, cfg.Dashboard.OutputFormat)
	assert.Equal(t, 200*time.Millisecond, cfg.DataFileSync.WatchDebounce)
}
