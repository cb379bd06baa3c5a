package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
)

// Formatos aceitos para o relatório
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Gauges       Gauges       `mapstructure:",squash"`
	DataFileSync DataFileSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Dashboard struct {
	DataFile     string `mapstructure:"dashboard_data_file"`
	OutputFormat string `mapstructure:"dashboard_output_format"`
}

// Gauges são os limites superiores (em dias) de cada medidor de tempo de resposta
type Gauges struct {
	DevelopmentExcellent   float64 `mapstructure:"gauge_development_excellent"`
	DevelopmentGood        float64 `mapstructure:"gauge_development_good"`
	DevelopmentFair        float64 `mapstructure:"gauge_development_fair"`
	CommercialExcellent    float64 `mapstructure:"gauge_commercial_excellent"`
	CommercialGood         float64 `mapstructure:"gauge_commercial_good"`
	CommercialFair         float64 `mapstructure:"gauge_commercial_fair"`
	ClicheArrivalExcellent float64 `mapstructure:"gauge_cliche_arrival_excellent"`
	ClicheArrivalGood      float64 `mapstructure:"gauge_cliche_arrival_good"`
	ClicheArrivalFair      float64 `mapstructure:"gauge_cliche_arrival_fair"`
}

type DataFileSync struct {
	CronSchedule  string        `mapstructure:"data_file_sync_cron"`
	Enabled       bool          `mapstructure:"data_file_sync_enabled"`
	WatchEnabled  bool          `mapstructure:"data_file_watch_enabled"`
	WatchDebounce time.Duration `mapstructure:"data_file_watch_debounce"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DASHBOARD_DATA_FILE", "")
	viper.SetDefault("DASHBOARD_OUTPUT_FORMAT", OutputText)

	defaults := domain.DefaultGaugeSettings()
	viper.SetDefault("GAUGE_DEVELOPMENT_EXCELLENT", defaults.Development.Excellent)
	viper.SetDefault("GAUGE_DEVELOPMENT_GOOD", defaults.Development.Good)
	viper.SetDefault("GAUGE_DEVELOPMENT_FAIR", defaults.Development.Fair)
	viper.SetDefault("GAUGE_COMMERCIAL_EXCELLENT", defaults.Commercial.Excellent)
	viper.SetDefault("GAUGE_COMMERCIAL_GOOD", defaults.Commercial.Good)
	viper.SetDefault("GAUGE_COMMERCIAL_FAIR", defaults.Commercial.Fair)
	viper.SetDefault("GAUGE_CLICHE_ARRIVAL_EXCELLENT", defaults.ClicheArrival.Excellent)
	viper.SetDefault("GAUGE_CLICHE_ARRIVAL_GOOD", defaults.ClicheArrival.Good)
	viper.SetDefault("GAUGE_CLICHE_ARRIVAL_FAIR", defaults.ClicheArrival.Fair)

	// Recarga periódica do arquivo de dados
	viper.SetDefault("DATA_FILE_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DATA_FILE_SYNC_ENABLED", true)
	viper.SetDefault("DATA_FILE_WATCH_ENABLED", true)
	viper.SetDefault("DATA_FILE_WATCH_DEBOUNCE", "200ms")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default retorna a configuração usada quando nenhuma variável é definida
func Default() *Config {
	defaults := domain.DefaultGaugeSettings()
	return &Config{
		App: App{LogLevel: "info", Env: "development"},
		Dashboard: Dashboard{
			OutputFormat: OutputText,
		},
		Gauges: Gauges{
			DevelopmentExcellent:   defaults.Development.Excellent,
			DevelopmentGood:        defaults.Development.Good,
			DevelopmentFair:        defaults.Development.Fair,
			CommercialExcellent:    defaults.Commercial.Excellent,
			CommercialGood:         defaults.Commercial.Good,
			CommercialFair:         defaults.Commercial.Fair,
			ClicheArrivalExcellent: defaults.ClicheArrival.Excellent,
			ClicheArrivalGood:      defaults.ClicheArrival.Good,
			ClicheArrivalFair:      defaults.ClicheArrival.Fair,
		},
		DataFileSync: DataFileSync{
			CronSchedule:  "*/5 * * * *",
			Enabled:       true,
			WatchEnabled:  true,
			WatchDebounce: 200 * time.Millisecond,
		},
	}
}

// Validate verifica o formato de saída e a ordem dos limites de cada medidor
func (c *Config) Validate() error {
	switch c.Dashboard.OutputFormat {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Errorf("formato de saída inválido %q (use text, json ou yaml)", c.Dashboard.OutputFormat)
	}

	gauges := c.GaugeSettings()
	named := []struct {
		name string
		t    domain.Thresholds
	}{
		{"development", gauges.Development},
		{"commercial", gauges.Commercial},
		{"cliche_arrival", gauges.ClicheArrival},
	}
	for _, g := range named {
		if g.t.Excellent > g.t.Good || g.t.Good > g.t.Fair {
			return errors.Errorf("limites do medidor %s fora de ordem: %v <= %v <= %v", g.name, g.t.Excellent, g.t.Good, g.t.Fair)
		}
	}

	return nil
}

// GaugeSettings converte os limites configurados para o domínio
func (c *Config) GaugeSettings() domain.GaugeSettings {
	return domain.GaugeSettings{
		Development: domain.Thresholds{
			Excellent: c.Gauges.DevelopmentExcellent,
			Good:      c.Gauges.DevelopmentGood,
			Fair:      c.Gauges.DevelopmentFair,
		},
		Commercial: domain.Thresholds{
			Excellent: c.Gauges.CommercialExcellent,
			Good:      c.Gauges.CommercialGood,
			Fair:      c.Gauges.CommercialFair,
		},
		ClicheArrival: domain.Thresholds{
			Excellent: c.Gauges.ClicheArrivalExcellent,
			Good:      c.Gauges.ClicheArrivalGood,
			Fair:      c.Gauges.ClicheArrivalFair,
		},
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
