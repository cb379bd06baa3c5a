package domain

// Level é o nível qualitativo de um medidor
type Level string

const (
	LevelExcellent Level = "EXCELLENT" // ÓTIMO
	LevelGood      Level = "GOOD"      // BOM
	LevelFair      Level = "FAIR"      // REGULAR
	LevelPoor      Level = "POOR"      // RUIM
)

// Thresholds são os limites superiores (inclusivos) de cada nível
type Thresholds struct {
	Excellent float64 `json:"excellent" yaml:"excellent" mapstructure:"excellent"`
	Good      float64 `json:"good" yaml:"good" mapstructure:"good"`
	Fair      float64 `json:"fair" yaml:"fair" mapstructure:"fair"`
}

// Classification é o resultado de um valor aplicado à escada de limites
type Classification struct {
	Level   Level `json:"level" yaml:"level"`
	Percent int   `json:"percent" yaml:"percent"` // Posição do ponteiro no medidor
}

// GaugeSettings reúne os limites de cada medidor de tempo de resposta
type GaugeSettings struct {
	Development   Thresholds
	Commercial    Thresholds
	ClicheArrival Thresholds
}

// DefaultGaugeSettings retorna os limites usados pelo painel
func DefaultGaugeSettings() GaugeSettings {
	return GaugeSettings{
		Development:   Thresholds{Excellent: 2, Good: 3, Fair: 5},
		Commercial:    Thresholds{Excellent: 2, Good: 3, Fair: 5},
		ClicheArrival: Thresholds{Excellent: 4, Good: 6, Fair: 8},
	}
}
