package telemetry

type Telemetry struct {
	Exporters []ExporterConfig `mapstructure:"exporters" json:"exporters"`
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name" json:"name"`
	Settings map[string]interface{} `mapstructure:"settings" json:"settings"`
}
