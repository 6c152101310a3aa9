package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/infra/providers"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig        `mapstructure:"server"`
	Logging     LoggingConfig       `mapstructure:"logging"`
	Metrics     MetricsConfig       `mapstructure:"metrics"`
	Database    DatabaseConfig      `mapstructure:"database"`
	Redis       RedisConfig         `mapstructure:"redis"`
	Moderation  ModerationConfig    `mapstructure:"moderation"`
	Translation TranslationConfig   `mapstructure:"translation"`
	Stream      StreamConfig        `mapstructure:"stream"`
	Telemetry   telemetry.Telemetry `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	SecretKey   string `mapstructure:"secret_key"`
	// BodyLimit is the maximum request body in bytes.
	BodyLimit       int           `mapstructure:"body_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowOrigins    []string      `mapstructure:"allow_origins"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	EnableLatency  bool `mapstructure:"enable_latency"`
	EnableRequests bool `mapstructure:"enable_requests"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type ModerationConfig struct {
	MaxLength           int           `mapstructure:"max_length"`
	RecordViolations    bool          `mapstructure:"record_violations"`
	RecorderWorkers     int           `mapstructure:"recorder_workers"`
	RecorderQueueSize   int           `mapstructure:"recorder_queue_size"`
	RecordTimeout       time.Duration `mapstructure:"record_timeout"`
	HighRiskThreshold   int           `mapstructure:"high_risk_threshold"`
	HighRiskWindow      int           `mapstructure:"high_risk_window"`
	ViolationCounterTTL time.Duration `mapstructure:"violation_counter_ttl"`
	RetentionDays       int           `mapstructure:"retention_days"`
	EventsChannel       string        `mapstructure:"events_channel"`
}

// StreamConfig bounds the admin moderation stream.
type StreamConfig struct {
	MaxConnections   int           `mapstructure:"max_connections"`
	SubscriberBuffer int           `mapstructure:"subscriber_buffer"`
	PongWait         time.Duration `mapstructure:"pong_wait"`
	PingPeriod       time.Duration `mapstructure:"ping_period"`
}

type TranslationConfig struct {
	Provider    string                           `mapstructure:"provider"`
	ApiKey      string                           `mapstructure:"api_key"`
	BaseURL     string                           `mapstructure:"base_url"`
	Model       string                           `mapstructure:"model"`
	MaxTokens   int                              `mapstructure:"max_tokens"`
	Temperature float64                          `mapstructure:"temperature"`
	Timeout     time.Duration                    `mapstructure:"timeout"`
	CacheTTL    time.Duration                    `mapstructure:"cache_ttl"`
	Azure       *providers.AzureCredentials      `mapstructure:"azure"`
	AwsBedrock  *providers.AwsBedrockCredentials `mapstructure:"aws_bedrock"`
}

var globalConfig Config

// Load reads config.yaml from configPath (then ./config and .) and overlays
// environment variables, where "moderation.max_length" maps to
// MODERATION_MAX_LENGTH. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfig = cfg
	return &globalConfig, nil
}

func GetConfig() *Config {
	return &globalConfig
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Metrics.Enabled && c.Server.MetricsPort == c.Server.Port {
		return errors.New("server.metrics_port must differ from server.port")
	}
	if c.Moderation.MaxLength <= 0 {
		return fmt.Errorf("moderation.max_length must be positive, got %d", c.Moderation.MaxLength)
	}
	if c.Moderation.RecorderWorkers <= 0 {
		return fmt.Errorf("moderation.recorder_workers must be positive, got %d", c.Moderation.RecorderWorkers)
	}
	if c.Moderation.RetentionDays < 0 {
		return fmt.Errorf("moderation.retention_days must not be negative, got %d", c.Moderation.RetentionDays)
	}
	return nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.secret_key", "")
	v.SetDefault("server.body_limit", 2<<20)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("logging.level", "")
	v.SetDefault("logging.file", "logs/console.log")
	v.SetDefault("logging.console", true)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_requests", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "polyglai")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 25)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("moderation.max_length", 10000)
	v.SetDefault("moderation.record_violations", true)
	v.SetDefault("moderation.recorder_workers", 4)
	v.SetDefault("moderation.recorder_queue_size", 1024)
	v.SetDefault("moderation.record_timeout", 5*time.Second)
	v.SetDefault("moderation.high_risk_threshold", 3)
	v.SetDefault("moderation.high_risk_window", 1000)
	v.SetDefault("moderation.violation_counter_ttl", 24*time.Hour)
	v.SetDefault("moderation.retention_days", 0)
	v.SetDefault("moderation.events_channel", "polyglai:moderation:events")

	v.SetDefault("stream.max_connections", 64)
	v.SetDefault("stream.subscriber_buffer", 64)
	v.SetDefault("stream.pong_wait", 45*time.Second)
	v.SetDefault("stream.ping_period", 30*time.Second)

	v.SetDefault("translation.provider", "google")
	v.SetDefault("translation.api_key", "")
	v.SetDefault("translation.base_url", "")
	v.SetDefault("translation.model", "")
	v.SetDefault("translation.max_tokens", 0)
	v.SetDefault("translation.temperature", 0.0)
	v.SetDefault("translation.timeout", 30*time.Second)
	v.SetDefault("translation.cache_ttl", 24*time.Hour)
}
