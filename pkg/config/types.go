package config

import (
	"fmt"
	"time"
)

const (
	BackendPostgREST = "postgrest"
	BackendSQL       = "sql"
)

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Model        ModelConfig      `mapstructure:"model"`
	Analysis     SamplingConfig   `mapstructure:"analysis"`
	TrainingPlan SamplingConfig   `mapstructure:"training_plan"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Monitoring   MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// Address returns host:port for the listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects the record store. The postgrest backend talks to a
// Supabase REST endpoint with the service role key.
type StorageConfig struct {
	Backend    string `mapstructure:"backend"`
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// DatabaseConfig contains settings for the sql storage backend
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"`
	DSN                   string        `mapstructure:"dsn"`
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// ModelConfig contains generative model settings
type ModelConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Name    string        `mapstructure:"name"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SamplingConfig holds the generation parameters for one pipeline
type SamplingConfig struct {
	Temperature     float32 `mapstructure:"temperature"`
	TopK            float32 `mapstructure:"top_k"`
	TopP            float32 `mapstructure:"top_p"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
}

// RateLimitConfig contains per-client limits in requests per second
type RateLimitConfig struct {
	PipelineRPS   int `mapstructure:"pipeline_rps"`
	PipelineBurst int `mapstructure:"pipeline_burst"`
	ReadRPS       int `mapstructure:"read_rps"`
	ReadBurst     int `mapstructure:"read_burst"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type MonitoringConfig struct {
	PprofEnabled bool `mapstructure:"pprof_enabled"`
}
