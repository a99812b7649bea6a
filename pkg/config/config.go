package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/scout-api/pkg/errors"
)

const defaultConfigFile = "./config/settings.yaml"

var (
	once       sync.Once
	initErr    error
	configFile = defaultConfigFile
)

// SetConfigFile overrides the settings file read by Init. It has no effect
// once Init has run.
func SetConfigFile(path string) {
	if path != "" {
		configFile = path
	}
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// A missing .env is normal outside local development
		_ = godotenv.Load()

		setDefaults()

		viper.SetEnvPrefix("SCOUT")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
		bindPlatformEnv()

		path := filepath.Clean(configFile)
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", path, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// bindPlatformEnv accepts the variable names the hosting platform injects,
// after the SCOUT_ prefixed ones.
func bindPlatformEnv() {
	_ = viper.BindEnv("storage.url", "SCOUT_STORAGE_URL", "SUPABASE_URL")
	_ = viper.BindEnv("storage.service_key", "SCOUT_STORAGE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY")
	_ = viper.BindEnv("model.api_key", "SCOUT_MODEL_API_KEY", "GEMINI_API_KEY")
	_ = viper.BindEnv("database.dsn", "SCOUT_DATABASE_DSN", "DATABASE_URL")
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate checks the shape of the loaded values. Secrets are checked by
// Config.Validate so that commands which never reach storage or the model
// can still run without them.
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid port %d", port))
	}

	switch backend := viper.GetString("storage.backend"); backend {
	case BackendPostgREST, BackendSQL:
	default:
		return apperrors.ConfigError("storage.backend", fmt.Sprintf("unknown backend %q", backend))
	}

	if viper.GetDuration("model.timeout") <= 0 {
		viper.Set("model.timeout", 60*time.Second)
	}
	if viper.GetInt("rate_limiting.pipeline_rps") <= 0 {
		viper.Set("rate_limiting.pipeline_rps", 2)
	}
	if viper.GetInt("rate_limiting.read_rps") <= 0 {
		viper.Set("rate_limiting.read_rps", 10)
	}

	return nil
}

// Validate checks everything the server needs before it accepts traffic
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid port %d", c.Server.Port))
	}

	switch c.Storage.Backend {
	case BackendPostgREST:
		if c.Storage.URL == "" {
			return apperrors.ConfigError("storage.url", "is required (or set SUPABASE_URL)")
		}
		if c.Storage.ServiceKey == "" {
			return apperrors.ConfigError("storage.service_key", "is required (or set SUPABASE_SERVICE_ROLE_KEY)")
		}
	case BackendSQL:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return apperrors.ConfigError("storage.backend", fmt.Sprintf("unknown backend %q", c.Storage.Backend))
	}

	if c.Model.APIKey == "" {
		return apperrors.ConfigError("model.api_key", "is required (or set GEMINI_API_KEY)")
	}

	if err := c.Analysis.validate("analysis"); err != nil {
		return err
	}
	if err := c.TrainingPlan.validate("training_plan"); err != nil {
		return err
	}

	return nil
}

// Validate checks the settings needed to open the sql backend
func (d DatabaseConfig) Validate() error {
	switch d.Driver {
	case "postgres":
		if d.DSN == "" {
			return apperrors.ConfigError("database.dsn", "is required for the postgres driver")
		}
	case "sqlite", "":
		if d.Path == "" {
			return apperrors.ConfigError("database.path", "is required for the sqlite driver")
		}
	default:
		return apperrors.ConfigError("database.driver", fmt.Sprintf("unknown driver %q", d.Driver))
	}
	return nil
}

func (s SamplingConfig) validate(section string) error {
	if s.Temperature < 0 || s.Temperature > 2 {
		return apperrors.ConfigError(section+".temperature", "must be between 0 and 2")
	}
	if s.TopP <= 0 || s.TopP > 1 {
		return apperrors.ConfigError(section+".top_p", "must be in (0, 1]")
	}
	if s.TopK <= 0 {
		return apperrors.ConfigError(section+".top_k", "must be positive")
	}
	if s.MaxOutputTokens <= 0 {
		return apperrors.ConfigError(section+".max_output_tokens", "must be positive")
	}
	return nil
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "90s")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("server.shutdown_timeout", "15s")
	viper.SetDefault("server.max_body_bytes", 1<<20)

	// Storage defaults
	viper.SetDefault("storage.backend", BackendPostgREST)
	viper.SetDefault("storage.url", "")
	viper.SetDefault("storage.service_key", "")

	// Database defaults (sql backend only)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.path", "./data/scout.db")
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", "1h")
	viper.SetDefault("database.log_queries", false)

	// Model defaults
	viper.SetDefault("model.api_key", "")
	viper.SetDefault("model.name", "gemini-1.5-flash")
	viper.SetDefault("model.base_url", "")
	viper.SetDefault("model.timeout", "60s")

	viper.SetDefault("analysis.temperature", 0.7)
	viper.SetDefault("analysis.top_k", 40)
	viper.SetDefault("analysis.top_p", 0.95)
	viper.SetDefault("analysis.max_output_tokens", 2048)

	viper.SetDefault("training_plan.temperature", 0.8)
	viper.SetDefault("training_plan.top_k", 40)
	viper.SetDefault("training_plan.top_p", 0.95)
	viper.SetDefault("training_plan.max_output_tokens", 4096)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.pipeline_rps", 2)
	viper.SetDefault("rate_limiting.pipeline_burst", 5)
	viper.SetDefault("rate_limiting.read_rps", 10)
	viper.SetDefault("rate_limiting.read_burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.json", false)

	viper.SetDefault("monitoring.pprof_enabled", false)
}
