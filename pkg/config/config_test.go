package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/scout-api/pkg/errors"
)

// resetForTest clears the singleton so each test can call Init again
func resetForTest(t *testing.T, settings string) {
	t.Helper()
	viper.Reset()
	once = sync.Once{}
	initErr = nil
	configFile = filepath.Join(t.TempDir(), "settings.yaml")
	if settings != "" {
		require.NoError(t, os.WriteFile(configFile, []byte(settings), 0o644))
	}
	t.Cleanup(func() {
		viper.Reset()
		once = sync.Once{}
		initErr = nil
		configFile = defaultConfigFile
	})
}

func TestInit(t *testing.T) {
	t.Run("defaults without a settings file", func(t *testing.T) {
		resetForTest(t, "")
		require.NoError(t, Init())

		cfg, err := GetConfig()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, BackendPostgREST, cfg.Storage.Backend)
		assert.Equal(t, "gemini-1.5-flash", cfg.Model.Name)
		assert.Equal(t, 60*time.Second, cfg.Model.Timeout)
		assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
		assert.InDelta(t, 0.7, cfg.Analysis.Temperature, 1e-6)
		assert.Equal(t, int32(2048), cfg.Analysis.MaxOutputTokens)
		assert.InDelta(t, 0.8, cfg.TrainingPlan.Temperature, 1e-6)
		assert.Equal(t, int32(4096), cfg.TrainingPlan.MaxOutputTokens)
	})

	t.Run("settings file", func(t *testing.T) {
		resetForTest(t, `
server:
  port: 9090
storage:
  backend: sql
database:
  path: ./test.db
model:
  timeout: 5s
`)
		require.NoError(t, Init())

		assert.Equal(t, 9090, GetInt("server.port"))
		assert.Equal(t, BackendSQL, GetString("storage.backend"))
		assert.Equal(t, 5*time.Second, GetDuration("model.timeout"))
	})

	t.Run("prefixed env overrides file", func(t *testing.T) {
		resetForTest(t, "server:\n  port: 9090\n")
		t.Setenv("SCOUT_SERVER_PORT", "7070")
		t.Setenv("SCOUT_MONITORING_PPROF_ENABLED", "true")
		require.NoError(t, Init())

		assert.Equal(t, 7070, GetInt("server.port"))
		assert.True(t, GetBool("monitoring.pprof_enabled"))
	})

	t.Run("platform env names", func(t *testing.T) {
		resetForTest(t, "")
		t.Setenv("SUPABASE_URL", "https://project.supabase.co")
		t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		require.NoError(t, Init())

		cfg, err := GetConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://project.supabase.co", cfg.Storage.URL)
		assert.Equal(t, "service-key", cfg.Storage.ServiceKey)
		assert.Equal(t, "gemini-key", cfg.Model.APIKey)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("prefixed name wins over platform name", func(t *testing.T) {
		resetForTest(t, "")
		t.Setenv("SCOUT_MODEL_API_KEY", "scout-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		require.NoError(t, Init())

		assert.Equal(t, "scout-key", GetString("model.api_key"))
	})

	t.Run("invalid port", func(t *testing.T) {
		resetForTest(t, "server:\n  port: 0\n")
		err := Init()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
	})

	t.Run("unknown backend", func(t *testing.T) {
		resetForTest(t, "storage:\n  backend: mongo\n")
		assert.Error(t, Init())
	})

	t.Run("malformed settings file", func(t *testing.T) {
		resetForTest(t, "server: [unclosed\n")
		assert.ErrorContains(t, Init(), "error reading config file")
	})
}

func validConfig() *Config {
	sampling := SamplingConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 2048}
	return &Config{
		Server:       ServerConfig{Host: "localhost", Port: 8080},
		Storage:      StorageConfig{Backend: BackendPostgREST, URL: "https://x.supabase.co", ServiceKey: "key"},
		Model:        ModelConfig{APIKey: "key", Name: "gemini-1.5-flash"},
		Analysis:     sampling,
		TrainingPlan: sampling,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 0 }, wantKey: "server.port"},
		{name: "missing storage url", mutate: func(c *Config) { c.Storage.URL = "" }, wantKey: "storage.url"},
		{name: "missing service key", mutate: func(c *Config) { c.Storage.ServiceKey = "" }, wantKey: "storage.service_key"},
		{name: "missing model key", mutate: func(c *Config) { c.Model.APIKey = "" }, wantKey: "model.api_key"},
		{
			name: "sql backend ignores storage secrets",
			mutate: func(c *Config) {
				c.Storage = StorageConfig{Backend: BackendSQL}
				c.Database = DatabaseConfig{Driver: "sqlite", Path: "./scout.db"}
			},
		},
		{
			name: "postgres driver needs dsn",
			mutate: func(c *Config) {
				c.Storage = StorageConfig{Backend: BackendSQL}
				c.Database = DatabaseConfig{Driver: "postgres"}
			},
			wantKey: "database.dsn",
		},
		{name: "bad top_p", mutate: func(c *Config) { c.TrainingPlan.TopP = 1.5 }, wantKey: "training_plan.top_p"},
		{name: "bad token budget", mutate: func(c *Config) { c.Analysis.MaxOutputTokens = 0 }, wantKey: "analysis.max_output_tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperrors.As(err)
			require.True(t, ok, "expected AppError, got %v", err)
			assert.Equal(t, tt.wantKey, appErr.Details["key"])
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: 8080}.Address())
}
