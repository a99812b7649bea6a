package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/scout-api/api"
	"github.com/killallgit/scout-api/api/types"
	"github.com/killallgit/scout-api/internal/models"
	"github.com/killallgit/scout-api/pkg/config"
	"github.com/killallgit/scout-api/pkg/logger"
)

func sqlConfig(t *testing.T) *config.Config {
	t.Helper()
	sampling := config.SamplingConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 2048}
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8080, MaxBodyBytes: 1 << 20},
		Storage: config.StorageConfig{Backend: config.BackendSQL},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "scout.db"),
		},
		Model:        config.ModelConfig{APIKey: "test-key", Name: "gemini-1.5-flash", Timeout: time.Second},
		Analysis:     sampling,
		TrainingPlan: config.SamplingConfig{Temperature: 0.8, TopK: 40, TopP: 0.95, MaxOutputTokens: 4096},
		RateLimiting: config.RateLimitConfig{PipelineRPS: 2, PipelineBurst: 5, ReadRPS: 10, ReadBurst: 20},
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd, _, err := NewRootCmd().Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, cmd.Flags().Lookup("port"))
	assert.NotNil(t, cmd.Flags().Lookup("host"))
}

func TestServeCommandHelp(t *testing.T) {
	out := runRoot(t, "serve", "--help")
	assert.Contains(t, out, "Start the Scout API server")
}

func TestBuildDependencies_SQL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := sqlConfig(t)

	db, err := openDatabase(cfg.Database)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	require.NoError(t, db.Close())

	deps, closeStore, err := buildDependencies(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(closeStore)

	require.NotNil(t, deps.Repository)
	require.NotNil(t, deps.AnalysisService)
	require.NotNil(t, deps.TrainingPlanService)
	assert.Equal(t, Version, deps.Version)

	server := api.NewServer(serverOptions(cfg), deps)
	require.NoError(t, server.Initialize())

	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var health types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "healthy", health.Storage["status"])
}

func TestBuildDependencies_PostgREST(t *testing.T) {
	cfg := sqlConfig(t)
	cfg.Storage = config.StorageConfig{Backend: config.BackendPostgREST, URL: "https://project.supabase.co", ServiceKey: "key"}

	deps, closeStore, err := buildDependencies(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(closeStore)
	assert.NotNil(t, deps.Repository)
}

func TestBuildDependencies_Errors(t *testing.T) {
	t.Run("missing model key", func(t *testing.T) {
		cfg := sqlConfig(t)
		cfg.Model.APIKey = ""
		_, _, err := buildDependencies(context.Background(), cfg, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := sqlConfig(t)
		cfg.Storage.Backend = "mongo"
		_, _, err := buildDependencies(context.Background(), cfg, logger.Nop())
		assert.ErrorContains(t, err, "unknown storage backend")
	})
}

func TestServerOptions(t *testing.T) {
	cfg := sqlConfig(t)
	cfg.Monitoring.PprofEnabled = true

	opts := serverOptions(cfg)
	assert.Equal(t, "127.0.0.1:8080", opts.Address)
	assert.Equal(t, int64(1<<20), opts.MaxBodyBytes)
	assert.Equal(t, 2, opts.Routes.PipelineRPS)
	assert.Equal(t, 20, opts.Routes.ReadBurst)
	assert.True(t, opts.Routes.EnablePprof)
}

func TestSamplingParams(t *testing.T) {
	p := samplingParams(config.SamplingConfig{Temperature: 0.8, TopK: 40, TopP: 0.95, MaxOutputTokens: 4096})
	assert.InDelta(t, 0.8, p.Temperature, 1e-6)
	assert.InDelta(t, 40, p.TopK, 1e-6)
	assert.Equal(t, int32(4096), p.MaxOutputTokens)
}
