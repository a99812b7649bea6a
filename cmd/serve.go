package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/scout-api/api"
	"github.com/killallgit/scout-api/api/types"
	"github.com/killallgit/scout-api/internal/database"
	"github.com/killallgit/scout-api/internal/services/analysis"
	"github.com/killallgit/scout-api/internal/services/generator"
	"github.com/killallgit/scout-api/internal/services/store"
	"github.com/killallgit/scout-api/internal/services/trainingplans"
	"github.com/killallgit/scout-api/pkg/config"
	"github.com/killallgit/scout-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Scout API server with the configured settings.

Storage credentials and the Gemini API key are required. They can come
from the settings file, SCOUT_* variables, or the platform names
SUPABASE_URL, SUPABASE_SERVICE_ROLE_KEY and GEMINI_API_KEY.

Example:
  scout-api serve
  scout-api serve --port 9090
  scout-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeStore, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	server := api.NewServer(serverOptions(cfg), deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize routes: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	log.Info("Server is ready to handle requests",
		"address", cfg.Server.Address(),
		"storage", cfg.Storage.Backend,
		"model", cfg.Model.Name,
		"version", Version)

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-serverErr:
		log.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		return err
	}

	log.Info("Server gracefully stopped")
	return nil
}

func serverOptions(cfg *config.Config) api.ServerOptions {
	return api.ServerOptions{
		Address:      cfg.Server.Address(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Routes: api.RouteOptions{
			PipelineRPS:   cfg.RateLimiting.PipelineRPS,
			PipelineBurst: cfg.RateLimiting.PipelineBurst,
			ReadRPS:       cfg.RateLimiting.ReadRPS,
			ReadBurst:     cfg.RateLimiting.ReadBurst,
			EnablePprof:   cfg.Monitoring.PprofEnabled,
		},
	}
}

// buildDependencies wires storage, the model client and both pipelines.
// The returned func releases the storage connection.
func buildDependencies(ctx context.Context, cfg *config.Config, log *logger.Logger) (*types.Dependencies, func(), error) {
	repo, closeStore, err := openRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	gen, err := generator.NewGemini(ctx, generator.Config{
		APIKey:  cfg.Model.APIKey,
		Model:   cfg.Model.Name,
		BaseURL: cfg.Model.BaseURL,
		Timeout: cfg.Model.Timeout,
	}, log)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	return &types.Dependencies{
		Repository:          repo,
		AnalysisService:     analysis.NewService(repo, gen, samplingParams(cfg.Analysis), log),
		TrainingPlanService: trainingplans.NewService(repo, gen, samplingParams(cfg.TrainingPlan), log),
		Logger:              log,
		Version:             Version,
	}, closeStore, nil
}

func openRepository(cfg *config.Config) (store.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendSQL:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRepository(db), func() { _ = db.Close() }, nil
	case config.BackendPostgREST:
		return store.NewPostgRESTRepository(cfg.Storage.URL, cfg.Storage.ServiceKey), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func openDatabase(cfg config.DatabaseConfig) (*database.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db, err := database.Initialize(database.Options{
		Driver:                cfg.Driver,
		DSN:                   cfg.DSN,
		Path:                  cfg.Path,
		MaxConnections:        cfg.MaxConnections,
		MaxIdleConnections:    cfg.MaxIdleConnections,
		ConnectionMaxLifetime: cfg.ConnectionMaxLifetime,
		LogQueries:            cfg.LogQueries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func samplingParams(s config.SamplingConfig) generator.Params {
	return generator.Params{
		Temperature:     s.Temperature,
		TopK:            s.TopK,
		TopP:            s.TopP,
		MaxOutputTokens: s.MaxOutputTokens,
	}
}
