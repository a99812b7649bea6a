package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/scout-api/api/analysis"
	"github.com/killallgit/scout-api/api/athletes"
	"github.com/killallgit/scout-api/api/health"
	"github.com/killallgit/scout-api/api/trainingplans"
	"github.com/killallgit/scout-api/api/types"
	"github.com/killallgit/scout-api/api/version"
	_ "github.com/killallgit/scout-api/docs/swagger"
)

// RouteOptions tunes route registration
type RouteOptions struct {
	// Per-client limits on the model-backed pipeline routes
	PipelineRPS   int
	PipelineBurst int
	// Per-client limits on read routes
	ReadRPS   int
	ReadBurst int

	EnablePprof bool
}

// DefaultRouteOptions returns the limits used when none are configured
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		PipelineRPS:   2,
		PipelineBurst: 5,
		ReadRPS:       10,
		ReadBurst:     20,
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, opts RouteOptions, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil || deps.AnalysisService == nil || deps.TrainingPlanService == nil {
		return fmt.Errorf("pipeline services are not configured")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.EnablePprof {
		pprof.Register(engine)
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Both pipelines share one limiter per client
	pipelineLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, opts.PipelineRPS, opts.PipelineBurst)
	readLimit := PerClientRateLimit(&sync.Map{}, cleanupStop, &sync.Once{}, opts.ReadRPS, opts.ReadBurst)

	// Edge-function compatible paths used by existing clients
	functions := engine.Group("/functions/v1", pipelineLimit)
	analysis.RegisterRoutes(functions, "/analyze-video", deps)
	trainingplans.RegisterRoutes(functions, "/generate-training-plan", deps)

	// API v1 routes
	v1 := engine.Group("/api/v1")
	analysis.RegisterRoutes(v1.Group("", pipelineLimit), "/analysis", deps)
	trainingplans.RegisterRoutes(v1.Group("", pipelineLimit), "/training-plans", deps)

	athleteGroup := v1.Group("/athletes")
	athleteGroup.Use(readLimit)
	athletes.RegisterRoutes(athleteGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "The requested endpoint was not found",
			Details: c.Request.URL.Path,
		})
	}
}
