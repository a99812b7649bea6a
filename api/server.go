package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
)

// ServerOptions configures the HTTP server
type ServerOptions struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxBodyBytes int64
	Routes       RouteOptions
}

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	opts               ServerOptions
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(opts ServerOptions, deps *types.Dependencies) *Server {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	// A pipeline request waits on the model, so writes get more headroom
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 90 * time.Second
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1024 * 1024
	}

	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:       engine,
		opts:         opts,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		dependencies: deps,
		httpServer: &http.Server{
			Addr:           opts.Address,
			Handler:        engine,
			ReadTimeout:    opts.ReadTimeout,
			WriteTimeout:   opts.WriteTimeout,
			IdleTimeout:    opts.IdleTimeout,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	// Setup global middleware
	s.setupMiddleware()

	// Setup routes
	return RegisterRoutes(s.engine, s.dependencies, s.opts.Routes, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestID())
	s.engine.Use(RequestLogger(s.dependencies.Log()))

	// Global CORS, ahead of everything that can answer
	s.engine.Use(CORS())

	// Global request size limit
	s.engine.Use(RequestSizeLimitWithSize(s.opts.MaxBodyBytes))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutines
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
