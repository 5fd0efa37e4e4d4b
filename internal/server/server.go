package server

import (
	"context"
	"embed"
	"log/slog"
	"net/http"

	"github.com/alkime/procflow/internal/config"
	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/render"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// FlowRunner generates a repaired diagram from a process description.
type FlowRunner interface {
	Run(ctx context.Context, req content.Request) (mermaid.Result, error)
}

// Deps are the collaborators behind the API. Nil members disable their endpoints.
type Deps struct {
	Flow     FlowRunner
	Renderer render.Renderer
}

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
	deps   Deps
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Configure proxy trust for production (Fly.io)
	if cfg.Env == config.EnvProduction {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
		deps:   deps,
	}

	router.Use(requestID(), requestLogger(logger))
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.POST("/repair", s.handleRepair)
		api.POST("/generate", s.handleGenerate)
		api.POST("/export", s.handleExport)
	}

	// Single page UI; API routes never exist in the embedded tree
	s.router.Use(static.Serve("/", static.EmbedFolder(webFS, "web")))
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "procflow",
	})
}
