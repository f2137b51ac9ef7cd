package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dsm5-adhd-screener/internal/config"
	"github.com/dsm5-adhd-screener/internal/middleware"
	"github.com/dsm5-adhd-screener/internal/service"
)

const serverVersion = "1.0.0"

// Server represents the HTTP server around the scoring engine
type Server struct {
	configManager *config.Manager
	logger        *logrus.Logger
	engine        *service.ScoringEngine
	router        *gin.Engine
	server        *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(configManager *config.Manager, logger *logrus.Logger) *Server {
	cfg := configManager.GetConfig()

	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.AuditLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestTimeout(cfg.Screening.RequestTimeout))

	if cfg.Screening.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(logger, cfg.Screening.RateLimitPerSec, cfg.Screening.RateLimitBurst)
		router.Use(limiter.Handler())
	}

	server := &Server{
		configManager: configManager,
		logger:        logger,
		engine:        service.NewScoringEngine(logger),
		router:        router,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until the context is cancelled,
// then drains connections gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the configured router for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/criteria", s.handleGetCriteria)
		v1.POST("/diagnose", s.handleDiagnose)
	}
}

// handleHealth handles liveness requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "adhd-screener",
		"version":   serverVersion,
		"timestamp": time.Now().UTC(),
	})
}
