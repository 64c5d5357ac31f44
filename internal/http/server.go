// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/stegotext/internal/config"
	"github.com/allisson/stegotext/internal/metrics"
	stegoHTTP "github.com/allisson/stegotext/internal/stego/http"
)

const readinessTimeout = 2 * time.Second

// Server represents the HTTP API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router must be configured with
// SetupRouter before Start is called.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// listenAndServe blocks until srv stops. A graceful shutdown is not an error.
func listenAndServe(srv *http.Server, logger *slog.Logger, name string) error {
	logger.Info("starting "+name, slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// SetupRouter builds the gin router with middleware and all API routes.
//
// ctx bounds background work started by middleware such as the rate limiter
// cleanup loop. metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	stegoHandler *stegoHTTP.StegoHandler,
	keyHandler *stegoHTTP.KeyHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	stego := v1.Group("/stego")
	{
		stego.POST("/encode", stegoHandler.EncodeHandler)
		stego.POST("/decode", stegoHandler.DecodeHandler)
		stego.POST("/inspect", stegoHandler.InspectHandler)
	}

	keys := v1.Group("/keys")
	{
		keys.POST("", keyHandler.CreateHandler)
		keys.GET("", keyHandler.ListHandler)
		keys.DELETE("/:name", keyHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the HTTP server and blocks until it is shut down.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
// GET /health
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The database
// must answer a ping.
// GET /ready
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	ready := true

	if err := s.pingDatabase(c.Request.Context()); err != nil {
		s.logger.Warn("readiness check failed", slog.String("component", "database"), slog.Any("error", err))
		components["database"] = "error"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

func (s *Server) pingDatabase(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}
