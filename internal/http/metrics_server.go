package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/stegotext/internal/metrics"
)

// MetricsServer serves /metrics on its own port so scrapes bypass the API
// middleware stack and rate limiter.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer exposing provider.
func NewMetricsServer(host string, port int, logger *slog.Logger, provider *metrics.Provider) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(provider.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	server := newHTTPServer(host, port)
	server.Handler = router

	return &MetricsServer{server: server, logger: logger}
}

// GetHandler returns the configured router.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks until the server is shut down.
func (s *MetricsServer) Start(ctx context.Context) error {
	return listenAndServe(s.server, s.logger, "metrics server")
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
