package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/stegotext/internal/app"
)

// Server is a long-running listener that can be stopped gracefully.
type Server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type namedServer struct {
	name   string
	server Server
}

// RunServer starts the API server and, when enabled, the metrics server.
// It blocks until SIGINT/SIGTERM or until one of the servers fails, then
// shuts both down within SERVER_SHUTDOWN_TIMEOUT.
func RunServer(ctx context.Context, container *app.Container, version string) error {
	cfg := container.Config()
	gin.SetMode(cfg.GetGinMode())

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))
	defer closeContainer(container, logger)

	api, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	servers := []namedServer{{name: "api", server: api}}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers = append(servers, namedServer{name: "metrics", server: metricsServer})
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return superviseServers(ctx, logger, cfg.ServerShutdownTimeout, servers...)
}

// superviseServers runs every server until ctx is cancelled or one of them
// returns, then shuts all of them down.
func superviseServers(
	ctx context.Context,
	logger *slog.Logger,
	shutdownTimeout time.Duration,
	servers ...namedServer,
) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(func() error {
			if err := s.server.Start(gctx); err != nil {
				return fmt.Errorf("%s server: %w", s.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		} else {
			logger.Error("server stopped unexpectedly, shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, s := range servers {
			if err := s.server.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s server shutdown: %w", s.name, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
