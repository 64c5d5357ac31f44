package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingServer blocks in Start until Shutdown is called, or fails at once
// when startErr is set.
type blockingServer struct {
	startErr    error
	shutdownErr error
	stopped     chan struct{}
	shutdowns   atomic.Int32
}

func newBlockingServer() *blockingServer {
	return &blockingServer{stopped: make(chan struct{})}
}

func (s *blockingServer) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	<-s.stopped
	return nil
}

func (s *blockingServer) Shutdown(ctx context.Context) error {
	if s.shutdowns.Add(1) == 1 {
		close(s.stopped)
	}
	return s.shutdownErr
}

func TestSuperviseServers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Success_ShutdownOnCancel", func(t *testing.T) {
		api := newBlockingServer()
		metrics := newBlockingServer()
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- superviseServers(ctx, logger, time.Second,
				namedServer{name: "api", server: api},
				namedServer{name: "metrics", server: metrics},
			)
		}()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("servers did not stop")
		}
		assert.Equal(t, int32(1), api.shutdowns.Load())
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})

	t.Run("Error_StartFailureStopsOthers", func(t *testing.T) {
		api := newBlockingServer()
		metrics := newBlockingServer()
		metrics.startErr = errors.New("address already in use")

		err := superviseServers(context.Background(), logger, time.Second,
			namedServer{name: "api", server: api},
			namedServer{name: "metrics", server: metrics},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics server: address already in use")
		assert.Equal(t, int32(1), api.shutdowns.Load())
	})

	t.Run("Error_ShutdownFailure", func(t *testing.T) {
		api := newBlockingServer()
		api.shutdownErr = errors.New("deadline exceeded")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := superviseServers(ctx, logger, time.Second, namedServer{name: "api", server: api})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api server shutdown: deadline exceeded")
	})
}
