package opsserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Pinger checks a backing dependency (database) for readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server — HTTP surface для health checks, метрик и сводки loot table.
type Server struct {
	addr    string
	handler http.Handler
	pinger  Pinger

	loot atomic.Pointer[data.LootTable]
}

// New creates an ops server listening on addr. pinger may be nil.
func New(addr string, pinger Pinger) *Server {
	s := &Server{
		addr:   addr,
		pinger: pinger,
	}

	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/loot/summary", s.handleLootSummary)

	s.handler = r
	return s
}

// SetLootTable publishes the loaded loot table. The server reports ready from now on.
func (s *Server) SetLootTable(t *data.LootTable) {
	s.loot.Store(t)
}

// Handler returns the router (for tests and embedding).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("ops server starting", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ops server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down ops server: %w", err)
	}
	slog.Info("ops server stopped")
	return nil
}
