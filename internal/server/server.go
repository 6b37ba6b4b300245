// Package server wires the inspection endpoints into one HTTP server
// and manages its lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gengteng/flv-dump/internal/config"
	"github.com/gengteng/flv-dump/internal/inspect"
	"github.com/gengteng/flv-dump/internal/metrics"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// New creates a new server instance with the given configuration.
// The server is not started until Start is called.
func New(cfg *config.Config, log *slog.Logger) *Server {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	inspectHandler := inspect.NewHandler(m, log)
	inspectHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.ListenPort),
		Handler: mux,
	}

	return &Server{
		httpServer: httpServer,
		log:        log,
	}
}

// Start begins serving HTTP requests.
// This method blocks until the server is stopped or encounters an error.
func (s *Server) Start() error {
	s.log.Info("inspection server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server with a timeout.
// Returns an error if shutdown fails or times out.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleHealth responds to health check requests.
// Returns 200 OK to indicate the server is running.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}
