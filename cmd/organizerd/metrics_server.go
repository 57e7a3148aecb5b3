package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orgbox/internal/resilience/circuitbreaker"
	"orgbox/pkg/config"
)

// HealthResponse represents a simple health check response.
type HealthResponse struct {
	Status             string `json:"status"`
	CircuitBreakerOpen bool   `json:"circuit_breaker_open"`
}

// startMetricsServer starts the observability HTTP server in the background.
//
// Endpoints:
//   - GET /metrics  - Prometheus metrics (pagination counters among others)
//   - GET /healthz  - liveness/readiness probe; 503 while the database
//     circuit breaker is open
//
// The listen address comes from METRICS_ADDR (default ":9090").
func startMetricsServer(logger *slog.Logger, breaker *circuitbreaker.DBCircuitBreaker) *http.Server {
	addr := config.GetEnvString("METRICS_ADDR", ":9090")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", healthHandler(breaker))

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	return server
}

// shutdownMetricsServer gracefully stops the server, allowing in-flight
// requests up to five seconds to complete.
func shutdownMetricsServer(logger *slog.Logger, server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("metrics server stopped")
	}
}

// healthHandler reports readiness. The store being unreachable (breaker
// open) makes the whole persistence core unusable, so it flips to 503.
func healthHandler(breaker *circuitbreaker.DBCircuitBreaker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		open := breaker.IsOpen()
		status := "healthy"
		code := http.StatusOK
		if open {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status:             status,
			CircuitBreakerOpen: open,
		})
	}
}
