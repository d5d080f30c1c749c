// Package server exposes the process-wide timing registry over HTTP:
// JSON statistics endpoints, Prometheus metrics and a live report stream.
package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	addr     string
	registry *timing.Registry
	hub      *Hub
}

// Config holds server configuration.
type Config struct {
	Host string
	Port int

	// Registry to expose. Nil means the process-wide default.
	Registry *timing.Registry
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// TimerStats is the JSON projection of one registry entry. Stdev is null
// while fewer than two measurements exist.
type TimerStats struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Total  float64  `json:"total"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Stdev  *float64 `json:"stdev"`
}

// TimersResponse lists the stats of every registered timer.
type TimersResponse struct {
	Timers []TimerStats `json:"timers"`
	Count  int          `json:"count"`
}

// ErrorResponse carries an error back to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newTimerStats(s timing.Stats) TimerStats {
	out := TimerStats{
		Name:   s.Name,
		Count:  s.Count,
		Total:  s.Total,
		Min:    s.Min,
		Max:    s.Max,
		Mean:   s.Mean,
		Median: s.Median,
	}
	if !math.IsNaN(s.Stdev) {
		out.Stdev = &s.Stdev
	}
	return out
}

// NewServer creates a stats server over the given registry.
func NewServer(config Config) *Server {
	registry := config.Registry
	if registry == nil {
		registry = timing.Default
	}
	registerCollector(registry)
	return &Server{
		addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		registry: registry,
		hub:      NewHub(),
	}
}

// Addr returns the listen address built from the configured host and port.
func (s *Server) Addr() string {
	return s.addr
}

// Registry returns the registry the server reads from.
func (s *Server) Registry() *timing.Registry {
	return s.registry
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.instrument("health", s.healthHandler))
	mux.HandleFunc("/timers", s.instrument("timers", s.timersHandler))
	mux.HandleFunc("/timers/", s.instrument("timer", s.timerHandler))
	mux.HandleFunc("/ws", s.websocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}

// Handler returns the fully routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.SetupRoutes(mux)
	return mux
}
