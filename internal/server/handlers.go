package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MeKo-Tech/tictoc/internal/version"
	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// healthHandler reports liveness.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.Version,
		Time:    time.Now().Format(time.RFC3339),
	})
}

// timersHandler lists all timers (GET) or clears the registry (DELETE).
func (s *Server) timersHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		names := s.registry.Names()
		timers := make([]TimerStats, 0, len(names))
		for _, name := range names {
			stats, err := s.registry.Get(name)
			if err != nil {
				continue
			}
			timers = append(timers, newTimerStats(stats))
		}
		writeJSON(w, http.StatusOK, TimersResponse{Timers: timers, Count: len(timers)})
	case http.MethodDelete:
		s.registry.Clear()
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// timerHandler returns the stats of a single timer by name.
func (s *Server) timerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/timers/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "timer name required")
		return
	}
	stats, err := s.registry.Get(name)
	if err != nil {
		if errors.Is(err, timing.ErrUnknownTimer) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newTimerStats(stats))
}
