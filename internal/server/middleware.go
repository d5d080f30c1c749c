package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// instrument times each request with a named timer accumulating into the
// served registry, so the server's own endpoints show up in /timers. The
// rendered report fans out to WebSocket clients and the debug log. It also
// records the Prometheus request metrics.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		timer := &timing.Timer{
			Name:     "http." + route,
			Text:     timing.Template("{name}: {milliseconds:.1f} ms"),
			Sink:     timing.TeeSink(s.hub.Sink(), timing.SlogSink(slog.Default(), slog.LevelDebug)),
			Registry: s.registry,
		}
		_ = timer.Start()
		next(rw, r)
		seconds, err := timer.Stop()
		if err != nil {
			return
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(seconds)
	}
}
