package logger

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const slowRequest = 100 * time.Millisecond

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// MiddlewareLogging logs one line per request and turns a handler panic into a 500.
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &responseRecorder{ResponseWriter: w}

			log.Debug().
				Str("method", r.Method).
				Str("route", routePrefix(r.URL.Path)).
				Str("ip", r.RemoteAddr).
				Msg("request started")

			defer func() {
				if rec := recover(); rec != nil {
					log.Error().
						Str("panic", fmt.Sprintf("%v", rec)).
						Str("stack", string(debug.Stack())).
						Msg("request panic")
					if recorder.statusCode == 0 {
						http.Error(recorder, "Internal Server Error", http.StatusInternalServerError)
					}
				}

				// a handler that wrote nothing still answers 200
				if recorder.statusCode == 0 {
					recorder.statusCode = http.StatusOK
				}

				duration := time.Since(start)

				var msg string
				switch {
				case recorder.statusCode >= 500:
					msg = "server error"
				case recorder.statusCode >= 400:
					msg = "client error"
				default:
					msg = "request completed"
				}

				// paths carry codes, so only the route prefix is logged
				logEntry := log.Info().
					Str("method", r.Method).
					Str("route", routePrefix(r.URL.Path)).
					Int("status", recorder.statusCode).
					Dur("duration_ms", duration/time.Millisecond).
					Int("bytes", recorder.size).
					Str("ip", r.RemoteAddr)

				if duration > slowRequest {
					logEntry = logEntry.Bool("slow", true)
				}

				switch {
				case recorder.statusCode >= 500:
					logEntry = logEntry.Str("error_type", "server_error")
				case recorder.statusCode >= 400:
					logEntry = logEntry.Str("error_type", "client_error")
				}

				logEntry.Msg(msg)
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}

var staticSegments = map[string]bool{
	"api":       true,
	"clipboard": true,
	"share":     true,
	"view":      true,
	"ping":      true,
}

// routePrefix cuts the path at the first segment that is not part of a route name.
func routePrefix(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !staticSegments[seg] {
			break
		}
		kept = append(kept, seg)
	}
	return "/" + strings.Join(kept, "/")
}
