package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
)

// responseWriter records the status and body size written by the handler chain.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// NewRequestLoggingMiddleware logs one line per request and makes the logger
// available to handlers and the planner through the request context.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r = r.WithContext(logging.WithLogger(r.Context(), logger))

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			attrs := []slog.Attr{
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.Int("response_bytes", wrapped.bytes),
				slog.String("component", "http_server"),
			}
			// Journey endpoints carry the stop pair; the API key never reaches the log.
			query := r.URL.Query()
			if from, to := query.Get("from"), query.Get("to"); from != "" || to != "" {
				attrs = append(attrs, slog.String("from", from), slog.String("to", to))
			}

			logging.LogHTTPRequest(logger, r.Method, r.URL.Path, wrapped.statusCode,
				float64(time.Since(start).Nanoseconds())/1e6, attrs...)
		})
	}
}
