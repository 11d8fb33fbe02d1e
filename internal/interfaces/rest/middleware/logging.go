package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/logging"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Logging tags every request with an id, puts a request-scoped logger in
// the context and logs the outcome once the handler returns.
func Logging(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			l := base.With(
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
			)
			r = r.WithContext(logging.WithCtx(r.Context(), l))

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []any{
				"status", status,
				"dur_ms", time.Since(start).Milliseconds(),
				"resp_bytes", rec.bytes,
			}

			if status >= http.StatusInternalServerError {
				l.Error("http_request", attrs...)
				return
			}
			if status >= http.StatusBadRequest {
				l.Warn("http_request", attrs...)
				return
			}
			l.Info("http_request", attrs...)
		})
	}
}
