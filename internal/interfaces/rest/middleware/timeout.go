package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/logging"
)

var timeoutBody = func() string {
	b, _ := json.Marshal(rest.ErrorResponse{
		Error:   application.ErrCodeTimeout,
		Message: "Request timeout",
	})
	return string(b)
}()

// Timeout answers 503 once the deadline passes. An order already in
// flight keeps running; the handler's outcome is then only in the logs.
// A zero timeout disables it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			http.TimeoutHandler(next, timeout, timeoutBody).ServeHTTP(w, r)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logging.FromCtx(r.Context(), slog.Default()).Warn("request deadline exceeded",
					"timeout", timeout.String(),
				)
			}
		})
	}
}
