package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/logging"
)

// Recovery turns a panicking handler into a 500 INTERNAL_ERROR. The panic
// value only reaches the body when exposeDetail is set. If the handler had
// already started its response, nothing more is written.
func Recovery(base *slog.Logger, exposeDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logging.FromCtx(r.Context(), base).Error("panic recovered",
					"panic", v,
					"method", r.Method,
					"path", r.URL.Path,
					"response_started", rec.status != 0,
					"stack", string(debug.Stack()),
				)

				if rec.status != 0 {
					return
				}
				rest.WriteError(w, application.NewInternalError("", fmt.Errorf("panic: %v", v)), exposeDetail)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
