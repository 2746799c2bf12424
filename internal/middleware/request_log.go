package middleware

import (
	"net/http"
	"time"

	"echo-journal/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loguea una línea por request. Va después de chimw.RequestID
// para poder incluir el request id.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "http"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"durationMs": time.Since(start).Milliseconds(),
				"requestId":  chimw.GetReqID(r.Context()),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request", fields)
				return
			}
			log.Info("request", fields)
		})
	}
}
