package middleware

import (
	"net/http"
	"time"

	"github.com/DioGolang/GoEvents/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request, at Warn for 4xx and Error for 5xx.
// Paths in skip are not logged.
func RequestLogger(log logger.Logger, skip ...string) func(next http.Handler) http.Handler {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skipped[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("route", routePattern(r)),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("latency", time.Since(start)),
				logger.String("request_id", middleware.GetReqID(r.Context())),
			}

			switch status := ww.Status(); {
			case status >= http.StatusInternalServerError:
				log.Error(r.Context(), "http request failed", fields...)
			case status >= http.StatusBadRequest:
				log.Warn(r.Context(), "http request rejected", fields...)
			default:
				log.Info(r.Context(), "http request processed", fields...)
			}
		})
	}
}

// routePattern returns the matched chi pattern, or "unknown" outside a chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
