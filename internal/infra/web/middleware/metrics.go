package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DioGolang/GoEvents/pkg/metrics"
	"github.com/go-chi/chi/v5/middleware"
)

var statusLabels = func() (labels [600]string) {
	for code := 100; code < len(labels); code++ {
		labels[code] = strconv.Itoa(code)
	}
	return labels
}()

func statusLabel(code int) string {
	if code >= 100 && code < len(statusLabels) {
		return statusLabels[code]
	}
	return strconv.Itoa(code)
}

// MetricsWrapper observes request latency labelled by route pattern, so
// /customers/{id}/address is one series regardless of id.
func MetricsWrapper(m metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			m.ObserveHTTPRequestDuration(r.Method, routePattern(r), statusLabel(ww.Status()), time.Since(start).Seconds())
		})
	}
}
