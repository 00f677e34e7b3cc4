package web

import (
	"net/http"

	"github.com/DioGolang/GoEvents/internal/infra/web/handler"
	appmiddleware "github.com/DioGolang/GoEvents/internal/infra/web/middleware"
	"github.com/DioGolang/GoEvents/pkg/logger"
	"github.com/DioGolang/GoEvents/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
)

type RouterConfig struct {
	ServiceName     string
	Logger          logger.Logger
	Metrics         metrics.Metrics
	Gatherer        prometheus.Gatherer
	RateLimiter     *appmiddleware.IPRateLimiter
	HealthHandler   http.Handler
	CustomerHandler *handler.Customer
	ProductHandler  *handler.Product
	OrderHandler    *handler.Order
}

func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(otelchi.Middleware(cfg.ServiceName, otelchi.WithChiRoutes(r)))
	r.Use(appmiddleware.RequestLogger(cfg.Logger, "/metrics", "/health"))
	r.Use(appmiddleware.MetricsWrapper(cfg.Metrics))

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	if cfg.HealthHandler != nil {
		r.Handle("/health", cfg.HealthHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Handler(cfg.Logger))
		}
		r.Post("/customers", cfg.CustomerHandler.Create)
		r.Put("/customers/{id}/address", cfg.CustomerHandler.ChangeAddress)
		r.Post("/products", cfg.ProductHandler.Create)
		r.Post("/orders", cfg.OrderHandler.Place)
	})

	return r
}
