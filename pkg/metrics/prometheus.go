package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"time"
)

type Prometheus struct {
	customerCreated *prometheus.CounterVec
	productCreated  *prometheus.CounterVec
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	eventsTotal     *prometheus.CounterVec
	handlerTotal    *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		customerCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "goevents_customer_created_total",
			Help:        "Total customers created.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		productCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "goevents_product_created_total",
			Help:        "Total products created.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_events_dispatched_total",
			Help:        "Total domain events dispatched.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"event", "status"}),
		handlerTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_event_handler_total",
			Help:        "Total event handler executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"handler", "status"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_event_handler_duration_seconds",
			Help:        "Event handler execution latency.",
			Buckets:     []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"handler", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
	}

	reg.MustRegister(
		m.customerCreated,
		m.productCreated,
		m.useCaseTotal,
		m.useCaseDuration,
		m.eventsTotal,
		m.handlerTotal,
		m.handlerDuration,
		m.httpDuration,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func (p *Prometheus) RecordCustomerCreated(status string) {
	p.customerCreated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordProductCreated(status string) {
	p.productCreated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := statusLabel(success)
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) RecordEventDispatched(eventName string, success bool) {
	p.eventsTotal.WithLabelValues(eventName, statusLabel(success)).Inc()
}

func (p *Prometheus) RecordHandlerExecution(handlerName string, success bool, duration time.Duration) {
	status := statusLabel(success)
	p.handlerTotal.WithLabelValues(handlerName, status).Inc()
	p.handlerDuration.WithLabelValues(handlerName, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}
