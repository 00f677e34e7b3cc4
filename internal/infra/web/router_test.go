package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DioGolang/GoEvents/internal/application/usecase/customer"
	"github.com/DioGolang/GoEvents/internal/application/usecase/order"
	"github.com/DioGolang/GoEvents/internal/application/usecase/product"
	"github.com/DioGolang/GoEvents/internal/domain/event"
	eventhandler "github.com/DioGolang/GoEvents/internal/domain/event/handler"
	infraevent "github.com/DioGolang/GoEvents/internal/infra/event"
	"github.com/DioGolang/GoEvents/internal/infra/memory"
	"github.com/DioGolang/GoEvents/internal/infra/web/handler"
	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
	"github.com/DioGolang/GoEvents/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeMailer struct {
	sent []eventhandler.Email
}

func (m *fakeMailer) Send(_ context.Context, email eventhandler.Email) error {
	m.sent = append(m.sent, email)
	return nil
}

type testServer struct {
	router http.Handler
	logs   *observer.ObservedLogs
	mailer *fakeMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core))
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(reg, "test")
	tracer := noop.NewTracerProvider().Tracer("test")
	store := memory.NewStore()
	mailer := &fakeMailer{}

	dispatcher := infraevent.NewInstrumentedDispatcher(events.NewEventDispatcher(), log, m, tracer)
	dispatcher.Register(event.CustomerCreatedEventName, eventhandler.NewConsoleLogFirstHandler(log))
	dispatcher.Register(event.CustomerCreatedEventName, eventhandler.NewConsoleLogSecondHandler(log))
	dispatcher.Register(event.ProductCreatedEventName, eventhandler.NewSendEmailWhenProductIsCreatedHandler(mailer))

	health, err := handler.NewHealthHandler("test")
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		ServiceName:   "test",
		Logger:        log,
		Metrics:       m,
		Gatherer:      reg,
		HealthHandler: health,
		CustomerHandler: handler.NewCustomerHandler(
			&customer.CreateCustomerMetricsDecorator{
				Next:    customer.NewCreateCustomerUseCase(store, dispatcher),
				Metrics: m,
			},
			customer.NewChangeAddressUseCase(store, eventhandler.NewConsoleLogAddressChangedHandler(log)),
		),
		ProductHandler: handler.NewProductHandler(product.NewCreateProductUseCase(store, dispatcher)),
		OrderHandler:   handler.NewOrderHandler(order.NewPlaceOrderUseCase(store)),
	})

	return &testServer{router: router, logs: logs, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) messages() []string {
	var out []string
	for _, entry := range s.logs.All() {
		out = append(out, entry.Message)
	}
	return out
}

func TestRouter_CustomerFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/customers", `{"name":"Customer 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created customer.CreateOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Contains(t, s.messages(), "This is the first console log of event: CustomerCreatedEvent")
	assert.Contains(t, s.messages(), "This is the second console log of event: CustomerCreatedEvent")

	rec = s.do(t, http.MethodPut, "/api/v1/customers/"+created.ID+"/address",
		`{"address":{"street":"Street 1","number":123,"zip":"13330-250","city":"São Paulo"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, s.messages(),
		"Customer address: "+created.ID+", Customer 1 changed to: Street 1, 123, 13330-250 São Paulo")
}

func TestRouter_ProductAndOrder(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/customers", `{"name":"Customer 1"}`)
	var c customer.CreateOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))

	rec = s.do(t, http.MethodPost, "/api/v1/products", `{"name":"Product 1","description":"Product 1 description","price":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p product.CreateOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Len(t, s.mailer.sent, 1)

	rec = s.do(t, http.MethodPost, "/api/v1/orders",
		`{"customer_id":"`+c.ID+`","items":[{"product_id":"`+p.ID+`","quantity":4}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var o order.PlaceOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, 40.0, o.Total)
	assert.Equal(t, 20, o.RewardPoints)
}

func TestRouter_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed json", http.MethodPost, "/api/v1/customers", `{`, http.StatusBadRequest},
		{"missing name", http.MethodPost, "/api/v1/customers", `{"name":""}`, http.StatusUnprocessableEntity},
		{"invalid price", http.MethodPost, "/api/v1/products", `{"name":"P","price":0}`, http.StatusUnprocessableEntity},
		{"unknown customer", http.MethodPut, "/api/v1/customers/missing/address",
			`{"address":{"street":"Street 1","number":1,"zip":"1","city":"C"}}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_MetricsAndHealth(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/api/v1/customers", `{"name":"Customer 1"}`)

	rec := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `app_events_dispatched_total{event="CustomerCreatedEvent",service="test",status="success"} 1`), body)
	assert.Contains(t, body, "goevents_customer_created_total")

	rec = s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
