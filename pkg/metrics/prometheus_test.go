package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "test")

	m.RecordCustomerCreated("success")
	m.RecordProductCreated("failure")
	m.RecordEventDispatched("CustomerCreatedEvent", true)
	m.RecordEventDispatched("CustomerCreatedEvent", true)
	m.RecordEventDispatched("CustomerCreatedEvent", false)
	m.RecordHandlerExecution("console-log-1", false, time.Millisecond)
	m.RecordUseCaseExecution("CreateCustomer", true, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.customerCreated.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.productCreated.WithLabelValues("failure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.eventsTotal.WithLabelValues("CustomerCreatedEvent", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsTotal.WithLabelValues("CustomerCreatedEvent", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handlerTotal.WithLabelValues("console-log-1", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.useCaseTotal.WithLabelValues("CreateCustomer", "success")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.handlerDuration))
}

func TestPrometheus_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg, "test")

	assert.Panics(t, func() { NewPrometheusMetrics(reg, "test") })
}
