package metrics

import "time"

type Metrics interface {
	// Business
	RecordCustomerCreated(status string)
	RecordProductCreated(status string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Event dispatch
	RecordEventDispatched(eventName string, success bool)
	RecordHandlerExecution(handlerName string, success bool, duration time.Duration)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
}
