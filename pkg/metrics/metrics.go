package metrics

import "time"

type Metrics interface {
	// Business
	RecordOrderCreated(status string)
	RecordOrderUpdated(status string)
	RecordOrderDeleted(status string)
	RecordStockConflict(workflow string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure (HTTP)
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)

	// Performance and Resilience
	IncCacheHit(cacheType string)
	IncCacheMiss(cacheType string)
	IncOutboxEventsProcessed(status string)
}
