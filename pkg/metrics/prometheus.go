package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	orderCreated    *prometheus.CounterVec
	orderUpdated    *prometheus.CounterVec
	orderDeleted    *prometheus.CounterVec
	stockConflicts  *prometheus.CounterVec
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	outboxEvents    *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		orderCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gocommerce_order_created_total",
			Help:        "Total orders created.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		orderUpdated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gocommerce_order_updated_total",
			Help:        "Total orders updated.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		orderDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gocommerce_order_deleted_total",
			Help:        "Total orders deleted.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		stockConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gocommerce_stock_conflicts_total",
			Help:        "Total order mutations refused for insufficient stock.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"workflow"}),
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
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_cache_hits_total",
			Help:        "Total cache hits.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"cache_type"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_cache_misses_total",
			Help:        "Total cache misses.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"cache_type"}),
		outboxEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_outbox_events_processed_total",
			Help:        "Total outbox events processed.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.orderCreated,
		m.orderUpdated,
		m.orderDeleted,
		m.stockConflicts,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.cacheHits,
		m.cacheMisses,
		m.outboxEvents,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordOrderCreated(status string) {
	p.orderCreated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordOrderUpdated(status string) {
	p.orderUpdated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordOrderDeleted(status string) {
	p.orderDeleted.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordStockConflict(workflow string) {
	p.stockConflicts.WithLabelValues(workflow).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) IncCacheHit(cacheType string) {
	p.cacheHits.WithLabelValues(cacheType).Inc()
}

func (p *Prometheus) IncCacheMiss(cacheType string) {
	p.cacheMisses.WithLabelValues(cacheType).Inc()
}

func (p *Prometheus) IncOutboxEventsProcessed(status string) {
	p.outboxEvents.WithLabelValues(status).Inc()
}
