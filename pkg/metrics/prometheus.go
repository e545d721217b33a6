package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	domainEvents    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	grpcDuration    *prometheus.HistogramVec
	rpcClientCalls  *prometheus.CounterVec
	duplicateEvents *prometheus.CounterVec
	outboxEvents    *prometheus.CounterVec
	notifications   *prometheus.CounterVec
}

var latencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_request_total",
			Help:        "Total number of dispatched commands and queries.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"request", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_request_duration_seconds",
			Help:        "Command and query handling latency.",
			Buckets:     latencyBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"request", "status"}),
		domainEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_domain_events_total",
			Help:        "Domain events delivered to notification handlers.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"event"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     latencyBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		grpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "grpc_duration_seconds",
			Help:        "Duration of gRPC requests served.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"grpc_service", "grpc_method", "status_code"}),
		rpcClientCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_rpc_client_calls_total",
			Help:        "Cross-module RPC calls by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"module", "method", "outcome"}),
		duplicateEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_duplicate_events_total",
			Help:        "Broker deliveries dropped by the idempotency guard.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"handler"}),
		outboxEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_outbox_events_processed_total",
			Help:        "Total outbox events processed.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_notifications_delivered_total",
			Help:        "Domain events turned into notifications.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"event"}),
	}

	reg.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.domainEvents,
		m.httpDuration,
		m.grpcDuration,
		m.rpcClientCalls,
		m.duplicateEvents,
		m.outboxEvents,
		m.notifications,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordRequest(request string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.requestTotal.WithLabelValues(request, status).Inc()
	p.requestDuration.WithLabelValues(request, status).Observe(duration.Seconds())
}

func (p *Prometheus) RecordDomainEvent(eventName string) {
	p.domainEvents.WithLabelValues(eventName).Inc()
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) ObserveGRPCRequestDuration(service, method, code string, duration float64) {
	p.grpcDuration.WithLabelValues(service, method, code).Observe(duration)
}

func (p *Prometheus) RecordRPCClientCall(module, method, outcome string) {
	p.rpcClientCalls.WithLabelValues(module, method, outcome).Inc()
}

func (p *Prometheus) IncDuplicateEvent(handler string) {
	p.duplicateEvents.WithLabelValues(handler).Inc()
}

func (p *Prometheus) IncOutboxEventsProcessed(status string) {
	p.outboxEvents.WithLabelValues(status).Inc()
}

func (p *Prometheus) IncNotificationDelivered(eventName string) {
	p.notifications.WithLabelValues(eventName).Inc()
}
