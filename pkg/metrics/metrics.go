package metrics

import "time"

type Metrics interface {
	// Business
	RecordRequest(requestName string, success bool, duration time.Duration)
	RecordDomainEvent(eventName string)

	// Infrastructure (HTTP & gRPC)
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
	ObserveGRPCRequestDuration(service, method, code string, duration float64)
	RecordRPCClientCall(module, method, outcome string)

	// Performance and Resilience
	IncDuplicateEvent(handler string)
	IncOutboxEventsProcessed(status string)
	IncNotificationDelivered(eventName string)
}

// Nop is a Metrics that records nothing.
type Nop struct{}

func (Nop) RecordRequest(string, bool, time.Duration)                  {}
func (Nop) RecordDomainEvent(string)                                   {}
func (Nop) ObserveHTTPRequestDuration(string, string, string, float64) {}
func (Nop) ObserveGRPCRequestDuration(string, string, string, float64) {}
func (Nop) RecordRPCClientCall(string, string, string)                 {}
func (Nop) IncDuplicateEvent(string)                                   {}
func (Nop) IncOutboxEventsProcessed(string)                            {}
func (Nop) IncNotificationDelivered(string)                            {}
