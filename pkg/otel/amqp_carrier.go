// Package otel wires tracing: the provider and the propagation of span context through
// broker message headers.
package otel

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/propagation"
)

// AMQPHeadersCarrier lets propagators read and write trace context in message headers.
type AMQPHeadersCarrier amqp.Table

var _ propagation.TextMapCarrier = AMQPHeadersCarrier(nil)

// Get ignores headers that are not strings; some brokers hand text back as bytes.
func (c AMQPHeadersCarrier) Get(key string) string {
	switch v := c[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func (c AMQPHeadersCarrier) Set(key string, value string) {
	c[key] = value
}

func (c AMQPHeadersCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
