package event

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoSlices/pkg/logger"
	carrier "github.com/DioGolang/GoSlices/pkg/otel"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Consumer binds a durable queue to the events exchange and feeds every delivery to handler.
type Consumer struct {
	conn     *amqp.Connection
	exchange string
	queue    string
	bindings []string
	handler  MessageHandler
	logger   logger.Logger
}

// NewConsumer binds queue to exchange once per routing key; "#" receives everything.
func NewConsumer(conn *amqp.Connection, exchange, queue string, bindings []string, handler MessageHandler, l logger.Logger) *Consumer {
	if len(bindings) == 0 {
		bindings = []string{"#"}
	}
	return &Consumer{
		conn:     conn,
		exchange: exchange,
		queue:    queue,
		bindings: bindings,
		handler:  handler,
		logger:   l,
	}
}

// Start consumes until ctx is done or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := c.setupTopology(ch); err != nil {
		return fmt.Errorf("error when configuring topology: %w", err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return err
	}

	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.logger.Info(ctx, "waiting for messages", logger.String("queue", c.queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", c.queue)
			}
			c.deliver(ctx, d)
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, d amqp.Delivery) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier.AMQPHeadersCarrier(d.Headers))
	ctx, span := otel.Tracer("worker-tracer").Start(ctx, "Consume "+d.RoutingKey, trace.WithAttributes(
		attribute.String("messaging.destination", c.queue),
		attribute.String("messaging.message_id", d.MessageId),
		attribute.String("messaging.routing_key", d.RoutingKey),
	))
	defer span.End()

	if err := c.handler(ctx, d.Body, d.Headers); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error(ctx, "message handling failed, sending to dead letter",
			logger.String("routing_key", d.RoutingKey),
			logger.WithError(err),
		)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func (c *Consumer) setupTopology(ch *amqp.Channel) error {
	if err := DeclareExchange(ch, c.exchange); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return err
	}
	for _, key := range c.bindings {
		if err := ch.QueueBind(c.queue, key, c.exchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}
