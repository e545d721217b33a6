package event

import (
	"context"
	"time"

	carrier "github.com/DioGolang/GoSlices/pkg/otel"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

// AMQPPublisher publishes to a topic exchange, using the topic as routing key.
type AMQPPublisher struct {
	ch       *amqp.Channel
	exchange string
}

func NewAMQPPublisher(ch *amqp.Channel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange}
}

// DeclareExchange makes sure the durable topic exchange exists.
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	return ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil)
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte, headers map[string]string) error {
	table := make(amqp.Table, len(headers)+2)
	for k, v := range headers {
		table[k] = v
	}
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(table))

	return p.ch.PublishWithContext(
		ctx,
		p.exchange,
		topic,
		false,
		false,
		amqp.Publishing{
			Headers:      table,
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    headers[HeaderEventID],
			Timestamp:    time.Now(),
			Body:         payload,
		})
}
