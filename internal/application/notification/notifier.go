// Package notification turns committed domain events into notifications. Today a
// notification is a structured log line and a counter; nothing here can fail the
// state change that raised the event.
package notification

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
)

// EventNames lists every domain event the notifier subscribes to.
var EventNames = []string{
	entity.EventUserCreated, entity.EventUserUpdated, entity.EventUserDeactivated, entity.EventUserActivated,
	entity.EventProductCreated, entity.EventProductUpdated, entity.EventProductStockChanged,
	entity.EventProductPriceChanged, entity.EventProductDeactivated,
	entity.EventCustomerCreated, entity.EventCustomerUpdated, entity.EventCustomerDeactivated,
	entity.EventCustomerActivated,
	entity.EventEstruturaCreated, entity.EventEstruturaUpdated, entity.EventEstruturaDeleted,
}

type Notifier struct {
	logger  logger.Logger
	metrics metrics.Metrics
}

func NewNotifier(l logger.Logger, m metrics.Metrics) *Notifier {
	return &Notifier{logger: l, metrics: m}
}

func (n *Notifier) Name() string { return "notification.logger" }

// Register subscribes the notifier to every name in EventNames.
func (n *Notifier) Register(bus events.EventDispatcher) error {
	for _, name := range EventNames {
		if err := bus.Register(name, n); err != nil {
			return err
		}
	}
	return nil
}

func (n *Notifier) Handle(ctx context.Context, evt events.Event) error {
	fields := append([]logger.Field{
		logger.String("event", evt.EventName()),
		logger.String("event_id", evt.EventID()),
		logger.String("aggregate_id", evt.AggregateID()),
	}, details(evt)...)

	n.logger.Info(ctx, "domain event notification", fields...)
	n.metrics.IncNotificationDelivered(evt.EventName())
	return nil
}

// details picks the payload fields worth a notification. Envelopes received from the
// broker carry no typed payload and log the header only.
func details(evt events.Event) []logger.Field {
	switch e := evt.(type) {
	case entity.UserCreated:
		return []logger.Field{logger.String("email", e.Email)}
	case entity.UserDeactivated:
		return []logger.Field{logger.String("user_id", e.UserID)}
	case entity.ProductCreated:
		return []logger.Field{
			logger.String("name", e.Name),
			logger.Float64("price", e.Price),
			logger.Int("stock", e.Stock),
		}
	case entity.ProductStockChanged:
		return []logger.Field{
			logger.Int("previous_stock", e.PreviousStock),
			logger.Int("new_stock", e.NewStock),
		}
	case entity.ProductPriceChanged:
		return []logger.Field{
			logger.Float64("previous_price", e.PreviousPrice),
			logger.Float64("new_price", e.NewPrice),
			logger.String("currency", e.Currency),
		}
	case entity.CustomerCreated:
		return []logger.Field{logger.String("email", e.Email)}
	case entity.EstruturaUpdated:
		return []logger.Field{logger.Int("version", e.Version), logger.String("status", e.Status.String())}
	default:
		return nil
	}
}
