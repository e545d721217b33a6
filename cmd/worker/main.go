package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DioGolang/GoSlices/configs"
	"github.com/DioGolang/GoSlices/internal/application/notification"
	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/internal/infra/event"
	"github.com/DioGolang/GoSlices/internal/infra/storage"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/otel"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	queueName   = "goslices.notifications"
	handlerName = "notifications"
)

func main() {
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}
	log := logger.NewLogger(cfg.ServiceName+"-worker", cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "worker stopped", logger.WithError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *configs.Conf, log logger.Logger) error {
	shutdownTracer, err := otel.InitProvider(ctx, cfg.ServiceName+"-worker", cfg.AppEnv, cfg.OtelCollector)
	if err != nil {
		return err
	}
	defer shutdownTracer()

	m := metrics.NewPrometheusMetrics(prometheus.DefaultRegisterer, cfg.ServiceName+"-worker")

	rdb := storage.NewRedisClient(cfg.RedisAddr(), "", 0)
	defer rdb.Close()
	store := storage.NewRedisAdapter(rdb)
	if err := store.Ping(ctx); err != nil {
		return err
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	bus := events.NewBus()
	if err := notification.NewNotifier(log, m).Register(bus); err != nil {
		return err
	}

	// outermost first: drop duplicates, then retry, each attempt bounded and breaker-guarded
	h := event.WrapIdempotency(log, m, store, handlerName, 24*time.Hour,
		event.WrapExponentialBackoff(log, m, handlerName, 3, 200*time.Millisecond,
			event.WrapResilientConsumer(m, handlerName, 5*time.Second, event.NewBreaker(handlerName),
				event.DispatchToBus(bus),
			),
		),
	)

	consumer := event.NewConsumer(conn, database.EventsExchange, queueName, notification.EventNames, h, log)
	log.Info(ctx, "worker started")
	return consumer.Start(ctx)
}
