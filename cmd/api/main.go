package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DioGolang/GoSlices/configs"
	"github.com/DioGolang/GoSlices/internal/application/modules"
	"github.com/DioGolang/GoSlices/internal/application/notification"
	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/internal/infra/event"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/client"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/service"
	"github.com/DioGolang/GoSlices/internal/infra/web"
	"github.com/DioGolang/GoSlices/internal/infra/web/handler"
	"github.com/DioGolang/GoSlices/internal/infra/web/middleware"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/otel"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}
	log := logger.NewLogger(cfg.ServiceName, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "api stopped", logger.WithError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *configs.Conf, log logger.Logger) error {
	shutdownTracer, err := otel.InitProvider(ctx, cfg.ServiceName, cfg.AppEnv, cfg.OtelCollector)
	if err != nil {
		return err
	}
	defer shutdownTracer()

	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(reg, cfg.ServiceName)

	bus := events.NewBus()
	if err := notification.NewNotifier(log, m).Register(bus); err != nil {
		return err
	}

	var (
		db     *sql.DB
		slices database.Slices
	)
	switch cfg.DBDriver {
	case "postgres":
		db, err = sql.Open("postgres", cfg.PostgresDSN())
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		slices = database.NewPostgresSlices(db, bus, log, m)
	default:
		log.Warn(ctx, "running on the in-memory store, nothing survives a restart")
		slices = database.NewMemorySlices(bus, log, m)
	}

	// Products reaches Users through RPC even in one process; RPC_TARGET may point elsewhere.
	cc, err := client.Dial(cfg.RPCTarget)
	if err != nil {
		return err
	}
	defer cc.Close()

	d, err := modules.NewDispatcher(modules.Deps{
		Users:         slices.Users,
		Products:      slices.Products,
		Customers:     slices.Customers,
		Estruturas:    slices.Estruturas,
		UserDirectory: client.NewUsersClient(cc, cfg.RPCTimeout, log, m),
		Logger:        log,
		Metrics:       m,
	})
	if err != nil {
		return err
	}

	grpcServer, grpcHealth := service.NewServer(d, log, m)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return err
	}

	healthOpts := []handler.HealthOption{
		handler.WithPostgres(db),
		handler.WithCheck("users-rpc", func(ctx context.Context) error {
			res, err := healthpb.NewHealthClient(cc).Check(ctx, &healthpb.HealthCheckRequest{})
			if err != nil {
				return err
			}
			if res.Status != healthpb.HealthCheckResponse_SERVING {
				return errors.New(res.Status.String())
			}
			return nil
		}),
	}

	g, gCtx := errgroup.WithContext(ctx)

	if db != nil {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		ch, err := conn.Channel()
		if err != nil {
			return err
		}
		defer ch.Close()
		if err := event.DeclareExchange(ch, database.EventsExchange); err != nil {
			return err
		}
		relay := event.NewOutboxRelay(
			database.NewPostgresOutbox(db),
			event.NewAMQPPublisher(ch, database.EventsExchange),
			log, m,
			event.RelayConfig{
				BatchSize:   cfg.OutboxBatchSize,
				Workers:     cfg.OutboxWorkers,
				MaxAttempts: cfg.OutboxAttempts,
			},
		)
		g.Go(func() error { relay.Run(gCtx); return nil })
		g.Go(func() error { relay.RunRescuer(gCtx, 5*time.Minute); return nil })
		healthOpts = append(healthOpts, handler.WithRabbitMQ(cfg.AMQPURL))
	}

	healthHandler, err := handler.NewHealthHandler(cfg.ServiceName, "1.0.0", healthOpts...)
	if err != nil {
		return err
	}
	router := web.NewRouter(d, log, m, web.RouterConfig{
		ServiceName: cfg.ServiceName,
		Limiter: middleware.NewRateLimiter(gCtx, middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}),
		Health:  healthHandler,
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})
	httpServer := &http.Server{
		Addr:              ":" + cfg.WebServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		log.Info(gCtx, "grpc server listening", logger.String("port", cfg.GRPCPort))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info(gCtx, "http server listening", logger.String("port", cfg.WebServerPort))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		grpcHealth.Shutdown()
		grpcServer.GracefulStop()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutCtx)
	})
	return g.Wait()
}
