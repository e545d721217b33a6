package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRabbit "github.com/hellofresh/health-go/v5/checks/rabbitmq"
)

type healthOptions struct {
	checks []health.Config
}

type HealthOption func(*healthOptions)

func WithPostgres(db *sql.DB) HealthOption {
	return func(o *healthOptions) {
		if db == nil {
			return
		}
		o.checks = append(o.checks, health.Config{
			Name:    "postgres",
			Timeout: 5 * time.Second,
			Check:   db.PingContext,
		})
	}
}

type Pinger interface {
	Ping(ctx context.Context) error
}

func WithRedis(p Pinger) HealthOption {
	return func(o *healthOptions) {
		if p == nil {
			return
		}
		o.checks = append(o.checks, health.Config{
			Name:    "redis",
			Timeout: 3 * time.Second,
			Check:   p.Ping,
		})
	}
}

func WithRabbitMQ(dsn string) HealthOption {
	return func(o *healthOptions) {
		if dsn == "" {
			return
		}
		o.checks = append(o.checks, health.Config{
			Name:    "rabbitmq",
			Timeout: 3 * time.Second,
			Check:   healthRabbit.New(healthRabbit.Config{DSN: dsn}),
		})
	}
}

// WithCheck registers an arbitrary readiness check, e.g. the remote Users module.
func WithCheck(name string, check func(ctx context.Context) error) HealthOption {
	return func(o *healthOptions) {
		o.checks = append(o.checks, health.Config{
			Name:      name,
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check:     check,
		})
	}
}

func NewHealthHandler(serviceName, version string, opts ...HealthOption) (http.Handler, error) {
	options := &healthOptions{}
	for _, opt := range opts {
		opt(options)
	}

	h, err := health.New(health.WithComponent(health.Component{
		Name:    serviceName,
		Version: version,
	}))
	if err != nil {
		return nil, err
	}
	for _, check := range options.checks {
		if err := h.Register(check); err != nil {
			return nil, err
		}
	}
	return h.Handler(), nil
}
