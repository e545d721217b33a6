// Package web assembles the HTTP surface of the monolith.
package web

import (
	"net/http"

	"github.com/DioGolang/GoSlices/internal/infra/web/handler"
	mw "github.com/DioGolang/GoSlices/internal/infra/web/middleware"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

type RouterConfig struct {
	ServiceName string
	Limiter     *mw.IPRateLimiter
	Health      http.Handler
	Metrics     http.Handler
}

func NewRouter(d *mediator.Dispatcher, log logger.Logger, m metrics.Metrics, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(otelchi.Middleware(cfg.ServiceName, otelchi.WithChiRoutes(r)))
	r.Use(mw.RequestLogger(log))
	r.Use(mw.MetricsWrapper(m))

	if cfg.Health != nil {
		r.Handle("/health", cfg.Health)
	}
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(cfg.Limiter.Handler(log))
		}
		r.Route("/users", handler.NewUsers(d, log).Routes)
		r.Route("/products", handler.NewProducts(d, log).Routes)
		r.Route("/customers", handler.NewCustomers(d, log).Routes)
		r.Route("/estruturas", handler.NewEstruturas(d, log).Routes)
	})
	return r
}
