// Package modules assembles the dispatcher of the whole monolith from the collaborators
// of each slice. It is the only place that knows every slice.
package modules

import (
	"reflect"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/application/usecase/customer"
	"github.com/DioGolang/GoSlices/internal/application/usecase/estrutura"
	"github.com/DioGolang/GoSlices/internal/application/usecase/product"
	"github.com/DioGolang/GoSlices/internal/application/usecase/user"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/validation"
)

type Deps struct {
	Users      outbound.UnitOfWork[outbound.UserRepository]
	Products   outbound.UnitOfWork[outbound.ProductRepository]
	Customers  outbound.UnitOfWork[outbound.CustomerRepository]
	Estruturas outbound.UnitOfWork[outbound.EstruturaRepository]

	// UserDirectory is how Products reaches Users; in production an RPC client.
	UserDirectory outbound.UserDirectory

	Logger  logger.Logger
	Metrics metrics.Metrics
}

// NewDispatcher registers every slice behind Logging, Metrics and Validation, outermost
// first, and fails when a request type has no handler or more than one.
func NewDispatcher(d Deps) (*mediator.Dispatcher, error) {
	reg := mediator.NewRegistry().Use(
		mediator.NewLoggingBehavior(d.Logger),
		mediator.NewMetricsBehavior(d.Metrics),
		mediator.NewValidationBehavior(validation.New()),
	)

	user.Register(reg, user.NewHandlers(d.Users))
	product.Register(reg, product.NewHandlers(d.Products, d.UserDirectory))
	customer.Register(reg, customer.NewHandlers(d.Customers))
	estrutura.Register(reg, estrutura.NewHandlers(d.Estruturas))

	return reg.Build(Requests()...)
}

func Requests() []reflect.Type {
	var all []reflect.Type
	all = append(all, user.Requests()...)
	all = append(all, product.Requests()...)
	all = append(all, customer.Requests()...)
	all = append(all, estrutura.Requests()...)
	return all
}
