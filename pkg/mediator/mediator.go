// Package mediator routes typed commands and queries to exactly one handler through
// an ordered chain of behaviors.
//
// Routes are fixed at startup: handlers are registered on a Registry, and Build turns
// it into an immutable Dispatcher, failing on duplicate or missing handlers.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/DioGolang/GoSlices/pkg/apperr"
)

type Handler[Req any, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

type HandlerFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

// Named lets a request choose the name used in logs and metrics.
type Named interface {
	RequestName() string
}

// NameOf returns the request name: RequestName when implemented, the Go type name otherwise.
func NameOf(req any) string {
	if n, ok := req.(Named); ok {
		return n.RequestName()
	}
	t := reflect.TypeOf(req)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Next invokes the rest of the chain.
type Next func(ctx context.Context) (any, error)

type Behavior interface {
	Handle(ctx context.Context, req any, next Next) (any, error)
}

type BehaviorFunc func(ctx context.Context, req any, next Next) (any, error)

func (f BehaviorFunc) Handle(ctx context.Context, req any, next Next) (any, error) {
	return f(ctx, req, next)
}

type invoker func(ctx context.Context, req any) (any, error)

type route struct {
	name     string
	response reflect.Type
	call     invoker
}

type Registry struct {
	routes    map[reflect.Type]route
	behaviors []Behavior
	errs      []error
}

func NewRegistry() *Registry {
	return &Registry{routes: make(map[reflect.Type]route)}
}

// Use appends behaviors. The first one added is the outermost.
func (r *Registry) Use(behaviors ...Behavior) *Registry {
	r.behaviors = append(r.behaviors, behaviors...)
	return r
}

// Register binds the handler for Req. A second handler for the same request type is
// recorded as a configuration error reported by Build.
func Register[Req any, Res any](r *Registry, h Handler[Req, Res]) {
	key := reflect.TypeFor[Req]()
	if existing, ok := r.routes[key]; ok {
		r.errs = append(r.errs, fmt.Errorf("duplicate handler for %s", existing.name))
		return
	}
	var name string
	if key.Kind() == reflect.Pointer {
		name = key.Elem().Name()
	} else {
		var zero Req
		name = NameOf(zero)
	}
	r.routes[key] = route{
		name:     name,
		response: reflect.TypeFor[Res](),
		call: func(ctx context.Context, req any) (any, error) {
			res, err := h.Handle(ctx, req.(Req))
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}

// Expect names a request type that Build must find a handler for.
func Expect[Req any]() reflect.Type {
	return reflect.TypeFor[Req]()
}

// Build validates the registrations and precomposes every route's chain as
// Behavior1(Behavior2(...Handler)).
func (r *Registry) Build(expected ...reflect.Type) (*Dispatcher, error) {
	errs := append([]error(nil), r.errs...)
	for _, t := range expected {
		if _, ok := r.routes[t]; !ok {
			errs = append(errs, fmt.Errorf("no handler registered for %s", t.Name()))
		}
	}
	if len(errs) > 0 {
		return nil, apperr.Configuration(errors.Join(errs...).Error())
	}

	d := &Dispatcher{routes: make(map[reflect.Type]route, len(r.routes))}
	for key, rt := range r.routes {
		rt.call = compose(r.behaviors, rt.call)
		d.routes[key] = rt
	}
	return d, nil
}

func compose(behaviors []Behavior, terminal invoker) invoker {
	call := func(ctx context.Context, req any) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return terminal(ctx, req)
	}
	for i := len(behaviors) - 1; i >= 0; i-- {
		b, inner := behaviors[i], call
		call = func(ctx context.Context, req any) (any, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return b.Handle(ctx, req, func(ctx context.Context) (any, error) {
				return inner(ctx, req)
			})
		}
	}
	return call
}

// Dispatcher is immutable and safe for concurrent use.
type Dispatcher struct {
	routes map[reflect.Type]route
}

// Has reports whether a handler is registered for req's type.
func (d *Dispatcher) Has(req any) bool {
	_, ok := d.routes[reflect.TypeOf(req)]
	return ok
}

// Send routes req to its handler. Requests without a handler, or sent with a response
// type different from the registered one, fail with a configuration error.
// A request held in an interface is routed by its dynamic type.
func Send[Res any, Req any](ctx context.Context, d *Dispatcher, req Req) (Res, error) {
	var zero Res

	key := reflect.TypeFor[Req]()
	if key.Kind() == reflect.Interface {
		key = reflect.TypeOf(req)
	}
	rt, ok := d.routes[key]
	if !ok {
		return zero, apperr.Configuration("no handler registered for " + NameOf(req))
	}
	if want := reflect.TypeFor[Res](); rt.response != want {
		return zero, apperr.Configuration(fmt.Sprintf("%s responds with %s, not %s", rt.name, rt.response, want))
	}

	out, err := rt.call(ctx, req)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	return out.(Res), nil
}
