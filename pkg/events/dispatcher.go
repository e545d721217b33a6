package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrHandlerAlreadyRegistered = errors.New("handler already registered")

type EventHandler interface {
	Name() string
	Handle(ctx context.Context, event Event) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler) error
	Dispatch(ctx context.Context, event Event) error
	Remove(eventName string, handler EventHandler) error
	Has(eventName string, handler EventHandler) bool
	Clear()
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc struct {
	HandlerName string
	Fn          func(ctx context.Context, event Event) error
}

func (h HandlerFunc) Name() string { return h.HandlerName }

func (h HandlerFunc) Handle(ctx context.Context, event Event) error { return h.Fn(ctx, event) }

// Bus delivers events to in-process handlers, sequentially and in registration order.
// Handlers registered under "*" receive every event.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

const Wildcard = "*"

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]EventHandler)}
}

func (b *Bus) Register(eventName string, handler EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, h := range b.handlers[eventName] {
		if h.Name() == handler.Name() {
			return fmt.Errorf("%w: %s on %s", ErrHandlerAlreadyRegistered, handler.Name(), eventName)
		}
	}
	b.handlers[eventName] = append(b.handlers[eventName], handler)
	return nil
}

// Dispatch runs every matching handler; one failing handler does not stop the others.
func (b *Bus) Dispatch(ctx context.Context, event Event) error {
	b.mu.RLock()
	targets := make([]EventHandler, 0, len(b.handlers[event.EventName()])+len(b.handlers[Wildcard]))
	targets = append(targets, b.handlers[event.EventName()]...)
	targets = append(targets, b.handlers[Wildcard]...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("handler %s: %w", h.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) Remove(eventName string, handler EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	hs := b.handlers[eventName]
	for i, h := range hs {
		if h.Name() == handler.Name() {
			b.handlers[eventName] = append(hs[:i:i], hs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (b *Bus) Has(eventName string, handler EventHandler) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[eventName] {
		if h.Name() == handler.Name() {
			return true
		}
	}
	return false
}

func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[string][]EventHandler)
}
