package database

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
)

// Tx is an open backend transaction. H is the handle repositories read and write through.
type Tx[H any] interface {
	Handle() H
	Commit() error
	Rollback() error
}

// Backend is the storage a unit of work runs on (Postgres or the in-memory store).
type Backend[H any] interface {
	Handle() H
	Begin(ctx context.Context) (Tx[H], error)
	AppendOutbox(ctx context.Context, h H, evts []events.Event) error
}

// Change is one staged write. revision is the revision the write expects to find stored;
// the row is written with revision+1.
type Change[H any] func(ctx context.Context, h H, revision int) error

type stagedChange[H any] struct {
	agg   entity.Aggregate
	apply Change[H]
}

// Session is what repositories see of a scope: the current handle and a place to stage writes.
// Only aggregates handed to Stage are tracked for event draining.
type Session[H any] struct {
	backend Backend[H]
	tx      Tx[H]
	tracked []entity.Aggregate
	staged  []stagedChange[H]
}

// Handle returns the open transaction's handle, or the backend's when no transaction is open.
func (s *Session[H]) Handle() H {
	if s.tx != nil {
		return s.tx.Handle()
	}
	return s.backend.Handle()
}

func (s *Session[H]) Stage(agg entity.Aggregate, apply Change[H]) {
	s.track(agg)
	s.staged = append(s.staged, stagedChange[H]{agg: agg, apply: apply})
}

func (s *Session[H]) track(agg entity.Aggregate) {
	for _, t := range s.tracked {
		if t == agg {
			return
		}
	}
	s.tracked = append(s.tracked, agg)
}

type UnitOfWork[R any, H any] struct {
	backend Backend[H]
	repos   func(s *Session[H]) R
	bus     events.EventDispatcher
	logger  logger.Logger
	metrics metrics.Metrics
}

// NewUnitOfWork builds the engine for one slice. repos binds the slice's repositories to a
// session; bus receives the domain events of every successful commit.
func NewUnitOfWork[R any, H any](
	backend Backend[H],
	repos func(s *Session[H]) R,
	bus events.EventDispatcher,
	log logger.Logger,
	m metrics.Metrics,
) *UnitOfWork[R, H] {
	return &UnitOfWork[R, H]{backend: backend, repos: repos, bus: bus, logger: log, metrics: m}
}

func (u *UnitOfWork[R, H]) Scope() outbound.Scope[R] {
	return u.newScope()
}

func (u *UnitOfWork[R, H]) newScope() *scope[R, H] {
	s := &scope[R, H]{uow: u, session: &Session[H]{backend: u.backend}}
	s.repos = u.repos(s.session)
	return s
}

func (u *UnitOfWork[R, H]) Do(ctx context.Context, fn func(ctx context.Context, repos R) error) error {
	s := u.newScope()
	if err := s.Begin(ctx); err != nil {
		return err
	}
	if err := fn(ctx, s.Repositories()); err != nil {
		return s.abort(ctx, err)
	}
	if _, err := s.SaveChanges(ctx); err != nil {
		return s.abort(ctx, err)
	}
	return s.Commit(ctx)
}

type drained struct {
	agg    entity.Aggregate
	events []events.Event
}

type applied struct {
	agg      entity.Aggregate
	previous int
}

type scope[R any, H any] struct {
	uow     *UnitOfWork[R, H]
	session *Session[H]
	repos   R

	// drained events and revision bumps not yet confirmed by a commit
	pending []drained
	applied []applied
}

func (s *scope[R, H]) Repositories() R { return s.repos }

func (s *scope[R, H]) Begin(ctx context.Context) error {
	if s.session.tx != nil {
		return apperr.Internal("transaction already open", nil)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// An in-flight commit must finish even when the caller is cancelled, so the
	// transaction itself is detached from ctx cancellation.
	tx, err := s.uow.backend.Begin(context.WithoutCancel(ctx))
	if err != nil {
		return apperr.Internal("begin transaction", err)
	}
	s.session.tx = tx
	return nil
}

// SaveChanges drains the events of every tracked aggregate, applies the staged writes and
// the outbox rows, and returns the number of writes applied. On failure every drained event
// goes back to its aggregate.
func (s *scope[R, H]) SaveChanges(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	explicit := s.session.tx != nil
	if !explicit {
		if err := s.Begin(ctx); err != nil {
			return 0, err
		}
	}

	staged := s.session.staged
	s.session.staged = nil
	batch := s.drain()

	if err := s.apply(ctx, staged, batch); err != nil {
		if !explicit {
			return 0, s.abort(ctx, err)
		}
		return 0, err
	}

	if !explicit {
		if err := s.Commit(ctx); err != nil {
			return 0, err
		}
	}
	return len(staged), nil
}

func (s *scope[R, H]) drain() []drained {
	var batch []drained
	for _, agg := range s.session.tracked {
		if evts := agg.PullEvents(); len(evts) > 0 {
			batch = append(batch, drained{agg: agg, events: evts})
		}
	}
	s.session.tracked = nil
	return batch
}

func (s *scope[R, H]) apply(ctx context.Context, staged []stagedChange[H], batch []drained) error {
	// everything drained belongs to the scope from here on, so a failure restores it
	s.pending = append(s.pending, batch...)

	if err := ctx.Err(); err != nil {
		return err
	}
	h := s.session.Handle()
	for _, c := range staged {
		previous := c.agg.Revision()
		if err := c.apply(ctx, h, previous); err != nil {
			return err
		}
		c.agg.MarkPersisted(previous + 1)
		s.applied = append(s.applied, applied{agg: c.agg, previous: previous})
	}

	var outbox []events.Event
	for _, d := range batch {
		outbox = append(outbox, d.events...)
	}
	if len(outbox) == 0 {
		return nil
	}
	if err := s.uow.backend.AppendOutbox(ctx, h, outbox); err != nil {
		return apperr.Internal("append outbox", err)
	}
	return nil
}

func (s *scope[R, H]) Commit(ctx context.Context) error {
	if s.session.tx == nil {
		return apperr.Internal("no open transaction", nil)
	}
	if err := ctx.Err(); err != nil {
		return s.abort(ctx, err)
	}
	if len(s.session.staged) > 0 {
		return s.abort(ctx, apperr.Internal("commit with unsaved changes", nil))
	}

	tx := s.session.tx
	s.session.tx = nil
	if err := tx.Commit(); err != nil {
		s.restore()
		if apperr.KindOf(err) == apperr.KindConflict {
			return err
		}
		return apperr.Internal("commit transaction", err)
	}

	delivered := s.pending
	s.pending, s.applied = nil, nil
	s.publish(ctx, delivered)
	return nil
}

func (s *scope[R, H]) Rollback(ctx context.Context) error {
	s.restore()
	s.session.staged = nil
	s.session.tracked = nil
	tx := s.session.tx
	if tx == nil {
		return nil
	}
	s.session.tx = nil
	if err := tx.Rollback(); err != nil {
		s.uow.logger.Error(ctx, "rollback failed", logger.WithError(err))
		return apperr.Internal("rollback transaction", err)
	}
	return nil
}

// abort rolls back and returns cause, carrying any rollback failure along.
func (s *scope[R, H]) abort(ctx context.Context, cause error) error {
	if rbErr := s.Rollback(ctx); rbErr != nil {
		return fmt.Errorf("%w (rollback: %v)", cause, rbErr)
	}
	return cause
}

// restore undoes the in-memory effects of writes that never committed.
func (s *scope[R, H]) restore() {
	for i := len(s.applied) - 1; i >= 0; i-- {
		s.applied[i].agg.MarkPersisted(s.applied[i].previous)
	}
	// RestoreEvents prepends, so later batches go back first
	for i := len(s.pending) - 1; i >= 0; i-- {
		s.pending[i].agg.RestoreEvents(s.pending[i].events)
	}
	s.pending, s.applied = nil, nil
}

// publish hands committed events to the in-process bus. Delivery failures are logged:
// the state change they describe is already durable.
func (s *scope[R, H]) publish(ctx context.Context, batch []drained) {
	ctx = context.WithoutCancel(ctx)
	for _, d := range batch {
		for _, evt := range d.events {
			s.uow.metrics.RecordDomainEvent(evt.EventName())
			if s.uow.bus == nil {
				continue
			}
			if err := s.uow.bus.Dispatch(ctx, evt); err != nil {
				s.uow.logger.Warn(ctx, "domain event handler failed",
					logger.String("event", evt.EventName()),
					logger.String("event_id", evt.EventID()),
					logger.WithError(err),
				)
			}
		}
	}
}
