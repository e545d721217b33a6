package outbound

import "context"

// UnitOfWork opens scopes over the repository set R of one slice.
// Do runs fn inside a transaction: begin, fn, save changes, commit. Any error rolls back
// and leaves the drained domain events on their aggregates.
type UnitOfWork[R any] interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos R) error) error
	Scope() Scope[R]
}

// Scope is one business operation. It is not safe for concurrent use.
//
// Without Begin, SaveChanges runs in its own transaction. After Begin, SaveChanges writes
// into the open transaction and events are published only once Commit succeeds.
type Scope[R any] interface {
	Repositories() R
	Begin(ctx context.Context) error
	SaveChanges(ctx context.Context) (int, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
