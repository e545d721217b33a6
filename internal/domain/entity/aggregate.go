package entity

import (
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
)

// Aggregate is the capability every aggregate root offers to repositories and the
// unit of work: identity, a persisted revision and its pending events.
type Aggregate interface {
	events.Source
	ID() uuid.UUID
	Revision() int
	MarkPersisted(revision int)
}

// Root holds what every aggregate shares. Aggregates embed it.
type Root struct {
	events.Recorder
	id       uuid.UUID
	revision int
}

func newRoot(id uuid.UUID, revision int) Root {
	return Root{id: id, revision: revision}
}

func (r *Root) ID() uuid.UUID { return r.id }

// Revision is the optimistic-concurrency token of the last persisted state. Zero
// means never persisted.
func (r *Root) Revision() int { return r.revision }

func (r *Root) MarkPersisted(revision int) { r.revision = revision }
