package database

import (
	"context"
	"sync"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
)

type memRow struct {
	revision int
	value    any
	deleted  bool
	// unique is the row's value in its table's unique index; empty for none.
	unique string
}

type memKey struct {
	table string
	id    uuid.UUID
}

type uniqueKey struct {
	table string
	value string
}

// MemoryStore is the in-process backend used when DB_DRIVER=memory and in tests.
// Transactions buffer their writes and apply them under the store lock on commit,
// re-checking every revision they were based on.
type MemoryStore struct {
	mu     sync.RWMutex
	rows   map[memKey]memRow
	unique map[uniqueKey]uuid.UUID
	outbox []events.Event

	// failCommit, when set, makes the next commit fail. Tests use it.
	failCommit error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[memKey]memRow), unique: make(map[uniqueKey]uuid.UUID)}
}

// Outbox returns a copy of every event committed to the store.
func (m *MemoryStore) Outbox() []events.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]events.Event, len(m.outbox))
	copy(out, m.outbox)
	return out
}

// FailNextCommit makes the next commit return err without applying anything.
func (m *MemoryStore) FailNextCommit(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCommit = err
}

func (m *MemoryStore) Handle() *MemoryHandle {
	return &MemoryHandle{store: m}
}

func (m *MemoryStore) Begin(ctx context.Context) (Tx[*MemoryHandle], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memoryTx{h: &MemoryHandle{
		store:  m,
		writes: make(map[memKey]memRow),
		based:  make(map[memKey]int),
	}}, nil
}

func (m *MemoryStore) AppendOutbox(_ context.Context, h *MemoryHandle, evts []events.Event) error {
	if h.writes == nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.outbox = append(m.outbox, evts...)
		return nil
	}
	h.outbox = append(h.outbox, evts...)
	return nil
}

// MemoryHandle reads through to the store and, inside a transaction, sees its own writes.
type MemoryHandle struct {
	store  *MemoryStore
	writes map[memKey]memRow
	based  map[memKey]int
	order  []memKey
	outbox []events.Event
}

func (h *MemoryHandle) inTx() bool { return h.writes != nil }

func (h *MemoryHandle) lookup(k memKey) (memRow, bool) {
	if h.inTx() {
		if r, ok := h.writes[k]; ok {
			return r, !r.deleted
		}
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	r, ok := h.store.rows[k]
	return r, ok
}

// Get returns the stored value of id in table with its revision.
func (h *MemoryHandle) Get(table string, id uuid.UUID) (any, int, bool) {
	r, ok := h.lookup(memKey{table, id})
	if !ok {
		return nil, 0, false
	}
	return r.value, r.revision, true
}

// Scan returns every live row of table, in no particular order.
func (h *MemoryHandle) Scan(table string) []memRow {
	seen := make(map[uuid.UUID]bool)
	var out []memRow
	if h.inTx() {
		for k, r := range h.writes {
			if k.table != table {
				continue
			}
			seen[k.id] = true
			if !r.deleted {
				out = append(out, r)
			}
		}
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	for k, r := range h.store.rows {
		if k.table == table && !seen[k.id] {
			out = append(out, r)
		}
	}
	return out
}

// Put writes value when the visible revision of id equals revision (zero: absent).
// A non-empty unique must not be held by another row of table once committed.
func (h *MemoryHandle) Put(table string, id uuid.UUID, revision int, value any, unique string) error {
	return h.write(memKey{table, id}, revision, memRow{revision: revision + 1, value: value, unique: unique})
}

// Delete removes id when its visible revision equals revision.
func (h *MemoryHandle) Delete(table string, id uuid.UUID, revision int) error {
	return h.write(memKey{table, id}, revision, memRow{revision: revision + 1, deleted: true})
}

func (h *MemoryHandle) write(k memKey, expected int, row memRow) error {
	current, ok := h.lookup(k)
	currentRev := 0
	if ok {
		currentRev = current.revision
	}
	if currentRev != expected {
		return apperr.Conflict(k.table, "modified concurrently")
	}
	if !h.inTx() {
		h.store.mu.Lock()
		defer h.store.mu.Unlock()
		writes := map[memKey]memRow{k: row}
		if err := h.store.checkUnique([]memKey{k}, writes); err != nil {
			return err
		}
		h.store.apply(k, row)
		return nil
	}
	if _, touched := h.based[k]; !touched {
		h.based[k] = expected
		h.order = append(h.order, k)
	}
	h.writes[k] = row
	return nil
}

// checkUnique reports a conflict when a write would take a unique value held by a row
// outside the batch, or when two writes of the batch claim the same value. Values held
// by rows the batch rewrites count as released. Callers hold m.mu.
func (m *MemoryStore) checkUnique(order []memKey, writes map[memKey]memRow) error {
	released := make(map[uniqueKey]bool)
	for _, k := range order {
		if old, ok := m.rows[k]; ok && old.unique != "" {
			released[uniqueKey{k.table, old.unique}] = true
		}
	}
	claimed := make(map[uniqueKey]uuid.UUID)
	for _, k := range order {
		row := writes[k]
		if row.deleted || row.unique == "" {
			continue
		}
		uk := uniqueKey{k.table, row.unique}
		if other, ok := claimed[uk]; ok && other != k.id {
			return apperr.Conflict(k.table, "unique value already in use")
		}
		if owner, ok := m.unique[uk]; ok && owner != k.id && !released[uk] {
			return apperr.Conflict(k.table, "unique value already in use")
		}
		claimed[uk] = k.id
	}
	return nil
}

func (m *MemoryStore) apply(k memKey, row memRow) {
	if old, ok := m.rows[k]; ok && old.unique != "" {
		uk := uniqueKey{k.table, old.unique}
		if m.unique[uk] == k.id {
			delete(m.unique, uk)
		}
	}
	if row.deleted {
		delete(m.rows, k)
		return
	}
	m.rows[k] = row
	if row.unique != "" {
		m.unique[uniqueKey{k.table, row.unique}] = k.id
	}
}

type memoryTx struct {
	h    *MemoryHandle
	done bool
}

func (t *memoryTx) Handle() *MemoryHandle { return t.h }

func (t *memoryTx) Commit() error {
	if t.done {
		return apperr.Internal("transaction already finished", nil)
	}
	t.done = true
	s := t.h.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCommit != nil {
		err := s.failCommit
		s.failCommit = nil
		return err
	}
	for _, k := range t.h.order {
		stored := 0
		if r, ok := s.rows[k]; ok {
			stored = r.revision
		}
		if stored != t.h.based[k] {
			return apperr.Conflict(k.table, "modified concurrently")
		}
	}
	if err := s.checkUnique(t.h.order, t.h.writes); err != nil {
		return err
	}
	for _, k := range t.h.order {
		s.apply(k, t.h.writes[k])
	}
	s.outbox = append(s.outbox, t.h.outbox...)
	return nil
}

func (t *memoryTx) Rollback() error {
	t.done = true
	return nil
}
