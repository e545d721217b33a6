package database

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

const (
	tableUsers      = "users"
	tableProducts   = "products"
	tableCustomers  = "customers"
	tableEstruturas = "estruturas"
)

type record interface {
	entity.Aggregate
	CreatedAt() time.Time
}

// memTable maps one aggregate type onto a table of the memory store.
type memTable[S any, A record] struct {
	session *Session[*MemoryHandle]
	table   string
	entity  string
	state   func(A) S
	restore func(S, int) A
	// unique, when set, keys the table's unique index.
	unique func(A) string
}

func (t memTable[S, A]) find(ctx context.Context, id uuid.UUID) (A, error) {
	var zero A
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	v, revision, ok := t.session.Handle().Get(t.table, id)
	if !ok {
		return zero, apperr.NotFound(t.entity, id.String())
	}
	return t.restore(v.(S), revision), nil
}

// filter returns the matching aggregates oldest first.
func (t memTable[S, A]) filter(ctx context.Context, match func(A) bool) ([]A, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []A
	for _, row := range t.session.Handle().Scan(t.table) {
		a := t.restore(row.value.(S), row.revision)
		if match(a) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b A) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func (t memTable[S, A]) page(ctx context.Context, match func(A) bool, req pagination.Request) (pagination.Page[A], error) {
	all, err := t.filter(ctx, match)
	if err != nil {
		return pagination.Page[A]{}, err
	}
	return pagination.Slice(all, req), nil
}

func (t memTable[S, A]) put(a A) error {
	t.session.Stage(a, func(_ context.Context, h *MemoryHandle, revision int) error {
		var unique string
		if t.unique != nil {
			unique = t.unique(a)
		}
		return h.Put(t.table, a.ID(), revision, t.state(a), unique)
	})
	return nil
}

func (t memTable[S, A]) delete(a A) error {
	t.session.Stage(a, func(_ context.Context, h *MemoryHandle, revision int) error {
		return h.Delete(t.table, a.ID(), revision)
	})
	return nil
}

type MemoryUserRepository struct {
	t memTable[entity.UserState, *entity.User]
}

func NewMemoryUserRepository(s *Session[*MemoryHandle]) *MemoryUserRepository {
	return &MemoryUserRepository{t: memTable[entity.UserState, *entity.User]{
		session: s, table: tableUsers, entity: "user",
		state: (*entity.User).State, restore: func(st entity.UserState, revision int) *entity.User {
			st.Revision = revision
			return entity.RestoreUser(st)
		},
		unique: func(u *entity.User) string { return u.Email().String() },
	}}
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.t.find(ctx, id)
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	found, err := r.t.filter(ctx, func(u *entity.User) bool { return u.Email().Equals(email) })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperr.NotFound("user", email.String())
	}
	return found[0], nil
}

func (r *MemoryUserRepository) List(ctx context.Context, f outbound.UserFilter, req pagination.Request) (pagination.Page[*entity.User], error) {
	return r.t.page(ctx, func(u *entity.User) bool { return !f.ActiveOnly || u.IsActive() }, req)
}

func (r *MemoryUserRepository) Add(_ context.Context, u *entity.User) error    { return r.t.put(u) }
func (r *MemoryUserRepository) Update(_ context.Context, u *entity.User) error { return r.t.put(u) }

type MemoryProductRepository struct {
	t memTable[entity.ProductState, *entity.Product]
}

func NewMemoryProductRepository(s *Session[*MemoryHandle]) *MemoryProductRepository {
	return &MemoryProductRepository{t: memTable[entity.ProductState, *entity.Product]{
		session: s, table: tableProducts, entity: "product",
		state: (*entity.Product).State, restore: func(st entity.ProductState, revision int) *entity.Product {
			st.Revision = revision
			return entity.RestoreProduct(st)
		},
	}}
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.t.find(ctx, id)
}

func (r *MemoryProductRepository) List(ctx context.Context, f outbound.ProductFilter, req pagination.Request) (pagination.Page[*entity.Product], error) {
	return r.t.page(ctx, f.Matches, req)
}

func (r *MemoryProductRepository) Add(_ context.Context, p *entity.Product) error { return r.t.put(p) }
func (r *MemoryProductRepository) Update(_ context.Context, p *entity.Product) error {
	return r.t.put(p)
}

type MemoryCustomerRepository struct {
	t memTable[entity.CustomerState, *entity.Customer]
}

func NewMemoryCustomerRepository(s *Session[*MemoryHandle]) *MemoryCustomerRepository {
	return &MemoryCustomerRepository{t: memTable[entity.CustomerState, *entity.Customer]{
		session: s, table: tableCustomers, entity: "customer",
		state: (*entity.Customer).State, restore: func(st entity.CustomerState, revision int) *entity.Customer {
			st.Revision = revision
			return entity.RestoreCustomer(st)
		},
		unique: func(c *entity.Customer) string { return c.Email().String() },
	}}
}

func (r *MemoryCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.t.find(ctx, id)
}

func (r *MemoryCustomerRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.Customer, error) {
	found, err := r.t.filter(ctx, func(c *entity.Customer) bool { return c.Email().Equals(email) })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperr.NotFound("customer", email.String())
	}
	return found[0], nil
}

func (r *MemoryCustomerRepository) List(ctx context.Context, f outbound.CustomerFilter, req pagination.Request) (pagination.Page[*entity.Customer], error) {
	return r.t.page(ctx, func(c *entity.Customer) bool { return !f.ActiveOnly || c.IsActive() }, req)
}

func (r *MemoryCustomerRepository) Add(_ context.Context, c *entity.Customer) error {
	return r.t.put(c)
}
func (r *MemoryCustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	return r.t.put(c)
}

type MemoryEstruturaRepository struct {
	t memTable[entity.EstruturaState, *entity.Estrutura]
}

func NewMemoryEstruturaRepository(s *Session[*MemoryHandle]) *MemoryEstruturaRepository {
	return &MemoryEstruturaRepository{t: memTable[entity.EstruturaState, *entity.Estrutura]{
		session: s, table: tableEstruturas, entity: "estrutura",
		state: (*entity.Estrutura).State, restore: func(st entity.EstruturaState, revision int) *entity.Estrutura {
			st.Revision = revision
			return entity.RestoreEstrutura(st)
		},
	}}
}

func (r *MemoryEstruturaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Estrutura, error) {
	return r.t.find(ctx, id)
}

func (r *MemoryEstruturaRepository) List(ctx context.Context, f outbound.EstruturaFilter, req pagination.Request) (pagination.Page[*entity.Estrutura], error) {
	return r.t.page(ctx, func(e *entity.Estrutura) bool { return f.Status == nil || e.Status() == *f.Status }, req)
}

func (r *MemoryEstruturaRepository) Add(_ context.Context, e *entity.Estrutura) error {
	return r.t.put(e)
}
func (r *MemoryEstruturaRepository) Update(_ context.Context, e *entity.Estrutura) error {
	return r.t.put(e)
}
func (r *MemoryEstruturaRepository) Delete(_ context.Context, e *entity.Estrutura) error {
	return r.t.delete(e)
}

var (
	_ outbound.UserRepository      = (*MemoryUserRepository)(nil)
	_ outbound.ProductRepository   = (*MemoryProductRepository)(nil)
	_ outbound.CustomerRepository  = (*MemoryCustomerRepository)(nil)
	_ outbound.EstruturaRepository = (*MemoryEstruturaRepository)(nil)
)
