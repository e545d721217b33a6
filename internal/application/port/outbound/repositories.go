package outbound

import (
	"context"
	"strings"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

// Repositories load aggregates by identity and stage writes on the surrounding scope.
// Find* returns an apperr NotFound error when nothing matches; Add, Update and Delete
// only take effect on SaveChanges.

type UserFilter struct {
	ActiveOnly bool
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
	List(ctx context.Context, filter UserFilter, page pagination.Request) (pagination.Page[*entity.User], error)
	Add(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
}

type ProductFilter struct {
	AvailableOnly bool
	MinPrice      *float64
	MaxPrice      *float64
	Name          string
}

// Matches is the reference semantics of the filter; SQL implementations mirror it.
func (f ProductFilter) Matches(p *entity.Product) bool {
	if f.AvailableOnly && !(p.IsActive() && p.StockQuantity() > 0) {
		return false
	}
	if f.MinPrice != nil && p.Price().Amount() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price().Amount() > *f.MaxPrice {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Name()), strings.ToLower(f.Name)) {
		return false
	}
	return true
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, page pagination.Request) (pagination.Page[*entity.Product], error)
	Add(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
}

type CustomerFilter struct {
	ActiveOnly bool
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email entity.Email) (*entity.Customer, error)
	List(ctx context.Context, filter CustomerFilter, page pagination.Request) (pagination.Page[*entity.Customer], error)
	Add(ctx context.Context, c *entity.Customer) error
	Update(ctx context.Context, c *entity.Customer) error
}

type EstruturaFilter struct {
	Status *entity.EstruturaStatus
}

type EstruturaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Estrutura, error)
	List(ctx context.Context, filter EstruturaFilter, page pagination.Request) (pagination.Page[*entity.Estrutura], error)
	Add(ctx context.Context, e *entity.Estrutura) error
	Update(ctx context.Context, e *entity.Estrutura) error
	Delete(ctx context.Context, e *entity.Estrutura) error
}
