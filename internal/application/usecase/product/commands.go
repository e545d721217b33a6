package product

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/google/uuid"
)

type Handlers struct {
	uow   outbound.UnitOfWork[outbound.ProductRepository]
	users outbound.UserDirectory
}

func NewHandlers(uow outbound.UnitOfWork[outbound.ProductRepository], users outbound.UserDirectory) *Handlers {
	return &Handlers{uow: uow, users: users}
}

func (h *Handlers) Create(ctx context.Context, in CreateProduct) (ProductDTO, error) {
	return h.create(ctx, in, nil)
}

// CreateWithUserValidation asks the Users slice about the creator before anything is written.
func (h *Handlers) CreateWithUserValidation(ctx context.Context, in CreateProductWithUserValidation) (ProductDTO, error) {
	check, err := h.users.ValidateUser(ctx, in.CreatedByUserID)
	if err != nil {
		return ProductDTO{}, err
	}
	if !check.IsValid {
		return ProductDTO{}, apperr.Invalid("created_by_user_id", check.Reason)
	}
	creator, err := uuid.Parse(in.CreatedByUserID)
	if err != nil {
		return ProductDTO{}, apperr.Invalid("created_by_user_id", "must be a valid UUID")
	}
	return h.create(ctx, in.CreateProduct, &creator)
}

func (h *Handlers) create(ctx context.Context, in CreateProduct, createdBy *uuid.UUID) (ProductDTO, error) {
	p, err := entity.NewProduct(in.Name, in.Description, in.Price, in.Currency, in.StockQuantity, createdBy)
	if err != nil {
		return ProductDTO{}, err
	}
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.ProductRepository) error {
		return repo.Add(ctx, p)
	})
	if err != nil {
		return ProductDTO{}, err
	}
	return toDTO(p), nil
}

func (h *Handlers) Update(ctx context.Context, in UpdateProduct) (ProductDTO, error) {
	return h.mutate(ctx, in.ID, func(p *entity.Product) error {
		return p.UpdateDetails(in.Name, in.Description)
	})
}

func (h *Handlers) UpdateStock(ctx context.Context, in UpdateProductStock) (ProductDTO, error) {
	return h.mutate(ctx, in.ID, func(p *entity.Product) error {
		return p.UpdateStock(in.Quantity)
	})
}

func (h *Handlers) UpdatePrice(ctx context.Context, in UpdateProductPrice) (ProductDTO, error) {
	return h.mutate(ctx, in.ID, func(p *entity.Product) error {
		return p.UpdatePrice(in.Price, in.Currency)
	})
}

func (h *Handlers) Deactivate(ctx context.Context, in DeactivateProduct) (ProductDTO, error) {
	return h.mutate(ctx, in.ID, (*entity.Product).Deactivate)
}

func (h *Handlers) mutate(ctx context.Context, rawID string, change func(p *entity.Product) error) (ProductDTO, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ProductDTO{}, apperr.Invalid("id", "must be a valid UUID")
	}
	var out ProductDTO
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.ProductRepository) error {
		p, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(p); err != nil {
			return err
		}
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		out = toDTO(p)
		return nil
	})
	if err != nil {
		return ProductDTO{}, err
	}
	return out, nil
}
