package customer

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

// Get returns nil when the customer does not exist.
func (h *Handlers) Get(ctx context.Context, in GetCustomer) (*CustomerDTO, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, apperr.Invalid("id", "must be a valid UUID")
	}
	c, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

func (h *Handlers) List(ctx context.Context, in ListCustomers) (pagination.Page[CustomerDTO], error) {
	page, err := h.uow.Scope().Repositories().List(ctx,
		outbound.CustomerFilter{ActiveOnly: in.ActiveOnly},
		pagination.Request{PageNumber: in.PageNumber, PageSize: in.PageSize},
	)
	if err != nil {
		return pagination.Page[CustomerDTO]{}, err
	}
	return pagination.Map(page, toDTO), nil
}

func (h *Handlers) Validate(ctx context.Context, in ValidateCustomer) (ValidationResult, error) {
	id, err := uuid.Parse(in.CustomerID)
	if err != nil {
		return ValidationResult{Reason: ReasonInvalidID}, nil
	}
	c, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		return ValidationResult{Reason: ReasonNotFound}, nil
	case err != nil:
		return ValidationResult{}, err
	case !c.IsActive():
		return ValidationResult{Reason: ReasonInactive}, nil
	}
	return ValidationResult{IsValid: true}, nil
}
