package product

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

// Get returns nil when the product does not exist.
func (h *Handlers) Get(ctx context.Context, in GetProduct) (*ProductDTO, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, apperr.Invalid("id", "must be a valid UUID")
	}
	p, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(p)
	return &dto, nil
}

func (h *Handlers) List(ctx context.Context, in ListProducts) (pagination.Page[ProductDTO], error) {
	page, err := h.uow.Scope().Repositories().List(ctx,
		outbound.ProductFilter{
			AvailableOnly: in.AvailableOnly,
			MinPrice:      in.MinPrice,
			MaxPrice:      in.MaxPrice,
			Name:          in.Name,
		},
		pagination.Request{PageNumber: in.PageNumber, PageSize: in.PageSize},
	)
	if err != nil {
		return pagination.Page[ProductDTO]{}, err
	}
	return pagination.Map(page, toDTO), nil
}

// CheckAvailability reports an unknown product as unavailable with no stock.
func (h *Handlers) CheckAvailability(ctx context.Context, in CheckAvailability) (AvailabilityDTO, error) {
	id, err := uuid.Parse(in.ProductID)
	if err != nil {
		return AvailabilityDTO{}, apperr.Invalid("product_id", "must be a valid UUID")
	}
	out := AvailabilityDTO{ProductID: in.ProductID}
	p, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return out, nil
	}
	if err != nil {
		return AvailabilityDTO{}, err
	}
	out.IsAvailable = p.IsAvailable(in.Quantity)
	out.AvailableQuantity = p.StockQuantity()
	return out, nil
}

// ReserveStock validates a reservation without touching stock.
func (h *Handlers) ReserveStock(ctx context.Context, in ReserveStock) (ReservationResult, error) {
	id, err := uuid.Parse(in.ProductID)
	if err != nil {
		return ReservationResult{Message: MessageInvalidID}, nil
	}
	if in.Quantity <= 0 {
		return ReservationResult{Message: MessageInvalidQuantity}, nil
	}
	p, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		return ReservationResult{Message: MessageNotFound}, nil
	case err != nil:
		return ReservationResult{}, err
	case !p.IsActive():
		return ReservationResult{Message: MessageNotAvailable}, nil
	case p.StockQuantity() < in.Quantity:
		return ReservationResult{Message: fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", p.StockQuantity(), in.Quantity)}, nil
	}
	return ReservationResult{
		Success: true,
		Message: "Stock reserved successfully for reservation " + in.ReservationID,
	}, nil
}
