package product

import (
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
)

func Register(reg *mediator.Registry, h *Handlers) {
	mediator.Register(reg, mediator.HandlerFunc[CreateProduct, ProductDTO](h.Create))
	mediator.Register(reg, mediator.HandlerFunc[CreateProductWithUserValidation, ProductDTO](h.CreateWithUserValidation))
	mediator.Register(reg, mediator.HandlerFunc[UpdateProduct, ProductDTO](h.Update))
	mediator.Register(reg, mediator.HandlerFunc[UpdateProductStock, ProductDTO](h.UpdateStock))
	mediator.Register(reg, mediator.HandlerFunc[UpdateProductPrice, ProductDTO](h.UpdatePrice))
	mediator.Register(reg, mediator.HandlerFunc[DeactivateProduct, ProductDTO](h.Deactivate))
	mediator.Register(reg, mediator.HandlerFunc[GetProduct, *ProductDTO](h.Get))
	mediator.Register(reg, mediator.HandlerFunc[ListProducts, pagination.Page[ProductDTO]](h.List))
	mediator.Register(reg, mediator.HandlerFunc[CheckAvailability, AvailabilityDTO](h.CheckAvailability))
	mediator.Register(reg, mediator.HandlerFunc[ReserveStock, ReservationResult](h.ReserveStock))
}
