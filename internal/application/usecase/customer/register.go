package customer

import (
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
)

func Register(reg *mediator.Registry, h *Handlers) {
	mediator.Register(reg, mediator.HandlerFunc[CreateCustomer, CustomerDTO](h.Create))
	mediator.Register(reg, mediator.HandlerFunc[UpdateCustomer, CustomerDTO](h.Update))
	mediator.Register(reg, mediator.HandlerFunc[DeactivateCustomer, CustomerDTO](h.Deactivate))
	mediator.Register(reg, mediator.HandlerFunc[ActivateCustomer, CustomerDTO](h.Activate))
	mediator.Register(reg, mediator.HandlerFunc[GetCustomer, *CustomerDTO](h.Get))
	mediator.Register(reg, mediator.HandlerFunc[ListCustomers, pagination.Page[CustomerDTO]](h.List))
	mediator.Register(reg, mediator.HandlerFunc[ValidateCustomer, ValidationResult](h.Validate))
}
