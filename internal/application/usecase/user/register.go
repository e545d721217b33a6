package user

import (
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
)

func Register(reg *mediator.Registry, h *Handlers) {
	mediator.Register(reg, mediator.HandlerFunc[CreateUser, UserDTO](h.Create))
	mediator.Register(reg, mediator.HandlerFunc[UpdateUser, UserDTO](h.Update))
	mediator.Register(reg, mediator.HandlerFunc[DeactivateUser, UserDTO](h.Deactivate))
	mediator.Register(reg, mediator.HandlerFunc[ActivateUser, UserDTO](h.Activate))
	mediator.Register(reg, mediator.HandlerFunc[GetUser, *UserDTO](h.Get))
	mediator.Register(reg, mediator.HandlerFunc[GetUserByEmail, *UserDTO](h.GetByEmail))
	mediator.Register(reg, mediator.HandlerFunc[ListUsers, pagination.Page[UserDTO]](h.List))
	mediator.Register(reg, mediator.HandlerFunc[ValidateUser, ValidationResult](h.Validate))
}
