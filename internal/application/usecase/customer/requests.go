package customer

import (
	"reflect"

	"github.com/DioGolang/GoSlices/pkg/mediator"
)

type CreateCustomer struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

type UpdateCustomer struct {
	ID          string  `json:"id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

type DeactivateCustomer struct {
	ID string `json:"id" validate:"required,uuid"`
}

type ActivateCustomer struct {
	ID string `json:"id" validate:"required,uuid"`
}

type GetCustomer struct {
	ID string `json:"id" validate:"required,uuid"`
}

type ListCustomers struct {
	ActiveOnly bool `json:"active_only"`
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
}

type ValidateCustomer struct {
	CustomerID string `json:"customer_id"`
}

func Requests() []reflect.Type {
	return []reflect.Type{
		mediator.Expect[CreateCustomer](),
		mediator.Expect[UpdateCustomer](),
		mediator.Expect[DeactivateCustomer](),
		mediator.Expect[ActivateCustomer](),
		mediator.Expect[GetCustomer](),
		mediator.Expect[ListCustomers](),
		mediator.Expect[ValidateCustomer](),
	}
}
