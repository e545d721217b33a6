package user

import (
	"reflect"

	"github.com/DioGolang/GoSlices/pkg/mediator"
)

// Input

type CreateUser struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUser struct {
	ID    string `json:"id" validate:"required,uuid"`
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

type DeactivateUser struct {
	ID string `json:"id" validate:"required,uuid"`
}

type ActivateUser struct {
	ID string `json:"id" validate:"required,uuid"`
}

type GetUser struct {
	ID string `json:"id" validate:"required,uuid"`
}

type GetUserByEmail struct {
	Email string `json:"email" validate:"required,email"`
}

type ListUsers struct {
	ActiveOnly bool `json:"active_only"`
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
}

// ValidateUser carries no rules: a malformed id is an answer, not an error.
type ValidateUser struct {
	UserID string `json:"user_id"`
}

// Requests lists every request this slice handles, for mediator.Registry.Build.
func Requests() []reflect.Type {
	return []reflect.Type{
		mediator.Expect[CreateUser](),
		mediator.Expect[UpdateUser](),
		mediator.Expect[DeactivateUser](),
		mediator.Expect[ActivateUser](),
		mediator.Expect[GetUser](),
		mediator.Expect[GetUserByEmail](),
		mediator.Expect[ListUsers](),
		mediator.Expect[ValidateUser](),
	}
}
