package estrutura

import (
	"reflect"
	"time"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/mediator"
)

// Fields is the body shared by CreateEstrutura and UpdateEstrutura.
type Fields struct {
	Name         string    `json:"name" validate:"required,max=200"`
	Description  *string   `json:"description" validate:"omitempty,max=500"`
	TypeCode     int64     `json:"type_code" validate:"ne=0"`
	ExternalCode string    `json:"external_code" validate:"max=100"`
	ValidFrom    time.Time `json:"valid_from" validate:"required"`
	ValidUntil   time.Time `json:"valid_until" validate:"required,gtfield=ValidFrom"`
	Status       int       `json:"status" validate:"oneof=1 2"`
}

func (f Fields) data() entity.EstruturaData {
	return entity.EstruturaData{
		Name:         f.Name,
		Description:  f.Description,
		TypeCode:     f.TypeCode,
		ExternalCode: f.ExternalCode,
		ValidFrom:    f.ValidFrom.UTC(),
		ValidUntil:   f.ValidUntil.UTC(),
		Status:       entity.EstruturaStatus(f.Status),
	}
}

type CreateEstrutura struct {
	Fields
}

type UpdateEstrutura struct {
	ID string `json:"id" validate:"required,uuid"`
	Fields
}

// DeleteEstrutura answers false when there was nothing to delete.
type DeleteEstrutura struct {
	ID string `json:"id" validate:"required,uuid"`
}

type GetEstrutura struct {
	ID string `json:"id" validate:"required,uuid"`
}

type ListEstruturas struct {
	Status     *int `json:"status" validate:"omitempty,oneof=1 2"`
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
}

func Requests() []reflect.Type {
	return []reflect.Type{
		mediator.Expect[CreateEstrutura](),
		mediator.Expect[UpdateEstrutura](),
		mediator.Expect[DeleteEstrutura](),
		mediator.Expect[GetEstrutura](),
		mediator.Expect[ListEstruturas](),
	}
}
