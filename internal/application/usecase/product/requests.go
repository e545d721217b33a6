package product

import (
	"reflect"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/mediator"
)

type CreateProduct struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description" validate:"max=500"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
}

// CreateProductWithUserValidation creates a product on behalf of a user, who must exist
// and be active in the Users slice.
type CreateProductWithUserValidation struct {
	CreateProduct
	CreatedByUserID string `json:"created_by_user_id" validate:"required,uuid"`
}

type UpdateProduct struct {
	ID          string `json:"id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateProductStock struct {
	ID       string `json:"id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type UpdateProductPrice struct {
	ID       string  `json:"id" validate:"required,uuid"`
	Price    float64 `json:"price" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

type DeactivateProduct struct {
	ID string `json:"id" validate:"required,uuid"`
}

type GetProduct struct {
	ID string `json:"id" validate:"required,uuid"`
}

type ListProducts struct {
	AvailableOnly bool     `json:"available_only"`
	MinPrice      *float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice      *float64 `json:"max_price" validate:"omitempty,gte=0"`
	Name          string   `json:"name" validate:"max=200"`
	PageNumber    int      `json:"page_number"`
	PageSize      int      `json:"page_size"`
}

func (l ListProducts) Validate() []apperr.Violation {
	if l.MinPrice != nil && l.MaxPrice != nil && *l.MinPrice > *l.MaxPrice {
		return []apperr.Violation{{Field: "max_price", Message: "must be greater than or equal to min_price"}}
	}
	return nil
}

type CheckAvailability struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// ReserveStock only checks that the quantity could be reserved. Stock is never decremented;
// callers must not assume state changed. Bad input is reported in the result message.
type ReserveStock struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	ReservationID string `json:"reservation_id"`
}

func Requests() []reflect.Type {
	return []reflect.Type{
		mediator.Expect[CreateProduct](),
		mediator.Expect[CreateProductWithUserValidation](),
		mediator.Expect[UpdateProduct](),
		mediator.Expect[UpdateProductStock](),
		mediator.Expect[UpdateProductPrice](),
		mediator.Expect[DeactivateProduct](),
		mediator.Expect[GetProduct](),
		mediator.Expect[ListProducts](),
		mediator.Expect[CheckAvailability](),
		mediator.Expect[ReserveStock](),
	}
}
