package entity

import "github.com/DioGolang/GoSlices/pkg/events"

const (
	EventUserCreated     = "user.created"
	EventUserUpdated     = "user.updated"
	EventUserDeactivated = "user.deactivated"
	EventUserActivated   = "user.activated"

	EventProductCreated      = "product.created"
	EventProductUpdated      = "product.updated"
	EventProductStockChanged = "product.stock_changed"
	EventProductPriceChanged = "product.price_changed"
	EventProductDeactivated  = "product.deactivated"

	EventCustomerCreated     = "customer.created"
	EventCustomerUpdated     = "customer.updated"
	EventCustomerDeactivated = "customer.deactivated"
	EventCustomerActivated   = "customer.activated"

	EventEstruturaCreated = "estrutura.created"
	EventEstruturaUpdated = "estrutura.updated"
	EventEstruturaDeleted = "estrutura.deleted"
)

type UserCreated struct {
	events.Header
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type UserUpdated struct {
	events.Header
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type UserDeactivated struct {
	events.Header
	UserID string `json:"user_id"`
}

type UserActivated struct {
	events.Header
	UserID string `json:"user_id"`
}

type ProductCreated struct {
	events.Header
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Stock     int     `json:"stock"`
	CreatedBy string  `json:"created_by,omitempty"`
}

type ProductUpdated struct {
	events.Header
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProductStockChanged struct {
	events.Header
	ProductID     string `json:"product_id"`
	PreviousStock int    `json:"previous_stock"`
	NewStock      int    `json:"new_stock"`
}

type ProductPriceChanged struct {
	events.Header
	ProductID     string  `json:"product_id"`
	PreviousPrice float64 `json:"previous_price"`
	NewPrice      float64 `json:"new_price"`
	Currency      string  `json:"currency"`
}

type ProductDeactivated struct {
	events.Header
	ProductID string `json:"product_id"`
}

type CustomerCreated struct {
	events.Header
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type CustomerUpdated struct {
	events.Header
	CustomerID  string  `json:"customer_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type CustomerDeactivated struct {
	events.Header
	CustomerID string `json:"customer_id"`
}

type CustomerActivated struct {
	events.Header
	CustomerID string `json:"customer_id"`
}

type EstruturaCreated struct {
	events.Header
	EstruturaID string          `json:"estrutura_id"`
	Name        string          `json:"name"`
	TypeCode    int64           `json:"type_code"`
	Status      EstruturaStatus `json:"status"`
}

type EstruturaUpdated struct {
	events.Header
	EstruturaID string          `json:"estrutura_id"`
	Name        string          `json:"name"`
	Version     int             `json:"version"`
	Status      EstruturaStatus `json:"status"`
}

type EstruturaDeleted struct {
	events.Header
	EstruturaID string `json:"estrutura_id"`
}
