package product

import (
	"time"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
)

type ProductDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Currency      string     `json:"currency"`
	StockQuantity int        `json:"stock_quantity"`
	IsActive      bool       `json:"is_active"`
	CreatedBy     *string    `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func toDTO(p *entity.Product) ProductDTO {
	dto := ProductDTO{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price().Amount(),
		Currency:      p.Price().Currency(),
		StockQuantity: p.StockQuantity(),
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
	if by := p.CreatedBy(); by != nil {
		s := by.String()
		dto.CreatedBy = &s
	}
	return dto
}

type AvailabilityDTO struct {
	ProductID         string `json:"product_id"`
	IsAvailable       bool   `json:"is_available"`
	AvailableQuantity int    `json:"available_quantity"`
}

// ReservationResult answers ReserveStock. A successful reservation does not change stock.
type ReservationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	MessageInvalidID       = "Invalid product ID format"
	MessageInvalidQuantity = "Quantity must be greater than 0"
	MessageNotFound        = "Product not found"
	MessageNotAvailable    = "Product is not available"
)
