package customer

import (
	"time"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
)

type CustomerDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toDTO(c *entity.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Email:       c.Email().String(),
		PhoneNumber: c.PhoneNumber(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}

const (
	ReasonInvalidID = "Invalid customer ID format"
	ReasonNotFound  = "Customer not found"
	ReasonInactive  = "Customer is not active"
)
