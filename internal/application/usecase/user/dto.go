package user

import (
	"time"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
)

type UserDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// ValidationResult answers ValidateUser. Reason is empty when IsValid.
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}

const (
	ReasonInvalidID = "Invalid user ID format"
	ReasonNotFound  = "User not found"
	ReasonInactive  = "User is not active"
)
