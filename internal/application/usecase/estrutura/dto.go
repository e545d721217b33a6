package estrutura

import (
	"time"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
)

type EstruturaDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	TypeCode     int64      `json:"type_code"`
	ExternalCode string     `json:"external_code"`
	ValidFrom    time.Time  `json:"valid_from"`
	ValidUntil   time.Time  `json:"valid_until"`
	Version      int        `json:"version"`
	Status       int        `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toDTO(e *entity.Estrutura) EstruturaDTO {
	return EstruturaDTO{
		ID:           e.ID().String(),
		Name:         e.Name(),
		Description:  e.Description(),
		TypeCode:     e.TypeCode(),
		ExternalCode: e.ExternalCode(),
		ValidFrom:    e.ValidFrom(),
		ValidUntil:   e.ValidUntil(),
		Version:      e.Version(),
		Status:       int(e.Status()),
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}
