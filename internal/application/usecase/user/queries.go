package user

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

// Get returns nil when the user does not exist.
func (h *Handlers) Get(ctx context.Context, in GetUser) (*UserDTO, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, apperr.Invalid("id", "must be a valid UUID")
	}
	return absentAsNil(h.uow.Scope().Repositories().FindByID(ctx, id))
}

func (h *Handlers) GetByEmail(ctx context.Context, in GetUserByEmail) (*UserDTO, error) {
	email, err := entity.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	return absentAsNil(h.uow.Scope().Repositories().FindByEmail(ctx, email))
}

func absentAsNil(u *entity.User, err error) (*UserDTO, error) {
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(u)
	return &dto, nil
}

func (h *Handlers) List(ctx context.Context, in ListUsers) (pagination.Page[UserDTO], error) {
	page, err := h.uow.Scope().Repositories().List(ctx,
		outbound.UserFilter{ActiveOnly: in.ActiveOnly},
		pagination.Request{PageNumber: in.PageNumber, PageSize: in.PageSize},
	)
	if err != nil {
		return pagination.Page[UserDTO]{}, err
	}
	return pagination.Map(page, toDTO), nil
}

// Validate tells other slices whether a user may be referenced. Malformed ids, unknown
// users and inactive users are answers, each with its own reason.
func (h *Handlers) Validate(ctx context.Context, in ValidateUser) (ValidationResult, error) {
	id, err := uuid.Parse(in.UserID)
	if err != nil {
		return ValidationResult{Reason: ReasonInvalidID}, nil
	}
	u, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		return ValidationResult{Reason: ReasonNotFound}, nil
	case err != nil:
		return ValidationResult{}, err
	case !u.IsActive():
		return ValidationResult{Reason: ReasonInactive}, nil
	default:
		return ValidationResult{IsValid: true}, nil
	}
}
