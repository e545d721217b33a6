package user

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/google/uuid"
)

type Handlers struct {
	uow outbound.UnitOfWork[outbound.UserRepository]
}

func NewHandlers(uow outbound.UnitOfWork[outbound.UserRepository]) *Handlers {
	return &Handlers{uow: uow}
}

// ensureEmailFree fails with a ConflictError when another user already owns email.
func ensureEmailFree(ctx context.Context, repo outbound.UserRepository, email entity.Email, owner uuid.UUID) error {
	existing, err := repo.FindByEmail(ctx, email)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		return nil
	case err != nil:
		return err
	case existing.ID() != owner:
		return apperr.Conflict("user", "a user with email "+email.String()+" already exists")
	default:
		return nil
	}
}

func (h *Handlers) Create(ctx context.Context, in CreateUser) (UserDTO, error) {
	u, err := entity.NewUser(in.Name, in.Email)
	if err != nil {
		return UserDTO{}, err
	}
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.UserRepository) error {
		if err := ensureEmailFree(ctx, repo, u.Email(), u.ID()); err != nil {
			return err
		}
		return repo.Add(ctx, u)
	})
	if err != nil {
		return UserDTO{}, err
	}
	return toDTO(u), nil
}

func (h *Handlers) Update(ctx context.Context, in UpdateUser) (UserDTO, error) {
	return h.mutate(ctx, in.ID, func(ctx context.Context, repo outbound.UserRepository, u *entity.User) error {
		if email, err := entity.NewEmail(in.Email); err == nil {
			if err := ensureEmailFree(ctx, repo, email, u.ID()); err != nil {
				return err
			}
		}
		return u.Update(in.Name, in.Email)
	})
}

func (h *Handlers) Deactivate(ctx context.Context, in DeactivateUser) (UserDTO, error) {
	return h.mutate(ctx, in.ID, func(_ context.Context, _ outbound.UserRepository, u *entity.User) error {
		return u.Deactivate()
	})
}

func (h *Handlers) Activate(ctx context.Context, in ActivateUser) (UserDTO, error) {
	return h.mutate(ctx, in.ID, func(_ context.Context, _ outbound.UserRepository, u *entity.User) error {
		return u.Activate()
	})
}

// mutate loads the user, applies change and stages the update inside one unit of work.
func (h *Handlers) mutate(
	ctx context.Context,
	rawID string,
	change func(ctx context.Context, repo outbound.UserRepository, u *entity.User) error,
) (UserDTO, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return UserDTO{}, apperr.Invalid("id", "must be a valid UUID")
	}
	var out UserDTO
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.UserRepository) error {
		u, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(ctx, repo, u); err != nil {
			return err
		}
		if err := repo.Update(ctx, u); err != nil {
			return err
		}
		out = toDTO(u)
		return nil
	})
	if err != nil {
		return UserDTO{}, err
	}
	return out, nil
}
