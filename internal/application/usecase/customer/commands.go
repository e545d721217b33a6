package customer

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/google/uuid"
)

type Handlers struct {
	uow outbound.UnitOfWork[outbound.CustomerRepository]
}

func NewHandlers(uow outbound.UnitOfWork[outbound.CustomerRepository]) *Handlers {
	return &Handlers{uow: uow}
}

func emailTaken(ctx context.Context, repo outbound.CustomerRepository, email entity.Email, owner uuid.UUID) error {
	existing, err := repo.FindByEmail(ctx, email)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID() != owner {
		return apperr.Conflict("customer", "a customer with email "+email.String()+" already exists")
	}
	return nil
}

func (h *Handlers) Create(ctx context.Context, in CreateCustomer) (CustomerDTO, error) {
	c, err := entity.NewCustomer(in.Name, in.Email, in.PhoneNumber)
	if err != nil {
		return CustomerDTO{}, err
	}
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.CustomerRepository) error {
		if err := emailTaken(ctx, repo, c.Email(), c.ID()); err != nil {
			return err
		}
		return repo.Add(ctx, c)
	})
	if err != nil {
		return CustomerDTO{}, err
	}
	return toDTO(c), nil
}

func (h *Handlers) Update(ctx context.Context, in UpdateCustomer) (CustomerDTO, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return CustomerDTO{}, apperr.Invalid("id", "must be a valid UUID")
	}
	var out CustomerDTO
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.CustomerRepository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if email, err := entity.NewEmail(in.Email); err == nil {
			if err := emailTaken(ctx, repo, email, c.ID()); err != nil {
				return err
			}
		}
		if err := c.Update(in.Name, in.Email, in.PhoneNumber); err != nil {
			return err
		}
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		out = toDTO(c)
		return nil
	})
	return out, err
}

func (h *Handlers) Deactivate(ctx context.Context, in DeactivateCustomer) (CustomerDTO, error) {
	return h.transition(ctx, in.ID, (*entity.Customer).Deactivate)
}

func (h *Handlers) Activate(ctx context.Context, in ActivateCustomer) (CustomerDTO, error) {
	return h.transition(ctx, in.ID, (*entity.Customer).Activate)
}

func (h *Handlers) transition(ctx context.Context, rawID string, change func(*entity.Customer) error) (CustomerDTO, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return CustomerDTO{}, apperr.Invalid("id", "must be a valid UUID")
	}
	var out CustomerDTO
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.CustomerRepository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(c); err != nil {
			return err
		}
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		out = toDTO(c)
		return nil
	})
	return out, err
}
