package estrutura

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/google/uuid"
)

type Handlers struct {
	uow outbound.UnitOfWork[outbound.EstruturaRepository]
}

func NewHandlers(uow outbound.UnitOfWork[outbound.EstruturaRepository]) *Handlers {
	return &Handlers{uow: uow}
}

func (h *Handlers) Create(ctx context.Context, in CreateEstrutura) (EstruturaDTO, error) {
	e, err := entity.NewEstrutura(in.data())
	if err != nil {
		return EstruturaDTO{}, err
	}
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.EstruturaRepository) error {
		return repo.Add(ctx, e)
	})
	if err != nil {
		return EstruturaDTO{}, err
	}
	return toDTO(e), nil
}

func (h *Handlers) Update(ctx context.Context, in UpdateEstrutura) (EstruturaDTO, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return EstruturaDTO{}, apperr.Invalid("id", "must be a valid UUID")
	}
	var out EstruturaDTO
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.EstruturaRepository) error {
		e, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := e.Update(in.data()); err != nil {
			return err
		}
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		out = toDTO(e)
		return nil
	})
	if err != nil {
		return EstruturaDTO{}, err
	}
	return out, nil
}

// Delete removes the estrutura and reports whether it existed.
func (h *Handlers) Delete(ctx context.Context, in DeleteEstrutura) (bool, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return false, apperr.Invalid("id", "must be a valid UUID")
	}
	err = h.uow.Do(ctx, func(ctx context.Context, repo outbound.EstruturaRepository) error {
		e, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := e.MarkDeleted(); err != nil {
			return err
		}
		return repo.Delete(ctx, e)
	})
	if apperr.KindOf(err) == apperr.KindNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
