package estrutura

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

func (h *Handlers) Get(ctx context.Context, in GetEstrutura) (*EstruturaDTO, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, apperr.Invalid("id", "must be a valid UUID")
	}
	e, err := h.uow.Scope().Repositories().FindByID(ctx, id)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

func (h *Handlers) List(ctx context.Context, in ListEstruturas) (pagination.Page[EstruturaDTO], error) {
	var filter outbound.EstruturaFilter
	if in.Status != nil {
		s := entity.EstruturaStatus(*in.Status)
		filter.Status = &s
	}
	page, err := h.uow.Scope().Repositories().List(ctx, filter,
		pagination.Request{PageNumber: in.PageNumber, PageSize: in.PageSize})
	if err != nil {
		return pagination.Page[EstruturaDTO]{}, err
	}
	return pagination.Map(page, toDTO), nil
}
