package estrutura

import (
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
)

func Register(reg *mediator.Registry, h *Handlers) {
	mediator.Register(reg, mediator.HandlerFunc[CreateEstrutura, EstruturaDTO](h.Create))
	mediator.Register(reg, mediator.HandlerFunc[UpdateEstrutura, EstruturaDTO](h.Update))
	mediator.Register(reg, mediator.HandlerFunc[DeleteEstrutura, bool](h.Delete))
	mediator.Register(reg, mediator.HandlerFunc[GetEstrutura, *EstruturaDTO](h.Get))
	mediator.Register(reg, mediator.HandlerFunc[ListEstruturas, pagination.Page[EstruturaDTO]](h.List))
}
