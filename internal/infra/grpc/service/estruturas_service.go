package service

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/usecase/estrutura"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

type EstruturasService struct {
	pb.UnimplementedEstruturasServiceServer
	d *mediator.Dispatcher
}

func NewEstruturasService(d *mediator.Dispatcher) *EstruturasService {
	return &EstruturasService{d: d}
}

func (s *EstruturasService) find(ctx context.Context, id string) (*estrutura.EstruturaDTO, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("id", "Invalid estrutura ID format")
	}
	return mediator.Send[*estrutura.EstruturaDTO](ctx, s.d, estrutura.GetEstrutura{ID: id})
}

func (s *EstruturasService) GetEstrutura(ctx context.Context, req *pb.GetEstruturaRequest) (*pb.GetEstruturaResponse, error) {
	e, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("estrutura", req.ID)
	}
	return &pb.GetEstruturaResponse{Estrutura: estruturaMessage(*e)}, nil
}

func (s *EstruturasService) EstruturaExists(ctx context.Context, req *pb.EstruturaExistsRequest) (*pb.EstruturaExistsResponse, error) {
	e, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &pb.EstruturaExistsResponse{Exists: e != nil}, nil
}

func (s *EstruturasService) ListEstruturas(ctx context.Context, req *pb.ListEstruturasRequest) (*pb.ListEstruturasResponse, error) {
	q := estrutura.ListEstruturas{PageNumber: int(req.PageNumber), PageSize: int(req.PageSize)}
	if req.Status != 0 {
		status := int(req.Status)
		q.Status = &status
	}
	page, err := mediator.Send[pagination.Page[estrutura.EstruturaDTO]](ctx, s.d, q)
	if err != nil {
		return nil, err
	}
	out := &pb.ListEstruturasResponse{
		Estruturas: make([]*pb.Estrutura, 0, len(page.Items)),
		TotalCount: int32(page.TotalCount),
		PageNumber: int32(page.PageNumber),
		PageSize:   int32(page.PageSize),
	}
	for _, e := range page.Items {
		out.Estruturas = append(out.Estruturas, estruturaMessage(e))
	}
	return out, nil
}

func estruturaMessage(e estrutura.EstruturaDTO) *pb.Estrutura {
	msg := &pb.Estrutura{
		ID:           e.ID,
		Name:         e.Name,
		TypeCode:     e.TypeCode,
		ExternalCode: e.ExternalCode,
		ValidFrom:    timestamp(e.ValidFrom),
		ValidUntil:   timestamp(e.ValidUntil),
		Version:      int32(e.Version),
		Status:       int32(e.Status),
		CreatedAt:    timestamp(e.CreatedAt),
		UpdatedAt:    optionalTimestamp(e.UpdatedAt),
	}
	if e.Description != nil {
		msg.Description = *e.Description
	}
	return msg
}
