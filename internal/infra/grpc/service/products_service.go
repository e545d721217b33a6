package service

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/usecase/product"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

type ProductsService struct {
	pb.UnimplementedProductsServiceServer
	d *mediator.Dispatcher
}

func NewProductsService(d *mediator.Dispatcher) *ProductsService {
	return &ProductsService{d: d}
}

func (s *ProductsService) find(ctx context.Context, id string) (*product.ProductDTO, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("id", product.MessageInvalidID)
	}
	return mediator.Send[*product.ProductDTO](ctx, s.d, product.GetProduct{ID: id})
}

func (s *ProductsService) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	p, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product", req.ID)
	}
	return &pb.GetProductResponse{Product: productMessage(*p)}, nil
}

func (s *ProductsService) ProductExists(ctx context.Context, req *pb.ProductExistsRequest) (*pb.ProductExistsResponse, error) {
	p, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &pb.ProductExistsResponse{Exists: p != nil}, nil
}

func (s *ProductsService) CheckAvailability(ctx context.Context, req *pb.CheckAvailabilityRequest) (*pb.CheckAvailabilityResponse, error) {
	res, err := mediator.Send[product.AvailabilityDTO](ctx, s.d, product.CheckAvailability{
		ProductID: req.ID,
		Quantity:  int(req.Quantity),
	})
	if err != nil {
		return nil, err
	}
	return &pb.CheckAvailabilityResponse{
		IsAvailable:       res.IsAvailable,
		AvailableQuantity: int32(res.AvailableQuantity),
	}, nil
}

// ReserveStock validates the reservation only. Stock is left untouched.
func (s *ProductsService) ReserveStock(ctx context.Context, req *pb.ReserveStockRequest) (*pb.ReserveStockResponse, error) {
	res, err := mediator.Send[product.ReservationResult](ctx, s.d, product.ReserveStock{
		ProductID:     req.ProductID,
		Quantity:      int(req.Quantity),
		ReservationID: req.ReservationID,
	})
	if err != nil {
		return nil, err
	}
	return &pb.ReserveStockResponse{Success: res.Success, Message: res.Message}, nil
}

func (s *ProductsService) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	q := product.ListProducts{
		AvailableOnly: req.AvailableOnly,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		Name:          req.Name,
		PageNumber:    int(req.PageNumber),
		PageSize:      int(req.PageSize),
	}
	page, err := mediator.Send[pagination.Page[product.ProductDTO]](ctx, s.d, q)
	if err != nil {
		return nil, err
	}
	out := &pb.ListProductsResponse{
		Products:   make([]*pb.Product, 0, len(page.Items)),
		TotalCount: int32(page.TotalCount),
		PageNumber: int32(page.PageNumber),
		PageSize:   int32(page.PageSize),
	}
	for _, p := range page.Items {
		out.Products = append(out.Products, productMessage(p))
	}
	return out, nil
}

func productMessage(p product.ProductDTO) *pb.Product {
	msg := &pb.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Stock:       int32(p.StockQuantity),
		IsActive:    p.IsActive,
		CreatedAt:   timestamp(p.CreatedAt),
		UpdatedAt:   optionalTimestamp(p.UpdatedAt),
	}
	if p.CreatedBy != nil {
		msg.CreatedBy = *p.CreatedBy
	}
	return msg
}
