package service

import (
	"context"

	"github.com/DioGolang/GoSlices/internal/application/usecase/customer"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

type CustomersService struct {
	pb.UnimplementedCustomersServiceServer
	d *mediator.Dispatcher
}

func NewCustomersService(d *mediator.Dispatcher) *CustomersService {
	return &CustomersService{d: d}
}

func (s *CustomersService) find(ctx context.Context, id string) (*customer.CustomerDTO, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("id", customer.ReasonInvalidID)
	}
	return mediator.Send[*customer.CustomerDTO](ctx, s.d, customer.GetCustomer{ID: id})
}

func (s *CustomersService) GetCustomer(ctx context.Context, req *pb.GetCustomerRequest) (*pb.GetCustomerResponse, error) {
	c, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("customer", req.ID)
	}
	return &pb.GetCustomerResponse{Customer: customerMessage(*c)}, nil
}

func (s *CustomersService) CustomerExists(ctx context.Context, req *pb.CustomerExistsRequest) (*pb.CustomerExistsResponse, error) {
	c, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &pb.CustomerExistsResponse{Exists: c != nil}, nil
}

func (s *CustomersService) ValidateCustomer(ctx context.Context, req *pb.ValidateCustomerRequest) (*pb.ValidateCustomerResponse, error) {
	res, err := mediator.Send[customer.ValidationResult](ctx, s.d, customer.ValidateCustomer{CustomerID: req.ID})
	if err != nil {
		return nil, err
	}
	return &pb.ValidateCustomerResponse{IsValid: res.IsValid, Reason: res.Reason}, nil
}

func (s *CustomersService) ListCustomers(ctx context.Context, req *pb.ListCustomersRequest) (*pb.ListCustomersResponse, error) {
	page, err := mediator.Send[pagination.Page[customer.CustomerDTO]](ctx, s.d, customer.ListCustomers{
		ActiveOnly: req.ActiveOnly,
		PageNumber: int(req.PageNumber),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}
	out := &pb.ListCustomersResponse{
		Customers:  make([]*pb.Customer, 0, len(page.Items)),
		TotalCount: int32(page.TotalCount),
		PageNumber: int32(page.PageNumber),
		PageSize:   int32(page.PageSize),
	}
	for _, c := range page.Items {
		out.Customers = append(out.Customers, customerMessage(c))
	}
	return out, nil
}

func customerMessage(c customer.CustomerDTO) *pb.Customer {
	msg := &pb.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		IsActive:  c.IsActive,
		CreatedAt: timestamp(c.CreatedAt),
		UpdatedAt: optionalTimestamp(c.UpdatedAt),
	}
	if c.PhoneNumber != nil {
		msg.PhoneNumber = *c.PhoneNumber
	}
	return msg
}
