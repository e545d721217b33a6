package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	CustomersServiceName                             = "goslices.customers.v1.CustomersService"
	CustomersService_GetCustomer_FullMethodName      = "/" + CustomersServiceName + "/GetCustomer"
	CustomersService_CustomerExists_FullMethodName   = "/" + CustomersServiceName + "/CustomerExists"
	CustomersService_ValidateCustomer_FullMethodName = "/" + CustomersServiceName + "/ValidateCustomer"
	CustomersService_ListCustomers_FullMethodName    = "/" + CustomersServiceName + "/ListCustomers"
)

type Customer struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	PhoneNumber string                 `json:"phone_number,omitempty"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at"`
	UpdatedAt   *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type GetCustomerRequest struct {
	ID string `json:"id"`
}

type GetCustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type CustomerExistsRequest struct {
	ID string `json:"id"`
}

type CustomerExistsResponse struct {
	Exists bool `json:"exists"`
}

type ValidateCustomerRequest struct {
	ID string `json:"id"`
}

type ValidateCustomerResponse struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}

type ListCustomersRequest struct {
	ActiveOnly bool  `json:"active_only"`
	PageNumber int32 `json:"page_number"`
	PageSize   int32 `json:"page_size"`
}

type ListCustomersResponse struct {
	Customers  []*Customer `json:"customers"`
	TotalCount int32       `json:"total_count"`
	PageNumber int32       `json:"page_number"`
	PageSize   int32       `json:"page_size"`
}

type CustomersServiceServer interface {
	GetCustomer(context.Context, *GetCustomerRequest) (*GetCustomerResponse, error)
	CustomerExists(context.Context, *CustomerExistsRequest) (*CustomerExistsResponse, error)
	ValidateCustomer(context.Context, *ValidateCustomerRequest) (*ValidateCustomerResponse, error)
	ListCustomers(context.Context, *ListCustomersRequest) (*ListCustomersResponse, error)
}

type UnimplementedCustomersServiceServer struct{}

func (UnimplementedCustomersServiceServer) GetCustomer(context.Context, *GetCustomerRequest) (*GetCustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCustomer not implemented")
}
func (UnimplementedCustomersServiceServer) CustomerExists(context.Context, *CustomerExistsRequest) (*CustomerExistsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CustomerExists not implemented")
}
func (UnimplementedCustomersServiceServer) ValidateCustomer(context.Context, *ValidateCustomerRequest) (*ValidateCustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateCustomer not implemented")
}
func (UnimplementedCustomersServiceServer) ListCustomers(context.Context, *ListCustomersRequest) (*ListCustomersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCustomers not implemented")
}

var CustomersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CustomersServiceName,
	HandlerType: (*CustomersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCustomer", Handler: unary(CustomersService_GetCustomer_FullMethodName, CustomersServiceServer.GetCustomer)},
		{MethodName: "CustomerExists", Handler: unary(CustomersService_CustomerExists_FullMethodName, CustomersServiceServer.CustomerExists)},
		{MethodName: "ValidateCustomer", Handler: unary(CustomersService_ValidateCustomer_FullMethodName, CustomersServiceServer.ValidateCustomer)},
		{MethodName: "ListCustomers", Handler: unary(CustomersService_ListCustomers_FullMethodName, CustomersServiceServer.ListCustomers)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterCustomersServiceServer(s grpc.ServiceRegistrar, srv CustomersServiceServer) {
	s.RegisterService(&CustomersService_ServiceDesc, srv)
}

type CustomersServiceClient interface {
	GetCustomer(ctx context.Context, in *GetCustomerRequest, opts ...grpc.CallOption) (*GetCustomerResponse, error)
	CustomerExists(ctx context.Context, in *CustomerExistsRequest, opts ...grpc.CallOption) (*CustomerExistsResponse, error)
	ValidateCustomer(ctx context.Context, in *ValidateCustomerRequest, opts ...grpc.CallOption) (*ValidateCustomerResponse, error)
	ListCustomers(ctx context.Context, in *ListCustomersRequest, opts ...grpc.CallOption) (*ListCustomersResponse, error)
}

type customersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCustomersServiceClient(cc grpc.ClientConnInterface) CustomersServiceClient {
	return &customersServiceClient{cc}
}

func (c *customersServiceClient) GetCustomer(ctx context.Context, in *GetCustomerRequest, opts ...grpc.CallOption) (*GetCustomerResponse, error) {
	return invoke[GetCustomerResponse](ctx, c.cc, CustomersService_GetCustomer_FullMethodName, in, opts)
}

func (c *customersServiceClient) CustomerExists(ctx context.Context, in *CustomerExistsRequest, opts ...grpc.CallOption) (*CustomerExistsResponse, error) {
	return invoke[CustomerExistsResponse](ctx, c.cc, CustomersService_CustomerExists_FullMethodName, in, opts)
}

func (c *customersServiceClient) ValidateCustomer(ctx context.Context, in *ValidateCustomerRequest, opts ...grpc.CallOption) (*ValidateCustomerResponse, error) {
	return invoke[ValidateCustomerResponse](ctx, c.cc, CustomersService_ValidateCustomer_FullMethodName, in, opts)
}

func (c *customersServiceClient) ListCustomers(ctx context.Context, in *ListCustomersRequest, opts ...grpc.CallOption) (*ListCustomersResponse, error) {
	return invoke[ListCustomersResponse](ctx, c.cc, CustomersService_ListCustomers_FullMethodName, in, opts)
}
