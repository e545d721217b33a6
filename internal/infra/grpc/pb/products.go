package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	ProductsServiceName                              = "goslices.products.v1.ProductsService"
	ProductsService_GetProduct_FullMethodName        = "/" + ProductsServiceName + "/GetProduct"
	ProductsService_ProductExists_FullMethodName     = "/" + ProductsServiceName + "/ProductExists"
	ProductsService_CheckAvailability_FullMethodName = "/" + ProductsServiceName + "/CheckAvailability"
	ProductsService_ReserveStock_FullMethodName      = "/" + ProductsServiceName + "/ReserveStock"
	ProductsService_ListProducts_FullMethodName      = "/" + ProductsServiceName + "/ListProducts"
)

type Product struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Currency    string                 `json:"currency"`
	Stock       int32                  `json:"stock"`
	IsActive    bool                   `json:"is_active"`
	CreatedBy   string                 `json:"created_by,omitempty"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at"`
	UpdatedAt   *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ProductExistsRequest struct {
	ID string `json:"id"`
}

type ProductExistsResponse struct {
	Exists bool `json:"exists"`
}

type CheckAvailabilityRequest struct {
	ID       string `json:"id"`
	Quantity int32  `json:"quantity"`
}

type CheckAvailabilityResponse struct {
	IsAvailable       bool  `json:"is_available"`
	AvailableQuantity int32 `json:"available_quantity"`
}

// ReserveStockRequest asks whether Quantity units could be reserved. The call only
// validates: stock is never decremented and callers must not assume any state changed.
type ReserveStockRequest struct {
	ProductID     string `json:"product_id"`
	Quantity      int32  `json:"quantity"`
	ReservationID string `json:"reservation_id"`
}

type ReserveStockResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListProductsRequest treats zero prices as no bound.
// ListProductsRequest leaves a price bound out when it is nil; zero is a real bound.
type ListProductsRequest struct {
	AvailableOnly bool     `json:"available_only"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	Name          string   `json:"name"`
	PageNumber    int32    `json:"page_number"`
	PageSize      int32    `json:"page_size"`
}

type ListProductsResponse struct {
	Products   []*Product `json:"products"`
	TotalCount int32      `json:"total_count"`
	PageNumber int32      `json:"page_number"`
	PageSize   int32      `json:"page_size"`
}

type ProductsServiceServer interface {
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ProductExists(context.Context, *ProductExistsRequest) (*ProductExistsResponse, error)
	CheckAvailability(context.Context, *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error)
	ReserveStock(context.Context, *ReserveStockRequest) (*ReserveStockResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
}

type UnimplementedProductsServiceServer struct{}

func (UnimplementedProductsServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedProductsServiceServer) ProductExists(context.Context, *ProductExistsRequest) (*ProductExistsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProductExists not implemented")
}
func (UnimplementedProductsServiceServer) CheckAvailability(context.Context, *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckAvailability not implemented")
}
func (UnimplementedProductsServiceServer) ReserveStock(context.Context, *ReserveStockRequest) (*ReserveStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReserveStock not implemented")
}
func (UnimplementedProductsServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

var ProductsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductsServiceName,
	HandlerType: (*ProductsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetProduct", Handler: unary(ProductsService_GetProduct_FullMethodName, ProductsServiceServer.GetProduct)},
		{MethodName: "ProductExists", Handler: unary(ProductsService_ProductExists_FullMethodName, ProductsServiceServer.ProductExists)},
		{MethodName: "CheckAvailability", Handler: unary(ProductsService_CheckAvailability_FullMethodName, ProductsServiceServer.CheckAvailability)},
		{MethodName: "ReserveStock", Handler: unary(ProductsService_ReserveStock_FullMethodName, ProductsServiceServer.ReserveStock)},
		{MethodName: "ListProducts", Handler: unary(ProductsService_ListProducts_FullMethodName, ProductsServiceServer.ListProducts)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterProductsServiceServer(s grpc.ServiceRegistrar, srv ProductsServiceServer) {
	s.RegisterService(&ProductsService_ServiceDesc, srv)
}

type ProductsServiceClient interface {
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	ProductExists(ctx context.Context, in *ProductExistsRequest, opts ...grpc.CallOption) (*ProductExistsResponse, error)
	CheckAvailability(ctx context.Context, in *CheckAvailabilityRequest, opts ...grpc.CallOption) (*CheckAvailabilityResponse, error)
	ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*ReserveStockResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
}

type productsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductsServiceClient(cc grpc.ClientConnInterface) ProductsServiceClient {
	return &productsServiceClient{cc}
}

func (c *productsServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return invoke[GetProductResponse](ctx, c.cc, ProductsService_GetProduct_FullMethodName, in, opts)
}

func (c *productsServiceClient) ProductExists(ctx context.Context, in *ProductExistsRequest, opts ...grpc.CallOption) (*ProductExistsResponse, error) {
	return invoke[ProductExistsResponse](ctx, c.cc, ProductsService_ProductExists_FullMethodName, in, opts)
}

func (c *productsServiceClient) CheckAvailability(ctx context.Context, in *CheckAvailabilityRequest, opts ...grpc.CallOption) (*CheckAvailabilityResponse, error) {
	return invoke[CheckAvailabilityResponse](ctx, c.cc, ProductsService_CheckAvailability_FullMethodName, in, opts)
}

func (c *productsServiceClient) ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*ReserveStockResponse, error) {
	return invoke[ReserveStockResponse](ctx, c.cc, ProductsService_ReserveStock_FullMethodName, in, opts)
}

func (c *productsServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductsService_ListProducts_FullMethodName, in, opts)
}
