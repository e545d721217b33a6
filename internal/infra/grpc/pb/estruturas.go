package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	EstruturasServiceName                            = "goslices.estruturas.v1.EstruturasService"
	EstruturasService_GetEstrutura_FullMethodName    = "/" + EstruturasServiceName + "/GetEstrutura"
	EstruturasService_EstruturaExists_FullMethodName = "/" + EstruturasServiceName + "/EstruturaExists"
	EstruturasService_ListEstruturas_FullMethodName  = "/" + EstruturasServiceName + "/ListEstruturas"
)

type Estrutura struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	TypeCode     int64                  `json:"type_code"`
	ExternalCode string                 `json:"external_code"`
	ValidFrom    *timestamppb.Timestamp `json:"valid_from"`
	ValidUntil   *timestamppb.Timestamp `json:"valid_until"`
	Version      int32                  `json:"version"`
	Status       int32                  `json:"status"`
	CreatedAt    *timestamppb.Timestamp `json:"created_at"`
	UpdatedAt    *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type GetEstruturaRequest struct {
	ID string `json:"id"`
}

type GetEstruturaResponse struct {
	Estrutura *Estrutura `json:"estrutura"`
}

type EstruturaExistsRequest struct {
	ID string `json:"id"`
}

type EstruturaExistsResponse struct {
	Exists bool `json:"exists"`
}

// ListEstruturasRequest lists every status when Status is zero.
type ListEstruturasRequest struct {
	Status     int32 `json:"status"`
	PageNumber int32 `json:"page_number"`
	PageSize   int32 `json:"page_size"`
}

type ListEstruturasResponse struct {
	Estruturas []*Estrutura `json:"estruturas"`
	TotalCount int32        `json:"total_count"`
	PageNumber int32        `json:"page_number"`
	PageSize   int32        `json:"page_size"`
}

type EstruturasServiceServer interface {
	GetEstrutura(context.Context, *GetEstruturaRequest) (*GetEstruturaResponse, error)
	EstruturaExists(context.Context, *EstruturaExistsRequest) (*EstruturaExistsResponse, error)
	ListEstruturas(context.Context, *ListEstruturasRequest) (*ListEstruturasResponse, error)
}

type UnimplementedEstruturasServiceServer struct{}

func (UnimplementedEstruturasServiceServer) GetEstrutura(context.Context, *GetEstruturaRequest) (*GetEstruturaResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEstrutura not implemented")
}
func (UnimplementedEstruturasServiceServer) EstruturaExists(context.Context, *EstruturaExistsRequest) (*EstruturaExistsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EstruturaExists not implemented")
}
func (UnimplementedEstruturasServiceServer) ListEstruturas(context.Context, *ListEstruturasRequest) (*ListEstruturasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEstruturas not implemented")
}

var EstruturasService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EstruturasServiceName,
	HandlerType: (*EstruturasServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetEstrutura", Handler: unary(EstruturasService_GetEstrutura_FullMethodName, EstruturasServiceServer.GetEstrutura)},
		{MethodName: "EstruturaExists", Handler: unary(EstruturasService_EstruturaExists_FullMethodName, EstruturasServiceServer.EstruturaExists)},
		{MethodName: "ListEstruturas", Handler: unary(EstruturasService_ListEstruturas_FullMethodName, EstruturasServiceServer.ListEstruturas)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterEstruturasServiceServer(s grpc.ServiceRegistrar, srv EstruturasServiceServer) {
	s.RegisterService(&EstruturasService_ServiceDesc, srv)
}

type EstruturasServiceClient interface {
	GetEstrutura(ctx context.Context, in *GetEstruturaRequest, opts ...grpc.CallOption) (*GetEstruturaResponse, error)
	EstruturaExists(ctx context.Context, in *EstruturaExistsRequest, opts ...grpc.CallOption) (*EstruturaExistsResponse, error)
	ListEstruturas(ctx context.Context, in *ListEstruturasRequest, opts ...grpc.CallOption) (*ListEstruturasResponse, error)
}

type estruturasServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEstruturasServiceClient(cc grpc.ClientConnInterface) EstruturasServiceClient {
	return &estruturasServiceClient{cc}
}

func (c *estruturasServiceClient) GetEstrutura(ctx context.Context, in *GetEstruturaRequest, opts ...grpc.CallOption) (*GetEstruturaResponse, error) {
	return invoke[GetEstruturaResponse](ctx, c.cc, EstruturasService_GetEstrutura_FullMethodName, in, opts)
}

func (c *estruturasServiceClient) EstruturaExists(ctx context.Context, in *EstruturaExistsRequest, opts ...grpc.CallOption) (*EstruturaExistsResponse, error) {
	return invoke[EstruturaExistsResponse](ctx, c.cc, EstruturasService_EstruturaExists_FullMethodName, in, opts)
}

func (c *estruturasServiceClient) ListEstruturas(ctx context.Context, in *ListEstruturasRequest, opts ...grpc.CallOption) (*ListEstruturasResponse, error) {
	return invoke[ListEstruturasResponse](ctx, c.cc, EstruturasService_ListEstruturas_FullMethodName, in, opts)
}
