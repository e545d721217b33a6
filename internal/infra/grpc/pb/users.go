package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	UsersServiceName                           = "goslices.users.v1.UsersService"
	UsersService_GetUser_FullMethodName        = "/" + UsersServiceName + "/GetUser"
	UsersService_GetUserByEmail_FullMethodName = "/" + UsersServiceName + "/GetUserByEmail"
	UsersService_UserExists_FullMethodName     = "/" + UsersServiceName + "/UserExists"
	UsersService_ValidateUser_FullMethodName   = "/" + UsersServiceName + "/ValidateUser"
	UsersService_ListUsers_FullMethodName      = "/" + UsersServiceName + "/ListUsers"
)

type User struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	IsActive  bool                   `json:"is_active"`
	CreatedAt *timestamppb.Timestamp `json:"created_at"`
	UpdatedAt *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserByEmailRequest struct {
	Email string `json:"email"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

type UserExistsRequest struct {
	ID string `json:"id"`
}

type UserExistsResponse struct {
	Exists bool `json:"exists"`
}

type ValidateUserRequest struct {
	ID string `json:"id"`
}

// ValidateUserResponse tells a missing user apart from an inactive one through Reason.
type ValidateUserResponse struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}

type ListUsersRequest struct {
	ActiveOnly bool  `json:"active_only"`
	PageNumber int32 `json:"page_number"`
	PageSize   int32 `json:"page_size"`
}

type ListUsersResponse struct {
	Users      []*User `json:"users"`
	TotalCount int32   `json:"total_count"`
	PageNumber int32   `json:"page_number"`
	PageSize   int32   `json:"page_size"`
}

type UsersServiceServer interface {
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	GetUserByEmail(context.Context, *GetUserByEmailRequest) (*GetUserResponse, error)
	UserExists(context.Context, *UserExistsRequest) (*UserExistsResponse, error)
	ValidateUser(context.Context, *ValidateUserRequest) (*ValidateUserResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
}

type UnimplementedUsersServiceServer struct{}

func (UnimplementedUsersServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedUsersServiceServer) GetUserByEmail(context.Context, *GetUserByEmailRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserByEmail not implemented")
}
func (UnimplementedUsersServiceServer) UserExists(context.Context, *UserExistsRequest) (*UserExistsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserExists not implemented")
}
func (UnimplementedUsersServiceServer) ValidateUser(context.Context, *ValidateUserRequest) (*ValidateUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateUser not implemented")
}
func (UnimplementedUsersServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}

var UsersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: UsersServiceName,
	HandlerType: (*UsersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUser", Handler: unary(UsersService_GetUser_FullMethodName, UsersServiceServer.GetUser)},
		{MethodName: "GetUserByEmail", Handler: unary(UsersService_GetUserByEmail_FullMethodName, UsersServiceServer.GetUserByEmail)},
		{MethodName: "UserExists", Handler: unary(UsersService_UserExists_FullMethodName, UsersServiceServer.UserExists)},
		{MethodName: "ValidateUser", Handler: unary(UsersService_ValidateUser_FullMethodName, UsersServiceServer.ValidateUser)},
		{MethodName: "ListUsers", Handler: unary(UsersService_ListUsers_FullMethodName, UsersServiceServer.ListUsers)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterUsersServiceServer(s grpc.ServiceRegistrar, srv UsersServiceServer) {
	s.RegisterService(&UsersService_ServiceDesc, srv)
}

type UsersServiceClient interface {
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	GetUserByEmail(ctx context.Context, in *GetUserByEmailRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	UserExists(ctx context.Context, in *UserExistsRequest, opts ...grpc.CallOption) (*UserExistsResponse, error)
	ValidateUser(ctx context.Context, in *ValidateUserRequest, opts ...grpc.CallOption) (*ValidateUserResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
}

type usersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUsersServiceClient(cc grpc.ClientConnInterface) UsersServiceClient {
	return &usersServiceClient{cc}
}

func (c *usersServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, UsersService_GetUser_FullMethodName, in, opts)
}

func (c *usersServiceClient) GetUserByEmail(ctx context.Context, in *GetUserByEmailRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, UsersService_GetUserByEmail_FullMethodName, in, opts)
}

func (c *usersServiceClient) UserExists(ctx context.Context, in *UserExistsRequest, opts ...grpc.CallOption) (*UserExistsResponse, error) {
	return invoke[UserExistsResponse](ctx, c.cc, UsersService_UserExists_FullMethodName, in, opts)
}

func (c *usersServiceClient) ValidateUser(ctx context.Context, in *ValidateUserRequest, opts ...grpc.CallOption) (*ValidateUserResponse, error) {
	return invoke[ValidateUserResponse](ctx, c.cc, UsersService_ValidateUser_FullMethodName, in, opts)
}

func (c *usersServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, UsersService_ListUsers_FullMethodName, in, opts)
}
