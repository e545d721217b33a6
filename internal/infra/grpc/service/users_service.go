package service

import (
	"context"
	"strings"

	"github.com/DioGolang/GoSlices/internal/application/usecase/user"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

type UsersService struct {
	pb.UnimplementedUsersServiceServer
	d *mediator.Dispatcher
}

func NewUsersService(d *mediator.Dispatcher) *UsersService {
	return &UsersService{d: d}
}

func (s *UsersService) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return nil, apperr.Invalid("id", user.ReasonInvalidID)
	}
	u, err := mediator.Send[*user.UserDTO](ctx, s.d, user.GetUser{ID: req.ID})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", req.ID)
	}
	return &pb.GetUserResponse{User: userMessage(*u)}, nil
}

func (s *UsersService) GetUserByEmail(ctx context.Context, req *pb.GetUserByEmailRequest) (*pb.GetUserResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperr.Invalid("email", "Email is required")
	}
	u, err := mediator.Send[*user.UserDTO](ctx, s.d, user.GetUserByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", req.Email)
	}
	return &pb.GetUserResponse{User: userMessage(*u)}, nil
}

// UserExists rejects a malformed id instead of answering false.
func (s *UsersService) UserExists(ctx context.Context, req *pb.UserExistsRequest) (*pb.UserExistsResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return nil, apperr.Invalid("id", user.ReasonInvalidID)
	}
	u, err := mediator.Send[*user.UserDTO](ctx, s.d, user.GetUser{ID: req.ID})
	if err != nil {
		return nil, err
	}
	return &pb.UserExistsResponse{Exists: u != nil}, nil
}

func (s *UsersService) ValidateUser(ctx context.Context, req *pb.ValidateUserRequest) (*pb.ValidateUserResponse, error) {
	res, err := mediator.Send[user.ValidationResult](ctx, s.d, user.ValidateUser{UserID: req.ID})
	if err != nil {
		return nil, err
	}
	return &pb.ValidateUserResponse{IsValid: res.IsValid, Reason: res.Reason}, nil
}

func (s *UsersService) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	page, err := mediator.Send[pagination.Page[user.UserDTO]](ctx, s.d, user.ListUsers{
		ActiveOnly: req.ActiveOnly,
		PageNumber: int(req.PageNumber),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}
	out := &pb.ListUsersResponse{
		Users:      make([]*pb.User, 0, len(page.Items)),
		TotalCount: int32(page.TotalCount),
		PageNumber: int32(page.PageNumber),
		PageSize:   int32(page.PageSize),
	}
	for _, u := range page.Items {
		out.Users = append(out.Users, userMessage(u))
	}
	return out, nil
}

func userMessage(u user.UserDTO) *pb.User {
	return &pb.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: timestamp(u.CreatedAt),
		UpdatedAt: optionalTimestamp(u.UpdatedAt),
	}
}
