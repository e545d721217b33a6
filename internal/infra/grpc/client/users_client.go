package client

import (
	"context"
	"time"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"google.golang.org/grpc"
)

// UsersClient is the UserDirectory other slices get in production.
type UsersClient struct {
	rpc pb.UsersServiceClient
	c   *caller
}

func NewUsersClient(cc grpc.ClientConnInterface, timeout time.Duration, log logger.Logger, m metrics.Metrics) *UsersClient {
	return &UsersClient{
		rpc: pb.NewUsersServiceClient(cc),
		c:   newCaller("users", timeout, log, m),
	}
}

func (u *UsersClient) ValidateUser(ctx context.Context, userID string) (outbound.UserValidation, error) {
	return call(ctx, u.c, "ValidateUser", func(ctx context.Context) (outbound.UserValidation, error) {
		res, err := u.rpc.ValidateUser(ctx, &pb.ValidateUserRequest{ID: userID})
		if err != nil {
			return outbound.UserValidation{}, err
		}
		return outbound.UserValidation{IsValid: res.IsValid, Reason: res.Reason}, nil
	})
}

func (u *UsersClient) UserExists(ctx context.Context, userID string) (bool, error) {
	return call(ctx, u.c, "UserExists", func(ctx context.Context) (bool, error) {
		res, err := u.rpc.UserExists(ctx, &pb.UserExistsRequest{ID: userID})
		if err != nil {
			return false, err
		}
		return res.Exists, nil
	})
}

var _ outbound.UserDirectory = (*UsersClient)(nil)
