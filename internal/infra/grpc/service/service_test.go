package service_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/DioGolang/GoSlices/internal/application/modules"
	"github.com/DioGolang/GoSlices/internal/application/usecase/product"
	"github.com/DioGolang/GoSlices/internal/application/usecase/user"
	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/client"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/internal/infra/grpc/service"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type harness struct {
	d  *mediator.Dispatcher
	cc *grpc.ClientConn
}

// newHarness serves every slice over an in-memory listener. Products reaches Users
// through the same connection, as it does across processes.
func newHarness(t *testing.T) *harness {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	cc, err := client.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	log := logger.NewNop()
	m := metrics.Nop{}
	slices := database.NewMemorySlices(nil, log, m)
	d, err := modules.NewDispatcher(modules.Deps{
		Users:         slices.Users,
		Products:      slices.Products,
		Customers:     slices.Customers,
		Estruturas:    slices.Estruturas,
		UserDirectory: client.NewUsersClient(cc, 2*time.Second, log, m),
		Logger:        log,
		Metrics:       m,
	})
	require.NoError(t, err)

	srv, _ := service.NewServer(d, log, m)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		_ = cc.Close()
		srv.Stop()
	})
	return &harness{d: d, cc: cc}
}

func (h *harness) createUser(t *testing.T, email string, active bool) string {
	t.Helper()
	ctx := context.Background()
	u, err := mediator.Send[user.UserDTO](ctx, h.d, user.CreateUser{Name: "Ana", Email: email})
	require.NoError(t, err)
	if !active {
		_, err = mediator.Send[user.UserDTO](ctx, h.d, user.DeactivateUser{ID: u.ID})
		require.NoError(t, err)
	}
	return u.ID
}

func TestUsersService_ValidateUser(t *testing.T) {
	h := newHarness(t)
	rpc := pb.NewUsersServiceClient(h.cc)
	active := h.createUser(t, "active@example.com", true)
	inactive := h.createUser(t, "inactive@example.com", false)

	tests := []struct {
		name      string
		id        string
		wantValid bool
		reason    string
	}{
		{name: "active user", id: active, wantValid: true},
		{name: "inactive user", id: inactive, reason: user.ReasonInactive},
		{name: "unknown user", id: uuid.NewString(), reason: user.ReasonNotFound},
		{name: "malformed id", id: "not-a-uuid", reason: user.ReasonInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			res, err := rpc.ValidateUser(context.Background(), &pb.ValidateUserRequest{ID: tt.id})

			//Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.IsValid)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestUsersService_StatusCodes(t *testing.T) {
	h := newHarness(t)
	rpc := pb.NewUsersServiceClient(h.cc)
	id := h.createUser(t, "known@example.com", true)

	tests := []struct {
		name string
		call func(ctx context.Context) error
		want codes.Code
	}{
		{
			name: "exists with malformed id",
			call: func(ctx context.Context) error {
				_, err := rpc.UserExists(ctx, &pb.UserExistsRequest{ID: "42"})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "get unknown user",
			call: func(ctx context.Context) error {
				_, err := rpc.GetUser(ctx, &pb.GetUserRequest{ID: uuid.NewString()})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "get known user",
			call: func(ctx context.Context) error {
				res, err := rpc.GetUser(ctx, &pb.GetUserRequest{ID: id})
				if err == nil && res.User.ID != id {
					return fmt.Errorf("got user %s", res.User.ID)
				}
				return err
			},
			want: codes.OK,
		},
		{
			name: "get by empty email",
			call: func(ctx context.Context) error {
				_, err := rpc.GetUserByEmail(ctx, &pb.GetUserByEmailRequest{})
				return err
			},
			want: codes.InvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			err := tt.call(context.Background())

			//Assert
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestUsersService_ListUsersPaginates(t *testing.T) {
	//Arrange
	h := newHarness(t)
	rpc := pb.NewUsersServiceClient(h.cc)
	for i := range 25 {
		h.createUser(t, fmt.Sprintf("user%02d@example.com", i), true)
	}

	//Act
	res, err := rpc.ListUsers(context.Background(), &pb.ListUsersRequest{PageNumber: 2, PageSize: 10})

	//Assert
	require.NoError(t, err)
	assert.EqualValues(t, 25, res.TotalCount)
	assert.EqualValues(t, 2, res.PageNumber)
	assert.Len(t, res.Users, 10)
}

func TestProductsService_ReserveStockNeverMutates(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	rpc := pb.NewProductsServiceClient(h.cc)
	p, err := mediator.Send[product.ProductDTO](ctx, h.d, product.CreateProduct{Name: "Desk", Price: 100, StockQuantity: 3})
	require.NoError(t, err)

	tests := []struct {
		name        string
		productID   string
		quantity    int32
		wantSuccess bool
		message     string
	}{
		{name: "enough stock", productID: p.ID, quantity: 3, wantSuccess: true, message: "Stock reserved successfully for reservation r-1"},
		{name: "insufficient stock", productID: p.ID, quantity: 4, message: "Insufficient stock. Available: 3, Requested: 4"},
		{name: "zero quantity", productID: p.ID, quantity: 0, message: product.MessageInvalidQuantity},
		{name: "malformed id", productID: "x", quantity: 1, message: product.MessageInvalidID},
		{name: "unknown product", productID: uuid.NewString(), quantity: 1, message: product.MessageNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			res, err := rpc.ReserveStock(ctx, &pb.ReserveStockRequest{ProductID: tt.productID, Quantity: tt.quantity, ReservationID: "r-1"})

			//Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.message, res.Message)
		})
	}

	got, err := rpc.GetProduct(ctx, &pb.GetProductRequest{ID: p.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Product.Stock)
}

func TestProductsService_CheckAvailability(t *testing.T) {
	//Arrange
	h := newHarness(t)
	ctx := context.Background()
	rpc := pb.NewProductsServiceClient(h.cc)
	p, err := mediator.Send[product.ProductDTO](ctx, h.d, product.CreateProduct{Name: "Lamp", Price: 20, StockQuantity: 5})
	require.NoError(t, err)

	//Act
	enough, err := rpc.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{ID: p.ID, Quantity: 5})
	require.NoError(t, err)
	short, err := rpc.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{ID: p.ID, Quantity: 6})
	require.NoError(t, err)
	_, invalid := rpc.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{ID: p.ID, Quantity: 0})

	//Assert
	assert.True(t, enough.IsAvailable)
	assert.EqualValues(t, 5, enough.AvailableQuantity)
	assert.False(t, short.IsAvailable)
	assert.Equal(t, codes.InvalidArgument, status.Code(invalid))
}

func TestCreateProductWithUserValidation_OverRPC(t *testing.T) {
	h := newHarness(t)
	active := h.createUser(t, "maker@example.com", true)
	inactive := h.createUser(t, "gone@example.com", false)

	tests := []struct {
		name    string
		userID  string
		wantErr apperr.Kind
		reason  string
	}{
		{name: "active creator", userID: active},
		{name: "inactive creator", userID: inactive, wantErr: apperr.KindValidation, reason: user.ReasonInactive},
		{name: "unknown creator", userID: uuid.NewString(), wantErr: apperr.KindValidation, reason: user.ReasonNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			p, err := mediator.Send[product.ProductDTO](context.Background(), h.d, product.CreateProductWithUserValidation{
				CreateProduct:   product.CreateProduct{Name: "Chair", Price: 50, StockQuantity: 1},
				CreatedByUserID: tt.userID,
			})

			//Assert
			if tt.reason == "" {
				require.NoError(t, err)
				require.NotNil(t, p.CreatedBy)
				assert.Equal(t, tt.userID, *p.CreatedBy)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, apperr.KindOf(err))
			violations := apperr.ViolationsOf(err)
			require.Len(t, violations, 1)
			assert.Equal(t, "created_by_user_id", violations[0].Field)
			assert.Equal(t, tt.reason, violations[0].Message)
		})
	}
}

func TestServer_HealthServing(t *testing.T) {
	//Arrange
	h := newHarness(t)

	//Act
	res, err := healthpb.NewHealthClient(h.cc).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.ProductsServiceName})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)
}

func TestProductsService_ListProductsZeroPriceBound(t *testing.T) {
	//Arrange
	h := newHarness(t)
	ctx := context.Background()
	rpc := pb.NewProductsServiceClient(h.cc)
	for _, p := range []product.CreateProduct{
		{Name: "Sample", Price: 0, StockQuantity: 1},
		{Name: "Lamp", Price: 20, StockQuantity: 1},
	} {
		_, err := mediator.Send[product.ProductDTO](ctx, h.d, p)
		require.NoError(t, err)
	}
	zero := 0.0

	//Act
	free, err := rpc.ListProducts(ctx, &pb.ListProductsRequest{MaxPrice: &zero, PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	all, err := rpc.ListProducts(ctx, &pb.ListProductsRequest{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)

	//Assert
	require.Len(t, free.Products, 1)
	assert.Equal(t, "Sample", free.Products[0].Name)
	assert.Equal(t, int32(2), all.TotalCount)
}
