package service

import (
	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewServer registers the RPC surface of every slice, plus the standard health service.
func NewServer(d *mediator.Dispatcher, log logger.Logger, m metrics.Metrics, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			ErrorInterceptor(log, m),
			RecoveryInterceptor(log),
		),
	}, opts...)
	srv := grpc.NewServer(opts...)

	pb.RegisterUsersServiceServer(srv, NewUsersService(d))
	pb.RegisterProductsServiceServer(srv, NewProductsService(d))
	pb.RegisterCustomersServiceServer(srv, NewCustomersService(d))
	pb.RegisterEstruturasServiceServer(srv, NewEstruturasService(d))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	for _, name := range []string{
		pb.UsersServiceName,
		pb.ProductsServiceName,
		pb.CustomersServiceName,
		pb.EstruturasServiceName,
	} {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	return srv, hs
}
