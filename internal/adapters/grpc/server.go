package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/ib-77/results/internal/tenant"
	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/grpcx"
)

type Server struct {
	service tenant.Service
}

var _ TenantServer = (*Server)(nil)

func NewTenantServer(service tenant.Service) *Server {
	return &Server{service: service}
}

// NewGRPCServer builds a gRPC server that recovers handler panics.
func NewGRPCServer(logger *slog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(grpcx.RecoveryInterceptor(logger)))
	return grpc.NewServer(opts...)
}

// Register installs the tenant service and a health service reporting it as
// serving.
func Register(server grpc.ServiceRegistrar, svc *Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	server.RegisterService(&TenantServiceDesc, svc)
}

func (s *Server) GetUser(ctx context.Context, req *GetUserRequest) (*tenant.Result[string], error) {
	r, err := s.service.GetUser(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &r, nil
}

func (s *Server) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*tenant.Status, error) {
	r, err := s.service.UpdateUser(ctx, req.ID, req.Name)
	if err != nil {
		return nil, toStatus(err)
	}
	return &r, nil
}

func (s *Server) GetUsersAtAddress(ctx context.Context, req *AddressRequest) (*tenant.Result[[]int], error) {
	r, err := s.service.GetUsersAtAddress(ctx, req.Zip, req.HouseNr)
	if err != nil {
		return nil, toStatus(err)
	}
	return &r, nil
}

func (s *Server) GetUsers(ctx context.Context, req *GetUsersRequest) (*GetUsersResponse, error) {
	rs, err := s.service.GetUsers(ctx, req.IDs)
	if err != nil {
		return nil, toStatus(err)
	}
	return &GetUsersResponse{Results: rs}, nil
}

func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, rop.ErrUnhandled):
		// the recovery interceptor attaches the error details
		return err
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}
