// Package server exposes the case-management API over gRPC: carer and
// referral CRUD, the matching operations, and XLSX export.
package server

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"

	fostercarepb "github.com/careflow-uk/fostermatch/gen/proto/fostercare/v1"
)

// Deps bundles the registered service implementations.
type Deps struct {
	Carers    fostercarepb.CarersServiceServer
	Referrals fostercarepb.ReferralsServiceServer
	Matching  fostercarepb.MatchingServiceServer
	Export    fostercarepb.ExportServiceServer
}

// Server wraps the gRPC server lifecycle.
type Server struct {
	grpc   *grpc.Server
	logger *slog.Logger
}

func New(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gs := grpc.NewServer()
	fostercarepb.RegisterCarersServiceServer(gs, deps.Carers)
	fostercarepb.RegisterReferralsServiceServer(gs, deps.Referrals)
	fostercarepb.RegisterMatchingServiceServer(gs, deps.Matching)
	fostercarepb.RegisterExportServiceServer(gs, deps.Export)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	return &Server{grpc: gs, logger: logger}
}

// Serve blocks until the listener fails or GracefulStop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("grpc server listening", "addr", lis.Addr().String())
	return s.grpc.Serve(lis)
}

func (s *Server) GracefulStop() {
	s.logger.Info("stopping grpc server")
	s.grpc.GracefulStop()
}

// actorFromContext reads the caller identity from request metadata. Falls
// back to "api" so audit entries are never attributed to nobody.
func actorFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "api"
	}
	if vs := md.Get("x-user-id"); len(vs) > 0 && vs[0] != "" {
		return vs[0]
	}
	return "api"
}
