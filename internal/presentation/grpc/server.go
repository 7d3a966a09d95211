package grpc

import (
	"fmt"
	"log/slog"
	"net"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// ServerConfig holds the transport options of the gRPC server.
type ServerConfig struct {
	// Creds enables TLS when set.
	Creds credentials.TransportCredentials
	// JWT may be nil; calls carrying a token are then rejected.
	JWT        *auth.JWTService
	Address    string
	Reflection bool
}

// anonymousMethods may be called without a bearer token.
var anonymousMethods = []string{
	"/grpc.health.v1.Health/Check",
	"/grpc.health.v1.Health/Watch",
	ReputationService_CheckURL_FullMethodName,
	ReputationService_CheckHash_FullMethodName,
}

// Server wraps the gRPC server with reputation service handlers.
type Server struct {
	grpcServer *grpclib.Server
	health     *health.Server
	logger     *slog.Logger
	address    string
}

// NewServer creates a new gRPC server for the reputation service.
func NewServer(handler ReputationServiceServer, cfg ServerConfig, logger *slog.Logger) *Server {
	serverOpts := []grpclib.ServerOption{
		grpclib.UnaryInterceptor(auth.UnaryAuthInterceptor(cfg.JWT, anonymousMethods)),
	}
	if cfg.Creds != nil {
		serverOpts = append(serverOpts, grpclib.Creds(cfg.Creds))
		logger.Info("gRPC TLS enabled")
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	grpcServer := grpclib.NewServer(serverOpts...)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ReputationServiceName, healthpb.HealthCheckResponse_SERVING)

	RegisterReputationServiceServer(grpcServer, handler)

	if cfg.Reflection {
		reflection.Register(grpcServer)
	}

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
		address:    cfg.Address,
	}
}

// Start listens on the configured address and serves until Stop.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	return s.Serve(listener)
}

// Serve serves gRPC requests on listener.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC server starting", slog.String("address", listener.Addr().String()))
	return s.grpcServer.Serve(listener)
}

// Stop marks the service as not serving and gracefully stops the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
