package server

import (
	"fmt"
	"net"
	"time"

	myGRPC "github.com/MKhiriev/go-secure-storage/internal/handler/grpc"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening gRPC address %s: %w", address, err)
	}

	return &grpcServer{
		server:   handler.Init(),
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight calls up to shutdownTimeout, then stops
// the server hard.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		g.server.Stop()
	}
}
