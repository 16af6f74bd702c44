package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/handler"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer binds the listeners of every configured transport. Nothing is
// served until Run or RunServer is called.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.Run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	serve := func(run func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- run()
		}()
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		serve(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		serve(s.gRPCServer.RunServer)
	}

	// any transport returning stops the others
	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errs:
	}

	s.Shutdown()
	wg.Wait()
	close(errs)
	for err := range errs {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// addrs returns the bound listener addresses, HTTP first.
func (s *server) addrs() (httpAddr, grpcAddr net.Addr) {
	if s.httpServer != nil {
		httpAddr = s.httpServer.listener.Addr()
	}
	if s.gRPCServer != nil {
		grpcAddr = s.gRPCServer.listener.Addr()
	}
	return httpAddr, grpcAddr
}
