package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/handler"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/server"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("secure-storaged")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("secret_keys", cfg.SecretKeys.Backend).
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	m := metrics.NewMetrics()

	services, err := service.NewServices(ctx, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer func() {
		if err := services.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	handlers, err := handler.NewHandlers(services.ItemStore, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ws := workers.NewWorkers(services, cfg.Workers, m, log)
	ws.Start(ctx)
	defer ws.Stop()

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
