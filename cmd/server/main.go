package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kita-inventory/internal/adapter"
	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/handler"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/metrics"
	"github.com/MKhiriev/go-kita-inventory/internal/server"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/workers"
	"github.com/MKhiriev/go-kita-inventory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kita-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions := session.NewManager(storages.Sessions, cfg.Session, log,
		session.WithTrustProxy(cfg.Server.TrustProxy),
		session.WithRotateHook(metrics.SessionRotations.Inc),
	)
	authManager := auth.NewManager(services, storages, sessions, cfg.Auth, log)

	mailer, err := adapter.NewMailer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	handlers, err := handler.NewHandlers(handler.Dependencies{
		Services: services,
		Storages: storages,
		Sessions: sessions,
		Auth:     authManager,
		Mailer:   mailer,
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	maintenance := workers.NewMaintenance(services, storages.Sessions, cfg.Workers.MaintenanceInterval, cfg.Session.Lifetime, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(maintenance), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
