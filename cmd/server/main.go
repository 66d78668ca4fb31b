package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fundraiser/internal/adapter"
	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/crypto"
	"github.com/MKhiriev/go-fundraiser/internal/handler"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/server"
	"github.com/MKhiriev/go-fundraiser/internal/service"
	"github.com/MKhiriev/go-fundraiser/internal/store"
	"github.com/MKhiriev/go-fundraiser/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-fundraiser-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	codec := crypto.NewCodec(cfg.App.BcryptCost, cfg.App.ActivationKey)
	storages := store.NewStorages(db, codec, log)

	adapters, err := adapter.NewAdapters(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	services, err := service.NewServices(storages, adapters, codec, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
