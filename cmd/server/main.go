package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/handler"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/server"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-family-tree-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildInfo.IsRelease() && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("ai_endpoint", cfg.AI.Endpoint).
		Bool("seed_demo_data", cfg.App.SeedDemoData).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	aiClient := adapter.NewAIClient(cfg.AI, log)

	srv, err := newServer(ctx, cfg, storages, aiClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

// newServer wires services and handlers on top of the opened storages and
// seeds demo data when enabled.
func newServer(ctx context.Context, cfg *config.StructuredConfig, storages *store.Storages, aiClient adapter.AIClient, log *logger.Logger) (server.Server, error) {
	services, err := service.NewServices(storages, aiClient, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	if cfg.App.SeedDemoData {
		if err = services.SeedService.SeedDemoData(ctx); err != nil {
			return nil, fmt.Errorf("error seeding demo data: %w", err)
		}
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	return server.NewServer(handlers, cfg.Server, log)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
