package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/client"
	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/internal/tui"
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

	log := logger.NewClientLogger("go-family-tree-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
