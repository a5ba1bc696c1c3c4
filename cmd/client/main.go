package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-skladischer/internal/adapter"
	"github.com/MKhiriev/go-skladischer/internal/client"
	"github.com/MKhiriev/go-skladischer/internal/config"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/service"
	"github.com/MKhiriev/go-skladischer/internal/session"
	"github.com/MKhiriev/go-skladischer/internal/tui"
	"github.com/MKhiriev/go-skladischer/internal/workers"
	"github.com/MKhiriev/go-skladischer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, logFile := logger.NewClientLogger("skladischer-client", cfg.Log.File)
	defer logFile.Close()

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Info().Str("version", buildInfo.Version()).Str("commit", buildInfo.Commit()).Str("server", cfg.Adapter.HTTPAddress).Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, session.NewStore(), cfg.Workers.RefreshInterval, log)
	ui := tui.New(services.State, buildInfo, log)

	app, err := client.NewApp(ui, workers.NewWorkers(services.RefreshJob), services.Close, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
