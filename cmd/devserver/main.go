package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-skladischer/internal/config"
	"github.com/MKhiriev/go-skladischer/internal/devserver"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("skladischer-devserver")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("issuer", cfg.App.TokenIssuer).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	handler := devserver.NewHandler(devserver.NewInventory(), cfg.App, log)

	srv, err := devserver.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
