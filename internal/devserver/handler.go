package devserver

import (
	"github.com/MKhiriev/go-skladischer/internal/config"
	"github.com/MKhiriev/go-skladischer/internal/logger"
)

type Handler struct {
	inventory *Inventory
	tokens    config.ServerApp

	logger *logger.Logger
}

func NewHandler(inventory *Inventory, tokens config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		inventory: inventory,
		tokens:    tokens,
		logger:    logger,
	}
}
