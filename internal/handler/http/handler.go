package http

import (
	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	serverCfg    config.Server
	cookieSecure bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validators.NewStructValidator(),
		serverCfg:    cfg.Server,
		cookieSecure: cfg.App.CookieSecure,
		logger:       logger,
	}
}
