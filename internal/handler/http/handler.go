// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and CORS concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/service"
)

type Handler struct {
	services *service.Services
	page     config.FederatedPage

	logger *logger.Logger
}

// NewHandler wires the route handlers to the service layer. The federated
// page settings are rendered into the dummy sign-in page.
func NewHandler(services *service.Services, cfg config.Federated, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		page:     cfg.Page,
		logger:   logger,
	}
}
