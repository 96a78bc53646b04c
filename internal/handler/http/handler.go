// Package http implements the HTTP transport layer of the identity
// service. It provides middleware, route handlers, and error mapping for
// the REST API. Authentication, logging and tracing concerns are handled
// at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/vnshop/identity/internal/adapter"
	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/service"
)

type Handler struct {
	services *service.Services
	captcha  adapter.CaptchaVerifier

	// frontendURL is the redirect target after email verification.
	frontendURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, captcha adapter.CaptchaVerifier, frontendURL string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		captcha:     captcha,
		frontendURL: frontendURL,
		logger:      logger,
	}
}
