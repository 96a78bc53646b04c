package service

import (
	"github.com/vnshop/identity/internal/adapter"
	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/store"
)

type Services struct {
	AuthService     AuthService
	RegisterService RegisterService
}

func NewServices(storages store.Storages, providers adapter.ProviderClient, dispatcher ConfirmationDispatcher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	allocator := NewUsernameAllocator(storages.UserDirectory, cfg.Auth.UsernameMaxAttempts, logger)
	resolver := NewIdentityResolver(storages.UserDirectory, allocator, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserDirectory, resolver, providers, cfg.Auth, logger),
		RegisterService: NewRegisterService(storages.UserDirectory, allocator, dispatcher, cfg.App.FrontendURL, logger),
	}
}
