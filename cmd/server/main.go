package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vnshop/identity/internal/adapter"
	"github.com/vnshop/identity/internal/config"
	myHTTP "github.com/vnshop/identity/internal/handler/http"
	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/server"
	"github.com/vnshop/identity/internal/service"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const workersShutdownTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("identity-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	providers := adapter.NewProviderClient(cfg.Providers)
	captcha := adapter.NewCaptchaVerifier(cfg.Captcha)
	mailSender := adapter.NewMailSender(cfg.Mail, log)

	mailDispatcher := workers.NewMailDispatcher(mailSender, cfg.Mail.QueueSize, log)
	backgroundWorkers := workers.NewWorkers(mailDispatcher)
	backgroundWorkers.Run()

	services := service.NewServices(*storages, providers, mailDispatcher, *cfg, log)

	handler := myHTTP.NewHandler(services, captcha, cfg.App.FrontendURL, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// the transport is down, drain the mail queue before exiting
	shutdownCtx, cancel := context.WithTimeout(context.Background(), workersShutdownTimeout)
	defer cancel()
	backgroundWorkers.Shutdown(shutdownCtx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
