package main

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/bookvault/bookvault/internal/adapter"
	"github.com/bookvault/bookvault/internal/config"
	httphandler "github.com/bookvault/bookvault/internal/handler/http"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/server"
	"github.com/bookvault/bookvault/internal/service"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("bookvault-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg.App)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	verifier := adapter.NewGoogleVerifier(cfg.Federated, log)
	services := service.NewServices(repositories, verifier, cfg.Auth, log)
	handler := httphandler.NewHandler(services, cfg.Federated, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newLogger picks the Sentry-mirrored logger in production when a DSN is
// configured, plain stdout otherwise.
func newLogger(cfg config.App) *logger.Logger {
	if !cfg.IsProduction() || cfg.SentryDSN == "" {
		return logger.NewLogger("bookvault-server")
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.Version,
		AttachStacktrace: true,
	})
	if err != nil {
		log := logger.NewLogger("bookvault-server")
		log.Err(err).Msg("failed to initialize Sentry, using stdout only")
		return log
	}

	return logger.NewLoggerWithSentry("bookvault-server")
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
