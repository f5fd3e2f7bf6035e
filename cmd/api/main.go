package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finhealth/internal/config"
	"finhealth/internal/database"
	"finhealth/internal/engine"
	"finhealth/internal/logger"
	"finhealth/internal/router"
	"finhealth/internal/scheduler"
	"finhealth/internal/services"
	"finhealth/internal/validator"
)

// @title           finhealth API
// @version         1.0
// @description     Personal financial health engine: cash flow, net worth, avalanche debt plan, goal feasibility, projections and a 0-100 score.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger from the environment before config so load warnings are visible
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	cache := services.NewSnapshotCache(appConfig.CacheSize, appConfig.CacheTTL)
	svc := router.NewServices(dbManager.DB(), engine.New(appConfig.Policy), cache)

	// Background jobs
	jobs, err := scheduler.New(svc.Token, appConfig.PurgeSchedule)
	if err != nil {
		return err
	}
	jobs.Start()

	if appConfig.ServiceAPIKey == "" {
		log.Warn("SERVICE_API_KEY is not set; internal endpoints are disabled")
	}

	server := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router.New(svc, router.Options{ServiceAPIKey: appConfig.ServiceAPIKey}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting finhealth server on port %s (driver %s)", appConfig.Port, appConfig.DBDriver)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := jobs.Stop(shutdownCtx); err != nil {
		log.Warnw("scheduler did not stop cleanly", "error", err)
	}
	return server.Shutdown(shutdownCtx)
}
