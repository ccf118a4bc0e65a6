package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hlh-health/facility-registry/internal/adapters/cache"
	"github.com/hlh-health/facility-registry/internal/api/handlers"
	"github.com/hlh-health/facility-registry/internal/api/routes"
	"github.com/hlh-health/facility-registry/internal/application/services"
	"github.com/hlh-health/facility-registry/internal/infrastructure/clients/cmsdata"
	"github.com/hlh-health/facility-registry/internal/infrastructure/clients/nppes"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
	"github.com/hlh-health/facility-registry/pkg/config"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Collaborator clients
	registryClient := nppes.NewClient(cfg.Registry.BaseURL, cfg.Registry.Timeout).WithMetrics(metrics)
	datasetClient := cmsdata.NewClient(cfg.Dataset.URL, cfg.Dataset.Timeout)
	snapshotStore := cache.NewSnapshotStore()

	// Application services
	classifier := services.NewClassificationService()
	matcher := services.NewMatchingService()
	facilityService := services.NewFacilityService(registryClient, classifier)
	relatedService := services.NewRelatedService(registryClient, classifier, matcher)
	searchService := services.NewDatasetSearchService(datasetClient, snapshotStore, matcher).WithMetrics(metrics)
	profileService := services.NewProfileService(facilityService, relatedService)

	// Optionally warm the dataset snapshot in the background so the first
	// search request does not pay the download cost.
	if cfg.Dataset.WarmOnStart {
		warmer := services.NewSnapshotWarmingService(datasetClient, snapshotStore)
		go warmer.Warm(ctx)
	}

	facilityHandler := handlers.NewFacilityHandler(facilityService, relatedService, profileService)
	ccnHandler := handlers.NewCCNHandler(searchService)

	router := routes.NewRouter(facilityHandler, ccnHandler, metrics)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
