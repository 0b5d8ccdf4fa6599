package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/config"
	"github.com/limpia-app/dispatch/internal/pkg/database"
	"github.com/limpia-app/dispatch/internal/pkg/health"
	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/middleware"
	"github.com/limpia-app/dispatch/internal/pkg/nats"
	nrpkg "github.com/limpia-app/dispatch/internal/pkg/newrelic"
	"github.com/limpia-app/dispatch/internal/pkg/server"
	natsgw "github.com/limpia-app/dispatch/services/dispatch/gateway"
	geogw "github.com/limpia-app/dispatch/services/dispatch/gateway/geo"
	"github.com/limpia-app/dispatch/services/dispatch/handler"
	"github.com/limpia-app/dispatch/services/dispatch/repository"
	"github.com/limpia-app/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client for the record store change feed
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(configs, postgresClient.GetDB())
	locationRepo := repository.NewLocationRepository(configs, redisClient)

	// Initialize gateways
	geoClient := geogw.NewClient(configs.Geo)
	dispatchGW := natsgw.NewDispatchGW(natsClient)

	// Initialize usecase
	boardUC, err := usecase.NewBoardUC(configs, bookingRepo, locationRepo, dispatchGW, geoClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize dispatch board", logger.Err(err))
	}

	// Warm the board before accepting traffic
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := boardUC.Load(loadCtx); err != nil {
		cancelLoad()
		zapLogger.Fatal("Failed to load dispatch board", logger.Err(err))
	}
	cancelLoad()

	// Initialize handlers
	dispatchHandler := handler.NewHandler(boardUC, natsClient, configs)

	// Initialize NATS consumers
	if err := dispatchHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Initialize health service
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	dispatchHandler.RegisterRoutes(e, apiKeyMiddleware)

	// Register component teardown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		dispatchHandler.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Start server and block until a shutdown signal arrives
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown error", logger.Err(err))
	}
}
