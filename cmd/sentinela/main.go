package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/config"
	"github.com/nmfalves/sentinela/internal/pkg/database"
	"github.com/nmfalves/sentinela/internal/pkg/health"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/middleware"
	nsqpkg "github.com/nmfalves/sentinela/internal/pkg/nsq"
	"github.com/nmfalves/sentinela/internal/pkg/scheduler"
	"github.com/nmfalves/sentinela/internal/pkg/server"
	operativesHandler "github.com/nmfalves/sentinela/services/operatives/handler"
	operativesHTTP "github.com/nmfalves/sentinela/services/operatives/handler/http"
	operativesRepo "github.com/nmfalves/sentinela/services/operatives/repository"
	operativesUC "github.com/nmfalves/sentinela/services/operatives/usecase"
	statsHandler "github.com/nmfalves/sentinela/services/stats/handler"
	statsHTTP "github.com/nmfalves/sentinela/services/stats/handler/http"
	statsUC "github.com/nmfalves/sentinela/services/stats/usecase"
	trackingGateway "github.com/nmfalves/sentinela/services/tracking/gateway"
	trackingHandler "github.com/nmfalves/sentinela/services/tracking/handler"
	trackingHTTP "github.com/nmfalves/sentinela/services/tracking/handler/http"
	trackingNSQ "github.com/nmfalves/sentinela/services/tracking/handler/nsq"
	trackingRepo "github.com/nmfalves/sentinela/services/tracking/repository"
	trackingUC "github.com/nmfalves/sentinela/services/tracking/usecase"
)

func main() {
	appName := "sentinela"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobal(appLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize repositories
	operativeRepo := operativesRepo.NewOperativeRepo(postgresClient.GetDB())
	sampleRepo := trackingRepo.NewSampleRepo(postgresClient.GetDB())
	liveRepo := trackingRepo.NewLiveRepo(redisClient,
		time.Duration(configs.Tracking.LiveTTLMinutes)*time.Minute)

	// Initialize gateway
	trackingGW := trackingGateway.NewTrackingGW(producer)

	// Initialize use cases
	operativeUC := operativesUC.NewOperativeUC(operativeRepo, configs)
	trackUC := trackingUC.NewTrackingUC(sampleRepo, liveRepo, trackingGW, operativeRepo, configs)
	statisticsUC := statsUC.NewStatsUC(operativeRepo, sampleRepo)

	// Initialize HTTP handlers
	authHandler := operativesHTTP.NewAuthHandler(operativeUC)
	operativeHandler := operativesHTTP.NewOperativeHandler(operativeUC)
	trackHandler := trackingHTTP.NewTrackingHandler(trackUC)
	statisticsHandler := statsHTTP.NewStatsHandler(statisticsUC)

	// Initialize NSQ consumer for live cache updates
	sampleConsumer, err := trackingNSQ.NewSampleEventConsumer(configs.NSQ.Address, trackUC)
	if err != nil {
		logger.Fatal("Failed to initialize NSQ consumer", logger.Err(err))
	}
	defer sampleConsumer.Stop()

	// Initialize background jobs
	jobs := scheduler.New()
	janitorInterval := time.Duration(configs.Tracking.JanitorSeconds) * time.Second
	if err := jobs.AddEvery("live-position-janitor", janitorInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), janitorInterval)
		defer cancel()
		if err := trackUC.RetireStalePositions(ctx); err != nil {
			logger.Error("Live position janitor failed", logger.Err(err))
		}
	}); err != nil {
		logger.Fatal("Failed to schedule janitor", logger.Err(err))
	}
	refreshInterval := time.Duration(configs.Tracking.RefreshSeconds) * time.Second
	if err := jobs.AddEvery("live-snapshot-refresh", refreshInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
		defer cancel()
		// Reconciles the cache with the active-sample table, covering
		// events lost while the consumer was down.
		if _, err := trackUC.ListLivePositions(ctx); err != nil {
			logger.Error("Live snapshot refresh failed", logger.Err(err))
		}
	}); err != nil {
		logger.Fatal("Failed to schedule snapshot refresh", logger.Err(err))
	}
	jobs.Start()
	defer jobs.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	operativesHandler.NewHandler(authHandler, operativeHandler, configs).RegisterRoutes(e)
	trackingHandler.NewHandler(trackHandler, configs).RegisterRoutes(e)
	statsHandler.NewHandler(statisticsHandler, configs).RegisterRoutes(e)

	// Start server and block until shutdown
	if err := server.NewGracefulServer(e, configs.Server.Port).Start(); err != nil {
		logger.Fatal("Server terminated", logger.Err(err))
	}
}
