package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/prospecta/backend/internal/pkg/config"
	"github.com/prospecta/backend/internal/pkg/database"
	"github.com/prospecta/backend/internal/pkg/health"
	"github.com/prospecta/backend/internal/pkg/logger"
	"github.com/prospecta/backend/internal/pkg/middleware"
	nsqpkg "github.com/prospecta/backend/internal/pkg/nsq"
	"github.com/prospecta/backend/internal/pkg/server"
	"github.com/prospecta/backend/services/prospection/gateway"
	"github.com/prospecta/backend/services/prospection/handler"
	httpHandler "github.com/prospecta/backend/services/prospection/handler/http"
	"github.com/prospecta/backend/services/prospection/repository"
	"github.com/prospecta/backend/services/prospection/usecase"
)

func main() {
	appName := "prospection-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/prospection.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer; the service runs without it when no daemon
	// address is configured
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	} else {
		zapLogger.Warn("NSQ address not configured, event publishing disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(postgresClient.GetDB())
	prospectionRepo := repository.NewProspectionRepo(postgresClient.GetDB())
	otpRepo := repository.NewOTPRepo(redisClient, configs)

	// Initialize gateway
	prospectionGW := gateway.NewProspectionGW(producer)

	// Initialize usecase
	prospectionUC := usecase.NewProspectionUC(userRepo, prospectionRepo, otpRepo, prospectionGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(prospectionUC)
	profileHandler := httpHandler.NewProfileHandler(prospectionUC)
	adminHandler := httpHandler.NewAdminHandler(prospectionUC)
	h := handler.NewHandler(authHandler, profileHandler, adminHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresHealthChecker(postgresClient),
		health.NewRedisHealthChecker(redisClient),
	)

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
