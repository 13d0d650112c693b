package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/an-ant0/digital-waste-management/internal/pkg/config"
	"github.com/an-ant0/digital-waste-management/internal/pkg/database"
	"github.com/an-ant0/digital-waste-management/internal/pkg/health"
	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/middleware"
	natspkg "github.com/an-ant0/digital-waste-management/internal/pkg/nats"
	"github.com/an-ant0/digital-waste-management/internal/pkg/server"
	wspkg "github.com/an-ant0/digital-waste-management/internal/pkg/websocket"
	"github.com/an-ant0/digital-waste-management/services/fleet/gateway"
	"github.com/an-ant0/digital-waste-management/services/fleet/handler"
	httpHandler "github.com/an-ant0/digital-waste-management/services/fleet/handler/http"
	natsHandler "github.com/an-ant0/digital-waste-management/services/fleet/handler/nats"
	wsHandler "github.com/an-ant0/digital-waste-management/services/fleet/handler/websocket"
	"github.com/an-ant0/digital-waste-management/services/fleet/repository"
	"github.com/an-ant0/digital-waste-management/services/fleet/usecase"
)

func main() {
	appName := "fleet-service"
	configPath := os.Getenv("CONFIG_PATH")
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

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	truckRepo := repository.NewTruckRepo(postgresClient.GetDB())
	locationRepo := repository.NewLocationRepo(redisClient)

	// Initialize gateway
	truckGW := gateway.NewTruckGW(natsClient)

	// Initialize usecase
	truckUC := usecase.NewTruckUC(configs, truckRepo, locationRepo, truckGW)

	// Handlers for HTTP
	truckHTTPHandler := httpHandler.NewTruckHandler(truckUC)
	authHTTPHandler := httpHandler.NewAuthHandler(truckUC)

	// Handlers for WebSocket
	manager := wspkg.NewManager(configs.JWT)
	fleetWSHandler := wsHandler.NewWebSocketHandler(manager)

	// Handlers for NATS
	fleetNatsHandler := natsHandler.NewNatsHandler(natsClient, fleetWSHandler)

	// Initialize handlers
	h := handler.NewHandler(truckHTTPHandler, authHTTPHandler, fleetWSHandler, fleetNatsHandler, configs)

	// Start consuming fleet events
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Register cleanup for components that outlive the HTTP drain
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		fleetNatsHandler.Close()
		return nil
	})

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
