// cmd/autonomo-rest-api/main.go
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

	v1 "github.com/dclimber/autonomo/internal/api/rest/v1"
	"github.com/dclimber/autonomo/internal/app"
	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/infrastructure/messaging"
	"github.com/dclimber/autonomo/internal/infrastructure/persistence"
	"github.com/dclimber/autonomo/internal/pkg/config"
	"github.com/dclimber/autonomo/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.producer.Close(); err != nil {
			log.Error("Failed to close event producer: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
	producer *messaging.EventProducer
}

type appServices struct {
	rideCommand    rides.CommandService
	rideQuery      rides.QueryService
	vehicleCommand vehicles.CommandService
	vehicleQuery   vehicles.QueryService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.MigrateReadModels(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	rideRepo, err := persistence.NewGormRideRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride repository: %w", err)
	}

	vehicleRepo, err := persistence.NewGormVehicleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle repository: %w", err)
	}

	// Initialize event producer
	producer := messaging.NewEventProducer(cfg.Kafka, log)

	// Initialize services
	services, err := initializeApplicationServices(rideRepo, vehicleRepo, producer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
		producer: producer,
	}, nil
}

// initializeApplicationServices wires the command and query services
func initializeApplicationServices(
	rideRepo rides.Repository,
	vehicleRepo vehicles.Repository,
	producer *messaging.EventProducer,
	log logger.Logger,
) (*appServices, error) {
	rideCommand, err := app.NewRideCommandService(rideRepo, producer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride command service: %w", err)
	}

	rideQuery, err := app.NewRideQueryService(rideRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride query service: %w", err)
	}

	vehicleCommand, err := app.NewVehicleCommandService(vehicleRepo, producer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle command service: %w", err)
	}

	vehicleQuery, err := app.NewVehicleQueryService(vehicleRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle query service: %w", err)
	}

	return &appServices{
		rideCommand:    rideCommand,
		rideQuery:      rideQuery,
		vehicleCommand: vehicleCommand,
		vehicleQuery:   vehicleQuery,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.rideCommand,
		deps.services.rideQuery,
		deps.services.vehicleCommand,
		deps.services.vehicleQuery,
	)

	// Serve OpenAPI spec
	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/autonomo.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
