// Package main is the entry point for the autonomo-grpc-api application.
// It sets up and starts both a gRPC server and a gRPC-Gateway server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/dclimber/autonomo/internal/api/grpc/v1"
	"github.com/dclimber/autonomo/internal/app"
	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/infrastructure/messaging"
	"github.com/dclimber/autonomo/internal/infrastructure/persistence"
	"github.com/dclimber/autonomo/internal/pkg/config"
	"github.com/dclimber/autonomo/internal/pkg/logger"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
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
		configPath = "../../configs/grpc-app.yaml"
	}

	grpcConfig, err := config.InitializeGrpcConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&grpcConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(grpcConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.producer.Close(); err != nil {
			log.Error("Failed to close event producer: ", err)
		}
	}()

	// Start servers with graceful shutdown
	return startServersWithGracefulShutdown(grpcConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	grpcServers *grpcServers
	producer    *messaging.EventProducer
}

type grpcServers struct {
	rides    *v1.RideServer
	vehicles *v1.VehicleServer
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.GrpcConfig, log logger.Logger) (*appDependencies, error) {
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

	// Initialize gRPC servers
	servers, err := initializeGRPCServers(rideRepo, vehicleRepo, producer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gRPC servers: %w", err)
	}

	return &appDependencies{
		grpcServers: servers,
		producer:    producer,
	}, nil
}

// initializeGRPCServers wires the application services into gRPC servers
func initializeGRPCServers(
	rideRepo rides.Repository,
	vehicleRepo vehicles.Repository,
	producer *messaging.EventProducer,
	log logger.Logger,
) (*grpcServers, error) {
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

	rideServer, err := v1.NewRideServer(rideCommand, rideQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride server: %w", err)
	}

	vehicleServer, err := v1.NewVehicleServer(vehicleCommand, vehicleQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle server: %w", err)
	}

	return &grpcServers{rides: rideServer, vehicles: vehicleServer}, nil
}

// startServersWithGracefulShutdown starts both gRPC and gateway servers with graceful shutdown
func startServersWithGracefulShutdown(cfg *config.GrpcConfig, deps *appDependencies, log logger.Logger) error {
	// Create gRPC server
	grpcServer := grpc.NewServer()

	// Register services
	v1.RegisterRideServer(grpcServer, deps.grpcServers.rides)
	v1.RegisterVehicleServer(grpcServer, deps.grpcServers.vehicles)

	// Enable reflection for grpcurl
	reflection.Register(grpcServer)

	// Start gRPC server
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	grpcErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting on port ", cfg.Port)
		log.Info("Use 'grpcurl -plaintext localhost:", cfg.Port, " list' to see available services")
		if err := grpcServer.Serve(lis); err != nil {
			grpcErrors <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	// Setup gRPC-Gateway
	gwServer, err := setupGatewayServer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to setup gateway server: %w", err)
	}

	gatewayErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC-Gateway server starting on port ", cfg.GatewayPort)
		log.Info("Gateway available at: http://localhost:", cfg.GatewayPort, v1.GatewayBasePath)
		if err := gwServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			gatewayErrors <- fmt.Errorf("gateway server failed: %w", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until error or signal
	select {
	case err := <-grpcErrors:
		return err
	case err := <-gatewayErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down servers...")

	// Shutdown gateway
	if err := gwServer.Shutdown(ctx); err != nil {
		log.Error("Gateway shutdown error: ", err)
	}

	// Graceful stop gRPC
	grpcServer.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}

// setupGatewayServer creates and configures the gRPC-Gateway HTTP server
func setupGatewayServer(cfg *config.GrpcConfig, log logger.Logger) (*http.Server, error) {
	gwmux := runtime.NewServeMux()
	gatewayTarget := "0.0.0.0:" + cfg.Port

	conn, err := grpc.NewClient(gatewayTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial gRPC server: %w", err)
	}

	// Register gateway handlers
	if err := v1.RegisterRidesGateway(gwmux, conn); err != nil {
		return nil, fmt.Errorf("failed to register rides gateway: %w", err)
	}
	if err := v1.RegisterVehiclesGateway(gwmux, conn); err != nil {
		return nil, fmt.Errorf("failed to register vehicles gateway: %w", err)
	}

	log.Info("Gateway handlers registered successfully")

	return &http.Server{
		Addr:              ":" + cfg.GatewayPort,
		Handler:           gwmux,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}, nil
}
