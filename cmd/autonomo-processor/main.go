// Package main is the entry point for the autonomo-processor application.
// It consumes the ride and vehicle event streams, folds them into the read
// models and runs the ride/vehicle coordination policy.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dclimber/autonomo/internal/infrastructure/messaging"
	"github.com/dclimber/autonomo/internal/infrastructure/persistence"
	"github.com/dclimber/autonomo/internal/pkg/config"
	"github.com/dclimber/autonomo/internal/pkg/logger"
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
		configPath = "../../configs/processor.yaml"
	}

	processorConfig, err := config.InitializeProcessorConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&processorConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize database
	db, err := persistence.NewDBConnection(processorConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.MigrateReadModels(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	rideRepo, err := persistence.NewGormRideRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create ride repository: %w", err)
	}

	vehicleRepo, err := persistence.NewGormVehicleRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create vehicle repository: %w", err)
	}

	// Initialize stream readers and the event producer for saga commands
	rideReader := messaging.NewRideEventsReader(processorConfig.Kafka)
	vehicleReader := messaging.NewVehicleEventsReader(processorConfig.Kafka)
	producer := messaging.NewEventProducer(processorConfig.Kafka, log)

	defer func() {
		if err := rideReader.Close(); err != nil {
			log.Error("Failed to close ride events reader: ", err)
		}
		if err := vehicleReader.Close(); err != nil {
			log.Error("Failed to close vehicle events reader: ", err)
		}
		if err := producer.Close(); err != nil {
			log.Error("Failed to close event producer: ", err)
		}
	}()

	processor := messaging.NewProcessor(rideReader, vehicleReader, rideRepo, vehicleRepo, producer, log)

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Stream processor starting, consuming topics ",
		processorConfig.Kafka.RideEventsTopic, " and ", processorConfig.Kafka.VehicleEventsTopic)

	if err := processor.Run(ctx); err != nil {
		return fmt.Errorf("stream processor failed: %w", err)
	}

	log.Info("Stream processor stopped gracefully")
	return nil
}
