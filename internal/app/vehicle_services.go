package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/pkg/logger"
)

// vehicleCommandService implements the vehicles.CommandService interface
type vehicleCommandService struct {
	vehicleRepo vehicles.Repository
	publisher   vehicles.EventPublisher
	logger      logger.Logger
}

// NewVehicleCommandService creates a new vehicleCommandService instance
func NewVehicleCommandService(
	vehicleRepo vehicles.Repository,
	publisher vehicles.EventPublisher,
	logger logger.Logger,
) (vehicles.CommandService, error) {
	return &vehicleCommandService{
		vehicleRepo: vehicleRepo,
		publisher:   publisher,
		logger:      logger,
	}, nil
}

// Execute decides a vehicle command against the current read-model state and
// publishes the resulting events. It returns the VIN of the affected vehicle.
func (s *vehicleCommandService) Execute(ctx context.Context, command vehicles.Command) (value.Vin, error) {
	vehicle, err := s.vehicleRepo.GetByVin(ctx, command.Target())
	if err != nil {
		if !errors.Is(err, vehicles.ErrNotFound) {
			return "", err
		}
		vehicle = vehicles.InitialVehicleState{}
	}

	events, err := command.Decide(vehicle)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return "", fmt.Errorf("command produced no events")
	}

	if err := s.publisher.PublishVehicleEvents(ctx, events); err != nil {
		return "", err
	}

	vin := events[0].VehicleVin()
	s.logger.Info("Executed vehicle command, published ", len(events), " event(s) for vehicle ", vin.String())
	return vin, nil
}

// vehicleQueryService implements the vehicles.QueryService interface
type vehicleQueryService struct {
	vehicleRepo vehicles.Repository
	logger      logger.Logger
}

// NewVehicleQueryService creates a new vehicleQueryService instance
func NewVehicleQueryService(vehicleRepo vehicles.Repository, logger logger.Logger) (vehicles.QueryService, error) {
	return &vehicleQueryService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}, nil
}

// GetByVin fetches the current state of a vehicle from the read model.
func (s *vehicleQueryService) GetByVin(ctx context.Context, vin value.Vin) (vehicles.Vehicle, error) {
	return s.vehicleRepo.GetByVin(ctx, vin)
}

// ListByOwner fetches all vehicles contributed by an owner.
func (s *vehicleQueryService) ListByOwner(ctx context.Context, owner value.UserID) ([]vehicles.Vehicle, error) {
	return s.vehicleRepo.ListByOwner(ctx, owner)
}

// ListAvailable fetches all vehicles currently available for rides.
func (s *vehicleQueryService) ListAvailable(ctx context.Context) ([]vehicles.Vehicle, error) {
	return s.vehicleRepo.ListAvailable(ctx)
}
