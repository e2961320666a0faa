package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/pkg/logger"
)

// rideCommandService implements the rides.CommandService interface
type rideCommandService struct {
	rideRepo  rides.Repository
	publisher rides.EventPublisher
	logger    logger.Logger
}

// NewRideCommandService creates a new rideCommandService instance
func NewRideCommandService(
	rideRepo rides.Repository,
	publisher rides.EventPublisher,
	logger logger.Logger,
) (rides.CommandService, error) {
	return &rideCommandService{
		rideRepo:  rideRepo,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Execute decides a ride command against the current read-model state and
// publishes the resulting events. It returns the id of the affected ride.
func (s *rideCommandService) Execute(ctx context.Context, command rides.Command) (value.RideID, error) {
	state, err := s.currentState(ctx, command)
	if err != nil {
		return value.RideID{}, err
	}

	events, err := command.Decide(state)
	if err != nil {
		return value.RideID{}, err
	}
	if len(events) == 0 {
		return value.RideID{}, fmt.Errorf("command produced no events")
	}

	if err := s.publisher.PublishRideEvents(ctx, events); err != nil {
		return value.RideID{}, err
	}

	rideID := events[0].RideID()
	s.logger.Info("Executed ride command, published ", len(events), " event(s) for ride ", rideID.String())
	return rideID, nil
}

func (s *rideCommandService) currentState(ctx context.Context, command rides.Command) (rides.Ride, error) {
	target, ok := command.Target()
	if !ok {
		return rides.InitialRideState{}, nil
	}

	ride, err := s.rideRepo.GetByID(ctx, target)
	if err != nil {
		if errors.Is(err, rides.ErrNotFound) {
			return rides.InitialRideState{}, nil
		}
		return nil, err
	}
	return ride, nil
}

// rideQueryService implements the rides.QueryService interface
type rideQueryService struct {
	rideRepo rides.Repository
	logger   logger.Logger
}

// NewRideQueryService creates a new rideQueryService instance
func NewRideQueryService(rideRepo rides.Repository, logger logger.Logger) (rides.QueryService, error) {
	return &rideQueryService{
		rideRepo: rideRepo,
		logger:   logger,
	}, nil
}

// GetByID fetches the current state of a ride from the read model.
func (s *rideQueryService) GetByID(ctx context.Context, id value.RideID) (rides.Ride, error) {
	return s.rideRepo.GetByID(ctx, id)
}
