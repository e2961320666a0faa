package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/saga"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/pkg/logger"
	"github.com/dclimber/autonomo/internal/transfer"

	"github.com/segmentio/kafka-go"
)

// Processor consumes both event streams and keeps the read models current.
// Ride events are folded into the ride read model and handed to the saga,
// whose vehicle commands are decided against the vehicle read model and
// published back to the vehicle events topic. Vehicle events are folded into
// the vehicle read model; a vehicle that evolves back to its initial state is
// removed from it.
type Processor struct {
	rideReader    MessageReader
	vehicleReader MessageReader
	rideRepo      rides.Repository
	vehicleRepo   vehicles.Repository
	publisher     vehicles.EventPublisher
	logger        logger.Logger
}

// NewProcessor wires a Processor from its collaborators.
func NewProcessor(
	rideReader MessageReader,
	vehicleReader MessageReader,
	rideRepo rides.Repository,
	vehicleRepo vehicles.Repository,
	publisher vehicles.EventPublisher,
	logger logger.Logger,
) *Processor {
	return &Processor{
		rideReader:    rideReader,
		vehicleReader: vehicleReader,
		rideRepo:      rideRepo,
		vehicleRepo:   vehicleRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// Run consumes both streams until the context is cancelled or a stream fails.
func (p *Processor) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- p.consume(ctx, p.rideReader, p.ApplyRideEvent)
	}()
	go func() {
		errCh <- p.consume(ctx, p.vehicleReader, p.ApplyVehicleEvent)
	}()

	err := <-errCh
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (p *Processor) consume(ctx context.Context, reader MessageReader, apply func(context.Context, []byte) error) error {
	for {
		message, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		if err := apply(ctx, message.Value); err != nil {
			return err
		}

		if err := reader.CommitMessages(ctx, message); err != nil {
			return fmt.Errorf("failed to commit message: %w", err)
		}
	}
}

// ApplyRideEvent folds one ride event into the ride read model and runs the
// saga for its vehicle-side consequences.
func (p *Processor) ApplyRideEvent(ctx context.Context, data []byte) error {
	event, err := transfer.DecodeRideEvent(data)
	if err != nil {
		return fmt.Errorf("failed to decode ride event: %w", err)
	}

	ride, err := p.rideRepo.GetByID(ctx, event.RideID())
	if err != nil {
		if !errors.Is(err, rides.ErrNotFound) {
			return err
		}
		ride = rides.InitialRideState{}
	}

	next := ride.Evolve(event)
	if _, initial := next.(rides.InitialRideState); !initial {
		if err := p.rideRepo.Save(ctx, next); err != nil {
			return err
		}
	}

	return p.runSaga(ctx, event)
}

func (p *Processor) runSaga(ctx context.Context, event rides.Event) error {
	for _, command := range saga.React(event) {
		vehicle, err := p.vehicleRepo.GetByVin(ctx, command.Target())
		if err != nil {
			if !errors.Is(err, vehicles.ErrNotFound) {
				return err
			}
			vehicle = vehicles.InitialVehicleState{}
		}

		events, err := command.Decide(vehicle)
		if err != nil {
			// A rejected saga command is not fatal to the stream.
			p.logger.Warn("Saga command rejected for vehicle ", command.Target().String(), ": ", err)
			continue
		}

		if err := p.publisher.PublishVehicleEvents(ctx, events); err != nil {
			return err
		}
	}
	return nil
}

// ApplyVehicleEvent folds one vehicle event into the vehicle read model.
func (p *Processor) ApplyVehicleEvent(ctx context.Context, data []byte) error {
	event, err := transfer.DecodeVehicleEvent(data)
	if err != nil {
		return fmt.Errorf("failed to decode vehicle event: %w", err)
	}

	vehicle, err := p.vehicleRepo.GetByVin(ctx, event.VehicleVin())
	if err != nil {
		if !errors.Is(err, vehicles.ErrNotFound) {
			return err
		}
		vehicle = vehicles.InitialVehicleState{}
	}

	next := vehicle.Evolve(event)
	if _, initial := next.(vehicles.InitialVehicleState); initial {
		// Removed vehicles drop out of the read model entirely.
		if _, existed := vehicle.(vehicles.InitialVehicleState); existed {
			return nil
		}
		return p.vehicleRepo.DeleteByVin(ctx, event.VehicleVin())
	}
	return p.vehicleRepo.Save(ctx, next)
}

// kafka.Reader satisfies MessageReader.
var _ MessageReader = (*kafka.Reader)(nil)
