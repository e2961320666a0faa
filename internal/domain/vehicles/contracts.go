package vehicles

import (
	"context"
	"errors"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// ErrNotFound is returned when no vehicle read model exists for a VIN.
var ErrNotFound = errors.New("vehicle not found")

// Repository stores and retrieves vehicle read models.
type Repository interface {
	// Save upserts the read model for the given vehicle. Initial states are
	// not storable.
	Save(ctx context.Context, state Vehicle) error

	// GetByVin returns the vehicle read model, or ErrNotFound.
	GetByVin(ctx context.Context, vin value.Vin) (Vehicle, error)

	// ListByOwner returns all vehicles contributed by an owner.
	ListByOwner(ctx context.Context, owner value.UserID) ([]Vehicle, error)

	// ListAvailable returns all vehicles currently available for rides.
	ListAvailable(ctx context.Context) ([]Vehicle, error)

	// DeleteByVin removes the read model for a vehicle that left the fleet.
	DeleteByVin(ctx context.Context, vin value.Vin) error
}

// EventPublisher appends vehicle events to the vehicle event stream.
type EventPublisher interface {
	PublishVehicleEvents(ctx context.Context, events []Event) error
}

// CommandService decides vehicle commands against current state and publishes
// the resulting events.
type CommandService interface {
	// Execute runs a command and returns the VIN of the vehicle it affected.
	Execute(ctx context.Context, command Command) (value.Vin, error)
}

// QueryService reads vehicle read models.
type QueryService interface {
	// GetByVin returns the vehicle read model, or ErrNotFound.
	GetByVin(ctx context.Context, vin value.Vin) (Vehicle, error)

	// ListByOwner returns all vehicles contributed by an owner.
	ListByOwner(ctx context.Context, owner value.UserID) ([]Vehicle, error)

	// ListAvailable returns all vehicles currently available for rides.
	ListAvailable(ctx context.Context) ([]Vehicle, error)
}
