package rides

import (
	"context"
	"errors"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// ErrNotFound is returned when no ride read model exists for an ID.
var ErrNotFound = errors.New("ride not found")

// Repository stores and retrieves ride read models.
type Repository interface {
	// Save upserts the read model for the given ride. Initial states are
	// not storable.
	Save(ctx context.Context, state Ride) error

	// GetByID returns the ride read model, or ErrNotFound.
	GetByID(ctx context.Context, id value.RideID) (Ride, error)
}

// EventPublisher appends ride events to the ride event stream.
type EventPublisher interface {
	PublishRideEvents(ctx context.Context, events []Event) error
}

// CommandService decides ride commands against current state and publishes
// the resulting events.
type CommandService interface {
	// Execute runs a command and returns the ID of the ride it affected.
	Execute(ctx context.Context, command Command) (value.RideID, error)
}

// QueryService reads ride read models.
type QueryService interface {
	// GetByID returns the ride read model, or ErrNotFound.
	GetByID(ctx context.Context, id value.RideID) (Ride, error)
}
