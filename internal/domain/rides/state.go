package rides

import (
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// State names used for read-model storage and wire-level discriminators.
const (
	StateInitial            = "InitialRideState"
	StateRequested          = "RequestedRide"
	StateScheduled          = "ScheduledRide"
	StateInProgress         = "InProgressRide"
	StateCompleted          = "CompletedRide"
	StateCancelledRequested = "CancelledRequestedRide"
	StateCancelledScheduled = "CancelledScheduledRide"
)

// Ride is the read-model state of a single ride. Evolve applies an event and
// returns the next state; events that do not apply leave the state unchanged.
type Ride interface {
	Evolve(event Event) Ride
	StateName() string
}

// InitialRideState is the state of a ride before it has been requested.
type InitialRideState struct{}

// StateName returns the state's name.
func (s InitialRideState) StateName() string { return StateInitial }

// Evolve applies an event to the initial state.
func (s InitialRideState) Evolve(event Event) Ride {
	if e, ok := event.(RideRequested); ok {
		return RequestedRide{
			ID:                  e.Ride,
			Rider:               e.Rider,
			RequestedPickupTime: e.PickupTime,
			PickupLocation:      e.Origin,
			DropOffLocation:     e.Destination,
			RequestedAt:         e.RequestedAt,
		}
	}
	return s
}

// RequestedRide is a ride waiting for a vehicle to be assigned.
type RequestedRide struct {
	ID                  value.RideID
	Rider               value.UserID
	RequestedPickupTime time.Time
	PickupLocation      value.GeoCoordinates
	DropOffLocation     value.GeoCoordinates
	RequestedAt         time.Time
}

// StateName returns the state's name.
func (s RequestedRide) StateName() string { return StateRequested }

// Evolve applies an event to a requested ride.
func (s RequestedRide) Evolve(event Event) Ride {
	switch e := event.(type) {
	case RideScheduled:
		return ScheduledRide{
			ID:                  s.ID,
			Rider:               s.Rider,
			ScheduledPickupTime: e.PickupTime,
			PickupLocation:      s.PickupLocation,
			DropOffLocation:     s.DropOffLocation,
			Vin:                 e.Vin,
			ScheduledAt:         e.ScheduledAt,
		}
	case RequestedRideCancelled:
		return CancelledRequestedRide{
			ID:                  s.ID,
			Rider:               s.Rider,
			RequestedPickupTime: s.RequestedPickupTime,
			PickupLocation:      s.PickupLocation,
			DropOffLocation:     s.DropOffLocation,
			CancelledAt:         e.CancelledAt,
		}
	}
	return s
}

// ScheduledRide is a ride with a vehicle assigned and a pickup pending.
type ScheduledRide struct {
	ID                  value.RideID
	Rider               value.UserID
	ScheduledPickupTime time.Time
	PickupLocation      value.GeoCoordinates
	DropOffLocation     value.GeoCoordinates
	Vin                 value.Vin
	ScheduledAt         time.Time
}

// StateName returns the state's name.
func (s ScheduledRide) StateName() string { return StateScheduled }

// Evolve applies an event to a scheduled ride.
func (s ScheduledRide) Evolve(event Event) Ride {
	switch e := event.(type) {
	case RiderPickedUp:
		return InProgressRide{
			ID:                  s.ID,
			Rider:               s.Rider,
			PickupLocation:      s.PickupLocation,
			DropOffLocation:     s.DropOffLocation,
			ScheduledPickupTime: s.ScheduledPickupTime,
			Vin:                 s.Vin,
			ScheduledAt:         s.ScheduledAt,
			PickedUpAt:          e.PickedUpAt,
		}
	case ScheduledRideCancelled:
		return CancelledScheduledRide{
			ID:                  s.ID,
			Rider:               s.Rider,
			ScheduledPickupTime: s.ScheduledPickupTime,
			PickupLocation:      s.PickupLocation,
			DropOffLocation:     s.DropOffLocation,
			ScheduledAt:         s.ScheduledAt,
			CancelledAt:         e.CancelledAt,
		}
	}
	return s
}

// InProgressRide is a ride whose rider is currently in the vehicle.
type InProgressRide struct {
	ID                  value.RideID
	Rider               value.UserID
	PickupLocation      value.GeoCoordinates
	DropOffLocation     value.GeoCoordinates
	ScheduledPickupTime time.Time
	Vin                 value.Vin
	ScheduledAt         time.Time
	PickedUpAt          time.Time
}

// StateName returns the state's name.
func (s InProgressRide) StateName() string { return StateInProgress }

// Evolve applies an event to an in-progress ride.
func (s InProgressRide) Evolve(event Event) Ride {
	if e, ok := event.(RiderDroppedOff); ok {
		return CompletedRide{
			ID:              s.ID,
			Rider:           s.Rider,
			PickupLocation:  s.PickupLocation,
			DropOffLocation: e.DropOffLocation,
			Vin:             s.Vin,
			PickedUpAt:      s.PickedUpAt,
			DroppedOffAt:    e.DroppedOffAt,
		}
	}
	return s
}

// CompletedRide is a finished ride. Terminal.
type CompletedRide struct {
	ID              value.RideID
	Rider           value.UserID
	PickupLocation  value.GeoCoordinates
	DropOffLocation value.GeoCoordinates
	Vin             value.Vin
	PickedUpAt      time.Time
	DroppedOffAt    time.Time
}

// StateName returns the state's name.
func (s CompletedRide) StateName() string { return StateCompleted }

// Evolve ignores all events; the state is terminal.
func (s CompletedRide) Evolve(_ Event) Ride { return s }

// CancelledRequestedRide is a ride cancelled before scheduling. Terminal.
type CancelledRequestedRide struct {
	ID                  value.RideID
	Rider               value.UserID
	RequestedPickupTime time.Time
	PickupLocation      value.GeoCoordinates
	DropOffLocation     value.GeoCoordinates
	CancelledAt         time.Time
}

// StateName returns the state's name.
func (s CancelledRequestedRide) StateName() string { return StateCancelledRequested }

// Evolve ignores all events; the state is terminal.
func (s CancelledRequestedRide) Evolve(_ Event) Ride { return s }

// CancelledScheduledRide is a ride cancelled after a vehicle was assigned. Terminal.
type CancelledScheduledRide struct {
	ID                  value.RideID
	Rider               value.UserID
	ScheduledPickupTime time.Time
	PickupLocation      value.GeoCoordinates
	DropOffLocation     value.GeoCoordinates
	ScheduledAt         time.Time
	CancelledAt         time.Time
}

// StateName returns the state's name.
func (s CancelledScheduledRide) StateName() string { return StateCancelledScheduled }

// Evolve ignores all events; the state is terminal.
func (s CancelledScheduledRide) Evolve(_ Event) Ride { return s }
