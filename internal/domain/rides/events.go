package rides

import (
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// Event type names used as wire-level discriminators.
const (
	EventTypeRideRequested          = "RideRequested"
	EventTypeRideScheduled          = "RideScheduled"
	EventTypeRiderPickedUp          = "RiderPickedUp"
	EventTypeRiderDroppedOff        = "RiderDroppedOff"
	EventTypeRequestedRideCancelled = "RequestedRideCancelled"
	EventTypeScheduledRideCancelled = "ScheduledRideCancelled"
)

// Event is a fact recorded on a ride's timeline.
type Event interface {
	// EventType returns the event's type name.
	EventType() string
	// RideID returns the ride the event belongs to.
	RideID() value.RideID
}

// RideRequested records that a rider asked for a ride.
type RideRequested struct {
	Ride        value.RideID
	Rider       value.UserID
	Origin      value.GeoCoordinates
	Destination value.GeoCoordinates
	PickupTime  time.Time
	RequestedAt time.Time
}

// EventType returns the event's type name.
func (e RideRequested) EventType() string { return EventTypeRideRequested }

// RideID returns the ride the event belongs to.
func (e RideRequested) RideID() value.RideID { return e.Ride }

// RideScheduled records that a vehicle was assigned to a requested ride.
type RideScheduled struct {
	Ride        value.RideID
	Vin         value.Vin
	PickupTime  time.Time
	ScheduledAt time.Time
}

// EventType returns the event's type name.
func (e RideScheduled) EventType() string { return EventTypeRideScheduled }

// RideID returns the ride the event belongs to.
func (e RideScheduled) RideID() value.RideID { return e.Ride }

// RiderPickedUp records that the vehicle picked the rider up.
type RiderPickedUp struct {
	Ride           value.RideID
	Vin            value.Vin
	Rider          value.UserID
	PickupLocation value.GeoCoordinates
	PickedUpAt     time.Time
}

// EventType returns the event's type name.
func (e RiderPickedUp) EventType() string { return EventTypeRiderPickedUp }

// RideID returns the ride the event belongs to.
func (e RiderPickedUp) RideID() value.RideID { return e.Ride }

// RiderDroppedOff records that the ride ended at a drop-off location.
type RiderDroppedOff struct {
	Ride            value.RideID
	Vin             value.Vin
	DropOffLocation value.GeoCoordinates
	DroppedOffAt    time.Time
}

// EventType returns the event's type name.
func (e RiderDroppedOff) EventType() string { return EventTypeRiderDroppedOff }

// RideID returns the ride the event belongs to.
func (e RiderDroppedOff) RideID() value.RideID { return e.Ride }

// RequestedRideCancelled records cancellation of a ride that was not yet scheduled.
type RequestedRideCancelled struct {
	Ride        value.RideID
	CancelledAt time.Time
}

// EventType returns the event's type name.
func (e RequestedRideCancelled) EventType() string { return EventTypeRequestedRideCancelled }

// RideID returns the ride the event belongs to.
func (e RequestedRideCancelled) RideID() value.RideID { return e.Ride }

// ScheduledRideCancelled records cancellation of a ride that already had a vehicle assigned.
type ScheduledRideCancelled struct {
	Ride        value.RideID
	Vin         value.Vin
	CancelledAt time.Time
}

// EventType returns the event's type name.
func (e ScheduledRideCancelled) EventType() string { return EventTypeScheduledRideCancelled }

// RideID returns the ride the event belongs to.
func (e ScheduledRideCancelled) RideID() value.RideID { return e.Ride }
