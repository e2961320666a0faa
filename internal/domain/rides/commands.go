package rides

import (
	"fmt"
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// CommandError indicates a command that cannot be applied to the ride's
// current state.
type CommandError struct {
	Command string
	State   string
	Reason  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to apply %s to %s: %s", e.Command, e.State, e.Reason)
}

func newCommandError(command string, state Ride, reason string) *CommandError {
	return &CommandError{Command: command, State: state.StateName(), Reason: reason}
}

// Command is an intent to change a ride. Decide checks the intent against the
// current state and either returns the resulting events or a *CommandError.
type Command interface {
	Decide(state Ride) ([]Event, error)
	// Target returns the ride the command addresses. RequestRide targets no
	// existing ride and reports false.
	Target() (value.RideID, bool)
}

// RequestRide asks for a new ride between two locations.
type RequestRide struct {
	Rider       value.UserID
	Origin      value.GeoCoordinates
	Destination value.GeoCoordinates
	PickupTime  time.Time
}

// Target reports that the command addresses no existing ride.
func (c RequestRide) Target() (value.RideID, bool) { return value.RideID{}, false }

// Decide creates a RideRequested event with a fresh ride ID.
func (c RequestRide) Decide(state Ride) ([]Event, error) {
	if _, ok := state.(InitialRideState); !ok {
		return nil, newCommandError("RequestRide", state, "ride already exists")
	}
	return []Event{RideRequested{
		Ride:        value.NewRideID(),
		Rider:       c.Rider,
		Origin:      c.Origin,
		Destination: c.Destination,
		PickupTime:  c.PickupTime,
		RequestedAt: time.Now(),
	}}, nil
}

// ScheduleRide assigns a vehicle to a requested ride.
type ScheduleRide struct {
	Ride       value.RideID
	Vin        value.Vin
	PickupTime time.Time
}

// Target returns the ride the command addresses.
func (c ScheduleRide) Target() (value.RideID, bool) { return c.Ride, true }

// Decide creates a RideScheduled event for a requested ride.
func (c ScheduleRide) Decide(state Ride) ([]Event, error) {
	if _, ok := state.(RequestedRide); !ok {
		return nil, newCommandError("ScheduleRide", state, "only requested rides can be scheduled")
	}
	return []Event{RideScheduled{
		Ride:        c.Ride,
		Vin:         c.Vin,
		PickupTime:  c.PickupTime,
		ScheduledAt: time.Now(),
	}}, nil
}

// ConfirmPickup records that the assigned vehicle picked the rider up.
type ConfirmPickup struct {
	Ride           value.RideID
	Vin            value.Vin
	Rider          value.UserID
	PickupLocation value.GeoCoordinates
}

// Target returns the ride the command addresses.
func (c ConfirmPickup) Target() (value.RideID, bool) { return c.Ride, true }

// Decide creates a RiderPickedUp event for a scheduled ride.
func (c ConfirmPickup) Decide(state Ride) ([]Event, error) {
	if _, ok := state.(ScheduledRide); !ok {
		return nil, newCommandError("ConfirmPickup", state, "pickup can only be confirmed for a scheduled ride")
	}
	return []Event{RiderPickedUp{
		Ride:           c.Ride,
		Vin:            c.Vin,
		Rider:          c.Rider,
		PickupLocation: c.PickupLocation,
		PickedUpAt:     time.Now(),
	}}, nil
}

// EndRide records the drop-off that completes an in-progress ride.
type EndRide struct {
	Ride            value.RideID
	DropOffLocation value.GeoCoordinates
}

// Target returns the ride the command addresses.
func (c EndRide) Target() (value.RideID, bool) { return c.Ride, true }

// Decide creates a RiderDroppedOff event for an in-progress ride.
func (c EndRide) Decide(state Ride) ([]Event, error) {
	inProgress, ok := state.(InProgressRide)
	if !ok {
		return nil, newCommandError("EndRide", state, "only in-progress rides can be ended")
	}
	return []Event{RiderDroppedOff{
		Ride:            c.Ride,
		Vin:             inProgress.Vin,
		DropOffLocation: c.DropOffLocation,
		DroppedOffAt:    time.Now(),
	}}, nil
}

// CancelRide cancels a requested or scheduled ride.
type CancelRide struct {
	Ride value.RideID
}

// Target returns the ride the command addresses.
func (c CancelRide) Target() (value.RideID, bool) { return c.Ride, true }

// Decide creates the cancellation event matching the ride's current state.
func (c CancelRide) Decide(state Ride) ([]Event, error) {
	switch s := state.(type) {
	case RequestedRide:
		return []Event{RequestedRideCancelled{
			Ride:        c.Ride,
			CancelledAt: time.Now(),
		}}, nil
	case ScheduledRide:
		return []Event{ScheduledRideCancelled{
			Ride:        c.Ride,
			Vin:         s.Vin,
			CancelledAt: time.Now(),
		}}, nil
	default:
		return nil, newCommandError("CancelRide", state, "can only cancel a requested or scheduled ride")
	}
}
