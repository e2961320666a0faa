package vehicles

import (
	"fmt"
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// CommandError indicates a command that cannot be applied to the vehicle's
// current state.
type CommandError struct {
	Command string
	State   string
	Reason  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to apply %s to %s: %s", e.Command, e.State, e.Reason)
}

func newCommandError(command string, state Vehicle, reason string) *CommandError {
	return &CommandError{Command: command, State: state.StateName(), Reason: reason}
}

// Command is an intent to change a vehicle. Decide checks the intent against
// the current state and either returns the resulting events or a *CommandError.
type Command interface {
	Decide(state Vehicle) ([]Event, error)
	// Target returns the VIN the command addresses.
	Target() value.Vin
}

// AddVehicle contributes a vehicle to the fleet.
type AddVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// Target returns the VIN the command addresses.
func (c AddVehicle) Target() value.Vin { return c.Vin }

// Decide creates a VehicleAdded event for a vehicle not yet in the fleet.
func (c AddVehicle) Decide(state Vehicle) ([]Event, error) {
	if _, ok := state.(InitialVehicleState); !ok {
		return nil, newCommandError("AddVehicle", state, "vehicle already exists")
	}
	return []Event{VehicleAdded{Vin: c.Vin, Owner: c.Owner}}, nil
}

// MakeVehicleAvailable offers an inventory vehicle for rides.
type MakeVehicleAvailable struct {
	Vin value.Vin
}

// Target returns the VIN the command addresses.
func (c MakeVehicleAvailable) Target() value.Vin { return c.Vin }

// Decide creates a VehicleAvailable event for an inventory vehicle.
func (c MakeVehicleAvailable) Decide(state Vehicle) ([]Event, error) {
	if _, ok := state.(InventoryVehicle); !ok {
		return nil, newCommandError("MakeVehicleAvailable", state, "only vehicles in the inventory can be made available")
	}
	return []Event{VehicleAvailable{Vin: c.Vin, AvailableAt: time.Now()}}, nil
}

// MarkVehicleOccupied records that a rider entered the vehicle.
type MarkVehicleOccupied struct {
	Vin value.Vin
}

// Target returns the VIN the command addresses.
func (c MarkVehicleOccupied) Target() value.Vin { return c.Vin }

// Decide creates a VehicleOccupied event for an available vehicle.
func (c MarkVehicleOccupied) Decide(state Vehicle) ([]Event, error) {
	if _, ok := state.(AvailableVehicle); !ok {
		return nil, newCommandError("MarkVehicleOccupied", state, "only available vehicles can become occupied")
	}
	return []Event{VehicleOccupied{Vin: c.Vin, OccupiedAt: time.Now()}}, nil
}

// MarkVehicleUnoccupied records that the rider left the vehicle.
type MarkVehicleUnoccupied struct {
	Vin value.Vin
}

// Target returns the VIN the command addresses.
func (c MarkVehicleUnoccupied) Target() value.Vin { return c.Vin }

// Decide frees an occupied vehicle. An occupied vehicle becomes available
// again; an occupied vehicle with a pending return request starts returning.
func (c MarkVehicleUnoccupied) Decide(state Vehicle) ([]Event, error) {
	switch state.(type) {
	case OccupiedVehicle:
		return []Event{VehicleAvailable{Vin: c.Vin, AvailableAt: time.Now()}}, nil
	case OccupiedReturningVehicle:
		return []Event{VehicleReturning{Vin: c.Vin, ReturningAt: time.Now()}}, nil
	default:
		return nil, newCommandError("MarkVehicleUnoccupied", state, "only occupied or occupied-returning vehicles can be marked as unoccupied")
	}
}

// RequestVehicleReturn asks for the vehicle back from the fleet.
type RequestVehicleReturn struct {
	Vin value.Vin
}

// Target returns the VIN the command addresses.
func (c RequestVehicleReturn) Target() value.Vin { return c.Vin }

// Decide starts the return immediately for an available vehicle, or records
// the request for an occupied one.
func (c RequestVehicleReturn) Decide(state Vehicle) ([]Event, error) {
	switch state.(type) {
	case AvailableVehicle:
		return []Event{VehicleReturning{Vin: c.Vin, ReturningAt: time.Now()}}, nil
	case OccupiedVehicle:
		return []Event{VehicleReturnRequested{Vin: c.Vin, ReturnRequestedAt: time.Now()}}, nil
	default:
		return nil, newCommandError("RequestVehicleReturn", state, "only available or occupied vehicles can be requested for return")
	}
}

// ConfirmVehicleReturn records that the vehicle arrived back with its owner.
type ConfirmVehicleReturn struct {
	Vin value.Vin
}

// Target returns the VIN the command addresses.
func (c ConfirmVehicleReturn) Target() value.Vin { return c.Vin }

// Decide creates a VehicleReturned event for a returning vehicle.
func (c ConfirmVehicleReturn) Decide(state Vehicle) ([]Event, error) {
	if _, ok := state.(ReturningVehicle); !ok {
		return nil, newCommandError("ConfirmVehicleReturn", state, "only vehicles being returned can be confirmed as returned")
	}
	return []Event{VehicleReturned{Vin: c.Vin, ReturnedAt: time.Now()}}, nil
}

// RemoveVehicle withdraws a vehicle from the fleet.
type RemoveVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// Target returns the VIN the command addresses.
func (c RemoveVehicle) Target() value.Vin { return c.Vin }

// Decide creates a VehicleRemoved event for an inventory vehicle.
func (c RemoveVehicle) Decide(state Vehicle) ([]Event, error) {
	if _, ok := state.(InventoryVehicle); !ok {
		return nil, newCommandError("RemoveVehicle", state, "only vehicles in the inventory can be removed")
	}
	return []Event{VehicleRemoved{Vin: c.Vin, Owner: c.Owner, RemovedAt: time.Now()}}, nil
}
