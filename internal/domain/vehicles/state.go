package vehicles

import (
	"github.com/dclimber/autonomo/internal/domain/value"
)

// State names used for read-model storage and wire-level discriminators.
const (
	StateInitial           = "InitialVehicleState"
	StateInventory         = "InventoryVehicle"
	StateAvailable         = "AvailableVehicle"
	StateOccupied          = "OccupiedVehicle"
	StateOccupiedReturning = "OccupiedReturningVehicle"
	StateReturning         = "ReturningVehicle"
)

// Vehicle is the read-model state of a single fleet vehicle. Evolve applies
// an event and returns the next state; events that do not apply leave the
// state unchanged.
type Vehicle interface {
	Evolve(event Event) Vehicle
	StateName() string
}

// InitialVehicleState is the state before a vehicle exists in the fleet, and
// again after it has been removed.
type InitialVehicleState struct{}

// StateName returns the state's name.
func (s InitialVehicleState) StateName() string { return StateInitial }

// Evolve applies an event to the initial state.
func (s InitialVehicleState) Evolve(event Event) Vehicle {
	if e, ok := event.(VehicleAdded); ok {
		return InventoryVehicle{Vin: e.Vin, Owner: e.Owner}
	}
	return s
}

// InventoryVehicle is owned by the fleet but not yet offered for rides.
type InventoryVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// StateName returns the state's name.
func (s InventoryVehicle) StateName() string { return StateInventory }

// Evolve applies an event to an inventory vehicle.
func (s InventoryVehicle) Evolve(event Event) Vehicle {
	switch event.(type) {
	case VehicleAvailable:
		return AvailableVehicle{Vin: s.Vin, Owner: s.Owner}
	case VehicleRemoved:
		return InitialVehicleState{}
	}
	return s
}

// AvailableVehicle is ready to accept a ride.
type AvailableVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// StateName returns the state's name.
func (s AvailableVehicle) StateName() string { return StateAvailable }

// Evolve applies an event to an available vehicle.
func (s AvailableVehicle) Evolve(event Event) Vehicle {
	switch event.(type) {
	case VehicleOccupied:
		return OccupiedVehicle{Vin: s.Vin, Owner: s.Owner}
	case VehicleReturning:
		return ReturningVehicle{Vin: s.Vin, Owner: s.Owner}
	}
	return s
}

// OccupiedVehicle currently carries a rider.
type OccupiedVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// StateName returns the state's name.
func (s OccupiedVehicle) StateName() string { return StateOccupied }

// Evolve applies an event to an occupied vehicle.
func (s OccupiedVehicle) Evolve(event Event) Vehicle {
	switch event.(type) {
	case VehicleAvailable:
		return AvailableVehicle{Vin: s.Vin, Owner: s.Owner}
	case VehicleReturnRequested:
		return OccupiedReturningVehicle{Vin: s.Vin, Owner: s.Owner}
	}
	return s
}

// OccupiedReturningVehicle carries a rider and must return to its owner once free.
type OccupiedReturningVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// StateName returns the state's name.
func (s OccupiedReturningVehicle) StateName() string { return StateOccupiedReturning }

// Evolve applies an event to an occupied-returning vehicle.
func (s OccupiedReturningVehicle) Evolve(event Event) Vehicle {
	if _, ok := event.(VehicleReturning); ok {
		return ReturningVehicle{Vin: s.Vin, Owner: s.Owner}
	}
	return s
}

// ReturningVehicle is on its way back to its owner.
type ReturningVehicle struct {
	Vin   value.Vin
	Owner value.UserID
}

// StateName returns the state's name.
func (s ReturningVehicle) StateName() string { return StateReturning }

// Evolve applies an event to a returning vehicle.
func (s ReturningVehicle) Evolve(event Event) Vehicle {
	if _, ok := event.(VehicleReturned); ok {
		return InventoryVehicle{Vin: s.Vin, Owner: s.Owner}
	}
	return s
}
