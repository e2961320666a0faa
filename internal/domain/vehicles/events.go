package vehicles

import (
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
)

// Event type names used as wire-level discriminators.
const (
	EventTypeVehicleAdded           = "VehicleAdded"
	EventTypeVehicleAvailable       = "VehicleAvailable"
	EventTypeVehicleOccupied        = "VehicleOccupied"
	EventTypeVehicleReturnRequested = "VehicleReturnRequested"
	EventTypeVehicleReturning       = "VehicleReturning"
	EventTypeVehicleReturned        = "VehicleReturned"
	EventTypeVehicleRemoved         = "VehicleRemoved"
)

// Event is a fact recorded on a vehicle's timeline.
type Event interface {
	// EventType returns the event's type name.
	EventType() string
	// VehicleVin returns the vehicle the event belongs to.
	VehicleVin() value.Vin
}

// VehicleAdded records that an owner contributed a vehicle to the fleet.
type VehicleAdded struct {
	Vin   value.Vin
	Owner value.UserID
}

// EventType returns the event's type name.
func (e VehicleAdded) EventType() string { return EventTypeVehicleAdded }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleAdded) VehicleVin() value.Vin { return e.Vin }

// VehicleAvailable records that the vehicle can accept rides.
type VehicleAvailable struct {
	Vin         value.Vin
	AvailableAt time.Time
}

// EventType returns the event's type name.
func (e VehicleAvailable) EventType() string { return EventTypeVehicleAvailable }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleAvailable) VehicleVin() value.Vin { return e.Vin }

// VehicleOccupied records that a rider occupies the vehicle.
type VehicleOccupied struct {
	Vin        value.Vin
	OccupiedAt time.Time
}

// EventType returns the event's type name.
func (e VehicleOccupied) EventType() string { return EventTypeVehicleOccupied }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleOccupied) VehicleVin() value.Vin { return e.Vin }

// VehicleReturnRequested records that the owner asked for an occupied vehicle back.
type VehicleReturnRequested struct {
	Vin               value.Vin
	ReturnRequestedAt time.Time
}

// EventType returns the event's type name.
func (e VehicleReturnRequested) EventType() string { return EventTypeVehicleReturnRequested }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleReturnRequested) VehicleVin() value.Vin { return e.Vin }

// VehicleReturning records that the vehicle is on its way back to its owner.
type VehicleReturning struct {
	Vin         value.Vin
	ReturningAt time.Time
}

// EventType returns the event's type name.
func (e VehicleReturning) EventType() string { return EventTypeVehicleReturning }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleReturning) VehicleVin() value.Vin { return e.Vin }

// VehicleReturned records that the vehicle arrived back with its owner.
type VehicleReturned struct {
	Vin        value.Vin
	ReturnedAt time.Time
}

// EventType returns the event's type name.
func (e VehicleReturned) EventType() string { return EventTypeVehicleReturned }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleReturned) VehicleVin() value.Vin { return e.Vin }

// VehicleRemoved records that the owner withdrew the vehicle from the fleet.
type VehicleRemoved struct {
	Vin       value.Vin
	Owner     value.UserID
	RemovedAt time.Time
}

// EventType returns the event's type name.
func (e VehicleRemoved) EventType() string { return EventTypeVehicleRemoved }

// VehicleVin returns the vehicle the event belongs to.
func (e VehicleRemoved) VehicleVin() value.Vin { return e.Vin }
