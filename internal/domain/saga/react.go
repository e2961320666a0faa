// Package saga derives vehicle commands from ride events, automating the
// fleet-side consequences of the ride lifecycle.
package saga

import (
	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
)

// React translates a ride event into the vehicle commands it implies.
// Scheduling a ride occupies the assigned vehicle; cancelling a scheduled
// ride or dropping the rider off frees it again. All other ride events
// produce no vehicle commands.
func React(event rides.Event) []vehicles.Command {
	switch e := event.(type) {
	case rides.RideScheduled:
		return []vehicles.Command{vehicles.MarkVehicleOccupied{Vin: e.Vin}}
	case rides.ScheduledRideCancelled:
		return []vehicles.Command{vehicles.MarkVehicleUnoccupied{Vin: e.Vin}}
	case rides.RiderDroppedOff:
		return []vehicles.Command{vehicles.MarkVehicleUnoccupied{Vin: e.Vin}}
	default:
		return nil
	}
}
