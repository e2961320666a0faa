//go:build unit
// +build unit

package vehicles

import (
	"testing"
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleEvolve(t *testing.T) {
	vin := testVin(t)
	owner := value.NewUserID()
	now := time.Now()

	tests := []struct {
		name  string
		state Vehicle
		event Event
		want  Vehicle
	}{
		{
			name:  "initial to inventory on VehicleAdded",
			state: InitialVehicleState{},
			event: VehicleAdded{Vin: vin, Owner: owner},
			want:  InventoryVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "inventory to available on VehicleAvailable",
			state: InventoryVehicle{Vin: vin, Owner: owner},
			event: VehicleAvailable{Vin: vin, AvailableAt: now},
			want:  AvailableVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "inventory to initial on VehicleRemoved",
			state: InventoryVehicle{Vin: vin, Owner: owner},
			event: VehicleRemoved{Vin: vin, Owner: owner, RemovedAt: now},
			want:  InitialVehicleState{},
		},
		{
			name:  "available to occupied on VehicleOccupied",
			state: AvailableVehicle{Vin: vin, Owner: owner},
			event: VehicleOccupied{Vin: vin, OccupiedAt: now},
			want:  OccupiedVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "available to returning on VehicleReturning",
			state: AvailableVehicle{Vin: vin, Owner: owner},
			event: VehicleReturning{Vin: vin, ReturningAt: now},
			want:  ReturningVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "occupied to available on VehicleAvailable",
			state: OccupiedVehicle{Vin: vin, Owner: owner},
			event: VehicleAvailable{Vin: vin, AvailableAt: now},
			want:  AvailableVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "occupied to occupied-returning on VehicleReturnRequested",
			state: OccupiedVehicle{Vin: vin, Owner: owner},
			event: VehicleReturnRequested{Vin: vin, ReturnRequestedAt: now},
			want:  OccupiedReturningVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "occupied-returning to returning on VehicleReturning",
			state: OccupiedReturningVehicle{Vin: vin, Owner: owner},
			event: VehicleReturning{Vin: vin, ReturningAt: now},
			want:  ReturningVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "returning to inventory on VehicleReturned",
			state: ReturningVehicle{Vin: vin, Owner: owner},
			event: VehicleReturned{Vin: vin, ReturnedAt: now},
			want:  InventoryVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "non-applicable event is ignored",
			state: InventoryVehicle{Vin: vin, Owner: owner},
			event: VehicleOccupied{Vin: vin, OccupiedAt: now},
			want:  InventoryVehicle{Vin: vin, Owner: owner},
		},
		{
			name:  "initial ignores events other than VehicleAdded",
			state: InitialVehicleState{},
			event: VehicleAvailable{Vin: vin, AvailableAt: now},
			want:  InitialVehicleState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.state.Evolve(tt.event)

			require.NotNil(t, result)
			assert.Equal(t, tt.want, result)
		})
	}
}
