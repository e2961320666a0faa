//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleModelConversion(t *testing.T) {
	vin, err := value.NewVin("1FTZX1722XKA76091")
	require.NoError(t, err)
	owner := value.NewUserID()

	t.Run("available vehicle round trip", func(t *testing.T) {
		vehicle := vehicles.AvailableVehicle{Vin: vin, Owner: owner}

		model := &VehicleModel{}
		require.NoError(t, model.FromDomain(vehicle))

		assert.Equal(t, vin.String(), model.Vin)
		assert.Equal(t, owner.String(), model.Owner)
		assert.Equal(t, vehicles.StateAvailable, model.State)

		decoded, err := model.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, vehicles.Vehicle(vehicle), decoded)
	})

	t.Run("initial state cannot be stored", func(t *testing.T) {
		model := &VehicleModel{}
		assert.Error(t, model.FromDomain(vehicles.InitialVehicleState{}))
	})
}
