//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVin = "1FTZX1722XKA76091"

func TestVehicleHandler_GetByVin(t *testing.T) {
	vin, err := value.NewVin(testVin)
	require.NoError(t, err)
	owner := value.NewUserID()

	t.Run("returns the vehicle read model", func(t *testing.T) {
		queryService := new(MockVehicleQueryService)
		handler := NewVehicleHandler(new(MockVehicleCommandService), queryService)

		queryService.On("GetByVin", mock.Anything, vin).
			Return(vehicles.AvailableVehicle{Vin: vin, Owner: owner}, nil)

		c, w := newRideTestContext(t, "GET", "/vehicles/"+testVin, nil)
		c.Params = gin.Params{gin.Param{Key: "vin", Value: testVin}}

		handler.GetByVin(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response VehicleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, testVin, response.Vin)
		assert.Equal(t, owner.String(), response.Owner)
		assert.Equal(t, vehicles.StateAvailable, response.State)
		queryService.AssertExpectations(t)
	})

	t.Run("returns 404 when the vehicle does not exist", func(t *testing.T) {
		queryService := new(MockVehicleQueryService)
		handler := NewVehicleHandler(new(MockVehicleCommandService), queryService)

		queryService.On("GetByVin", mock.Anything, vin).Return(nil, vehicles.ErrNotFound)

		c, w := newRideTestContext(t, "GET", "/vehicles/"+testVin, nil)
		c.Params = gin.Params{gin.Param{Key: "vin", Value: testVin}}

		handler.GetByVin(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for a malformed VIN", func(t *testing.T) {
		handler := NewVehicleHandler(new(MockVehicleCommandService), new(MockVehicleQueryService))

		c, w := newRideTestContext(t, "GET", "/vehicles/short", nil)
		c.Params = gin.Params{gin.Param{Key: "vin", Value: "short"}}

		handler.GetByVin(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVehicleHandler_ListMine(t *testing.T) {
	vin, err := value.NewVin(testVin)
	require.NoError(t, err)
	owner := value.NewUserID()

	t.Run("returns the owner's vehicles", func(t *testing.T) {
		queryService := new(MockVehicleQueryService)
		handler := NewVehicleHandler(new(MockVehicleCommandService), queryService)

		queryService.On("ListByOwner", mock.Anything, owner).
			Return([]vehicles.Vehicle{vehicles.InventoryVehicle{Vin: vin, Owner: owner}}, nil)

		c, w := newRideTestContext(t, "GET", "/vehicles/mine?owner="+owner.String(), nil)

		handler.ListMine(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []VehicleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, testVin, response[0].Vin)
		assert.Equal(t, vehicles.StateInventory, response[0].State)
		queryService.AssertExpectations(t)
	})

	t.Run("returns an empty list when the owner has no vehicles", func(t *testing.T) {
		queryService := new(MockVehicleQueryService)
		handler := NewVehicleHandler(new(MockVehicleCommandService), queryService)

		queryService.On("ListByOwner", mock.Anything, owner).Return([]vehicles.Vehicle{}, nil)

		c, w := newRideTestContext(t, "GET", "/vehicles/mine?owner="+owner.String(), nil)

		handler.ListMine(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns 400 when the owner id is missing", func(t *testing.T) {
		handler := NewVehicleHandler(new(MockVehicleCommandService), new(MockVehicleQueryService))

		c, w := newRideTestContext(t, "GET", "/vehicles/mine", nil)

		handler.ListMine(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVehicleHandler_ListAvailable(t *testing.T) {
	vin, err := value.NewVin(testVin)
	require.NoError(t, err)
	owner := value.NewUserID()

	queryService := new(MockVehicleQueryService)
	handler := NewVehicleHandler(new(MockVehicleCommandService), queryService)

	queryService.On("ListAvailable", mock.Anything).
		Return([]vehicles.Vehicle{vehicles.AvailableVehicle{Vin: vin, Owner: owner}}, nil)

	c, w := newRideTestContext(t, "GET", "/vehicles/available", nil)

	handler.ListAvailable(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, vehicles.StateAvailable, response[0].State)
	queryService.AssertExpectations(t)
}

func TestVehicleHandler_Add(t *testing.T) {
	vin, err := value.NewVin(testVin)
	require.NoError(t, err)
	owner := value.NewUserID()

	t.Run("accepts a valid vehicle", func(t *testing.T) {
		commandService := new(MockVehicleCommandService)
		handler := NewVehicleHandler(commandService, new(MockVehicleQueryService))

		commandService.On("Execute", mock.Anything, vehicles.AddVehicle{Vin: vin, Owner: owner}).
			Return(vin, nil)

		c, w := newRideTestContext(t, "POST", "/vehicles/mine", AddVehicleRequest{
			Vin:   testVin,
			Owner: owner.String(),
		})

		handler.Add(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		var response CommandAcceptedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Success", response.Message)
		assert.Equal(t, fmt.Sprintf("%s/vehicles/%s", BasePath, vin), response.Location)
		commandService.AssertExpectations(t)
	})

	t.Run("rejects a VIN without letters", func(t *testing.T) {
		handler := NewVehicleHandler(new(MockVehicleCommandService), new(MockVehicleQueryService))

		c, w := newRideTestContext(t, "POST", "/vehicles/mine", AddVehicleRequest{
			Vin:   "12345678901234567",
			Owner: owner.String(),
		})

		handler.Add(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 when the vehicle already exists", func(t *testing.T) {
		commandService := new(MockVehicleCommandService)
		handler := NewVehicleHandler(commandService, new(MockVehicleQueryService))

		commandService.On("Execute", mock.Anything, vehicles.AddVehicle{Vin: vin, Owner: owner}).
			Return(value.Vin(""), &vehicles.CommandError{Command: "AddVehicle", State: vehicles.StateInventory, Reason: "vehicle already exists"})

		c, w := newRideTestContext(t, "POST", "/vehicles/mine", AddVehicleRequest{
			Vin:   testVin,
			Owner: owner.String(),
		})

		handler.Add(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVehicleHandler_StateCommands(t *testing.T) {
	vin, err := value.NewVin(testVin)
	require.NoError(t, err)

	tests := []struct {
		name    string
		command vehicles.Command
		invoke  func(handler VehicleHandler, c *gin.Context)
	}{
		{
			name:    "MakeAvailable",
			command: vehicles.MakeVehicleAvailable{Vin: vin},
			invoke:  func(handler VehicleHandler, c *gin.Context) { handler.MakeAvailable(c) },
		},
		{
			name:    "RequestReturn",
			command: vehicles.RequestVehicleReturn{Vin: vin},
			invoke:  func(handler VehicleHandler, c *gin.Context) { handler.RequestReturn(c) },
		},
		{
			name:    "MarkOccupied",
			command: vehicles.MarkVehicleOccupied{Vin: vin},
			invoke:  func(handler VehicleHandler, c *gin.Context) { handler.MarkOccupied(c) },
		},
		{
			name:    "MarkUnoccupied",
			command: vehicles.MarkVehicleUnoccupied{Vin: vin},
			invoke:  func(handler VehicleHandler, c *gin.Context) { handler.MarkUnoccupied(c) },
		},
		{
			name:    "ConfirmReturn",
			command: vehicles.ConfirmVehicleReturn{Vin: vin},
			invoke:  func(handler VehicleHandler, c *gin.Context) { handler.ConfirmReturn(c) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commandService := new(MockVehicleCommandService)
			handler := NewVehicleHandler(commandService, new(MockVehicleQueryService))

			commandService.On("Execute", mock.Anything, tt.command).Return(vin, nil)

			c, w := newRideTestContext(t, "PUT", "/vehicles/"+testVin, nil)
			c.Params = gin.Params{gin.Param{Key: "vin", Value: testVin}}

			tt.invoke(handler, c)

			assert.Equal(t, http.StatusAccepted, w.Code)
			commandService.AssertExpectations(t)
		})
	}
}

func TestVehicleHandler_Remove(t *testing.T) {
	vin, err := value.NewVin(testVin)
	require.NoError(t, err)
	owner := value.NewUserID()

	t.Run("accepts a remove request", func(t *testing.T) {
		commandService := new(MockVehicleCommandService)
		handler := NewVehicleHandler(commandService, new(MockVehicleQueryService))

		commandService.On("Execute", mock.Anything, vehicles.RemoveVehicle{Vin: vin, Owner: owner}).
			Return(vin, nil)

		c, w := newRideTestContext(t, "DELETE", "/vehicles/mine/"+testVin+"?owner="+owner.String(), nil)
		c.Params = gin.Params{gin.Param{Key: "vin", Value: testVin}}

		handler.Remove(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		commandService.AssertExpectations(t)
	})

	t.Run("returns 400 when the owner id is missing", func(t *testing.T) {
		handler := NewVehicleHandler(new(MockVehicleCommandService), new(MockVehicleQueryService))

		c, w := newRideTestContext(t, "DELETE", "/vehicles/mine/"+testVin, nil)
		c.Params = gin.Params{gin.Param{Key: "vin", Value: testVin}}

		handler.Remove(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
