//go:build unit
// +build unit

package v1

import (
	"context"
	"testing"
	"time"

	"github.com/dclimber/autonomo/internal/api/grpc/v1/autonomopb"
	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRideServer_GetRide(t *testing.T) {
	rideID := value.NewRideID()
	rider := value.NewUserID()
	origin, _ := value.NewGeoCoordinates(52.52, 13.405)
	destination, _ := value.NewGeoCoordinates(48.8566, 2.3522)

	tests := []struct {
		name         string
		rideID       string
		mockReturn   rides.Ride
		mockError    error
		wantCode     codes.Code
		validateResp func(t *testing.T, resp *autonomopb.RideStateResponse)
	}{
		{
			name:   "success with requested ride",
			rideID: rideID.String(),
			mockReturn: rides.RequestedRide{
				ID:              rideID,
				Rider:           rider,
				PickupLocation:  origin,
				DropOffLocation: destination,
				RequestedAt:     time.Now(),
			},
			wantCode: codes.OK,
			validateResp: func(t *testing.T, resp *autonomopb.RideStateResponse) {
				assert.Equal(t, rideID.String(), resp.Id)
				assert.Equal(t, rides.StateRequested, resp.State)
				assert.Equal(t, rider.String(), resp.Rider)
				require.NotNil(t, resp.PickupLocation)
				assert.Equal(t, origin.Latitude, resp.PickupLocation.Latitude)
			},
		},
		{
			name:      "not found",
			rideID:    rideID.String(),
			mockError: rides.ErrNotFound,
			wantCode:  codes.NotFound,
		},
		{
			name:     "malformed ride id",
			rideID:   "not-a-uuid",
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queryService := new(MockRideQueryService)
			server, err := NewRideServer(new(MockRideCommandService), queryService)
			require.NoError(t, err)

			if tt.mockReturn != nil || tt.mockError != nil {
				queryService.On("GetByID", mock.Anything, rideID).Return(tt.mockReturn, tt.mockError)
			}

			resp, err := server.GetRide(context.Background(), &autonomopb.RideQuery{Id: tt.rideID})

			if tt.wantCode == codes.OK {
				require.NoError(t, err)
				tt.validateResp(t, resp)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
			}
		})
	}
}

func TestRideServer_RequestRide(t *testing.T) {
	rider := value.NewUserID()
	pickupTime := time.Now().Add(time.Hour).UTC()

	t.Run("accepts a valid request", func(t *testing.T) {
		rideID := value.NewRideID()
		commandService := new(MockRideCommandService)
		server, err := NewRideServer(commandService, new(MockRideQueryService))
		require.NoError(t, err)

		commandService.On("Execute", mock.Anything, mock.MatchedBy(func(command rides.Command) bool {
			request, ok := command.(rides.RequestRide)
			return ok && request.Rider == rider
		})).Return(rideID, nil)

		resp, err := server.RequestRide(context.Background(), &autonomopb.RequestRideCommand{
			Rider:       rider.String(),
			Origin:      &autonomopb.GeoCoordinates{Latitude: 52.52, Longitude: 13.405},
			Destination: &autonomopb.GeoCoordinates{Latitude: 48.8566, Longitude: 2.3522},
			PickupTime:  pickupTime,
		})

		require.NoError(t, err)
		assert.Equal(t, rideID.String(), resp.Id)
		commandService.AssertExpectations(t)
	})

	t.Run("rejects missing coordinates", func(t *testing.T) {
		server, err := NewRideServer(new(MockRideCommandService), new(MockRideQueryService))
		require.NoError(t, err)

		_, err = server.RequestRide(context.Background(), &autonomopb.RequestRideCommand{
			Rider:      rider.String(),
			PickupTime: pickupTime,
		})

		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("rejects an invalid rider id", func(t *testing.T) {
		server, err := NewRideServer(new(MockRideCommandService), new(MockRideQueryService))
		require.NoError(t, err)

		_, err = server.RequestRide(context.Background(), &autonomopb.RequestRideCommand{
			Rider:       "not-a-uuid",
			Origin:      &autonomopb.GeoCoordinates{Latitude: 52.52, Longitude: 13.405},
			Destination: &autonomopb.GeoCoordinates{Latitude: 48.8566, Longitude: 2.3522},
			PickupTime:  pickupTime,
		})

		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestRideServer_ScheduleRide(t *testing.T) {
	rideID := value.NewRideID()
	pickupTime := time.Now().Add(time.Hour).UTC()

	t.Run("accepts a valid schedule command", func(t *testing.T) {
		commandService := new(MockRideCommandService)
		server, err := NewRideServer(commandService, new(MockRideQueryService))
		require.NoError(t, err)

		commandService.On("Execute", mock.Anything, mock.MatchedBy(func(command rides.Command) bool {
			schedule, ok := command.(rides.ScheduleRide)
			return ok && schedule.Ride == rideID
		})).Return(rideID, nil)

		resp, err := server.ScheduleRide(context.Background(), &autonomopb.ScheduleRideCommand{
			Id:         rideID.String(),
			Vin:        "1FTZX1722XKA76091",
			PickupTime: pickupTime,
		})

		require.NoError(t, err)
		assert.Equal(t, rideID.String(), resp.Id)
		commandService.AssertExpectations(t)
	})

	t.Run("maps a command rejection to InvalidArgument", func(t *testing.T) {
		commandService := new(MockRideCommandService)
		server, err := NewRideServer(commandService, new(MockRideQueryService))
		require.NoError(t, err)

		commandService.On("Execute", mock.Anything, mock.Anything).
			Return(value.RideID{}, &rides.CommandError{Command: "ScheduleRide", State: rides.StateInitial, Reason: "only requested rides can be scheduled"})

		_, err = server.ScheduleRide(context.Background(), &autonomopb.ScheduleRideCommand{
			Id:         rideID.String(),
			Vin:        "1FTZX1722XKA76091",
			PickupTime: pickupTime,
		})

		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestRideServer_CancelRide(t *testing.T) {
	rideID := value.NewRideID()

	commandService := new(MockRideCommandService)
	server, err := NewRideServer(commandService, new(MockRideQueryService))
	require.NoError(t, err)

	commandService.On("Execute", mock.Anything, rides.CancelRide{Ride: rideID}).Return(rideID, nil)

	resp, err := server.CancelRide(context.Background(), &autonomopb.CancelRideCommand{Id: rideID.String()})

	require.NoError(t, err)
	assert.Equal(t, rideID.String(), resp.Id)
	commandService.AssertExpectations(t)
}
