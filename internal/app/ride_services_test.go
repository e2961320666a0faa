//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	pkgTesting "github.com/dclimber/autonomo/internal/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrigin(t *testing.T) value.GeoCoordinates {
	t.Helper()
	coords, err := value.NewGeoCoordinates(37.3861, -122.0839)
	require.NoError(t, err)
	return coords
}

func testDestination(t *testing.T) value.GeoCoordinates {
	t.Helper()
	coords, err := value.NewGeoCoordinates(40.4249, -111.7979)
	require.NoError(t, err)
	return coords
}

func testVin(t *testing.T) value.Vin {
	t.Helper()
	vin, err := value.NewVin("1FTZX1722XKA76091")
	require.NoError(t, err)
	return vin
}

func TestRideCommandService_Execute_RequestRide(t *testing.T) {
	rideRepo := new(MockRideRepository)
	publisher := new(MockRideEventPublisher)
	service, err := NewRideCommandService(rideRepo, publisher, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)

	command := rides.RequestRide{
		Rider:       value.NewUserID(),
		Origin:      testOrigin(t),
		Destination: testDestination(t),
		PickupTime:  time.Now(),
	}
	publisher.On("PublishRideEvents", mock.Anything, mock.MatchedBy(func(events []rides.Event) bool {
		if len(events) != 1 {
			return false
		}
		_, ok := events[0].(rides.RideRequested)
		return ok
	})).Return(nil)

	rideID, err := service.Execute(context.Background(), command)

	require.NoError(t, err)
	assert.NotEqual(t, value.RideID{}, rideID)
	rideRepo.AssertNotCalled(t, "GetByID")
	publisher.AssertExpectations(t)
}

func TestRideCommandService_Execute_ScheduleRide(t *testing.T) {
	rideRepo := new(MockRideRepository)
	publisher := new(MockRideEventPublisher)
	service, err := NewRideCommandService(rideRepo, publisher, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)

	rideID := value.NewRideID()
	now := time.Now()
	requested := rides.RequestedRide{
		ID:                  rideID,
		Rider:               value.NewUserID(),
		RequestedPickupTime: now,
		PickupLocation:      testOrigin(t),
		DropOffLocation:     testDestination(t),
		RequestedAt:         now,
	}
	rideRepo.On("GetByID", mock.Anything, rideID).Return(requested, nil)
	publisher.On("PublishRideEvents", mock.Anything, mock.Anything).Return(nil)

	command := rides.ScheduleRide{Ride: rideID, Vin: testVin(t), PickupTime: now}
	returnedID, err := service.Execute(context.Background(), command)

	require.NoError(t, err)
	assert.Equal(t, rideID, returnedID)
	publisher.AssertExpectations(t)
}

func TestRideCommandService_Execute_UnknownRideDecidesOnInitialState(t *testing.T) {
	rideRepo := new(MockRideRepository)
	publisher := new(MockRideEventPublisher)
	service, err := NewRideCommandService(rideRepo, publisher, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)

	rideID := value.NewRideID()
	rideRepo.On("GetByID", mock.Anything, rideID).Return(nil, rides.ErrNotFound)

	command := rides.CancelRide{Ride: rideID}
	_, err = service.Execute(context.Background(), command)

	var cmdErr *rides.CommandError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cmdErr))
	publisher.AssertNotCalled(t, "PublishRideEvents")
}

func TestRideCommandService_Execute_PublishFailure(t *testing.T) {
	rideRepo := new(MockRideRepository)
	publisher := new(MockRideEventPublisher)
	service, err := NewRideCommandService(rideRepo, publisher, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)

	command := rides.RequestRide{
		Rider:       value.NewUserID(),
		Origin:      testOrigin(t),
		Destination: testDestination(t),
		PickupTime:  time.Now(),
	}
	publisher.On("PublishRideEvents", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	_, err = service.Execute(context.Background(), command)
	assert.Error(t, err)
}

func TestRideQueryService_GetByID(t *testing.T) {
	rideRepo := new(MockRideRepository)
	service, err := NewRideQueryService(rideRepo, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)

	rideID := value.NewRideID()
	now := time.Now()
	requested := rides.RequestedRide{
		ID:                  rideID,
		Rider:               value.NewUserID(),
		RequestedPickupTime: now,
		PickupLocation:      testOrigin(t),
		DropOffLocation:     testDestination(t),
		RequestedAt:         now,
	}
	rideRepo.On("GetByID", mock.Anything, rideID).Return(requested, nil)

	ride, err := service.GetByID(context.Background(), rideID)

	require.NoError(t, err)
	assert.Equal(t, rides.Ride(requested), ride)
}

func TestRideQueryService_GetByID_NotFound(t *testing.T) {
	rideRepo := new(MockRideRepository)
	service, err := NewRideQueryService(rideRepo, pkgTesting.SetupTestLogger(t))
	require.NoError(t, err)

	rideID := value.NewRideID()
	rideRepo.On("GetByID", mock.Anything, rideID).Return(nil, rides.ErrNotFound)

	_, err = service.GetByID(context.Background(), rideID)
	assert.ErrorIs(t, err, rides.ErrNotFound)
}
