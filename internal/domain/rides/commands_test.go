//go:build unit
// +build unit

package rides

import (
	"errors"
	"testing"
	"time"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/stretchr/testify/assert"
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

func requestedRide(t *testing.T, id value.RideID, rider value.UserID) RequestedRide {
	t.Helper()
	now := time.Now()
	return RequestedRide{
		ID:                  id,
		Rider:               rider,
		RequestedPickupTime: now,
		PickupLocation:      testOrigin(t),
		DropOffLocation:     testDestination(t),
		RequestedAt:         now,
	}
}

func scheduledRide(t *testing.T, id value.RideID, rider value.UserID) ScheduledRide {
	t.Helper()
	now := time.Now()
	return ScheduledRide{
		ID:                  id,
		Rider:               rider,
		ScheduledPickupTime: now,
		PickupLocation:      testOrigin(t),
		DropOffLocation:     testDestination(t),
		Vin:                 testVin(t),
		ScheduledAt:         now,
	}
}

func inProgressRide(t *testing.T, id value.RideID, rider value.UserID) InProgressRide {
	t.Helper()
	now := time.Now()
	return InProgressRide{
		ID:                  id,
		Rider:               rider,
		PickupLocation:      testOrigin(t),
		DropOffLocation:     testDestination(t),
		ScheduledPickupTime: now,
		Vin:                 testVin(t),
		ScheduledAt:         now,
		PickedUpAt:          now,
	}
}

func TestRequestRideDecide(t *testing.T) {
	rider := value.NewUserID()
	command := RequestRide{
		Rider:       rider,
		Origin:      testOrigin(t),
		Destination: testDestination(t),
		PickupTime:  time.Now(),
	}

	t.Run("on initial state creates RideRequested", func(t *testing.T) {
		events, err := command.Decide(InitialRideState{})

		require.NoError(t, err)
		require.Len(t, events, 1)
		requested, ok := events[0].(RideRequested)
		require.True(t, ok)
		assert.Equal(t, rider, requested.Rider)
		assert.NotEqual(t, value.RideID{}, requested.Ride)
	})

	t.Run("on existing ride returns command error", func(t *testing.T) {
		state := requestedRide(t, value.NewRideID(), rider)

		_, err := command.Decide(state)

		var cmdErr *CommandError
		require.Error(t, err)
		assert.True(t, errors.As(err, &cmdErr))
	})
}

func TestScheduleRideDecide(t *testing.T) {
	rideID := value.NewRideID()
	command := ScheduleRide{Ride: rideID, Vin: testVin(t), PickupTime: time.Now()}

	t.Run("on requested ride creates RideScheduled", func(t *testing.T) {
		events, err := command.Decide(requestedRide(t, rideID, value.NewUserID()))

		require.NoError(t, err)
		require.Len(t, events, 1)
		scheduled, ok := events[0].(RideScheduled)
		require.True(t, ok)
		assert.Equal(t, rideID, scheduled.Ride)
		assert.Equal(t, testVin(t), scheduled.Vin)
	})

	t.Run("on initial state returns command error", func(t *testing.T) {
		_, err := command.Decide(InitialRideState{})

		var cmdErr *CommandError
		require.Error(t, err)
		assert.True(t, errors.As(err, &cmdErr))
	})
}

func TestConfirmPickupDecide(t *testing.T) {
	rideID := value.NewRideID()
	rider := value.NewUserID()
	command := ConfirmPickup{
		Ride:           rideID,
		Vin:            testVin(t),
		Rider:          rider,
		PickupLocation: testOrigin(t),
	}

	t.Run("on scheduled ride creates RiderPickedUp", func(t *testing.T) {
		events, err := command.Decide(scheduledRide(t, rideID, rider))

		require.NoError(t, err)
		require.Len(t, events, 1)
		pickedUp, ok := events[0].(RiderPickedUp)
		require.True(t, ok)
		assert.Equal(t, rideID, pickedUp.Ride)
		assert.Equal(t, rider, pickedUp.Rider)
	})

	t.Run("on initial state returns command error", func(t *testing.T) {
		_, err := command.Decide(InitialRideState{})

		var cmdErr *CommandError
		require.Error(t, err)
		assert.True(t, errors.As(err, &cmdErr))
	})
}

func TestEndRideDecide(t *testing.T) {
	rideID := value.NewRideID()
	command := EndRide{Ride: rideID, DropOffLocation: testDestination(t)}

	t.Run("on in-progress ride creates RiderDroppedOff", func(t *testing.T) {
		events, err := command.Decide(inProgressRide(t, rideID, value.NewUserID()))

		require.NoError(t, err)
		require.Len(t, events, 1)
		droppedOff, ok := events[0].(RiderDroppedOff)
		require.True(t, ok)
		assert.Equal(t, rideID, droppedOff.Ride)
		assert.Equal(t, testVin(t), droppedOff.Vin)
	})

	t.Run("on initial state returns command error", func(t *testing.T) {
		_, err := command.Decide(InitialRideState{})

		var cmdErr *CommandError
		require.Error(t, err)
		assert.True(t, errors.As(err, &cmdErr))
	})
}

func TestCancelRideDecide(t *testing.T) {
	rideID := value.NewRideID()
	command := CancelRide{Ride: rideID}

	t.Run("on requested ride creates RequestedRideCancelled", func(t *testing.T) {
		events, err := command.Decide(requestedRide(t, rideID, value.NewUserID()))

		require.NoError(t, err)
		require.Len(t, events, 1)
		_, ok := events[0].(RequestedRideCancelled)
		assert.True(t, ok)
	})

	t.Run("on scheduled ride creates ScheduledRideCancelled", func(t *testing.T) {
		events, err := command.Decide(scheduledRide(t, rideID, value.NewUserID()))

		require.NoError(t, err)
		require.Len(t, events, 1)
		cancelled, ok := events[0].(ScheduledRideCancelled)
		require.True(t, ok)
		assert.Equal(t, testVin(t), cancelled.Vin)
	})

	t.Run("on initial state returns command error", func(t *testing.T) {
		_, err := command.Decide(InitialRideState{})

		var cmdErr *CommandError
		require.Error(t, err)
		assert.True(t, errors.As(err, &cmdErr))
	})

	t.Run("on in-progress ride returns command error", func(t *testing.T) {
		_, err := command.Decide(inProgressRide(t, rideID, value.NewUserID()))

		var cmdErr *CommandError
		require.Error(t, err)
		assert.True(t, errors.As(err, &cmdErr))
	})
}
