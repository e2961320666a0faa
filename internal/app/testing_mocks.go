//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/stretchr/testify/mock"
)

// MockRideRepository is a mock implementation of rides.Repository
type MockRideRepository struct {
	mock.Mock
}

func (m *MockRideRepository) Save(ctx context.Context, state rides.Ride) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockRideRepository) GetByID(ctx context.Context, id value.RideID) (rides.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rides.Ride), args.Error(1)
}

// MockRideEventPublisher is a mock implementation of rides.EventPublisher
type MockRideEventPublisher struct {
	mock.Mock
}

func (m *MockRideEventPublisher) PublishRideEvents(ctx context.Context, events []rides.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of vehicles.Repository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Save(ctx context.Context, state vehicles.Vehicle) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByVin(ctx context.Context, vin value.Vin) (vehicles.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vehicles.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByOwner(ctx context.Context, owner value.UserID) ([]vehicles.Vehicle, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vehicles.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListAvailable(ctx context.Context) ([]vehicles.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vehicles.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) DeleteByVin(ctx context.Context, vin value.Vin) error {
	args := m.Called(ctx, vin)
	return args.Error(0)
}

// MockVehicleEventPublisher is a mock implementation of vehicles.EventPublisher
type MockVehicleEventPublisher struct {
	mock.Mock
}

func (m *MockVehicleEventPublisher) PublishVehicleEvents(ctx context.Context, events []vehicles.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
