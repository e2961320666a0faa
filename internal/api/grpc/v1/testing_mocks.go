//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/stretchr/testify/mock"
)

// MockRideCommandService is a mock implementation of rides.CommandService
type MockRideCommandService struct {
	mock.Mock
}

func (m *MockRideCommandService) Execute(ctx context.Context, command rides.Command) (value.RideID, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(value.RideID), args.Error(1)
}

// MockRideQueryService is a mock implementation of rides.QueryService
type MockRideQueryService struct {
	mock.Mock
}

func (m *MockRideQueryService) GetByID(ctx context.Context, id value.RideID) (rides.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rides.Ride), args.Error(1)
}

// MockVehicleCommandService is a mock implementation of vehicles.CommandService
type MockVehicleCommandService struct {
	mock.Mock
}

func (m *MockVehicleCommandService) Execute(ctx context.Context, command vehicles.Command) (value.Vin, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(value.Vin), args.Error(1)
}

// MockVehicleQueryService is a mock implementation of vehicles.QueryService
type MockVehicleQueryService struct {
	mock.Mock
}

func (m *MockVehicleQueryService) GetByVin(ctx context.Context, vin value.Vin) (vehicles.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vehicles.Vehicle), args.Error(1)
}

func (m *MockVehicleQueryService) ListByOwner(ctx context.Context, owner value.UserID) ([]vehicles.Vehicle, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vehicles.Vehicle), args.Error(1)
}

func (m *MockVehicleQueryService) ListAvailable(ctx context.Context) ([]vehicles.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vehicles.Vehicle), args.Error(1)
}
