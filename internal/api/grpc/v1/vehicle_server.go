package v1

import (
	"context"
	"errors"

	"github.com/dclimber/autonomo/internal/api/grpc/v1/autonomopb"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// VehicleServer handles gRPC requests for vehicle commands and queries
type VehicleServer struct {
	autonomopb.UnimplementedVehiclesServer
	commandService vehicles.CommandService
	queryService   vehicles.QueryService
}

// NewVehicleServer creates a new instance of VehicleServer.
func NewVehicleServer(commandService vehicles.CommandService, queryService vehicles.QueryService) (*VehicleServer, error) {
	return &VehicleServer{
		commandService: commandService,
		queryService:   queryService,
	}, nil
}

// GetVehicle fetches the read-model state of a vehicle
func (s *VehicleServer) GetVehicle(ctx context.Context, req *autonomopb.VehicleQuery) (*autonomopb.VehicleStateResponse, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	vehicle, err := s.queryService.GetByVin(ctx, vin)
	if err != nil {
		if errors.Is(err, vehicles.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "no vehicle with VIN: %s", vin)
		}
		return nil, status.Errorf(codes.Internal, "failed to get vehicle: %v", err)
	}

	return vehicleStateResponse(vehicle), nil
}

// ListMine lists all vehicles contributed by an owner
func (s *VehicleServer) ListMine(ctx context.Context, req *autonomopb.OwnerQuery) (*autonomopb.VehicleListResponse, error) {
	owner, err := value.ParseUserID(req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	owned, err := s.queryService.ListByOwner(ctx, owner)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list vehicles: %v", err)
	}

	response := &autonomopb.VehicleListResponse{Vehicles: []*autonomopb.VehicleStateResponse{}}
	for _, vehicle := range owned {
		response.Vehicles = append(response.Vehicles, vehicleStateResponse(vehicle))
	}
	return response, nil
}

// ListAvailable streams all vehicles currently available for rides
func (s *VehicleServer) ListAvailable(_ *autonomopb.ListAvailableQuery, stream autonomopb.Vehicles_ListAvailableServer) error {
	available, err := s.queryService.ListAvailable(stream.Context())
	if err != nil {
		return status.Errorf(codes.Internal, "failed to list available vehicles: %v", err)
	}

	for _, vehicle := range available {
		if err := stream.Send(vehicleStateResponse(vehicle)); err != nil {
			return status.Errorf(codes.Internal, "failed to send vehicle: %v", err)
		}
	}
	return nil
}

// AddVehicle contributes a vehicle to the fleet
func (s *VehicleServer) AddVehicle(ctx context.Context, req *autonomopb.AddVehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	owner, err := value.ParseUserID(req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.AddVehicle{Vin: vin, Owner: owner})
}

// MakeAvailable offers an inventory vehicle for rides
func (s *VehicleServer) MakeAvailable(ctx context.Context, req *autonomopb.VehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.MakeVehicleAvailable{Vin: vin})
}

// RequestReturn asks for a vehicle to return to its owner
func (s *VehicleServer) RequestReturn(ctx context.Context, req *autonomopb.VehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.RequestVehicleReturn{Vin: vin})
}

// RemoveVehicle withdraws an inventory vehicle from the fleet
func (s *VehicleServer) RemoveVehicle(ctx context.Context, req *autonomopb.RemoveVehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	owner, err := value.ParseUserID(req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.RemoveVehicle{Vin: vin, Owner: owner})
}

// MarkOccupied records that a rider occupies an available vehicle
func (s *VehicleServer) MarkOccupied(ctx context.Context, req *autonomopb.VehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.MarkVehicleOccupied{Vin: vin})
}

// MarkUnoccupied records that the rider left an occupied vehicle
func (s *VehicleServer) MarkUnoccupied(ctx context.Context, req *autonomopb.VehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.MarkVehicleUnoccupied{Vin: vin})
}

// ConfirmReturn records that a returning vehicle arrived back with its owner
func (s *VehicleServer) ConfirmReturn(ctx context.Context, req *autonomopb.VehicleCommand) (*autonomopb.CommandAccepted, error) {
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, vehicles.ConfirmVehicleReturn{Vin: vin})
}

func (s *VehicleServer) execute(ctx context.Context, command vehicles.Command) (*autonomopb.CommandAccepted, error) {
	vin, err := s.commandService.Execute(ctx, command)
	if err != nil {
		var cmdErr *vehicles.CommandError
		if errors.As(err, &cmdErr) {
			return nil, status.Errorf(codes.InvalidArgument, "failed: %v", err)
		}
		return nil, status.Errorf(codes.Internal, "failed to execute command: %v", err)
	}

	return &autonomopb.CommandAccepted{Id: vin.String()}, nil
}

// RegisterVehicleServer registers the Vehicles gRPC service
func RegisterVehicleServer(server *grpc.Server, vehicleServer *VehicleServer) {
	autonomopb.RegisterVehiclesServer(server, vehicleServer)
}

func vehicleStateResponse(vehicle vehicles.Vehicle) *autonomopb.VehicleStateResponse {
	response := &autonomopb.VehicleStateResponse{State: vehicle.StateName()}
	switch s := vehicle.(type) {
	case vehicles.InventoryVehicle:
		response.Vin = s.Vin.String()
		response.Owner = s.Owner.String()
	case vehicles.AvailableVehicle:
		response.Vin = s.Vin.String()
		response.Owner = s.Owner.String()
	case vehicles.OccupiedVehicle:
		response.Vin = s.Vin.String()
		response.Owner = s.Owner.String()
	case vehicles.OccupiedReturningVehicle:
		response.Vin = s.Vin.String()
		response.Owner = s.Owner.String()
	case vehicles.ReturningVehicle:
		response.Vin = s.Vin.String()
		response.Owner = s.Owner.String()
	}
	return response
}
