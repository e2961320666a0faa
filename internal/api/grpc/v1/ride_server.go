package v1

import (
	"context"
	"errors"
	"time"

	"github.com/dclimber/autonomo/internal/api/grpc/v1/autonomopb"
	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RideServer handles gRPC requests for ride commands and queries
type RideServer struct {
	autonomopb.UnimplementedRidesServer
	commandService rides.CommandService
	queryService   rides.QueryService
}

// NewRideServer creates a new instance of RideServer.
func NewRideServer(commandService rides.CommandService, queryService rides.QueryService) (*RideServer, error) {
	return &RideServer{
		commandService: commandService,
		queryService:   queryService,
	}, nil
}

// GetRide fetches the read-model state of a ride
func (s *RideServer) GetRide(ctx context.Context, req *autonomopb.RideQuery) (*autonomopb.RideStateResponse, error) {
	id, err := value.ParseRideID(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	ride, err := s.queryService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rides.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "no ride with id: %s", id)
		}
		return nil, status.Errorf(codes.Internal, "failed to get ride: %v", err)
	}

	return rideStateResponse(ride), nil
}

// RequestRide requests a new ride between two locations
func (s *RideServer) RequestRide(ctx context.Context, req *autonomopb.RequestRideCommand) (*autonomopb.CommandAccepted, error) {
	rider, err := value.ParseUserID(req.Rider)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	origin, err := geoFromWire(req.Origin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	destination, err := geoFromWire(req.Destination)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, rides.RequestRide{
		Rider:       rider,
		Origin:      origin,
		Destination: destination,
		PickupTime:  req.PickupTime,
	})
}

// ScheduleRide assigns a vehicle to a requested ride
func (s *RideServer) ScheduleRide(ctx context.Context, req *autonomopb.ScheduleRideCommand) (*autonomopb.CommandAccepted, error) {
	id, err := value.ParseRideID(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, rides.ScheduleRide{Ride: id, Vin: vin, PickupTime: req.PickupTime})
}

// ConfirmPickup records that the assigned vehicle picked the rider up
func (s *RideServer) ConfirmPickup(ctx context.Context, req *autonomopb.ConfirmPickupCommand) (*autonomopb.CommandAccepted, error) {
	id, err := value.ParseRideID(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	vin, err := value.NewVin(req.Vin)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	rider, err := value.ParseUserID(req.Rider)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	location, err := geoFromWire(req.PickupLocation)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, rides.ConfirmPickup{
		Ride:           id,
		Vin:            vin,
		Rider:          rider,
		PickupLocation: location,
	})
}

// EndRide records that the rider was dropped off, completing the ride
func (s *RideServer) EndRide(ctx context.Context, req *autonomopb.EndRideCommand) (*autonomopb.CommandAccepted, error) {
	id, err := value.ParseRideID(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	location, err := geoFromWire(req.DropOffLocation)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, rides.EndRide{Ride: id, DropOffLocation: location})
}

// CancelRide cancels a requested or scheduled ride
func (s *RideServer) CancelRide(ctx context.Context, req *autonomopb.CancelRideCommand) (*autonomopb.CommandAccepted, error) {
	id, err := value.ParseRideID(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return s.execute(ctx, rides.CancelRide{Ride: id})
}

func (s *RideServer) execute(ctx context.Context, command rides.Command) (*autonomopb.CommandAccepted, error) {
	rideID, err := s.commandService.Execute(ctx, command)
	if err != nil {
		var cmdErr *rides.CommandError
		if errors.As(err, &cmdErr) {
			return nil, status.Errorf(codes.InvalidArgument, "failed: %v", err)
		}
		return nil, status.Errorf(codes.Internal, "failed to execute command: %v", err)
	}

	return &autonomopb.CommandAccepted{Id: rideID.String()}, nil
}

// RegisterRideServer registers the Rides gRPC service
func RegisterRideServer(server *grpc.Server, rideServer *RideServer) {
	autonomopb.RegisterRidesServer(server, rideServer)
}

func geoFromWire(c *autonomopb.GeoCoordinates) (value.GeoCoordinates, error) {
	if c == nil {
		return value.GeoCoordinates{}, errors.New("missing coordinates")
	}
	return value.NewGeoCoordinates(c.Latitude, c.Longitude)
}

func geoToWire(c value.GeoCoordinates) *autonomopb.GeoCoordinates {
	return &autonomopb.GeoCoordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func wireTime(t time.Time) *time.Time { return &t }

func rideStateResponse(ride rides.Ride) *autonomopb.RideStateResponse {
	response := &autonomopb.RideStateResponse{State: ride.StateName()}
	switch s := ride.(type) {
	case rides.RequestedRide:
		response.Id = s.ID.String()
		response.Rider = s.Rider.String()
		response.PickupLocation = geoToWire(s.PickupLocation)
		response.DropOffLocation = geoToWire(s.DropOffLocation)
		response.RequestedAt = wireTime(s.RequestedAt)
	case rides.ScheduledRide:
		response.Id = s.ID.String()
		response.Rider = s.Rider.String()
		response.Vin = s.Vin.String()
		response.PickupLocation = geoToWire(s.PickupLocation)
		response.DropOffLocation = geoToWire(s.DropOffLocation)
		response.ScheduledAt = wireTime(s.ScheduledAt)
	case rides.InProgressRide:
		response.Id = s.ID.String()
		response.Rider = s.Rider.String()
		response.Vin = s.Vin.String()
		response.PickupLocation = geoToWire(s.PickupLocation)
		response.DropOffLocation = geoToWire(s.DropOffLocation)
		response.ScheduledAt = wireTime(s.ScheduledAt)
		response.PickedUpAt = wireTime(s.PickedUpAt)
	case rides.CompletedRide:
		response.Id = s.ID.String()
		response.Rider = s.Rider.String()
		response.Vin = s.Vin.String()
		response.PickupLocation = geoToWire(s.PickupLocation)
		response.DropOffLocation = geoToWire(s.DropOffLocation)
		response.PickedUpAt = wireTime(s.PickedUpAt)
		response.DroppedOffAt = wireTime(s.DroppedOffAt)
	case rides.CancelledRequestedRide:
		response.Id = s.ID.String()
		response.Rider = s.Rider.String()
		response.PickupLocation = geoToWire(s.PickupLocation)
		response.DropOffLocation = geoToWire(s.DropOffLocation)
		response.CancelledAt = wireTime(s.CancelledAt)
	case rides.CancelledScheduledRide:
		response.Id = s.ID.String()
		response.Rider = s.Rider.String()
		response.PickupLocation = geoToWire(s.PickupLocation)
		response.DropOffLocation = geoToWire(s.DropOffLocation)
		response.ScheduledAt = wireTime(s.ScheduledAt)
		response.CancelledAt = wireTime(s.CancelledAt)
	}
	return response
}
