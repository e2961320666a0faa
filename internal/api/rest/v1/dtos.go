package v1

import (
	"fmt"
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/go-playground/validator/v10"
)

// GeoCoordinatesRequest carries a latitude/longitude pair in request bodies
type GeoCoordinatesRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// ToDomain converts the request coordinates into the validated value object
func (r GeoCoordinatesRequest) ToDomain() (value.GeoCoordinates, error) {
	return value.NewGeoCoordinates(r.Latitude, r.Longitude)
}

// RequestRideRequest represents the request payload for requesting a ride
type RequestRideRequest struct {
	Rider       string                `json:"rider" validate:"required,uuid"`
	Origin      GeoCoordinatesRequest `json:"origin" validate:"required"`
	Destination GeoCoordinatesRequest `json:"destination" validate:"required"`
	PickupTime  time.Time             `json:"pickupTime" validate:"required"`
}

// Validate checks the RequestRideRequest fields
func (r *RequestRideRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for RequestRideRequest: %w", err)
	}
	return nil
}

// ScheduleRideRequest represents the request payload for scheduling a ride
type ScheduleRideRequest struct {
	Vin        string    `json:"vin" validate:"required,len=17"`
	PickupTime time.Time `json:"pickupTime" validate:"required"`
}

// Validate checks the ScheduleRideRequest fields
func (r *ScheduleRideRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ScheduleRideRequest: %w", err)
	}
	return nil
}

// ConfirmPickupRequest represents the request payload for confirming a pickup
type ConfirmPickupRequest struct {
	Vin            string                `json:"vin" validate:"required,len=17"`
	Rider          string                `json:"rider" validate:"required,uuid"`
	PickupLocation GeoCoordinatesRequest `json:"pickupLocation" validate:"required"`
}

// Validate checks the ConfirmPickupRequest fields
func (r *ConfirmPickupRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ConfirmPickupRequest: %w", err)
	}
	return nil
}

// EndRideRequest represents the request payload for ending a ride
type EndRideRequest struct {
	DropOffLocation GeoCoordinatesRequest `json:"dropOffLocation" validate:"required"`
}

// Validate checks the EndRideRequest fields
func (r *EndRideRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for EndRideRequest: %w", err)
	}
	return nil
}

// AddVehicleRequest represents the request payload for adding a vehicle to the fleet
type AddVehicleRequest struct {
	Vin   string `json:"vin" validate:"required,len=17"`
	Owner string `json:"owner" validate:"required,uuid"`
}

// Validate checks the AddVehicleRequest fields
func (r *AddVehicleRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for AddVehicleRequest: %w", err)
	}
	return nil
}

// GeoCoordinatesResponse carries a latitude/longitude pair in responses
type GeoCoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RideResponse represents a ride read model in responses. Fields that do not
// apply to the ride's current state are omitted.
type RideResponse struct {
	ID              string                  `json:"id"`
	State           string                  `json:"state"`
	Rider           string                  `json:"rider"`
	Vin             string                  `json:"vin,omitempty"`
	PickupLocation  *GeoCoordinatesResponse `json:"pickupLocation,omitempty"`
	DropOffLocation *GeoCoordinatesResponse `json:"dropOffLocation,omitempty"`
	RequestedAt     *time.Time              `json:"requestedAt,omitempty"`
	ScheduledAt     *time.Time              `json:"scheduledAt,omitempty"`
	PickedUpAt      *time.Time              `json:"pickedUpAt,omitempty"`
	DroppedOffAt    *time.Time              `json:"droppedOffAt,omitempty"`
	CancelledAt     *time.Time              `json:"cancelledAt,omitempty"`
}

// VehicleResponse represents a vehicle read model in responses
type VehicleResponse struct {
	Vin   string `json:"vin"`
	Owner string `json:"owner"`
	State string `json:"state"`
}

// CommandAcceptedResponse confirms that a command's events were published
type CommandAcceptedResponse struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}

// ErrorResponse contains an error message in responses
type ErrorResponse struct {
	Message string `json:"message"`
}

func geoResponse(c value.GeoCoordinates) *GeoCoordinatesResponse {
	return &GeoCoordinatesResponse{Latitude: c.Latitude, Longitude: c.Longitude}
}

func timeResponse(t time.Time) *time.Time { return &t }

// NewRideResponse converts a ride read model into its response representation
func NewRideResponse(ride rides.Ride) RideResponse {
	response := RideResponse{State: ride.StateName()}
	switch s := ride.(type) {
	case rides.RequestedRide:
		response.ID = s.ID.String()
		response.Rider = s.Rider.String()
		response.PickupLocation = geoResponse(s.PickupLocation)
		response.DropOffLocation = geoResponse(s.DropOffLocation)
		response.RequestedAt = timeResponse(s.RequestedAt)
	case rides.ScheduledRide:
		response.ID = s.ID.String()
		response.Rider = s.Rider.String()
		response.Vin = s.Vin.String()
		response.PickupLocation = geoResponse(s.PickupLocation)
		response.DropOffLocation = geoResponse(s.DropOffLocation)
		response.ScheduledAt = timeResponse(s.ScheduledAt)
	case rides.InProgressRide:
		response.ID = s.ID.String()
		response.Rider = s.Rider.String()
		response.Vin = s.Vin.String()
		response.PickupLocation = geoResponse(s.PickupLocation)
		response.DropOffLocation = geoResponse(s.DropOffLocation)
		response.ScheduledAt = timeResponse(s.ScheduledAt)
		response.PickedUpAt = timeResponse(s.PickedUpAt)
	case rides.CompletedRide:
		response.ID = s.ID.String()
		response.Rider = s.Rider.String()
		response.Vin = s.Vin.String()
		response.PickupLocation = geoResponse(s.PickupLocation)
		response.DropOffLocation = geoResponse(s.DropOffLocation)
		response.PickedUpAt = timeResponse(s.PickedUpAt)
		response.DroppedOffAt = timeResponse(s.DroppedOffAt)
	case rides.CancelledRequestedRide:
		response.ID = s.ID.String()
		response.Rider = s.Rider.String()
		response.PickupLocation = geoResponse(s.PickupLocation)
		response.DropOffLocation = geoResponse(s.DropOffLocation)
		response.CancelledAt = timeResponse(s.CancelledAt)
	case rides.CancelledScheduledRide:
		response.ID = s.ID.String()
		response.Rider = s.Rider.String()
		response.PickupLocation = geoResponse(s.PickupLocation)
		response.DropOffLocation = geoResponse(s.DropOffLocation)
		response.ScheduledAt = timeResponse(s.ScheduledAt)
		response.CancelledAt = timeResponse(s.CancelledAt)
	}
	return response
}

// NewVehicleResponse converts a vehicle read model into its response representation
func NewVehicleResponse(vehicle vehicles.Vehicle) VehicleResponse {
	response := VehicleResponse{State: vehicle.StateName()}
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
