package autonomopb

import "time"

// GeoCoordinates is a latitude/longitude pair.
type GeoCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RideQuery requests the read model of a single ride.
type RideQuery struct {
	Id string `json:"id"`
}

// RequestRideCommand asks for a new ride between two locations.
type RequestRideCommand struct {
	Rider       string          `json:"rider"`
	Origin      *GeoCoordinates `json:"origin"`
	Destination *GeoCoordinates `json:"destination"`
	PickupTime  time.Time       `json:"pickupTime"`
}

// ScheduleRideCommand assigns a vehicle to a requested ride.
type ScheduleRideCommand struct {
	Id         string    `json:"id"`
	Vin        string    `json:"vin"`
	PickupTime time.Time `json:"pickupTime"`
}

// ConfirmPickupCommand records that the assigned vehicle picked the rider up.
type ConfirmPickupCommand struct {
	Id             string          `json:"id"`
	Vin            string          `json:"vin"`
	Rider          string          `json:"rider"`
	PickupLocation *GeoCoordinates `json:"pickupLocation"`
}

// EndRideCommand records that the rider was dropped off.
type EndRideCommand struct {
	Id              string          `json:"id"`
	DropOffLocation *GeoCoordinates `json:"dropOffLocation"`
}

// CancelRideCommand cancels a requested or scheduled ride.
type CancelRideCommand struct {
	Id string `json:"id"`
}

// CommandAccepted confirms that a command's events were published. Id carries
// the ride id or VIN the events address.
type CommandAccepted struct {
	Id string `json:"id"`
}

// RideStateResponse is a ride read model. Fields that do not apply to the
// ride's current state are omitted.
type RideStateResponse struct {
	Id              string          `json:"id"`
	State           string          `json:"state"`
	Rider           string          `json:"rider"`
	Vin             string          `json:"vin,omitempty"`
	PickupLocation  *GeoCoordinates `json:"pickupLocation,omitempty"`
	DropOffLocation *GeoCoordinates `json:"dropOffLocation,omitempty"`
	RequestedAt     *time.Time      `json:"requestedAt,omitempty"`
	ScheduledAt     *time.Time      `json:"scheduledAt,omitempty"`
	PickedUpAt      *time.Time      `json:"pickedUpAt,omitempty"`
	DroppedOffAt    *time.Time      `json:"droppedOffAt,omitempty"`
	CancelledAt     *time.Time      `json:"cancelledAt,omitempty"`
}

// VehicleQuery requests the read model of a single vehicle.
type VehicleQuery struct {
	Vin string `json:"vin"`
}

// OwnerQuery requests all vehicles contributed by an owner.
type OwnerQuery struct {
	Owner string `json:"owner"`
}

// ListAvailableQuery requests all vehicles currently available for rides.
type ListAvailableQuery struct{}

// AddVehicleCommand contributes a vehicle to the fleet.
type AddVehicleCommand struct {
	Vin   string `json:"vin"`
	Owner string `json:"owner"`
}

// VehicleCommand addresses an existing vehicle by VIN.
type VehicleCommand struct {
	Vin string `json:"vin"`
}

// RemoveVehicleCommand withdraws an inventory vehicle from the fleet.
type RemoveVehicleCommand struct {
	Vin   string `json:"vin"`
	Owner string `json:"owner"`
}

// VehicleStateResponse is a vehicle read model.
type VehicleStateResponse struct {
	Vin   string `json:"vin"`
	Owner string `json:"owner"`
	State string `json:"state"`
}

// VehicleListResponse is a list of vehicle read models.
type VehicleListResponse struct {
	Vehicles []*VehicleStateResponse `json:"vehicles"`
}
