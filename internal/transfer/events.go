// Package transfer converts domain events and states to and from their
// serialized forms: JSON event envelopes on the message bus and JSON state
// documents in the read-model store.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
)

// UnknownTypeError indicates an envelope or document whose type discriminator
// is not recognized.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type discriminator: %s", e.Type)
}

// envelope wraps a serialized event with its type discriminator.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type geoCoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toGeoDTO(c value.GeoCoordinates) geoCoordinatesDTO {
	return geoCoordinatesDTO{Latitude: c.Latitude, Longitude: c.Longitude}
}

func fromGeoDTO(d geoCoordinatesDTO) (value.GeoCoordinates, error) {
	return value.NewGeoCoordinates(d.Latitude, d.Longitude)
}

type rideRequestedDTO struct {
	Ride        string            `json:"ride"`
	Rider       string            `json:"rider"`
	Origin      geoCoordinatesDTO `json:"origin"`
	Destination geoCoordinatesDTO `json:"destination"`
	PickupTime  time.Time         `json:"pickupTime"`
	RequestedAt time.Time         `json:"requestedAt"`
}

type rideScheduledDTO struct {
	Ride        string    `json:"ride"`
	Vin         string    `json:"vin"`
	PickupTime  time.Time `json:"pickupTime"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type riderPickedUpDTO struct {
	Ride           string            `json:"ride"`
	Vin            string            `json:"vin"`
	Rider          string            `json:"rider"`
	PickupLocation geoCoordinatesDTO `json:"pickupLocation"`
	PickedUpAt     time.Time         `json:"pickedUpAt"`
}

type riderDroppedOffDTO struct {
	Ride            string            `json:"ride"`
	Vin             string            `json:"vin"`
	DropOffLocation geoCoordinatesDTO `json:"dropOffLocation"`
	DroppedOffAt    time.Time         `json:"droppedOffAt"`
}

type requestedRideCancelledDTO struct {
	Ride        string    `json:"ride"`
	CancelledAt time.Time `json:"cancelledAt"`
}

type scheduledRideCancelledDTO struct {
	Ride        string    `json:"ride"`
	Vin         string    `json:"vin"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// EncodeRideEvent serializes a ride event into a typed JSON envelope.
func EncodeRideEvent(event rides.Event) ([]byte, error) {
	var payload any
	switch e := event.(type) {
	case rides.RideRequested:
		payload = rideRequestedDTO{
			Ride:        e.Ride.String(),
			Rider:       e.Rider.String(),
			Origin:      toGeoDTO(e.Origin),
			Destination: toGeoDTO(e.Destination),
			PickupTime:  e.PickupTime,
			RequestedAt: e.RequestedAt,
		}
	case rides.RideScheduled:
		payload = rideScheduledDTO{
			Ride:        e.Ride.String(),
			Vin:         e.Vin.String(),
			PickupTime:  e.PickupTime,
			ScheduledAt: e.ScheduledAt,
		}
	case rides.RiderPickedUp:
		payload = riderPickedUpDTO{
			Ride:           e.Ride.String(),
			Vin:            e.Vin.String(),
			Rider:          e.Rider.String(),
			PickupLocation: toGeoDTO(e.PickupLocation),
			PickedUpAt:     e.PickedUpAt,
		}
	case rides.RiderDroppedOff:
		payload = riderDroppedOffDTO{
			Ride:            e.Ride.String(),
			Vin:             e.Vin.String(),
			DropOffLocation: toGeoDTO(e.DropOffLocation),
			DroppedOffAt:    e.DroppedOffAt,
		}
	case rides.RequestedRideCancelled:
		payload = requestedRideCancelledDTO{
			Ride:        e.Ride.String(),
			CancelledAt: e.CancelledAt,
		}
	case rides.ScheduledRideCancelled:
		payload = scheduledRideCancelledDTO{
			Ride:        e.Ride.String(),
			Vin:         e.Vin.String(),
			CancelledAt: e.CancelledAt,
		}
	default:
		return nil, &UnknownTypeError{Type: event.EventType()}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.EventType(), err)
	}
	return json.Marshal(envelope{Type: event.EventType(), Payload: raw})
}

// DecodeRideEvent deserializes a JSON envelope back into a ride event.
func DecodeRideEvent(data []byte) (rides.Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ride event envelope: %w", err)
	}

	switch env.Type {
	case rides.EventTypeRideRequested:
		var dto rideRequestedDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		ride, err := value.ParseRideID(dto.Ride)
		if err != nil {
			return nil, err
		}
		rider, err := value.ParseUserID(dto.Rider)
		if err != nil {
			return nil, err
		}
		origin, err := fromGeoDTO(dto.Origin)
		if err != nil {
			return nil, err
		}
		destination, err := fromGeoDTO(dto.Destination)
		if err != nil {
			return nil, err
		}
		return rides.RideRequested{
			Ride:        ride,
			Rider:       rider,
			Origin:      origin,
			Destination: destination,
			PickupTime:  dto.PickupTime,
			RequestedAt: dto.RequestedAt,
		}, nil
	case rides.EventTypeRideScheduled:
		var dto rideScheduledDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		ride, err := value.ParseRideID(dto.Ride)
		if err != nil {
			return nil, err
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return rides.RideScheduled{
			Ride:        ride,
			Vin:         vin,
			PickupTime:  dto.PickupTime,
			ScheduledAt: dto.ScheduledAt,
		}, nil
	case rides.EventTypeRiderPickedUp:
		var dto riderPickedUpDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		ride, err := value.ParseRideID(dto.Ride)
		if err != nil {
			return nil, err
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		rider, err := value.ParseUserID(dto.Rider)
		if err != nil {
			return nil, err
		}
		location, err := fromGeoDTO(dto.PickupLocation)
		if err != nil {
			return nil, err
		}
		return rides.RiderPickedUp{
			Ride:           ride,
			Vin:            vin,
			Rider:          rider,
			PickupLocation: location,
			PickedUpAt:     dto.PickedUpAt,
		}, nil
	case rides.EventTypeRiderDroppedOff:
		var dto riderDroppedOffDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		ride, err := value.ParseRideID(dto.Ride)
		if err != nil {
			return nil, err
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		location, err := fromGeoDTO(dto.DropOffLocation)
		if err != nil {
			return nil, err
		}
		return rides.RiderDroppedOff{
			Ride:            ride,
			Vin:             vin,
			DropOffLocation: location,
			DroppedOffAt:    dto.DroppedOffAt,
		}, nil
	case rides.EventTypeRequestedRideCancelled:
		var dto requestedRideCancelledDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		ride, err := value.ParseRideID(dto.Ride)
		if err != nil {
			return nil, err
		}
		return rides.RequestedRideCancelled{Ride: ride, CancelledAt: dto.CancelledAt}, nil
	case rides.EventTypeScheduledRideCancelled:
		var dto scheduledRideCancelledDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		ride, err := value.ParseRideID(dto.Ride)
		if err != nil {
			return nil, err
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return rides.ScheduledRideCancelled{Ride: ride, Vin: vin, CancelledAt: dto.CancelledAt}, nil
	default:
		return nil, &UnknownTypeError{Type: env.Type}
	}
}

type vehicleAddedDTO struct {
	Vin   string `json:"vin"`
	Owner string `json:"owner"`
}

type vehicleAvailableDTO struct {
	Vin         string    `json:"vin"`
	AvailableAt time.Time `json:"availableAt"`
}

type vehicleOccupiedDTO struct {
	Vin        string    `json:"vin"`
	OccupiedAt time.Time `json:"occupiedAt"`
}

type vehicleReturnRequestedDTO struct {
	Vin               string    `json:"vin"`
	ReturnRequestedAt time.Time `json:"returnRequestedAt"`
}

type vehicleReturningDTO struct {
	Vin         string    `json:"vin"`
	ReturningAt time.Time `json:"returningAt"`
}

type vehicleReturnedDTO struct {
	Vin        string    `json:"vin"`
	ReturnedAt time.Time `json:"returnedAt"`
}

type vehicleRemovedDTO struct {
	Vin       string    `json:"vin"`
	Owner     string    `json:"owner"`
	RemovedAt time.Time `json:"removedAt"`
}

// EncodeVehicleEvent serializes a vehicle event into a typed JSON envelope.
func EncodeVehicleEvent(event vehicles.Event) ([]byte, error) {
	var payload any
	switch e := event.(type) {
	case vehicles.VehicleAdded:
		payload = vehicleAddedDTO{Vin: e.Vin.String(), Owner: e.Owner.String()}
	case vehicles.VehicleAvailable:
		payload = vehicleAvailableDTO{Vin: e.Vin.String(), AvailableAt: e.AvailableAt}
	case vehicles.VehicleOccupied:
		payload = vehicleOccupiedDTO{Vin: e.Vin.String(), OccupiedAt: e.OccupiedAt}
	case vehicles.VehicleReturnRequested:
		payload = vehicleReturnRequestedDTO{Vin: e.Vin.String(), ReturnRequestedAt: e.ReturnRequestedAt}
	case vehicles.VehicleReturning:
		payload = vehicleReturningDTO{Vin: e.Vin.String(), ReturningAt: e.ReturningAt}
	case vehicles.VehicleReturned:
		payload = vehicleReturnedDTO{Vin: e.Vin.String(), ReturnedAt: e.ReturnedAt}
	case vehicles.VehicleRemoved:
		payload = vehicleRemovedDTO{Vin: e.Vin.String(), Owner: e.Owner.String(), RemovedAt: e.RemovedAt}
	default:
		return nil, &UnknownTypeError{Type: event.EventType()}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.EventType(), err)
	}
	return json.Marshal(envelope{Type: event.EventType(), Payload: raw})
}

// DecodeVehicleEvent deserializes a JSON envelope back into a vehicle event.
func DecodeVehicleEvent(data []byte) (vehicles.Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle event envelope: %w", err)
	}

	switch env.Type {
	case vehicles.EventTypeVehicleAdded:
		var dto vehicleAddedDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		owner, err := value.ParseUserID(dto.Owner)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleAdded{Vin: vin, Owner: owner}, nil
	case vehicles.EventTypeVehicleAvailable:
		var dto vehicleAvailableDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleAvailable{Vin: vin, AvailableAt: dto.AvailableAt}, nil
	case vehicles.EventTypeVehicleOccupied:
		var dto vehicleOccupiedDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleOccupied{Vin: vin, OccupiedAt: dto.OccupiedAt}, nil
	case vehicles.EventTypeVehicleReturnRequested:
		var dto vehicleReturnRequestedDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleReturnRequested{Vin: vin, ReturnRequestedAt: dto.ReturnRequestedAt}, nil
	case vehicles.EventTypeVehicleReturning:
		var dto vehicleReturningDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleReturning{Vin: vin, ReturningAt: dto.ReturningAt}, nil
	case vehicles.EventTypeVehicleReturned:
		var dto vehicleReturnedDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleReturned{Vin: vin, ReturnedAt: dto.ReturnedAt}, nil
	case vehicles.EventTypeVehicleRemoved:
		var dto vehicleRemovedDTO
		if err := json.Unmarshal(env.Payload, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
		vin, err := value.NewVin(dto.Vin)
		if err != nil {
			return nil, err
		}
		owner, err := value.ParseUserID(dto.Owner)
		if err != nil {
			return nil, err
		}
		return vehicles.VehicleRemoved{Vin: vin, Owner: owner, RemovedAt: dto.RemovedAt}, nil
	default:
		return nil, &UnknownTypeError{Type: env.Type}
	}
}
