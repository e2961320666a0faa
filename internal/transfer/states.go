package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
)

// rideStateDTO is the superset of all ride state fields. The state name
// stored alongside the document decides which fields are meaningful.
type rideStateDTO struct {
	ID                  string             `json:"id"`
	Rider               string             `json:"rider,omitempty"`
	RequestedPickupTime *time.Time         `json:"requestedPickupTime,omitempty"`
	ScheduledPickupTime *time.Time         `json:"scheduledPickupTime,omitempty"`
	PickupLocation      *geoCoordinatesDTO `json:"pickupLocation,omitempty"`
	DropOffLocation     *geoCoordinatesDTO `json:"dropOffLocation,omitempty"`
	Vin                 string             `json:"vin,omitempty"`
	RequestedAt         *time.Time         `json:"requestedAt,omitempty"`
	ScheduledAt         *time.Time         `json:"scheduledAt,omitempty"`
	PickedUpAt          *time.Time         `json:"pickedUpAt,omitempty"`
	DroppedOffAt        *time.Time         `json:"droppedOffAt,omitempty"`
	CancelledAt         *time.Time         `json:"cancelledAt,omitempty"`
}

func geoPtr(c value.GeoCoordinates) *geoCoordinatesDTO {
	dto := toGeoDTO(c)
	return &dto
}

func timePtr(t time.Time) *time.Time { return &t }

// EncodeRideState serializes a ride state into its name and JSON document.
func EncodeRideState(ride rides.Ride) (string, []byte, error) {
	var dto rideStateDTO
	switch s := ride.(type) {
	case rides.RequestedRide:
		dto = rideStateDTO{
			ID:                  s.ID.String(),
			Rider:               s.Rider.String(),
			RequestedPickupTime: timePtr(s.RequestedPickupTime),
			PickupLocation:      geoPtr(s.PickupLocation),
			DropOffLocation:     geoPtr(s.DropOffLocation),
			RequestedAt:         timePtr(s.RequestedAt),
		}
	case rides.ScheduledRide:
		dto = rideStateDTO{
			ID:                  s.ID.String(),
			Rider:               s.Rider.String(),
			ScheduledPickupTime: timePtr(s.ScheduledPickupTime),
			PickupLocation:      geoPtr(s.PickupLocation),
			DropOffLocation:     geoPtr(s.DropOffLocation),
			Vin:                 s.Vin.String(),
			ScheduledAt:         timePtr(s.ScheduledAt),
		}
	case rides.InProgressRide:
		dto = rideStateDTO{
			ID:                  s.ID.String(),
			Rider:               s.Rider.String(),
			ScheduledPickupTime: timePtr(s.ScheduledPickupTime),
			PickupLocation:      geoPtr(s.PickupLocation),
			DropOffLocation:     geoPtr(s.DropOffLocation),
			Vin:                 s.Vin.String(),
			ScheduledAt:         timePtr(s.ScheduledAt),
			PickedUpAt:          timePtr(s.PickedUpAt),
		}
	case rides.CompletedRide:
		dto = rideStateDTO{
			ID:              s.ID.String(),
			Rider:           s.Rider.String(),
			PickupLocation:  geoPtr(s.PickupLocation),
			DropOffLocation: geoPtr(s.DropOffLocation),
			Vin:             s.Vin.String(),
			PickedUpAt:      timePtr(s.PickedUpAt),
			DroppedOffAt:    timePtr(s.DroppedOffAt),
		}
	case rides.CancelledRequestedRide:
		dto = rideStateDTO{
			ID:                  s.ID.String(),
			Rider:               s.Rider.String(),
			RequestedPickupTime: timePtr(s.RequestedPickupTime),
			PickupLocation:      geoPtr(s.PickupLocation),
			DropOffLocation:     geoPtr(s.DropOffLocation),
			CancelledAt:         timePtr(s.CancelledAt),
		}
	case rides.CancelledScheduledRide:
		dto = rideStateDTO{
			ID:                  s.ID.String(),
			Rider:               s.Rider.String(),
			ScheduledPickupTime: timePtr(s.ScheduledPickupTime),
			PickupLocation:      geoPtr(s.PickupLocation),
			DropOffLocation:     geoPtr(s.DropOffLocation),
			ScheduledAt:         timePtr(s.ScheduledAt),
			CancelledAt:         timePtr(s.CancelledAt),
		}
	default:
		return "", nil, &UnknownTypeError{Type: ride.StateName()}
	}

	doc, err := json.Marshal(dto)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal %s document: %w", ride.StateName(), err)
	}
	return ride.StateName(), doc, nil
}

// DecodeRideState deserializes a stored state name and document back into a
// ride state.
func DecodeRideState(stateName string, doc []byte) (rides.Ride, error) {
	var dto rideStateDTO
	if err := json.Unmarshal(doc, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s document: %w", stateName, err)
	}

	id, err := value.ParseRideID(dto.ID)
	if err != nil {
		return nil, err
	}
	var rider value.UserID
	if dto.Rider != "" {
		if rider, err = value.ParseUserID(dto.Rider); err != nil {
			return nil, err
		}
	}
	var vin value.Vin
	if dto.Vin != "" {
		if vin, err = value.NewVin(dto.Vin); err != nil {
			return nil, err
		}
	}
	var pickup, dropOff value.GeoCoordinates
	if dto.PickupLocation != nil {
		if pickup, err = fromGeoDTO(*dto.PickupLocation); err != nil {
			return nil, err
		}
	}
	if dto.DropOffLocation != nil {
		if dropOff, err = fromGeoDTO(*dto.DropOffLocation); err != nil {
			return nil, err
		}
	}
	deref := func(t *time.Time) time.Time {
		if t == nil {
			return time.Time{}
		}
		return *t
	}

	switch stateName {
	case rides.StateRequested:
		return rides.RequestedRide{
			ID:                  id,
			Rider:               rider,
			RequestedPickupTime: deref(dto.RequestedPickupTime),
			PickupLocation:      pickup,
			DropOffLocation:     dropOff,
			RequestedAt:         deref(dto.RequestedAt),
		}, nil
	case rides.StateScheduled:
		return rides.ScheduledRide{
			ID:                  id,
			Rider:               rider,
			ScheduledPickupTime: deref(dto.ScheduledPickupTime),
			PickupLocation:      pickup,
			DropOffLocation:     dropOff,
			Vin:                 vin,
			ScheduledAt:         deref(dto.ScheduledAt),
		}, nil
	case rides.StateInProgress:
		return rides.InProgressRide{
			ID:                  id,
			Rider:               rider,
			PickupLocation:      pickup,
			DropOffLocation:     dropOff,
			ScheduledPickupTime: deref(dto.ScheduledPickupTime),
			Vin:                 vin,
			ScheduledAt:         deref(dto.ScheduledAt),
			PickedUpAt:          deref(dto.PickedUpAt),
		}, nil
	case rides.StateCompleted:
		return rides.CompletedRide{
			ID:              id,
			Rider:           rider,
			PickupLocation:  pickup,
			DropOffLocation: dropOff,
			Vin:             vin,
			PickedUpAt:      deref(dto.PickedUpAt),
			DroppedOffAt:    deref(dto.DroppedOffAt),
		}, nil
	case rides.StateCancelledRequested:
		return rides.CancelledRequestedRide{
			ID:                  id,
			Rider:               rider,
			RequestedPickupTime: deref(dto.RequestedPickupTime),
			PickupLocation:      pickup,
			DropOffLocation:     dropOff,
			CancelledAt:         deref(dto.CancelledAt),
		}, nil
	case rides.StateCancelledScheduled:
		return rides.CancelledScheduledRide{
			ID:                  id,
			Rider:               rider,
			ScheduledPickupTime: deref(dto.ScheduledPickupTime),
			PickupLocation:      pickup,
			DropOffLocation:     dropOff,
			ScheduledAt:         deref(dto.ScheduledAt),
			CancelledAt:         deref(dto.CancelledAt),
		}, nil
	default:
		return nil, &UnknownTypeError{Type: stateName}
	}
}

type vehicleStateDTO struct {
	Vin   string `json:"vin"`
	Owner string `json:"owner"`
}

// EncodeVehicleState serializes a vehicle state into its name and JSON document.
func EncodeVehicleState(vehicle vehicles.Vehicle) (string, []byte, error) {
	var dto vehicleStateDTO
	switch s := vehicle.(type) {
	case vehicles.InventoryVehicle:
		dto = vehicleStateDTO{Vin: s.Vin.String(), Owner: s.Owner.String()}
	case vehicles.AvailableVehicle:
		dto = vehicleStateDTO{Vin: s.Vin.String(), Owner: s.Owner.String()}
	case vehicles.OccupiedVehicle:
		dto = vehicleStateDTO{Vin: s.Vin.String(), Owner: s.Owner.String()}
	case vehicles.OccupiedReturningVehicle:
		dto = vehicleStateDTO{Vin: s.Vin.String(), Owner: s.Owner.String()}
	case vehicles.ReturningVehicle:
		dto = vehicleStateDTO{Vin: s.Vin.String(), Owner: s.Owner.String()}
	default:
		return "", nil, &UnknownTypeError{Type: vehicle.StateName()}
	}

	doc, err := json.Marshal(dto)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal %s document: %w", vehicle.StateName(), err)
	}
	return vehicle.StateName(), doc, nil
}

// DecodeVehicleState deserializes a stored state name and document back into
// a vehicle state.
func DecodeVehicleState(stateName string, doc []byte) (vehicles.Vehicle, error) {
	var dto vehicleStateDTO
	if err := json.Unmarshal(doc, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s document: %w", stateName, err)
	}

	vin, err := value.NewVin(dto.Vin)
	if err != nil {
		return nil, err
	}
	owner, err := value.ParseUserID(dto.Owner)
	if err != nil {
		return nil, err
	}

	switch stateName {
	case vehicles.StateInventory:
		return vehicles.InventoryVehicle{Vin: vin, Owner: owner}, nil
	case vehicles.StateAvailable:
		return vehicles.AvailableVehicle{Vin: vin, Owner: owner}, nil
	case vehicles.StateOccupied:
		return vehicles.OccupiedVehicle{Vin: vin, Owner: owner}, nil
	case vehicles.StateOccupiedReturning:
		return vehicles.OccupiedReturningVehicle{Vin: vin, Owner: owner}, nil
	case vehicles.StateReturning:
		return vehicles.ReturningVehicle{Vin: vin, Owner: owner}, nil
	default:
		return nil, &UnknownTypeError{Type: stateName}
	}
}
