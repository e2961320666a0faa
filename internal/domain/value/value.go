package value

import (
	"fmt"

	"github.com/google/uuid"
)

// Latitude and longitude bounds for GeoCoordinates.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// VinLength is the fixed length of a vehicle identification number.
const VinLength = 17

// UserID identifies a rider or vehicle owner.
type UserID uuid.UUID

// NewUserID returns a random UserID.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// ParseUserID parses a UserID from its string form.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return UserID(id), nil
}

// String returns the canonical UUID string.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// RideID identifies a ride.
type RideID uuid.UUID

// NewRideID returns a random RideID.
func NewRideID() RideID {
	return RideID(uuid.New())
}

// ParseRideID parses a RideID from its string form.
func ParseRideID(s string) (RideID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RideID{}, fmt.Errorf("invalid ride id %q: %w", s, err)
	}
	return RideID(id), nil
}

// String returns the canonical UUID string.
func (id RideID) String() string {
	return uuid.UUID(id).String()
}

// InvalidLatitudeError indicates a latitude outside [-90, 90].
type InvalidLatitudeError struct {
	Value float64
}

func (e *InvalidLatitudeError) Error() string {
	return fmt.Sprintf("latitude must be between %v and %v, but was given: %v", MinLatitude, MaxLatitude, e.Value)
}

// InvalidLongitudeError indicates a longitude outside [-180, 180].
type InvalidLongitudeError struct {
	Value float64
}

func (e *InvalidLongitudeError) Error() string {
	return fmt.Sprintf("longitude must be between %v and %v, but was given: %v", MinLongitude, MaxLongitude, e.Value)
}

// GeoCoordinates is a validated latitude/longitude pair.
type GeoCoordinates struct {
	Latitude  float64
	Longitude float64
}

// NewGeoCoordinates validates the given coordinates and returns them as a value object.
func NewGeoCoordinates(latitude, longitude float64) (GeoCoordinates, error) {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return GeoCoordinates{}, &InvalidLatitudeError{Value: latitude}
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return GeoCoordinates{}, &InvalidLongitudeError{Value: longitude}
	}
	return GeoCoordinates{Latitude: latitude, Longitude: longitude}, nil
}

// InvalidVinError indicates a malformed vehicle identification number.
type InvalidVinError struct {
	Value string
}

func (e *InvalidVinError) Error() string {
	return fmt.Sprintf("invalid VIN string: %s", e.Value)
}

// Vin is a validated 17-character vehicle identification number.
type Vin string

// NewVin validates a raw VIN string. A VIN is exactly 17 characters of
// letters, digits and dashes, and must contain at least one digit and at
// least one letter.
func NewVin(s string) (Vin, error) {
	if len(s) != VinLength {
		return "", &InvalidVinError{Value: s}
	}
	var hasDigit, hasLetter bool
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		case c == '-':
		default:
			return "", &InvalidVinError{Value: s}
		}
	}
	if !hasDigit || !hasLetter {
		return "", &InvalidVinError{Value: s}
	}
	return Vin(s), nil
}

// String returns the raw VIN string.
func (v Vin) String() string {
	return string(v)
}
