package models

import (
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/transfer"
)

// RideModel is the GORM database model for the ride read model (infrastructure concern)
type RideModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Rider     string    `gorm:"not null;index;type:uuid"`
	State     string    `gorm:"not null;index;type:varchar(40)"`
	Document  []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (RideModel) TableName() string {
	return "rides"
}

// ToDomain converts the GORM model back into a ride state
func (m *RideModel) ToDomain() (rides.Ride, error) {
	return transfer.DecodeRideState(m.State, m.Document)
}

// FromDomain converts a ride state into the GORM model
func (m *RideModel) FromDomain(ride rides.Ride) error {
	state, doc, err := transfer.EncodeRideState(ride)
	if err != nil {
		return err
	}

	m.State = state
	m.Document = doc
	switch s := ride.(type) {
	case rides.RequestedRide:
		m.ID = s.ID.String()
		m.Rider = s.Rider.String()
	case rides.ScheduledRide:
		m.ID = s.ID.String()
		m.Rider = s.Rider.String()
	case rides.InProgressRide:
		m.ID = s.ID.String()
		m.Rider = s.Rider.String()
	case rides.CompletedRide:
		m.ID = s.ID.String()
		m.Rider = s.Rider.String()
	case rides.CancelledRequestedRide:
		m.ID = s.ID.String()
		m.Rider = s.Rider.String()
	case rides.CancelledScheduledRide:
		m.ID = s.ID.String()
		m.Rider = s.Rider.String()
	}
	return nil
}
