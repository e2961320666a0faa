package models

import (
	"time"

	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/transfer"
)

// VehicleModel is the GORM database model for the vehicle read model (infrastructure concern)
type VehicleModel struct {
	Vin       string    `gorm:"primaryKey;type:varchar(17)"`
	Owner     string    `gorm:"not null;index;type:uuid"`
	State     string    `gorm:"not null;index;type:varchar(40)"`
	Document  []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the GORM model back into a vehicle state
func (m *VehicleModel) ToDomain() (vehicles.Vehicle, error) {
	return transfer.DecodeVehicleState(m.State, m.Document)
}

// FromDomain converts a vehicle state into the GORM model
func (m *VehicleModel) FromDomain(vehicle vehicles.Vehicle) error {
	state, doc, err := transfer.EncodeVehicleState(vehicle)
	if err != nil {
		return err
	}

	m.State = state
	m.Document = doc
	switch s := vehicle.(type) {
	case vehicles.InventoryVehicle:
		m.Vin = s.Vin.String()
		m.Owner = s.Owner.String()
	case vehicles.AvailableVehicle:
		m.Vin = s.Vin.String()
		m.Owner = s.Owner.String()
	case vehicles.OccupiedVehicle:
		m.Vin = s.Vin.String()
		m.Owner = s.Owner.String()
	case vehicles.OccupiedReturningVehicle:
		m.Vin = s.Vin.String()
		m.Owner = s.Owner.String()
	case vehicles.ReturningVehicle:
		m.Vin = s.Vin.String()
		m.Owner = s.Owner.String()
	}
	return nil
}
