package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default topic names for the two event streams
const (
	DefaultRideEventsTopic    = "ride-events"
	DefaultVehicleEventsTopic = "vehicle-events"
)

// KafkaSettings holds configuration settings for the Kafka brokers and the
// event stream topics
type KafkaSettings struct {
	Brokers            []string `mapstructure:"brokers" validate:"required,min=1,dive,required"`
	RideEventsTopic    string   `mapstructure:"ride_events_topic" validate:"required"`
	VehicleEventsTopic string   `mapstructure:"vehicle_events_topic" validate:"required"`
	GroupID            string   `mapstructure:"group_id"`
}

// Validate checks that all fields in KafkaSettings are valid
func (s *KafkaSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KafkaSettings: %w", err)
	}
	return nil
}
