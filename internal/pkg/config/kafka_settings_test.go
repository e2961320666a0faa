//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKafkaSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *KafkaSettings
		expectedError bool
	}{
		{
			name: "valid settings",
			settings: &KafkaSettings{
				Brokers:            []string{"localhost:9092"},
				RideEventsTopic:    DefaultRideEventsTopic,
				VehicleEventsTopic: DefaultVehicleEventsTopic,
			},
			expectedError: false,
		},
		{
			name: "multiple brokers",
			settings: &KafkaSettings{
				Brokers:            []string{"broker-1:9092", "broker-2:9092"},
				RideEventsTopic:    DefaultRideEventsTopic,
				VehicleEventsTopic: DefaultVehicleEventsTopic,
				GroupID:            "autonomo-processor",
			},
			expectedError: false,
		},
		{
			name: "missing brokers",
			settings: &KafkaSettings{
				RideEventsTopic:    DefaultRideEventsTopic,
				VehicleEventsTopic: DefaultVehicleEventsTopic,
			},
			expectedError: true,
		},
		{
			name: "empty broker entry",
			settings: &KafkaSettings{
				Brokers:            []string{""},
				RideEventsTopic:    DefaultRideEventsTopic,
				VehicleEventsTopic: DefaultVehicleEventsTopic,
			},
			expectedError: true,
		},
		{
			name: "missing topics",
			settings: &KafkaSettings{
				Brokers: []string{"localhost:9092"},
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
