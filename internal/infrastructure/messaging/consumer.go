package messaging

import (
	"context"

	"github.com/dclimber/autonomo/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of kafka.Reader the stream processor consumes
// through, small enough to fake in tests.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewRideEventsReader creates a consumer-group reader for the ride events topic.
func NewRideEventsReader(settings config.KafkaSettings) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: settings.Brokers,
		GroupID: settings.GroupID,
		Topic:   settings.RideEventsTopic,
	})
}

// NewVehicleEventsReader creates a consumer-group reader for the vehicle events topic.
func NewVehicleEventsReader(settings config.KafkaSettings) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: settings.Brokers,
		GroupID: settings.GroupID,
		Topic:   settings.VehicleEventsTopic,
	})
}
