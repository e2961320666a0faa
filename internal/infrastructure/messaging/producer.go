// Package messaging provides the Kafka adapters for the two event streams:
// a producer used by the command services and the stream processor, and the
// consumer-group readers the processor fetches from.
package messaging

import (
	"context"
	"fmt"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/pkg/config"
	"github.com/dclimber/autonomo/internal/pkg/logger"
	"github.com/dclimber/autonomo/internal/transfer"

	"github.com/segmentio/kafka-go"
)

// EventProducer publishes ride and vehicle events to their Kafka topics.
// Messages are keyed by ride id and VIN so that each entity's events stay
// ordered within a partition.
type EventProducer struct {
	rideWriter    *kafka.Writer
	vehicleWriter *kafka.Writer
	logger        logger.Logger
}

// NewEventProducer creates an EventProducer for the configured brokers and topics.
func NewEventProducer(settings config.KafkaSettings, logger logger.Logger) *EventProducer {
	return &EventProducer{
		rideWriter: &kafka.Writer{
			Addr:         kafka.TCP(settings.Brokers...),
			Topic:        settings.RideEventsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		vehicleWriter: &kafka.Writer{
			Addr:         kafka.TCP(settings.Brokers...),
			Topic:        settings.VehicleEventsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

// PublishRideEvents writes ride events to the ride events topic.
func (p *EventProducer) PublishRideEvents(ctx context.Context, events []rides.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		data, err := transfer.EncodeRideEvent(event)
		if err != nil {
			return fmt.Errorf("failed to encode ride event: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.RideID().String()),
			Value: data,
		})
	}

	if err := p.rideWriter.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to publish ride events: %w", err)
	}

	p.logger.Info("Published ", len(messages), " ride event(s) for ride ", events[0].RideID().String())
	return nil
}

// PublishVehicleEvents writes vehicle events to the vehicle events topic.
func (p *EventProducer) PublishVehicleEvents(ctx context.Context, events []vehicles.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		data, err := transfer.EncodeVehicleEvent(event)
		if err != nil {
			return fmt.Errorf("failed to encode vehicle event: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.VehicleVin().String()),
			Value: data,
		})
	}

	if err := p.vehicleWriter.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to publish vehicle events: %w", err)
	}

	p.logger.Info("Published ", len(messages), " vehicle event(s) for vehicle ", events[0].VehicleVin().String())
	return nil
}

// Close flushes and closes both topic writers.
func (p *EventProducer) Close() error {
	if err := p.rideWriter.Close(); err != nil {
		return fmt.Errorf("failed to close ride events writer: %w", err)
	}
	if err := p.vehicleWriter.Close(); err != nil {
		return fmt.Errorf("failed to close vehicle events writer: %w", err)
	}
	return nil
}
