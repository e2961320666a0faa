//go:build unit
// +build unit

package messaging

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	pkgTesting "github.com/dclimber/autonomo/internal/pkg/testing"
	"github.com/dclimber/autonomo/internal/transfer"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRideRepository struct {
	mu    sync.Mutex
	rides map[value.RideID]rides.Ride
}

func newFakeRideRepository() *fakeRideRepository {
	return &fakeRideRepository{rides: make(map[value.RideID]rides.Ride)}
}

func (r *fakeRideRepository) Save(_ context.Context, ride rides.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch s := ride.(type) {
	case rides.RequestedRide:
		r.rides[s.ID] = s
	case rides.ScheduledRide:
		r.rides[s.ID] = s
	case rides.InProgressRide:
		r.rides[s.ID] = s
	case rides.CompletedRide:
		r.rides[s.ID] = s
	case rides.CancelledRequestedRide:
		r.rides[s.ID] = s
	case rides.CancelledScheduledRide:
		r.rides[s.ID] = s
	}
	return nil
}

func (r *fakeRideRepository) GetByID(_ context.Context, id value.RideID) (rides.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ride, ok := r.rides[id]
	if !ok {
		return nil, rides.ErrNotFound
	}
	return ride, nil
}

type fakeVehicleRepository struct {
	mu       sync.Mutex
	vehicles map[value.Vin]vehicles.Vehicle
	deleted  []value.Vin
}

func newFakeVehicleRepository() *fakeVehicleRepository {
	return &fakeVehicleRepository{vehicles: make(map[value.Vin]vehicles.Vehicle)}
}

func (r *fakeVehicleRepository) Save(_ context.Context, vehicle vehicles.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch s := vehicle.(type) {
	case vehicles.InventoryVehicle:
		r.vehicles[s.Vin] = s
	case vehicles.AvailableVehicle:
		r.vehicles[s.Vin] = s
	case vehicles.OccupiedVehicle:
		r.vehicles[s.Vin] = s
	case vehicles.OccupiedReturningVehicle:
		r.vehicles[s.Vin] = s
	case vehicles.ReturningVehicle:
		r.vehicles[s.Vin] = s
	}
	return nil
}

func (r *fakeVehicleRepository) GetByVin(_ context.Context, vin value.Vin) (vehicles.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[vin]
	if !ok {
		return nil, vehicles.ErrNotFound
	}
	return vehicle, nil
}

func (r *fakeVehicleRepository) ListByOwner(_ context.Context, _ value.UserID) ([]vehicles.Vehicle, error) {
	return nil, nil
}

func (r *fakeVehicleRepository) ListAvailable(_ context.Context) ([]vehicles.Vehicle, error) {
	return nil, nil
}

func (r *fakeVehicleRepository) DeleteByVin(_ context.Context, vin value.Vin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vehicles, vin)
	r.deleted = append(r.deleted, vin)
	return nil
}

type fakeVehiclePublisher struct {
	published []vehicles.Event
}

func (p *fakeVehiclePublisher) PublishVehicleEvents(_ context.Context, events []vehicles.Event) error {
	p.published = append(p.published, events...)
	return nil
}

type fakeReader struct {
	messages chan kafka.Message
}

func newFakeReader(payloads ...[]byte) *fakeReader {
	messages := make(chan kafka.Message, len(payloads))
	for _, payload := range payloads {
		messages <- kafka.Message{Value: payload}
	}
	return &fakeReader{messages: messages}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case message := <-r.messages:
		return message, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	return nil
}

func (r *fakeReader) Close() error { return nil }

func testProcessor(t *testing.T) (*Processor, *fakeRideRepository, *fakeVehicleRepository, *fakeVehiclePublisher) {
	t.Helper()

	rideRepo := newFakeRideRepository()
	vehicleRepo := newFakeVehicleRepository()
	publisher := &fakeVehiclePublisher{}
	processor := NewProcessor(
		newFakeReader(),
		newFakeReader(),
		rideRepo,
		vehicleRepo,
		publisher,
		pkgTesting.SetupTestLogger(t),
	)
	return processor, rideRepo, vehicleRepo, publisher
}

func encodeRideEvent(t *testing.T, event rides.Event) []byte {
	t.Helper()
	data, err := transfer.EncodeRideEvent(event)
	require.NoError(t, err)
	return data
}

func encodeVehicleEvent(t *testing.T, event vehicles.Event) []byte {
	t.Helper()
	data, err := transfer.EncodeVehicleEvent(event)
	require.NoError(t, err)
	return data
}

func testVin(t *testing.T) value.Vin {
	t.Helper()
	vin, err := value.NewVin("1FTZX1722XKA76091")
	require.NoError(t, err)
	return vin
}

func testCoordinates(t *testing.T) value.GeoCoordinates {
	t.Helper()
	coords, err := value.NewGeoCoordinates(37.3861, -122.0839)
	require.NoError(t, err)
	return coords
}

func TestApplyRideEvent_ProjectsRequestedRide(t *testing.T) {
	processor, rideRepo, _, _ := testProcessor(t)
	now := time.Now().UTC().Truncate(time.Millisecond)
	event := rides.RideRequested{
		Ride:        value.NewRideID(),
		Rider:       value.NewUserID(),
		Origin:      testCoordinates(t),
		Destination: testCoordinates(t),
		PickupTime:  now,
		RequestedAt: now,
	}

	err := processor.ApplyRideEvent(context.Background(), encodeRideEvent(t, event))

	require.NoError(t, err)
	ride, err := rideRepo.GetByID(context.Background(), event.Ride)
	require.NoError(t, err)
	assert.Equal(t, rides.StateRequested, ride.StateName())
}

func TestApplyRideEvent_SagaOccupiesVehicleOnSchedule(t *testing.T) {
	processor, rideRepo, vehicleRepo, publisher := testProcessor(t)
	now := time.Now().UTC().Truncate(time.Millisecond)
	vin := testVin(t)
	rideID := value.NewRideID()
	rider := value.NewUserID()

	requested := rides.RequestedRide{
		ID:                  rideID,
		Rider:               rider,
		RequestedPickupTime: now,
		PickupLocation:      testCoordinates(t),
		DropOffLocation:     testCoordinates(t),
		RequestedAt:         now,
	}
	require.NoError(t, rideRepo.Save(context.Background(), requested))
	require.NoError(t, vehicleRepo.Save(context.Background(), vehicles.AvailableVehicle{Vin: vin, Owner: value.NewUserID()}))

	event := rides.RideScheduled{Ride: rideID, Vin: vin, PickupTime: now, ScheduledAt: now}
	err := processor.ApplyRideEvent(context.Background(), encodeRideEvent(t, event))

	require.NoError(t, err)

	ride, err := rideRepo.GetByID(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, rides.StateScheduled, ride.StateName())

	require.Len(t, publisher.published, 1)
	occupied, ok := publisher.published[0].(vehicles.VehicleOccupied)
	require.True(t, ok)
	assert.Equal(t, vin, occupied.Vin)
}

func TestApplyRideEvent_RejectedSagaCommandIsSkipped(t *testing.T) {
	processor, rideRepo, _, publisher := testProcessor(t)
	now := time.Now().UTC().Truncate(time.Millisecond)
	vin := testVin(t)
	rideID := value.NewRideID()

	requested := rides.RequestedRide{
		ID:                  rideID,
		Rider:               value.NewUserID(),
		RequestedPickupTime: now,
		PickupLocation:      testCoordinates(t),
		DropOffLocation:     testCoordinates(t),
		RequestedAt:         now,
	}
	require.NoError(t, rideRepo.Save(context.Background(), requested))

	// No vehicle in the read model, so MarkVehicleOccupied is rejected.
	event := rides.RideScheduled{Ride: rideID, Vin: vin, PickupTime: now, ScheduledAt: now}
	err := processor.ApplyRideEvent(context.Background(), encodeRideEvent(t, event))

	require.NoError(t, err)
	assert.Empty(t, publisher.published)
}

func TestApplyRideEvent_MalformedPayload(t *testing.T) {
	processor, _, _, _ := testProcessor(t)

	err := processor.ApplyRideEvent(context.Background(), []byte("not an envelope"))
	assert.Error(t, err)
}

func TestApplyVehicleEvent_ProjectsVehicleStates(t *testing.T) {
	processor, _, vehicleRepo, _ := testProcessor(t)
	vin := testVin(t)
	owner := value.NewUserID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	err := processor.ApplyVehicleEvent(context.Background(), encodeVehicleEvent(t, vehicles.VehicleAdded{Vin: vin, Owner: owner}))
	require.NoError(t, err)

	vehicle, err := vehicleRepo.GetByVin(context.Background(), vin)
	require.NoError(t, err)
	assert.Equal(t, vehicles.StateInventory, vehicle.StateName())

	err = processor.ApplyVehicleEvent(context.Background(), encodeVehicleEvent(t, vehicles.VehicleAvailable{Vin: vin, AvailableAt: now}))
	require.NoError(t, err)

	vehicle, err = vehicleRepo.GetByVin(context.Background(), vin)
	require.NoError(t, err)
	assert.Equal(t, vehicles.StateAvailable, vehicle.StateName())
}

func TestApplyVehicleEvent_RemovalDropsVehicleFromReadModel(t *testing.T) {
	processor, _, vehicleRepo, _ := testProcessor(t)
	vin := testVin(t)
	owner := value.NewUserID()

	require.NoError(t, vehicleRepo.Save(context.Background(), vehicles.InventoryVehicle{Vin: vin, Owner: owner}))

	event := vehicles.VehicleRemoved{Vin: vin, Owner: owner, RemovedAt: time.Now()}
	err := processor.ApplyVehicleEvent(context.Background(), encodeVehicleEvent(t, event))

	require.NoError(t, err)
	assert.Equal(t, []value.Vin{vin}, vehicleRepo.deleted)

	_, err = vehicleRepo.GetByVin(context.Background(), vin)
	assert.ErrorIs(t, err, vehicles.ErrNotFound)
}

func TestApplyVehicleEvent_UnknownVehicleIgnoresNonApplicableEvent(t *testing.T) {
	processor, _, vehicleRepo, _ := testProcessor(t)
	vin := testVin(t)

	event := vehicles.VehicleOccupied{Vin: vin, OccupiedAt: time.Now()}
	err := processor.ApplyVehicleEvent(context.Background(), encodeVehicleEvent(t, event))

	require.NoError(t, err)
	assert.Empty(t, vehicleRepo.deleted)
	_, err = vehicleRepo.GetByVin(context.Background(), vin)
	assert.ErrorIs(t, err, vehicles.ErrNotFound)
}

func TestRun_ConsumesBothStreamsUntilCancelled(t *testing.T) {
	rideRepo := newFakeRideRepository()
	vehicleRepo := newFakeVehicleRepository()
	publisher := &fakeVehiclePublisher{}
	vin := testVin(t)
	owner := value.NewUserID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	rideEvent := rides.RideRequested{
		Ride:        value.NewRideID(),
		Rider:       value.NewUserID(),
		Origin:      testCoordinates(t),
		Destination: testCoordinates(t),
		PickupTime:  now,
		RequestedAt: now,
	}
	processor := NewProcessor(
		newFakeReader(encodeRideEvent(t, rideEvent)),
		newFakeReader(encodeVehicleEvent(t, vehicles.VehicleAdded{Vin: vin, Owner: owner})),
		rideRepo,
		vehicleRepo,
		publisher,
		pkgTesting.SetupTestLogger(t),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- processor.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, rideErr := rideRepo.GetByID(context.Background(), rideEvent.Ride)
		_, vehicleErr := vehicleRepo.GetByVin(context.Background(), vin)
		return rideErr == nil && vehicleErr == nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
