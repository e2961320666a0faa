//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/pkg/config"
	pkgTesting "github.com/dclimber/autonomo/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestVin is a structurally valid vehicle identification number
const TestVin = "1FTZX1722XKA76091"

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	RideRepo    rides.Repository
	VehicleRepo vehicles.Repository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = MigrateReadModels(db)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := pkgTesting.SetupTestLogger(t)

	rideRepo, err := NewGormRideRepository(db, logger)
	require.NoError(t, err, "Failed to create ride repository")

	vehicleRepo, err := NewGormVehicleRepository(db, logger)
	require.NoError(t, err, "Failed to create vehicle repository")

	return &TestContext{
		DB:          db,
		RideRepo:    rideRepo,
		VehicleRepo: vehicleRepo,
	}
}

// CreateTestVin parses a valid VIN for tests
func CreateTestVin(t *testing.T, raw string) value.Vin {
	t.Helper()

	vin, err := value.NewVin(raw)
	require.NoError(t, err)
	return vin
}

// CreateRequestedRide creates a requested ride read-model state for tests
func CreateRequestedRide(t *testing.T, rider value.UserID) rides.RequestedRide {
	t.Helper()

	origin, err := value.NewGeoCoordinates(37.3861, -122.0839)
	require.NoError(t, err)
	destination, err := value.NewGeoCoordinates(40.4249, -111.7979)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Millisecond)
	return rides.RequestedRide{
		ID:                  value.NewRideID(),
		Rider:               rider,
		RequestedPickupTime: now,
		PickupLocation:      origin,
		DropOffLocation:     destination,
		RequestedAt:         now,
	}
}
