package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/domain/vehicles"
	"github.com/dclimber/autonomo/internal/infrastructure/persistence/models"
	"github.com/dclimber/autonomo/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormVehicleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVehicleRepository creates a new GORM-based vehicle read-model repository
func NewGormVehicleRepository(db *gorm.DB, logger logger.Logger) (vehicles.Repository, error) {
	return &gormVehicleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormVehicleRepository) Save(ctx context.Context, vehicle vehicles.Vehicle) error {
	model := &models.VehicleModel{}
	if err := model.FromDomain(vehicle); err != nil {
		return fmt.Errorf("failed to convert vehicle state: %w", err)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vin"}},
		DoUpdates: clause.AssignmentColumns([]string{"owner", "state", "document", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save vehicle: %w", err)
	}

	r.logger.Info("Saved vehicle ", model.Vin, " in state ", model.State)
	return nil
}

func (r *gormVehicleRepository) GetByVin(ctx context.Context, vin value.Vin) (vehicles.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).Where("vin = ?", vin.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vehicles.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch vehicle: %w", err)
	}
	return model.ToDomain()
}

func (r *gormVehicleRepository) ListByOwner(ctx context.Context, owner value.UserID) ([]vehicles.Vehicle, error) {
	var modelList []*models.VehicleModel
	err := r.db.WithContext(ctx).
		Where("owner = ?", owner.String()).
		Order("vin asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by owner: %w", err)
	}
	return toDomainVehicles(modelList)
}

func (r *gormVehicleRepository) ListAvailable(ctx context.Context) ([]vehicles.Vehicle, error) {
	var modelList []*models.VehicleModel
	err := r.db.WithContext(ctx).
		Where("state = ?", vehicles.StateAvailable).
		Order("vin asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available vehicles: %w", err)
	}
	return toDomainVehicles(modelList)
}

func (r *gormVehicleRepository) DeleteByVin(ctx context.Context, vin value.Vin) error {
	if err := r.db.WithContext(ctx).Where("vin = ?", vin.String()).Delete(&models.VehicleModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	r.logger.Info("Deleted vehicle ", vin.String())
	return nil
}

func toDomainVehicles(modelList []*models.VehicleModel) ([]vehicles.Vehicle, error) {
	domainList := make([]vehicles.Vehicle, len(modelList))
	for i, model := range modelList {
		vehicle, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = vehicle
	}
	return domainList, nil
}
