package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclimber/autonomo/internal/domain/rides"
	"github.com/dclimber/autonomo/internal/domain/value"
	"github.com/dclimber/autonomo/internal/infrastructure/persistence/models"
	"github.com/dclimber/autonomo/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRideRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRideRepository creates a new GORM-based ride read-model repository
func NewGormRideRepository(db *gorm.DB, logger logger.Logger) (rides.Repository, error) {
	return &gormRideRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRideRepository) Save(ctx context.Context, ride rides.Ride) error {
	model := &models.RideModel{}
	if err := model.FromDomain(ride); err != nil {
		return fmt.Errorf("failed to convert ride state: %w", err)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rider", "state", "document", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save ride: %w", err)
	}

	r.logger.Info("Saved ride ", model.ID, " in state ", model.State)
	return nil
}

func (r *gormRideRepository) GetByID(ctx context.Context, id value.RideID) (rides.Ride, error) {
	var model models.RideModel
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rides.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch ride: %w", err)
	}
	return model.ToDomain()
}
