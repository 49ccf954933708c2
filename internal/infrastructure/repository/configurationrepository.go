package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/mappers"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	apperrors "github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// ConfigurationRepositoryImpl implements layout.ConfigurationRepository.
// The one-active-per-property rule is held by the unique index on
// (property_id, active_mark); a concurrent activation race surfaces as a
// conflict error at commit time rather than silently producing two actives.
type ConfigurationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ConfigurationMapper
	logger logger.Interface
}

// NewConfigurationRepository creates a new configuration repository instance.
func NewConfigurationRepository(gdb *gorm.DB, log logger.Interface) layout.ConfigurationRepository {
	return &ConfigurationRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewConfigurationMapper(),
		logger: log,
	}
}

// Create inserts a new configuration.
func (r *ConfigurationRepositoryImpl) Create(ctx context.Context, config *layout.Configuration) error {
	model, err := r.mapper.ToModel(config)
	if err != nil {
		r.logger.Errorw("failed to map configuration entity to model", "error", err)
		return fmt.Errorf("failed to map configuration entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("another configuration is already active for this property")
		}
		r.logger.Errorw("failed to create configuration in database", "error", err)
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	if err := config.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set configuration ID: %w", err)
	}

	return nil
}

// Update persists metadata changes (name, active flag). The payload itself is
// immutable once captured.
func (r *ConfigurationRepositoryImpl) Update(ctx context.Context, config *layout.Configuration) error {
	model, err := r.mapper.ToModel(config)
	if err != nil {
		r.logger.Errorw("failed to map configuration entity to model", "error", err)
		return fmt.Errorf("failed to map configuration entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ConfigurationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"active_mark": model.ActiveMark,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("another configuration is already active for this property")
		}
		r.logger.Errorw("failed to update configuration", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update configuration: %w", result.Error)
	}

	return nil
}

// Delete removes a configuration, returning false when it does not exist.
func (r *ConfigurationRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ConfigurationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete configuration", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to delete configuration: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// GetByID retrieves a configuration by its ID, nil when not found.
func (r *ConfigurationRepositoryImpl) GetByID(ctx context.Context, id uint) (*layout.Configuration, error) {
	var model models.ConfigurationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get configuration by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByProperty retrieves all configurations of a property, newest first.
func (r *ConfigurationRepositoryImpl) ListByProperty(ctx context.Context, propertyID uint) ([]*layout.Configuration, error) {
	var configModels []*models.ConfigurationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("property_id = ?", propertyID).
		Order("created_at DESC, id DESC").
		Find(&configModels).Error; err != nil {
		r.logger.Errorw("failed to list configurations", "property_id", propertyID, "error", err)
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}

	return r.mapper.ToEntities(configModels)
}

// DeactivateActive clears the active flag on the property's currently active
// configuration, if any.
func (r *ConfigurationRepositoryImpl) DeactivateActive(ctx context.Context, propertyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ConfigurationModel{}).
		Where("property_id = ? AND active_mark IS NOT NULL", propertyID).
		Updates(map[string]any{
			"active_mark": nil,
			"updated_at":  time.Now(),
		}).Error; err != nil {
		r.logger.Errorw("failed to deactivate configuration", "property_id", propertyID, "error", err)
		return fmt.Errorf("failed to deactivate configuration: %w", err)
	}

	return nil
}
