package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/mappers"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	apperrors "github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// BlockRepositoryImpl implements the inventory.BlockRepository interface.
type BlockRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BlockMapper
	logger logger.Interface
}

// NewBlockRepository creates a new block repository instance.
func NewBlockRepository(gdb *gorm.DB, log logger.Interface) inventory.BlockRepository {
	return &BlockRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewBlockMapper(),
		logger: log,
	}
}

// Create creates a new block in the database.
func (r *BlockRepositoryImpl) Create(ctx context.Context, block *inventory.Block) error {
	model, err := r.mapper.ToModel(block)
	if err != nil {
		r.logger.Errorw("failed to map block entity to model", "error", err)
		return fmt.Errorf("failed to map block entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("block name already exists for this property")
		}
		r.logger.Errorw("failed to create block in database", "error", err)
		return fmt.Errorf("failed to create block: %w", err)
	}

	if err := block.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set block ID: %w", err)
	}

	return nil
}

// Update updates an existing block.
func (r *BlockRepositoryImpl) Update(ctx context.Context, block *inventory.Block) error {
	model, err := r.mapper.ToModel(block)
	if err != nil {
		r.logger.Errorw("failed to map block entity to model", "error", err)
		return fmt.Errorf("failed to map block entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(model).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"name_key":    strings.ToLower(model.Name),
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("block name already exists for this property")
		}
		r.logger.Errorw("failed to update block", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update block: %w", result.Error)
	}

	return nil
}

// GetByID retrieves a block by its ID, nil when not found.
func (r *BlockRepositoryImpl) GetByID(ctx context.Context, id uint) (*inventory.Block, error) {
	var model models.BlockModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get block by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get block: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByProperty retrieves all blocks of a property in creation order.
func (r *BlockRepositoryImpl) ListByProperty(ctx context.Context, propertyID uint) ([]*inventory.Block, error) {
	var blockModels []*models.BlockModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&blockModels).Error; err != nil {
		r.logger.Errorw("failed to list blocks by property", "property_id", propertyID, "error", err)
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	return r.mapper.ToEntities(blockModels)
}

// ExistsByName checks for a block with the given name in a property, ignoring case.
func (r *BlockRepositoryImpl) ExistsByName(ctx context.Context, propertyID uint, name string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.BlockModel{}).
		Where("property_id = ? AND name_key = ?", propertyID, strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check block name existence: %w", err)
	}

	return count > 0, nil
}

// SafeDelete deletes all plots of the block first, then the block itself.
// Returns false without error when the block does not exist. History rows of
// the deleted plots keep their data with the plot reference nulled out.
func (r *BlockRepositoryImpl) SafeDelete(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.BlockModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check block existence: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	plotIDs := tx.Model(&models.PlotModel{}).Select("id").Where("block_id = ?", id)
	if err := tx.Model(&models.StatusHistoryModel{}).
		Where("plot_id IN (?)", plotIDs).
		Update("plot_id", nil).Error; err != nil {
		r.logger.Errorw("failed to detach status history from plots", "block_id", id, "error", err)
		return false, fmt.Errorf("failed to detach status history: %w", err)
	}

	if err := tx.Where("block_id = ?", id).Delete(&models.PlotModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete plots of block", "block_id", id, "error", err)
		return false, fmt.Errorf("failed to delete plots: %w", err)
	}

	if err := tx.Delete(&models.BlockModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete block", "id", id, "error", err)
		return false, fmt.Errorf("failed to delete block: %w", err)
	}

	r.logger.Infow("block deleted with its plots", "id", id)
	return true, nil
}

// DeleteByProperty deletes all blocks of a property. Plots must already be
// gone; apply runs PlotRepository.DeleteByProperty first, children before
// parents.
func (r *BlockRepositoryImpl) DeleteByProperty(ctx context.Context, propertyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("property_id = ?", propertyID).Delete(&models.BlockModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete blocks of property", "property_id", propertyID, "error", err)
		return fmt.Errorf("failed to delete blocks: %w", err)
	}
	return nil
}
