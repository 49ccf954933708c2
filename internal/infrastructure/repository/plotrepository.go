package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/mappers"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	apperrors "github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// PlotRepositoryImpl implements the inventory.PlotRepository interface.
type PlotRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlotMapper
	logger logger.Interface
}

// NewPlotRepository creates a new plot repository instance.
func NewPlotRepository(gdb *gorm.DB, log logger.Interface) inventory.PlotRepository {
	return &PlotRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPlotMapper(),
		logger: log,
	}
}

// Create creates a new plot in the database.
func (r *PlotRepositoryImpl) Create(ctx context.Context, plot *inventory.Plot) error {
	model, err := r.mapper.ToModel(plot)
	if err != nil {
		r.logger.Errorw("failed to map plot entity to model", "error", err)
		return fmt.Errorf("failed to map plot entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("plot number already exists in this block")
		}
		r.logger.Errorw("failed to create plot in database", "error", err)
		return fmt.Errorf("failed to create plot: %w", err)
	}

	if err := plot.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plot ID: %w", err)
	}

	return nil
}

// Update updates an existing plot. Booking fields are written through a map
// so clearing them produces NULL rather than being skipped as zero values.
func (r *PlotRepositoryImpl) Update(ctx context.Context, plot *inventory.Plot) error {
	model, err := r.mapper.ToModel(plot)
	if err != nil {
		r.logger.Errorw("failed to map plot entity to model", "error", err)
		return fmt.Errorf("failed to map plot entity: %w", err)
	}

	// Updates must run on the populated model: the BeforeSave hook validates
	// the receiver, and a zero-valued destination would fail its area check.
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(model).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"number":      model.Number,
			"number_key":  model.NumberKey,
			"area":        model.Area,
			"price":       model.Price,
			"status":      model.Status,
			"description": model.Description,
			"booked_by":   model.BookedBy,
			"booked_at":   model.BookedAt,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("plot number already exists in this block")
		}
		r.logger.Errorw("failed to update plot", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plot: %w", result.Error)
	}

	return nil
}

// Delete deletes a plot by ID, returning false when it does not exist.
// History rows referencing the plot keep their data with the reference
// nulled out first.
func (r *PlotRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.StatusHistoryModel{}).
		Where("plot_id = ?", id).
		Update("plot_id", nil).Error; err != nil {
		r.logger.Errorw("failed to detach status history from plot", "plot_id", id, "error", err)
		return false, fmt.Errorf("failed to detach status history: %w", err)
	}

	result := tx.Delete(&models.PlotModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plot", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to delete plot: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// GetByID retrieves a plot by its ID, nil when not found.
func (r *PlotRepositoryImpl) GetByID(ctx context.Context, id uint) (*inventory.Plot, error) {
	var model models.PlotModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plot by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByBlock retrieves all plots of a block in creation order.
func (r *PlotRepositoryImpl) ListByBlock(ctx context.Context, blockID uint) ([]*inventory.Plot, error) {
	var plotModels []*models.PlotModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("block_id = ?", blockID).
		Order("id ASC").
		Find(&plotModels).Error; err != nil {
		r.logger.Errorw("failed to list plots by block", "block_id", blockID, "error", err)
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}

	return r.mapper.ToEntities(plotModels)
}

// ExistsByNumber checks for a plot with the given number in a block, ignoring case.
func (r *PlotRepositoryImpl) ExistsByNumber(ctx context.Context, blockID uint, number string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PlotModel{}).
		Where("block_id = ? AND number_key = ?", blockID, strings.ToLower(strings.TrimSpace(number))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plot number existence: %w", err)
	}

	return count > 0, nil
}

// NextNumber derives the next sequential plot number for a block. Existing
// numbers matching ^<prefix><digits>$ contribute their numeric suffix; the
// result is max+1 zero-padded to at least three digits. Callers that insert
// with the returned number must do so in the same transaction; the unique
// index on (block_id, number_key) is the backstop against concurrent
// allocation races.
func (r *PlotRepositoryImpl) NextNumber(ctx context.Context, blockID uint, prefix string) (string, error) {
	if prefix == "" {
		prefix = "P"
	}

	var numbers []string
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PlotModel{}).
		Where("block_id = ?", blockID).
		Pluck("number", &numbers).Error; err != nil {
		r.logger.Errorw("failed to load plot numbers", "block_id", blockID, "error", err)
		return "", fmt.Errorf("failed to load plot numbers: %w", err)
	}

	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)
	if err != nil {
		return "", fmt.Errorf("invalid plot number prefix %q: %w", prefix, err)
	}

	maxSuffix := 0
	for _, number := range numbers {
		match := pattern.FindStringSubmatch(number)
		if match == nil {
			continue
		}
		suffix, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if suffix > maxSuffix {
			maxSuffix = suffix
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSuffix+1), nil
}

// DeleteByProperty deletes all plots belonging to blocks of a property,
// detaching their status history first.
func (r *PlotRepositoryImpl) DeleteByProperty(ctx context.Context, propertyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	blockIDs := tx.Model(&models.BlockModel{}).Select("id").Where("property_id = ?", propertyID)
	plotIDs := tx.Model(&models.PlotModel{}).Select("id").Where("block_id IN (?)", blockIDs)

	if err := tx.Model(&models.StatusHistoryModel{}).
		Where("plot_id IN (?)", plotIDs).
		Update("plot_id", nil).Error; err != nil {
		r.logger.Errorw("failed to detach status history for property", "property_id", propertyID, "error", err)
		return fmt.Errorf("failed to detach status history: %w", err)
	}

	deleteScope := tx.Model(&models.BlockModel{}).Select("id").Where("property_id = ?", propertyID)
	if err := tx.Where("block_id IN (?)", deleteScope).Delete(&models.PlotModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete plots of property", "property_id", propertyID, "error", err)
		return fmt.Errorf("failed to delete plots: %w", err)
	}

	return nil
}
