package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/mappers"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// StatusHistoryRepositoryImpl implements inventory.StatusHistoryRepository.
// Record errors are returned as-is; the use-case layer decides that audit
// failures are logged and swallowed rather than aborting the status update.
type StatusHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StatusHistoryMapper
	logger logger.Interface
}

// NewStatusHistoryRepository creates a new status history repository instance.
func NewStatusHistoryRepository(gdb *gorm.DB, log logger.Interface) inventory.StatusHistoryRepository {
	return &StatusHistoryRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewStatusHistoryMapper(),
		logger: log,
	}
}

// Record appends one immutable status transition row.
func (r *StatusHistoryRepositoryImpl) Record(ctx context.Context, change *inventory.StatusChange) error {
	model, err := r.mapper.ToModel(change)
	if err != nil {
		return fmt.Errorf("failed to map status change entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}

	if err := change.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set status change ID: %w", err)
	}

	return nil
}

// ListByPlot retrieves the transition history of a plot, newest first.
func (r *StatusHistoryRepositoryImpl) ListByPlot(ctx context.Context, plotID uint) ([]*inventory.StatusChange, error) {
	var historyModels []*models.StatusHistoryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("plot_id = ?", plotID).
		Order("created_at DESC, id DESC").
		Find(&historyModels).Error; err != nil {
		r.logger.Errorw("failed to list status history", "plot_id", plotID, "error", err)
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	return r.mapper.ToEntities(historyModels)
}
