package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// UpdatePlotCommand carries the input for updating plot attributes. Nil
// fields are left unchanged. Status changes go through the dedicated status
// use cases so the audit trail stays complete.
type UpdatePlotCommand struct {
	PlotID      uint
	Area        *float64
	Price       *string
	Description *string
}

// UpdatePlotUseCase handles plot attribute updates.
type UpdatePlotUseCase struct {
	plotRepo inventory.PlotRepository
	logger   logger.Interface
}

// NewUpdatePlotUseCase creates a new UpdatePlotUseCase.
func NewUpdatePlotUseCase(plotRepo inventory.PlotRepository, log logger.Interface) *UpdatePlotUseCase {
	return &UpdatePlotUseCase{
		plotRepo: plotRepo,
		logger:   log,
	}
}

// Execute updates a plot's area, price and/or description.
func (uc *UpdatePlotUseCase) Execute(ctx context.Context, cmd UpdatePlotCommand) (*dto.PlotDTO, error) {
	plot, err := uc.plotRepo.GetByID(ctx, cmd.PlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	if plot == nil {
		return nil, errors.NewNotFoundError("plot not found")
	}

	if cmd.Area != nil {
		if err := plot.UpdateArea(*cmd.Area); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Price != nil {
		plot.UpdatePrice(*cmd.Price)
	}
	if cmd.Description != nil {
		plot.UpdateDescription(*cmd.Description)
	}

	if err := uc.plotRepo.Update(ctx, plot); err != nil {
		uc.logger.Errorw("failed to update plot", "id", cmd.PlotID, "error", err)
		return nil, err
	}

	result := dto.PlotToDTO(plot)
	return &result, nil
}

// DeletePlotUseCase deletes a single plot. The repository delete detaches
// status history before removing the row, so it runs inside a transaction:
// either both steps land or neither does.
type DeletePlotUseCase struct {
	plotRepo inventory.PlotRepository
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewDeletePlotUseCase creates a new DeletePlotUseCase.
func NewDeletePlotUseCase(plotRepo inventory.PlotRepository, txMgr *db.TransactionManager, log logger.Interface) *DeletePlotUseCase {
	return &DeletePlotUseCase{
		plotRepo: plotRepo,
		txMgr:    txMgr,
		logger:   log,
	}
}

// Execute deletes a plot, reporting false when it does not exist.
func (uc *DeletePlotUseCase) Execute(ctx context.Context, plotID uint) (bool, error) {
	deleted := false

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = uc.plotRepo.Delete(txCtx, plotID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to delete plot", "id", plotID, "error", err)
		return false, err
	}
	return deleted, nil
}
