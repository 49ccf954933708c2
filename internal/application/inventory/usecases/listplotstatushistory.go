package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
)

// ListPlotStatusHistoryCommand identifies the plot whose audit trail to read.
type ListPlotStatusHistoryCommand struct {
	PlotID uint
}

// ListPlotStatusHistoryUseCase returns the status transitions recorded for a
// plot, newest first.
type ListPlotStatusHistoryUseCase struct {
	plotRepo    inventory.PlotRepository
	historyRepo inventory.StatusHistoryRepository
}

// NewListPlotStatusHistoryUseCase creates a new ListPlotStatusHistoryUseCase.
func NewListPlotStatusHistoryUseCase(
	plotRepo inventory.PlotRepository,
	historyRepo inventory.StatusHistoryRepository,
) *ListPlotStatusHistoryUseCase {
	return &ListPlotStatusHistoryUseCase{
		plotRepo:    plotRepo,
		historyRepo: historyRepo,
	}
}

// Execute lists the plot's status history.
func (uc *ListPlotStatusHistoryUseCase) Execute(ctx context.Context, cmd ListPlotStatusHistoryCommand) ([]dto.StatusChangeDTO, error) {
	if cmd.PlotID == 0 {
		return nil, errors.NewValidationError("plot ID is required")
	}

	plot, err := uc.plotRepo.GetByID(ctx, cmd.PlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	if plot == nil {
		return nil, errors.NewNotFoundError("plot not found")
	}

	changes, err := uc.historyRepo.ListByPlot(ctx, cmd.PlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	result := make([]dto.StatusChangeDTO, 0, len(changes))
	for _, change := range changes {
		result = append(result, dto.StatusChangeToDTO(change))
	}

	return result, nil
}
