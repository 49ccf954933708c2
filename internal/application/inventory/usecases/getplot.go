package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
)

// GetPlotUseCase retrieves a single plot.
type GetPlotUseCase struct {
	plotRepo inventory.PlotRepository
}

// NewGetPlotUseCase creates a new GetPlotUseCase.
func NewGetPlotUseCase(plotRepo inventory.PlotRepository) *GetPlotUseCase {
	return &GetPlotUseCase{plotRepo: plotRepo}
}

// Execute retrieves a plot by ID.
func (uc *GetPlotUseCase) Execute(ctx context.Context, plotID uint) (*dto.PlotDTO, error) {
	plot, err := uc.plotRepo.GetByID(ctx, plotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	if plot == nil {
		return nil, errors.NewNotFoundError("plot not found")
	}

	result := dto.PlotToDTO(plot)
	return &result, nil
}

// ListPlotsUseCase retrieves the plots of a block.
type ListPlotsUseCase struct {
	blockRepo inventory.BlockRepository
	plotRepo  inventory.PlotRepository
}

// NewListPlotsUseCase creates a new ListPlotsUseCase.
func NewListPlotsUseCase(blockRepo inventory.BlockRepository, plotRepo inventory.PlotRepository) *ListPlotsUseCase {
	return &ListPlotsUseCase{
		blockRepo: blockRepo,
		plotRepo:  plotRepo,
	}
}

// Execute lists the plots of a block in plot number order.
func (uc *ListPlotsUseCase) Execute(ctx context.Context, blockID uint) ([]dto.PlotDTO, error) {
	block, err := uc.blockRepo.GetByID(ctx, blockID)
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	if block == nil {
		return nil, errors.NewNotFoundError("block not found")
	}

	plots, err := uc.plotRepo.ListByBlock(ctx, blockID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}

	return dto.PlotsToDTOs(plots), nil
}
