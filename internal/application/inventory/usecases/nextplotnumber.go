package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// NextPlotNumberUseCase previews the next sequential plot number for a
// block. Pure read; calling it twice without intervening inserts returns the
// same value.
type NextPlotNumberUseCase struct {
	blockRepo inventory.BlockRepository
	plotRepo  inventory.PlotRepository
	logger    logger.Interface
}

// NewNextPlotNumberUseCase creates a new NextPlotNumberUseCase.
func NewNextPlotNumberUseCase(blockRepo inventory.BlockRepository, plotRepo inventory.PlotRepository, log logger.Interface) *NextPlotNumberUseCase {
	return &NextPlotNumberUseCase{
		blockRepo: blockRepo,
		plotRepo:  plotRepo,
		logger:    log,
	}
}

// Execute returns the next unused plot number for the block. An empty prefix
// defaults to "P".
func (uc *NextPlotNumberUseCase) Execute(ctx context.Context, blockID uint, prefix string) (string, error) {
	block, err := uc.blockRepo.GetByID(ctx, blockID)
	if err != nil {
		return "", fmt.Errorf("failed to get block: %w", err)
	}
	if block == nil {
		return "", errors.NewNotFoundError("block not found")
	}

	return uc.plotRepo.NextNumber(ctx, blockID, prefix)
}
