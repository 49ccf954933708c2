package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// GetBlockUseCase retrieves a block together with its plots.
type GetBlockUseCase struct {
	blockRepo inventory.BlockRepository
	plotRepo  inventory.PlotRepository
	logger    logger.Interface
}

// NewGetBlockUseCase creates a new GetBlockUseCase.
func NewGetBlockUseCase(blockRepo inventory.BlockRepository, plotRepo inventory.PlotRepository, log logger.Interface) *GetBlockUseCase {
	return &GetBlockUseCase{
		blockRepo: blockRepo,
		plotRepo:  plotRepo,
		logger:    log,
	}
}

// Execute retrieves a block with its plots.
func (uc *GetBlockUseCase) Execute(ctx context.Context, blockID uint) (*dto.BlockWithPlotsDTO, error) {
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

	return &dto.BlockWithPlotsDTO{
		BlockDTO: dto.BlockToDTO(block),
		Plots:    dto.PlotsToDTOs(plots),
	}, nil
}

// ListBlocksUseCase retrieves all blocks of a property with their plots.
type ListBlocksUseCase struct {
	blockRepo inventory.BlockRepository
	plotRepo  inventory.PlotRepository
	logger    logger.Interface
}

// NewListBlocksUseCase creates a new ListBlocksUseCase.
func NewListBlocksUseCase(blockRepo inventory.BlockRepository, plotRepo inventory.PlotRepository, log logger.Interface) *ListBlocksUseCase {
	return &ListBlocksUseCase{
		blockRepo: blockRepo,
		plotRepo:  plotRepo,
		logger:    log,
	}
}

// Execute retrieves the full block/plot hierarchy of a property.
func (uc *ListBlocksUseCase) Execute(ctx context.Context, propertyID uint) ([]dto.BlockWithPlotsDTO, error) {
	blocks, err := uc.blockRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	result := make([]dto.BlockWithPlotsDTO, 0, len(blocks))
	for _, block := range blocks {
		plots, err := uc.plotRepo.ListByBlock(ctx, block.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to list plots of block %d: %w", block.ID(), err)
		}
		result = append(result, dto.BlockWithPlotsDTO{
			BlockDTO: dto.BlockToDTO(block),
			Plots:    dto.PlotsToDTOs(plots),
		})
	}

	return result, nil
}
