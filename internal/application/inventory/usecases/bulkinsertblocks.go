package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// BulkInsertBlocksCommand carries the payload for a bulk hierarchy insert.
// The payload shape is shared with configuration snapshots.
type BulkInsertBlocksCommand struct {
	PropertyID uint
	Blocks     []layout.BlockLayout
}

// BulkInsertBlocksUseCase inserts blocks and their nested plots in payload
// order within one transaction. Any uniqueness or validation failure rolls
// back the whole batch; there is no partial insert.
type BulkInsertBlocksUseCase struct {
	blockRepo inventory.BlockRepository
	plotRepo  inventory.PlotRepository
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

// NewBulkInsertBlocksUseCase creates a new BulkInsertBlocksUseCase.
func NewBulkInsertBlocksUseCase(
	blockRepo inventory.BlockRepository,
	plotRepo inventory.PlotRepository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *BulkInsertBlocksUseCase {
	return &BulkInsertBlocksUseCase{
		blockRepo: blockRepo,
		plotRepo:  plotRepo,
		txMgr:     txMgr,
		logger:    log,
	}
}

// Execute inserts the hierarchy and returns it fully materialized with
// generated identifiers.
func (uc *BulkInsertBlocksUseCase) Execute(ctx context.Context, cmd BulkInsertBlocksCommand) ([]dto.BlockWithPlotsDTO, error) {
	if cmd.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}
	if err := layout.ValidatePayload(cmd.Blocks); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result []dto.BlockWithPlotsDTO

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		result = make([]dto.BlockWithPlotsDTO, 0, len(cmd.Blocks))

		for _, blockInput := range cmd.Blocks {
			exists, err := uc.blockRepo.ExistsByName(txCtx, cmd.PropertyID, blockInput.Name)
			if err != nil {
				return fmt.Errorf("failed to check block name: %w", err)
			}
			if exists {
				return errors.NewValidationError(
					fmt.Sprintf("block name already exists for this property: %s", blockInput.Name))
			}

			block, err := inventory.NewBlock(cmd.PropertyID, blockInput.Name, blockInput.Description)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.blockRepo.Create(txCtx, block); err != nil {
				return err
			}

			blockDTO := dto.BlockWithPlotsDTO{
				BlockDTO: dto.BlockToDTO(block),
				Plots:    make([]dto.PlotDTO, 0, len(blockInput.Plots)),
			}

			for _, plotInput := range blockInput.Plots {
				plot, err := inventory.NewPlot(
					block.ID(),
					plotInput.PlotNumber,
					plotInput.Area,
					plotInput.Price,
					inventory.PlotStatus(plotInput.Status),
					plotInput.Description,
				)
				if err != nil {
					return errors.NewValidationError(
						fmt.Sprintf("block %s plot %s: %s", blockInput.Name, plotInput.PlotNumber, err.Error()))
				}
				if err := uc.plotRepo.Create(txCtx, plot); err != nil {
					return err
				}
				blockDTO.Plots = append(blockDTO.Plots, dto.PlotToDTO(plot))
			}

			result = append(result, blockDTO)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("bulk insert completed",
		"property_id", cmd.PropertyID,
		"blocks", len(result),
	)

	return result, nil
}
