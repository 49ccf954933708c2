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

// CreatePlotCommand carries the input for creating a plot. An empty
// PlotNumber requests automatic allocation of the next sequential number.
type CreatePlotCommand struct {
	BlockID     uint
	PlotNumber  string
	Area        float64
	Price       string
	Status      string
	Description string
}

// CreatePlotUseCase handles the creation of a new plot, allocating the plot
// number inside the same transaction as the insert so concurrent allocations
// cannot hand out the same number unnoticed.
type CreatePlotUseCase struct {
	blockRepo inventory.BlockRepository
	plotRepo  inventory.PlotRepository
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

// NewCreatePlotUseCase creates a new CreatePlotUseCase.
func NewCreatePlotUseCase(
	blockRepo inventory.BlockRepository,
	plotRepo inventory.PlotRepository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *CreatePlotUseCase {
	return &CreatePlotUseCase{
		blockRepo: blockRepo,
		plotRepo:  plotRepo,
		txMgr:     txMgr,
		logger:    log,
	}
}

// Execute creates a new plot within a block.
func (uc *CreatePlotUseCase) Execute(ctx context.Context, cmd CreatePlotCommand) (*dto.PlotDTO, error) {
	if cmd.Status != "" && !inventory.PlotStatus(cmd.Status).IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid plot status: %s", cmd.Status))
	}
	if cmd.Area <= 0 {
		return nil, errors.NewValidationError("plot area must be greater than zero")
	}

	var created *inventory.Plot

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		block, err := uc.blockRepo.GetByID(txCtx, cmd.BlockID)
		if err != nil {
			return fmt.Errorf("failed to get block: %w", err)
		}
		if block == nil {
			return errors.NewNotFoundError("block not found")
		}

		number := cmd.PlotNumber
		if number == "" {
			number, err = uc.plotRepo.NextNumber(txCtx, cmd.BlockID, "")
			if err != nil {
				return fmt.Errorf("failed to allocate plot number: %w", err)
			}
		} else {
			exists, err := uc.plotRepo.ExistsByNumber(txCtx, cmd.BlockID, number)
			if err != nil {
				return fmt.Errorf("failed to check plot number: %w", err)
			}
			if exists {
				return errors.NewValidationError("plot number already exists in this block")
			}
		}

		plot, err := inventory.NewPlot(cmd.BlockID, number, cmd.Area, cmd.Price, inventory.PlotStatus(cmd.Status), cmd.Description)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.plotRepo.Create(txCtx, plot); err != nil {
			return err
		}

		created = plot
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("plot created",
		"id", created.ID(),
		"block_id", created.BlockID(),
		"number", created.Number(),
	)

	result := dto.PlotToDTO(created)
	return &result, nil
}
