package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/layout/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// ApplyConfigurationCommand identifies the snapshot to rebuild the live
// inventory from.
type ApplyConfigurationCommand struct {
	ConfigurationID uint
}

// ApplyConfigurationUseCase replaces the property's live block/plot hierarchy
// with the snapshot's payload. The teardown and rebuild run in a single
// transaction, so a failure at any point leaves the previous layout intact.
// Status history survives the teardown with its plot references detached.
type ApplyConfigurationUseCase struct {
	configRepo layout.ConfigurationRepository
	blockRepo  inventory.BlockRepository
	plotRepo   inventory.PlotRepository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

// NewApplyConfigurationUseCase creates a new ApplyConfigurationUseCase.
func NewApplyConfigurationUseCase(
	configRepo layout.ConfigurationRepository,
	blockRepo inventory.BlockRepository,
	plotRepo inventory.PlotRepository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *ApplyConfigurationUseCase {
	return &ApplyConfigurationUseCase{
		configRepo: configRepo,
		blockRepo:  blockRepo,
		plotRepo:   plotRepo,
		txMgr:      txMgr,
		logger:     log,
	}
}

// Execute applies the configuration and marks it active.
func (uc *ApplyConfigurationUseCase) Execute(ctx context.Context, cmd ApplyConfigurationCommand) (*dto.ConfigurationDTO, error) {
	config, err := uc.configRepo.GetByID(ctx, cmd.ConfigurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	if config == nil {
		return nil, errors.NewNotFoundError("configuration not found")
	}

	// Stored payloads are normally valid, but re-validating before any
	// destructive work guards against rows written by older versions.
	if err := layout.ValidatePayload(config.Blocks()); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("stored payload is invalid: %s", err.Error()))
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.plotRepo.DeleteByProperty(txCtx, config.PropertyID()); err != nil {
			return fmt.Errorf("failed to remove existing plots: %w", err)
		}
		if err := uc.blockRepo.DeleteByProperty(txCtx, config.PropertyID()); err != nil {
			return fmt.Errorf("failed to remove existing blocks: %w", err)
		}

		if err := uc.rebuild(txCtx, config.PropertyID(), config.Blocks()); err != nil {
			return err
		}

		if err := uc.configRepo.DeactivateActive(txCtx, config.PropertyID()); err != nil {
			return fmt.Errorf("failed to deactivate previous configuration: %w", err)
		}
		config.Activate()
		return uc.configRepo.Update(txCtx, config)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("configuration applied",
		"property_id", config.PropertyID(),
		"configuration_id", config.ID(),
		"blocks", len(config.Blocks()),
	)

	result := dto.ConfigurationToDTO(config)
	return &result, nil
}

// rebuild recreates blocks and plots in payload order.
func (uc *ApplyConfigurationUseCase) rebuild(ctx context.Context, propertyID uint, blocks []layout.BlockLayout) error {
	for _, blockInput := range blocks {
		block, err := inventory.NewBlock(propertyID, blockInput.Name, blockInput.Description)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.blockRepo.Create(ctx, block); err != nil {
			return err
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
			if err := uc.plotRepo.Create(ctx, plot); err != nil {
				return err
			}
		}
	}
	return nil
}
