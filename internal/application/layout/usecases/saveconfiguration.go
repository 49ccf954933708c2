// Package usecases contains the application use cases for configuration
// snapshots: capturing the live layout, applying a snapshot back, and
// managing the stored versions.
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

// SaveConfigurationCommand captures the live layout of a property under a name.
type SaveConfigurationCommand struct {
	PropertyID uint
	Name       string
}

// SaveConfigurationUseCase snapshots the property's current block/plot
// hierarchy into a new configuration. The new snapshot becomes the active
// configuration; the previously active one is deactivated in the same
// transaction.
type SaveConfigurationUseCase struct {
	configRepo layout.ConfigurationRepository
	blockRepo  inventory.BlockRepository
	plotRepo   inventory.PlotRepository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

// NewSaveConfigurationUseCase creates a new SaveConfigurationUseCase.
func NewSaveConfigurationUseCase(
	configRepo layout.ConfigurationRepository,
	blockRepo inventory.BlockRepository,
	plotRepo inventory.PlotRepository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *SaveConfigurationUseCase {
	return &SaveConfigurationUseCase{
		configRepo: configRepo,
		blockRepo:  blockRepo,
		plotRepo:   plotRepo,
		txMgr:      txMgr,
		logger:     log,
	}
}

// Execute captures and stores the snapshot, returning it with its new ID.
func (uc *SaveConfigurationUseCase) Execute(ctx context.Context, cmd SaveConfigurationCommand) (*dto.ConfigurationDTO, error) {
	if cmd.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}

	var config *layout.Configuration

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		blocks, err := uc.captureLayout(txCtx, cmd.PropertyID)
		if err != nil {
			return err
		}

		config, err = layout.NewConfiguration(cmd.PropertyID, cmd.Name, blocks, true)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.configRepo.DeactivateActive(txCtx, cmd.PropertyID); err != nil {
			return fmt.Errorf("failed to deactivate previous configuration: %w", err)
		}
		return uc.configRepo.Create(txCtx, config)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("configuration saved",
		"property_id", cmd.PropertyID,
		"configuration_id", config.ID(),
		"name", config.Name(),
	)

	result := dto.ConfigurationToDTO(config)
	return &result, nil
}

// captureLayout reads the live hierarchy into a snapshot payload. An empty
// property yields an empty payload, which is a legal configuration.
func (uc *SaveConfigurationUseCase) captureLayout(ctx context.Context, propertyID uint) ([]layout.BlockLayout, error) {
	blocks, err := uc.blockRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	payload := make([]layout.BlockLayout, 0, len(blocks))
	for _, block := range blocks {
		plots, err := uc.plotRepo.ListByBlock(ctx, block.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to list plots of block %d: %w", block.ID(), err)
		}

		blockLayout := layout.BlockLayout{
			Name:        block.Name(),
			Description: block.Description(),
			Plots:       make([]layout.PlotLayout, 0, len(plots)),
		}
		for _, plot := range plots {
			blockLayout.Plots = append(blockLayout.Plots, layout.PlotLayout{
				PlotNumber:  plot.Number(),
				Area:        plot.Area(),
				Price:       plot.Price(),
				Status:      plot.Status().String(),
				Description: plot.Description(),
			})
		}
		payload = append(payload, blockLayout)
	}

	return payload, nil
}
