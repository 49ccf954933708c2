package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// CreateBlockCommand carries the input for creating a block.
type CreateBlockCommand struct {
	PropertyID  uint
	Name        string
	Description string
}

// CreateBlockUseCase handles the creation of a new block.
type CreateBlockUseCase struct {
	blockRepo inventory.BlockRepository
	logger    logger.Interface
}

// NewCreateBlockUseCase creates a new CreateBlockUseCase.
func NewCreateBlockUseCase(blockRepo inventory.BlockRepository, log logger.Interface) *CreateBlockUseCase {
	return &CreateBlockUseCase{
		blockRepo: blockRepo,
		logger:    log,
	}
}

// Execute creates a new block within a property.
func (uc *CreateBlockUseCase) Execute(ctx context.Context, cmd CreateBlockCommand) (*dto.BlockDTO, error) {
	block, err := inventory.NewBlock(cmd.PropertyID, cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.blockRepo.ExistsByName(ctx, cmd.PropertyID, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check block name existence", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to check block name: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError("block name already exists for this property")
	}

	if err := uc.blockRepo.Create(ctx, block); err != nil {
		uc.logger.Errorw("failed to save block", "error", err)
		return nil, err
	}

	uc.logger.Infow("block created",
		"id", block.ID(),
		"property_id", block.PropertyID(),
		"name", block.Name(),
	)

	result := dto.BlockToDTO(block)
	return &result, nil
}
