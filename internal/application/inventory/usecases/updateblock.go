package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// UpdateBlockCommand carries the input for updating a block. Nil fields are
// left unchanged.
type UpdateBlockCommand struct {
	BlockID     uint
	Name        *string
	Description *string
}

// UpdateBlockUseCase handles block metadata updates.
type UpdateBlockUseCase struct {
	blockRepo inventory.BlockRepository
	logger    logger.Interface
}

// NewUpdateBlockUseCase creates a new UpdateBlockUseCase.
func NewUpdateBlockUseCase(blockRepo inventory.BlockRepository, log logger.Interface) *UpdateBlockUseCase {
	return &UpdateBlockUseCase{
		blockRepo: blockRepo,
		logger:    log,
	}
}

// Execute updates a block's name and/or description.
func (uc *UpdateBlockUseCase) Execute(ctx context.Context, cmd UpdateBlockCommand) (*dto.BlockDTO, error) {
	block, err := uc.blockRepo.GetByID(ctx, cmd.BlockID)
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	if block == nil {
		return nil, errors.NewNotFoundError("block not found")
	}

	if cmd.Name != nil && *cmd.Name != block.Name() {
		// A pure case change of the block's own name is not a collision.
		if !strings.EqualFold(*cmd.Name, block.Name()) {
			exists, err := uc.blockRepo.ExistsByName(ctx, block.PropertyID(), *cmd.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to check block name: %w", err)
			}
			if exists {
				return nil, errors.NewValidationError("block name already exists for this property")
			}
		}
		if err := block.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		block.UpdateDescription(*cmd.Description)
	}

	if err := uc.blockRepo.Update(ctx, block); err != nil {
		uc.logger.Errorw("failed to update block", "id", cmd.BlockID, "error", err)
		return nil, err
	}

	result := dto.BlockToDTO(block)
	return &result, nil
}
